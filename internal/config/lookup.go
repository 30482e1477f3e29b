package config

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Lookup returns the value at a dotted key path (e.g. "markdown.style")
// using the JSON field names of Config.
func Lookup(cfg Config, key string) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}

	result := gjson.GetBytes(data, key)
	if !result.Exists() {
		return "", fmt.Errorf("unknown config key %q", key)
	}

	if result.IsObject() {
		return result.Raw, nil
	}
	return result.String(), nil
}

// Keys lists the top-level config keys in file order
func Keys(cfg Config) ([]string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var keys []string
	gjson.ParseBytes(data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys, nil
}
