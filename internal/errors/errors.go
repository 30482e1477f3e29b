// Package errors provides the error types used across chatptatlas.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrEmptyPrompt   = errors.New("prompt cannot be empty")
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrInvalidDelay  = errors.New("reply delay must not be negative")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNoReply       = errors.New("no assistant reply yet")
)

// ConfigError represents a configuration file or value problem
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("config error at %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("config error: %s", msg)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is allows comparison with sentinel errors
func (e *ConfigError) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok
}

// NewConfigError creates a new ConfigError
func NewConfigError(path, message string, err error) *ConfigError {
	return &ConfigError{Path: path, Message: message, Err: err}
}

// ThemeError reports a theme name that is not registered
type ThemeError struct {
	Name      string
	Available []string
}

func (e *ThemeError) Error() string {
	return fmt.Sprintf("unknown theme %q (available: %v)", e.Name, e.Available)
}

// Is allows comparison with ErrUnknownTheme
func (e *ThemeError) Is(target error) bool {
	return target == ErrUnknownTheme
}

// NewThemeError creates a new ThemeError
func NewThemeError(name string, available []string) *ThemeError {
	return &ThemeError{Name: name, Available: available}
}

// ClipboardError represents a failure to reach the system clipboard
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard unavailable: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// NewClipboardError creates a new ClipboardError
func NewClipboardError(err error) *ClipboardError {
	return &ClipboardError{Err: err}
}

// IsConfigError reports whether err is or wraps a configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

// IsThemeError reports whether err is or wraps an unknown theme error
func IsThemeError(err error) bool {
	return errors.Is(err, ErrUnknownTheme)
}

// IsClipboardError reports whether err is or wraps a clipboard error
func IsClipboardError(err error) bool {
	var ce *ClipboardError
	return errors.As(err, &ce)
}
