package render

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/diogo/chatptatlas/internal/errors"
)

// Palette is the color scheme of the chat view.
type Palette struct {
	Name        string
	Description string

	Surface lipgloss.Color
	Border  lipgloss.Color

	// Primary colors assistant bubbles and titles, Secondary user bubbles.
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color
}

// DefaultPalette is used until another theme is selected.
const DefaultPalette = "tokyonight"

var palettes = map[string]Palette{
	"tokyonight": {
		Name:        "tokyonight",
		Description: "Tokyo Night - dark with blue accents",
		Surface:     "#24283b",
		Border:      "#414868",
		Primary:     "#7aa2f7",
		Secondary:   "#9ece6a",
		Accent:      "#bb9af7",
		Error:       "#f7768e",
		Success:     "#9ece6a",
		Text:        "#c0caf5",
		TextDim:     "#565f89",
		TextMute:    "#3b4261",
	},
	"catppuccin": {
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - warm pastels",
		Surface:     "#313244",
		Border:      "#45475a",
		Primary:     "#89b4fa",
		Secondary:   "#a6e3a1",
		Accent:      "#cba6f7",
		Error:       "#f38ba8",
		Success:     "#a6e3a1",
		Text:        "#cdd6f4",
		TextDim:     "#6c7086",
		TextMute:    "#45475a",
	},
	"nord": {
		Name:        "nord",
		Description: "Nord - arctic, cool tones",
		Surface:     "#3b4252",
		Border:      "#4c566a",
		Primary:     "#88c0d0",
		Secondary:   "#a3be8c",
		Accent:      "#b48ead",
		Error:       "#bf616a",
		Success:     "#a3be8c",
		Text:        "#eceff4",
		TextDim:     "#7b88a1",
		TextMute:    "#4c566a",
	},
	"dracula": {
		Name:        "dracula",
		Description: "Dracula - high contrast purple",
		Surface:     "#44475a",
		Border:      "#6272a4",
		Primary:     "#bd93f9",
		Secondary:   "#50fa7b",
		Accent:      "#ff79c6",
		Error:       "#ff5555",
		Success:     "#50fa7b",
		Text:        "#f8f8f2",
		TextDim:     "#6272a4",
		TextMute:    "#44475a",
	},
}

var (
	paletteMu sync.RWMutex
	current   = palettes[DefaultPalette]
)

// LookupPalette returns the palette registered under name
func LookupPalette(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, apierrors.NewThemeError(name, PaletteNames())
	}
	return p, nil
}

// UsePalette makes the named palette current
func UsePalette(name string) error {
	p, err := LookupPalette(name)
	if err != nil {
		return err
	}
	paletteMu.Lock()
	current = p
	paletteMu.Unlock()
	return nil
}

// CurrentPalette returns the active palette
func CurrentPalette() Palette {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	return current
}

// Palettes returns every registered palette sorted by name
func Palettes() []Palette {
	out := make([]Palette, 0, len(palettes))
	for _, p := range palettes {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PaletteNames returns the registered palette names sorted
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
