package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/diogo/chatptatlas/internal/errors"
	"github.com/diogo/chatptatlas/internal/render"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{
			name:     "theme error",
			err:      apierrors.NewThemeError("neon", render.PaletteNames()),
			wantHint: "config themes",
		},
		{
			name:     "config error",
			err:      apierrors.NewConfigError("/tmp/config.json", "bad json", errors.New("EOF")),
			wantHint: "config path",
		},
		{
			name:     "clipboard error",
			err:      apierrors.NewClipboardError(errors.New("exec: xclip not found")),
			wantHint: "xclip",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(FormatError(tt.err))
			assert.Contains(t, out, tt.err.Error())
			if tt.wantHint != "" {
				assert.Contains(t, out, "Hint:")
				assert.Contains(t, out, tt.wantHint)
			} else {
				assert.NotContains(t, out, "Hint:")
			}
		})
	}

	assert.Equal(t, "", FormatError(nil))
}

func TestUpdateTheme(t *testing.T) {
	original := render.CurrentPalette().Name
	t.Cleanup(func() {
		_ = render.UsePalette(original)
		UpdateTheme()
	})

	for _, name := range render.PaletteNames() {
		require.NoError(t, render.UsePalette(name))
		UpdateTheme()

		p := render.CurrentPalette()
		assert.Equal(t, p.Primary, colorPrimary, name)
		assert.Equal(t, p.Error, colorError, name)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
