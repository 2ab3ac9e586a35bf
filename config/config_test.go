package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitorus/pdfnumber/config"
)

func TestConfig(t *testing.T) {
	const configContent = `
first_number = 3
ignore_pages = [1, 2]
skip_pages = [5]
stamp_format = "Page {} of {}"
font_size = 9.5
font_family = "Courier"
text_color = "#ff0000"
position = "tr"
page_margin = [20, 30]
`

	c, err := config.Decode(configContent)
	require.NoError(t, err)

	assert.Equal(t, 3, c.FirstNumber)
	assert.Equal(t, []int{1, 2}, c.IgnorePages)
	assert.Equal(t, []int{5}, c.SkipPages)
	assert.Equal(t, "Page {} of {}", c.StampFormat)
	assert.Equal(t, 9.5, c.FontSize)
	assert.Equal(t, "Courier", c.FontFamily)
	assert.Equal(t, "#ff0000", c.TextColor)
	assert.Equal(t, "tr", c.Position)
	assert.Equal(t, []float64{20, 30}, c.PageMargin)

	assert.True(t, c.IsSet("first_number"))
	assert.False(t, c.IsSet("text_align"))
	assert.NoError(t, c.ValidateFields())
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", ``, false},
		{"bad color", `text_color = "red"`, true},
		{"bad align", `text_align = "justify"`, true},
		{"bad position", `position = "middle"`, true},
		{"zero font size", `font_size = 0`, true},
		{"short margin", `page_margin = [5]`, true},
		{"short text position", `text_position = [1, 2, 3]`, true},
		{"align", `text_align = "right"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := config.Decode(tt.content)
			require.NoError(t, err)

			err = c.ValidateFields()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "valid.conf")
		require.NoError(t, os.WriteFile(path, []byte(`font_family = "Times"`), 0o644))

		c, err := config.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "Times", c.FontFamily)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.conf")
		require.NoError(t, os.WriteFile(path, []byte(`font_colour = "#000000"`), 0o644))

		_, err := config.Read(path)
		assert.ErrorContains(t, err, "font_colour")
	})

	t.Run("invalid value", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.conf")
		require.NoError(t, os.WriteFile(path, []byte(`position = "xx"`), 0o644))

		_, err := config.Read(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Read(filepath.Join(dir, "missing.conf"))
		assert.Error(t, err)
	})

	t.Run("missing default file", func(t *testing.T) {
		orig := config.DefaultLocation
		defer func() { config.DefaultLocation = orig }()
		config.DefaultLocation = filepath.Join(dir, "pdfnumber.conf")

		c, err := config.Read(config.DefaultLocation)
		require.NoError(t, err)
		assert.False(t, c.IsSet("font_size"))
	})
}
