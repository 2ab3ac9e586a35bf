// Package config reads stamping defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/asaskevich/govalidator"
)

func init() {
	govalidator.SetFieldsRequiredByDefault(true)
}

// DefaultLocation of the config file. It is optional.
var DefaultLocation = "./pdfnumber.conf"

// Config is the root of the config. Keys mirror the command line flags.
type Config struct {
	FirstNumber  int       `toml:"first_number" valid:"-"`
	IgnorePages  []int     `toml:"ignore_pages" valid:"-"`
	SkipPages    []int     `toml:"skip_pages" valid:"-"`
	StampFormat  string    `toml:"stamp_format" valid:"optional"`
	FontSize     float64   `toml:"font_size" valid:"-"`
	FontFamily   string    `toml:"font_family" valid:"optional"`
	TextColor    string    `toml:"text_color" valid:"hexcolor,optional"`
	TextAlign    string    `toml:"text_align" valid:"in(left|center|right),optional"`
	TextPosition []float64 `toml:"text_position" valid:"-"`
	Position     string    `toml:"position" valid:"in(bl|bc|br|tl|tc|tr),optional"`
	PageMargin   []float64 `toml:"page_margin" valid:"-"`

	meta toml.MetaData
}

// ValidateFields validates all the fields of the config
func (c Config) ValidateFields() error {
	if _, err := govalidator.ValidateStruct(c); err != nil {
		return err
	}

	if c.IsSet("font_size") && c.FontSize <= 0 {
		return fmt.Errorf("font_size: must be positive, got %v", c.FontSize)
	}
	if c.IsSet("text_position") && len(c.TextPosition) != 2 {
		return fmt.Errorf("text_position: expected [x, y], got %d values", len(c.TextPosition))
	}
	if c.IsSet("page_margin") && len(c.PageMargin) != 2 {
		return fmt.Errorf("page_margin: expected [x, y], got %d values", len(c.PageMargin))
	}
	return nil
}

// IsSet reports whether key was present in the file.
func (c Config) IsSet(key string) bool {
	return c.meta.IsDefined(key)
}

// Read decodes and validates the config file at path. A missing file at
// DefaultLocation yields an empty config.
func Read(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultLocation {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config file is missing: %s", path)
	}

	var c Config
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	c.meta = meta

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	if err := c.ValidateFields(); err != nil {
		return Config{}, fmt.Errorf("config is not valid: %w", err)
	}
	return c, nil
}

// Decode reads a config from TOML text, without validation.
func Decode(data string) (Config, error) {
	var c Config
	meta, err := toml.Decode(data, &c)
	if err != nil {
		return Config{}, err
	}
	c.meta = meta
	return c, nil
}
