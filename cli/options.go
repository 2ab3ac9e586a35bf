package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digitorus/pdfnumber"
	"github.com/digitorus/pdfnumber/config"
)

type options struct {
	configPath string

	firstNumber  int
	ignorePages  []int
	skipPages    []int
	stampFormat  string
	fontSize     float64
	fontFamily   string
	textColor    string
	textAlign    string
	textPosition []float64
	position     string
	pageMargin   []float64

	output     string
	planFormat string
}

// settings merges the config file into opts. Flags set on the command line
// take precedence over the file, the file over the flag defaults.
func (opts *options) settings(cmd *cobra.Command) (*options, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return nil, err
	}

	merged := *opts
	use := func(flag, key string) bool {
		return !cmd.Flags().Changed(flag) && cfg.IsSet(key)
	}

	if use("first-number", "first_number") {
		merged.firstNumber = cfg.FirstNumber
	}
	if use("ignore-pages", "ignore_pages") {
		merged.ignorePages = cfg.IgnorePages
	}
	if use("skip-pages", "skip_pages") {
		merged.skipPages = cfg.SkipPages
	}
	if use("stamp-format", "stamp_format") {
		merged.stampFormat = cfg.StampFormat
	}
	if use("font-size", "font_size") {
		merged.fontSize = cfg.FontSize
	}
	if use("font-family", "font_family") {
		merged.fontFamily = cfg.FontFamily
	}
	if use("text-color", "text_color") {
		merged.textColor = cfg.TextColor
	}
	if use("text-align", "text_align") {
		merged.textAlign = cfg.TextAlign
	}
	if use("text-position", "text_position") {
		merged.textPosition = cfg.TextPosition
	}
	if use("position", "position") {
		merged.position = cfg.Position
	}
	if use("page-margin", "page_margin") {
		merged.pageMargin = cfg.PageMargin
	}
	return &merged, nil
}

// configure applies the settings to the numbering of doc.
func (opts *options) configure(doc *pdfnumber.Document) error {
	b := doc.Number().
		Start(opts.firstNumber).
		Ignore(opts.ignorePages...).
		Skip(opts.skipPages...).
		Format(opts.stampFormat).
		FontSize(opts.fontSize).
		HexColor(opts.textColor)

	family := opts.fontFamily
	if strings.EqualFold(filepath.Ext(family), ".ttf") {
		data, err := os.ReadFile(family)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		if _, err := doc.AddFont(family, data); err != nil {
			return err
		}
	}
	b.FontFamily(family)

	align, err := pdfnumber.ParseAlign(opts.textAlign)
	if err != nil {
		return err
	}
	b.Align(align)

	if len(opts.pageMargin) > 0 {
		if len(opts.pageMargin) != 2 {
			return fmt.Errorf("page margin: expected X,Y, got %d values", len(opts.pageMargin))
		}
		b.Margin(opts.pageMargin[0], opts.pageMargin[1])
	}

	if len(opts.textPosition) > 0 {
		if len(opts.textPosition) != 2 {
			return fmt.Errorf("text position: expected X,Y, got %d values", len(opts.textPosition))
		}
		b.Position(opts.textPosition[0], opts.textPosition[1])
	}

	if opts.position != "" {
		anchor, err := pdfnumber.ParseAnchor(opts.position)
		if err != nil {
			return err
		}
		b.Anchor(anchor)
	}

	return b.Err()
}

// open opens input and configures its numbering from the merged settings.
func open(cmd *cobra.Command, opts *options, input string) (*pdfnumber.Document, *options, error) {
	merged, err := opts.settings(cmd)
	if err != nil {
		return nil, nil, err
	}

	doc, err := pdfnumber.OpenFile(input)
	if err != nil {
		return nil, nil, err
	}

	if err := merged.configure(doc); err != nil {
		_ = doc.Close()
		return nil, nil, err
	}
	return doc, merged, nil
}
