// Package cli implements the pdfnumber command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/digitorus/pdfnumber/config"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

var osExit = os.Exit

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		osExit(1)
	}
}

// NewRootCommand returns the stamp command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "pdfnumber [flags] FILE",
		Short: "Stamp page numbers onto a PDF document",
		Long: `Stamp sequential page numbers onto an existing PDF document.

The original document is kept unchanged; the numbers are appended as an
incremental update.

Pages listed with --ignore-pages receive no number and are not counted.
Pages listed with --skip-pages receive no number but are counted.`,
		Example: `  pdfnumber -o numbered.pdf document.pdf
  pdfnumber --ignore-pages 1 --stamp-format "Page {} of {}" --position br -o out.pdf in.pdf
  pdfnumber --text-position -1,-1 --text-align right in.pdf > out.pdf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStamp(cmd, opts, args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultLocation, "TOML file with default settings")
	flags.IntVar(&opts.firstNumber, "first-number", 1, "number of the first stamped page")
	flags.IntSliceVar(&opts.ignorePages, "ignore-pages", nil, "pages (1-based) that are neither stamped nor counted")
	flags.IntSliceVar(&opts.skipPages, "skip-pages", nil, "pages (1-based) that are counted but not stamped")
	flags.StringVar(&opts.stampFormat, "stamp-format", "{}", "stamp text, {} is replaced by the number and then the page count")
	flags.Float64Var(&opts.fontSize, "font-size", 12, "font size in points")
	flags.StringVar(&opts.fontFamily, "font-family", "Helvetica", "standard font family or path to a .ttf file")
	flags.StringVar(&opts.textColor, "text-color", "#000000", "text color as #rrggbb")
	flags.StringVar(&opts.textAlign, "text-align", "center", "text alignment: left, center or right")
	flags.Float64SliceVar(&opts.textPosition, "text-position", nil, "X,Y position; negative values are measured from the right or bottom margin")
	flags.StringVar(&opts.position, "position", "", "anchor: bl, bc, br, tl, tc or tr (default bc without --text-position)")
	flags.Float64SliceVar(&opts.pageMargin, "page-margin", nil, "X,Y page margin (default adapts to the font size)")

	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file, may equal FILE (default stdout)")

	root.AddCommand(newPlanCommand(opts))
	root.AddCommand(versionCmd)
	return root
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pdfnumber version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pdfnumber", Version)
	},
}
