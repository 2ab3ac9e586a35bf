package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/digitorus/pdfnumber/common"
)

func newPlanCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [flags] FILE",
		Short: "Print where page numbers would be stamped",
		Long: `Plan evaluates the numbering settings against FILE and prints, for every
page, whether it is stamped, its number and text, and the text position.
Nothing is written.`,
		Example: `  pdfnumber plan --ignore-pages 1 document.pdf
  pdfnumber plan --format yaml --position tr document.pdf`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.planFormat, "format", "json", "output format: json or yaml")
	return cmd
}

func runPlan(cmd *cobra.Command, opts *options, input string) error {
	var marshal func(any) ([]byte, error)
	switch opts.planFormat {
	case "json":
		marshal = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	case "yaml":
		marshal = yaml.Marshal
	default:
		return fmt.Errorf("unknown plan format %q (valid: json, yaml)", opts.planFormat)
	}

	doc, _, err := open(cmd, opts, input)
	if err != nil {
		return err
	}
	defer func() { _ = doc.Close() }()

	pages, err := doc.Plan()
	if err != nil {
		return err
	}

	plan := common.Plan{
		File:     input,
		Document: doc.Info(),
		Pages:    pages,
	}

	data, err := marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
