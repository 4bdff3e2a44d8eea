package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
)

func newNormalizeCommand() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "normalize <document>",
		Short: "Print the normalized form of a document as JSON",
		Long: `normalize repairs a generated or hand-written document the same way the
editor does on import and prints the result. Aliased and unknown section
types are reported on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readRaw(args[0])
			if err != nil {
				return err
			}
			report := normalize.Inspect(raw)
			doc, err := normalize.Typed(normalize.Document(raw))
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if quiet {
				return nil
			}
			errOut := cmd.ErrOrStderr()
			for _, c := range report.Aliased {
				fmt.Fprintf(errOut, "aliased: section %v %q -> %q\n", c.SectionID, c.From, c.To)
			}
			for _, c := range report.Unknown {
				fmt.Fprintf(errOut, "unknown: section %v %q\n", c.SectionID, c.From)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not report type changes")
	return cmd
}
