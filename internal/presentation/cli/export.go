package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
	"github.com/AtRiskMedia/tractpage-go/internal/application/startup"
	"github.com/AtRiskMedia/tractpage-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

func newExportCommand() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "export <document>",
		Short: "Write index.html and config.json for a document",
		Example: `  tractpage export page.yaml
  tractpage export config.json --out ./site`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := startup.LoadDocument(args[0])
			if err != nil {
				return err
			}
			svc := services.NewExportService(nil, nil, logging.NewDiscardLogger())
			written, err := svc.WriteFiles(doc, outDir)
			if err != nil {
				return err
			}
			for _, f := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "%-40s %s\n", f.Path, humanize.Bytes(uint64(f.Size)))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", config.OutputDir, "Output directory")
	return cmd
}
