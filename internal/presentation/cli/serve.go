package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/tractpage-go/internal/application/startup"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

var errWatchNeedsDoc = errors.New("--watch requires --doc")

func newServeCommand() *cobra.Command {
	opts := startup.Options{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the editor API and live preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Watch && opts.DocPath == "" {
				return errWatchNeedsDoc
			}
			return startup.Initialize(opts)
		},
	}
	cmd.Flags().StringVar(&opts.Port, "port", config.Port, "Port to listen on")
	cmd.Flags().StringVar(&opts.DocPath, "doc", "", "Document to open (JSON or YAML)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload the document when the file changes")
	cmd.Flags().BoolVar(&opts.Autosave, "autosave", true, "Keep a draft copy of every change")
	return cmd
}
