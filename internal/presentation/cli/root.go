// Package cli implements the tractpage command line using Cobra.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
)

// NewRootCommand builds the tractpage command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tractpage",
		Short: "tractpage builds single-page landing sites from a section document",
		Long: `tractpage edits a landing page document in a live preview and exports it
as a standalone HTML page plus a re-importable config file.

Usage:
  tractpage serve --doc page.yaml --watch
  tractpage export page.json --out dist`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCommand(),
		newExportCommand(),
		newNormalizeCommand(),
		newRenderCommand(),
		newTypesCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readRaw loads a document file into its raw, unnormalized form.
func readRaw(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return normalize.ParseYAML(data)
	default:
		return normalize.Parse(data)
	}
}
