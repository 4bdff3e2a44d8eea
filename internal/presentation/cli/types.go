package cli

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

func newTypesCommand() *cobra.Command {
	var aliases bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the section types the renderers understand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if aliases {
				table := registry.Aliases()
				keys := make([]string, 0, len(table))
				for k := range table {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				fmt.Fprintln(w, "ALIAS\tTYPE")
				for _, k := range keys {
					fmt.Fprintf(w, "%s\t%s\n", k, table[k])
				}
				return w.Flush()
			}

			fmt.Fprintln(w, "TYPE\tCATEGORY\tITEMS\tDESIGNS")
			for _, t := range registry.Types() {
				items := t.ItemsField
				if items == "" {
					items = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Tag, t.Category, items, strings.Join(t.Designs, ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&aliases, "aliases", false, "List accepted aliases instead")
	return cmd
}
