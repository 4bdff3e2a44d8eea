package cli

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/AtRiskMedia/tractpage-go/internal/application/services"
	"github.com/AtRiskMedia/tractpage-go/internal/application/startup"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/live"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

func newRenderCommand() *cobra.Command {
	var viewport, selector string
	cmd := &cobra.Command{
		Use:   "render <document>",
		Short: "Print the live preview markup for a document",
		Example: `  tractpage render page.yaml --viewport mobile
  tractpage render page.yaml --select 'section[data-section-type="faq"]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := startup.LoadDocument(args[0])
			if err != nil {
				return err
			}
			out, err := live.RenderPage(doc, services.ParseViewport(viewport))
			if err != nil {
				return err
			}
			if selector == "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
			if err != nil {
				return fmt.Errorf("failed to parse rendered page: %w", err)
			}
			sel := dom.Find(selector)
			if sel.Length() == 0 {
				return fmt.Errorf("no elements match %q", selector)
			}
			var werr error
			sel.Each(func(_ int, s *goquery.Selection) {
				frag, err := goquery.OuterHtml(s)
				if err != nil {
					werr = err
					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), frag)
			})
			return werr
		},
	}
	cmd.Flags().StringVar(&viewport, "viewport", config.DefaultViewport, "desktop, mobile or responsive")
	cmd.Flags().StringVar(&selector, "select", "", "Only print elements matching this CSS selector")
	return cmd
}
