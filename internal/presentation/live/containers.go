package live

import (
	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

func (lr *Renderer) Box(s *page.Section, c *page.BoxContent, nested []*html.Node) *html.Node {
	return el("div", attrs("class", "tp-container-box", "style", styles.WidthCSS(c.Width)),
		lr.title(c.Heading, "", "center"),
		childrenBlock(nested),
	)
}

func (lr *Renderer) FullWidth(s *page.Section, c *page.FullWidthContent, nested []*html.Node) *html.Node {
	return el("div", attrs("class", "tp-full-width", "style", styles.MinHeight(c.MinHeight)),
		childrenBlock(nested),
	)
}
