// Package live renders the working document as an x/net/html node tree for the
// editor's preview. Every visual decision comes from the styles package, which
// the static exporter reads as well.
package live

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

// Renderer is the live section dispatcher.
type Renderer struct {
	ctx *rendering.RenderContext
}

var _ page.Visitor[*html.Node] = (*Renderer)(nil)

// NewRenderer creates a renderer for one render pass.
func NewRenderer(ctx *rendering.RenderContext) *Renderer {
	if ctx == nil {
		ctx = rendering.NewRenderContext(nil, rendering.ViewportDesktop)
	}
	return &Renderer{ctx: ctx}
}

// RenderSections renders each section in list order.
func (lr *Renderer) RenderSections(sections []page.Section) []*html.Node {
	nodes := make([]*html.Node, 0, len(sections))
	for i := range sections {
		nodes = append(nodes, lr.RenderSection(&sections[i]))
	}
	return nodes
}

// RenderSection renders one section with its children and chrome.
func (lr *Renderer) RenderSection(s *page.Section) *html.Node {
	return lr.render(s, 0)
}

func (lr *Renderer) render(s *page.Section, depth int) *html.Node {
	var nested []*html.Node
	if depth < rendering.MaxDepth {
		for i := range s.Children {
			nested = append(nested, lr.render(&s.Children[i], depth+1))
		}
	}

	inner := page.Visit[*html.Node](s, lr, nested)
	if !isContainer(s) && len(nested) > 0 {
		inner = el("div", nil, inner, childrenBlock(nested))
	}
	return lr.wrap(s, inner)
}

func isContainer(s *page.Section) bool {
	switch s.ContentOrZero().(type) {
	case *page.BoxContent, *page.FullWidthContent:
		return true
	}
	return false
}

func childrenBlock(nested []*html.Node) *html.Node {
	return el("div", attrs("class", "tp-children", "style", styles.ChildrenCSS), nested...)
}

// Unknown draws the placeholder block for a type no renderer handles.
func (lr *Renderer) Unknown(s *page.Section, nested []*html.Node) *html.Node {
	return el("div", attrs("class", "tp-unknown", "style", styles.UnknownCSS, "data-unknown-type", s.Type),
		text(fmt.Sprintf("Unknown section type: %s", s.Type)))
}

func sectionAnchor(s *page.Section) string {
	return "section-" + strconv.Itoa(s.ID)
}
