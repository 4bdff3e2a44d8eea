package templates

import (
	"html/template"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

const containerTemplates = `{{define "box"}}<div class="tp-container-box" style="{{.Style}}">{{template "part-title" .Title}}{{.Children}}</div>{{end}}` +
	`{{define "full_width"}}<div class="tp-full-width"{{with .Style}} style="{{.}}"{{end}}>{{.Children}}</div>{{end}}`

type containerView struct {
	Style    template.CSS
	Title    *textBlock
	Children template.HTML
}

func (sr *SectionRenderer) Box(s *page.Section, c *page.BoxContent, nested []template.HTML) template.HTML {
	return execute("box", containerView{
		Style:    template.CSS(styles.WidthCSS(c.Width)),
		Title:    sr.title(c.Heading, "", "center"),
		Children: childrenOf(nested),
	})
}

func (sr *SectionRenderer) FullWidth(s *page.Section, c *page.FullWidthContent, nested []template.HTML) template.HTML {
	return execute("full_width", containerView{
		Style:    template.CSS(styles.MinHeight(c.MinHeight)),
		Children: childrenOf(nested),
	})
}
