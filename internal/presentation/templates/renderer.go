// Package templates renders the standalone export with html/template. Every
// visual decision comes from the styles package, which the live preview reads
// as well, so both outputs agree section by section.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strconv"
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

var sectionTemplates = template.Must(template.New("sections").Parse(
	partialTemplates + wrapperTemplates + basicTemplates + listTemplates +
		containerTemplates + conversionTemplates + trustTemplates + pageTemplates,
))

// SectionRenderer is the static section dispatcher.
type SectionRenderer struct {
	ctx *rendering.RenderContext
}

var _ page.Visitor[template.HTML] = (*SectionRenderer)(nil)

// NewSectionRenderer creates a renderer for one export. A nil context renders
// responsive output with default settings.
func NewSectionRenderer(ctx *rendering.RenderContext) *SectionRenderer {
	if ctx == nil {
		ctx = rendering.NewRenderContext(nil, rendering.ViewportResponsive)
	}
	return &SectionRenderer{ctx: ctx}
}

// RenderSections renders each section in list order.
func (sr *SectionRenderer) RenderSections(sections []page.Section) template.HTML {
	var b strings.Builder
	for i := range sections {
		b.WriteString(string(sr.RenderSection(&sections[i])))
	}
	return template.HTML(b.String())
}

// RenderSection renders one section with its children and chrome.
func (sr *SectionRenderer) RenderSection(s *page.Section) template.HTML {
	return sr.render(s, 0)
}

func (sr *SectionRenderer) render(s *page.Section, depth int) template.HTML {
	var nested []template.HTML
	if depth < rendering.MaxDepth {
		for i := range s.Children {
			nested = append(nested, sr.render(&s.Children[i], depth+1))
		}
	}

	inner := page.Visit[template.HTML](s, sr, nested)
	switch s.ContentOrZero().(type) {
	case *page.UnknownContent:
		return inner
	case *page.BoxContent, *page.FullWidthContent:
	default:
		if len(nested) > 0 {
			inner = "<div>" + inner + childrenOf(nested) + "</div>"
		}
	}
	return sr.wrap(s, inner)
}

// Unknown leaves a comment in place of the section, followed by any children.
func (sr *SectionRenderer) Unknown(s *page.Section, nested []template.HTML) template.HTML {
	out := template.HTML(fmt.Sprintf("<!-- unsupported section type %q (id %d) -->", commentSafe(s.Type), s.ID))
	for _, n := range nested {
		out += n
	}
	return out
}

func commentSafe(s string) string {
	return strings.NewReplacer("--", "", ">", "", "<", "").Replace(s)
}

// execute runs one named template. Failures are logged and leave a comment so
// the rest of the page still renders.
func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("Error executing %s template: %v", name, err)
		return template.HTML("<!-- render error: " + commentSafe(name) + " -->")
	}
	return template.HTML(buf.String())
}

type dividerView struct {
	Attr         string
	Class        string
	ViewBox      string
	Path         string
	Color        string
	WrapperStyle template.CSS
	SVGStyle     template.CSS
}

type wrapperView struct {
	ID           string
	Type         string
	Bg           string
	Overlay      string
	Style        template.CSS
	OverlayStyle template.CSS
	InnerStyle   template.CSS
	Top          *dividerView
	Bottom       *dividerView
	Box          string
	BoxClass     string
	BoxStyle     template.CSS
	Inner        template.HTML
}

const wrapperTemplates = `{{define "part-divider"}}{{with .}}<div class="{{.Class}}" style="{{.WrapperStyle}}" aria-hidden="true">` +
	`<svg xmlns="http://www.w3.org/2000/svg" viewBox="{{.ViewBox}}" preserveAspectRatio="none" style="{{.SVGStyle}}"><path d="{{.Path}}" fill="{{.Color}}"></path></svg></div>{{end}}{{end}}` +
	`{{define "wrapper"}}<section id="section-{{.ID}}" class="tp-section tp-section-{{.Type}}" data-section-id="{{.ID}}" data-section-type="{{.Type}}" data-bg="{{.Bg}}"` +
	`{{with .Overlay}} data-bg-overlay="{{.}}"{{end}}{{with .Top}} data-divider-top="{{.Attr}}"{{end}}{{with .Bottom}} data-divider-bottom="{{.Attr}}"{{end}}` +
	`{{with .Box}} data-box="{{.}}"{{end}} style="{{.Style}}">` +
	`{{if .Overlay}}<div class="tp-overlay" style="{{.OverlayStyle}}" aria-hidden="true"></div>{{end}}` +
	`{{template "part-divider" .Top}}<div class="tp-inner" style="{{.InnerStyle}}">` +
	`{{if .Box}}<div class="{{.BoxClass}}" style="{{.BoxStyle}}">{{.Inner}}</div>{{else}}{{.Inner}}{{end}}</div>` +
	`{{template "part-divider" .Bottom}}</section>{{end}}`

func dividerOf(d *styles.DividerStyle) *dividerView {
	if d == nil {
		return nil
	}
	return &dividerView{
		Attr:         d.Attr(),
		Class:        d.Class(),
		ViewBox:      d.ViewBox,
		Path:         d.Path,
		Color:        d.Color,
		WrapperStyle: template.CSS(d.WrapperStyle),
		SVGStyle:     template.CSS(d.SVGStyle),
	}
}

// wrap applies the chrome every section shares: background and overlay,
// padding, content column, dividers and box frame.
func (sr *SectionRenderer) wrap(s *page.Section, inner template.HTML) template.HTML {
	bg := styles.Background(s)
	_, fullWidth := s.ContentOrZero().(*page.FullWidthContent)
	v := wrapperView{
		ID:         strconv.Itoa(s.ID),
		Type:       s.CanonicalType(),
		Bg:         bg.Attr(),
		Style:      css("position:relative", bg.CSS(), styles.PaddingCSS(s.PaddingTop, s.PaddingBottom)),
		InnerStyle: template.CSS(styles.Inner(sr.ctx, fullWidth)),
		Top:        dividerOf(styles.Divider(styles.DividerTop, s.DividerTop, s.DividerTopColor)),
		Bottom:     dividerOf(styles.Divider(styles.DividerBottom, s.DividerBottom, s.DividerBottomColor)),
		Inner:      inner,
	}
	if bg.HasOverlay() {
		v.Overlay = styles.Num(bg.Overlay)
		v.OverlayStyle = template.CSS(bg.OverlayCSS())
	}
	if box := styles.Box(s.BoxStyle, s.BoxColor, sr.ctx.AccentColor); box != nil {
		v.Box, v.BoxClass, v.BoxStyle = box.Name, box.Class(), template.CSS(box.CSS)
	}
	return execute("wrapper", v)
}
