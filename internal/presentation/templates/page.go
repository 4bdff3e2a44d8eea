package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
	"github.com/AtRiskMedia/tractpage-go/pkg/config"
)

const pageTemplates = `{{define "page-header"}}<header class="{{.Class}}" style="{{.Style}}"><div class="tp-header-row" style="{{.RowStyle}}">` +
	`<a class="tp-logo" href="#" style="{{.LogoStyle}}">{{if .Logo}}<img src="{{.Logo}}" alt="{{.Title}}" style="{{.LogoImgStyle}}">{{else}}{{.Title}}{{end}}</a>` +
	`{{if .Links}}<button class="tp-nav-toggle" type="button" style="{{.ToggleStyle}}" aria-label="Menu" aria-expanded="false">{{.Toggle}}</button>` +
	`<nav class="tp-nav"{{with .NavStyle}} style="{{.}}"{{end}}>{{range .Links}}{{template "part-link" .}}{{end}}</nav>{{end}}</div></header>{{end}}` +
	`{{define "page-hero"}}<div class="tp-hero" style="{{.Style}}" data-media="{{.Kind}}">` +
	`{{if eq .Kind "file"}}<video class="tp-hero-media" src="{{.Src}}" style="{{.MediaStyle}}" autoplay muted loop playsinline></video>` +
	`{{else if or (eq .Kind "youtube") (eq .Kind "vimeo")}}<iframe class="tp-hero-media" src="{{.Src}}" title="Background video" style="{{.MediaStyle}}" allow="{{.Allow}}" tabindex="-1"></iframe>` +
	`{{else if eq .Kind "image"}}<div class="tp-hero-media" style="{{.MediaStyle}}" role="img" aria-label="{{.Label}}"></div>{{end}}` +
	`<div class="tp-hero-overlay" style="{{.OverlayStyle}}" aria-hidden="true"></div><div class="tp-hero-content" style="{{.ContentStyle}}">` +
	`{{with .Title}}<h1 class="tp-hero-title" style="{{.Style}}">{{.Text}}</h1>{{end}}{{with .Subtitle}}<p class="tp-hero-subtitle" style="{{.Style}}">{{.Text}}</p>{{end}}` +
	`{{template "part-buttons" .Buttons}}</div></div>{{end}}` +
	`{{define "page"}}<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>{{.Title}}</title>
{{with .TailwindCDN}}<script src="{{.}}"></script>{{end}}
<style>{{.Stylesheet}}</style></head>
<body style="{{.BodyStyle}}" data-viewport="{{.Viewport}}">{{template "page-header" .Header}}{{template "page-hero" .Hero}}<main class="tp-main">{{.Sections}}</main>` +
	`{{with .CTA}}<a id="tp-floating-cta" class="tp-hidden" href="{{.Href}}" style="{{.Style}}">{{.Text}}</a>{{end}}
<script>{{.MenuScript}}</script>{{if .CTA}}
<script>{{.CTAScript}}</script>{{end}}
</body></html>
{{end}}`

type headerView struct {
	Class        string
	Style        template.CSS
	RowStyle     template.CSS
	LogoStyle    template.CSS
	LogoImgStyle template.CSS
	Logo         string
	Title        string
	ToggleStyle  template.CSS
	Toggle       string
	NavStyle     template.CSS
	Links        []linkView
}

type heroView struct {
	Kind         string
	Src          string
	Label        string
	Allow        string
	Style        template.CSS
	MediaStyle   template.CSS
	OverlayStyle template.CSS
	ContentStyle template.CSS
	Title        *textBlock
	Subtitle     *textBlock
	Buttons      *buttonsView
}

type pageView struct {
	Title       string
	TailwindCDN string
	Stylesheet  template.CSS
	BodyStyle   template.CSS
	Viewport    string
	Header      headerView
	Hero        heroView
	Sections    template.HTML
	CTA         *linkView
	MenuScript  template.JS
	CTAScript   template.JS
}

// Exporter renders standalone pages.
type Exporter struct {
	TailwindCDN string
}

// NewExporter creates an exporter referencing the configured Tailwind CDN.
func NewExporter() *Exporter {
	return &Exporter{TailwindCDN: config.TailwindCDN}
}

// ExportHTML renders doc as a standalone page with the default exporter.
func ExportHTML(doc *page.Document) (string, error) {
	return NewExporter().HTML(doc)
}

// ExportConfig encodes doc as indented JSON that the editor can re-import.
func ExportConfig(doc *page.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("no document to export")
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(data), nil
}

// HTML renders doc as a standalone page.
func (e *Exporter) HTML(doc *page.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("no document to export")
	}
	ctx := rendering.NewRenderContext(doc, rendering.ViewportResponsive)
	sr := NewSectionRenderer(ctx)

	v := pageView{
		Title:       doc.SiteTitle,
		TailwindCDN: styles.SafeURL(e.TailwindCDN),
		Stylesheet:  styles.Stylesheet,
		BodyStyle:   template.CSS(styles.BodyCSS(doc, ctx)),
		Viewport:    string(ctx.Viewport),
		Header:      sr.header(doc),
		Hero:        sr.hero(doc.Hero),
		Sections:    sr.RenderSections(doc.Sections),
		MenuScript:  styles.MenuScript,
		CTAScript:   styles.FloatingCTAScript,
	}
	if f := doc.FloatingCTA; f.Enabled && f.Text != "" {
		cta := linkView{Href: styles.Href(f.URL), Style: template.CSS(styles.FloatingCTA(f, ctx.AccentColor)), Text: f.Text}
		v.CTA = &cta
	}

	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, "page", v); err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return buf.String(), nil
}

func (sr *SectionRenderer) header(doc *page.Document) headerView {
	hs := styles.Header(doc.Header, sr.ctx)
	v := headerView{
		Class:        hs.Class,
		Style:        template.CSS(hs.CSS),
		RowStyle:     template.CSS(hs.RowCSS),
		LogoStyle:    template.CSS(hs.LogoCSS),
		LogoImgStyle: css("display:block;width:auto", "height:"+strconv.Itoa(hs.LogoHeight)+"px"),
		Title:        doc.SiteTitle,
		ToggleStyle:  template.CSS(hs.ToggleCSS),
		Toggle:       styles.MenuToggleText,
		NavStyle:     template.CSS(hs.NavCSS),
	}
	if src := styles.SafeURL(doc.Header.LogoURL); src != "" && src != "#" {
		v.Logo = src
	}
	for _, m := range doc.MenuItems {
		v.Links = append(v.Links, linkOf(m.URL, "tp-nav-link", hs.LinkCSS, m.Label))
	}
	return v
}

func (sr *SectionRenderer) hero(h page.Hero) heroView {
	hs := styles.Hero(h, sr.ctx)
	return heroView{
		Kind:         hs.Media.Kind,
		Src:          hs.Media.Src,
		Label:        h.Title,
		Allow:        styles.IframeAllow,
		Style:        template.CSS(hs.CSS),
		MediaStyle:   template.CSS(hs.MediaCSS),
		OverlayStyle: template.CSS(hs.OverlayCSS),
		ContentStyle: template.CSS(hs.ContentCSS),
		Title:        block(h.Title, hs.TitleCSS),
		Subtitle:     block(h.Subtitle, hs.SubCSS),
		Buttons:      buttonsOf(h.Buttons, sr.ctx.AccentColor, "center"),
	}
}
