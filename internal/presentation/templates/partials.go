package templates

import (
	"html/template"
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

// textBlock is a styled run of text. A nil block renders nothing.
type textBlock struct {
	Text  string
	Style template.CSS
}

type imageView struct {
	Src   string
	Alt   string
	Text  string
	Style template.CSS
}

type linkView struct {
	Class  string
	Href   string
	Text   string
	Style  template.CSS
	NewTab bool
}

type buttonsView struct {
	Style template.CSS
	Items []linkView
}

type embedView struct {
	Player     bool
	File       bool
	Autoplay   bool
	Src        string
	Title      string
	Text       string
	Allow      string
	FrameStyle template.CSS
	Style      template.CSS
}

type socialView struct {
	Frame      bool
	Src        string
	Title      string
	Text       string
	FrameStyle template.CSS
	Style      template.CSS
}

type childrenView struct {
	Style template.CSS
	Items []template.HTML
}

const partialTemplates = `{{define "part-title"}}{{with .}}<h2 class="tp-section-title" style="{{.Style}}">{{.Text}}</h2>{{end}}{{end}}` +
	`{{define "part-body"}}{{with .}}<p class="tp-body" style="{{.Style}}">{{.Text}}</p>{{end}}{{end}}` +
	`{{define "part-item"}}{{with .}}<h3 class="tp-item-title" style="{{.Style}}">{{.Text}}</h3>{{end}}{{end}}` +
	`{{define "part-img"}}{{with .}}{{if .Src}}<img src="{{.Src}}" alt="{{.Alt}}" style="{{.Style}}" loading="lazy">{{else}}<div class="tp-placeholder" style="{{.Style}}">{{.Text}}</div>{{end}}{{end}}{{end}}` +
	`{{define "part-avatar"}}{{if .Src}}<img src="{{.Src}}" alt="{{.Alt}}" style="{{.Style}}" loading="lazy">{{else}}<div class="tp-initial" style="{{.Style}}">{{.Text}}</div>{{end}}{{end}}` +
	`{{define "part-link"}}<a class="{{.Class}}" href="{{.Href}}" style="{{.Style}}"{{if .NewTab}} target="_blank" rel="noopener noreferrer"{{end}}>{{.Text}}</a>{{end}}` +
	`{{define "part-buttons"}}{{with .}}<div class="tp-buttons" style="{{.Style}}">{{range .Items}}{{template "part-link" .}}{{end}}</div>{{end}}{{end}}` +
	`{{define "part-embed"}}{{if .Player}}<div class="tp-embed" style="{{.FrameStyle}}"><iframe src="{{.Src}}" title="{{.Title}}" style="{{.Style}}" allow="{{.Allow}}" loading="lazy" allowfullscreen></iframe></div>` +
	`{{else if .File}}<video src="{{.Src}}" style="{{.Style}}" controls playsinline{{if .Autoplay}} autoplay muted loop{{end}}></video>` +
	`{{else}}<div class="tp-placeholder" style="{{.Style}}">{{.Text}}</div>{{end}}{{end}}` +
	`{{define "part-social"}}{{with .}}{{if .Frame}}<div class="tp-social-frame" style="{{.FrameStyle}}"><iframe src="{{.Src}}" title="{{.Title}}" style="{{.Style}}" loading="lazy" allowfullscreen></iframe></div>` +
	`{{else}}<a class="tp-social-link" href="{{.Src}}" style="{{.Style}}">{{.Text}}</a>{{end}}{{end}}{{end}}` +
	`{{define "part-children"}}<div class="tp-children" style="{{.Style}}">{{range .Items}}{{.}}{{end}}</div>{{end}}`

func css(decls ...string) template.CSS {
	return template.CSS(styles.Join(decls...))
}

func block(s string, decls ...string) *textBlock {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &textBlock{Text: s, Style: css(decls...)}
}

func (sr *SectionRenderer) title(heading, extra, align string) *textBlock {
	return block(heading, styles.SectionTitle(sr.ctx), extra, "text-align:"+align)
}

func (sr *SectionRenderer) body(s, extra string) *textBlock {
	return block(s, styles.Body(sr.ctx), extra)
}

func (sr *SectionRenderer) itemTitle(s, extra string) *textBlock {
	return block(s, styles.ItemTitle(sr.ctx), extra)
}

func imageOf(img *page.Image, alt, style string, required bool, placeholderCSS string) *imageView {
	if img.Present() {
		return &imageView{Src: styles.SafeURL(img.Src()), Alt: styles.Or(img.Alt, alt), Style: css(style)}
	}
	if !required {
		return nil
	}
	return &imageView{Text: styles.NoImageText, Style: css(styles.PlaceholderCSS, placeholderCSS)}
}

func avatarOf(img *page.Image, name string, size int, mark string) *imageView {
	if img.Present() {
		return &imageView{Src: styles.SafeURL(img.Src()), Alt: name, Style: template.CSS(styles.AvatarCSS(size))}
	}
	return &imageView{Text: styles.Initial(name), Style: css(styles.InitialCSS(size), mark)}
}

func linkOf(href, class, style, label string) linkView {
	return linkView{Class: class, Href: styles.Href(href), Style: css(style), Text: label}
}

func buttonsOf(buttons []page.Button, accent, justify string) *buttonsView {
	var items []linkView
	for _, b := range buttons {
		if b.Text == "" {
			continue
		}
		bs := styles.ActionButton(b, accent)
		items = append(items, linkOf(b.URL, bs.Class, bs.CSS, b.Text))
	}
	if len(items) == 0 {
		return nil
	}
	return &buttonsView{Style: css(styles.ButtonRowCSS, "justify-content:"+justify), Items: items}
}

func embedOf(e styles.Embed, title string) *embedView {
	switch e.Kind {
	case styles.EmbedYouTube, styles.EmbedVimeo:
		return &embedView{Player: true, Src: e.Src, Title: styles.Or(title, "Video"), Allow: styles.IframeAllow,
			FrameStyle: styles.AspectVideo, Style: styles.AspectFill}
	case styles.EmbedFile:
		return &embedView{File: true, Src: e.Src, Style: styles.VideoFileCSS}
	default:
		return &embedView{Text: styles.NoVideoText, Style: css(styles.PlaceholderCSS, "aspect-ratio:16/9")}
	}
}

func socialOf(e styles.Embed, platform string) *socialView {
	switch e.Kind {
	case styles.EmbedIframe:
		return &socialView{Frame: true, Src: e.Src, Title: styles.Or(platform, "social") + " embed",
			FrameStyle: styles.SocialFrameCSS, Style: template.CSS(styles.SocialIframeCSS(e.Height))}
	case styles.EmbedLink:
		return &socialView{Src: styles.Href(e.Src), Text: e.Label, Style: styles.SocialLinkCSS}
	default:
		return nil
	}
}

func childrenOf(nested []template.HTML) template.HTML {
	return execute("part-children", childrenView{Style: styles.ChildrenCSS, Items: nested})
}
