package live

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

// RenderPage renders a whole preview document for viewport.
func RenderPage(doc *page.Document, viewport rendering.Viewport) (string, error) {
	lr := NewRenderer(rendering.NewRenderContext(doc, viewport))
	out, err := Render(lr.Page(doc))
	if err != nil {
		return "", err
	}
	return "<!DOCTYPE html>" + out, nil
}

// Page builds the html element of the preview document. The live preview
// draws the floating call-to-action visible; the export hides it until the
// hero scrolls away.
func (lr *Renderer) Page(doc *page.Document) *html.Node {
	if doc == nil {
		doc = &page.Document{}
	}
	return el("html", attrs("lang", "en"),
		el("head", nil,
			el("meta", attrs("charset", "utf-8")),
			el("meta", attrs("name", "viewport", "content", "width=device-width, initial-scale=1")),
			el("title", nil, text(doc.SiteTitle)),
			el("style", nil, text(styles.Stylesheet)),
		),
		el("body", attrs("style", styles.BodyCSS(doc, lr.ctx), "data-viewport", string(lr.ctx.Viewport)),
			lr.Header(doc),
			lr.Hero(doc.Hero),
			el("main", attrs("class", "tp-main"), lr.RenderSections(doc.Sections)...),
			lr.FloatingCTA(doc.FloatingCTA, ""),
			el("script", nil, text(styles.MenuScript)),
		),
	)
}

// Header draws the top bar with its logo and navigation.
func (lr *Renderer) Header(doc *page.Document) *html.Node {
	hs := styles.Header(doc.Header, lr.ctx)
	var logo *html.Node
	if src := styles.SafeURL(doc.Header.LogoURL); src != "" && src != "#" {
		logo = el("img", attrs("src", src, "alt", doc.SiteTitle, "style", styles.Join("display:block;width:auto", "height:"+strconv.Itoa(hs.LogoHeight)+"px")))
	} else {
		logo = text(doc.SiteTitle)
	}
	links := make([]*html.Node, 0, len(doc.MenuItems))
	for _, m := range doc.MenuItems {
		links = append(links, link(m.URL, "tp-nav-link", hs.LinkCSS, m.Label))
	}
	var nav, toggle *html.Node
	if len(links) > 0 {
		toggle = el("button", attrs("class", "tp-nav-toggle", "type", "button", "style", hs.ToggleCSS, "aria-label", "Menu", "aria-expanded", "false"), text(styles.MenuToggleText))
		nav = el("nav", attrs("class", "tp-nav", "style", hs.NavCSS), links...)
	}
	return el("header", attrs("class", hs.Class, "style", hs.CSS),
		el("div", attrs("class", "tp-header-row", "style", hs.RowCSS),
			el("a", attrs("class", "tp-logo", "href", "#", "style", hs.LogoCSS), logo),
			toggle,
			nav,
		),
	)
}

// Hero draws the media block under the header.
func (lr *Renderer) Hero(h page.Hero) *html.Node {
	hs := styles.Hero(h, lr.ctx)
	var media *html.Node
	switch hs.Media.Kind {
	case styles.EmbedFile:
		media = flag(el("video", attrs("class", "tp-hero-media", "src", hs.Media.Src, "style", hs.MediaCSS)), "autoplay", "muted", "loop", "playsinline")
	case styles.EmbedYouTube, styles.EmbedVimeo:
		media = el("iframe", attrs("class", "tp-hero-media", "src", hs.Media.Src, "title", "Background video", "style", hs.MediaCSS, "allow", styles.IframeAllow, "tabindex", "-1"))
	case styles.EmbedImage:
		media = el("div", attrs("class", "tp-hero-media", "style", hs.MediaCSS, "role", "img", "aria-label", h.Title))
	}
	return el("div", attrs("class", "tp-hero", "style", hs.CSS, "data-media", hs.Media.Kind),
		media,
		el("div", attrs("class", "tp-hero-overlay", "style", hs.OverlayCSS, "aria-hidden", "true")),
		el("div", attrs("class", "tp-hero-content", "style", hs.ContentCSS),
			textEl("h1", "tp-hero-title", hs.TitleCSS, h.Title),
			textEl("p", "tp-hero-subtitle", hs.SubCSS, h.Subtitle),
			lr.actionButtons(h.Buttons, lr.ctx.AccentColor, "center"),
		),
	)
}

// FloatingCTA draws the docked call-to-action, or nothing when disabled.
func (lr *Renderer) FloatingCTA(f page.FloatingCTA, class string) *html.Node {
	if !f.Enabled || f.Text == "" {
		return nil
	}
	return el("a", attrs("id", "tp-floating-cta", "class", class, "href", styles.Href(f.URL), "style", styles.FloatingCTA(f, lr.ctx.AccentColor)), text(f.Text))
}
