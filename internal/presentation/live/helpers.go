package live

import (
	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

// title draws a section heading, or nothing when heading is blank.
func (lr *Renderer) title(heading, css, align string) *html.Node {
	return textEl("h2", "tp-section-title", styles.Join(styles.SectionTitle(lr.ctx), css, "text-align:"+align), heading)
}

// body draws running text, or nothing when s is blank.
func (lr *Renderer) body(s, css string) *html.Node {
	return textEl("p", "tp-body", styles.Join(styles.Body(lr.ctx), css), s)
}

func (lr *Renderer) itemTitle(s, css string) *html.Node {
	return textEl("h3", "tp-item-title", styles.Join(styles.ItemTitle(lr.ctx), css), s)
}

// image draws img, the muted placeholder when required, or nothing.
func image(img *page.Image, alt, css string, required bool, placeholderCSS string) *html.Node {
	if img.Present() {
		return el("img", attrs("src", styles.SafeURL(img.Src()), "alt", styles.Or(img.Alt, alt), "style", css, "loading", "lazy"))
	}
	if !required {
		return nil
	}
	return el("div", attrs("class", "tp-placeholder", "style", styles.Join(styles.PlaceholderCSS, placeholderCSS)), text(styles.NoImageText))
}

// avatar draws a round portrait or the name's initial.
func avatar(img *page.Image, name string, size int, mark string) *html.Node {
	if img.Present() {
		return el("img", attrs("src", styles.SafeURL(img.Src()), "alt", name, "style", styles.AvatarCSS(size), "loading", "lazy"))
	}
	return el("div", attrs("class", "tp-initial", "style", styles.Join(styles.InitialCSS(size), mark)), text(styles.Initial(name)))
}

func (lr *Renderer) actionButtons(buttons []page.Button, accent, justify string) *html.Node {
	var links []*html.Node
	for _, b := range buttons {
		if b.Text == "" {
			continue
		}
		bs := styles.ActionButton(b, accent)
		links = append(links, el("a", attrs("class", bs.Class, "href", styles.Href(b.URL), "style", bs.CSS), text(b.Text)))
	}
	if len(links) == 0 {
		return nil
	}
	return el("div", attrs("class", "tp-buttons", "style", styles.Join(styles.ButtonRowCSS, "justify-content:"+justify)), links...)
}

func link(href, class, css, label string) *html.Node {
	return el("a", attrs("class", class, "href", styles.Href(href), "style", css), text(label))
}

func (lr *Renderer) embedFrame(e styles.Embed, title string) *html.Node {
	switch e.Kind {
	case styles.EmbedYouTube, styles.EmbedVimeo:
		return el("div", attrs("class", "tp-embed", "style", styles.AspectVideo),
			flag(el("iframe", attrs("src", e.Src, "title", styles.Or(title, "Video"), "style", styles.AspectFill, "allow", styles.IframeAllow, "loading", "lazy")), "allowfullscreen"))
	case styles.EmbedFile:
		return flag(el("video", attrs("src", e.Src, "style", styles.VideoFileCSS)), "controls", "playsinline")
	default:
		return el("div", attrs("class", "tp-placeholder", "style", styles.Join(styles.PlaceholderCSS, "aspect-ratio:16/9")), text(styles.NoVideoText))
	}
}

func (lr *Renderer) socialFrame(e styles.Embed, platform string) *html.Node {
	switch e.Kind {
	case styles.EmbedIframe:
		return el("div", attrs("class", "tp-social-frame", "style", styles.SocialFrameCSS),
			flag(el("iframe", attrs("src", e.Src, "title", styles.Or(platform, "social")+" embed", "style", styles.SocialIframeCSS(e.Height), "loading", "lazy")), "allowfullscreen"))
	case styles.EmbedLink:
		return link(e.Src, "tp-social-link", styles.SocialLinkCSS, e.Label)
	default:
		return nil
	}
}
