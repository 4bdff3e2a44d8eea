package live

import (
	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

func (lr *Renderer) Text(s *page.Section, c *page.TextContent, nested []*html.Node) *html.Node {
	align := styles.Align(c.Align, "left")
	return el("div", attrs("class", "tp-text", "style", "text-align:"+align),
		lr.title(c.Heading, "", align),
		lr.body(c.Text, ""),
	)
}

func (lr *Renderer) Image(s *page.Section, c *page.ImageContent, nested []*html.Node) *html.Node {
	align := styles.Align(c.Align, "center")
	design := styles.Or(c.Design, "plain")
	frame := styles.Join("display:inline-block", styles.WidthCSS(c.Width), styles.ImageFrame(design))

	img := image(c.Image, c.Caption, styles.FillImageCSS, true, "aspect-ratio:16/9")
	if c.Image.Present() && c.Link != "" {
		img = el("a", attrs("href", styles.Href(c.Link)), img)
	}
	return el("figure", attrs("class", "tp-image tp-image-"+design, "style", styles.Join(styles.FigureCSS, "text-align:"+align)),
		el("div", attrs("class", "tp-image-frame", "style", frame), img),
		textEl("figcaption", "tp-caption", styles.CaptionCSS, c.Caption),
	)
}

func (lr *Renderer) ImageText(s *page.Section, c *page.ImageTextContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	split := styles.Split(c.ImagePosition == "right", lr.ctx.Viewport)
	return el("div", attrs("class", styles.Classes("tp-image-text", split.Class, skin.Class()), "style", split.CSS),
		el("div", attrs("class", "tp-pane tp-pane-media", "style", styles.PaneCSS),
			image(c.Image, c.Heading, styles.RoundImageCSS, true, "aspect-ratio:4/3"),
		),
		el("div", attrs("class", "tp-pane tp-pane-text", "style", styles.PaneCSS),
			lr.title(c.Heading, skin.Heading, "left"),
			lr.body(c.Text, ""),
			lr.actionButtons(c.Buttons, skin.Accent, "flex-start"),
		),
	)
}

func (lr *Renderer) Heading(s *page.Section, c *page.HeadingContent, nested []*html.Node) *html.Node {
	align := styles.Align(c.Align, "center")
	hs := styles.Heading(c.Design, c.Color, lr.ctx.AccentColor, align)
	tag, base := "h2", styles.BaseSectionTitle
	if c.Level == 3 {
		tag, base = "h3", styles.BaseSectionTitle*0.8
	}

	var heading, decoration *html.Node
	if c.Heading != "" {
		heading = textEl(tag, "tp-heading-text", styles.Join(hs.Text, styles.FontSize(base, lr.ctx.FontSizes.SectionTitle, lr.ctx.Viewport)), c.Heading)
		if hs.Decoration != "" {
			decoration = el("div", attrs("class", "tp-heading-decoration", "style", hs.Decoration, "aria-hidden", "true"))
		}
	}
	return el("div", attrs("class", "tp-heading tp-heading-"+hs.Name, "style", "text-align:"+align),
		heading,
		decoration,
		textEl("p", "tp-heading-sub", styles.HeadingSubCSS, c.Subheading),
	)
}

func (lr *Renderer) Video(s *page.Section, c *page.VideoContent, nested []*html.Node) *html.Node {
	e := styles.VideoEmbed(c.URL, c.Autoplay)
	player := lr.embedFrame(e, c.Heading)
	if e.Kind == styles.EmbedFile && c.Autoplay {
		flag(player, "autoplay", "muted", "loop")
	}
	return el("div", attrs("class", "tp-video"),
		lr.title(c.Heading, "", "center"),
		el("div", attrs("class", "tp-video-frame", "style", styles.WidthCSS(c.Width)), player),
		textEl("p", "tp-caption", styles.Join(styles.CaptionCSS, "text-align:center"), c.Caption),
	)
}

func (lr *Renderer) Button(s *page.Section, c *page.ButtonContent, nested []*html.Node) *html.Node {
	bs := styles.Button(c.Size, c.Effect, c.Color, c.TextColor, c.Rounded, lr.ctx.AccentColor)
	align := styles.Align(c.Align, "center")
	a := link(c.URL, bs.Class, bs.CSS, styles.Or(c.Text, styles.DefaultButtonText))
	if c.NewTab {
		a.Attr = append(a.Attr, attrs("target", "_blank", "rel", "noopener noreferrer")...)
	}
	return el("div", attrs("class", "tp-button", "style", "text-align:"+align),
		a,
		textEl("p", "tp-note", styles.NoteCSS, c.Note),
	)
}

func (lr *Renderer) Social(s *page.Section, c *page.SocialContent, nested []*html.Node) *html.Node {
	platform := styles.Platform(c.Platform, c.URL)
	e := styles.SocialEmbed(c.Platform, c.URL)
	return el("div", attrs("class", "tp-social tp-social-"+styles.Or(platform, "link"), "style", "text-align:center"),
		lr.title(c.Heading, "", "center"),
		lr.socialFrame(e, platform),
		textEl("p", "tp-caption", styles.CaptionCSS, c.Caption),
	)
}
