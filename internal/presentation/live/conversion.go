package live

import (
	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

func (lr *Renderer) ConversionPanel(s *page.Section, c *page.ConversionPanelContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	css := styles.Join(skin.Card, styles.NarrowCSS, "text-align:center")
	sticky := ""
	if c.Sticky {
		css = styles.Join(css, styles.StickyCSS)
		sticky = "true"
	}
	return el("div", attrs("class", "tp-conversion "+skin.Class(), "style", css, "data-sticky", sticky),
		textEl("span", "tp-badge", styles.Join(skin.Badge, "margin-bottom:16px"), c.Badge),
		lr.title(c.Heading, skin.Heading, "center"),
		image(c.Image, c.Heading, styles.Join(styles.RoundImageCSS, "margin:0 auto 24px"), false, ""),
		lr.body(c.Text, skin.Muted),
		lr.actionButtons(c.Buttons, skin.Accent, "center"),
		textEl("p", "tp-note", styles.NoteCSS, c.Note),
	)
}

func (lr *Renderer) Pricing(s *page.Section, c *page.PricingContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	grid := styles.Grid(min(len(c.Plans), 4), lr.ctx.Viewport)
	plans := make([]*html.Node, 0, len(c.Plans))
	for _, p := range c.Plans {
		card, featured := skin.Card, "false"
		var badge *html.Node
		if p.IsFeatured {
			card, featured = skin.FeaturedCard(), "true"
			badge = textEl("span", "tp-badge", skin.Badge, styles.Or(p.Badge, styles.DefaultFeaturedTag))
		}
		if p.Color != "" {
			card = styles.Join(card, "border-top:4px solid "+styles.Color(p.Color, skin.Accent))
		}
		features := make([]*html.Node, 0, len(p.Features))
		for _, f := range p.Features {
			features = append(features, el("li", attrs("style", "display:flex;gap:8px"),
				el("span", attrs("style", "color:"+skin.Accent), text(styles.CheckMark)),
				el("span", nil, text(f)),
			))
		}
		bs := styles.SkinButton(skin)
		plans = append(plans, el("div", attrs("class", "tp-plan", "style", styles.Join(card, styles.CardStackCSS, "text-align:center"), "data-featured", featured, "data-item-id", string(p.ID)),
			badge,
			textEl("div", "tp-plan-icon", styles.IconCSS, p.Icon),
			lr.itemTitle(p.Name, skin.Title),
			el("p", attrs("class", "tp-price", "style", styles.PriceCSS),
				text(p.Price),
				textEl("span", "tp-period", styles.Join(styles.PeriodCSS, skin.Muted), p.Period),
			),
			el("ul", attrs("class", "tp-features", "style", styles.FeatureListCSS), features...),
			link(p.ButtonURL, bs.Class, styles.Join(bs.CSS, "margin-top:auto"), styles.Or(p.ButtonText, styles.DefaultPlanButton)),
		))
	}
	return el("div", attrs("class", "tp-pricing "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		lr.body(c.Text, styles.IntroCSS),
		el("div", attrs("class", grid.Class, "style", styles.Join(grid.CSS, "align-items:stretch")), plans...),
	)
}

func (lr *Renderer) SpeechBubble(s *page.Section, c *page.SpeechBubbleContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	direction := "row"
	position := styles.Or(c.Position, "left")
	if position == "right" {
		direction = "row-reverse"
	}
	bubble := skin.Card
	if c.BubbleColor != "" {
		bubble = styles.Join(bubble, "background:"+styles.Color(c.BubbleColor, "#ffffff"))
	}
	return el("div", attrs("class", "tp-speech tp-speech-"+position+" "+skin.Class(), "style", styles.Join(styles.RowCSS, "flex-direction:"+direction, styles.NarrowCSS)),
		el("div", attrs("class", "tp-speaker", "style", "flex:none;text-align:center;width:96px"),
			avatar(c.Avatar, c.Name, 80, skin.Mark),
			textEl("p", "tp-speaker-name", styles.Join(styles.NameCSS, "margin-top:8px;font-size:13px"), c.Name),
		),
		el("div", attrs("class", "tp-bubble", "style", styles.Join(bubble, styles.FlexFillCSS)),
			lr.body(c.Text, ""),
		),
	)
}
