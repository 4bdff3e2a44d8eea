package templates

import (
	"html/template"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

const conversionTemplates = `{{define "conversion_panel"}}<div class="{{.Class}}" style="{{.Style}}"{{if .Sticky}} data-sticky="true"{{end}}>` +
	`{{with .Badge}}<span class="tp-badge" style="{{.Style}}">{{.Text}}</span>{{end}}{{template "part-title" .Title}}{{template "part-img" .Img}}` +
	`{{template "part-body" .Body}}{{template "part-buttons" .Buttons}}{{with .Note}}<p class="tp-note" style="{{.Style}}">{{.Text}}</p>{{end}}</div>{{end}}` +
	`{{define "pricing"}}<div class="{{.Class}}">{{template "part-title" .Title}}{{template "part-body" .Intro}}<div class="{{.GridClass}}" style="{{.GridStyle}}">` +
	`{{range .Plans}}<div class="tp-plan" style="{{.Style}}" data-featured="{{.Featured}}"{{with .ID}} data-item-id="{{.}}"{{end}}>` +
	`{{with .Badge}}<span class="tp-badge" style="{{.Style}}">{{.Text}}</span>{{end}}{{with .Icon}}<div class="tp-plan-icon" style="{{.Style}}">{{.Text}}</div>{{end}}` +
	`{{template "part-item" .Name}}<p class="tp-price" style="{{$.PriceStyle}}">{{.Price}}{{with .Period}}<span class="tp-period" style="{{.Style}}">{{.Text}}</span>{{end}}</p>` +
	`<ul class="tp-features" style="{{$.FeatureStyle}}">{{range .Features}}<li style="display:flex;gap:8px"><span style="{{$.CheckStyle}}">{{$.Check}}</span><span>{{.}}</span></li>{{end}}</ul>` +
	`{{template "part-link" .Button}}</div>{{end}}</div></div>{{end}}` +
	`{{define "speech_bubble"}}<div class="{{.Class}}" style="{{.Style}}"><div class="tp-speaker" style="flex:none;text-align:center;width:96px">` +
	`{{template "part-avatar" .Avatar}}{{with .Name}}<p class="tp-speaker-name" style="{{.Style}}">{{.Text}}</p>{{end}}</div>` +
	`<div class="tp-bubble" style="{{.BubbleStyle}}">{{template "part-body" .Body}}</div></div>{{end}}`

type conversionView struct {
	Class   string
	Style   template.CSS
	Sticky  bool
	Badge   *textBlock
	Title   *textBlock
	Img     *imageView
	Body    *textBlock
	Buttons *buttonsView
	Note    *textBlock
}

func (sr *SectionRenderer) ConversionPanel(s *page.Section, c *page.ConversionPanelContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	style := styles.Join(skin.Card, styles.NarrowCSS, "text-align:center")
	if c.Sticky {
		style = styles.Join(style, styles.StickyCSS)
	}
	return execute("conversion_panel", conversionView{
		Class:   "tp-conversion " + skin.Class(),
		Style:   template.CSS(style),
		Sticky:  c.Sticky,
		Badge:   block(c.Badge, skin.Badge, "margin-bottom:16px"),
		Title:   sr.title(c.Heading, skin.Heading, "center"),
		Img:     imageOf(c.Image, c.Heading, styles.Join(styles.RoundImageCSS, "margin:0 auto 24px"), false, ""),
		Body:    sr.body(c.Text, skin.Muted),
		Buttons: buttonsOf(c.Buttons, skin.Accent, "center"),
		Note:    block(c.Note, styles.NoteCSS),
	})
}

type planView struct {
	ID       string
	Style    template.CSS
	Featured string
	Badge    *textBlock
	Icon     *textBlock
	Name     *textBlock
	Price    string
	Period   *textBlock
	Features []string
	Button   linkView
}

type pricingView struct {
	Class        string
	Title        *textBlock
	Intro        *textBlock
	GridClass    string
	GridStyle    template.CSS
	PriceStyle   template.CSS
	FeatureStyle template.CSS
	CheckStyle   template.CSS
	Check        string
	Plans        []planView
}

func (sr *SectionRenderer) Pricing(s *page.Section, c *page.PricingContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	grid := styles.Grid(min(len(c.Plans), 4), sr.ctx.Viewport)
	v := pricingView{
		Class:        "tp-pricing " + skin.Class(),
		Title:        sr.title(c.Heading, skin.Heading, "center"),
		Intro:        sr.body(c.Text, styles.IntroCSS),
		GridClass:    grid.Class,
		GridStyle:    css(grid.CSS, "align-items:stretch"),
		PriceStyle:   styles.PriceCSS,
		FeatureStyle: styles.FeatureListCSS,
		CheckStyle:   css("color:" + skin.Accent),
		Check:        styles.CheckMark,
	}
	bs := styles.SkinButton(skin)
	for _, p := range c.Plans {
		card, featured := skin.Card, "false"
		var badge *textBlock
		if p.IsFeatured {
			card, featured = skin.FeaturedCard(), "true"
			badge = block(styles.Or(p.Badge, styles.DefaultFeaturedTag), skin.Badge)
		}
		if p.Color != "" {
			card = styles.Join(card, "border-top:4px solid "+styles.Color(p.Color, skin.Accent))
		}
		v.Plans = append(v.Plans, planView{
			ID:       string(p.ID),
			Style:    css(card, styles.CardStackCSS, "text-align:center"),
			Featured: featured,
			Badge:    badge,
			Icon:     block(p.Icon, styles.IconCSS),
			Name:     sr.itemTitle(p.Name, skin.Title),
			Price:    p.Price,
			Period:   block(p.Period, styles.PeriodCSS, skin.Muted),
			Features: p.Features,
			Button:   linkOf(p.ButtonURL, bs.Class, styles.Join(bs.CSS, "margin-top:auto"), styles.Or(p.ButtonText, styles.DefaultPlanButton)),
		})
	}
	return execute("pricing", v)
}

type speechView struct {
	Class       string
	Style       template.CSS
	Avatar      *imageView
	Name        *textBlock
	BubbleStyle template.CSS
	Body        *textBlock
}

func (sr *SectionRenderer) SpeechBubble(s *page.Section, c *page.SpeechBubbleContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	direction := "row"
	position := styles.Or(c.Position, "left")
	if position == "right" {
		direction = "row-reverse"
	}
	bubble := skin.Card
	if c.BubbleColor != "" {
		bubble = styles.Join(bubble, "background:"+styles.Color(c.BubbleColor, "#ffffff"))
	}
	return execute("speech_bubble", speechView{
		Class:       "tp-speech tp-speech-" + position + " " + skin.Class(),
		Style:       css(styles.RowCSS, "flex-direction:"+direction, styles.NarrowCSS),
		Avatar:      avatarOf(c.Avatar, c.Name, 80, skin.Mark),
		Name:        block(c.Name, styles.NameCSS, "margin-top:8px;font-size:13px"),
		BubbleStyle: css(bubble, styles.FlexFillCSS),
		Body:        sr.body(c.Text, ""),
	})
}
