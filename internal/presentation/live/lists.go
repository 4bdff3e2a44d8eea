package live

import (
	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

func (lr *Renderer) Accordion(s *page.Section, c *page.AccordionContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	items := make([]*html.Node, 0, len(c.Items))
	for _, it := range c.Items {
		d := el("details", attrs("class", "tp-accordion-item", "style", skin.Card, "data-item-id", string(it.ID)),
			el("summary", attrs("style", styles.Join(styles.SummaryCSS, skin.Title)),
				el("span", nil, text(it.Title)),
				el("span", attrs("class", "tp-accordion-icon", "aria-hidden", "true"), text(styles.AccordionIcon)),
			),
			lr.body(it.Text, styles.Join("margin-top:12px", skin.Muted)),
		)
		if it.Open {
			flag(d, "open")
		}
		items = append(items, d)
	}
	return el("div", attrs("class", "tp-accordion "+skin.Class(), "style", styles.NarrowCSS),
		lr.title(c.Heading, skin.Heading, "center"),
		el("div", attrs("class", "tp-accordion-list", "style", styles.CardStackCSS), items...),
	)
}

func (lr *Renderer) PostCard(s *page.Section, c *page.PostCardContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	grid := styles.Grid(styles.OrInt(c.ColumnCount, 3), lr.ctx.Viewport)
	cards := make([]*html.Node, 0, len(c.Items))
	for _, it := range c.Items {
		var meta *html.Node
		if it.Tag != "" || it.Date != "" {
			meta = el("div", attrs("class", "tp-card-meta", "style", styles.Join(styles.MetaRowCSS, skin.Muted)),
				textEl("span", "tp-badge", skin.Badge, it.Tag),
				textEl("time", "tp-date", "", it.Date),
			)
		}
		var more *html.Node
		if it.URL != "" {
			more = link(it.URL, "tp-read-more", styles.Join(styles.ReadMoreCSS, "color:"+skin.Accent), styles.ReadMoreText+" "+styles.ArrowMark)
		}
		cards = append(cards, el("article", attrs("class", "tp-card", "style", styles.Join(skin.Card, styles.CardStackCSS), "data-item-id", string(it.ID)),
			image(it.Image, it.Title, styles.CoverImageCSS, true, "aspect-ratio:16/9"),
			meta,
			lr.itemTitle(it.Title, skin.Title),
			lr.body(it.Text, skin.Muted),
			more,
		))
	}
	return el("div", attrs("class", "tp-post-cards "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		el("div", attrs("class", grid.Class, "style", grid.CSS), cards...),
	)
}

func (lr *Renderer) Columns(s *page.Section, c *page.ColumnsContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	colType := styles.Or(c.ColType, page.ColCard)
	grid := styles.Grid(styles.OrInt(c.ColumnCount, len(c.Items)), lr.ctx.Viewport)
	cols := make([]*html.Node, 0, len(c.Items))
	for _, it := range c.Items {
		var children []*html.Node
		switch colType {
		case page.ColText:
			children = append(children, lr.itemTitle(it.Title, skin.Title), lr.body(it.Text, ""))
		case page.ColImage:
			children = append(children,
				image(it.Image, it.Title, styles.RoundImageCSS, true, "aspect-ratio:4/3"),
				textEl("figcaption", "tp-item-title", styles.Join(styles.ItemTitle(lr.ctx), "margin-top:12px", skin.Title), it.Title),
				lr.body(it.Text, skin.Muted),
			)
		case page.ColVideo:
			children = append(children,
				lr.embedFrame(styles.VideoEmbed(it.URL, false), it.Title),
				lr.itemTitle(it.Title, styles.Join("margin-top:12px", skin.Title)),
				lr.body(it.Text, skin.Muted),
			)
		case page.ColSocial:
			children = append(children,
				lr.socialFrame(styles.SocialEmbed("", it.URL), styles.Platform("", it.URL)),
				lr.itemTitle(it.Title, styles.Join("margin-top:12px", skin.Title)),
				lr.body(it.Text, skin.Muted),
			)
		default:
			var btn *html.Node
			if it.ButtonText != "" {
				bs := styles.SkinButton(skin)
				btn = link(it.ButtonURL, bs.Class, bs.CSS, it.ButtonText)
			}
			children = append(children,
				image(it.Image, it.Title, styles.CoverImageCSS, false, ""),
				lr.itemTitle(it.Title, skin.Title),
				lr.body(it.Text, skin.Muted),
				btn,
			)
		}
		tag, css := "div", skin.Card
		if colType == page.ColImage {
			tag, css = "figure", styles.FigureCSS
		} else if colType == page.ColText {
			css = ""
		}
		cols = append(cols, el(tag, attrs("class", "tp-column tp-column-"+colType, "style", styles.Join(css, styles.CardStackCSS), "data-item-id", string(it.ID)), children...))
	}
	return el("div", attrs("class", "tp-columns "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		el("div", attrs("class", grid.Class, "style", grid.CSS), cols...),
	)
}

func (lr *Renderer) Links(s *page.Section, c *page.LinksContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	layout := styles.Or(c.Layout, "list")
	var list *html.Node
	switch layout {
	case "buttons":
		bs := styles.SkinButton(skin)
		items := make([]*html.Node, 0, len(c.Links))
		for _, l := range c.Links {
			items = append(items, link(l.URL, bs.Class, styles.Join(bs.CSS, "display:block;text-align:center"), styles.Or(l.Label, l.URL)))
		}
		list = el("div", attrs("class", "tp-links-list", "style", styles.Join(styles.CardStackCSS, styles.NarrowCSS)), items...)
	case "inline":
		items := make([]*html.Node, 0, len(c.Links))
		for _, l := range c.Links {
			items = append(items, el("li", nil, link(l.URL, "tp-link", styles.Join(styles.LinkLabelCSS, "color:"+skin.Accent), styles.Or(l.Label, l.URL))))
		}
		list = el("ul", attrs("class", "tp-links-list", "style", styles.Join(styles.ListResetCSS, styles.InlineLinksCSS)), items...)
	default:
		items := make([]*html.Node, 0, len(c.Links))
		for _, l := range c.Links {
			items = append(items, el("li", attrs("style", skin.Card, "data-item-id", string(l.ID)),
				link(l.URL, "tp-link", styles.Join(styles.LinkLabelCSS, "color:"+skin.Accent), styles.Or(l.Label, l.URL)),
				lr.body(l.Description, styles.Join("margin-top:4px", skin.Muted)),
			))
		}
		list = el("ul", attrs("class", "tp-links-list", "style", styles.Join(styles.ListResetCSS, styles.CardStackCSS, styles.NarrowCSS)), items...)
	}
	return el("div", attrs("class", "tp-links tp-links-"+layout+" "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		list,
	)
}

func (lr *Renderer) PointList(s *page.Section, c *page.PointListContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	tag := "ul"
	if c.Numbered {
		tag = "ol"
	}
	items := make([]*html.Node, 0, len(c.Items))
	for i, it := range c.Items {
		mark := styles.Or(it.Icon, styles.CheckMark)
		if c.Numbered {
			mark = styles.StepLabel(i)
		}
		items = append(items, el("li", attrs("class", "tp-point", "style", styles.Join(skin.Card, styles.RowCSS), "data-item-id", string(it.ID)),
			el("span", attrs("class", "tp-mark", "style", styles.Join(styles.MarkCSSBox(40), skin.Mark)), text(mark)),
			el("div", attrs("style", styles.FlexFillCSS),
				image(it.Image, it.Title, styles.Join(styles.RoundImageCSS, "margin-bottom:12px"), false, ""),
				lr.itemTitle(it.Title, skin.Title),
				lr.body(it.Text, skin.Muted),
			),
		))
	}
	return el("div", attrs("class", "tp-point-list "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		lr.body(c.Text, styles.IntroCSS),
		el(tag, attrs("class", "tp-points", "style", styles.Join(styles.ListResetCSS, styles.StackCSS, styles.NarrowCSS)), items...),
	)
}

func (lr *Renderer) ProblemChecklist(s *page.Section, c *page.ProblemChecklistContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	items := make([]*html.Node, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, el("li", attrs("class", "tp-check", "style", styles.Join(skin.Card, styles.RowCSS, "align-items:center"), "data-item-id", string(it.ID)),
			el("span", attrs("class", "tp-mark", "style", styles.Join(styles.MarkCSSBox(28), skin.Mark)), text(styles.CheckMark)),
			lr.body(it.Text, styles.FlexFillCSS),
		))
	}
	return el("div", attrs("class", "tp-problem-checklist "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		el("ul", attrs("class", "tp-checks", "style", styles.Join(styles.ListResetCSS, styles.CardStackCSS, styles.NarrowCSS)), items...),
		textEl("p", "tp-conclusion", styles.Join(styles.Body(lr.ctx), styles.ConclusionCSS, "color:"+skin.Accent), c.Conclusion),
	)
}
