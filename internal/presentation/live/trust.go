package live

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

func (lr *Renderer) Process(s *page.Section, c *page.ProcessContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	stepType := styles.Or(c.StepType, page.StepNumbered)

	step := func(st page.Step, css string, lead ...*html.Node) *html.Node {
		children := append(lead,
			textEl("div", "tp-step-icon", styles.IconCSS, st.Icon),
			image(st.Image, st.Title, styles.RoundImageCSS, false, ""),
			lr.itemTitle(st.Title, skin.Title),
			lr.body(st.Text, skin.Muted),
		)
		return el("li", attrs("class", "tp-step", "style", css, "data-item-id", string(st.ID)), children...)
	}

	var list *html.Node
	items := make([]*html.Node, 0, len(c.Steps)*2)
	switch stepType {
	case page.StepTimeline:
		for i, st := range c.Steps {
			items = append(items, step(st, styles.Join("position:relative", styles.CardStackCSS),
				el("span", attrs("class", "tp-timeline-dot", "style", styles.Join(styles.TimelineDotCSS, styles.AccentFill(skin.Accent)), "aria-hidden", "true")),
				el("span", attrs("class", "tp-step-label", "style", skin.Badge), text(styles.StepLabel(i))),
			))
		}
		list = el("ol", attrs("class", "tp-steps", "style", styles.Join(styles.ListResetCSS, styles.StackCSS, styles.AccentBorder(skin.Accent), "gap:32px", styles.NarrowCSS)), items...)
	case page.StepCards:
		grid := styles.Grid(min(max(len(c.Steps), 1), 4), lr.ctx.Viewport)
		for i, st := range c.Steps {
			items = append(items, step(st, styles.Join(skin.Card, styles.CardStackCSS),
				el("span", attrs("class", "tp-step-label", "style", styles.Join("font-weight:800;font-size:28px", styles.AccentText(skin.Accent))), text(styles.StepLabel(i))),
			))
		}
		list = el("ol", attrs("class", "tp-steps "+grid.Class, "style", styles.Join(styles.ListResetCSS, grid.CSS)), items...)
	case page.StepArrow:
		for i, st := range c.Steps {
			if i > 0 {
				items = append(items, el("li", attrs("class", "tp-step-arrow", "style", styles.Join(styles.ArrowCSS, styles.AccentText(skin.Accent)), "aria-hidden", "true"), text(styles.ArrowMark)))
			}
			items = append(items, step(st, styles.Join(skin.Card, styles.CardStackCSS, "flex:1 1 180px"),
				el("span", attrs("class", "tp-step-label", "style", styles.Join(styles.MarkCSSBox(40), skin.Mark)), text(styles.StepLabel(i))),
			))
		}
		list = el("ol", attrs("class", "tp-steps", "style", styles.Join(styles.ListResetCSS, "display:flex;flex-wrap:wrap;gap:16px")), items...)
	default:
		for i, st := range c.Steps {
			items = append(items, step(st, styles.Join(skin.Card, styles.CardStackCSS),
				el("span", attrs("class", "tp-step-label", "style", styles.Join(styles.MarkCSSBox(40), skin.Mark)), text(styles.StepLabel(i))),
			))
		}
		list = el("ol", attrs("class", "tp-steps", "style", styles.Join(styles.ListResetCSS, styles.StackCSS, styles.NarrowCSS)), items...)
	}
	return el("div", attrs("class", "tp-process tp-process-"+stepType+" "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		list,
	)
}

func (lr *Renderer) Staff(s *page.Section, c *page.StaffContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	layout := styles.Or(c.LayoutType, page.StaffGrid)
	members := make([]*html.Node, 0, len(c.Members))
	for _, m := range c.Members {
		info := []*html.Node{
			lr.itemTitle(m.Name, skin.Title),
			textEl("p", "tp-role", styles.Join(styles.RoleCSS, styles.AccentText(skin.Accent)), m.Role),
			lr.body(m.Text, styles.Join("margin-top:8px", skin.Muted)),
		}
		var card *html.Node
		switch layout {
		case page.StaffList:
			card = el("div", attrs("class", "tp-member", "style", styles.Join(skin.Card, styles.RowCSS), "data-item-id", string(m.ID)),
				portrait(m, 120, skin),
				el("div", attrs("style", styles.FlexFillCSS), info...),
			)
		case page.StaffCircle:
			card = el("div", attrs("class", "tp-member", "style", "text-align:center", "data-item-id", string(m.ID)),
				append([]*html.Node{el("div", attrs("style", "display:flex;justify-content:center;margin-bottom:16px"), portrait(m, 160, skin))}, info...)...,
			)
		default:
			card = el("div", attrs("class", "tp-member", "style", styles.Join(skin.Card, styles.CardStackCSS), "data-item-id", string(m.ID)),
				append([]*html.Node{image(m.Image, m.Name, styles.SquareImageCSS, true, "aspect-ratio:1/1")}, info...)...,
			)
		}
		members = append(members, card)
	}

	var list *html.Node
	if layout == page.StaffList {
		list = el("div", attrs("class", "tp-members", "style", styles.Join(styles.StackCSS, styles.NarrowCSS)), members...)
	} else {
		grid := styles.Grid(min(max(len(c.Members), 1), 4), lr.ctx.Viewport)
		list = el("div", attrs("class", "tp-members "+grid.Class, "style", grid.CSS), members...)
	}
	return el("div", attrs("class", "tp-staff tp-staff-"+layout+" "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		list,
	)
}

// portrait draws a round member photo, falling back to the initial.
func portrait(m page.Member, size int, skin styles.SkinStyle) *html.Node {
	return avatar(m.Image, m.Name, size, skin.Mark)
}

func (lr *Renderer) FAQ(s *page.Section, c *page.FAQContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	items := make([]*html.Node, 0, len(c.FAQs))
	for _, f := range c.FAQs {
		var q, a *html.Node
		if f.Question != "" {
			q = el("dt", attrs("style", styles.Join(styles.RowCSS, "gap:12px", skin.Title)),
				el("span", attrs("class", "tp-mark", "style", styles.Join(styles.QuestionMarkCSS, styles.AccentText(skin.Accent))), text(styles.QuestionMark)),
				el("span", nil, text(f.Question)),
			)
		}
		if f.Answer != "" {
			a = el("dd", attrs("style", styles.Join(styles.RowCSS, "gap:12px;margin:12px 0 0", skin.Muted)),
				el("span", attrs("class", "tp-mark", "style", styles.QuestionMarkCSS), text(styles.AnswerMark)),
				lr.body(f.Answer, styles.FlexFillCSS),
			)
		}
		items = append(items, el("div", attrs("class", "tp-faq-item", "style", skin.Card, "data-item-id", string(f.ID)), q, a))
	}
	return el("div", attrs("class", "tp-faq "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		el("dl", attrs("class", "tp-faq-list", "style", styles.Join("margin:0", styles.CardStackCSS, styles.NarrowCSS)), items...),
	)
}

func (lr *Renderer) Comparison(s *page.Section, c *page.ComparisonContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	head := []*html.Node{el("th", attrs("style", styles.CellCSS))}
	for i, col := range c.Columns {
		css := styles.Join(styles.CellCSS, skin.Title)
		if i+1 == c.HighlightColumn {
			css = styles.Join(styles.CellCSS, "color:#ffffff;font-weight:700", styles.AccentFill(skin.Accent))
		}
		head = append(head, el("th", attrs("scope", "col", "style", css), text(col)))
	}
	rows := make([]*html.Node, 0, len(c.Rows))
	for _, r := range c.Rows {
		cells := []*html.Node{el("th", attrs("scope", "row", "style", styles.Join(styles.CellCSS, "text-align:left", skin.Title)), text(r.Label))}
		for i := range c.Columns {
			v := ""
			if i < len(r.Values) {
				v = r.Values[i]
			}
			mark, kind := styles.ComparisonMark(v)
			css := styles.Join(styles.CellCSS, styles.MarkCSS(kind, skin.Accent))
			if i+1 == c.HighlightColumn {
				css = styles.Join(css, styles.HighlightCSS)
			}
			cells = append(cells, el("td", attrs("style", css, "data-mark", kind), text(mark)))
		}
		rows = append(rows, el("tr", attrs("data-item-id", string(r.ID)), cells...))
	}
	return el("div", attrs("class", "tp-comparison "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		el("div", attrs("class", "tp-table-wrap", "style", styles.Join(styles.TableWrapCSS, skin.Card)),
			el("table", attrs("style", styles.TableCSS, "data-highlight", highlightAttr(c.HighlightColumn)),
				el("thead", nil, el("tr", nil, head...)),
				el("tbody", nil, rows...),
			),
		),
	)
}

func highlightAttr(col int) string {
	if col <= 0 {
		return ""
	}
	return strconv.Itoa(col)
}

func (lr *Renderer) Access(s *page.Section, c *page.AccessContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	layout := styles.Or(c.Layout, "side")
	paneCSS := "width:100%"
	container := el("div", attrs("class", "tp-access-body", "style", styles.StackCSS))
	if layout == "side" {
		split := styles.Split(false, lr.ctx.Viewport)
		paneCSS = styles.PaneCSS
		container = el("div", attrs("class", styles.Classes("tp-access-body", split.Class), "style", styles.Join(split.CSS, "align-items:stretch")))
	}

	if src := styles.MapEmbed(c.MapURL, c.MapQuery, c.Address); src != "" {
		container.AppendChild(el("div", attrs("class", "tp-map", "style", styles.Join(paneCSS, styles.MapFrameCSS)),
			el("iframe", attrs("src", src, "title", styles.Or(c.Address, c.MapQuery, "Map"), "style", styles.AspectFill, "loading", "lazy", "referrerpolicy", "no-referrer-when-downgrade")),
		))
	}

	rows := make([]*html.Node, 0, len(c.Items)*2)
	for _, r := range c.Items {
		rows = append(rows,
			el("dt", attrs("style", skin.Title, "data-item-id", string(r.ID)), text(r.Label)),
			el("dd", attrs("style", styles.Join("margin:0;white-space:pre-line", skin.Muted)), text(r.Value)),
		)
	}
	var info *html.Node
	if len(rows) > 0 {
		info = el("dl", attrs("class", "tp-info", "style", styles.InfoListCSS), rows...)
	}
	container.AppendChild(el("div", attrs("class", "tp-access-info", "style", styles.Join(paneCSS, skin.Card)),
		textEl("p", "tp-address", styles.AddressCSS, c.Address),
		info,
	))

	return el("div", attrs("class", "tp-access tp-access-"+layout+" "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		container,
	)
}

func (lr *Renderer) Review(s *page.Section, c *page.ReviewContent, nested []*html.Node) *html.Node {
	skin := styles.Skin(c.Design, lr.ctx.AccentColor)
	layout := styles.Or(c.LayoutType, page.ReviewCard)
	items := make([]*html.Node, 0, len(c.Items))
	for _, r := range c.Items {
		reviewer := el("footer", attrs("class", "tp-reviewer", "style", styles.ReviewerCSS),
			avatar(r.Avatar, r.Name, 48, skin.Mark),
			el("div", nil,
				textEl("p", "tp-reviewer-name", styles.Join(styles.NameCSS, skin.Title), r.Name),
				textEl("p", "tp-role", styles.Join(styles.RoleCSS, skin.Muted), r.Role),
			),
		)
		stars := el("p", attrs("class", "tp-stars", "style", styles.StarsCSS, "aria-label", strconv.Itoa(styles.Rating(r.Rating))+" / 5"), text(styles.Stars(r.Rating)))
		body := lr.body(r.Text, "")

		var card *html.Node
		switch layout {
		case page.ReviewBubble:
			card = el("blockquote", attrs("class", "tp-review", "style", "margin:0", "data-item-id", string(r.ID)),
				el("div", attrs("class", "tp-bubble", "style", styles.Join(skin.Card, "position:relative")), stars, body),
				reviewer,
			)
		case page.ReviewList:
			card = el("blockquote", attrs("class", "tp-review", "style", styles.Join("margin:0", skin.Card), "data-item-id", string(r.ID)),
				stars, body, reviewer,
			)
		default:
			card = el("blockquote", attrs("class", "tp-review", "style", styles.Join("margin:0", skin.Card, styles.CardStackCSS), "data-item-id", string(r.ID)),
				stars, body, reviewer,
			)
		}
		items = append(items, card)
	}

	var list *html.Node
	if layout == page.ReviewList {
		list = el("div", attrs("class", "tp-reviews", "style", styles.Join(styles.StackCSS, styles.NarrowCSS)), items...)
	} else {
		grid := styles.Grid(min(max(len(c.Items), 1), 3), lr.ctx.Viewport)
		list = el("div", attrs("class", "tp-reviews "+grid.Class, "style", grid.CSS), items...)
	}
	return el("div", attrs("class", "tp-review-list tp-review-"+layout+" "+skin.Class()),
		lr.title(c.Heading, skin.Heading, "center"),
		list,
	)
}
