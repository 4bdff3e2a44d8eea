package templates

import (
	"html/template"
	"strconv"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

const trustTemplates = `{{define "process"}}<div class="{{.Class}}">{{template "part-title" .Title}}<ol class="{{.ListClass}}" style="{{.ListStyle}}">` +
	`{{range .Steps}}{{if .Arrow}}<li class="tp-step-arrow" style="{{$.ArrowStyle}}" aria-hidden="true">{{$.ArrowMark}}</li>{{end}}` +
	`<li class="tp-step" style="{{$.StepStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>{{if $.Dot}}<span class="tp-timeline-dot" style="{{$.DotStyle}}" aria-hidden="true"></span>{{end}}` +
	`<span class="tp-step-label" style="{{$.LabelStyle}}">{{.Label}}</span>{{with .Icon}}<div class="tp-step-icon" style="{{.Style}}">{{.Text}}</div>{{end}}` +
	`{{template "part-img" .Img}}{{template "part-item" .Title}}{{template "part-body" .Body}}</li>{{end}}</ol></div>{{end}}` +
	`{{define "part-member"}}{{template "part-item" .Name}}{{with .Role}}<p class="tp-role" style="{{.Style}}">{{.Text}}</p>{{end}}{{template "part-body" .Body}}{{end}}` +
	`{{define "staff"}}<div class="{{.Class}}">{{template "part-title" .Title}}<div class="{{.ListClass}}" style="{{.ListStyle}}">` +
	`{{range .Members}}<div class="tp-member" style="{{$.MemberStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>` +
	`{{if eq $.Layout "list"}}{{template "part-avatar" .Portrait}}<div style="{{$.FillStyle}}">{{template "part-member" .}}</div>` +
	`{{else if eq $.Layout "circle"}}<div style="display:flex;justify-content:center;margin-bottom:16px">{{template "part-avatar" .Portrait}}</div>{{template "part-member" .}}` +
	`{{else}}{{template "part-img" .Img}}{{template "part-member" .}}{{end}}</div>{{end}}</div></div>{{end}}` +
	`{{define "faq"}}<div class="{{.Class}}">{{template "part-title" .Title}}<dl class="tp-faq-list" style="{{.ListStyle}}">` +
	`{{range .Items}}<div class="tp-faq-item" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>` +
	`{{if .Question}}<dt style="{{$.QuestionStyle}}"><span class="tp-mark" style="{{$.QuestionMarkStyle}}">{{$.QuestionMark}}</span><span>{{.Question}}</span></dt>{{end}}` +
	`{{if .HasAnswer}}<dd style="{{$.AnswerStyle}}"><span class="tp-mark" style="{{$.AnswerMarkStyle}}">{{$.AnswerMark}}</span>{{template "part-body" .Answer}}</dd>{{end}}` +
	`</div>{{end}}</dl></div>{{end}}` +
	`{{define "comparison"}}<div class="{{.Class}}">{{template "part-title" .Title}}<div class="tp-table-wrap" style="{{.WrapStyle}}">` +
	`<table style="{{.TableStyle}}"{{with .Highlight}} data-highlight="{{.}}"{{end}}><thead><tr><th style="{{.CellStyle}}"></th>` +
	`{{range .Columns}}<th scope="col" style="{{.Style}}">{{.Text}}</th>{{end}}</tr></thead><tbody>` +
	`{{range .Rows}}<tr{{with .ID}} data-item-id="{{.}}"{{end}}><th scope="row" style="{{$.RowHeadStyle}}">{{.Label}}</th>` +
	`{{range .Cells}}<td style="{{.Style}}" data-mark="{{.Kind}}">{{.Text}}</td>{{end}}</tr>{{end}}</tbody></table></div></div>{{end}}` +
	`{{define "access"}}<div class="{{.Class}}">{{template "part-title" .Title}}<div class="{{.BodyClass}}" style="{{.BodyStyle}}">` +
	`{{with .Map}}<div class="tp-map" style="{{.FrameStyle}}"><iframe src="{{.Src}}" title="{{.Title}}" style="{{.Style}}" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe></div>{{end}}` +
	`<div class="tp-access-info" style="{{.InfoStyle}}">{{with .Address}}<p class="tp-address" style="{{.Style}}">{{.Text}}</p>{{end}}` +
	`{{if .Rows}}<dl class="tp-info" style="{{.ListStyle}}">{{range .Rows}}<dt style="{{$.LabelStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>{{.Label}}</dt>` +
	`<dd style="{{$.ValueStyle}}">{{.Value}}</dd>{{end}}</dl>{{end}}</div></div></div>{{end}}` +
	`{{define "part-review"}}<p class="tp-stars" style="{{.StarsStyle}}" aria-label="{{.Rating}}">{{.Stars}}</p>{{template "part-body" .Body}}{{end}}` +
	`{{define "review"}}<div class="{{.Class}}">{{template "part-title" .Title}}<div class="{{.ListClass}}" style="{{.ListStyle}}">` +
	`{{range .Items}}<blockquote class="tp-review" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>` +
	`{{if $.Bubble}}<div class="tp-bubble" style="{{$.BubbleStyle}}">{{template "part-review" .}}</div>{{else}}{{template "part-review" .}}{{end}}` +
	`<footer class="tp-reviewer" style="{{$.ReviewerStyle}}">{{template "part-avatar" .Avatar}}<div>` +
	`{{with .Name}}<p class="tp-reviewer-name" style="{{.Style}}">{{.Text}}</p>{{end}}{{with .Role}}<p class="tp-role" style="{{.Style}}">{{.Text}}</p>{{end}}` +
	`</div></footer></blockquote>{{end}}</div></div>{{end}}`

type stepView struct {
	ID    string
	Arrow bool
	Label string
	Icon  *textBlock
	Img   *imageView
	Title *textBlock
	Body  *textBlock
}

type processView struct {
	Class      string
	Title      *textBlock
	ListClass  string
	ListStyle  template.CSS
	StepStyle  template.CSS
	LabelStyle template.CSS
	Dot        bool
	DotStyle   template.CSS
	ArrowStyle template.CSS
	ArrowMark  string
	Steps      []stepView
}

func (sr *SectionRenderer) Process(s *page.Section, c *page.ProcessContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	stepType := styles.Or(c.StepType, page.StepNumbered)
	v := processView{
		Class:      "tp-process tp-process-" + stepType + " " + skin.Class(),
		Title:      sr.title(c.Heading, skin.Heading, "center"),
		ListClass:  "tp-steps",
		StepStyle:  css(skin.Card, styles.CardStackCSS),
		LabelStyle: css(styles.MarkCSSBox(40), skin.Mark),
		ArrowStyle: css(styles.ArrowCSS, styles.AccentText(skin.Accent)),
		ArrowMark:  styles.ArrowMark,
	}
	switch stepType {
	case page.StepTimeline:
		v.ListStyle = css(styles.ListResetCSS, styles.StackCSS, styles.AccentBorder(skin.Accent), "gap:32px", styles.NarrowCSS)
		v.StepStyle = css("position:relative", styles.CardStackCSS)
		v.LabelStyle = template.CSS(skin.Badge)
		v.Dot = true
		v.DotStyle = css(styles.TimelineDotCSS, styles.AccentFill(skin.Accent))
	case page.StepCards:
		grid := styles.Grid(min(max(len(c.Steps), 1), 4), sr.ctx.Viewport)
		v.ListClass = "tp-steps " + grid.Class
		v.ListStyle = css(styles.ListResetCSS, grid.CSS)
		v.LabelStyle = css("font-weight:800;font-size:28px", styles.AccentText(skin.Accent))
	case page.StepArrow:
		v.ListStyle = css(styles.ListResetCSS, "display:flex;flex-wrap:wrap;gap:16px")
		v.StepStyle = css(skin.Card, styles.CardStackCSS, "flex:1 1 180px")
	default:
		v.ListStyle = css(styles.ListResetCSS, styles.StackCSS, styles.NarrowCSS)
	}
	for i, st := range c.Steps {
		v.Steps = append(v.Steps, stepView{
			ID:    string(st.ID),
			Arrow: stepType == page.StepArrow && i > 0,
			Label: styles.StepLabel(i),
			Icon:  block(st.Icon, styles.IconCSS),
			Img:   imageOf(st.Image, st.Title, styles.RoundImageCSS, false, ""),
			Title: sr.itemTitle(st.Title, skin.Title),
			Body:  sr.body(st.Text, skin.Muted),
		})
	}
	return execute("process", v)
}

type memberView struct {
	ID       string
	Portrait *imageView
	Img      *imageView
	Name     *textBlock
	Role     *textBlock
	Body     *textBlock
}

type staffView struct {
	Class       string
	Layout      string
	Title       *textBlock
	ListClass   string
	ListStyle   template.CSS
	MemberStyle template.CSS
	FillStyle   template.CSS
	Members     []memberView
}

func (sr *SectionRenderer) Staff(s *page.Section, c *page.StaffContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	layout := styles.Or(c.LayoutType, page.StaffGrid)
	v := staffView{
		Class:     "tp-staff tp-staff-" + layout + " " + skin.Class(),
		Layout:    layout,
		Title:     sr.title(c.Heading, skin.Heading, "center"),
		FillStyle: styles.FlexFillCSS,
	}
	switch layout {
	case page.StaffList:
		v.ListClass = "tp-members"
		v.ListStyle = css(styles.StackCSS, styles.NarrowCSS)
		v.MemberStyle = css(skin.Card, styles.RowCSS)
	case page.StaffCircle:
		v.MemberStyle = "text-align:center"
	default:
		v.MemberStyle = css(skin.Card, styles.CardStackCSS)
	}
	if layout != page.StaffList {
		grid := styles.Grid(min(max(len(c.Members), 1), 4), sr.ctx.Viewport)
		v.ListClass = "tp-members " + grid.Class
		v.ListStyle = template.CSS(grid.CSS)
	}
	size := 160
	if layout == page.StaffList {
		size = 120
	}
	for _, m := range c.Members {
		mv := memberView{
			ID:   string(m.ID),
			Name: sr.itemTitle(m.Name, skin.Title),
			Role: block(m.Role, styles.RoleCSS, styles.AccentText(skin.Accent)),
			Body: sr.body(m.Text, styles.Join("margin-top:8px", skin.Muted)),
		}
		if layout == page.StaffList || layout == page.StaffCircle {
			mv.Portrait = avatarOf(m.Image, m.Name, size, skin.Mark)
		} else {
			mv.Img = imageOf(m.Image, m.Name, styles.SquareImageCSS, true, "aspect-ratio:1/1")
		}
		v.Members = append(v.Members, mv)
	}
	return execute("staff", v)
}

type faqItemView struct {
	ID        string
	Question  string
	HasAnswer bool
	Answer    *textBlock
}

type faqView struct {
	Class             string
	Title             *textBlock
	ListStyle         template.CSS
	ItemStyle         template.CSS
	QuestionStyle     template.CSS
	QuestionMarkStyle template.CSS
	QuestionMark      string
	AnswerStyle       template.CSS
	AnswerMarkStyle   template.CSS
	AnswerMark        string
	Items             []faqItemView
}

func (sr *SectionRenderer) FAQ(s *page.Section, c *page.FAQContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	v := faqView{
		Class:             "tp-faq " + skin.Class(),
		Title:             sr.title(c.Heading, skin.Heading, "center"),
		ListStyle:         css("margin:0", styles.CardStackCSS, styles.NarrowCSS),
		ItemStyle:         template.CSS(skin.Card),
		QuestionStyle:     css(styles.RowCSS, "gap:12px", skin.Title),
		QuestionMarkStyle: css(styles.QuestionMarkCSS, styles.AccentText(skin.Accent)),
		QuestionMark:      styles.QuestionMark,
		AnswerStyle:       css(styles.RowCSS, "gap:12px;margin:12px 0 0", skin.Muted),
		AnswerMarkStyle:   styles.QuestionMarkCSS,
		AnswerMark:        styles.AnswerMark,
	}
	for _, f := range c.FAQs {
		v.Items = append(v.Items, faqItemView{
			ID:        string(f.ID),
			Question:  f.Question,
			HasAnswer: f.Answer != "",
			Answer:    sr.body(f.Answer, styles.FlexFillCSS),
		})
	}
	return execute("faq", v)
}

type cellView struct {
	Text  string
	Kind  string
	Style template.CSS
}

type rowView struct {
	ID    string
	Label string
	Cells []cellView
}

type comparisonView struct {
	Class        string
	Title        *textBlock
	WrapStyle    template.CSS
	TableStyle   template.CSS
	Highlight    string
	CellStyle    template.CSS
	RowHeadStyle template.CSS
	Columns      []cellView
	Rows         []rowView
}

func (sr *SectionRenderer) Comparison(s *page.Section, c *page.ComparisonContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	v := comparisonView{
		Class:        "tp-comparison " + skin.Class(),
		Title:        sr.title(c.Heading, skin.Heading, "center"),
		WrapStyle:    css(styles.TableWrapCSS, skin.Card),
		TableStyle:   styles.TableCSS,
		CellStyle:    styles.CellCSS,
		RowHeadStyle: css(styles.CellCSS, "text-align:left", skin.Title),
	}
	if c.HighlightColumn > 0 {
		v.Highlight = strconv.Itoa(c.HighlightColumn)
	}
	for i, col := range c.Columns {
		style := css(styles.CellCSS, skin.Title)
		if i+1 == c.HighlightColumn {
			style = css(styles.CellCSS, "color:#ffffff;font-weight:700", styles.AccentFill(skin.Accent))
		}
		v.Columns = append(v.Columns, cellView{Text: col, Style: style})
	}
	for _, r := range c.Rows {
		row := rowView{ID: string(r.ID), Label: r.Label}
		for i := range c.Columns {
			value := ""
			if i < len(r.Values) {
				value = r.Values[i]
			}
			mark, kind := styles.ComparisonMark(value)
			style := styles.Join(styles.CellCSS, styles.MarkCSS(kind, skin.Accent))
			if i+1 == c.HighlightColumn {
				style = styles.Join(style, styles.HighlightCSS)
			}
			row.Cells = append(row.Cells, cellView{Text: mark, Kind: kind, Style: template.CSS(style)})
		}
		v.Rows = append(v.Rows, row)
	}
	return execute("comparison", v)
}

type infoRowView struct {
	ID    string
	Label string
	Value string
}

type accessView struct {
	Class      string
	Title      *textBlock
	BodyClass  string
	BodyStyle  template.CSS
	Map        *embedView
	InfoStyle  template.CSS
	Address    *textBlock
	ListStyle  template.CSS
	LabelStyle template.CSS
	ValueStyle template.CSS
	Rows       []infoRowView
}

func (sr *SectionRenderer) Access(s *page.Section, c *page.AccessContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	layout := styles.Or(c.Layout, "side")
	paneCSS := "width:100%"
	v := accessView{
		Class:      "tp-access tp-access-" + layout + " " + skin.Class(),
		Title:      sr.title(c.Heading, skin.Heading, "center"),
		BodyClass:  "tp-access-body",
		BodyStyle:  styles.StackCSS,
		Address:    block(c.Address, styles.AddressCSS),
		ListStyle:  styles.InfoListCSS,
		LabelStyle: template.CSS(skin.Title),
		ValueStyle: css("margin:0;white-space:pre-line", skin.Muted),
	}
	if layout == "side" {
		split := styles.Split(false, sr.ctx.Viewport)
		paneCSS = styles.PaneCSS
		v.BodyClass = styles.Classes("tp-access-body", split.Class)
		v.BodyStyle = css(split.CSS, "align-items:stretch")
	}
	v.InfoStyle = css(paneCSS, skin.Card)
	if src := styles.MapEmbed(c.MapURL, c.MapQuery, c.Address); src != "" {
		v.Map = &embedView{
			Src:        src,
			Title:      styles.Or(c.Address, c.MapQuery, "Map"),
			FrameStyle: css(paneCSS, styles.MapFrameCSS),
			Style:      styles.AspectFill,
		}
	}
	for _, r := range c.Items {
		v.Rows = append(v.Rows, infoRowView{ID: string(r.ID), Label: r.Label, Value: r.Value})
	}
	return execute("access", v)
}

type reviewItemView struct {
	ID         string
	StarsStyle template.CSS
	Rating     string
	Stars      string
	Body       *textBlock
	Avatar     *imageView
	Name       *textBlock
	Role       *textBlock
}

type reviewView struct {
	Class         string
	Title         *textBlock
	ListClass     string
	ListStyle     template.CSS
	ItemStyle     template.CSS
	Bubble        bool
	BubbleStyle   template.CSS
	ReviewerStyle template.CSS
	Items         []reviewItemView
}

func (sr *SectionRenderer) Review(s *page.Section, c *page.ReviewContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	layout := styles.Or(c.LayoutType, page.ReviewCard)
	v := reviewView{
		Class:         "tp-review-list tp-review-" + layout + " " + skin.Class(),
		Title:         sr.title(c.Heading, skin.Heading, "center"),
		Bubble:        layout == page.ReviewBubble,
		BubbleStyle:   css(skin.Card, "position:relative"),
		ReviewerStyle: styles.ReviewerCSS,
	}
	switch layout {
	case page.ReviewBubble:
		v.ItemStyle = "margin:0"
	case page.ReviewList:
		v.ItemStyle = css("margin:0", skin.Card)
	default:
		v.ItemStyle = css("margin:0", skin.Card, styles.CardStackCSS)
	}
	if layout == page.ReviewList {
		v.ListClass = "tp-reviews"
		v.ListStyle = css(styles.StackCSS, styles.NarrowCSS)
	} else {
		grid := styles.Grid(min(max(len(c.Items), 1), 3), sr.ctx.Viewport)
		v.ListClass = "tp-reviews " + grid.Class
		v.ListStyle = template.CSS(grid.CSS)
	}
	for _, r := range c.Items {
		v.Items = append(v.Items, reviewItemView{
			ID:         string(r.ID),
			StarsStyle: styles.StarsCSS,
			Rating:     strconv.Itoa(styles.Rating(r.Rating)) + " / 5",
			Stars:      styles.Stars(r.Rating),
			Body:       sr.body(r.Text, ""),
			Avatar:     avatarOf(r.Avatar, r.Name, 48, skin.Mark),
			Name:       block(r.Name, styles.NameCSS, skin.Title),
			Role:       block(r.Role, styles.RoleCSS, skin.Muted),
		})
	}
	return execute("review", v)
}
