package templates

import (
	"html/template"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

const listTemplates = `{{define "accordion"}}<div class="{{.Class}}" style="{{.Style}}">{{template "part-title" .Title}}<div class="tp-accordion-list" style="{{.ListStyle}}">` +
	`{{range .Items}}<details class="tp-accordion-item" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}{{if .Open}} open{{end}}>` +
	`<summary style="{{$.SummaryStyle}}"><span>{{.Title}}</span><span class="tp-accordion-icon" aria-hidden="true">{{$.Icon}}</span></summary>` +
	`{{template "part-body" .Body}}</details>{{end}}</div></div>{{end}}` +
	`{{define "post_card"}}<div class="{{.Class}}">{{template "part-title" .Title}}<div class="{{.GridClass}}" style="{{.GridStyle}}">` +
	`{{range .Items}}<article class="tp-card" style="{{$.CardStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>{{template "part-img" .Img}}` +
	`{{if .Meta}}<div class="tp-card-meta" style="{{$.MetaStyle}}">{{with .Tag}}<span class="tp-badge" style="{{.Style}}">{{.Text}}</span>{{end}}{{with .Date}}<time class="tp-date">{{.Text}}</time>{{end}}</div>{{end}}` +
	`{{template "part-item" .Title}}{{template "part-body" .Body}}{{with .More}}{{template "part-link" .}}{{end}}</article>{{end}}</div></div>{{end}}` +
	`{{define "columns"}}<div class="{{.Class}}">{{template "part-title" .Title}}<div class="{{.GridClass}}" style="{{.GridStyle}}">` +
	`{{range .Items}}{{if $.Figure}}<figure class="{{$.ItemClass}}" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>{{template "part-img" .Img}}` +
	`{{with .Caption}}<figcaption class="tp-item-title" style="{{.Style}}">{{.Text}}</figcaption>{{end}}{{template "part-body" .Body}}</figure>` +
	`{{else}}<div class="{{$.ItemClass}}" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>{{with .Embed}}{{template "part-embed" .}}{{end}}{{template "part-social" .Social}}` +
	`{{template "part-img" .Img}}{{template "part-item" .Title}}{{template "part-body" .Body}}{{with .Button}}{{template "part-link" .}}{{end}}</div>{{end}}{{end}}</div></div>{{end}}` +
	`{{define "links"}}<div class="{{.Class}}">{{template "part-title" .Title}}` +
	`{{if eq .Layout "buttons"}}<div class="tp-links-list" style="{{.ListStyle}}">{{range .Items}}{{template "part-link" .Link}}{{end}}</div>` +
	`{{else if eq .Layout "inline"}}<ul class="tp-links-list" style="{{.ListStyle}}">{{range .Items}}<li>{{template "part-link" .Link}}</li>{{end}}</ul>` +
	`{{else}}<ul class="tp-links-list" style="{{.ListStyle}}">{{range .Items}}<li style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}>{{template "part-link" .Link}}{{template "part-body" .Body}}</li>{{end}}</ul>{{end}}</div>{{end}}` +
	`{{define "part-points"}}{{range .Items}}<li class="tp-point" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}><span class="tp-mark" style="{{$.MarkStyle}}">{{.Mark}}</span>` +
	`<div style="{{$.FillStyle}}">{{template "part-img" .Img}}{{template "part-item" .Title}}{{template "part-body" .Body}}</div></li>{{end}}{{end}}` +
	`{{define "point_list"}}<div class="{{.Class}}">{{template "part-title" .Title}}{{template "part-body" .Intro}}` +
	`{{if .Numbered}}<ol class="tp-points" style="{{.ListStyle}}">{{template "part-points" .}}</ol>{{else}}<ul class="tp-points" style="{{.ListStyle}}">{{template "part-points" .}}</ul>{{end}}</div>{{end}}` +
	`{{define "problem_checklist"}}<div class="{{.Class}}">{{template "part-title" .Title}}<ul class="tp-checks" style="{{.ListStyle}}">` +
	`{{range .Items}}<li class="tp-check" style="{{$.ItemStyle}}"{{with .ID}} data-item-id="{{.}}"{{end}}><span class="tp-mark" style="{{$.MarkStyle}}">{{$.Check}}</span>{{template "part-body" .Body}}</li>{{end}}</ul>` +
	`{{with .Conclusion}}<p class="tp-conclusion" style="{{.Style}}">{{.Text}}</p>{{end}}</div>{{end}}`

type accordionItemView struct {
	ID    string
	Title string
	Open  bool
	Body  *textBlock
}

type accordionView struct {
	Class        string
	Style        template.CSS
	Title        *textBlock
	ListStyle    template.CSS
	ItemStyle    template.CSS
	SummaryStyle template.CSS
	Icon         string
	Items        []accordionItemView
}

func (sr *SectionRenderer) Accordion(s *page.Section, c *page.AccordionContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	v := accordionView{
		Class:        "tp-accordion " + skin.Class(),
		Style:        styles.NarrowCSS,
		Title:        sr.title(c.Heading, skin.Heading, "center"),
		ListStyle:    styles.CardStackCSS,
		ItemStyle:    template.CSS(skin.Card),
		SummaryStyle: css(styles.SummaryCSS, skin.Title),
		Icon:         styles.AccordionIcon,
	}
	for _, it := range c.Items {
		v.Items = append(v.Items, accordionItemView{
			ID:    string(it.ID),
			Title: it.Title,
			Open:  it.Open,
			Body:  sr.body(it.Text, styles.Join("margin-top:12px", skin.Muted)),
		})
	}
	return execute("accordion", v)
}

type postItemView struct {
	ID    string
	Img   *imageView
	Meta  bool
	Tag   *textBlock
	Date  *textBlock
	Title *textBlock
	Body  *textBlock
	More  *linkView
}

type postCardView struct {
	Class     string
	Title     *textBlock
	GridClass string
	GridStyle template.CSS
	CardStyle template.CSS
	MetaStyle template.CSS
	Items     []postItemView
}

func (sr *SectionRenderer) PostCard(s *page.Section, c *page.PostCardContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	grid := styles.Grid(styles.OrInt(c.ColumnCount, 3), sr.ctx.Viewport)
	v := postCardView{
		Class:     "tp-post-cards " + skin.Class(),
		Title:     sr.title(c.Heading, skin.Heading, "center"),
		GridClass: grid.Class,
		GridStyle: template.CSS(grid.CSS),
		CardStyle: css(skin.Card, styles.CardStackCSS),
		MetaStyle: css(styles.MetaRowCSS, skin.Muted),
	}
	for _, it := range c.Items {
		item := postItemView{
			ID:    string(it.ID),
			Img:   imageOf(it.Image, it.Title, styles.CoverImageCSS, true, "aspect-ratio:16/9"),
			Meta:  it.Tag != "" || it.Date != "",
			Tag:   block(it.Tag, skin.Badge),
			Date:  block(it.Date),
			Title: sr.itemTitle(it.Title, skin.Title),
			Body:  sr.body(it.Text, skin.Muted),
		}
		if it.URL != "" {
			more := linkOf(it.URL, "tp-read-more", styles.Join(styles.ReadMoreCSS, "color:"+skin.Accent), styles.ReadMoreText+" "+styles.ArrowMark)
			item.More = &more
		}
		v.Items = append(v.Items, item)
	}
	return execute("post_card", v)
}

type columnItemView struct {
	ID      string
	Img     *imageView
	Embed   *embedView
	Social  *socialView
	Title   *textBlock
	Caption *textBlock
	Body    *textBlock
	Button  *linkView
}

type columnsView struct {
	Class     string
	Title     *textBlock
	GridClass string
	GridStyle template.CSS
	Figure    bool
	ItemClass string
	ItemStyle template.CSS
	Items     []columnItemView
}

func (sr *SectionRenderer) Columns(s *page.Section, c *page.ColumnsContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	colType := styles.Or(c.ColType, page.ColCard)
	grid := styles.Grid(styles.OrInt(c.ColumnCount, len(c.Items)), sr.ctx.Viewport)
	itemCSS := skin.Card
	switch colType {
	case page.ColImage:
		itemCSS = styles.FigureCSS
	case page.ColText:
		itemCSS = ""
	}
	v := columnsView{
		Class:     "tp-columns " + skin.Class(),
		Title:     sr.title(c.Heading, skin.Heading, "center"),
		GridClass: grid.Class,
		GridStyle: template.CSS(grid.CSS),
		Figure:    colType == page.ColImage,
		ItemClass: "tp-column tp-column-" + colType,
		ItemStyle: css(itemCSS, styles.CardStackCSS),
	}
	for _, it := range c.Items {
		item := columnItemView{ID: string(it.ID)}
		switch colType {
		case page.ColText:
			item.Title = sr.itemTitle(it.Title, skin.Title)
			item.Body = sr.body(it.Text, "")
		case page.ColImage:
			item.Img = imageOf(it.Image, it.Title, styles.RoundImageCSS, true, "aspect-ratio:4/3")
			item.Caption = block(it.Title, styles.ItemTitle(sr.ctx), "margin-top:12px", skin.Title)
			item.Body = sr.body(it.Text, skin.Muted)
		case page.ColVideo:
			item.Embed = embedOf(styles.VideoEmbed(it.URL, false), it.Title)
			item.Title = sr.itemTitle(it.Title, styles.Join("margin-top:12px", skin.Title))
			item.Body = sr.body(it.Text, skin.Muted)
		case page.ColSocial:
			item.Social = socialOf(styles.SocialEmbed("", it.URL), styles.Platform("", it.URL))
			item.Title = sr.itemTitle(it.Title, styles.Join("margin-top:12px", skin.Title))
			item.Body = sr.body(it.Text, skin.Muted)
		default:
			item.Img = imageOf(it.Image, it.Title, styles.CoverImageCSS, false, "")
			item.Title = sr.itemTitle(it.Title, skin.Title)
			item.Body = sr.body(it.Text, skin.Muted)
			if it.ButtonText != "" {
				bs := styles.SkinButton(skin)
				btn := linkOf(it.ButtonURL, bs.Class, bs.CSS, it.ButtonText)
				item.Button = &btn
			}
		}
		v.Items = append(v.Items, item)
	}
	return execute("columns", v)
}

type linkItemView struct {
	ID   string
	Link linkView
	Body *textBlock
}

type linksView struct {
	Class     string
	Layout    string
	Title     *textBlock
	ListStyle template.CSS
	ItemStyle template.CSS
	Items     []linkItemView
}

func (sr *SectionRenderer) Links(s *page.Section, c *page.LinksContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	layout := styles.Or(c.Layout, "list")
	v := linksView{
		Class:     "tp-links tp-links-" + layout + " " + skin.Class(),
		Layout:    layout,
		Title:     sr.title(c.Heading, skin.Heading, "center"),
		ItemStyle: template.CSS(skin.Card),
	}
	linkCSS := styles.Join(styles.LinkLabelCSS, "color:"+skin.Accent)
	switch layout {
	case "buttons":
		v.ListStyle = css(styles.CardStackCSS, styles.NarrowCSS)
		bs := styles.SkinButton(skin)
		for _, l := range c.Links {
			v.Items = append(v.Items, linkItemView{Link: linkOf(l.URL, bs.Class, styles.Join(bs.CSS, "display:block;text-align:center"), styles.Or(l.Label, l.URL))})
		}
	case "inline":
		v.ListStyle = css(styles.ListResetCSS, styles.InlineLinksCSS)
		for _, l := range c.Links {
			v.Items = append(v.Items, linkItemView{Link: linkOf(l.URL, "tp-link", linkCSS, styles.Or(l.Label, l.URL))})
		}
	default:
		v.ListStyle = css(styles.ListResetCSS, styles.CardStackCSS, styles.NarrowCSS)
		for _, l := range c.Links {
			v.Items = append(v.Items, linkItemView{
				ID:   string(l.ID),
				Link: linkOf(l.URL, "tp-link", linkCSS, styles.Or(l.Label, l.URL)),
				Body: sr.body(l.Description, styles.Join("margin-top:4px", skin.Muted)),
			})
		}
	}
	return execute("links", v)
}

type pointItemView struct {
	ID    string
	Mark  string
	Img   *imageView
	Title *textBlock
	Body  *textBlock
}

type pointListView struct {
	Class     string
	Title     *textBlock
	Intro     *textBlock
	Numbered  bool
	ListStyle template.CSS
	ItemStyle template.CSS
	MarkStyle template.CSS
	FillStyle template.CSS
	Items     []pointItemView
}

func (sr *SectionRenderer) PointList(s *page.Section, c *page.PointListContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	v := pointListView{
		Class:     "tp-point-list " + skin.Class(),
		Title:     sr.title(c.Heading, skin.Heading, "center"),
		Intro:     sr.body(c.Text, styles.IntroCSS),
		Numbered:  c.Numbered,
		ListStyle: css(styles.ListResetCSS, styles.StackCSS, styles.NarrowCSS),
		ItemStyle: css(skin.Card, styles.RowCSS),
		MarkStyle: css(styles.MarkCSSBox(40), skin.Mark),
		FillStyle: styles.FlexFillCSS,
	}
	for i, it := range c.Items {
		mark := styles.Or(it.Icon, styles.CheckMark)
		if c.Numbered {
			mark = styles.StepLabel(i)
		}
		v.Items = append(v.Items, pointItemView{
			ID:    string(it.ID),
			Mark:  mark,
			Img:   imageOf(it.Image, it.Title, styles.Join(styles.RoundImageCSS, "margin-bottom:12px"), false, ""),
			Title: sr.itemTitle(it.Title, skin.Title),
			Body:  sr.body(it.Text, skin.Muted),
		})
	}
	return execute("point_list", v)
}

type checkItemView struct {
	ID   string
	Body *textBlock
}

type checklistView struct {
	Class      string
	Title      *textBlock
	ListStyle  template.CSS
	ItemStyle  template.CSS
	MarkStyle  template.CSS
	Check      string
	Items      []checkItemView
	Conclusion *textBlock
}

func (sr *SectionRenderer) ProblemChecklist(s *page.Section, c *page.ProblemChecklistContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	v := checklistView{
		Class:      "tp-problem-checklist " + skin.Class(),
		Title:      sr.title(c.Heading, skin.Heading, "center"),
		ListStyle:  css(styles.ListResetCSS, styles.CardStackCSS, styles.NarrowCSS),
		ItemStyle:  css(skin.Card, styles.RowCSS, "align-items:center"),
		MarkStyle:  css(styles.MarkCSSBox(28), skin.Mark),
		Check:      styles.CheckMark,
		Conclusion: block(c.Conclusion, styles.Body(sr.ctx), styles.ConclusionCSS, "color:"+skin.Accent),
	}
	for _, it := range c.Items {
		v.Items = append(v.Items, checkItemView{ID: string(it.ID), Body: sr.body(it.Text, styles.FlexFillCSS)})
	}
	return execute("problem_checklist", v)
}
