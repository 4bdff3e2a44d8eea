package templates

import (
	"html/template"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

const basicTemplates = `{{define "text"}}<div class="tp-text" style="{{.Style}}">{{template "part-title" .Title}}{{template "part-body" .Body}}</div>{{end}}` +
	`{{define "image"}}<figure class="{{.Class}}" style="{{.Style}}"><div class="tp-image-frame" style="{{.FrameStyle}}">` +
	`{{if .Link}}<a href="{{.Link}}">{{template "part-img" .Img}}</a>{{else}}{{template "part-img" .Img}}{{end}}</div>` +
	`{{with .Caption}}<figcaption class="tp-caption" style="{{.Style}}">{{.Text}}</figcaption>{{end}}</figure>{{end}}` +
	`{{define "image_text"}}<div class="{{.Class}}" style="{{.Style}}"><div class="tp-pane tp-pane-media" style="{{.PaneStyle}}">{{template "part-img" .Img}}</div>` +
	`<div class="tp-pane tp-pane-text" style="{{.PaneStyle}}">{{template "part-title" .Title}}{{template "part-body" .Body}}{{template "part-buttons" .Buttons}}</div></div>{{end}}` +
	`{{define "heading"}}<div class="{{.Class}}" style="{{.Style}}">{{with .Heading}}{{if $.Small}}<h3 class="tp-heading-text" style="{{.Style}}">{{.Text}}</h3>` +
	`{{else}}<h2 class="tp-heading-text" style="{{.Style}}">{{.Text}}</h2>{{end}}{{end}}` +
	`{{if .Decoration}}<div class="tp-heading-decoration" style="{{.Decoration}}" aria-hidden="true"></div>{{end}}` +
	`{{with .Sub}}<p class="tp-heading-sub" style="{{.Style}}">{{.Text}}</p>{{end}}</div>{{end}}` +
	`{{define "video"}}<div class="tp-video">{{template "part-title" .Title}}<div class="tp-video-frame" style="{{.FrameStyle}}">{{template "part-embed" .Embed}}</div>` +
	`{{with .Caption}}<p class="tp-caption" style="{{.Style}}">{{.Text}}</p>{{end}}</div>{{end}}` +
	`{{define "button"}}<div class="tp-button" style="{{.Style}}">{{template "part-link" .Link}}{{with .Note}}<p class="tp-note" style="{{.Style}}">{{.Text}}</p>{{end}}</div>{{end}}` +
	`{{define "social"}}<div class="{{.Class}}" style="text-align:center">{{template "part-title" .Title}}{{template "part-social" .Embed}}` +
	`{{with .Caption}}<p class="tp-caption" style="{{.Style}}">{{.Text}}</p>{{end}}</div>{{end}}`

type textView struct {
	Style template.CSS
	Title *textBlock
	Body  *textBlock
}

func (sr *SectionRenderer) Text(s *page.Section, c *page.TextContent, nested []template.HTML) template.HTML {
	align := styles.Align(c.Align, "left")
	return execute("text", textView{
		Style: css("text-align:" + align),
		Title: sr.title(c.Heading, "", align),
		Body:  sr.body(c.Text, ""),
	})
}

type imageSectionView struct {
	Class      string
	Style      template.CSS
	FrameStyle template.CSS
	Img        *imageView
	Link       string
	Caption    *textBlock
}

func (sr *SectionRenderer) Image(s *page.Section, c *page.ImageContent, nested []template.HTML) template.HTML {
	align := styles.Align(c.Align, "center")
	design := styles.Or(c.Design, "plain")
	v := imageSectionView{
		Class:      "tp-image tp-image-" + design,
		Style:      css(styles.FigureCSS, "text-align:"+align),
		FrameStyle: css("display:inline-block", styles.WidthCSS(c.Width), styles.ImageFrame(design)),
		Img:        imageOf(c.Image, c.Caption, styles.FillImageCSS, true, "aspect-ratio:16/9"),
		Caption:    block(c.Caption, styles.CaptionCSS),
	}
	if c.Image.Present() && c.Link != "" {
		v.Link = styles.Href(c.Link)
	}
	return execute("image", v)
}

type imageTextView struct {
	Class     string
	Style     template.CSS
	PaneStyle template.CSS
	Img       *imageView
	Title     *textBlock
	Body      *textBlock
	Buttons   *buttonsView
}

func (sr *SectionRenderer) ImageText(s *page.Section, c *page.ImageTextContent, nested []template.HTML) template.HTML {
	skin := styles.Skin(c.Design, sr.ctx.AccentColor)
	split := styles.Split(c.ImagePosition == "right", sr.ctx.Viewport)
	return execute("image_text", imageTextView{
		Class:     styles.Classes("tp-image-text", split.Class, skin.Class()),
		Style:     template.CSS(split.CSS),
		PaneStyle: styles.PaneCSS,
		Img:       imageOf(c.Image, c.Heading, styles.RoundImageCSS, true, "aspect-ratio:4/3"),
		Title:     sr.title(c.Heading, skin.Heading, "left"),
		Body:      sr.body(c.Text, ""),
		Buttons:   buttonsOf(c.Buttons, skin.Accent, "flex-start"),
	})
}

type headingView struct {
	Class      string
	Style      template.CSS
	Small      bool
	Heading    *textBlock
	Decoration template.CSS
	Sub        *textBlock
}

func (sr *SectionRenderer) Heading(s *page.Section, c *page.HeadingContent, nested []template.HTML) template.HTML {
	align := styles.Align(c.Align, "center")
	hs := styles.Heading(c.Design, c.Color, sr.ctx.AccentColor, align)
	base := styles.BaseSectionTitle
	if c.Level == 3 {
		base = styles.BaseSectionTitle * 0.8
	}
	v := headingView{
		Class: "tp-heading tp-heading-" + hs.Name,
		Style: css("text-align:" + align),
		Small: c.Level == 3,
		Sub:   block(c.Subheading, styles.HeadingSubCSS),
	}
	if c.Heading != "" {
		v.Heading = block(c.Heading, hs.Text, styles.FontSize(base, sr.ctx.FontSizes.SectionTitle, sr.ctx.Viewport))
		v.Decoration = template.CSS(hs.Decoration)
	}
	return execute("heading", v)
}

type videoView struct {
	Title      *textBlock
	FrameStyle template.CSS
	Embed      *embedView
	Caption    *textBlock
}

func (sr *SectionRenderer) Video(s *page.Section, c *page.VideoContent, nested []template.HTML) template.HTML {
	e := styles.VideoEmbed(c.URL, c.Autoplay)
	player := embedOf(e, c.Heading)
	player.Autoplay = player.File && c.Autoplay
	return execute("video", videoView{
		Title:      sr.title(c.Heading, "", "center"),
		FrameStyle: template.CSS(styles.WidthCSS(c.Width)),
		Embed:      player,
		Caption:    block(c.Caption, styles.CaptionCSS, "text-align:center"),
	})
}

type buttonView struct {
	Style template.CSS
	Link  linkView
	Note  *textBlock
}

func (sr *SectionRenderer) Button(s *page.Section, c *page.ButtonContent, nested []template.HTML) template.HTML {
	bs := styles.Button(c.Size, c.Effect, c.Color, c.TextColor, c.Rounded, sr.ctx.AccentColor)
	link := linkOf(c.URL, bs.Class, bs.CSS, styles.Or(c.Text, styles.DefaultButtonText))
	link.NewTab = c.NewTab
	return execute("button", buttonView{
		Style: css("text-align:" + styles.Align(c.Align, "center")),
		Link:  link,
		Note:  block(c.Note, styles.NoteCSS),
	})
}

type socialSectionView struct {
	Class   string
	Title   *textBlock
	Embed   *socialView
	Caption *textBlock
}

func (sr *SectionRenderer) Social(s *page.Section, c *page.SocialContent, nested []template.HTML) template.HTML {
	platform := styles.Platform(c.Platform, c.URL)
	return execute("social", socialSectionView{
		Class:   "tp-social tp-social-" + styles.Or(platform, "link"),
		Title:   sr.title(c.Heading, "", "center"),
		Embed:   socialOf(styles.SocialEmbed(c.Platform, c.URL), platform),
		Caption: block(c.Caption, styles.CaptionCSS),
	})
}
