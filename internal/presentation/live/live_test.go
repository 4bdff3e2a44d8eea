package live

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/services/normalize"
)

func renderSections(t *testing.T, viewport rendering.Viewport, sections ...page.Section) *goquery.Document {
	t.Helper()
	lr := NewRenderer(rendering.NewRenderContext(nil, viewport))
	out, err := RenderAll(lr.RenderSections(sections))
	require.NoError(t, err)
	dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	return dom
}

func TestRenderSection_Wrapper(t *testing.T) {
	s := page.Section{
		ID: 7, Type: registry.TypeText, PaddingTop: page.PaddingLG, PaddingBottom: page.PaddingNone,
		BgType: page.BgImage, BgValue: "https://example.com/bg.jpg", BgOverlay: 0.5,
		DividerTop: page.DividerWave, DividerTopColor: "#ff0000", DividerBottom: page.DividerCurve,
		BoxStyle: page.BoxShadow,
		Content:  &page.TextContent{Heading: "Hello", Text: "World"},
	}
	dom := renderSections(t, rendering.ViewportDesktop, s)

	sec := dom.Find("section#section-7")
	require.Equal(t, 1, sec.Length())
	assert.Equal(t, "7", sec.AttrOr("data-section-id", ""))
	assert.Equal(t, "text", sec.AttrOr("data-section-type", ""))
	assert.Equal(t, "image:https://example.com/bg.jpg", sec.AttrOr("data-bg", ""))
	assert.Equal(t, "0.5", sec.AttrOr("data-bg-overlay", ""))
	assert.Equal(t, "wave:#ff0000", sec.AttrOr("data-divider-top", ""))
	assert.Equal(t, "curve:#ffffff", sec.AttrOr("data-divider-bottom", ""))
	assert.Equal(t, "shadow", sec.AttrOr("data-box", ""))

	style := sec.AttrOr("style", "")
	assert.Contains(t, style, "padding-top:96px")
	assert.Contains(t, style, "padding-bottom:0px")
	assert.Equal(t, 1, sec.Find(".tp-overlay").Length())
	assert.Equal(t, 2, sec.Find("svg path").Length())
	assert.Equal(t, "Hello", strings.TrimSpace(sec.Find("h2").Text()))
	assert.Equal(t, "World", strings.TrimSpace(sec.Find("p.tp-body").Text()))
}

func TestRenderSection_ColorBackgroundHasNoOverlay(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypeText, BgType: page.BgColor, BgValue: "#fafafa", BgOverlay: 0.7,
		Content: &page.TextContent{Text: "x"}}
	sec := renderSections(t, rendering.ViewportDesktop, s).Find("section")
	assert.Equal(t, "color:#fafafa", sec.AttrOr("data-bg", ""))
	_, has := sec.Attr("data-bg-overlay")
	assert.False(t, has)
	assert.Equal(t, 0, sec.Find(".tp-overlay").Length())
}

func TestRenderSection_Unknown(t *testing.T) {
	s := page.Section{ID: 3, Type: "carousel_3d"}
	dom := renderSections(t, rendering.ViewportDesktop, s)
	u := dom.Find(".tp-unknown")
	require.Equal(t, 1, u.Length())
	assert.Equal(t, "carousel_3d", u.AttrOr("data-unknown-type", ""))
	assert.Contains(t, u.Text(), "Unknown section type: carousel_3d")
}

func TestRenderSection_AliasRendersCanonical(t *testing.T) {
	doc, err := normalize.Decode([]byte(`{"sections":[{"id":1,"type":"qa","items":[{"q":"Why?","a":"Because."}]}]}`))
	require.NoError(t, err)
	dom := renderSections(t, rendering.ViewportDesktop, doc.Sections...)
	sec := dom.Find("section")
	assert.Equal(t, registry.TypeFAQ, sec.AttrOr("data-section-type", ""))
	assert.Equal(t, "Why?", strings.TrimSpace(sec.Find("dt span").Last().Text()))
	assert.Equal(t, "Because.", strings.TrimSpace(sec.Find("dd p").Text()))
}

func TestRenderSection_ContainersRenderChildren(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypeBox, Content: &page.BoxContent{Heading: "Outer", Width: 80},
		Children: []page.Section{
			{ID: 2, Type: registry.TypeText, Content: &page.TextContent{Text: "first"}},
			{ID: 3, Type: registry.TypeFullWidth, Content: &page.FullWidthContent{MinHeight: 200},
				Children: []page.Section{{ID: 4, Type: registry.TypeText, Content: &page.TextContent{Text: "deep"}}}},
		}}
	dom := renderSections(t, rendering.ViewportDesktop, s)
	assert.Equal(t, 4, dom.Find("section[data-section-id]").Length())
	assert.Contains(t, dom.Find(".tp-container-box").AttrOr("style", ""), "width:80%")
	assert.Contains(t, dom.Find(".tp-full-width").AttrOr("style", ""), "min-height:200px")
	assert.Equal(t, "deep", strings.TrimSpace(dom.Find("#section-4 p").Text()))
}

func TestRenderSection_NestedChildrenKeepOwnStyle(t *testing.T) {
	doc, err := normalize.Typed(normalize.Document(map[string]any{"sections": []any{
		map[string]any{
			"id": 1.0, "type": "full_width", "bgType": "color", "bgValue": "#111111",
			"paddingTop": "xl", "paddingBottom": "xs",
			"children": []any{
				map[string]any{"id": 2.0, "type": "text", "title": "Hello", "content": "World"},
				map[string]any{"id": 3.0, "type": "image", "image": "https://example.com/a.jpg", "bgType": "color", "bgValue": "#eeeeee"},
			},
		},
	}}))
	require.NoError(t, err)

	dom := renderSections(t, rendering.ViewportDesktop, doc.Sections...)
	parent := dom.Find("#section-1")
	assert.Equal(t, "color:#111111", parent.AttrOr("data-bg", ""))
	assert.Contains(t, parent.AttrOr("style", ""), "padding-top:128px;padding-bottom:16px")

	children := parent.Find("section[data-section-id]")
	require.Equal(t, 2, children.Length())
	text, image := children.Eq(0), children.Eq(1)
	assert.Equal(t, "2", text.AttrOr("data-section-id", ""))
	assert.Equal(t, "3", image.AttrOr("data-section-id", ""))

	assert.Equal(t, "none", text.AttrOr("data-bg", ""))
	assert.Contains(t, text.AttrOr("style", ""), "padding-top:64px;padding-bottom:64px")
	assert.NotContains(t, text.AttrOr("style", ""), "#111111")
	assert.Contains(t, text.Text(), "Hello")
	assert.Contains(t, text.Text(), "World")

	assert.Equal(t, "color:#eeeeee", image.AttrOr("data-bg", ""))
	assert.Contains(t, image.AttrOr("style", ""), "padding-top:64px;padding-bottom:64px")
	assert.Equal(t, "https://example.com/a.jpg", image.Find("img").AttrOr("src", ""))
}

func TestRenderSection_DepthCap(t *testing.T) {
	leaf := page.Section{ID: 100, Type: registry.TypeText, Content: &page.TextContent{Text: "leaf"}}
	for i := 0; i < rendering.MaxDepth+3; i++ {
		leaf = page.Section{ID: 99 - i, Type: registry.TypeBox, Content: &page.BoxContent{}, Children: []page.Section{leaf}}
	}
	dom := renderSections(t, rendering.ViewportDesktop, leaf)
	assert.Equal(t, rendering.MaxDepth+1, dom.Find("section").Length())
}

func TestRenderSection_MissingImagePlaceholder(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypeImage, Content: &page.ImageContent{Caption: "cap"}}
	dom := renderSections(t, rendering.ViewportDesktop, s)
	assert.Equal(t, 0, dom.Find("img").Length())
	assert.Equal(t, "No image", strings.TrimSpace(dom.Find(".tp-placeholder").Text()))
}

func TestRenderSection_GridFollowsViewport(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypeColumns, Content: &page.ColumnsContent{ColumnCount: 3, ColType: page.ColText,
		Items: []page.ColumnItem{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C"}}}}

	desktop := renderSections(t, rendering.ViewportDesktop, s).Find(".tp-grid")
	assert.Contains(t, desktop.AttrOr("style", ""), "repeat(3,")
	mobile := renderSections(t, rendering.ViewportMobile, s).Find(".tp-grid")
	assert.Contains(t, mobile.AttrOr("style", ""), "repeat(1,")
}

func TestRenderSection_DesignsDiffer(t *testing.T) {
	faq := func(design string) page.Section {
		return page.Section{ID: 1, Type: registry.TypeFAQ, Content: &page.FAQContent{Design: design,
			FAQs: []page.FAQItem{{ID: "1", Question: "Q1", Answer: "A1"}}}}
	}
	standard := renderSections(t, rendering.ViewportDesktop, faq(registry.DesignStandard)).Find(".tp-faq-item").AttrOr("style", "")
	cyber := renderSections(t, rendering.ViewportDesktop, faq(registry.DesignCyber)).Find(".tp-faq-item").AttrOr("style", "")
	assert.NotEqual(t, standard, cyber)
}

func TestRenderSection_PricingFeatured(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypePricing, Content: &page.PricingContent{Plans: []page.Plan{
		{ID: "1", Name: "Basic", Price: "$0"},
		{ID: "2", Name: "Pro", Price: "$9", Period: "/mo", IsFeatured: true, Features: []string{"All"}},
		{ID: "3", Name: "Team", Price: "$29", Period: "/mo"},
	}}}
	dom := renderSections(t, rendering.ViewportDesktop, s)
	plans := dom.Find(".tp-plan")
	require.Equal(t, 3, plans.Length())
	featured := plans.Filter(`[data-featured="true"]`)
	require.Equal(t, 1, featured.Length())
	assert.Equal(t, "2", featured.AttrOr("data-item-id", ""))
	assert.Equal(t, 1, dom.Find(".tp-badge").Length())
	assert.Equal(t, "Recommended", strings.TrimSpace(featured.Find(".tp-badge").Text()))
	assert.NotEqual(t, featured.AttrOr("style", ""), plans.First().AttrOr("style", ""))
	assert.Equal(t, plans.First().AttrOr("style", ""), plans.Last().AttrOr("style", ""))
	assert.Equal(t, "Choose plan", strings.TrimSpace(plans.First().Find("a").Text()))
}

func TestRenderSection_ComparisonMarks(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypeComparison, Content: &page.ComparisonContent{
		Columns: []string{"Us", "Them"}, HighlightColumn: 1,
		Rows: []page.ComparisonRow{{ID: "1", Label: "Fast", Values: []string{"yes", "no"}}},
	}}
	dom := renderSections(t, rendering.ViewportDesktop, s)
	cells := dom.Find("tbody td")
	require.Equal(t, 2, cells.Length())
	assert.Equal(t, "yes", cells.First().AttrOr("data-mark", ""))
	assert.Equal(t, "✓", cells.First().Text())
	assert.Equal(t, "no", cells.Last().AttrOr("data-mark", ""))
	assert.Equal(t, "1", dom.Find("table").AttrOr("data-highlight", ""))
}

func TestRenderSection_VideoEmbeds(t *testing.T) {
	yt := page.Section{ID: 1, Type: registry.TypeVideo, Content: &page.VideoContent{URL: "https://youtu.be/dQw4w9WgXcQ"}}
	none := page.Section{ID: 2, Type: registry.TypeVideo, Content: &page.VideoContent{}}
	dom := renderSections(t, rendering.ViewportDesktop, yt, none)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", dom.Find("#section-1 iframe").AttrOr("src", ""))
	assert.Equal(t, "No video", strings.TrimSpace(dom.Find("#section-2 .tp-placeholder").Text()))
}

func TestRenderSection_UnsafeURLNeutralised(t *testing.T) {
	s := page.Section{ID: 1, Type: registry.TypeButton, Content: &page.ButtonContent{Text: "Click", URL: "javascript:alert(1)"}}
	dom := renderSections(t, rendering.ViewportDesktop, s)
	assert.Equal(t, "#", dom.Find("a").AttrOr("href", ""))
}

func TestRenderPage(t *testing.T) {
	doc := page.DefaultDocument()
	doc.FloatingCTA.Enabled = true

	out, err := RenderPage(doc, rendering.ViewportMobile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))

	dom, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "mobile", dom.Find("body").AttrOr("data-viewport", ""))
	assert.Equal(t, doc.SiteTitle, dom.Find("title").Text())
	assert.Equal(t, len(doc.MenuItems), dom.Find("nav a").Length())
	assert.Contains(t, dom.Find("nav").AttrOr("style", ""), "display:none")
	assert.Equal(t, doc.Hero.Title, strings.TrimSpace(dom.Find(".tp-hero h1").Text()))
	assert.Equal(t, len(doc.Sections), dom.Find("main > section").Length())
	assert.Equal(t, doc.FloatingCTA.Text, dom.Find("#tp-floating-cta").Text())
}
