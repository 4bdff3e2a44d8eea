package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
)

func TestPadding(t *testing.T) {
	want := map[string]int{"none": 0, "xs": 16, "sm": 32, "md": 64, "lg": 96, "xl": 128, "": 64, "huge": 64}
	for token, px := range want {
		assert.Equal(t, px, Padding(token), token)
	}
	assert.Equal(t, "padding-top:64px;padding-bottom:96px", PaddingCSS("", "lg"))
}

func TestBackground(t *testing.T) {
	none := Background(&page.Section{})
	assert.Equal(t, BackgroundNone, none.Kind)
	assert.Equal(t, "background:transparent", none.CSS())
	assert.False(t, none.HasOverlay())

	color := Background(&page.Section{BgType: page.BgColor, BgValue: "#abcdef"})
	assert.Equal(t, "color:#abcdef", color.Attr())

	bad := Background(&page.Section{BgType: page.BgColor, BgValue: "red;}body{display:none"})
	assert.Equal(t, BackgroundNone, bad.Kind)

	img := Background(&page.Section{BgType: page.BgImage, BgValue: "https://x.test/a (1).jpg", BgOverlay: 0.456})
	assert.Equal(t, BackgroundImage, img.Kind)
	assert.Equal(t, "https://x.test/a %281%29.jpg", img.Image)
	assert.True(t, img.HasOverlay())
	assert.Contains(t, img.OverlayCSS(), "rgba(0,0,0,0.46)")

	js := Background(&page.Section{BgType: page.BgImage, BgValue: "javascript:alert(1)"})
	assert.Equal(t, BackgroundNone, js.Kind)
}

func TestDividerCatalogClosure(t *testing.T) {
	seen := map[string]string{}
	for _, shape := range page.DividerShapes {
		d := Divider(DividerBottom, shape, "")
		if shape == page.DividerNone {
			assert.Nil(t, d)
			continue
		}
		require.NotNil(t, d, shape)
		assert.NotEmpty(t, d.Path)
		assert.Equal(t, "0 0 1200 120", d.ViewBox)
		assert.Equal(t, DefaultDividerColor, d.Color)
		assert.Contains(t, d.WrapperStyle, "rotate(180deg)")
		for other, path := range seen {
			assert.NotEqual(t, path, d.Path, "%s and %s", shape, other)
		}
		seen[shape] = d.Path
	}
	assert.Nil(t, Divider(DividerTop, "zigzag", "#000"))
	assert.Equal(t, "wave:#000", Divider(DividerTop, "wave", "#000").Attr())
}

func TestBoxCatalogClosure(t *testing.T) {
	seen := map[string]string{}
	for _, style := range page.BoxStyles {
		b := Box(style, "#123456", "")
		if style == page.BoxNone {
			assert.Nil(t, b)
			continue
		}
		require.NotNil(t, b, style)
		assert.NotEmpty(t, b.CSS)
		for other, css := range seen {
			assert.NotEqual(t, css, b.CSS, "%s and %s", style, other)
		}
		seen[style] = b.CSS
	}
	assert.Equal(t, "#f3f4f6", Box(page.BoxFill, "", "#ff0000").Color)
	assert.Equal(t, "#ff0000", Box(page.BoxBorder, "", "#ff0000").Color)
}

func TestSkinsAreDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, design := range []string{"standard", "gentle", "masculine", "stylish", "luxury", "earth", "cyber", "modern", "simple"} {
		s := Skin(design, "#2563eb")
		assert.Equal(t, design, s.Name)
		for other, card := range seen {
			assert.NotEqual(t, card, s.Card, "%s and %s", design, other)
		}
		seen[design] = s.Card
	}
	assert.Equal(t, "standard", Skin("unknown", "").Name)
}

func TestGrid(t *testing.T) {
	assert.Contains(t, Grid(3, rendering.ViewportDesktop).CSS, "repeat(3,")
	assert.Contains(t, Grid(3, rendering.ViewportMobile).CSS, "repeat(1,")
	responsive := Grid(9, rendering.ViewportResponsive)
	assert.Equal(t, 4, responsive.Columns)
	assert.Equal(t, "tp-grid tp-cols-4", responsive.Class)
	assert.NotContains(t, responsive.CSS, "grid-template-columns")
}

func TestVideoEmbed(t *testing.T) {
	for _, u := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://youtube.com/shorts/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
	} {
		e := VideoEmbed(u, false)
		assert.Equal(t, EmbedYouTube, e.Kind, u)
		assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", e.Src, u)
	}
	assert.Equal(t, EmbedVimeo, VideoEmbed("https://vimeo.com/123456", false).Kind)
	assert.Equal(t, EmbedFile, VideoEmbed("https://cdn.x.test/clip.mp4?x=1", false).Kind)
	assert.Equal(t, EmbedNone, VideoEmbed("https://x.test/page", false).Kind)
	assert.Equal(t, EmbedNone, VideoEmbed("", false).Kind)
	assert.Contains(t, VideoEmbed("https://youtu.be/dQw4w9WgXcQ", true).Src, "autoplay=1")
}

func TestSocialEmbed(t *testing.T) {
	assert.Equal(t, EmbedIframe, SocialEmbed("", "https://www.instagram.com/p/Cabc123/").Kind)
	tiktok := SocialEmbed("tiktok", "https://www.tiktok.com/@someone/video/7123456789")
	assert.Equal(t, "https://www.tiktok.com/embed/v2/7123456789", tiktok.Src)

	x := SocialEmbed("", "https://x.com/someone/status/1")
	assert.Equal(t, EmbedLink, x.Kind)
	assert.Equal(t, "View on X", x.Label)
	assert.Equal(t, EmbedNone, SocialEmbed("x", "").Kind)
}

func TestMapEmbed(t *testing.T) {
	assert.Equal(t, "https://maps.google.com/maps?q=1+Main+St&output=embed", MapEmbed("", "", "1 Main St"))
	assert.Equal(t, "https://www.google.com/maps/embed?pb=abc", MapEmbed("https://www.google.com/maps/embed?pb=abc", "q", ""))
	assert.Empty(t, MapEmbed("", "", ""))
}

func TestMarks(t *testing.T) {
	assert.Equal(t, "★★★★★", Stars(0))
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "★★★★★", Stars(9))

	text, kind := ComparisonMark("Yes")
	assert.Equal(t, CheckMark, text)
	assert.Equal(t, MarkYes, kind)
	text, kind = ComparisonMark("¥1,000")
	assert.Equal(t, "¥1,000", text)
	assert.Equal(t, MarkText, kind)

	assert.Equal(t, "03", StepLabel(2))
	assert.Equal(t, "Ä", Initial(" äb"))
	assert.Equal(t, "?", Initial(""))
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "#", SafeURL("javascript:alert(1)"))
	assert.Equal(t, "mailto:a@b.test", SafeURL("mailto:a@b.test"))
	assert.Equal(t, "/pricing#top", SafeURL("/pricing#top"))
	assert.Equal(t, "", SafeURL("  "))
	assert.Equal(t, "#", Href(""))
	assert.Equal(t, "", Color("expression(alert(1))", ""))
	assert.Equal(t, "rgba(0, 0, 0, 0.5)", Color("rgba(0, 0, 0, 0.5)", ""))
}

func TestButton(t *testing.T) {
	b := Button("lg", "pulse", "", "", true, "#ff0000")
	assert.Equal(t, "tp-btn tp-fx-pulse", b.Class)
	assert.Contains(t, b.CSS, "background:#ff0000")
	assert.Contains(t, b.CSS, "border-radius:999px")
	assert.Contains(t, b.CSS, "padding:18px 44px")

	outline := ActionButton(page.Button{Style: "outline", Color: "#00ff00"}, "")
	assert.Contains(t, outline.CSS, "border:2px solid #00ff00")
}
