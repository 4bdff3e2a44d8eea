package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
)

// Header styles.
const (
	HeaderOverlay = "overlay"
	HeaderSolid   = "solid"
)

// HeaderStyle is the resolved top bar.
type HeaderStyle struct {
	Class      string
	CSS        string
	RowCSS     string
	NavCSS     string
	ToggleCSS  string
	LogoCSS    string
	LinkCSS    string
	LogoHeight int
}

// Header resolves the top bar. The live mobile preview pins the collapsed
// menu inline because the preview pane does not match the breakpoints.
func Header(h page.Header, ctx *rendering.RenderContext) HeaderStyle {
	style := HeaderOverlay
	if h.Style == HeaderSolid {
		style = HeaderSolid
	}
	layout := "left"
	if h.Layout == "center" {
		layout = "center"
	}
	hs := HeaderStyle{
		Class:      Classes("tp-header", "tp-header-"+style, "tp-header-"+layout),
		LogoHeight: OrInt(h.LogoHeight, 40),
		LogoCSS:    "display:flex;align-items:center;text-decoration:none;font-weight:800;font-size:20px;color:inherit",
		LinkCSS:    "text-decoration:none;font-weight:600;color:inherit",
		ToggleCSS:  "background:none;border:0;color:inherit;font-size:24px;cursor:pointer",
	}
	color := Color(h.TextColor, "#ffffff")
	if style == HeaderSolid {
		hs.CSS = Join("position:sticky;top:0;z-index:20", "background:"+Color(h.BgColor, "#ffffff"), "color:"+Color(h.TextColor, ctx.TextColor), "box-shadow:0 1px 3px rgba(0,0,0,0.08)")
	} else {
		hs.CSS = Join("position:absolute;top:0;left:0;right:0;z-index:20;background:transparent", "color:"+color)
	}
	justify := "space-between"
	if layout == "center" {
		justify = "center"
	}
	hs.RowCSS = fmt.Sprintf("max-width:%dpx;margin:0 auto;padding:16px %dpx;display:flex;flex-wrap:wrap;align-items:center;gap:24px;position:relative;justify-content:%s",
		ctx.MaxWidth, ctx.GlobalPadding, justify)
	if ctx.Mobile() {
		hs.NavCSS = "display:none"
		hs.ToggleCSS = Join(hs.ToggleCSS, "display:block")
	}
	return hs
}

// HeroStyle is the resolved hero block.
type HeroStyle struct {
	CSS        string
	Media      Embed
	MediaCSS   string
	OverlayCSS string
	ContentCSS string
	TitleCSS   string
	SubCSS     string
}

// Hero resolves the hero's media, focal point, blur and overlay.
func Hero(h page.Hero, ctx *rendering.RenderContext) HeroStyle {
	height := OrInt(h.Height, 80)
	fx, fy := OrInt(h.FocalX, 50), OrInt(h.FocalY, 50)
	blur := max(h.Blur, 0)
	filter := ""
	if blur > 0 {
		filter = fmt.Sprintf("filter:blur(%dpx)", blur)
	}
	hs := HeroStyle{
		CSS:        fmt.Sprintf("position:relative;height:%dvh;min-height:360px;overflow:hidden;display:flex;align-items:center;justify-content:center;text-align:center;background:#111827", height),
		OverlayCSS: fmt.Sprintf("position:absolute;inset:0;background:rgba(0,0,0,%s)", Num(min(max(h.OverlayOpacity, 0), 1))),
		ContentCSS: fmt.Sprintf("position:relative;z-index:1;max-width:900px;padding:0 %dpx;color:%s", ctx.GlobalPadding, Color(h.TitleColor, "#ffffff")),
		TitleCSS:   Join("margin:0;line-height:1.2;font-weight:800", FontSize(BaseHeroTitle, ctx.FontSizes.HeroTitle, ctx.Viewport)),
		SubCSS:     Join("margin:16px 0 0;opacity:0.9;line-height:1.6", FontSize(BaseHeroSubtitle, ctx.FontSizes.HeroSubtitle, ctx.Viewport)),
	}
	src := Or(h.URL, h.GeneratedURL, h.FallbackURL)
	if h.MediaType == "video" {
		hs.Media = VideoEmbed(src, true)
		switch hs.Media.Kind {
		case EmbedFile:
			hs.MediaCSS = Join(fmt.Sprintf("position:absolute;inset:0;width:100%%;height:100%%;object-fit:cover;object-position:%d%% %d%%", fx, fy), filter)
			return hs
		case EmbedYouTube, EmbedVimeo:
			hs.MediaCSS = Join("position:absolute;top:50%;left:50%;width:177.78vh;min-width:100%;height:56.25vw;min-height:100%;transform:translate(-50%,-50%);border:0;pointer-events:none", filter)
			return hs
		}
	}
	if u := CSSURL(src); u != "" {
		hs.Media = Embed{Kind: EmbedImage, Src: u}
		hs.MediaCSS = Join(fmt.Sprintf("position:absolute;inset:-%dpx;background-image:url('%s');background-size:cover;background-position:%d%% %d%%", blur*2, u, fx, fy), filter)
		return hs
	}
	hs.Media = Embed{Kind: EmbedNone}
	return hs
}

// FloatingCTA styles the docked call-to-action.
func FloatingCTA(f page.FloatingCTA, accent string) string {
	return Join("position:fixed;left:0;right:0;bottom:24px;margin:0 auto;width:max-content;max-width:calc(100% - 32px);z-index:50;padding:14px 32px;border-radius:999px;font-weight:700;text-decoration:none;text-align:center;box-shadow:0 10px 25px rgba(0,0,0,0.2)",
		"background:"+Color(f.BgColor, Color(accent, "#2563eb")),
		"color:"+Color(f.TextColor, "#ffffff"))
}

// BodyCSS styles the page body.
func BodyCSS(doc *page.Document, ctx *rendering.RenderContext) string {
	return Join("margin:0", FontFamily(ctx.FontFamily), "color:"+Color(ctx.TextColor, rendering.DefaultTextColor), PageBackground(doc.Background))
}
