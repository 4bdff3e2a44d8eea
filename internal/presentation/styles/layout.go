package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/rendering"
)

// Base font sizes in px, before the document's multipliers.
const (
	BaseHeroTitle    = 48.0
	BaseHeroSubtitle = 20.0
	BaseSectionTitle = 30.0
	BaseBody         = 16.0
	BaseItemTitle    = 20.0
)

// mobileScale shrinks titles in the mobile preview.
const mobileScale = 0.8

// GridStyle lays out a list of cards.
type GridStyle struct {
	Columns int
	Class   string
	CSS     string
}

// Grid resolves a card grid of count columns (clamped to 1..4). The live
// preview pins the column count to its viewport; the responsive export leaves
// collapsing to the stylesheet's breakpoints.
func Grid(count int, viewport rendering.Viewport) GridStyle {
	count = min(max(count, 1), 4)
	g := GridStyle{Columns: count, Class: "tp-grid", CSS: "display:grid;gap:24px"}
	switch viewport {
	case rendering.ViewportResponsive:
		g.Class = fmt.Sprintf("tp-grid tp-cols-%d", count)
	case rendering.ViewportMobile:
		g.CSS += ";grid-template-columns:repeat(1,minmax(0,1fr))"
	default:
		g.CSS += fmt.Sprintf(";grid-template-columns:repeat(%d,minmax(0,1fr))", count)
	}
	return g
}

// SplitStyle lays out two panes side by side.
type SplitStyle struct {
	Class string
	CSS   string
}

// Split resolves an image/text split. The image pane always comes first in
// markup; reverse puts it on the right.
func Split(reverse bool, viewport rendering.Viewport) SplitStyle {
	direction := "row"
	if reverse {
		direction = "row-reverse"
	}
	switch viewport {
	case rendering.ViewportResponsive:
		class := "tp-split"
		if reverse {
			class += " tp-split-reverse"
		}
		return SplitStyle{Class: class, CSS: "display:flex;gap:40px;align-items:center;flex-direction:" + direction}
	case rendering.ViewportMobile:
		return SplitStyle{Class: "tp-split", CSS: "display:flex;gap:24px;align-items:stretch;flex-direction:column"}
	default:
		return SplitStyle{Class: "tp-split", CSS: "display:flex;gap:40px;align-items:center;flex-direction:" + direction}
	}
}

// PaneCSS sizes one pane of a split.
const PaneCSS = "flex:1 1 0;min-width:0"

// Inner is the content column inside a section wrapper.
func Inner(ctx *rendering.RenderContext, fullWidth bool) string {
	if fullWidth {
		return "position:relative;z-index:1"
	}
	return fmt.Sprintf("position:relative;z-index:1;max-width:%dpx;margin:0 auto;padding-left:%dpx;padding-right:%dpx",
		ctx.MaxWidth, ctx.GlobalPadding, ctx.GlobalPadding)
}

// Align resolves a text alignment with a default.
func Align(align, def string) string {
	switch align {
	case "left", "center", "right":
		return align
	default:
		return def
	}
}

// FlexAlign maps a text alignment to justify-content.
func FlexAlign(align string) string {
	switch align {
	case "left":
		return "flex-start"
	case "right":
		return "flex-end"
	default:
		return "center"
	}
}

// FontSize scales a base size by a document multiplier.
func FontSize(base, scale float64, viewport rendering.Viewport) string {
	if scale <= 0 {
		scale = page.DefaultFontScale
	}
	size := base * scale
	if viewport == rendering.ViewportMobile && base > BaseBody {
		size *= mobileScale
	}
	return "font-size:" + Num(size) + "px"
}

// SectionTitle styles section headings.
func SectionTitle(ctx *rendering.RenderContext) string {
	return Join("margin:0 0 24px;line-height:1.3", FontSize(BaseSectionTitle, ctx.FontSizes.SectionTitle, ctx.Viewport))
}

// Body styles running text.
func Body(ctx *rendering.RenderContext) string {
	return Join("margin:0;line-height:1.8;white-space:pre-line", FontSize(BaseBody, ctx.FontSizes.Body, ctx.Viewport))
}

// ItemTitle styles card and item titles.
func ItemTitle(ctx *rendering.RenderContext) string {
	return Join("margin:0 0 8px;line-height:1.4", FontSize(BaseItemTitle, ctx.FontSizes.Body, ctx.Viewport))
}

// FontFamily returns the font stack declaration.
func FontFamily(family string) string {
	if family == page.FontSerif {
		return "font-family:Georgia,'Hiragino Mincho ProN','Times New Roman',serif"
	}
	return "font-family:system-ui,-apple-system,'Segoe UI','Hiragino Sans',Roboto,sans-serif"
}

// Percent clamps a width percentage, defaulting to 100.
func Percent(v int) int {
	if v <= 0 || v > 100 {
		return 100
	}
	return v
}
