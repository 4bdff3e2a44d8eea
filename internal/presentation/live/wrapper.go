package live

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
	"github.com/AtRiskMedia/tractpage-go/internal/presentation/styles"
)

// wrap applies the chrome every section shares: background and overlay,
// padding, content column, dividers and box frame.
func (lr *Renderer) wrap(s *page.Section, inner *html.Node) *html.Node {
	bg := styles.Background(s)
	top := styles.Divider(styles.DividerTop, s.DividerTop, s.DividerTopColor)
	bottom := styles.Divider(styles.DividerBottom, s.DividerBottom, s.DividerBottomColor)
	box := styles.Box(s.BoxStyle, s.BoxColor, lr.ctx.AccentColor)
	tag := s.CanonicalType()

	kv := []string{
		"id", sectionAnchor(s),
		"class", "tp-section tp-section-" + tag,
		"data-section-id", strconv.Itoa(s.ID),
		"data-section-type", tag,
		"data-bg", bg.Attr(),
	}
	if bg.HasOverlay() {
		kv = append(kv, "data-bg-overlay", styles.Num(bg.Overlay))
	}
	if top != nil {
		kv = append(kv, "data-divider-top", top.Attr())
	}
	if bottom != nil {
		kv = append(kv, "data-divider-bottom", bottom.Attr())
	}
	if box != nil {
		kv = append(kv, "data-box", box.Name)
	}
	kv = append(kv, "style", styles.Join("position:relative", bg.CSS(), styles.PaddingCSS(s.PaddingTop, s.PaddingBottom)))

	body := inner
	if box != nil {
		body = el("div", attrs("class", box.Class(), "style", box.CSS), inner)
	}
	_, fullWidth := s.ContentOrZero().(*page.FullWidthContent)

	var overlay *html.Node
	if bg.HasOverlay() {
		overlay = el("div", attrs("class", "tp-overlay", "style", bg.OverlayCSS(), "aria-hidden", "true"))
	}
	return el("section", attrs(kv...),
		overlay,
		divider(top),
		el("div", attrs("class", "tp-inner", "style", styles.Inner(lr.ctx, fullWidth)), body),
		divider(bottom),
	)
}

func divider(d *styles.DividerStyle) *html.Node {
	if d == nil {
		return nil
	}
	return el("div", attrs("class", d.Class(), "style", d.WrapperStyle, "aria-hidden", "true"),
		el("svg", attrs("xmlns", "http://www.w3.org/2000/svg", "viewBox", d.ViewBox, "preserveAspectRatio", "none", "style", d.SVGStyle),
			el("path", attrs("d", d.Path, "fill", d.Color)),
		),
	)
}
