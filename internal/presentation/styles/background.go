package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

// Background kinds.
const (
	BackgroundNone  = "none"
	BackgroundColor = "color"
	BackgroundImage = "image"
)

// BackgroundStyle is the resolved background of a section.
type BackgroundStyle struct {
	Kind    string
	Color   string
	Image   string
	Overlay float64
}

// Background resolves a section's background. Sections without a usable
// background are transparent.
func Background(s *page.Section) BackgroundStyle {
	switch s.BgType {
	case page.BgImage:
		if u := CSSURL(s.BgValue); u != "" {
			return BackgroundStyle{Kind: BackgroundImage, Image: u, Overlay: min(max(s.BgOverlay, 0), 1)}
		}
	case page.BgColor:
		if c := Color(s.BgValue, ""); c != "" {
			return BackgroundStyle{Kind: BackgroundColor, Color: c}
		}
	}
	return BackgroundStyle{Kind: BackgroundNone}
}

// CSS returns the background declarations.
func (b BackgroundStyle) CSS() string {
	switch b.Kind {
	case BackgroundColor:
		return "background-color:" + b.Color
	case BackgroundImage:
		return fmt.Sprintf("background-image:url('%s');background-size:cover;background-position:center", b.Image)
	default:
		return "background:transparent"
	}
}

// HasOverlay reports whether a darkness layer is drawn over the background.
func (b BackgroundStyle) HasOverlay() bool {
	return b.Kind == BackgroundImage
}

// OverlayCSS styles the darkness layer.
func (b BackgroundStyle) OverlayCSS() string {
	return fmt.Sprintf("position:absolute;inset:0;background:rgba(0,0,0,%s);pointer-events:none;z-index:0", Num(b.Overlay))
}

// Attr is the data-bg marker value.
func (b BackgroundStyle) Attr() string {
	switch b.Kind {
	case BackgroundColor:
		return "color:" + b.Color
	case BackgroundImage:
		return "image:" + b.Image
	default:
		return BackgroundNone
	}
}

// PageBackground resolves the document background for the body element.
func PageBackground(bg page.Background) string {
	section := page.Section{BgType: bg.Type, BgValue: bg.Value}
	b := Background(&section)
	if b.Kind == BackgroundImage {
		return b.CSS() + ";background-attachment:fixed"
	}
	if b.Kind == BackgroundNone {
		return "background-color:#ffffff"
	}
	return b.CSS()
}
