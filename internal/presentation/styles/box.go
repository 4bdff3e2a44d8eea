package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

// BoxStyle is a resolved box frame.
type BoxStyle struct {
	Name  string
	Color string
	CSS   string
}

var boxRules = map[string]func(c string) string{
	page.BoxShadow: func(string) string {
		return "background:#ffffff;border-radius:16px;box-shadow:0 10px 30px rgba(0,0,0,0.12);padding:32px"
	},
	page.BoxBorder: func(c string) string {
		return fmt.Sprintf("border:2px solid %s;border-radius:12px;padding:32px", c)
	},
	page.BoxFill: func(c string) string {
		return fmt.Sprintf("background:%s;border-radius:16px;padding:32px", c)
	},
	page.BoxStitch: func(c string) string {
		return fmt.Sprintf("border:2px dashed %s;border-radius:12px;padding:32px;box-shadow:0 0 0 6px rgba(0,0,0,0.03)", c)
	},
	page.BoxDouble: func(c string) string {
		return fmt.Sprintf("border:6px double %s;border-radius:4px;padding:32px", c)
	},
	page.BoxComic: func(c string) string {
		return fmt.Sprintf("background:#ffffff;border:3px solid #111111;border-radius:4px;box-shadow:6px 6px 0 %s;padding:32px", c)
	},
	page.BoxNeon: func(c string) string {
		return fmt.Sprintf("border:2px solid %[1]s;border-radius:12px;box-shadow:0 0 12px %[1]s,inset 0 0 12px %[1]s;padding:32px", c)
	},
	page.BoxGlass: func(string) string {
		return "background:rgba(255,255,255,0.18);backdrop-filter:blur(10px);-webkit-backdrop-filter:blur(10px);border:1px solid rgba(255,255,255,0.35);border-radius:16px;padding:32px"
	},
}

// Box resolves a box frame; nil for none or an unknown style. Fill boxes
// default to a light grey, the rest to the accent colour.
func Box(style, color, accent string) *BoxStyle {
	rule, ok := boxRules[style]
	if !ok {
		return nil
	}
	fallback := Color(accent, "#2563eb")
	if style == page.BoxFill {
		fallback = "#f3f4f6"
	}
	c := Color(color, fallback)
	return &BoxStyle{Name: style, Color: c, CSS: rule(c)}
}

// Class is the frame's class list.
func (b *BoxStyle) Class() string {
	return "tp-box tp-box-" + b.Name
}
