package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/registry"
)

// SkinStyle is the visual language of a design variant, applied to the cards,
// titles, badges and buttons of list-like sections.
type SkinStyle struct {
	Name    string
	Accent  string
	Card    string
	Heading string
	Title   string
	Muted   string
	Badge   string
	Button  string
	Mark    string
}

// Skin resolves a design name. Unknown names use the standard skin.
func Skin(design, accent string) SkinStyle {
	a := Color(accent, "#2563eb")
	switch design {
	case registry.DesignGentle:
		return SkinStyle{
			Name:    design,
			Accent:  "#e08aa5",
			Card:    "background:#fff7f9;border:1px solid #f6d5df;border-radius:24px;padding:28px;box-shadow:0 6px 20px rgba(224,138,165,0.15)",
			Heading: "font-weight:700;color:#b45f7a;letter-spacing:0.02em",
			Title:   "font-weight:700;color:#8a4a5f",
			Muted:   "color:#9b7b86",
			Badge:   "display:inline-block;background:#fde4ec;color:#b45f7a;border-radius:999px;padding:4px 14px;font-size:12px;font-weight:700",
			Button:  "background:#e08aa5;color:#ffffff;border-radius:999px",
			Mark:    "background:#fde4ec;color:#b45f7a;border-radius:999px",
		}
	case registry.DesignMasculine:
		return SkinStyle{
			Name:    design,
			Accent:  "#1e3a8a",
			Card:    "background:#ffffff;border:2px solid #1e293b;border-radius:0;padding:28px",
			Heading: "font-weight:800;color:#0f172a;text-transform:uppercase;letter-spacing:0.04em",
			Title:   "font-weight:800;color:#0f172a",
			Muted:   "color:#475569",
			Badge:   "display:inline-block;background:#0f172a;color:#ffffff;padding:4px 12px;font-size:12px;font-weight:700;text-transform:uppercase",
			Button:  "background:#1e3a8a;color:#ffffff;border-radius:0",
			Mark:    "background:#0f172a;color:#ffffff;border-radius:0",
		}
	case registry.DesignStylish:
		return SkinStyle{
			Name:    design,
			Accent:  a,
			Card:    fmt.Sprintf("background:linear-gradient(135deg,#ffffff 0%%,#f5f3ff 100%%);border-radius:20px;padding:28px;box-shadow:0 20px 40px rgba(0,0,0,0.08);border-top:4px solid %s", a),
			Heading: fmt.Sprintf("font-weight:800;background:linear-gradient(90deg,%s,#a855f7);-webkit-background-clip:text;background-clip:text;color:transparent", a),
			Title:   "font-weight:700;color:#111827",
			Muted:   "color:#6b7280",
			Badge:   fmt.Sprintf("display:inline-block;background:linear-gradient(90deg,%s,#a855f7);color:#ffffff;border-radius:999px;padding:4px 14px;font-size:12px;font-weight:700", a),
			Button:  fmt.Sprintf("background:linear-gradient(90deg,%s,#a855f7);color:#ffffff;border-radius:999px", a),
			Mark:    fmt.Sprintf("background:linear-gradient(135deg,%s,#a855f7);color:#ffffff;border-radius:12px", a),
		}
	case registry.DesignLuxury:
		return SkinStyle{
			Name:    design,
			Accent:  "#b08d57",
			Card:    "background:#111111;color:#f5f0e6;border:1px solid #b08d57;border-radius:2px;padding:32px",
			Heading: "font-family:Georgia,'Times New Roman',serif;font-weight:400;color:#b08d57;letter-spacing:0.12em",
			Title:   "font-family:Georgia,'Times New Roman',serif;color:#d4b483;letter-spacing:0.06em",
			Muted:   "color:#bfb5a3",
			Badge:   "display:inline-block;border:1px solid #b08d57;color:#b08d57;padding:4px 14px;font-size:11px;letter-spacing:0.2em;text-transform:uppercase",
			Button:  "background:#b08d57;color:#111111;border-radius:2px;letter-spacing:0.1em",
			Mark:    "border:1px solid #b08d57;color:#b08d57;border-radius:0",
		}
	case registry.DesignEarth:
		return SkinStyle{
			Name:    design,
			Accent:  "#7c5c3b",
			Card:    "background:#faf6ef;border:1px solid #e4d8c4;border-radius:14px;padding:28px",
			Heading: "font-weight:700;color:#5b4127",
			Title:   "font-weight:700;color:#5b4127",
			Muted:   "color:#8b7760",
			Badge:   "display:inline-block;background:#e7efe1;color:#4d6b3c;border-radius:6px;padding:4px 12px;font-size:12px;font-weight:700",
			Button:  "background:#6b8f4e;color:#ffffff;border-radius:10px",
			Mark:    "background:#e7efe1;color:#4d6b3c;border-radius:50%",
		}
	case registry.DesignCyber:
		return SkinStyle{
			Name:    design,
			Accent:  "#00e5ff",
			Card:    "background:#0b1020;color:#e0f7ff;border:1px solid #00e5ff;border-radius:4px;padding:28px;box-shadow:0 0 16px rgba(0,229,255,0.35)",
			Heading: "font-family:ui-monospace,Menlo,monospace;color:#00e5ff;text-transform:uppercase;text-shadow:0 0 8px rgba(0,229,255,0.7)",
			Title:   "font-family:ui-monospace,Menlo,monospace;color:#00e5ff",
			Muted:   "color:#7dd3fc",
			Badge:   "display:inline-block;background:#ff00e5;color:#0b1020;padding:4px 12px;font-size:12px;font-weight:700;font-family:ui-monospace,Menlo,monospace",
			Button:  "background:transparent;color:#00e5ff;border:1px solid #00e5ff;border-radius:4px;box-shadow:0 0 10px rgba(0,229,255,0.5)",
			Mark:    "background:#00e5ff;color:#0b1020;border-radius:2px",
		}
	case "modern":
		return SkinStyle{
			Name:    design,
			Accent:  a,
			Card:    "background:#ffffff;border-radius:20px;padding:32px;box-shadow:0 25px 50px rgba(15,23,42,0.10)",
			Heading: "font-weight:800;color:#0f172a;letter-spacing:-0.02em",
			Title:   "font-weight:800;color:#0f172a",
			Muted:   "color:#64748b",
			Badge:   fmt.Sprintf("display:inline-block;background:%s;color:#ffffff;border-radius:999px;padding:4px 14px;font-size:12px;font-weight:700", a),
			Button:  fmt.Sprintf("background:%s;color:#ffffff;border-radius:12px", a),
			Mark:    fmt.Sprintf("background:%s;color:#ffffff;border-radius:12px", a),
		}
	case "simple":
		return SkinStyle{
			Name:    design,
			Accent:  a,
			Card:    "background:transparent;border:1px solid #e5e7eb;border-radius:8px;padding:24px",
			Heading: "font-weight:700;color:inherit",
			Title:   "font-weight:600;color:inherit",
			Muted:   "color:#6b7280",
			Badge:   "display:inline-block;border:1px solid currentColor;border-radius:4px;padding:2px 10px;font-size:12px",
			Button:  fmt.Sprintf("background:transparent;color:%[1]s;border:1px solid %[1]s;border-radius:6px", a),
			Mark:    "border:1px solid currentColor;border-radius:4px",
		}
	default:
		return SkinStyle{
			Name:    registry.DesignStandard,
			Accent:  a,
			Card:    "background:#ffffff;border:1px solid #e5e7eb;border-radius:12px;padding:24px;box-shadow:0 1px 3px rgba(0,0,0,0.08)",
			Heading: "font-weight:700;color:inherit",
			Title:   "font-weight:700;color:#111827",
			Muted:   "color:#6b7280",
			Badge:   fmt.Sprintf("display:inline-block;background:%s;color:#ffffff;border-radius:999px;padding:4px 12px;font-size:12px;font-weight:700", a),
			Button:  fmt.Sprintf("background:%s;color:#ffffff;border-radius:8px", a),
			Mark:    fmt.Sprintf("background:%s;color:#ffffff;border-radius:50%%", a),
		}
	}
}

// Class is the skin's class name.
func (s SkinStyle) Class() string {
	return "tp-skin-" + s.Name
}

// FeaturedCard elevates the one highlighted card of a list.
func (s SkinStyle) FeaturedCard() string {
	return Join(s.Card, fmt.Sprintf("border:2px solid %s;transform:scale(1.04);box-shadow:0 20px 40px rgba(0,0,0,0.15);position:relative;z-index:1", s.Accent))
}

// HeadingStyle is a resolved heading-section design.
type HeadingStyle struct {
	Name       string
	Text       string
	Decoration string
}

// Heading resolves the heading section's design. Decoration is empty when the
// design draws no extra element.
func Heading(design, color, accent, align string) HeadingStyle {
	a := Color(accent, "#2563eb")
	c := Color(color, "inherit")
	margin := "12px auto 0"
	switch align {
	case "left":
		margin = "12px 0 0"
	case "right":
		margin = "12px 0 0 auto"
	}
	base := "margin:0;font-weight:700;color:" + c
	switch design {
	case "underline":
		return HeadingStyle{Name: design, Text: base, Decoration: fmt.Sprintf("width:64px;height:4px;border-radius:2px;background:%s;margin:%s", a, margin)}
	case "bar":
		return HeadingStyle{Name: design, Text: Join(base, "border-left:6px solid "+a, "padding-left:16px")}
	case "bubble":
		return HeadingStyle{Name: design, Text: Join("margin:0;font-weight:700;display:inline-block;color:#ffffff", "background:"+a, "padding:10px 24px;border-radius:999px")}
	case "ribbon":
		return HeadingStyle{Name: design, Text: Join("margin:0;font-weight:700;display:inline-block;color:#ffffff", "background:"+a, "padding:10px 40px;clip-path:polygon(0 0,100% 0,96% 50%,100% 100%,0 100%,4% 50%)")}
	case registry.DesignLuxury:
		return HeadingStyle{Name: design, Text: "margin:0;font-family:Georgia,'Times New Roman',serif;font-weight:400;letter-spacing:0.12em;color:" + Color(color, "#b08d57"), Decoration: "width:80px;height:1px;background:#b08d57;margin:" + margin}
	case registry.DesignCyber:
		return HeadingStyle{Name: design, Text: "margin:0;font-family:ui-monospace,Menlo,monospace;text-transform:uppercase;color:#00e5ff;text-shadow:0 0 8px rgba(0,229,255,0.8)"}
	default:
		return HeadingStyle{Name: "simple", Text: base}
	}
}

// ImageFrame returns the frame CSS of an image-section design.
func ImageFrame(design string) string {
	switch design {
	case "rounded":
		return "border-radius:16px;overflow:hidden"
	case "shadow":
		return "border-radius:8px;overflow:hidden;box-shadow:0 10px 25px rgba(0,0,0,0.15)"
	case "polaroid":
		return "background:#ffffff;padding:12px 12px 40px;box-shadow:0 4px 14px rgba(0,0,0,0.15)"
	default:
		return ""
	}
}
