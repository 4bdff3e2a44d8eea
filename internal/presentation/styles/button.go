package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

// Button effects.
const (
	EffectNone   = "none"
	EffectShine  = "shine"
	EffectPulse  = "pulse"
	EffectBounce = "bounce"
)

// ButtonStyle is a resolved button.
type ButtonStyle struct {
	Class string
	CSS   string
}

var buttonSizes = map[string]string{
	"sm": "padding:8px 18px;font-size:14px",
	"md": "padding:12px 28px;font-size:16px",
	"lg": "padding:18px 44px;font-size:19px",
}

const buttonBase = "display:inline-block;font-weight:700;text-decoration:none;line-height:1.4;position:relative;overflow:hidden;transition:opacity 0.2s"

// Button resolves the button section's size, effect and colours.
func Button(size, effect, color, textColor string, rounded bool, accent string) ButtonStyle {
	sizeCSS, ok := buttonSizes[size]
	if !ok {
		sizeCSS = buttonSizes["md"]
	}
	radius := "8px"
	if rounded {
		radius = "999px"
	}
	class := "tp-btn"
	switch effect {
	case EffectShine, EffectPulse, EffectBounce:
		class += " tp-fx-" + effect
	}
	return ButtonStyle{
		Class: class,
		CSS: Join(buttonBase, sizeCSS,
			"background:"+Color(color, Color(accent, "#2563eb")),
			"color:"+Color(textColor, "#ffffff"),
			"border-radius:"+radius),
	}
}

// ActionButton resolves one of the buttons listed by hero, image-text and
// conversion sections.
func ActionButton(b page.Button, accent string) ButtonStyle {
	c := Color(b.Color, Color(accent, "#2563eb"))
	if b.Style == "outline" {
		return ButtonStyle{
			Class: "tp-btn tp-btn-outline",
			CSS:   Join(buttonBase, buttonSizes["md"], "background:transparent", "color:"+Color(b.TextColor, c), fmt.Sprintf("border:2px solid %s", c), "border-radius:8px"),
		}
	}
	return ButtonStyle{
		Class: "tp-btn",
		CSS:   Join(buttonBase, buttonSizes["md"], "background:"+c, "color:"+Color(b.TextColor, "#ffffff"), "border-radius:8px"),
	}
}

// SkinButton resolves a button drawn in a skin's colours.
func SkinButton(skin SkinStyle) ButtonStyle {
	return ButtonStyle{Class: "tp-btn", CSS: Join(buttonBase, buttonSizes["md"], skin.Button)}
}
