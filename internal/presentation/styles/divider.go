package styles

import (
	"fmt"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/shapes"
)

// Divider positions.
const (
	DividerTop    = "top"
	DividerBottom = "bottom"
)

// DefaultDividerColor fills dividers without a colour.
const DefaultDividerColor = "#ffffff"

// DividerHeight is the drawn height of a divider in px.
const DividerHeight = 60

// DividerStyle is a resolved divider silhouette.
type DividerStyle struct {
	Position     string
	Shape        string
	Color        string
	ViewBox      string
	Path         string
	WrapperStyle string
	SVGStyle     string
}

// Divider resolves a divider; nil for none or an unknown shape.
func Divider(position, shape, color string) *DividerStyle {
	s, ok := shapes.GetShape(shape)
	if !ok {
		return nil
	}
	wrapper := "position:absolute;left:0;right:0;top:0;line-height:0;z-index:1;pointer-events:none"
	if position == DividerBottom {
		wrapper = "position:absolute;left:0;right:0;bottom:0;line-height:0;z-index:1;pointer-events:none;transform:rotate(180deg)"
	} else {
		position = DividerTop
	}
	return &DividerStyle{
		Position:     position,
		Shape:        s.Name,
		Color:        Color(color, DefaultDividerColor),
		ViewBox:      fmt.Sprintf("0 0 %d %d", s.ViewBox[0], s.ViewBox[1]),
		Path:         s.Path,
		WrapperStyle: wrapper,
		SVGStyle:     fmt.Sprintf("display:block;width:100%%;height:%dpx", DividerHeight),
	}
}

// Class is the divider wrapper's class list.
func (d *DividerStyle) Class() string {
	return "tp-divider tp-divider-" + d.Position + " tp-divider-" + d.Shape
}

// Attr is the data-divider-{position} marker value.
func (d *DividerStyle) Attr() string {
	return d.Shape + ":" + d.Color
}
