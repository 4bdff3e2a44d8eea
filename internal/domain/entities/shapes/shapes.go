// Package shapes holds the SVG silhouettes used for section dividers. Both the
// live renderer and the static exporter draw dividers from this catalog, so the
// path data is identical in either output.
package shapes

// Shape is one divider silhouette. Paths are drawn against the top edge of the
// view box; bottom dividers are flipped by the renderer.
type Shape struct {
	Name    string
	ViewBox [2]int
	Path    string
}

var catalog = map[string]Shape{
	"wave": {
		Name:    "wave",
		ViewBox: [2]int{1200, 120},
		Path:    "M0,0V46.29c47.79,22.2,103.59,32.17,158,28,70.36-5.37,136.33-33.31,206.8-37.5C438.64,32.43,512.34,53.67,583,72.05c69.27,18,138.3,24.88,209.4,13.08,36.15-6,69.85-17.84,104.45-29.34C989.49,25,1113-14.29,1200,52.47V0Z",
	},
	"tilt-right": {
		Name:    "tilt-right",
		ViewBox: [2]int{1200, 120},
		Path:    "M1200 120L0 16.48 0 0 1200 0 1200 120z",
	},
	"tilt-left": {
		Name:    "tilt-left",
		ViewBox: [2]int{1200, 120},
		Path:    "M0 120L1200 16.48 1200 0 0 0 0 120z",
	},
	"triangle": {
		Name:    "triangle",
		ViewBox: [2]int{1200, 120},
		Path:    "M1200 0L0 0 598.97 114.72 1200 0z",
	},
	"curve": {
		Name:    "curve",
		ViewBox: [2]int{1200, 120},
		Path:    "M0,0V7.23C0,65.52,268.63,112.77,600,112.77S1200,65.52,1200,7.23V0Z",
	},
}

// GetShape looks up a divider shape by name.
func GetShape(name string) (Shape, bool) {
	shape, ok := catalog[name]
	return shape, ok
}

// Names returns the catalog's shape names in a fixed order.
func Names() []string {
	return []string{"wave", "tilt-right", "tilt-left", "triangle", "curve"}
}
