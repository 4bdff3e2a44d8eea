// Package rendering provides the context shared by the live renderer and the
// static exporter.
package rendering

import "github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"

// Viewport selects how responsive layouts are resolved.
type Viewport string

const (
	// ViewportDesktop and ViewportMobile pin the live preview to one layout.
	ViewportDesktop Viewport = "desktop"
	ViewportMobile  Viewport = "mobile"
	// ViewportResponsive leaves the choice to CSS breakpoints (static export).
	ViewportResponsive Viewport = "responsive"
)

// MaxDepth caps nested children; deeper sections are not rendered.
const MaxDepth = 6

// Defaults applied when the document leaves a value empty.
const (
	DefaultAccentColor   = "#2563eb"
	DefaultTextColor     = "#1f2937"
	DefaultGlobalPadding = 24
	DefaultMaxWidth      = 1100
)

// RenderContext carries document-wide settings into the section renderers.
type RenderContext struct {
	Viewport      Viewport       `json:"viewport"`
	FontSizes     page.FontSizes `json:"fontSizes"`
	FontFamily    string         `json:"fontFamily"`
	AccentColor   string         `json:"accentColor"`
	TextColor     string         `json:"textColor"`
	GlobalPadding int            `json:"globalPadding"`
	MaxWidth      int            `json:"maxWidth"`
}

// NewRenderContext derives a context from a document, filling defaults.
func NewRenderContext(doc *page.Document, viewport Viewport) *RenderContext {
	ctx := &RenderContext{
		Viewport:      viewport,
		AccentColor:   DefaultAccentColor,
		TextColor:     DefaultTextColor,
		GlobalPadding: DefaultGlobalPadding,
		MaxWidth:      DefaultMaxWidth,
		FontFamily:    page.FontSans,
		FontSizes: page.FontSizes{
			HeroTitle:    page.DefaultFontScale,
			HeroSubtitle: page.DefaultFontScale,
			SectionTitle: page.DefaultFontScale,
			Body:         page.DefaultFontScale,
		},
	}
	if ctx.Viewport == "" {
		ctx.Viewport = ViewportDesktop
	}
	if doc == nil {
		return ctx
	}
	if doc.AccentColor != "" {
		ctx.AccentColor = doc.AccentColor
	}
	if doc.TextColor != "" {
		ctx.TextColor = doc.TextColor
	}
	if doc.GlobalPadding > 0 {
		ctx.GlobalPadding = doc.GlobalPadding
	}
	if doc.FontFamily == page.FontSerif {
		ctx.FontFamily = page.FontSerif
	}
	fs := doc.FontSizes
	if fs.HeroTitle > 0 {
		ctx.FontSizes.HeroTitle = fs.HeroTitle
	}
	if fs.HeroSubtitle > 0 {
		ctx.FontSizes.HeroSubtitle = fs.HeroSubtitle
	}
	if fs.SectionTitle > 0 {
		ctx.FontSizes.SectionTitle = fs.SectionTitle
	}
	if fs.Body > 0 {
		ctx.FontSizes.Body = fs.Body
	}
	return ctx
}

// Responsive reports whether layout decisions are left to CSS breakpoints.
func (c *RenderContext) Responsive() bool {
	return c.Viewport == ViewportResponsive
}

// Mobile reports whether the live preview is pinned to the mobile layout.
func (c *RenderContext) Mobile() bool {
	return c.Viewport == ViewportMobile
}
