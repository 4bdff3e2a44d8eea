package styles

import "fmt"

// Element CSS shared by both renderers.
const (
	ButtonRowCSS    = "display:flex;flex-wrap:wrap;gap:12px;margin-top:24px"
	CaptionCSS      = "margin:12px 0 0;font-size:14px;color:#6b7280"
	NoteCSS         = "margin:12px 0 0;font-size:13px;color:#6b7280"
	FillImageCSS    = "width:100%;height:auto;display:block"
	RoundImageCSS   = "width:100%;height:auto;display:block;border-radius:12px"
	CoverImageCSS   = "width:100%;aspect-ratio:16/9;object-fit:cover;border-radius:8px"
	SquareImageCSS  = "width:100%;aspect-ratio:1/1;object-fit:cover;border-radius:8px"
	ListResetCSS    = "list-style:none;margin:0;padding:0"
	StackCSS        = "display:flex;flex-direction:column;gap:16px"
	NarrowCSS       = "max-width:760px;margin-left:auto;margin-right:auto"
	CardStackCSS    = "display:flex;flex-direction:column;gap:12px"
	VideoFileCSS    = "width:100%;display:block;border-radius:12px"
	IframeAllow     = "autoplay; encrypted-media; picture-in-picture"
	SocialFrameCSS  = "max-width:540px;margin:0 auto"
	SocialLinkCSS   = "display:inline-block;padding:16px 24px;border:1px solid #e5e7eb;border-radius:12px;text-decoration:none;font-weight:600"
	MetaRowCSS      = "display:flex;gap:8px;align-items:center;font-size:12px"
	IntroCSS        = "text-align:center;margin:0 auto 32px;max-width:720px"
	MarkBoxCSS      = "flex:none;display:flex;align-items:center;justify-content:center;font-weight:700"
	RowCSS          = "display:flex;gap:16px;align-items:flex-start"
	FlexFillCSS     = "flex:1;min-width:0"
	CellCSS         = "padding:12px 16px;border-bottom:1px solid #e5e7eb"
	HighlightCSS    = "box-shadow:inset 0 0 0 9999px rgba(0,0,0,0.04);font-weight:700"
	StarsCSS        = "margin:0 0 8px;color:#f59e0b;letter-spacing:2px"
	ReviewerCSS     = "display:flex;gap:12px;align-items:center;margin-top:16px"
	NameCSS         = "margin:0;font-weight:700"
	RoleCSS         = "margin:0;font-size:12px"
	IconCSS         = "font-size:28px;line-height:1"
	PriceCSS        = "margin:0;font-size:36px;font-weight:800"
	PeriodCSS       = "font-size:14px;font-weight:400;margin-left:4px"
	ReadMoreCSS     = "margin-top:auto;font-weight:700;text-decoration:none"
	InfoListCSS     = "margin:0;display:grid;grid-template-columns:max-content 1fr;gap:8px 24px"
	AddressCSS      = "margin:0 0 16px;font-weight:700"
	SummaryCSS      = "display:flex;justify-content:space-between;align-items:center;gap:16px"
	AccordionIcon   = "+"
	TimelineDotCSS  = "position:absolute;left:-43px;top:4px;width:18px;height:18px;border-radius:50%;border:3px solid #ffffff"
	ArrowCSS        = "align-self:center;font-size:24px"
	InlineLinksCSS  = "display:flex;flex-wrap:wrap;gap:8px 24px;justify-content:center;margin:0"
	LinkLabelCSS    = "font-weight:700;text-decoration:none"
	ChildrenCSS     = "display:flex;flex-direction:column;gap:24px"
	ConclusionCSS   = "text-align:center;margin:32px auto 0;max-width:720px;font-weight:700"
	FeatureListCSS  = "list-style:none;margin:0;padding:0;text-align:left;display:flex;flex-direction:column;gap:8px"
	TableWrapCSS    = "overflow-x:auto"
	TableCSS        = "width:100%;border-collapse:collapse;text-align:center"
	MapFrameCSS     = "position:relative;width:100%;padding-top:56.25%;overflow:hidden;border-radius:12px"
	StickyCSS       = "position:sticky;top:16px;z-index:5"
	HeadingSubCSS   = "margin:12px 0 0;color:#6b7280"
	FigureCSS       = "margin:0"
	QuestionMarkCSS = "font-weight:800"
)

// AvatarCSS sizes a round portrait.
func AvatarCSS(size int) string {
	return fmt.Sprintf("width:%[1]dpx;height:%[1]dpx;border-radius:50%%;object-fit:cover;flex:none", size)
}

// InitialCSS sizes the initial drawn in place of a missing portrait.
func InitialCSS(size int) string {
	return fmt.Sprintf("width:%[1]dpx;height:%[1]dpx;border-radius:50%%;flex:none;display:flex;align-items:center;justify-content:center;font-weight:700;font-size:%[2]dpx;background:#e5e7eb;color:#4b5563", size, size*2/5)
}

// MarkCSSBox sizes a square mark such as a step number or check.
func MarkCSSBox(size int) string {
	return fmt.Sprintf("%s;width:%dpx;height:%dpx", MarkBoxCSS, size, size)
}

// SocialIframeCSS sizes a social embed.
func SocialIframeCSS(height int) string {
	return fmt.Sprintf("width:100%%;height:%dpx;border:0;border-radius:12px", height)
}

// WidthCSS centres a block at a percentage of the content width.
func WidthCSS(percent int) string {
	return fmt.Sprintf("width:%d%%;max-width:100%%;margin-left:auto;margin-right:auto", Percent(percent))
}

// AccentText colours text with an accent.
func AccentText(accent string) string {
	return "color:" + Color(accent, "#2563eb")
}

// AccentBorder draws the timeline rail.
func AccentBorder(accent string) string {
	return "padding:0 0 0 32px;border-left:3px solid " + Color(accent, "#2563eb")
}

// AccentFill fills a shape with an accent.
func AccentFill(accent string) string {
	return "background:" + Color(accent, "#2563eb")
}

// MinHeight reserves vertical space; zero reserves none.
func MinHeight(px int) string {
	if px <= 0 {
		return ""
	}
	return fmt.Sprintf("min-height:%dpx", px)
}
