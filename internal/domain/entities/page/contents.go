package page

import "github.com/AtRiskMedia/tractpage-go/internal/domain/registry"

// Content is the type-specific part of a Section. The set of implementations is
// closed; see Visitor.
type Content interface {
	sectionContent()
}

// NewContent returns a zero content value for the alias-resolved tag.
func NewContent(tag string) Content {
	switch registry.ResolveAlias(tag) {
	case registry.TypeText:
		return &TextContent{}
	case registry.TypeImage:
		return &ImageContent{}
	case registry.TypeImageText:
		return &ImageTextContent{}
	case registry.TypeHeading:
		return &HeadingContent{}
	case registry.TypeVideo:
		return &VideoContent{}
	case registry.TypeButton:
		return &ButtonContent{}
	case registry.TypeSocial:
		return &SocialContent{}
	case registry.TypeAccordion:
		return &AccordionContent{}
	case registry.TypePostCard:
		return &PostCardContent{}
	case registry.TypeColumns:
		return &ColumnsContent{}
	case registry.TypeLinks:
		return &LinksContent{}
	case registry.TypeBox:
		return &BoxContent{}
	case registry.TypeFullWidth:
		return &FullWidthContent{}
	case registry.TypeConversionPanel:
		return &ConversionPanelContent{}
	case registry.TypePointList:
		return &PointListContent{}
	case registry.TypeProblemChecklist:
		return &ProblemChecklistContent{}
	case registry.TypeSpeechBubble:
		return &SpeechBubbleContent{}
	case registry.TypePricing:
		return &PricingContent{}
	case registry.TypeProcess:
		return &ProcessContent{}
	case registry.TypeStaff:
		return &StaffContent{}
	case registry.TypeFAQ:
		return &FAQContent{}
	case registry.TypeComparison:
		return &ComparisonContent{}
	case registry.TypeAccess:
		return &AccessContent{}
	case registry.TypeReview:
		return &ReviewContent{}
	default:
		return &UnknownContent{}
	}
}

type TextContent struct {
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text,omitempty"`
	Align   string `json:"align,omitempty"` // left|center|right
}

type ImageContent struct {
	Image   *Image `json:"image,omitempty"`
	Caption string `json:"caption,omitempty"`
	Width   int    `json:"width,omitempty"` // percent
	Align   string `json:"align,omitempty"`
	Link    string `json:"link,omitempty"`
	Design  string `json:"design,omitempty"`
}

type ImageTextContent struct {
	Heading       string   `json:"heading,omitempty"`
	Text          string   `json:"text,omitempty"`
	Image         *Image   `json:"image,omitempty"`
	ImagePosition string   `json:"imagePosition,omitempty"` // left|right
	Buttons       []Button `json:"buttons"`
	Design        string   `json:"design,omitempty"`
}

type HeadingContent struct {
	Heading    string `json:"heading,omitempty"`
	Subheading string `json:"subheading,omitempty"`
	Align      string `json:"align,omitempty"`
	Level      int    `json:"level,omitempty"` // 2|3
	Color      string `json:"color,omitempty"`
	Design     string `json:"design,omitempty"`
}

type VideoContent struct {
	Heading  string `json:"heading,omitempty"`
	URL      string `json:"url,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Width    int    `json:"width,omitempty"` // percent
	Autoplay bool   `json:"autoplay,omitempty"`
}

type ButtonContent struct {
	Text      string `json:"text,omitempty"`
	URL       string `json:"url,omitempty"`
	Size      string `json:"size,omitempty"`   // sm|md|lg
	Effect    string `json:"effect,omitempty"` // none|shine|pulse|bounce
	Color     string `json:"color,omitempty"`
	TextColor string `json:"textColor,omitempty"`
	Align     string `json:"align,omitempty"`
	Rounded   bool   `json:"rounded,omitempty"`
	NewTab    bool   `json:"newTab,omitempty"`
	Note      string `json:"note,omitempty"`
}

type SocialContent struct {
	Heading  string `json:"heading,omitempty"`
	Platform string `json:"platform,omitempty"` // youtube|x|instagram|tiktok|facebook
	URL      string `json:"url,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

type AccordionItem struct {
	ID    ItemID `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Open  bool   `json:"open,omitempty"`
}

type AccordionContent struct {
	Heading string          `json:"heading,omitempty"`
	Items   []AccordionItem `json:"items"`
	Design  string          `json:"design,omitempty"`
}

type PostItem struct {
	ID    ItemID `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
	URL   string `json:"url,omitempty"`
	Date  string `json:"date,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

type PostCardContent struct {
	Heading     string     `json:"heading,omitempty"`
	ColumnCount int        `json:"columnCount,omitempty"`
	Items       []PostItem `json:"items"`
	Design      string     `json:"design,omitempty"`
}

// Column types.
const (
	ColCard   = "card"
	ColText   = "text"
	ColImage  = "image"
	ColVideo  = "video"
	ColSocial = "social"
)

type ColumnItem struct {
	ID         ItemID `json:"id,omitempty"`
	Title      string `json:"title,omitempty"`
	Text       string `json:"text,omitempty"`
	Image      *Image `json:"image,omitempty"`
	URL        string `json:"url,omitempty"` // video or social embed source
	ButtonText string `json:"buttonText,omitempty"`
	ButtonURL  string `json:"buttonUrl,omitempty"`
}

type ColumnsContent struct {
	Heading     string       `json:"heading,omitempty"`
	ColumnCount int          `json:"columnCount,omitempty"`
	ColType     string       `json:"colType,omitempty"`
	Items       []ColumnItem `json:"items"`
	Design      string       `json:"design,omitempty"`
}

type LinkItem struct {
	ID          ItemID `json:"id,omitempty"`
	Label       string `json:"label,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

type LinksContent struct {
	Heading string     `json:"heading,omitempty"`
	Layout  string     `json:"layout,omitempty"` // list|buttons|inline
	Links   []LinkItem `json:"links"`
	Design  string     `json:"design,omitempty"`
}

// BoxContent is a framed container; its body is Section.Children.
type BoxContent struct {
	Heading string `json:"heading,omitempty"`
	Width   int    `json:"width,omitempty"` // percent of the content width
}

// FullWidthContent is an edge-to-edge container; its body is Section.Children.
type FullWidthContent struct {
	MinHeight int `json:"minHeight,omitempty"` // px
}

type ConversionPanelContent struct {
	Heading string   `json:"heading,omitempty"`
	Text    string   `json:"text,omitempty"`
	Badge   string   `json:"badge,omitempty"`
	Note    string   `json:"note,omitempty"`
	Image   *Image   `json:"image,omitempty"`
	Buttons []Button `json:"buttons"`
	Sticky  bool     `json:"sticky,omitempty"`
	Design  string   `json:"design,omitempty"`
}

type PointItem struct {
	ID    ItemID `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Image *Image `json:"image,omitempty"`
}

type PointListContent struct {
	Heading  string      `json:"heading,omitempty"`
	Text     string      `json:"text,omitempty"`
	Numbered bool        `json:"numbered,omitempty"`
	Items    []PointItem `json:"items"`
	Design   string      `json:"design,omitempty"`
}

type ChecklistItem struct {
	ID   ItemID `json:"id,omitempty"`
	Text string `json:"text,omitempty"`
}

type ProblemChecklistContent struct {
	Heading    string          `json:"heading,omitempty"`
	Items      []ChecklistItem `json:"items"`
	Conclusion string          `json:"conclusion,omitempty"`
	Design     string          `json:"design,omitempty"`
}

type SpeechBubbleContent struct {
	Avatar      *Image `json:"avatar,omitempty"`
	Name        string `json:"name,omitempty"`
	Text        string `json:"text,omitempty"`
	Position    string `json:"position,omitempty"` // left|right
	BubbleColor string `json:"bubbleColor,omitempty"`
	Design      string `json:"design,omitempty"`
}

type Plan struct {
	ID         ItemID   `json:"id,omitempty"`
	Name       string   `json:"name,omitempty"`
	Price      string   `json:"price,omitempty"`
	Period     string   `json:"period,omitempty"`
	Features   []string `json:"features"`
	IsFeatured bool     `json:"isFeatured,omitempty"`
	Badge      string   `json:"badge,omitempty"`
	Icon       string   `json:"icon,omitempty"`
	Color      string   `json:"color,omitempty"`
	ButtonText string   `json:"buttonText,omitempty"`
	ButtonURL  string   `json:"buttonUrl,omitempty"`
}

type PricingContent struct {
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text,omitempty"`
	Plans   []Plan `json:"plans"`
	Design  string `json:"design,omitempty"`
}

// Step types.
const (
	StepTimeline = "timeline"
	StepCards    = "cards"
	StepArrow    = "arrow"
	StepNumbered = "numbered"
)

type Step struct {
	ID    ItemID `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Image *Image `json:"image,omitempty"`
}

type ProcessContent struct {
	Heading  string `json:"heading,omitempty"`
	StepType string `json:"stepType,omitempty"`
	Steps    []Step `json:"steps"`
	Design   string `json:"design,omitempty"`
}

// Staff layouts.
const (
	StaffGrid   = "grid"
	StaffList   = "list"
	StaffCircle = "circle"
)

type Member struct {
	ID    ItemID `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Text  string `json:"text,omitempty"`
	Image *Image `json:"image,omitempty"`
}

type StaffContent struct {
	Heading    string   `json:"heading,omitempty"`
	LayoutType string   `json:"layoutType,omitempty"`
	Members    []Member `json:"members"`
	Design     string   `json:"design,omitempty"`
}

type FAQItem struct {
	ID       ItemID `json:"id,omitempty"`
	Question string `json:"question,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

type FAQContent struct {
	Heading string    `json:"heading,omitempty"`
	FAQs    []FAQItem `json:"faqs"`
	Design  string    `json:"design,omitempty"`
}

type ComparisonRow struct {
	ID     ItemID   `json:"id,omitempty"`
	Label  string   `json:"label,omitempty"`
	Values []string `json:"values"`
}

type ComparisonContent struct {
	Heading string          `json:"heading,omitempty"`
	Columns []string        `json:"columns"`
	Rows    []ComparisonRow `json:"rows"`
	// HighlightColumn is 1-based; 0 highlights nothing.
	HighlightColumn int    `json:"highlightColumn,omitempty"`
	Design          string `json:"design,omitempty"`
}

type InfoRow struct {
	ID    ItemID `json:"id,omitempty"`
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
}

type AccessContent struct {
	Heading  string    `json:"heading,omitempty"`
	Address  string    `json:"address,omitempty"`
	MapQuery string    `json:"mapQuery,omitempty"`
	MapURL   string    `json:"mapUrl,omitempty"`
	Layout   string    `json:"layout,omitempty"` // side|stack
	Items    []InfoRow `json:"items"`
	Design   string    `json:"design,omitempty"`
}

// Review layouts.
const (
	ReviewCard   = "card"
	ReviewBubble = "bubble"
	ReviewList   = "list"
)

type ReviewItem struct {
	ID     ItemID `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Text   string `json:"text,omitempty"`
	Rating int    `json:"rating,omitempty"`
	Avatar *Image `json:"avatar,omitempty"`
}

type ReviewContent struct {
	Heading    string       `json:"heading,omitempty"`
	LayoutType string       `json:"layoutType,omitempty"`
	Items      []ReviewItem `json:"items"`
	Design     string       `json:"design,omitempty"`
}

// UnknownContent marks a section whose type no renderer handles. All of its
// fields are kept in Section.Extra.
type UnknownContent struct{}

func (*TextContent) sectionContent()             {}
func (*ImageContent) sectionContent()            {}
func (*ImageTextContent) sectionContent()        {}
func (*HeadingContent) sectionContent()          {}
func (*VideoContent) sectionContent()            {}
func (*ButtonContent) sectionContent()           {}
func (*SocialContent) sectionContent()           {}
func (*AccordionContent) sectionContent()        {}
func (*PostCardContent) sectionContent()         {}
func (*ColumnsContent) sectionContent()          {}
func (*LinksContent) sectionContent()            {}
func (*BoxContent) sectionContent()              {}
func (*FullWidthContent) sectionContent()        {}
func (*ConversionPanelContent) sectionContent()  {}
func (*PointListContent) sectionContent()        {}
func (*ProblemChecklistContent) sectionContent() {}
func (*SpeechBubbleContent) sectionContent()     {}
func (*PricingContent) sectionContent()          {}
func (*ProcessContent) sectionContent()          {}
func (*StaffContent) sectionContent()            {}
func (*FAQContent) sectionContent()              {}
func (*ComparisonContent) sectionContent()       {}
func (*AccessContent) sectionContent()           {}
func (*ReviewContent) sectionContent()           {}
func (*UnknownContent) sectionContent()          {}
