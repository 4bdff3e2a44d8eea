package page

// Visitor renders or otherwise processes a section by type. Implementations are
// asserted against Visitor so that a type added to the catalog without a
// matching method fails to compile. nested carries the already processed
// children of the section.
type Visitor[T any] interface {
	Text(s *Section, c *TextContent, nested []T) T
	Image(s *Section, c *ImageContent, nested []T) T
	ImageText(s *Section, c *ImageTextContent, nested []T) T
	Heading(s *Section, c *HeadingContent, nested []T) T
	Video(s *Section, c *VideoContent, nested []T) T
	Button(s *Section, c *ButtonContent, nested []T) T
	Social(s *Section, c *SocialContent, nested []T) T
	Accordion(s *Section, c *AccordionContent, nested []T) T
	PostCard(s *Section, c *PostCardContent, nested []T) T
	Columns(s *Section, c *ColumnsContent, nested []T) T
	Links(s *Section, c *LinksContent, nested []T) T
	Box(s *Section, c *BoxContent, nested []T) T
	FullWidth(s *Section, c *FullWidthContent, nested []T) T
	ConversionPanel(s *Section, c *ConversionPanelContent, nested []T) T
	PointList(s *Section, c *PointListContent, nested []T) T
	ProblemChecklist(s *Section, c *ProblemChecklistContent, nested []T) T
	SpeechBubble(s *Section, c *SpeechBubbleContent, nested []T) T
	Pricing(s *Section, c *PricingContent, nested []T) T
	Process(s *Section, c *ProcessContent, nested []T) T
	Staff(s *Section, c *StaffContent, nested []T) T
	FAQ(s *Section, c *FAQContent, nested []T) T
	Comparison(s *Section, c *ComparisonContent, nested []T) T
	Access(s *Section, c *AccessContent, nested []T) T
	Review(s *Section, c *ReviewContent, nested []T) T
	Unknown(s *Section, nested []T) T
}

// Visit calls the Visitor method matching the section's content.
func Visit[T any](s *Section, v Visitor[T], nested []T) T {
	switch c := s.ContentOrZero().(type) {
	case *TextContent:
		return v.Text(s, c, nested)
	case *ImageContent:
		return v.Image(s, c, nested)
	case *ImageTextContent:
		return v.ImageText(s, c, nested)
	case *HeadingContent:
		return v.Heading(s, c, nested)
	case *VideoContent:
		return v.Video(s, c, nested)
	case *ButtonContent:
		return v.Button(s, c, nested)
	case *SocialContent:
		return v.Social(s, c, nested)
	case *AccordionContent:
		return v.Accordion(s, c, nested)
	case *PostCardContent:
		return v.PostCard(s, c, nested)
	case *ColumnsContent:
		return v.Columns(s, c, nested)
	case *LinksContent:
		return v.Links(s, c, nested)
	case *BoxContent:
		return v.Box(s, c, nested)
	case *FullWidthContent:
		return v.FullWidth(s, c, nested)
	case *ConversionPanelContent:
		return v.ConversionPanel(s, c, nested)
	case *PointListContent:
		return v.PointList(s, c, nested)
	case *ProblemChecklistContent:
		return v.ProblemChecklist(s, c, nested)
	case *SpeechBubbleContent:
		return v.SpeechBubble(s, c, nested)
	case *PricingContent:
		return v.Pricing(s, c, nested)
	case *ProcessContent:
		return v.Process(s, c, nested)
	case *StaffContent:
		return v.Staff(s, c, nested)
	case *FAQContent:
		return v.FAQ(s, c, nested)
	case *ComparisonContent:
		return v.Comparison(s, c, nested)
	case *AccessContent:
		return v.Access(s, c, nested)
	case *ReviewContent:
		return v.Review(s, c, nested)
	default:
		return v.Unknown(s, nested)
	}
}
