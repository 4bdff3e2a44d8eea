// Package registry is the catalog of section types understood by the renderers,
// together with the alias table used to migrate legacy or generated type names.
package registry

import "slices"

// Section type tags.
const (
	TypeText             = "text"
	TypeImage            = "image"
	TypeImageText        = "image_text"
	TypeHeading          = "heading"
	TypeVideo            = "video"
	TypeButton           = "button"
	TypeSocial           = "social"
	TypeAccordion        = "accordion"
	TypePostCard         = "post_card"
	TypeColumns          = "columns"
	TypeLinks            = "links"
	TypeBox              = "box"
	TypeFullWidth        = "full_width"
	TypeConversionPanel  = "conversion_panel"
	TypePointList        = "point_list"
	TypeProblemChecklist = "problem_checklist"
	TypeSpeechBubble     = "speech_bubble"
	TypePricing          = "pricing"
	TypeProcess          = "process"
	TypeStaff            = "staff"
	TypeFAQ              = "faq"
	TypeComparison       = "comparison"
	TypeAccess           = "access"
	TypeReview           = "review"
)

// Categories group types for the generation pipeline's prompt building.
const (
	CategoryBasic      = "basic"
	CategoryMedia      = "media"
	CategoryList       = "list"
	CategoryContainer  = "container"
	CategoryConversion = "conversion"
	CategoryTrust      = "trust"
)

// Skin designs shared by most list and card types.
const (
	DesignStandard  = "standard"
	DesignGentle    = "gentle"
	DesignMasculine = "masculine"
	DesignStylish   = "stylish"
	DesignLuxury    = "luxury"
	DesignEarth     = "earth"
	DesignCyber     = "cyber"
)

// TypeInfo describes one section type.
type TypeInfo struct {
	Tag           string   `json:"tag"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	RequiresItems bool     `json:"requiresItems"`
	RequiresImage bool     `json:"requiresImage"`
	ItemsField    string   `json:"itemsField,omitempty"`
	Designs       []string `json:"designs,omitempty"`
	DefaultDesign string   `json:"defaultDesign,omitempty"`
	Container     bool     `json:"container,omitempty"`
}

var skins = []string{
	DesignStandard, DesignGentle, DesignMasculine, DesignStylish,
	DesignLuxury, DesignEarth, DesignCyber,
}

func withSkins(extra ...string) []string {
	return append(slices.Clone(extra), skins...)
}

var catalog = []TypeInfo{
	{Tag: TypeText, Name: "Text", Category: CategoryBasic},
	{Tag: TypeImage, Name: "Image", Category: CategoryMedia, RequiresImage: true,
		Designs: []string{"plain", "rounded", "shadow", "polaroid"}, DefaultDesign: "plain"},
	{Tag: TypeImageText, Name: "Image + Text", Category: CategoryMedia, RequiresImage: true, ItemsField: "buttons",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeHeading, Name: "Heading", Category: CategoryBasic,
		Designs: []string{"simple", "underline", "bar", "bubble", "ribbon", DesignLuxury, DesignCyber}, DefaultDesign: "simple"},
	{Tag: TypeVideo, Name: "Video", Category: CategoryMedia},
	{Tag: TypeButton, Name: "Button", Category: CategoryConversion},
	{Tag: TypeSocial, Name: "Social Embed", Category: CategoryMedia},
	{Tag: TypeAccordion, Name: "Accordion", Category: CategoryList, RequiresItems: true, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypePostCard, Name: "Post Cards", Category: CategoryList, RequiresItems: true, RequiresImage: true, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeColumns, Name: "Columns", Category: CategoryList, RequiresItems: true, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeLinks, Name: "Links", Category: CategoryList, RequiresItems: true, ItemsField: "links",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeBox, Name: "Box", Category: CategoryContainer, Container: true},
	{Tag: TypeFullWidth, Name: "Full Width", Category: CategoryContainer, Container: true},
	{Tag: TypeConversionPanel, Name: "Conversion Panel", Category: CategoryConversion, ItemsField: "buttons",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypePointList, Name: "Point List", Category: CategoryList, RequiresItems: true, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeProblemChecklist, Name: "Problem Checklist", Category: CategoryList, RequiresItems: true, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeSpeechBubble, Name: "Speech Bubble", Category: CategoryTrust,
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypePricing, Name: "Pricing", Category: CategoryConversion, RequiresItems: true, ItemsField: "plans",
		Designs: withSkins("modern", "simple"), DefaultDesign: DesignStandard},
	{Tag: TypeProcess, Name: "Process", Category: CategoryList, RequiresItems: true, ItemsField: "steps",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeStaff, Name: "Staff", Category: CategoryTrust, RequiresItems: true, RequiresImage: true, ItemsField: "members",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeFAQ, Name: "FAQ", Category: CategoryTrust, RequiresItems: true, ItemsField: "faqs",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeComparison, Name: "Comparison Table", Category: CategoryConversion, RequiresItems: true, ItemsField: "rows",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeAccess, Name: "Access", Category: CategoryBasic, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
	{Tag: TypeReview, Name: "Reviews", Category: CategoryTrust, RequiresItems: true, ItemsField: "items",
		Designs: skins, DefaultDesign: DesignStandard},
}

var byTag = func() map[string]TypeInfo {
	m := make(map[string]TypeInfo, len(catalog))
	for _, info := range catalog {
		m[info.Tag] = info
	}
	return m
}()

// IsValidType reports whether tag is a canonical section type.
func IsValidType(tag string) bool {
	_, ok := byTag[tag]
	return ok
}

// Lookup returns the metadata for a canonical tag or alias.
func Lookup(tag string) (TypeInfo, bool) {
	info, ok := byTag[ResolveAlias(tag)]
	if !ok {
		return TypeInfo{}, false
	}
	info.Designs = slices.Clone(info.Designs)
	return info, true
}

// Types returns the catalog in editor order.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(catalog))
	for i, info := range catalog {
		info.Designs = slices.Clone(info.Designs)
		out[i] = info
	}
	return out
}

// Tags returns the canonical tags in editor order.
func Tags() []string {
	tags := make([]string, len(catalog))
	for i, info := range catalog {
		tags[i] = info.Tag
	}
	return tags
}

// HasDesign reports whether design is one of the closed design values of tag.
func HasDesign(tag, design string) bool {
	info, ok := byTag[ResolveAlias(tag)]
	return ok && slices.Contains(info.Designs, design)
}

// ResolveAlias maps a legacy or loosely named tag to its canonical tag. Tags that
// are neither canonical nor aliased come back unchanged.
func ResolveAlias(tag string) string {
	if canonical, ok := aliases[tag]; ok {
		return canonical
	}
	return tag
}
