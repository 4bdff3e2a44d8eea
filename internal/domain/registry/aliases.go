package registry

import "maps"

// aliases maps deprecated or generator-produced names to canonical tags.
var aliases = map[string]string{
	"team":           TypeStaff,
	"members":        TypeStaff,
	"cta":            TypeConversionPanel,
	"call_to_action": TypeConversionPanel,
	"testimonials":   TypeReview,
	"testimonial":    TypeReview,
	"reviews":        TypeReview,
	"voice":          TypeReview,
	"steps":          TypeProcess,
	"flow":           TypeProcess,
	"timeline":       TypeProcess,
	"plans":          TypePricing,
	"price":          TypePricing,
	"qa":             TypeFAQ,
	"questions":      TypeFAQ,
	"features":       TypePointList,
	"benefits":       TypePointList,
	"points":         TypePointList,
	"problems":       TypeProblemChecklist,
	"checklist":      TypeProblemChecklist,
	"map":            TypeAccess,
	"location":       TypeAccess,
	"gallery":        TypeColumns,
	"grid":           TypeColumns,
	"cards":          TypeColumns,
	"blog":           TypePostCard,
	"posts":          TypePostCard,
	"news":           TypePostCard,
	"table":          TypeComparison,
	"compare":        TypeComparison,
	"youtube":        TypeVideo,
	"movie":          TypeVideo,
	"sns":            TypeSocial,
	"embed":          TypeSocial,
	"title":          TypeHeading,
	"paragraph":      TypeText,
	"richtext":       TypeText,
	"hero_image":     TypeImage,
	"picture":        TypeImage,
	"split":          TypeImageText,
	"media_text":     TypeImageText,
	"container":      TypeBox,
	"card":           TypeBox,
	"fullwidth":      TypeFullWidth,
	"band":           TypeFullWidth,
	"link_list":      TypeLinks,
	"linklist":       TypeLinks,
	"bubble":         TypeSpeechBubble,
	"dialogue":       TypeSpeechBubble,
	"collapse":       TypeAccordion,
	"toggle":         TypeAccordion,
}

// Aliases returns a copy of the alias table, the contract handed to the
// generation pipeline so it can self-correct type names.
func Aliases() map[string]string {
	return maps.Clone(aliases)
}
