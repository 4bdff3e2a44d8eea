package styles

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Visible strings both renderers draw for missing or implied content.
const (
	NoImageText        = "No image"
	NoVideoText        = "No video"
	ReadMoreText       = "Read more"
	DefaultButtonText  = "Learn more"
	DefaultPlanButton  = "Choose plan"
	DefaultFeaturedTag = "Recommended"
	QuestionMark       = "Q"
	AnswerMark         = "A"
	CheckMark          = "✓"
	ArrowMark          = "→"
)

// Rating clamps a review score to 1..5; zero means an unrated five.
func Rating(rating int) int {
	if rating <= 0 {
		return 5
	}
	return min(rating, 5)
}

// Stars draws a rating as filled and empty stars.
func Stars(rating int) string {
	rating = Rating(rating)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// Comparison cell kinds.
const (
	MarkYes     = "yes"
	MarkNo      = "no"
	MarkPartial = "partial"
	MarkText    = "text"
)

// ComparisonMark maps a comparison-table value to its displayed text and kind.
func ComparisonMark(v string) (string, string) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "true", "y", "o", "○", "◯", "✓", "✔", "available":
		return CheckMark, MarkYes
	case "no", "false", "n", "x", "×", "✗", "-", "—", "none":
		return "—", MarkNo
	case "partial", "some", "△":
		return "△", MarkPartial
	default:
		return v, MarkText
	}
}

// MarkCSS colours a comparison cell by kind.
func MarkCSS(kind, accent string) string {
	switch kind {
	case MarkYes:
		return "color:" + Color(accent, "#2563eb") + ";font-weight:700;font-size:20px"
	case MarkNo:
		return "color:#9ca3af"
	case MarkPartial:
		return "color:#f59e0b;font-weight:700"
	default:
		return ""
	}
}

// StepLabel numbers process steps from 01.
func StepLabel(i int) string {
	return fmt.Sprintf("%02d", i+1)
}

// Initial is the letter drawn in place of a missing avatar.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
