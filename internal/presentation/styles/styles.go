// Package styles holds the presentation decisions shared by the live renderer
// and the static exporter. Each function is pure and returns a descriptor
// (class names, inline CSS, attribute values) that both renderers emit
// verbatim, so the two outputs agree on every visual rule.
package styles

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/AtRiskMedia/tractpage-go/internal/domain/entities/page"
)

// Vertical padding in px per token.
var paddingPx = map[string]int{
	page.PaddingNone: 0,
	page.PaddingXS:   16,
	page.PaddingSM:   32,
	page.PaddingMD:   64,
	page.PaddingLG:   96,
	page.PaddingXL:   128,
}

// DefaultPadding is used for empty or unknown tokens.
const DefaultPadding = page.PaddingMD

// Padding returns the px value of a padding token.
func Padding(token string) int {
	if px, ok := paddingPx[token]; ok {
		return px
	}
	return paddingPx[DefaultPadding]
}

// PaddingCSS returns the vertical padding declarations of a section.
func PaddingCSS(top, bottom string) string {
	return fmt.Sprintf("padding-top:%dpx;padding-bottom:%dpx", Padding(top), Padding(bottom))
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|(rgb|rgba|hsl|hsla)\([0-9.,%\s]+\)|[a-zA-Z]{3,20})$`)

// Color returns c when it is a plain CSS colour, otherwise fallback.
func Color(c, fallback string) string {
	c = strings.TrimSpace(c)
	if c != "" && colorPattern.MatchString(c) {
		return c
	}
	return fallback
}

// SafeURL returns u when its scheme is http, https or mailto, or when it is
// relative or a fragment. Anything else becomes "#".
func SafeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto":
		return u
	default:
		return "#"
	}
}

// Href is SafeURL with "#" for empty links.
func Href(u string) string {
	if s := SafeURL(u); s != "" {
		return s
	}
	return "#"
}

var cssURLEscaper = strings.NewReplacer(`'`, "%27", `"`, "%22", "(", "%28", ")", "%29", `\`, "%5C", "\n", "", "\r", "")

// CSSURL prepares an image url for use inside url('...').
func CSSURL(u string) string {
	u = SafeURL(u)
	if u == "" || u == "#" {
		return ""
	}
	return cssURLEscaper.Replace(u)
}

// Num formats a CSS number with at most two decimals.
func Num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

// Join concatenates declarations, skipping empty ones.
func Join(decls ...string) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		d = strings.Trim(d, "; ")
		if d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, ";")
}

// Classes concatenates class names, skipping empty ones.
func Classes(names ...string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

// Or returns the first non-blank value.
func Or(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// OrInt returns v, or def when v is not positive.
func OrInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
