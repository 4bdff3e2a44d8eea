package live

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attrs builds an attribute list from key/value pairs. Pairs with an empty
// value are dropped.
func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

// el builds an element node. Nil children are skipped.
func el(tag string, attr []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag)), Attr: attr}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// textEl builds tag around s, or returns nil when s is blank.
func textEl(tag, class, style, s string) *html.Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return el(tag, attrs("class", class, "style", style), text(s))
}

// flag adds valueless boolean attributes.
func flag(n *html.Node, keys ...string) *html.Node {
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k})
	}
	return n
}

// Render serializes a node tree.
func Render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderAll serializes sibling trees one after another.
func RenderAll(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
