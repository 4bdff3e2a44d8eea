package page

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Image is a resolved image reference. A nil *Image means "no image".
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

// Present reports whether the image has a usable URL.
func (i *Image) Present() bool {
	return i != nil && strings.TrimSpace(i.URL) != ""
}

// Src returns the trimmed URL, or "" for a nil image.
func (i *Image) Src() string {
	if i == nil {
		return ""
	}
	return strings.TrimSpace(i.URL)
}

// UnmarshalJSON accepts a bare URL string or an object carrying url, src or href.
func (i *Image) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = Image{URL: s}
		return nil
	}
	var obj struct {
		URL  string `json:"url"`
		Src  string `json:"src"`
		Href string `json:"href"`
		Alt  string `json:"alt"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*i = Image{URL: firstNonBlank(obj.URL, obj.Src, obj.Href), Alt: obj.Alt}
	return nil
}

// ItemID identifies an entry in a section's item list. Hand-edited files may use
// numbers; they are kept as their decimal text.
type ItemID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = ItemID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ItemID(n.String())
	return nil
}

// Button is a call-to-action link rendered as a button.
type Button struct {
	ID        ItemID `json:"id,omitempty"`
	Text      string `json:"text,omitempty"`
	URL       string `json:"url,omitempty"`
	Color     string `json:"color,omitempty"`
	TextColor string `json:"textColor,omitempty"`
	Style     string `json:"style,omitempty"` // solid|outline
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
