package styles

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Embed kinds.
const (
	EmbedNone    = "none"
	EmbedYouTube = "youtube"
	EmbedVimeo   = "vimeo"
	EmbedFile    = "file"
	EmbedIframe  = "iframe"
	EmbedLink    = "link"
	EmbedImage   = "image"
)

// Embed is a resolved media embed.
type Embed struct {
	Kind   string
	Src    string
	Height int
	Label  string
}

var youTubeID = regexp.MustCompile(`^[A-Za-z0-9_-]{6,20}$`)

// YouTubeID extracts the video id from the usual YouTube url forms.
func YouTubeID(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	host = strings.TrimPrefix(host, "m.")
	var id string
	switch host {
	case "youtu.be":
		id = strings.Trim(u.Path, "/")
	case "youtube.com", "youtube-nocookie.com":
		if v := u.Query().Get("v"); v != "" {
			id = v
		} else {
			parts := strings.Split(strings.Trim(u.Path, "/"), "/")
			if len(parts) == 2 && (parts[0] == "embed" || parts[0] == "shorts" || parts[0] == "live" || parts[0] == "v") {
				id = parts[1]
			}
		}
	}
	if !youTubeID.MatchString(id) {
		return ""
	}
	return id
}

var vimeoID = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)

// VideoEmbed resolves a video url to a YouTube or Vimeo player or a file.
func VideoEmbed(raw string, autoplay bool) Embed {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Embed{Kind: EmbedNone}
	}
	if id := YouTubeID(raw); id != "" {
		src := "https://www.youtube.com/embed/" + id
		if autoplay {
			src += "?autoplay=1&mute=1&loop=1&playlist=" + id
		}
		return Embed{Kind: EmbedYouTube, Src: src}
	}
	if m := vimeoID.FindStringSubmatch(raw); m != nil {
		src := "https://player.vimeo.com/video/" + m[1]
		if autoplay {
			src += "?autoplay=1&muted=1&loop=1"
		}
		return Embed{Kind: EmbedVimeo, Src: src}
	}
	if isVideoFile(raw) {
		if src := SafeURL(raw); src != "#" {
			return Embed{Kind: EmbedFile, Src: src}
		}
	}
	return Embed{Kind: EmbedNone}
}

func isVideoFile(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".mp4", ".webm", ".ogg", ".mov", ".m4v":
		return true
	}
	return false
}

// Social platforms.
const (
	PlatformYouTube   = "youtube"
	PlatformX         = "x"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformFacebook  = "facebook"
)

var platformNames = map[string]string{
	PlatformYouTube:   "YouTube",
	PlatformX:         "X",
	PlatformInstagram: "Instagram",
	PlatformTikTok:    "TikTok",
	PlatformFacebook:  "Facebook",
}

// Platform resolves the platform of a social url, trusting an explicit value.
func Platform(platform, raw string) string {
	if _, ok := platformNames[platform]; ok {
		return platform
	}
	if platform == "twitter" {
		return PlatformX
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	switch {
	case strings.HasSuffix(host, "youtube.com"), host == "youtu.be":
		return PlatformYouTube
	case host == "x.com", host == "twitter.com":
		return PlatformX
	case strings.HasSuffix(host, "instagram.com"):
		return PlatformInstagram
	case strings.HasSuffix(host, "tiktok.com"):
		return PlatformTikTok
	case strings.HasSuffix(host, "facebook.com"), host == "fb.watch":
		return PlatformFacebook
	}
	return ""
}

var (
	instagramPost = regexp.MustCompile(`instagram\.com/(p|reel)/([A-Za-z0-9_-]+)`)
	tiktokVideo   = regexp.MustCompile(`tiktok\.com/@[^/]+/video/(\d+)`)
)

// SocialEmbed resolves a social post to an iframe player, or to a link card
// when the platform offers no script-free embed.
func SocialEmbed(platform, raw string) Embed {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Embed{Kind: EmbedNone}
	}
	p := Platform(platform, raw)
	switch p {
	case PlatformYouTube:
		if v := VideoEmbed(raw, false); v.Kind == EmbedYouTube {
			return Embed{Kind: EmbedIframe, Src: v.Src, Height: 315}
		}
	case PlatformInstagram:
		if m := instagramPost.FindStringSubmatch(raw); m != nil {
			return Embed{Kind: EmbedIframe, Src: "https://www.instagram.com/" + m[1] + "/" + m[2] + "/embed", Height: 540}
		}
	case PlatformTikTok:
		if m := tiktokVideo.FindStringSubmatch(raw); m != nil {
			return Embed{Kind: EmbedIframe, Src: "https://www.tiktok.com/embed/v2/" + m[1], Height: 740}
		}
	case PlatformFacebook:
		return Embed{Kind: EmbedIframe, Src: "https://www.facebook.com/plugins/post.php?href=" + url.QueryEscape(raw), Height: 500}
	}
	label := "Open link"
	if name, ok := platformNames[p]; ok {
		label = "View on " + name
	}
	return Embed{Kind: EmbedLink, Src: Href(raw), Label: label}
}

// MapEmbed resolves the map iframe of an access section. An explicit embed
// url wins; otherwise the query or address is searched.
func MapEmbed(mapURL, query, address string) string {
	if strings.Contains(mapURL, "/maps/embed") || strings.Contains(mapURL, "output=embed") {
		if src := SafeURL(mapURL); src != "#" {
			return src
		}
	}
	q := strings.TrimSpace(Or(query, address))
	if q == "" {
		return ""
	}
	return "https://maps.google.com/maps?q=" + url.QueryEscape(q) + "&output=embed"
}

// AspectVideo is the 16:9 frame around embedded players.
const AspectVideo = "position:relative;width:100%;padding-top:56.25%;overflow:hidden;border-radius:12px;background:#000000"

// AspectFill fills an AspectVideo frame.
const AspectFill = "position:absolute;inset:0;width:100%;height:100%;border:0"
