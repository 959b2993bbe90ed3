package util

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	shortLink = regexp.MustCompile(`^/(?P<id>[\w-]+)`)
	pathLink  = regexp.MustCompile(`^/(?:embed|shorts|live|v)/(?P<id>[\w-]+)`)
)

// VideoID extracts the video identifier from a watch, share, embed or shorts
// link. Anything that is not such a link is returned trimmed but otherwise
// untouched: bare identifiers are passed through without validation.
func VideoID(input string) string {
	input = strings.TrimSpace(input)

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return input
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")

	switch host {
	case "youtu.be":
		if id := ReGroups(shortLink, u.Path)["id"]; id != "" {
			return id
		}
	case "youtube.com", "music.youtube.com", "youtube-nocookie.com":
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		if id := ReGroups(pathLink, u.Path)["id"]; id != "" {
			return id
		}
	}

	return input
}
