package source

import (
	"mime"
	"strings"

	"github.com/vidsel/vidsel/youtube"
)

// Video is a stream ready to hand to a player.
type Video struct {
	// ID is the identifier the video was resolved from.
	ID string `json:"id"`
	// URL opens without extra headers.
	URL string `json:"url"`
	// Kind is either "hls" or "combined".
	Kind youtube.Kind `json:"kind"`
	// Quality label (e.g. "720p"), or "adaptive" for manifests.
	Quality string `json:"quality,omitempty"`
	// File extension (e.g. "mp4", "m3u8").
	Extension string `json:"extension,omitempty"`
	// MimeType of the combined rendition, when known.
	MimeType string `json:"mimeType,omitempty"`
}

// NewVideo builds a Video out of a selection.
func NewVideo(id string, selection youtube.Selection) *Video {
	v := &Video{
		ID:      id,
		URL:     selection.URL,
		Kind:    selection.Kind,
		Quality: selection.Quality(),
	}

	switch {
	case selection.Kind == youtube.KindManifest:
		v.Extension = "m3u8"
	case selection.Format != nil && selection.Format.MimeType != nil:
		v.MimeType = *selection.Format.MimeType
		v.Extension = extension(v.MimeType)
	}

	return v
}

// String returns the quality or URL for display.
func (v *Video) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}

// extension maps "video/mp4; codecs=..." to "mp4".
func extension(mimeType string) string {
	media, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return ""
	}

	_, sub, ok := strings.Cut(media, "/")
	if !ok {
		return ""
	}
	return strings.TrimPrefix(sub, "x-")
}
