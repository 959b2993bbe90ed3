package youtube

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Kind tells where a selected URL came from.
type Kind string

const (
	// KindManifest is an adaptive bitrate playlist.
	KindManifest Kind = "hls"
	// KindCombined is a direct file with both video and audio.
	KindCombined Kind = "combined"
)

// Selection is the stream picked for playback.
type Selection struct {
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
	// Format is the chosen combined rendition. Nil for manifests.
	Format *StreamFormat `json:"format,omitempty"`
}

// Quality returns the quality label of the selection, if known.
func (s Selection) Quality() string {
	if s.Kind == KindManifest {
		return "adaptive"
	}
	if s.Format == nil {
		return ""
	}
	return deref(s.Format.QualityLabel)
}

// Select picks the stream a player without custom headers can open.
//
// The HLS manifest wins whenever present. Otherwise the widest combined
// format with a URL is chosen; among equal widths the first one wins.
// Adaptive formats are never chosen: they need headers such players can't send.
func Select(resp *StreamResponse) mo.Option[Selection] {
	if !resp.HasStreamingData() {
		return mo.None[Selection]()
	}

	data := resp.StreamingData
	if data.HLSManifestURL != nil {
		return mo.Some(Selection{URL: *data.HLSManifestURL, Kind: KindManifest})
	}

	playable := lo.Filter(data.Formats, func(f StreamFormat, _ int) bool {
		return f.URL != nil
	})
	if len(playable) == 0 {
		return mo.None[Selection]()
	}

	best := lo.MaxBy(playable, func(a, b StreamFormat) bool {
		return a.width() > b.width()
	})

	return mo.Some(Selection{URL: *best.URL, Kind: KindCombined, Format: &best})
}

// BestURL returns the URL Select would pick.
func BestURL(resp *StreamResponse) mo.Option[string] {
	selection, ok := Select(resp).Get()
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(selection.URL)
}
