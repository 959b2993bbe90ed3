// Package youtube resolves a video identifier into the best URL a simple
// player can open, by querying the platform's internal player API under
// simulated client identities.
package youtube

// StreamResponse is the decoded answer of one player API call.
// A nil StreamingData is a valid answer: the identity got nothing playable.
type StreamResponse struct {
	StreamingData     *StreamingData     `json:"streamingData,omitempty"`
	PlayabilityStatus *PlayabilityStatus `json:"playabilityStatus,omitempty"`
}

// StreamingData lists the renditions offered for a video. Any field may be absent.
type StreamingData struct {
	// Formats are combined renditions, video and audio in one file.
	Formats []StreamFormat `json:"formats,omitempty"`
	// AdaptiveFormats are video-only or audio-only renditions.
	AdaptiveFormats []StreamFormat `json:"adaptiveFormats,omitempty"`
	// HLSManifestURL points to an adaptive bitrate playlist.
	HLSManifestURL *string `json:"hlsManifestUrl,omitempty"`
}

// StreamFormat is one rendition of the media.
type StreamFormat struct {
	URL      *string `json:"url,omitempty"`
	MimeType *string `json:"mimeType,omitempty"`
	// QualityLabel is only set on video tracks, e.g. "720p".
	QualityLabel *string `json:"qualityLabel,omitempty"`
	Width        *int    `json:"width,omitempty"`
}

// PlayabilityStatus explains why the platform did or did not return streams.
// Informational only.
type PlayabilityStatus struct {
	Status *string `json:"status,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

// HasStreamingData reports whether r carries any streaming data.
func (r *StreamResponse) HasStreamingData() bool {
	return r != nil && r.StreamingData != nil
}

// width returns the width of f, treating absence as zero.
func (f StreamFormat) width() int {
	if f.Width == nil {
		return 0
	}
	return *f.Width
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
