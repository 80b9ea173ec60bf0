package domain

import "time"

// CreativeKind selects the rendering path for a creative.
type CreativeKind string

const (
	// KindNative renders an inline-styled block that merges into the host
	// page's layout.
	KindNative CreativeKind = "native"
	// KindFrame renders an isolated iframe document. Unknown kinds fall back
	// to this path.
	KindFrame CreativeKind = "frame"
)

// NativeSettings holds the fields of a native-display creative.
type NativeSettings struct {
	ImageURL string `json:"image_url,omitempty"`
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body,omitempty"`
	CTAText  string `json:"cta_text,omitempty"`
	CTAURL   string `json:"cta_url,omitempty"`
}

// FrameSettings holds the fields of a frame creative.
type FrameSettings struct {
	SourceURL string `json:"source_url,omitempty"`
	Width     string `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// CreativeRecord is the durable, authored definition of a placement. It is
// owned by the authoring system and read-only from the delivery core; only
// its counters move after creation.
//
// Exactly one of Native/Frame is populated, selected by Kind.
type CreativeRecord struct {
	ID             string          `json:"id"`
	PublisherID    string          `json:"publisher_id"`
	Campaign       string          `json:"campaign,omitempty"`
	Selector       string          `json:"selector,omitempty"`
	LegacyTargetID string          `json:"legacy_target_id,omitempty"`
	Kind           CreativeKind    `json:"kind"`
	Native         *NativeSettings `json:"native,omitempty"`
	Frame          *FrameSettings  `json:"frame,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// HasTarget reports whether the record carries any usable DOM addressing.
// Records without one are excluded from delivery, not errored.
func (c CreativeRecord) HasTarget() bool {
	return c.Selector != "" || c.LegacyTargetID != ""
}

// TargetSelector returns the record's CSS selector, normalized to always
// begin with "#". The explicit selector wins over the legacy target id.
func (c CreativeRecord) TargetSelector() string {
	s := c.Selector
	if s == "" {
		s = c.LegacyTargetID
	}
	if s == "" {
		return ""
	}
	if s[0] != '#' {
		return "#" + s
	}
	return s
}

// PlacementType is the wire-level injection strategy surfaced to the host
// tag. It is deliberately not hidden: the tag chooses between merging into
// the host page and sandboxing based on it.
type PlacementType string

const (
	PlacementNative PlacementType = "native"
	PlacementIframe PlacementType = "iframe"
)

// Placement is one renderable creative bound to a DOM insertion point,
// as returned to the host tag.
type Placement struct {
	Selector string        `json:"selector"`
	HTML     string        `json:"html"`
	Type     PlacementType `json:"type"`
	Height   int           `json:"height,omitempty"`
}
