// Package resolver turns a publisher identity into an ordered list of
// renderable placements: normalized target selectors plus fully-formed
// markup the host tag can inject as-is.
package resolver

import (
	"context"
	"embed"
	"fmt"

	"github.com/osteele/liquid"

	"github.com/ignite/adserver/internal/creative"
	"github.com/ignite/adserver/internal/domain"
)

//go:embed templates/*.liquid
var templateFS embed.FS

const (
	defaultFrameWidth  = "100%"
	defaultFrameHeight = 250
)

// Resolver resolves publishers to placements. It has no side effects and is
// safe to call repeatedly; output order is whatever the record store
// returns.
type Resolver struct {
	records creative.Store

	// trackBase is rendered into every creative's reporting snippet so
	// beacons from injected markup reach the tracking endpoint.
	trackBase string

	native  *liquid.Template
	frame   *liquid.Template
	snippet *liquid.Template
}

// New creates a Resolver. trackBase is the externally reachable base URL of
// the tracking endpoint, without a trailing slash.
func New(records creative.Store, trackBase string) (*Resolver, error) {
	engine := liquid.NewEngine()

	parse := func(name string) (*liquid.Template, error) {
		src, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", name, err)
		}
		tpl, err := engine.ParseString(string(src))
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		return tpl, nil
	}

	r := &Resolver{records: records, trackBase: trackBase}
	var err error
	if r.native, err = parse("native.html.liquid"); err != nil {
		return nil, err
	}
	if r.frame, err = parse("frame.html.liquid"); err != nil {
		return nil, err
	}
	if r.snippet, err = parse("snippet.html.liquid"); err != nil {
		return nil, err
	}
	return r, nil
}

// Resolve produces the publisher's deliverable placements. Records without
// any usable selector are excluded, not errored. publisherID must be
// non-empty; callers reject blank ids before invoking.
func (r *Resolver) Resolve(ctx context.Context, publisherID string) ([]domain.Placement, error) {
	records, err := r.records.ListByPublisher(ctx, publisherID)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", publisherID, err)
	}

	placements := make([]domain.Placement, 0, len(records))
	for _, rec := range records {
		if !rec.HasTarget() {
			continue
		}
		p, err := r.render(rec)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", publisherID, err)
		}
		placements = append(placements, p)
	}
	return placements, nil
}

// render dispatches on creative kind and assembles markup plus the
// reporting snippet. All creative fields are escaped inside the templates
// before interpolation.
func (r *Resolver) render(rec domain.CreativeRecord) (domain.Placement, error) {
	p := domain.Placement{Selector: rec.TargetSelector()}

	switch rec.Kind {
	case domain.KindNative:
		ns := rec.Native
		if ns == nil {
			ns = &domain.NativeSettings{}
		}
		html, err := r.native.RenderString(map[string]interface{}{
			"image_url": ns.ImageURL,
			"headline":  ns.Headline,
			"body":      ns.Body,
			"cta_text":  ns.CTAText,
			"cta_url":   ns.CTAURL,
		})
		if err != nil {
			return p, fmt.Errorf("creative %s: render native: %w", rec.ID, err)
		}
		p.Type = domain.PlacementNative
		p.HTML = html
	default:
		fs := rec.Frame
		if fs == nil {
			fs = &domain.FrameSettings{}
		}
		width := fs.Width
		if width == "" {
			width = defaultFrameWidth
		}
		height := fs.Height
		if height == 0 {
			height = defaultFrameHeight
		}
		html, err := r.frame.RenderString(map[string]interface{}{
			"source_url": fs.SourceURL,
			"width":      width,
			"height":     height,
		})
		if err != nil {
			return p, fmt.Errorf("creative %s: render frame: %w", rec.ID, err)
		}
		p.Type = domain.PlacementIframe
		p.HTML = html
		p.Height = height
	}

	snippet, err := r.snippet.RenderString(map[string]interface{}{
		"ad_id":      rec.ID,
		"track_base": r.trackBase,
	})
	if err != nil {
		return p, fmt.Errorf("creative %s: render snippet: %w", rec.ID, err)
	}
	p.HTML += snippet

	return p, nil
}
