package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/adserver/internal/domain"
)

type fakeStore struct {
	records []domain.CreativeRecord
}

func (f *fakeStore) ListByPublisher(ctx context.Context, publisherID string) ([]domain.CreativeRecord, error) {
	var out []domain.CreativeRecord
	for _, r := range f.records {
		if r.PublisherID == publisherID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*domain.CreativeRecord, error) {
	for _, r := range f.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func newTestResolver(t *testing.T, records ...domain.CreativeRecord) *Resolver {
	t.Helper()
	r, err := New(&fakeStore{records: records}, "https://ads.example.com")
	require.NoError(t, err)
	return r
}

func TestResolveFiltersRecordsWithoutTarget(t *testing.T) {
	r := newTestResolver(t,
		domain.CreativeRecord{ID: "a", PublisherID: "pub1", Kind: domain.KindNative,
			Native: &domain.NativeSettings{Headline: "Kept"}, Selector: "#slot"},
		domain.CreativeRecord{ID: "b", PublisherID: "pub1", Kind: domain.KindNative,
			Native: &domain.NativeSettings{Headline: "Dropped"}},
	)

	placements, err := r.Resolve(context.Background(), "pub1")
	require.NoError(t, err)
	require.Len(t, placements, 1)
	assert.Contains(t, placements[0].HTML, "Kept")
}

func TestResolveSelectorNormalization(t *testing.T) {
	tests := []struct {
		name string
		rec  domain.CreativeRecord
		want string
	}{
		{
			name: "bare id gets hash prefix",
			rec:  domain.CreativeRecord{Selector: "header"},
			want: "#header",
		},
		{
			name: "prefixed selector kept as-is",
			rec:  domain.CreativeRecord{Selector: "#header"},
			want: "#header",
		},
		{
			name: "legacy target id used when selector absent",
			rec:  domain.CreativeRecord{LegacyTargetID: "sidebar"},
			want: "#sidebar",
		},
		{
			name: "explicit selector wins over legacy id",
			rec:  domain.CreativeRecord{Selector: "main", LegacyTargetID: "sidebar"},
			want: "#main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rec.ID = "ad-1"
			tt.rec.PublisherID = "pub1"
			tt.rec.Kind = domain.KindNative
			tt.rec.Native = &domain.NativeSettings{}

			r := newTestResolver(t, tt.rec)
			placements, err := r.Resolve(context.Background(), "pub1")
			require.NoError(t, err)
			require.Len(t, placements, 1)
			assert.Equal(t, tt.want, placements[0].Selector)
		})
	}
}

func TestResolveNativeMarkup(t *testing.T) {
	r := newTestResolver(t, domain.CreativeRecord{
		ID: "ad-1", PublisherID: "pub1", Selector: "#header", Kind: domain.KindNative,
		Native: &domain.NativeSettings{
			ImageURL: "https://cdn.example.com/a.png",
			Headline: "Sale",
			Body:     "Everything must go",
			CTAText:  "Shop now",
			CTAURL:   "https://shop.example.com",
		},
	})

	placements, err := r.Resolve(context.Background(), "pub1")
	require.NoError(t, err)
	require.Len(t, placements, 1)

	p := placements[0]
	assert.Equal(t, domain.PlacementNative, p.Type)
	assert.Equal(t, 0, p.Height)
	assert.Contains(t, p.HTML, "Sale")
	assert.Contains(t, p.HTML, "Sponsored")
	assert.Contains(t, p.HTML, "Shop now")
	assert.Contains(t, p.HTML, "{CLICK_URL}")
	// reporting snippet rendered in with the creative's id
	assert.Contains(t, p.HTML, "adId=ad-1")
	assert.Contains(t, p.HTML, "https://ads.example.com/track")
}

func TestResolveNativeMarkupEscapesFields(t *testing.T) {
	r := newTestResolver(t, domain.CreativeRecord{
		ID: "ad-1", PublisherID: "pub1", Selector: "#header", Kind: domain.KindNative,
		Native: &domain.NativeSettings{
			Headline: `<script>alert("x")</script>`,
			Body:     `a & b`,
		},
	})

	placements, err := r.Resolve(context.Background(), "pub1")
	require.NoError(t, err)

	html := placements[0].HTML
	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "a &amp; b")
}

func TestResolveFrameDefaults(t *testing.T) {
	r := newTestResolver(t, domain.CreativeRecord{
		ID: "ad-2", PublisherID: "pub1", Selector: "#side", Kind: domain.KindFrame,
		Frame: &domain.FrameSettings{SourceURL: "https://ads.example.com/f.html"},
	})

	placements, err := r.Resolve(context.Background(), "pub1")
	require.NoError(t, err)
	require.Len(t, placements, 1)

	p := placements[0]
	assert.Equal(t, domain.PlacementIframe, p.Type)
	assert.Equal(t, 250, p.Height)
	assert.Contains(t, p.HTML, `width="100%"`)
	assert.Contains(t, p.HTML, `height="250"`)
	assert.Contains(t, p.HTML, `scrolling="no"`)
}

func TestResolveUnknownKindRendersAsFrame(t *testing.T) {
	r := newTestResolver(t, domain.CreativeRecord{
		ID: "ad-3", PublisherID: "pub1", Selector: "#slot", Kind: "carousel",
		Frame: &domain.FrameSettings{SourceURL: "https://ads.example.com/c.html", Height: 400},
	})

	placements, err := r.Resolve(context.Background(), "pub1")
	require.NoError(t, err)
	require.Len(t, placements, 1)
	assert.Equal(t, domain.PlacementIframe, placements[0].Type)
	assert.Equal(t, 400, placements[0].Height)
}

func TestResolveEmptyPublisher(t *testing.T) {
	r := newTestResolver(t)
	placements, err := r.Resolve(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, placements)
}

func TestResolveKeepsStoreOrder(t *testing.T) {
	r := newTestResolver(t,
		domain.CreativeRecord{ID: "first", PublisherID: "pub1", Selector: "#a",
			Kind: domain.KindNative, Native: &domain.NativeSettings{}},
		domain.CreativeRecord{ID: "second", PublisherID: "pub1", Selector: "#b",
			Kind: domain.KindNative, Native: &domain.NativeSettings{}},
	)

	placements, err := r.Resolve(context.Background(), "pub1")
	require.NoError(t, err)
	require.Len(t, placements, 2)
	assert.True(t, strings.Contains(placements[0].HTML, "adId=first"))
	assert.True(t, strings.Contains(placements[1].HTML, "adId=second"))
}
