package ports

import (
	"context"
	"io"

	"github.com/tripdeck/itinerary-timeline/internal/core/timeline"
)

// TimelineView is everything needed to draw one itinerary day.
type TimelineView struct {
	ItineraryID string
	Title       string
	City        string
	Date        string
	Cards       []timeline.Card
}

// TimelineRenderer turns a view into markup.
type TimelineRenderer interface {
	Render(w io.Writer, view TimelineView) error
}

// RenderCache stores rendered markup by key.
type RenderCache interface {
	// Get returns the cached markup and whether it was found.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, markup string) error
}
