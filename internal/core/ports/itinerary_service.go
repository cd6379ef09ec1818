package ports

import (
	"context"
	"time"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

// EventInput holds one itinerary entry as supplied by a caller.
type EventInput struct {
	ID          string
	Time        string
	Type        string
	Description string
	Location    string
	DetailsID   string
}

// ItineraryInput carries all data needed to create or preview an itinerary.
type ItineraryInput struct {
	Title  string
	City   string
	Date   string
	Events []EventInput
}

// ItineraryResult is returned by the service after creating an itinerary.
type ItineraryResult struct {
	ID         string
	City       string
	EventCount int
	CreatedAt  time.Time
}

// ListItinerariesInput carries all parameters for the list endpoint.
type ListItinerariesInput struct {
	City  string
	Page  int
	Limit int
}

// ItinerarySummary is the lightweight view used in list responses (no events).
type ItinerarySummary struct {
	ID         string
	Title      string
	City       string
	Date       string
	EventCount int
	CreatedAt  time.Time
}

// ListItinerariesResult is returned by ListItineraries.
type ListItinerariesResult struct {
	Items      []ItinerarySummary
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ItineraryService defines use-case operations for itineraries and their timelines.
type ItineraryService interface {
	CreateItinerary(ctx context.Context, input ItineraryInput) (*ItineraryResult, error)
	GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error)
	ListItineraries(ctx context.Context, input ListItinerariesInput) (*ListItinerariesResult, error)

	// GetTimeline projects a stored itinerary into cards.
	GetTimeline(ctx context.Context, id string) (*TimelineView, error)
	// RenderTimeline returns the markup for a stored itinerary, cached when possible.
	RenderTimeline(ctx context.Context, id string) (string, error)

	// PreviewTimeline projects an itinerary without persisting it.
	PreviewTimeline(ctx context.Context, input ItineraryInput) (*TimelineView, error)
	RenderPreview(ctx context.Context, input ItineraryInput) (string, error)
}
