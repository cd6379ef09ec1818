package ports

import (
	"context"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

// ListItinerariesFilter carries the query parameters for listing itineraries.
type ListItinerariesFilter struct {
	City  string // optional: exact, case-insensitive city match
	Page  int    // 1-based
	Limit int    // max rows per page (capped at 100 by service)
}

// ItineraryRepository defines persistence operations for itineraries.
type ItineraryRepository interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	// Upsert replaces the itinerary with the same ID, inserting it if absent.
	Upsert(ctx context.Context, it *domain.Itinerary) error
	FindByID(ctx context.Context, id string) (*domain.Itinerary, error)
	// List returns a page of itineraries matching filter and the total count.
	List(ctx context.Context, filter ListItinerariesFilter) ([]*domain.Itinerary, int64, error)
}
