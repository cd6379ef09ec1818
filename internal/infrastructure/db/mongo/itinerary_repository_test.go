package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
)

func TestListFilter_NoCity(t *testing.T) {
	got := listFilter(ports.ListItinerariesFilter{Page: 1, Limit: 20})
	if len(got) != 0 {
		t.Fatalf("expected empty filter, got %v", got)
	}
}

func TestListFilter_CityIsAnchoredAndQuoted(t *testing.T) {
	got := listFilter(ports.ListItinerariesFilter{City: "St. Moritz (GR)"})

	city, ok := got["city"].(bson.M)
	if !ok {
		t.Fatalf("expected city sub-filter, got %v", got)
	}
	if city["$regex"] != `^St\. Moritz \(GR\)$` {
		t.Errorf("unexpected regex: %v", city["$regex"])
	}
	if city["$options"] != "i" {
		t.Errorf("expected case-insensitive match, got %v", city["$options"])
	}
}
