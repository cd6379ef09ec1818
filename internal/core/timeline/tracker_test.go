package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

func TestPreviousLocations(t *testing.T) {
	events := []domain.Event{
		{ID: "1", Type: domain.EventTransport, Description: "Italo to Rome", Location: "Roma Termini"},
		{ID: "2", Type: domain.EventVisit, Description: "Colosseum"},
		{ID: "3", Type: domain.EventTransport, Description: "Walk"},
		{ID: "4", Type: domain.EventMeal, Description: "Lunch", Location: "Trattoria Monti"},
		{ID: "5", Type: domain.EventOther, Description: "Free time"},
	}

	got := PreviousLocations(events)

	assert.Equal(t, []string{"", "Roma Termini", "Colosseum", "Colosseum", "Trattoria Monti"}, got)
}

func TestTracker_PlaceDescriptionBecomesPrevious(t *testing.T) {
	for _, typ := range []domain.EventType{domain.EventVisit, domain.EventMeal} {
		t.Run(string(typ), func(t *testing.T) {
			var tr Tracker
			tr.Observe(domain.Event{Type: typ, Description: "Pantheon"})
			assert.Equal(t, "Pantheon", tr.Previous())
		})
	}
}

func TestTracker_NonPlaceWithoutLocationKeepsValue(t *testing.T) {
	var tr Tracker
	tr.Observe(domain.Event{Type: domain.EventVisit, Description: "Pantheon"})
	tr.Observe(domain.Event{Type: domain.EventTransport, Description: "Bus 64"})
	tr.Observe(domain.Event{Type: "shopping", Description: "Via del Corso"})

	assert.Equal(t, "Pantheon", tr.Previous())
}

func TestTracker_BlankLocationFallsBackToDescription(t *testing.T) {
	var tr Tracker
	tr.Observe(domain.Event{Type: domain.EventMeal, Description: "Gelato", Location: "   "})

	assert.Equal(t, "Gelato", tr.Previous())
}

func TestTracker_EmptyPlaceDescriptionClears(t *testing.T) {
	var tr Tracker
	tr.Observe(domain.Event{Type: domain.EventVisit, Location: "Vatican Museums"})
	tr.Observe(domain.Event{Type: domain.EventVisit})

	assert.Empty(t, tr.Previous())
}
