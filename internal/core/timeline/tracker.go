package timeline

import (
	"strings"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

// Tracker remembers the most recent concrete place seen while walking the
// events of one itinerary. The zero value is ready to use.
type Tracker struct {
	last string
}

// Previous returns the last known location, or "" when none is known yet.
func (t *Tracker) Previous() string {
	return t.last
}

// Observe folds ev into the tracker. An explicit location wins; visits and
// meals fall back to their description; other events leave it unchanged.
func (t *Tracker) Observe(ev domain.Event) {
	if loc := strings.TrimSpace(ev.Location); loc != "" {
		t.last = loc
		return
	}
	if ev.Type.IsPlace() {
		t.last = strings.TrimSpace(ev.Description)
	}
}

// PreviousLocations returns, for every event, the location known before it.
func PreviousLocations(events []domain.Event) []string {
	var tr Tracker
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = tr.Previous()
		tr.Observe(ev)
	}
	return out
}
