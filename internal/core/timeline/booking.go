package timeline

import (
	"strings"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

// trainKeywords are matched against the lower-cased description. Lower-casing
// leaves the CJK terms untouched.
var trainKeywords = []string{"italo", "train", "火車", "高鐵"}

// NeedsTrainTicket reports whether ev is a transport leg that looks like a
// train ride and should offer a booking link.
func NeedsTrainTicket(ev domain.Event) bool {
	if ev.Type != domain.EventTransport {
		return false
	}
	desc := strings.ToLower(ev.Description)
	for _, kw := range trainKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
