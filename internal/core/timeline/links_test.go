package timeline

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

func TestMapLink_NavigateWhenPreviousAndLocationKnown(t *testing.T) {
	ev := domain.Event{Type: domain.EventVisit, Description: "See the arena", Location: "Colosseum"}

	link := DefaultLinks().MapLink("Roma Termini", ev, "Rome")

	assert.Equal(t, ModeNavigate, link.Mode)
	assert.Equal(t, "Navigate", link.Label)
	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&destination=Colosseum+Rome&origin=Roma+Termini&travelmode=transit",
		link.URL)
}

func TestMapLink_SearchWithoutPrevious(t *testing.T) {
	ev := domain.Event{Type: domain.EventVisit, Location: "Colosseum"}

	link := DefaultLinks().MapLink("", ev, "Rome")

	assert.Equal(t, ModeMap, link.Mode)
	assert.Equal(t, "Map", link.Label)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Colosseum+Rome", link.URL)
}

func TestMapLink_SearchUsesDescriptionWithoutOwnLocation(t *testing.T) {
	ev := domain.Event{Type: domain.EventMeal, Description: "Fish & Chips"}

	link := DefaultLinks().MapLink("Roma Termini", ev, "Rome")

	assert.Equal(t, ModeMap, link.Mode)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Fish+%26+Chips+Rome", link.URL)
}

func TestMapLink_EscapesNonLatinText(t *testing.T) {
	ev := domain.Event{Type: domain.EventTransport, Description: "搭高鐵", Location: "台北車站"}

	link := DefaultLinks().MapLink("台中站", ev, "台北")

	u, err := url.Parse(link.URL)
	require.NoError(t, err)
	assert.Equal(t, "/maps/dir/", u.Path)
	assert.Equal(t, "台中站", u.Query().Get("origin"))
	assert.Equal(t, "台北車站 台北", u.Query().Get("destination"))
	assert.Equal(t, "transit", u.Query().Get("travelmode"))
}

func TestMapLink_EmptyCity(t *testing.T) {
	link := DefaultLinks().MapLink("", domain.Event{Location: "Louvre"}, "")

	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Louvre", link.URL)
}

func TestMapLink_CustomBase(t *testing.T) {
	l := Links{MapsBaseURL: "https://maps.example.test/"}

	link := l.MapLink("", domain.Event{Location: "Louvre"}, "Paris")

	assert.Equal(t, "https://maps.example.test/search/?api=1&query=Louvre+Paris", link.URL)
}

func TestGuideURL(t *testing.T) {
	l := DefaultLinks()

	assert.Equal(t, "/museum/vatican-museums", l.GuideURL("vatican-museums"))
	assert.Empty(t, l.GuideURL(""))
	assert.Empty(t, l.GuideURL("  "))
}
