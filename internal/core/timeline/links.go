package timeline

import (
	"net/url"
	"strings"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

const (
	DefaultMapsBaseURL     = "https://www.google.com/maps"
	DefaultBookingURL      = "https://www.italotreno.it/en"
	DefaultGuidePathPrefix = "/museum/"
)

// LinkMode tells whether a map link opens directions or a plain search.
type LinkMode string

const (
	ModeNavigate LinkMode = "navigate"
	ModeMap      LinkMode = "map"
)

// MapLink is the map button of a card.
type MapLink struct {
	URL   string   `json:"url"`
	Label string   `json:"label"`
	Mode  LinkMode `json:"mode"`
}

// Links holds the outbound endpoints cards point at.
type Links struct {
	MapsBaseURL     string
	BookingURL      string
	GuidePathPrefix string
}

// DefaultLinks returns the production link targets.
func DefaultLinks() Links {
	return Links{
		MapsBaseURL:     DefaultMapsBaseURL,
		BookingURL:      DefaultBookingURL,
		GuidePathPrefix: DefaultGuidePathPrefix,
	}
}

// withDefaults fills any empty field from DefaultLinks.
func (l Links) withDefaults() Links {
	d := DefaultLinks()
	if l.MapsBaseURL == "" {
		l.MapsBaseURL = d.MapsBaseURL
	}
	if l.BookingURL == "" {
		l.BookingURL = d.BookingURL
	}
	if l.GuidePathPrefix == "" {
		l.GuidePathPrefix = d.GuidePathPrefix
	}
	return l
}

// MapLink builds the map link for ev given the location known before it.
//
// Directions are only offered when both a previous place and the event's own
// location are known; otherwise the link searches for the location (or the
// description) within the city. Location text is passed through untouched.
func (l Links) MapLink(previous string, ev domain.Event, city string) MapLink {
	l = l.withDefaults()
	previous = strings.TrimSpace(previous)
	own := strings.TrimSpace(ev.Location)

	current := own
	if current == "" {
		current = ev.Description
	}

	if previous != "" && own != "" {
		q := url.Values{}
		q.Set("api", "1")
		q.Set("origin", previous)
		q.Set("destination", inCity(current, city))
		q.Set("travelmode", "transit")
		return MapLink{
			URL:   strings.TrimRight(l.MapsBaseURL, "/") + "/dir/?" + q.Encode(),
			Label: "Navigate",
			Mode:  ModeNavigate,
		}
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", inCity(current, city))
	return MapLink{
		URL:   strings.TrimRight(l.MapsBaseURL, "/") + "/search/?" + q.Encode(),
		Label: "Map",
		Mode:  ModeMap,
	}
}

// GuideURL returns the relative guide page for a details id, or "" if none.
func (l Links) GuideURL(detailsID string) string {
	detailsID = strings.TrimSpace(detailsID)
	if detailsID == "" {
		return ""
	}
	return l.withDefaults().GuidePathPrefix + url.PathEscape(detailsID)
}

func inCity(place, city string) string {
	return strings.TrimSpace(strings.TrimSpace(place) + " " + strings.TrimSpace(city))
}
