package timeline

import (
	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

// Icon names a glyph from the client-side icon set.
type Icon string

const (
	IconTrain    Icon = "train"
	IconUtensils Icon = "utensils"
	IconCamera   Icon = "camera"
	IconInfo     Icon = "info"
)

// IconFor picks the card icon for an event type.
func IconFor(t domain.EventType) Icon {
	switch t {
	case domain.EventTransport:
		return IconTrain
	case domain.EventMeal:
		return IconUtensils
	case domain.EventVisit:
		return IconCamera
	default:
		return IconInfo
	}
}

// Link is an optional call-to-action on a card.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// Card is the display model of one event.
type Card struct {
	ID               string           `json:"id"`
	Time             string           `json:"time"`
	Type             domain.EventType `json:"type"`
	Icon             Icon             `json:"icon"`
	Description      string           `json:"description"`
	PreviousLocation string           `json:"previous_location,omitempty"`
	Map              MapLink          `json:"map"`
	Booking          *Link            `json:"booking,omitempty"`
	Guide            *Link            `json:"guide,omitempty"`
}

// Project turns the events of one city/day into cards, in order.
func (l Links) Project(city string, events []domain.Event) []Card {
	l = l.withDefaults()

	previous := PreviousLocations(events)
	cards := make([]Card, 0, len(events))
	for i, ev := range events {
		cards = append(cards, l.card(ev, previous[i], city))
	}
	return cards
}

func (l Links) card(ev domain.Event, previous, city string) Card {
	c := Card{
		ID:               ev.ID,
		Time:             ev.Time,
		Type:             ev.Type,
		Icon:             IconFor(ev.Type),
		Description:      ev.Description,
		PreviousLocation: previous,
		Map:              l.MapLink(previous, ev, city),
	}
	if NeedsTrainTicket(ev) {
		c.Booking = &Link{URL: l.BookingURL, Label: "Book Ticket"}
	}
	if u := l.GuideURL(ev.DetailsID); u != "" {
		c.Guide = &Link{URL: u, Label: "View Guide & History →"}
	}
	return c
}
