package domain

import (
	"errors"
	"time"
)

// EventType classifies an itinerary entry.
type EventType string

const (
	EventTransport EventType = "transport"
	EventMeal      EventType = "meal"
	EventVisit     EventType = "visit"
	EventOther     EventType = "other"
)

var ErrItineraryNotFound = errors.New("itinerary not found")
var ErrInvalidItinerary = errors.New("invalid itinerary")

// IsPlace reports whether events of this type happen at a place, so their
// description can stand in for a missing location.
func (t EventType) IsPlace() bool {
	return t == EventVisit || t == EventMeal
}

// Event is a single entry on an itinerary day.
type Event struct {
	ID          string    `json:"id" bson:"id" yaml:"id"`
	Time        string    `json:"time" bson:"time" yaml:"time"`
	Type        EventType `json:"type" bson:"type" yaml:"type"`
	Description string    `json:"description" bson:"description" yaml:"description"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty" yaml:"location,omitempty"`
	DetailsID   string    `json:"details_id,omitempty" bson:"details_id,omitempty" yaml:"detailsId,omitempty"`
}

// Itinerary is one city/day of a trip with its events in display order.
type Itinerary struct {
	ID        string    `json:"id" bson:"_id" yaml:"id"`
	Title     string    `json:"title" bson:"title" yaml:"title"`
	City      string    `json:"city" bson:"city" yaml:"city"`
	Date      string    `json:"date,omitempty" bson:"date,omitempty" yaml:"date,omitempty"`
	Events    []Event   `json:"events" bson:"events" yaml:"events"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" yaml:"-"`
}
