package handler

import (
	"github.com/tripdeck/itinerary-timeline/internal/core/timeline"
)

// --- Requests ---

type eventRequest struct {
	ID          string `json:"id"          validate:"max=64"`
	Time        string `json:"time"        validate:"max=32"`
	Type        string `json:"type"        validate:"max=32"`
	Description string `json:"description" validate:"max=2000"`
	Location    string `json:"location"    validate:"max=300"`
	DetailsID   string `json:"details_id"  validate:"max=64"`
}

type itineraryRequest struct {
	Title  string         `json:"title"  validate:"max=200"`
	City   string         `json:"city"   validate:"required,max=120"`
	Date   string         `json:"date"   validate:"max=32"`
	Events []eventRequest `json:"events" validate:"max=200,unique_event_ids,dive"`
}

// --- Responses ---

type itineraryLinks struct {
	Self     string `json:"self"`
	Timeline string `json:"timeline"`
	HTML     string `json:"html"`
}

type createItineraryResponse struct {
	ID         string         `json:"id"`
	City       string         `json:"city"`
	EventCount int            `json:"event_count"`
	CreatedAt  string         `json:"created_at"`
	Links      itineraryLinks `json:"_links"`
}

type itinerarySummaryResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	City       string         `json:"city"`
	Date       string         `json:"date,omitempty"`
	EventCount int            `json:"event_count"`
	CreatedAt  string         `json:"created_at"`
	Links      itineraryLinks `json:"_links"`
}

type listItinerariesResponse struct {
	Items      []itinerarySummaryResponse `json:"items"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"total_pages"`
}

type timelineResponse struct {
	ItineraryID string          `json:"itinerary_id,omitempty"`
	Title       string          `json:"title,omitempty"`
	City        string          `json:"city"`
	Date        string          `json:"date,omitempty"`
	Cards       []timeline.Card `json:"cards"`
}

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}
