package handler

import (
	"time"

	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
)

// --- Request → Service input ---

func toItineraryInput(req itineraryRequest) ports.ItineraryInput {
	events := make([]ports.EventInput, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, ports.EventInput{
			ID:          e.ID,
			Time:        e.Time,
			Type:        e.Type,
			Description: e.Description,
			Location:    e.Location,
			DetailsID:   e.DetailsID,
		})
	}
	return ports.ItineraryInput{
		Title:  req.Title,
		City:   req.City,
		Date:   req.Date,
		Events: events,
	}
}

// --- Service result → HTTP response ---

func linksFor(id string) itineraryLinks {
	self := "/v1/itineraries/" + id
	return itineraryLinks{
		Self:     self,
		Timeline: self + "/timeline",
		HTML:     self + "/timeline.html",
	}
}

func toCreateResponse(r *ports.ItineraryResult) createItineraryResponse {
	return createItineraryResponse{
		ID:         r.ID,
		City:       r.City,
		EventCount: r.EventCount,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		Links:      linksFor(r.ID),
	}
}

func toListResponse(r *ports.ListItinerariesResult) listItinerariesResponse {
	items := make([]itinerarySummaryResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, itinerarySummaryResponse{
			ID:         it.ID,
			Title:      it.Title,
			City:       it.City,
			Date:       it.Date,
			EventCount: it.EventCount,
			CreatedAt:  it.CreatedAt.UTC().Format(time.RFC3339),
			Links:      linksFor(it.ID),
		})
	}
	return listItinerariesResponse{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}

func toTimelineResponse(v *ports.TimelineView) timelineResponse {
	return timelineResponse{
		ItineraryID: v.ItineraryID,
		Title:       v.Title,
		City:        v.City,
		Date:        v.Date,
		Cards:       v.Cards,
	}
}
