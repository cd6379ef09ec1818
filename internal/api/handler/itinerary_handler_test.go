package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
	"github.com/tripdeck/itinerary-timeline/internal/core/timeline"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubItineraryService struct {
	createFn   func(ctx context.Context, in ports.ItineraryInput) (*ports.ItineraryResult, error)
	getFn      func(ctx context.Context, id string) (*domain.Itinerary, error)
	listFn     func(ctx context.Context, in ports.ListItinerariesInput) (*ports.ListItinerariesResult, error)
	timelineFn func(ctx context.Context, id string) (*ports.TimelineView, error)
	renderFn   func(ctx context.Context, id string) (string, error)
}

func (s *stubItineraryService) CreateItinerary(ctx context.Context, in ports.ItineraryInput) (*ports.ItineraryResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubItineraryService) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	return s.getFn(ctx, id)
}

func (s *stubItineraryService) ListItineraries(ctx context.Context, in ports.ListItinerariesInput) (*ports.ListItinerariesResult, error) {
	return s.listFn(ctx, in)
}

func (s *stubItineraryService) GetTimeline(ctx context.Context, id string) (*ports.TimelineView, error) {
	return s.timelineFn(ctx, id)
}

func (s *stubItineraryService) RenderTimeline(ctx context.Context, id string) (string, error) {
	return s.renderFn(ctx, id)
}

func (s *stubItineraryService) PreviewTimeline(_ context.Context, in ports.ItineraryInput) (*ports.TimelineView, error) {
	events := make([]domain.Event, 0, len(in.Events))
	for _, e := range in.Events {
		events = append(events, domain.Event{ID: e.ID, Type: domain.EventType(e.Type), Description: e.Description, Location: e.Location, DetailsID: e.DetailsID})
	}
	return &ports.TimelineView{City: in.City, Cards: timeline.DefaultLinks().Project(in.City, events)}, nil
}

func (s *stubItineraryService) RenderPreview(_ context.Context, in ports.ItineraryInput) (string, error) {
	return "<section>" + in.City + "</section>", nil
}

type stubWarmer struct {
	enqueued []string
}

func (w *stubWarmer) Enqueue(id string) bool {
	w.enqueued = append(w.enqueued, id)
	return true
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	return he.Code
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestItineraryHandler_Create_Success(t *testing.T) {
	created := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	stub := &stubItineraryService{
		createFn: func(_ context.Context, in ports.ItineraryInput) (*ports.ItineraryResult, error) {
			if in.City != "Rome" || len(in.Events) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Events[1].DetailsID != "vatican" {
				t.Fatalf("details id not mapped: %+v", in.Events[1])
			}
			return &ports.ItineraryResult{ID: "it-1", City: in.City, EventCount: 2, CreatedAt: created}, nil
		},
	}
	warmer := &stubWarmer{}
	h := NewItineraryHandler(stub, warmer)

	body := `{"title":"Rome","city":"Rome","events":[
		{"id":"e1","time":"08:00","type":"transport","description":"Italo to Rome","location":"Roma Termini"},
		{"id":"e2","time":"11:00","type":"visit","description":"Vatican","details_id":"vatican"}]}`
	c, rec := newContext(http.MethodPost, "/v1/itineraries", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/v1/itineraries/it-1" {
		t.Errorf("unexpected Location header: %q", loc)
	}

	var resp createItineraryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.ID != "it-1" || resp.EventCount != 2 || resp.CreatedAt != "2026-10-16T09:00:00Z" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Links.HTML != "/v1/itineraries/it-1/timeline.html" {
		t.Errorf("unexpected links: %+v", resp.Links)
	}
	if len(warmer.enqueued) != 1 || warmer.enqueued[0] != "it-1" {
		t.Errorf("expected warm-up enqueued, got %v", warmer.enqueued)
	}
}

func TestItineraryHandler_Create_MissingCity(t *testing.T) {
	stub := &stubItineraryService{
		createFn: func(context.Context, ports.ItineraryInput) (*ports.ItineraryResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewItineraryHandler(stub, nil)

	c, _ := newContext(http.MethodPost, "/v1/itineraries", `{"events":[]}`)
	err := h.Create(c)

	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if !strings.Contains(err.Error(), "city is required") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestItineraryHandler_Create_FieldTooLong(t *testing.T) {
	h := NewItineraryHandler(&stubItineraryService{}, nil)

	body := `{"city":"Rome","events":[{"type":"` + strings.Repeat("x", 33) + `"}]}`
	c, _ := newContext(http.MethodPost, "/v1/itineraries", body)
	err := h.Create(c)

	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if !strings.Contains(err.Error(), "events[0].type must be at most 32 characters") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestItineraryHandler_Create_DuplicateEventIDs(t *testing.T) {
	stub := &stubItineraryService{
		createFn: func(context.Context, ports.ItineraryInput) (*ports.ItineraryResult, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	h := NewItineraryHandler(stub, nil)

	body := `{"city":"Rome","events":[{"id":"e1","type":"visit"},{"type":"meal"},{"id":"e1","type":"other"}]}`
	c, _ := newContext(http.MethodPost, "/v1/itineraries", body)
	err := h.Create(c)

	if code := httpCode(t, err); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if !strings.Contains(err.Error(), "events must not repeat an event id") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestItineraryHandler_Create_BlankEventIDsMayRepeat(t *testing.T) {
	h := NewItineraryHandler(&stubItineraryService{
		createFn: func(_ context.Context, in ports.ItineraryInput) (*ports.ItineraryResult, error) {
			return &ports.ItineraryResult{ID: "it-1", City: in.City, EventCount: len(in.Events)}, nil
		},
	}, nil)

	body := `{"city":"Rome","events":[{"type":"visit"},{"id":" ","type":"meal"}]}`
	c, rec := newContext(http.MethodPost, "/v1/itineraries", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestItineraryHandler_Create_InvalidPayload(t *testing.T) {
	h := NewItineraryHandler(&stubItineraryService{}, nil)

	c, _ := newContext(http.MethodPost, "/v1/itineraries", "not-json")

	if code := httpCode(t, h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestItineraryHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubItineraryService{
		getFn: func(context.Context, string) (*domain.Itinerary, error) {
			return nil, domain.ErrItineraryNotFound
		},
	}
	h := NewItineraryHandler(stub, nil)

	c, _ := newContext(http.MethodGet, "/v1/itineraries/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrItineraryNotFound) {
		t.Fatalf("expected ErrItineraryNotFound, got %v", err)
	}
}

func TestItineraryHandler_List_ParsesQuery(t *testing.T) {
	stub := &stubItineraryService{
		listFn: func(_ context.Context, in ports.ListItinerariesInput) (*ports.ListItinerariesResult, error) {
			if in.City != "Rome" || in.Page != 2 || in.Limit != 5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ListItinerariesResult{
				Items: []ports.ItinerarySummary{{ID: "it-1", City: "Rome", EventCount: 3}},
				Total: 6, Page: 2, Limit: 5, TotalPages: 2,
			}, nil
		},
	}
	h := NewItineraryHandler(stub, nil)

	c, rec := newContext(http.MethodGet, "/v1/itineraries?city=Rome&page=2&limit=5", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp listItinerariesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 6 || len(resp.Items) != 1 || resp.Items[0].Links.Self != "/v1/itineraries/it-1" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestItineraryHandler_List_BadPage(t *testing.T) {
	h := NewItineraryHandler(&stubItineraryService{}, nil)

	c, _ := newContext(http.MethodGet, "/v1/itineraries?page=two", "")

	if code := httpCode(t, h.List(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestItineraryHandler_TimelineHTML(t *testing.T) {
	stub := &stubItineraryService{
		renderFn: func(_ context.Context, id string) (string, error) {
			return `<section data-itinerary="` + id + `"></section>`, nil
		},
	}
	h := NewItineraryHandler(stub, nil)

	c, rec := newContext(http.MethodGet, "/v1/itineraries/it-1/timeline.html", "")
	c.SetParamNames("id")
	c.SetParamValues("it-1")

	if err := h.TimelineHTML(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Errorf("expected html content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `data-itinerary="it-1"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestItineraryHandler_Preview(t *testing.T) {
	h := NewItineraryHandler(&stubItineraryService{}, nil)

	body := `{"city":"Rome","events":[
		{"id":"a","type":"visit","description":"Colosseum"},
		{"id":"b","type":"transport","description":"Train to Naples","location":"Napoli Centrale"}]}`
	c, rec := newContext(http.MethodPost, "/v1/timeline/preview", body)

	if err := h.Preview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp timelineResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(resp.Cards))
	}
	if resp.Cards[1].Map.Mode != timeline.ModeNavigate || resp.Cards[1].Booking == nil {
		t.Errorf("unexpected second card: %+v", resp.Cards[1])
	}
}
