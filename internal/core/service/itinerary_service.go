package service

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
	"github.com/tripdeck/itinerary-timeline/internal/core/timeline"
	"github.com/tripdeck/itinerary-timeline/internal/pkg/metrics"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ItineraryService struct {
	repo     ports.ItineraryRepository
	renderer ports.TimelineRenderer
	cache    ports.RenderCache // optional
	links    timeline.Links
	logger   zerolog.Logger
}

// NewItineraryService wires the itinerary use cases. cache may be nil, in
// which case every render is computed.
func NewItineraryService(
	repo ports.ItineraryRepository,
	renderer ports.TimelineRenderer,
	cache ports.RenderCache,
	links timeline.Links,
	logger zerolog.Logger,
) *ItineraryService {
	return &ItineraryService{
		repo:     repo,
		renderer: renderer,
		cache:    cache,
		links:    links,
		logger:   logger,
	}
}

// CreateItinerary stores a new itinerary. Events without an id get a UUID.
func (s *ItineraryService) CreateItinerary(ctx context.Context, input ports.ItineraryInput) (*ports.ItineraryResult, error) {
	it, err := buildItinerary(input, randomEventID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	it.ID = uuid.NewString()
	it.CreatedAt = now
	it.UpdatedAt = now

	if err := s.repo.Create(ctx, it); err != nil {
		s.logger.Error().Err(err).Msg("failed to create itinerary")
		return nil, fmt.Errorf("create itinerary: %w", err)
	}

	metrics.ItinerariesCreatedTotal.Inc()
	s.logger.Info().Str("itinerary_id", it.ID).Str("city", it.City).Int("events", len(it.Events)).Msg("itinerary created")

	return &ports.ItineraryResult{
		ID:         it.ID,
		City:       it.City,
		EventCount: len(it.Events),
		CreatedAt:  it.CreatedAt,
	}, nil
}

// GetItinerary returns the stored itinerary.
func (s *ItineraryService) GetItinerary(ctx context.Context, id string) (*domain.Itinerary, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get itinerary: %w", err)
	}
	return it, nil
}

// ListItineraries returns one page of itinerary summaries.
func (s *ItineraryService) ListItineraries(ctx context.Context, input ports.ListItinerariesInput) (*ports.ListItinerariesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListItinerariesFilter{
		City:  strings.TrimSpace(input.City),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}

	summaries := make([]ports.ItinerarySummary, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, ports.ItinerarySummary{
			ID:         it.ID,
			Title:      it.Title,
			City:       it.City,
			Date:       it.Date,
			EventCount: len(it.Events),
			CreatedAt:  it.CreatedAt,
		})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListItinerariesResult{
		Items:      summaries,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// GetTimeline projects a stored itinerary into cards.
func (s *ItineraryService) GetTimeline(ctx context.Context, id string) (*ports.TimelineView, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get timeline: %w", err)
	}
	view := s.project(it)
	return &view, nil
}

// RenderTimeline returns the markup for a stored itinerary. Cache failures are
// logged and never fail the render.
func (s *ItineraryService) RenderTimeline(ctx context.Context, id string) (string, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("render timeline: %w", err)
	}

	key := cacheKey(it)
	if s.cache != nil {
		markup, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("itinerary_id", id).Msg("render cache read failed, rendering anyway")
		case ok:
			metrics.RenderCacheTotal.WithLabelValues("hit").Inc()
			return markup, nil
		default:
			metrics.RenderCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	markup, err := s.render(s.project(it))
	if err != nil {
		return "", fmt.Errorf("render timeline: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, markup); err != nil {
			s.logger.Warn().Err(err).Str("itinerary_id", id).Msg("failed to store rendered timeline")
		}
	}
	return markup, nil
}

// WarmTimeline renders a stored itinerary so the next read is served from cache.
func (s *ItineraryService) WarmTimeline(ctx context.Context, id string) error {
	_, err := s.RenderTimeline(ctx, id)
	return err
}

// PreviewTimeline projects an itinerary without storing it. Events without an
// id are numbered by position so the same input always projects the same way.
func (s *ItineraryService) PreviewTimeline(_ context.Context, input ports.ItineraryInput) (*ports.TimelineView, error) {
	it, err := buildItinerary(input, positionalEventID)
	if err != nil {
		return nil, err
	}
	view := s.project(it)
	return &view, nil
}

// RenderPreview renders an itinerary without storing or caching it.
func (s *ItineraryService) RenderPreview(ctx context.Context, input ports.ItineraryInput) (string, error) {
	view, err := s.PreviewTimeline(ctx, input)
	if err != nil {
		return "", err
	}
	markup, err := s.render(*view)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return markup, nil
}

func (s *ItineraryService) project(it *domain.Itinerary) ports.TimelineView {
	start := time.Now()
	cards := s.links.Project(it.City, it.Events)

	for _, c := range cards {
		metrics.CardsProjectedTotal.WithLabelValues(string(c.Map.Mode)).Inc()
		if c.Booking != nil {
			metrics.BookingLinksTotal.Inc()
		}
	}
	metrics.ProjectionDuration.Observe(time.Since(start).Seconds())

	return ports.TimelineView{
		ItineraryID: it.ID,
		Title:       it.Title,
		City:        it.City,
		Date:        it.Date,
		Cards:       cards,
	}
}

func (s *ItineraryService) render(view ports.TimelineView) (string, error) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func randomEventID(int) string { return uuid.NewString() }

func positionalEventID(pos int) string { return "preview-" + strconv.Itoa(pos+1) }

// buildItinerary maps caller input onto the domain model. Only the city is
// mandatory and event ids must be unique; degenerate events still render.
// newID names events posted without an id.
func buildItinerary(input ports.ItineraryInput, newID func(pos int) string) (*domain.Itinerary, error) {
	city := strings.TrimSpace(input.City)
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", domain.ErrInvalidItinerary)
	}

	events := make([]domain.Event, 0, len(input.Events))
	seen := make(map[string]struct{}, len(input.Events))
	for i, e := range input.Events {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = newID(i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate event id %q", domain.ErrInvalidItinerary, id)
		}
		seen[id] = struct{}{}
		events = append(events, domain.Event{
			ID:          id,
			Time:        e.Time,
			Type:        domain.EventType(strings.ToLower(strings.TrimSpace(e.Type))),
			Description: e.Description,
			Location:    strings.TrimSpace(e.Location),
			DetailsID:   strings.TrimSpace(e.DetailsID),
		})
	}

	return &domain.Itinerary{
		Title:  strings.TrimSpace(input.Title),
		City:   city,
		Date:   strings.TrimSpace(input.Date),
		Events: events,
	}, nil
}

// cacheKey derives a key that changes whenever the itinerary content does.
// Format: timeline:<id>:<fnv64a of content>
func cacheKey(it *domain.Itinerary) string {
	h := fnv.New64a()
	write := func(s string) {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}
	write(it.Title)
	write(it.City)
	write(it.Date)
	write(it.UpdatedAt.UTC().Format(time.RFC3339Nano))
	for _, e := range it.Events {
		write(e.ID)
		write(e.Time)
		write(string(e.Type))
		write(e.Description)
		write(e.Location)
		write(e.DetailsID)
	}
	return fmt.Sprintf("timeline:%s:%016x", it.ID, h.Sum64())
}
