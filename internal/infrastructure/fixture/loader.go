// Package fixture loads itinerary days from YAML files so a fresh database can
// be seeded with known content.
package fixture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
)

// Upserter stores an itinerary, replacing any previous version with the same id.
type Upserter interface {
	Upsert(ctx context.Context, it *domain.Itinerary) error
}

type document struct {
	Itineraries []*domain.Itinerary `yaml:"itineraries"`
}

// Load decodes every YAML document in r. Each itinerary needs an id and a city
// so that seeding twice yields the same records. Events without an id are
// numbered after their itinerary.
func Load(r io.Reader) ([]*domain.Itinerary, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*domain.Itinerary
	seen := make(map[string]struct{})
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fixture: decode: %w", err)
		}

		for i, it := range doc.Itineraries {
			if it == nil {
				return nil, fmt.Errorf("fixture: itinerary %d is empty", i)
			}
			if err := normalize(it); err != nil {
				return nil, err
			}
			if _, dup := seen[it.ID]; dup {
				return nil, fmt.Errorf("fixture: duplicate itinerary id %q", it.ID)
			}
			seen[it.ID] = struct{}{}
			out = append(out, it)
		}
	}
	return out, nil
}

// LoadFile opens path and hands it to Load.
func LoadFile(path string) ([]*domain.Itinerary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Seed upserts every itinerary, stamping both timestamps with now.
func Seed(ctx context.Context, repo Upserter, itineraries []*domain.Itinerary, now time.Time) error {
	for _, it := range itineraries {
		it.CreatedAt = now
		it.UpdatedAt = now
		if err := repo.Upsert(ctx, it); err != nil {
			return fmt.Errorf("fixture: seed %q: %w", it.ID, err)
		}
	}
	return nil
}

func normalize(it *domain.Itinerary) error {
	it.ID = strings.TrimSpace(it.ID)
	it.City = strings.TrimSpace(it.City)
	if it.ID == "" {
		return fmt.Errorf("fixture: %w: id is required", domain.ErrInvalidItinerary)
	}
	if it.City == "" {
		return fmt.Errorf("fixture: %w: itinerary %q has no city", domain.ErrInvalidItinerary, it.ID)
	}
	if it.Events == nil {
		it.Events = []domain.Event{}
	}

	seen := make(map[string]struct{}, len(it.Events))
	for i := range it.Events {
		ev := &it.Events[i]
		ev.ID = strings.TrimSpace(ev.ID)
		if ev.ID == "" {
			ev.ID = it.ID + "-" + strconv.Itoa(i+1)
		}
		if _, dup := seen[ev.ID]; dup {
			return fmt.Errorf("fixture: %w: itinerary %q repeats event id %q", domain.ErrInvalidItinerary, it.ID, ev.ID)
		}
		seen[ev.ID] = struct{}{}
		ev.Type = domain.EventType(strings.ToLower(strings.TrimSpace(string(ev.Type))))
	}
	return nil
}
