package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tripdeck/itinerary-timeline/internal/core/domain"
	"github.com/tripdeck/itinerary-timeline/internal/core/ports"
)

const collectionItineraries = "itineraries"

type ItineraryRepository struct {
	col *mongo.Collection
}

func NewItineraryRepository(db *mongo.Database) *ItineraryRepository {
	return &ItineraryRepository{col: db.Collection(collectionItineraries)}
}

// Create inserts a new itinerary document.
func (r *ItineraryRepository) Create(ctx context.Context, it *domain.Itinerary) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}
	return nil
}

// Upsert replaces the document with the same _id, inserting it when missing.
func (r *ItineraryRepository) Upsert(ctx context.Context, it *domain.Itinerary) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": it.ID}, it, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert itinerary: %w", err)
	}
	return nil
}

// FindByID retrieves an itinerary by id.
func (r *ItineraryRepository) FindByID(ctx context.Context, id string) (*domain.Itinerary, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var it domain.Itinerary
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&it)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrItineraryNotFound
		}
		return nil, err
	}
	return &it, nil
}

// List returns one page of itineraries, newest first, plus the total match count.
func (r *ItineraryRepository) List(ctx context.Context, f ports.ListItinerariesFilter) ([]*domain.Itinerary, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := listFilter(f)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count itineraries: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find itineraries: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Itinerary, 0, f.Limit)
	for cur.Next(ctx) {
		var it domain.Itinerary
		if err := cur.Decode(&it); err != nil {
			return nil, 0, fmt.Errorf("decode itinerary: %w", err)
		}
		items = append(items, &it)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate itineraries: %w", err)
	}
	return items, total, nil
}

func listFilter(f ports.ListItinerariesFilter) bson.M {
	filter := bson.M{}
	if f.City != "" {
		filter["city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(f.City) + "$", "$options": "i"}
	}
	return filter
}

// EnsureIndexes creates necessary indexes on the itineraries collection.
func (r *ItineraryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
