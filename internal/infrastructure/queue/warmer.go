package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tripdeck/itinerary-timeline/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// TimelineWarmer renders a stored itinerary into the render cache.
type TimelineWarmer interface {
	WarmTimeline(ctx context.Context, itineraryID string) error
}

// Warmer pre-renders freshly saved itineraries on a fixed set of workers.
// Itineraries are sharded by id, so repeated warm-ups of one itinerary run in
// the order they were enqueued.
type Warmer struct {
	workers []chan string
	service TimelineWarmer
	log     zerolog.Logger
}

// NewWarmer creates a Warmer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewWarmer(numWorkers int, service TimelineWarmer, log zerolog.Logger) *Warmer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	w := &Warmer{
		workers: make([]chan string, numWorkers),
		service: service,
		log:     log,
	}
	for i := range w.workers {
		w.workers[i] = make(chan string, channelBuffer)
	}
	return w
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (w *Warmer) Start(ctx context.Context) {
	for i, ch := range w.workers {
		go w.runWorker(ctx, i, ch)
	}
}

// Enqueue schedules a warm-up without blocking. When the worker's buffer is
// full the request is dropped; the timeline is then rendered on first read.
func (w *Warmer) Enqueue(itineraryID string) bool {
	idx := w.shardIndex(itineraryID)
	select {
	case w.workers[idx] <- itineraryID:
		metrics.WarmupQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
		return true
	default:
		w.log.Warn().Str("itinerary_id", itineraryID).Int("worker_id", idx).Msg("warm-up queue full, dropping")
		return false
	}
}

// shardIndex maps an itinerary id deterministically to a worker index.
func (w *Warmer) shardIndex(itineraryID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(itineraryID))
	return int(h.Sum32() % uint32(len(w.workers)))
}

func (w *Warmer) runWorker(ctx context.Context, id int, ch <-chan string) {
	depth := metrics.WarmupQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case itineraryID, ok := <-ch:
			if !ok {
				return
			}
			depth.Dec()
			if err := w.service.WarmTimeline(ctx, itineraryID); err != nil {
				metrics.WarmupErrorsTotal.Inc()
				w.log.Error().Err(err).
					Str("itinerary_id", itineraryID).
					Int("worker_id", id).
					Msg("timeline warm-up failed")
				continue
			}
			w.log.Debug().Str("itinerary_id", itineraryID).Int("worker_id", id).Msg("timeline warmed")
		}
	}
}
