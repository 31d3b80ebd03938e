package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/smartrestaurant/restaurant-api/internal/core/domain"
	"github.com/smartrestaurant/restaurant-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ErrQueueFull is returned by Record when the target worker's buffer is full.
var ErrQueueFull = errors.New("signal queue full")

// Dispatcher routes learning signals to a fixed set of workers using
// consistent hashing on the user id, so one user's signals are handled in
// the order they arrived. It implements ports.SignalRecorder.
type Dispatcher struct {
	workers []chan domain.LearnSignal
	sink    ports.SignalRecorder
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers that
// forward to sink. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.SignalRecorder, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.LearnSignal, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LearnSignal, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Record enqueues signal without blocking. A full buffer drops the signal
// and reports ErrQueueFull.
func (d *Dispatcher) Record(_ context.Context, signal domain.LearnSignal) error {
	select {
	case d.workers[d.shardIndex(signal.UserID)] <- signal:
		return nil
	default:
		return ErrQueueFull
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.LearnSignal) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case signal, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Record(ctx, signal); err != nil {
				d.log.Error().Err(err).
					Str("user_id", signal.UserID).
					Int("worker_id", id).
					Msg("signal processing failed")
			}
		}
	}
}
