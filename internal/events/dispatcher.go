// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
)

const (
	DefaultQueueSize      = 256
	defaultPublishTimeout = 5 * time.Second
)

// Dispatcher decouples request handling from the broker. Publish only
// enqueues; a background loop started by Run forwards events to the wrapped
// Publisher. When the queue is full the event is dropped.
type Dispatcher struct {
	next           Publisher
	queue          chan models.Event
	publishTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewDispatcher returns a Dispatcher with a queue of the given size in front
// of next. A non-positive size falls back to [DefaultQueueSize].
func NewDispatcher(next Publisher, size int, log *logger.Logger) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &Dispatcher{
		next:           next,
		queue:          make(chan models.Event, size),
		publishTimeout: defaultPublishTimeout,
		logger:         log,
	}
}

// Publish enqueues event without blocking.
func (d *Dispatcher) Publish(_ context.Context, event models.Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrPublisherClosed
	}

	select {
	case d.queue <- event:
		return nil
	default:
		d.logger.Warn().Str("func", "*Dispatcher.Publish").Str("event", string(event.Type)).Msg("event queue is full, dropping event")
		return ErrQueueFull
	}
}

// Run starts the forwarding loop in its own goroutine. The loop drains the
// queue until Close is called; ctx only supplies values to publish calls.
func (d *Dispatcher) Run(ctx context.Context) {
	base := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		for event := range d.queue {
			d.forward(base, event)
		}
	}()
}

func (d *Dispatcher) forward(ctx context.Context, event models.Event) {
	ctx, cancel := context.WithTimeout(ctx, d.publishTimeout)
	defer cancel()

	if err := d.next.Publish(ctx, event); err != nil {
		d.logger.Err(err).Str("func", "*Dispatcher.forward").Str("event", string(event.Type)).Msg("event was not delivered")
	}
}

// Close stops accepting events, waits for queued events to be forwarded and
// closes the wrapped Publisher.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	return d.next.Close()
}
