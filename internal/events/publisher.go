// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes domain events to RabbitMQ.
//
// Events are emitted by the service layer after a successful write. A failure
// to publish is logged and never propagated to the HTTP caller.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

var (
	ErrDialingBroker     = errors.New("failed to connect to amqp broker")
	ErrOpeningChannel    = errors.New("failed to open amqp channel")
	ErrDeclaringExchange = errors.New("failed to declare amqp exchange")
	ErrMarshallingEvent  = errors.New("failed to marshal event")
	ErrPublishingEvent   = errors.New("failed to publish event")
	ErrPublisherClosed   = errors.New("publisher is closed")
	ErrQueueFull         = errors.New("event queue is full")
)

// channel is the subset of *amqp.Channel used by the publisher.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type amqpPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string

	mu     sync.Mutex
	closed bool

	logger *logger.Logger
}

// NewPublisher connects to the broker described by cfg and declares a durable
// topic exchange. When no broker URL is configured a no-op publisher is
// returned.
func NewPublisher(cfg config.Broker, log *logger.Logger) (Publisher, error) {
	if cfg.AMQPURL == "" {
		log.Info().Msg("amqp url is not set, domain events are disabled")
		return NopPublisher{}, nil
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Err(err).Str("func", "events.NewPublisher").Msg("error connecting to amqp broker")
		return nil, fmt.Errorf("%w: %w", ErrDialingBroker, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Err(err).Str("func", "events.NewPublisher").Msg("error opening amqp channel")
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningChannel, err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		log.Err(err).Str("func", "events.NewPublisher").Str("exchange", cfg.Exchange).Msg("error declaring exchange")
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrDeclaringExchange, err)
	}

	log.Info().Str("exchange", cfg.Exchange).Msg("connected to amqp broker")

	p := newAMQPPublisher(ch, cfg.Exchange, log)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch channel, exchange string, log *logger.Logger) *amqpPublisher {
	return &amqpPublisher{
		ch:       ch,
		exchange: exchange,
		logger:   log,
	}
}

// Publish sends event as a persistent JSON message routed by its type.
func (p *amqpPublisher) Publish(ctx context.Context, event models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarshallingEvent, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Type),
		Body:         body,
	})
	if err != nil {
		p.logger.Err(err).Str("func", "*amqpPublisher.Publish").Str("event", string(event.Type)).Msg("error publishing event")
		return fmt.Errorf("%w: %w", ErrPublishingEvent, err)
	}

	return nil
}

// Close closes the channel and the underlying connection. It is safe to call
// more than once.
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if err := p.ch.Close(); err != nil {
		errs = append(errs, err)
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.Event) error { return nil }

func (NopPublisher) Close() error { return nil }
