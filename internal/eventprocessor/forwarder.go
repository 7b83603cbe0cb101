// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package eventprocessor

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/xvmee/portfolio/internal/logging"
	"github.com/xvmee/portfolio/internal/metrics"
	"github.com/xvmee/portfolio/internal/models"
)

// ErrSubscriptionClosed is returned by Serve when the pub/sub closes its
// output while the context is still live.
var ErrSubscriptionClosed = errors.New("subscription closed")

// Broadcaster pushes gallery changes to live clients.
type Broadcaster interface {
	BroadcastPortfolioCreated(item *models.PortfolioItem)
	BroadcastPortfolioDeleted(id int)
}

// ItemCounter reports the current gallery size.
type ItemCounter interface {
	CountPortfolioItems(ctx context.Context) (int, error)
}

// Forwarder relays portfolio events to a Broadcaster and keeps the
// portfolio_items gauge current.
type Forwarder struct {
	subscriber  message.Subscriber
	broadcaster Broadcaster
	counter     ItemCounter
}

// NewForwarder creates a forwarder. counter may be nil.
func NewForwarder(subscriber message.Subscriber, broadcaster Broadcaster, counter ItemCounter) (*Forwarder, error) {
	if subscriber == nil {
		return nil, fmt.Errorf("subscriber required")
	}
	if broadcaster == nil {
		return nil, fmt.Errorf("broadcaster required")
	}
	return &Forwarder{
		subscriber:  subscriber,
		broadcaster: broadcaster,
		counter:     counter,
	}, nil
}

// Serve subscribes to both portfolio topics and forwards events until ctx
// is canceled.
func (f *Forwarder) Serve(ctx context.Context) error {
	created, err := f.subscriber.Subscribe(ctx, topicPrefix+string(EventTypeCreated))
	if err != nil {
		return fmt.Errorf("subscribe to created events: %w", err)
	}
	deleted, err := f.subscriber.Subscribe(ctx, topicPrefix+string(EventTypeDeleted))
	if err != nil {
		return fmt.Errorf("subscribe to deleted events: %w", err)
	}

	logging.Info().Strs("topics", Topics()).Msg("event forwarder started")
	f.refreshItemCount(ctx)

	for {
		var (
			msg *message.Message
			ok  bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok = <-created:
		case msg, ok = <-deleted:
		}
		if !ok {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return ErrSubscriptionClosed
		}
		f.handle(ctx, msg)
	}
}

// handle forwards one message. Malformed messages are acked and dropped so
// they are not redelivered forever.
func (f *Forwarder) handle(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	event, err := DeserializeEvent(msg.Payload)
	if err != nil {
		logging.Warn().Err(err).Str("message_id", msg.UUID).Msg("dropping malformed portfolio event")
		return
	}

	switch event.Type {
	case EventTypeCreated:
		f.broadcaster.BroadcastPortfolioCreated(event.Item)
	case EventTypeDeleted:
		f.broadcaster.BroadcastPortfolioDeleted(event.ItemID)
	}

	logging.Debug().
		Str("event_id", event.EventID).
		Str("type", string(event.Type)).
		Int("item_id", event.ItemID).
		Str("request_id", msg.Metadata.Get("request_id")).
		Msg("forwarded portfolio event")

	f.refreshItemCount(ctx)
}

func (f *Forwarder) refreshItemCount(ctx context.Context) {
	if f.counter == nil {
		return
	}
	n, err := f.counter.CountPortfolioItems(ctx)
	if err != nil {
		logging.Warn().Err(err).Msg("failed to count portfolio items")
		return
	}
	metrics.SetPortfolioItems(n)
}

// String implements fmt.Stringer for supervisor logs.
func (f *Forwarder) String() string {
	return "event-forwarder"
}
