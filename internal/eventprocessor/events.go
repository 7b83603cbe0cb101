// xvmee portfolio - Personal Portfolio Website and Gallery API
// Copyright 2026 xvmee
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/xvmee/portfolio

package eventprocessor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/xvmee/portfolio/internal/models"
)

// SchemaVersion is the current event schema version.
const SchemaVersion = 1

// EventType names what happened to a portfolio item.
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeDeleted EventType = "deleted"
)

// topicPrefix is prepended to the event type to form the topic.
const topicPrefix = "portfolio."

// Topics returns every topic a PortfolioEvent can be published on.
func Topics() []string {
	return []string{
		topicPrefix + string(EventTypeCreated),
		topicPrefix + string(EventTypeDeleted),
	}
}

// PortfolioEvent records a change to the gallery.
type PortfolioEvent struct {
	EventID       string                `json:"event_id"`
	SchemaVersion int                   `json:"schema_version"`
	Type          EventType             `json:"type"`
	ItemID        int                   `json:"item_id"`
	Item          *models.PortfolioItem `json:"item,omitempty"`
	OccurredAt    time.Time             `json:"occurred_at"`
}

// NewPortfolioCreatedEvent describes a newly created item.
func NewPortfolioCreatedEvent(item *models.PortfolioItem) *PortfolioEvent {
	return &PortfolioEvent{
		EventID:       uuid.New().String(),
		SchemaVersion: SchemaVersion,
		Type:          EventTypeCreated,
		ItemID:        item.ID,
		Item:          item,
		OccurredAt:    time.Now().UTC(),
	}
}

// NewPortfolioDeletedEvent describes a removed item.
func NewPortfolioDeletedEvent(id int) *PortfolioEvent {
	return &PortfolioEvent{
		EventID:       uuid.New().String(),
		SchemaVersion: SchemaVersion,
		Type:          EventTypeDeleted,
		ItemID:        id,
		OccurredAt:    time.Now().UTC(),
	}
}

// Topic returns the topic the event is published on.
func (e *PortfolioEvent) Topic() string {
	return topicPrefix + string(e.Type)
}

// Validate checks the event is well formed.
func (e *PortfolioEvent) Validate() error {
	if e.EventID == "" {
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	}
	if e.ItemID <= 0 {
		return fmt.Errorf("%w: item_id must be positive", ErrInvalidEvent)
	}
	switch e.Type {
	case EventTypeCreated:
		if e.Item == nil {
			return fmt.Errorf("%w: created event requires item", ErrInvalidEvent)
		}
	case EventTypeDeleted:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}
