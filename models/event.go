// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a domain event and doubles as its routing key.
type EventType string

const (
	EventUserRegistered EventType = "user.registered"
	EventAdCreated      EventType = "ad.created"
	EventMessageSent    EventType = "message.sent"
)

// Event is a domain event published after a successful write.
type Event struct {
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// NewEvent builds an [Event] of the given type stamped with the current UTC time.
func NewEvent(eventType EventType, payload any) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
