// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package toast implements the one-shot, dismissible, non-blocking
// notification slot used to surface operation outcomes. Transport
// failures never propagate to a global handler; they end up here as a
// danger notification while the originating form or list returns to
// an interactive state. Successful mutations push a success
// notification the same way.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for presentation purposes.
type Kind string

const (
	Success Kind = "success"
	Danger  Kind = "danger"
)

// DefaultDuration is how long a notification stays on display unless
// dismissed earlier.
const DefaultDuration = 2500 * time.Millisecond

// Notification is one pushed message. The ID is assigned locally
// (the only identifier in the system that is not backend-owned) so a
// specific notification can be dismissed.
type Notification struct {
	ID       uuid.UUID
	Kind     Kind
	Title    string
	Message  string
	Duration time.Duration
}

// Center collects pending notifications for one screen. A Center is
// injected into the components that report through it; there is no
// package-level singleton.
type Center struct {
	mu      sync.Mutex
	pending []Notification
}

func NewCenter() *Center {
	return &Center{}
}

// Push appends a notification and returns its identity.
func (c *Center) Push(kind Kind, title, message string) uuid.UUID {
	n := Notification{
		ID:       uuid.New(),
		Kind:     kind,
		Title:    title,
		Message:  message,
		Duration: DefaultDuration,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, n)
	return n.ID
}

// Dismiss removes the identified notification, if still pending.
func (c *Center) Dismiss(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, n := range c.pending {
		if n.ID == id {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the queued notifications in push order.
func (c *Center) Pending() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.pending))
	copy(out, c.pending)
	return out
}

// Drain returns the queued notifications and clears the queue, for
// callers that render each notification exactly once.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.pending
	c.pending = nil
	return out
}
