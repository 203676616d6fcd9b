// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package toast_test

import (
	"testing"

	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndPending(t *testing.T) {
	c := toast.NewCenter()
	assert.Empty(t, c.Pending())

	id1 := c.Push(toast.Success, "Client created", "All good.")
	id2 := c.Push(toast.Danger, "Request failed", "Try again.")
	assert.NotEqual(t, id1, id2)

	pending := c.Pending()
	require.Len(t, pending, 2)
	assert.Equal(t, toast.Success, pending[0].Kind)
	assert.Equal(t, "Client created", pending[0].Title)
	assert.Equal(t, toast.Danger, pending[1].Kind)
	assert.Equal(t, toast.DefaultDuration, pending[0].Duration)
}

func TestDismiss(t *testing.T) {
	c := toast.NewCenter()
	id1 := c.Push(toast.Success, "first", "")
	id2 := c.Push(toast.Success, "second", "")

	c.Dismiss(id1)
	pending := c.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, id2, pending[0].ID)

	// dismissing an unknown id is a no-op
	c.Dismiss(id1)
	assert.Len(t, c.Pending(), 1)
}

func TestDrain(t *testing.T) {
	c := toast.NewCenter()
	c.Push(toast.Success, "first", "")
	c.Push(toast.Danger, "second", "")

	drained := c.Drain()
	assert.Len(t, drained, 2)
	assert.Empty(t, c.Pending(), "drain clears the queue")
	assert.Empty(t, c.Drain())
}
