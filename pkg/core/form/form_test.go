// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package form_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sayara/garagedash/pkg/core/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// draft is a minimal two-field snapshot; the checker below demands a
// non-empty name and a positive age.
type draft struct {
	Name string
	Age  int
}

func check(s any) map[string]string {
	d := s.(*draft)
	errs := make(map[string]string)
	if d.Name == "" {
		errs["name"] = "this field is required"
	}
	if d.Age <= 0 {
		errs["age"] = "must be positive"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func TestInitialViolationsStayHidden(t *testing.T) {
	f := form.New(draft{}, check)
	assert.False(t, f.Valid())
	_, visible := f.FieldError("name")
	assert.False(t, visible, "untouched field must not show its violation")
	assert.Len(t, f.Errors(), 2)
}

func TestUpdateMarksTouchedAndRevalidates(t *testing.T) {
	f := form.New(draft{}, check)
	f.Update("name", func(d *draft) { d.Name = "Hassan" })
	_, visible := f.FieldError("name")
	assert.False(t, visible, "fixed field has no violation to show")

	f.Update("name", func(d *draft) { d.Name = "" })
	msg, visible := f.FieldError("name")
	assert.True(t, visible)
	assert.Equal(t, "this field is required", msg)

	// the untouched field is still gated
	_, visible = f.FieldError("age")
	assert.False(t, visible)
}

func TestReplaceResetsTouched(t *testing.T) {
	f := form.New(draft{}, check)
	f.Update("name", func(d *draft) { d.Name = "" })
	_, visible := f.FieldError("name")
	assert.True(t, visible)

	f.Replace(draft{Name: "Hassan", Age: 30})
	assert.True(t, f.Valid())
	f.Replace(draft{})
	_, visible = f.FieldError("name")
	assert.False(t, visible, "replace must clear the touched marks")
}

func TestSubmitRejectsInvalidSnapshot(t *testing.T) {
	f := form.New(draft{}, check)
	sent := false
	err := f.Submit(
		context.Background(),
		func(context.Context, draft) error {
			sent = true
			return nil
		},
	)
	assert.ErrorIs(t, err, form.ErrInvalid)
	assert.False(t, sent, "no network call for an invalid snapshot")

	// the rejection makes every violating field visible
	_, visible := f.FieldError("name")
	assert.True(t, visible)
	_, visible = f.FieldError("age")
	assert.True(t, visible)
}

func TestSubmitSingleFlight(t *testing.T) {
	f := form.New(draft{Name: "Hassan", Age: 30}, check)
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- f.Submit(
			context.Background(),
			func(context.Context, draft) error {
				close(entered)
				<-release
				return nil
			},
		)
	}()
	<-entered
	assert.True(t, f.Submitting())
	err := f.Submit(
		context.Background(),
		func(context.Context, draft) error { return nil },
	)
	assert.ErrorIs(t, err, form.ErrSubmitInFlight)

	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("first submission did not finish")
	}
	assert.False(t, f.Submitting())
}

func TestSubmitFailureKeepsValues(t *testing.T) {
	f := form.New(draft{Name: "Hassan", Age: 30}, check)
	sendErr := errors.New("backend rejected the request")
	err := f.Submit(
		context.Background(),
		func(context.Context, draft) error { return sendErr },
	)
	assert.ErrorIs(t, err, sendErr)
	assert.False(t, f.Submitting(), "form returns to an editable state")
	assert.Equal(t, draft{Name: "Hassan", Age: 30}, f.Values())

	// the same form can be resubmitted
	err = f.Submit(
		context.Background(),
		func(context.Context, draft) error { return nil },
	)
	assert.NoError(t, err)
}

func TestSubmitPassesSnapshotCopy(t *testing.T) {
	f := form.New(draft{Name: "Hassan", Age: 30}, check)
	var got draft
	err := f.Submit(
		context.Background(),
		func(_ context.Context, d draft) error {
			got = d
			return nil
		},
	)
	require.NoError(t, err)
	assert.Equal(t, draft{Name: "Hassan", Age: 30}, got)
}
