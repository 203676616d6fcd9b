// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package form holds the state of one in-progress create/edit form:
// the editable snapshot, which fields the user has touched, the
// current rule violations, and whether a submission is in flight.
// Validation always runs against the full snapshot (not only the
// edited field), so cross-field rules such as date ordering stay
// consistent after every keystroke. A violation is only reported for
// a field once that field has been touched, except after a submit
// attempt, which surfaces everything.
package form

import (
	"context"
	"errors"
	"sync"
)

// ErrSubmitInFlight rejects a submission while a prior submission of
// the same form instance has not completed yet.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// ErrInvalid rejects a submission of a snapshot that violates the
// validation rules. The per-field messages remain available through
// Errors and FieldError; no network call is made.
var ErrInvalid = errors.New("form has validation errors")

// State is the form container for a draft snapshot of type T. Each
// screen mount owns its own State instance; there is no ambient
// sharing between forms.
type State[T any] struct {
	mu         sync.Mutex
	values     T
	touched    map[string]bool
	errors     map[string]string
	submitting bool
	check      func(s any) map[string]string
}

// New instantiates a form around the given initial snapshot (caller
// supplied values for edit/view flows, an empty template for create
// flows) and a checker derived from the validation rule set, e.g.
// validate.(*Engine).Check. The initial snapshot is validated
// immediately, but nothing is touched yet, so no violation is
// user-visible until edits begin.
func New[T any](initial T, check func(s any) map[string]string) *State[T] {
	f := &State[T]{
		values:  initial,
		touched: make(map[string]bool),
		check:   check,
	}
	f.errors = check(&f.values)
	return f
}

// Values returns a copy of the current snapshot.
func (f *State[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Replace swaps the entire snapshot wholesale, e.g. when a view-mode
// fetch resolves. Touched marks are reset: the new values came from
// the backend, not from the user.
func (f *State[T]) Replace(values T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = values
	f.touched = make(map[string]bool)
	f.errors = f.check(&f.values)
}

// Update applies one field edit. The mutate callback changes exactly
// that field on the snapshot, the field is marked touched, and the
// whole snapshot is re-validated.
func (f *State[T]) Update(field string, mutate func(values *T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mutate(&f.values)
	f.touched[field] = true
	f.errors = f.check(&f.values)
}

// FieldError reports the violation message for the given field path,
// if there is one and the field has been touched.
func (f *State[T]) FieldError(field string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.touched[field] {
		return "", false
	}
	msg, ok := f.errors[field]
	return msg, ok
}

// Errors returns all current violations keyed by field path,
// regardless of touched state.
func (f *State[T]) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return errs
}

// Valid reports whether the current snapshot passes all rules.
func (f *State[T]) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}

// Submitting reports whether a submission is currently in flight.
func (f *State[T]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates the snapshot and, if clean, passes a copy of it to
// send. Invalid snapshots are rejected with ErrInvalid before any
// network activity, with every violating field marked touched so the
// messages become visible. At most one submission can be in flight
// per form instance; concurrent attempts fail with ErrSubmitInFlight.
// On send failure the snapshot stays as the user left it (nothing was
// applied locally, so nothing is rolled back) and the form returns to
// an editable state.
func (f *State[T]) Submit(
	ctx context.Context, send func(ctx context.Context, values T) error,
) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.errors = f.check(&f.values)
	if len(f.errors) > 0 {
		for field := range f.errors {
			f.touched[field] = true
		}
		f.mu.Unlock()
		return ErrInvalid
	}
	f.submitting = true
	values := f.values
	f.mu.Unlock()

	err := send(ctx, values)

	f.mu.Lock()
	f.submitting = false
	f.mu.Unlock()
	return err
}
