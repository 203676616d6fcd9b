// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsuc contains the clients use case: the paged,
// searchable clients listing and the create-client form flow.
// The listing is a state machine over page index, page size, sort,
// free-text query, total count, and a loading flag. Each paging,
// page-size, sort, or (debounced) search transition triggers one
// fetch through the gateway; a failed fetch keeps the previous page
// on display ("fail soft, keep last good page").
package clientsuc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sayara/garagedash/pkg/core/form"
	"github.com/sayara/garagedash/pkg/core/gateway"
	"github.com/sayara/garagedash/pkg/core/log"
	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/sayara/garagedash/pkg/core/validate"
)

// Sort is the sort selection of the table view. It is accepted and
// held as state, but the gateway list operation takes no sort
// parameter (see gateway.ListParams), so the selection currently has
// no server-side effect.
type Sort struct {
	Order string // "asc", "desc", or "" meaning unsorted
	Key   string
}

// ListState is one observable snapshot of the listing state machine.
type ListState struct {
	PageIndex int // 1-based
	Limit     int
	Total     int
	Query     string
	Sort      Sort
	Loading   bool
}

// UseCase drives the clients screens. One instance backs one mounted
// list view; nothing is shared ambiently between screens.
type UseCase struct {
	gw      gateway.Clients
	checker *validate.Engine
	toasts  *toast.Center

	debounce time.Duration

	mu    sync.Mutex
	state ListState
	items []model.Client
	timer *time.Timer
}

// New instantiates a clients use case with the initial listing state:
// first page, ten records per page, no query, no sort, nothing
// loaded. Required collaborators are passed individually; optional
// parameters use functional options.
func New(
	gw gateway.Clients,
	checker *validate.Engine,
	toasts *toast.Center,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{
		gw:      gw,
		checker: checker,
		toasts:  toasts,
		state:   ListState{PageIndex: 1, Limit: 10},
	}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.debounce == 0 {
		uc.debounce = 500 * time.Millisecond
	}
	return uc, nil
}

// State returns the current listing snapshot and the last fetched
// page of clients.
func (uc *UseCase) State() (ListState, []model.Client) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]model.Client, len(uc.items))
	copy(items, uc.items)
	return uc.state, items
}

// Refresh re-fetches the current page without changing any paging or
// query state, e.g. after navigating back to the listing.
func (uc *UseCase) Refresh(ctx context.Context) error {
	return uc.fetch(ctx)
}

// SetPage moves to the given 1-based page and fetches it.
func (uc *UseCase) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		return fmt.Errorf("page index (%d) is not positive", page)
	}
	uc.mu.Lock()
	uc.state.PageIndex = page
	uc.mu.Unlock()
	return uc.fetch(ctx)
}

// SetPageSize changes the page size, resets the page index to 1, and
// fetches the first page.
func (uc *UseCase) SetPageSize(ctx context.Context, limit int) error {
	if limit < 1 {
		return fmt.Errorf("page size (%d) is not positive", limit)
	}
	uc.mu.Lock()
	uc.state.Limit = limit
	uc.state.PageIndex = 1
	uc.mu.Unlock()
	return uc.fetch(ctx)
}

// SetSort records the sort selection and re-fetches. The backend call
// carries no sort parameter, so until the list endpoint grows one the
// returned page order is whatever the backend chose.
func (uc *UseCase) SetSort(ctx context.Context, key, order string) error {
	uc.mu.Lock()
	uc.state.Sort = Sort{Key: key, Order: order}
	uc.mu.Unlock()
	return uc.fetch(ctx)
}

// Search registers one keystroke of the free-text search input.
// Rapid successive calls within the debounce window coalesce into a
// single fetch carrying the last term, with the page index reset
// to 1. Only the most recent pending term survives; there is no
// queue.
func (uc *UseCase) Search(ctx context.Context, term string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.timer != nil {
		uc.timer.Stop()
	}
	uc.timer = time.AfterFunc(uc.debounce, func() {
		if err := uc.SearchNow(ctx, term); err != nil {
			log.Warn(ctx, "debounced clients search failed",
				slog.String("query", term), log.Err("error", err))
		}
	})
}

// SearchNow commits a search term immediately, bypassing the debounce
// window: the query is recorded, the page index resets to 1, and one
// fetch goes out. Search delegates here when its timer fires.
func (uc *UseCase) SearchNow(ctx context.Context, term string) error {
	uc.mu.Lock()
	uc.state.Query = term
	uc.state.PageIndex = 1
	uc.mu.Unlock()
	return uc.fetch(ctx)
}

// fetch performs one gateway list call for the current state.
// Entering the call raises the loading flag; completion clears it.
// On success the cached page and total are replaced wholesale; on
// failure both stay untouched so the previous page remains valid for
// display, and the failure is surfaced as a toast. Responses are
// applied in completion order; there is no request fencing.
func (uc *UseCase) fetch(ctx context.Context) error {
	uc.mu.Lock()
	uc.state.Loading = true
	p := gateway.ListParams{
		Limit:  uc.state.Limit,
		Offset: (uc.state.PageIndex - 1) * uc.state.Limit,
		Search: uc.state.Query,
	}
	uc.mu.Unlock()

	page, err := uc.gw.List(ctx, p)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.state.Loading = false
	if err != nil {
		uc.toasts.Push(toast.Danger, "Request failed",
			"Could not load clients. Please try again.")
		log.Warn(ctx, "listing clients failed",
			slog.Int("limit", p.Limit), slog.Int("offset", p.Offset),
			log.Err("error", err))
		return err
	}
	uc.items = page.Clients
	uc.state.Total = page.Total
	if page.Limit > 0 {
		uc.state.Limit = page.Limit
	}
	log.Debug(ctx, "clients page fetched",
		slog.Int("count", len(page.Clients)), slog.Int("total", page.Total))
	return nil
}

// NewClientForm starts an empty create-client form. The initial
// snapshot is the fixed empty-record template; validation messages
// stay hidden until the respective fields are touched.
func (uc *UseCase) NewClientForm() *form.State[model.ClientDraft] {
	return form.New(model.ClientDraft{}, uc.checker.Check)
}

// SubmitNew submits a create-client form. The draft's calendar dates
// are normalized to full timestamps, the payload goes out as one
// gateway call, and the outcome is surfaced as a toast. On failure
// the form stays editable with the user's values intact.
func (uc *UseCase) SubmitNew(
	ctx context.Context, f *form.State[model.ClientDraft],
) error {
	return f.Submit(ctx, func(ctx context.Context, d model.ClientDraft) error {
		payload, err := d.Payload()
		if err != nil {
			return fmt.Errorf("normalizing client draft: %w", err)
		}
		created, err := uc.gw.Create(ctx, payload)
		if err != nil {
			uc.toasts.Push(toast.Danger, "Request failed",
				"The client could not be created. Please try again.")
			return err
		}
		uc.toasts.Push(toast.Success, "Client created",
			"The client was added successfully.")
		log.Info(ctx, "client created", slog.String("id", created.ID))
		return nil
	})
}
