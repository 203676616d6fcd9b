// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package ordersuc contains the client-with-orders use case: the
// detail view of one client including all orders and their nested
// guarantees, the add-guarantee form flow, and the guarantee status
// toggle. Every mutation under this view follows the invalidate-and-
// refetch rule: the parent client record is re-fetched wholesale
// afterwards, because the aggregate counters (active guarantee count)
// are computed by the backend and partial local patching would be
// unsafe.
package ordersuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sayara/garagedash/pkg/core/form"
	"github.com/sayara/garagedash/pkg/core/gateway"
	"github.com/sayara/garagedash/pkg/core/log"
	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/sayara/garagedash/pkg/core/validate"
)

// ErrNotLoaded indicates an operation that needs the client record
// before it has been fetched.
var ErrNotLoaded = errors.New("client record is not loaded")

// UseCase drives one client's detail screen. One instance backs one
// mounted screen and holds that screen's transient record copy.
type UseCase struct {
	clients gateway.Clients
	orders  gateway.Orders
	checker *validate.Engine
	toasts  *toast.Center

	mu      sync.Mutex
	client  *model.Client
	loading bool
}

// New instantiates a client-with-orders use case.
func New(
	clients gateway.Clients,
	orders gateway.Orders,
	checker *validate.Engine,
	toasts *toast.Center,
) *UseCase {
	return &UseCase{
		clients: clients,
		orders:  orders,
		checker: checker,
		toasts:  toasts,
	}
}

// Load fetches the full client record and replaces the held snapshot
// wholesale when the fetch resolves; there is no field-by-field
// merge. While the fetch is outstanding the view is in a loading
// state. A failed fetch clears the loading flag, keeps whatever
// snapshot was shown before, and surfaces a toast.
func (uc *UseCase) Load(ctx context.Context, clientID string) error {
	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()

	c, err := uc.clients.Get(ctx, clientID)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loading = false
	if err != nil {
		uc.toasts.Push(toast.Danger, "Request failed",
			"Could not load the client record. Please try again.")
		log.Warn(ctx, "loading client failed",
			slog.String("client", clientID), log.Err("error", err))
		return err
	}
	uc.client = c
	log.Debug(ctx, "client loaded",
		slog.String("client", c.ID), slog.Int("orders", len(c.Orders)))
	return nil
}

// Client returns the held record copy (nil before the first
// successful Load) and whether a fetch is outstanding.
func (uc *UseCase) Client() (*model.Client, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.client == nil {
		return nil, uc.loading
	}
	c := *uc.client
	return &c, uc.loading
}

// Guarantees flattens the loaded record's guarantees across all of
// its orders, in order, for display and for the report exporter.
func (uc *UseCase) Guarantees() []model.Guarantee {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.client == nil {
		return nil
	}
	var gs []model.Guarantee
	for _, o := range uc.client.Orders {
		gs = append(gs, o.Guarantee...)
	}
	return gs
}

// NewGuaranteeForm starts an empty add-guarantee form for the dialog
// attached to one order.
func (uc *UseCase) NewGuaranteeForm() *form.State[model.AddGuaranteeDraft] {
	return form.New(model.AddGuaranteeDraft{}, uc.checker.Check)
}

// SubmitGuarantee submits an add-guarantee form against the given
// order. Dates are normalized at this point. On success the parent
// client record is re-fetched so the new guarantee and the updated
// aggregates come from the backend.
func (uc *UseCase) SubmitGuarantee(
	ctx context.Context,
	orderID string,
	f *form.State[model.AddGuaranteeDraft],
) error {
	return f.Submit(ctx, func(ctx context.Context, d model.AddGuaranteeDraft) error {
		payload, err := d.Payload()
		if err != nil {
			return fmt.Errorf("normalizing guarantee draft: %w", err)
		}
		created, err := uc.orders.CreateGuarantee(ctx, orderID, payload)
		if err != nil {
			uc.toasts.Push(toast.Danger, "Request failed",
				"The guarantee could not be added. Please try again.")
			return err
		}
		uc.toasts.Push(toast.Success, "Guarantee added",
			"The guarantee was added successfully.")
		log.Info(ctx, "guarantee created",
			slog.String("order", orderID), slog.String("id", created.ID))
		return uc.refetch(ctx)
	})
}

// refetch re-loads the currently held client, if any. Used after
// mutations that change nested records or aggregates.
func (uc *UseCase) refetch(ctx context.Context) error {
	uc.mu.Lock()
	var id string
	if uc.client != nil {
		id = uc.client.ID
	}
	uc.mu.Unlock()
	if id == "" {
		return nil
	}
	return uc.Load(ctx, id)
}
