// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package gateway declares the port through which the use cases reach
// the remote backend. One method corresponds to exactly one backend
// request; implementations perform no retries, no batching, and no
// caching. The REST implementation lives in pkg/adapter/gateway and
// tests substitute it freely since use cases only see these
// interfaces.
package gateway

import (
	"context"

	"github.com/sayara/garagedash/pkg/core/model"
)

// ListParams selects one page of the clients listing. Search is a
// free-text term matched by the backend against name and phone; the
// empty string means unfiltered.
//
// There is deliberately no sort selector here: the list endpoint does
// not take one, even though the list view accepts sort input as UI
// state (see clientsuc). Keeping the gap visible in this type is
// preferred over silently forwarding a parameter the backend ignores.
type ListParams struct {
	Limit  int
	Offset int
	Search string
}

// ClientsPage is one fetched page of clients plus the pagination
// metadata reported by the backend.
type ClientsPage struct {
	Clients []model.Client
	Total   int
	Limit   int
	Offset  int
}

// Clients is the port for client records.
type Clients interface {
	// List fetches one page of clients.
	List(ctx context.Context, p ListParams) (*ClientsPage, error)
	// Create stores a new client with its initial order and
	// guarantee, all identifiers being assigned by the backend.
	Create(ctx context.Context, c model.NewClient) (*model.Client, error)
	// Get fetches a single client wholesale, including all orders,
	// their nested guarantees, and the aggregate order stats.
	Get(ctx context.Context, clientID string) (*model.Client, error)
}

// Orders is the port for order-scoped guarantee mutations.
type Orders interface {
	// CreateGuarantee attaches a further guarantee to an existing
	// order. The payload carries no status; the backend assigns it.
	CreateGuarantee(ctx context.Context, orderID string, g model.NewGuarantee) (*model.Guarantee, error)
	// SetGuaranteeStatus changes one guarantee's lifecycle status.
	SetGuaranteeStatus(ctx context.Context, orderID, guaranteeID string, status model.GuaranteeStatus) error
}

// Services is the port for the service catalog. Method names carry
// the Service(s) suffix so one adapter struct can implement this port
// next to Clients.
type Services interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, s model.NewService) (*model.Service, error)
}
