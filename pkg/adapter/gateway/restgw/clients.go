// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restgw

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/sayara/garagedash/pkg/core/gateway"
	"github.com/sayara/garagedash/pkg/core/model"
)

// Response envelopes are private to this adapter; the port exposes
// only the extracted payload shapes.

type clientsListEnvelope struct {
	Data struct {
		Clients    []model.Client `json:"clients"`
		Pagination struct {
			TotalClients int `json:"totalClients"`
			Limit        int `json:"limit"`
			Offset       int `json:"offset"`
		} `json:"pagination"`
	} `json:"data"`
	Total int `json:"total"`
}

type clientEnvelope struct {
	Data model.Client `json:"data"`
}

// List fetches one page of clients via GET /clients. The search term
// is only forwarded when non-empty.
func (g *Gateway) List(
	ctx context.Context, p gateway.ListParams,
) (*gateway.ClientsPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	var env clientsListEnvelope
	if err := g.do(ctx, "GET", "/clients", q, nil, &env); err != nil {
		return nil, err
	}
	return &gateway.ClientsPage{
		Clients: env.Data.Clients,
		Total:   env.Data.Pagination.TotalClients,
		Limit:   env.Data.Pagination.Limit,
		Offset:  env.Data.Pagination.Offset,
	}, nil
}

// Create stores a new client with its initial order and guarantee via
// POST /clients.
func (g *Gateway) Create(
	ctx context.Context, c model.NewClient,
) (*model.Client, error) {
	var env clientEnvelope
	if err := g.do(ctx, "POST", "/clients", nil, c, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// Get fetches one client wholesale via GET /clients/{clientId},
// including orders, nested guarantees, and order stats.
func (g *Gateway) Get(
	ctx context.Context, clientID string,
) (*model.Client, error) {
	if clientID == "" {
		return nil, errors.New("empty client id")
	}
	var env clientEnvelope
	err := g.do(ctx, "GET", "/clients/"+url.PathEscape(clientID), nil, nil, &env)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}
