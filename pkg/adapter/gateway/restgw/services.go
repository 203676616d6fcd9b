// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restgw

import (
	"context"

	"github.com/sayara/garagedash/pkg/core/model"
)

type servicesEnvelope struct {
	Data []model.Service `json:"data"`
}

type serviceEnvelope struct {
	Data model.Service `json:"data"`
}

// List fetches the whole service catalog via GET /services.
func (g *Gateway) ListServices(ctx context.Context) ([]model.Service, error) {
	var env servicesEnvelope
	if err := g.do(ctx, "GET", "/services", nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateService stores a new catalog entry via POST /services.
func (g *Gateway) CreateService(
	ctx context.Context, s model.NewService,
) (*model.Service, error) {
	var env serviceEnvelope
	if err := g.do(ctx, "POST", "/services", nil, s, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
