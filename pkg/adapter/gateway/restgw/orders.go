// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restgw

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sayara/garagedash/pkg/core/model"
)

type guaranteeEnvelope struct {
	Data model.Guarantee `json:"data"`
}

// CreateGuarantee attaches a guarantee to an order via
// POST /orders/{orderId}/guarantee.
func (g *Gateway) CreateGuarantee(
	ctx context.Context, orderID string, ng model.NewGuarantee,
) (*model.Guarantee, error) {
	if orderID == "" {
		return nil, errors.New("empty order id")
	}
	path := fmt.Sprintf("/orders/%s/guarantee", url.PathEscape(orderID))
	var env guaranteeEnvelope
	if err := g.do(ctx, "POST", path, nil, ng, &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// SetGuaranteeStatus changes a guarantee's status via
// PATCH /orders/{orderId}/guarantee/{guaranteeId}/status.
// Only the documented two statuses are accepted; the aggregate
// counters affected by the change are not patched locally, callers
// re-fetch the parent client instead.
func (g *Gateway) SetGuaranteeStatus(
	ctx context.Context,
	orderID, guaranteeID string,
	status model.GuaranteeStatus,
) error {
	if orderID == "" || guaranteeID == "" {
		return errors.New("empty order or guarantee id")
	}
	if err := status.Validate(); err != nil {
		return err
	}
	path := fmt.Sprintf(
		"/orders/%s/guarantee/%s/status",
		url.PathEscape(orderID), url.PathEscape(guaranteeID),
	)
	body := struct {
		Status model.GuaranteeStatus `json:"status"`
	}{Status: status}
	return g.do(ctx, "PATCH", path, nil, body, nil)
}
