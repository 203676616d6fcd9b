// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ordersuc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sayara/garagedash/pkg/core/log"
	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/toast"
)

// ErrAlreadyDecided indicates a StatusChange that was confirmed or
// cancelled before.
var ErrAlreadyDecided = errors.New("status change is already decided")

// StatusChange is one pending guarantee status toggle, awaiting the
// user's confirmation. The proposed status is the strict two-state
// flip of the current one: active proposes inactive, anything else
// proposes active. Nothing is sent until Confirm.
type StatusChange struct {
	uc          *UseCase
	orderID     string
	guaranteeID string
	decided     bool

	// Current and Proposed drive the confirmation prompt.
	Current  model.GuaranteeStatus
	Proposed model.GuaranteeStatus
}

// ProposeStatusChange prepares the confirmation step for toggling the
// identified guarantee of the loaded client. The guarantee must be
// present in the held record; mutating records the screen never
// displayed is rejected.
func (uc *UseCase) ProposeStatusChange(
	orderID, guaranteeID string,
) (*StatusChange, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.client == nil {
		return nil, ErrNotLoaded
	}
	for _, o := range uc.client.Orders {
		if o.ID != orderID {
			continue
		}
		for _, g := range o.Guarantee {
			if g.ID != guaranteeID {
				continue
			}
			return &StatusChange{
				uc:          uc,
				orderID:     orderID,
				guaranteeID: guaranteeID,
				Current:     g.Status,
				Proposed:    g.Status.Toggle(),
			}, nil
		}
	}
	return nil, fmt.Errorf(
		"guarantee %q not found under order %q", guaranteeID, orderID)
}

// Confirm performs the status change as one gateway call and then
// re-fetches the parent client record wholesale, since the active
// guarantee counters must come from the backend. A StatusChange can
// be decided once.
func (sc *StatusChange) Confirm(ctx context.Context) error {
	if sc.decided {
		return ErrAlreadyDecided
	}
	sc.decided = true
	uc := sc.uc
	err := uc.orders.SetGuaranteeStatus(
		ctx, sc.orderID, sc.guaranteeID, sc.Proposed)
	if err != nil {
		uc.toasts.Push(toast.Danger, "Request failed",
			"The guarantee status could not be changed. Please try again.")
		log.Warn(ctx, "guarantee status change failed",
			slog.String("order", sc.orderID),
			slog.String("guarantee", sc.guaranteeID),
			log.Err("error", err))
		return err
	}
	uc.toasts.Push(toast.Success, "Status updated",
		"The guarantee status was updated successfully.")
	log.Info(ctx, "guarantee status changed",
		slog.String("order", sc.orderID),
		slog.String("guarantee", sc.guaranteeID),
		slog.String("status", string(sc.Proposed)))
	return uc.refetch(ctx)
}

// Cancel discards the pending change without any network activity.
func (sc *StatusChange) Cancel() {
	sc.decided = true
}
