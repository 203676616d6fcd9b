// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package servicesuc contains the service catalog use case: listing
// the offerable service types and the create-service form flow. The
// catalog is small and unpaginated; a load replaces the cached list
// wholesale.
package servicesuc

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sayara/garagedash/pkg/core/form"
	"github.com/sayara/garagedash/pkg/core/gateway"
	"github.com/sayara/garagedash/pkg/core/log"
	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/sayara/garagedash/pkg/core/validate"
)

// UseCase drives the service catalog screens.
type UseCase struct {
	gw      gateway.Services
	checker *validate.Engine
	toasts  *toast.Center

	mu      sync.Mutex
	items   []model.Service
	loading bool
}

// New instantiates a services use case.
func New(
	gw gateway.Services,
	checker *validate.Engine,
	toasts *toast.Center,
) *UseCase {
	return &UseCase{gw: gw, checker: checker, toasts: toasts}
}

// Load fetches the catalog. A failed fetch keeps the previously
// cached entries and surfaces a toast.
func (uc *UseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	uc.loading = true
	uc.mu.Unlock()

	items, err := uc.gw.ListServices(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.loading = false
	if err != nil {
		uc.toasts.Push(toast.Danger, "Request failed",
			"Could not load the service catalog. Please try again.")
		log.Warn(ctx, "listing services failed", log.Err("error", err))
		return err
	}
	uc.items = items
	log.Debug(ctx, "services fetched", slog.Int("count", len(items)))
	return nil
}

// Items returns the cached catalog entries and whether a fetch is
// outstanding.
func (uc *UseCase) Items() ([]model.Service, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	items := make([]model.Service, len(uc.items))
	copy(items, uc.items)
	return items, uc.loading
}

// NewServiceForm starts an empty create-service form.
func (uc *UseCase) NewServiceForm() *form.State[model.ServiceDraft] {
	return form.New(model.ServiceDraft{}, uc.checker.Check)
}

// SubmitNew submits a create-service form as one gateway call and
// surfaces the outcome as a toast.
func (uc *UseCase) SubmitNew(
	ctx context.Context, f *form.State[model.ServiceDraft],
) error {
	return f.Submit(ctx, func(ctx context.Context, d model.ServiceDraft) error {
		created, err := uc.gw.CreateService(ctx, d.Payload())
		if err != nil {
			uc.toasts.Push(toast.Danger, "Request failed",
				"The service could not be created. Please try again.")
			return err
		}
		uc.toasts.Push(toast.Success, "Service created",
			"The service was added successfully.")
		log.Info(ctx, "service created",
			slog.String("id", created.ID), slog.String("name", created.Name))
		return nil
	})
}
