// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package servicesuc_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/sayara/garagedash/pkg/core/usecase/servicesuc"
	"github.com/sayara/garagedash/pkg/core/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServices struct {
	mu      sync.Mutex
	items   []model.Service
	created []model.NewService
	err     error
}

func (f *fakeServices) ListServices(
	context.Context,
) ([]model.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	items := make([]model.Service, len(f.items))
	copy(items, f.items)
	return items, nil
}

func (f *fakeServices) CreateService(
	_ context.Context, s model.NewService,
) (*model.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, s)
	return &model.Service{ID: "s-1", Name: s.Name}, nil
}

func newUseCase(
	gw *fakeServices,
) (*servicesuc.UseCase, *toast.Center) {
	toasts := toast.NewCenter()
	return servicesuc.New(gw, validate.New(), toasts), toasts
}

func TestLoadReplacesCatalog(t *testing.T) {
	gw := &fakeServices{items: []model.Service{
		{ID: "s-1", Name: "Oil change"},
		{ID: "s-2", Name: "Brake inspection"},
	}}
	uc, _ := newUseCase(gw)
	require.NoError(t, uc.Load(context.Background()))

	items, loading := uc.Items()
	assert.False(t, loading)
	require.Len(t, items, 2)
	assert.Equal(t, "Oil change", items[0].Name)
}

func TestLoadFailureKeepsCachedEntries(t *testing.T) {
	gw := &fakeServices{items: []model.Service{{ID: "s-1"}}}
	uc, toasts := newUseCase(gw)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx))

	gw.mu.Lock()
	gw.err = errors.New("connection refused")
	gw.mu.Unlock()
	assert.Error(t, uc.Load(ctx))

	items, loading := uc.Items()
	assert.False(t, loading)
	assert.Len(t, items, 1, "cached entries survive a failed refresh")

	pending := toasts.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, toast.Danger, pending[0].Kind)
}

func TestSubmitNewService(t *testing.T) {
	gw := &fakeServices{}
	uc, toasts := newUseCase(gw)
	f := uc.NewServiceForm()
	f.Replace(model.ServiceDraft{
		Name:        "Oil change",
		Description: "Replaces engine oil and the oil filter.",
	})
	require.NoError(t, uc.SubmitNew(context.Background(), f))

	require.Len(t, gw.created, 1)
	assert.Equal(t, "Oil change", gw.created[0].Name)

	pending := toasts.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, toast.Success, pending[0].Kind)
}

func TestSubmitNewServiceRejectsInvalidDraft(t *testing.T) {
	gw := &fakeServices{}
	uc, _ := newUseCase(gw)
	f := uc.NewServiceForm()
	f.Replace(model.ServiceDraft{Name: "x", Description: "short"})
	assert.Error(t, uc.SubmitNew(context.Background(), f))
	assert.Empty(t, gw.created)
	assert.Contains(t, f.Errors(), "name")
	assert.Contains(t, f.Errors(), "description")
}
