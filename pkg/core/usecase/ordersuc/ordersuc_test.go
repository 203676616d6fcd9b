// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ordersuc_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sayara/garagedash/pkg/core/gateway"
	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/sayara/garagedash/pkg/core/usecase/ordersuc"
	"github.com/sayara/garagedash/pkg/core/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend implements both the Clients and Orders ports over one
// mutable client record, mimicking the backend-owned aggregates.
type fakeBackend struct {
	mu         sync.Mutex
	client     model.Client
	getCalls   int
	getErr     error
	statusErr  error
	statusSets []model.GuaranteeStatus
	created    []model.NewGuarantee
}

func (f *fakeBackend) List(
	context.Context, gateway.ListParams,
) (*gateway.ClientsPage, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBackend) Create(
	context.Context, model.NewClient,
) (*model.Client, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBackend) Get(
	_ context.Context, clientID string,
) (*model.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if clientID != f.client.ID {
		return nil, errors.New("client not found")
	}
	c := f.client
	return &c, nil
}

func (f *fakeBackend) CreateGuarantee(
	_ context.Context, orderID string, g model.NewGuarantee,
) (*model.Guarantee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, g)
	return &model.Guarantee{ID: "g-new", TypeGuarantee: g.TypeGuarantee}, nil
}

func (f *fakeBackend) SetGuaranteeStatus(
	_ context.Context, orderID, guaranteeID string,
	status model.GuaranteeStatus,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusSets = append(f.statusSets, status)
	for oi := range f.client.Orders {
		if f.client.Orders[oi].ID != orderID {
			continue
		}
		for gi := range f.client.Orders[oi].Guarantee {
			if f.client.Orders[oi].Guarantee[gi].ID == guaranteeID {
				f.client.Orders[oi].Guarantee[gi].Status = status
				return nil
			}
		}
	}
	return errors.New("guarantee not found")
}

func seededBackend() *fakeBackend {
	return &fakeBackend{client: model.Client{
		ID:       "c-1",
		FullName: "Hassan Karimi",
		Orders: []model.Order{
			{
				ID: "o-1",
				Guarantee: []model.Guarantee{
					{ID: "g-1", TypeGuarantee: "parts",
						Status: model.GuaranteeActive},
					{ID: "g-2", TypeGuarantee: "labor",
						Status: model.GuaranteeInactive},
				},
			},
			{
				ID: "o-2",
				Guarantee: []model.Guarantee{
					{ID: "g-3", TypeGuarantee: "paint",
						Status: model.GuaranteeActive},
				},
			},
		},
	}}
}

func newUseCase(
	t *testing.T, gw *fakeBackend,
) (*ordersuc.UseCase, *toast.Center) {
	t.Helper()
	toasts := toast.NewCenter()
	return ordersuc.New(gw, gw, validate.New(), toasts), toasts
}

func TestLoadReplacesSnapshotWholesale(t *testing.T) {
	gw := seededBackend()
	uc, _ := newUseCase(t, gw)
	require.NoError(t, uc.Load(context.Background(), "c-1"))

	c, loading := uc.Client()
	require.NotNil(t, c)
	assert.False(t, loading)
	assert.Equal(t, "Hassan Karimi", c.FullName)
	assert.Len(t, c.Orders, 2)
}

func TestLoadFailureKeepsPreviousSnapshot(t *testing.T) {
	gw := seededBackend()
	uc, toasts := newUseCase(t, gw)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx, "c-1"))

	gw.mu.Lock()
	gw.getErr = errors.New("connection refused")
	gw.mu.Unlock()
	assert.Error(t, uc.Load(ctx, "c-1"))

	c, loading := uc.Client()
	require.NotNil(t, c, "the previous snapshot stays on display")
	assert.False(t, loading)

	pending := toasts.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, toast.Danger, pending[0].Kind)
}

func TestGuaranteesFlattenAcrossOrders(t *testing.T) {
	gw := seededBackend()
	uc, _ := newUseCase(t, gw)
	assert.Nil(t, uc.Guarantees(), "nothing flattened before a load")

	require.NoError(t, uc.Load(context.Background(), "c-1"))
	gs := uc.Guarantees()
	require.Len(t, gs, 3)
	assert.Equal(t, "g-1", gs[0].ID)
	assert.Equal(t, "g-3", gs[2].ID)
}

func TestProposeStatusChange(t *testing.T) {
	gw := seededBackend()
	uc, _ := newUseCase(t, gw)
	ctx := context.Background()

	_, err := uc.ProposeStatusChange("o-1", "g-1")
	assert.ErrorIs(t, err, ordersuc.ErrNotLoaded)

	require.NoError(t, uc.Load(ctx, "c-1"))

	sc, err := uc.ProposeStatusChange("o-1", "g-1")
	require.NoError(t, err)
	assert.Equal(t, model.GuaranteeActive, sc.Current)
	assert.Equal(t, model.GuaranteeInactive, sc.Proposed)

	sc, err = uc.ProposeStatusChange("o-1", "g-2")
	require.NoError(t, err)
	assert.Equal(t, model.GuaranteeInactive, sc.Current)
	assert.Equal(t, model.GuaranteeActive, sc.Proposed)

	_, err = uc.ProposeStatusChange("o-1", "g-404")
	assert.Error(t, err)
}

func TestConfirmAppliesChangeAndRefetches(t *testing.T) {
	gw := seededBackend()
	uc, toasts := newUseCase(t, gw)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx, "c-1"))
	getCallsBefore := gw.getCalls

	sc, err := uc.ProposeStatusChange("o-1", "g-1")
	require.NoError(t, err)
	require.NoError(t, sc.Confirm(ctx))

	assert.Equal(t, []model.GuaranteeStatus{model.GuaranteeInactive},
		gw.statusSets)
	assert.Equal(t, getCallsBefore+1, gw.getCalls,
		"the parent client is re-fetched wholesale")

	// the refreshed snapshot carries the new status
	gs := uc.Guarantees()
	assert.Equal(t, model.GuaranteeInactive, gs[0].Status)

	pending := toasts.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, toast.Success, pending[0].Kind)

	assert.ErrorIs(t, sc.Confirm(ctx), ordersuc.ErrAlreadyDecided)
}

func TestCancelDiscardsChange(t *testing.T) {
	gw := seededBackend()
	uc, _ := newUseCase(t, gw)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx, "c-1"))

	sc, err := uc.ProposeStatusChange("o-1", "g-1")
	require.NoError(t, err)
	sc.Cancel()
	assert.ErrorIs(t, sc.Confirm(ctx), ordersuc.ErrAlreadyDecided)
	assert.Empty(t, gw.statusSets, "no network call after a cancel")
}

func TestSubmitGuaranteeNormalizesAndRefetches(t *testing.T) {
	gw := seededBackend()
	uc, _ := newUseCase(t, gw)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx, "c-1"))
	getCallsBefore := gw.getCalls

	f := uc.NewGuaranteeForm()
	f.Replace(model.AddGuaranteeDraft{
		TypeGuarantee: "labor",
		StartDate:     "2100-01-01",
		EndDate:       "2100-06-01",
		Terms:         "covers labor",
	})
	require.NoError(t, uc.SubmitGuarantee(ctx, "o-1", f))

	require.Len(t, gw.created, 1)
	assert.Equal(
		t, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
		gw.created[0].StartDate,
	)
	assert.Empty(t, gw.created[0].CoveredComponents,
		"the add-guarantee dialog carries no component selection")
	assert.Equal(t, getCallsBefore+1, gw.getCalls)
}

func TestSubmitGuaranteeRejectsInvalidDraft(t *testing.T) {
	gw := seededBackend()
	uc, _ := newUseCase(t, gw)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx, "c-1"))

	f := uc.NewGuaranteeForm()
	f.Replace(model.AddGuaranteeDraft{
		TypeGuarantee: "labor",
		StartDate:     "2100-06-01",
		EndDate:       "2100-01-01", // before the start date
		Terms:         "covers labor",
	})
	assert.Error(t, uc.SubmitGuarantee(ctx, "o-1", f))
	assert.Empty(t, gw.created)
	assert.Contains(t, f.Errors(), "endDate")
}
