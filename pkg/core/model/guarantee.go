// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"time"
)

// GuaranteeStatus specifies the guarantee lifecycle status enum.
// A freshly created guarantee carries no status (the backend assigns
// one), hence the empty string is a valid wire value on creation
// responses but not an acceptable input for a status change.
type GuaranteeStatus string

// Valid values for the GuaranteeStatus enum.
const (
	GuaranteeActive   GuaranteeStatus = "active"
	GuaranteeInactive GuaranteeStatus = "inactive"
)

// ErrUnknownGuaranteeStatus indicates that a given string may not be
// parsed as a valid/known guarantee status.
var ErrUnknownGuaranteeStatus = errors.New("unknown guarantee status")

// Validate returns nil if the GuaranteeStatus value is valid,
// otherwise it returns ErrUnknownGuaranteeStatus.
func (s GuaranteeStatus) Validate() error {
	switch s {
	case GuaranteeActive, GuaranteeInactive:
		return nil
	default:
		return ErrUnknownGuaranteeStatus
	}
}

// ParseGuaranteeStatus parses the given string and returns a
// GuaranteeStatus. For invalid strings, an empty GuaranteeStatus and
// ErrUnknownGuaranteeStatus will be returned.
func ParseGuaranteeStatus(s string) (GuaranteeStatus, error) {
	gs := GuaranteeStatus(s)
	if err := gs.Validate(); err != nil {
		return "", err
	}
	return gs, nil
}

// Toggle returns the status which a status-change operation should
// propose for a guarantee currently carrying the s status. The flip
// is strictly two-state: an active guarantee proposes inactive and
// any other current value (inactive, absent, or unknown) proposes
// active.
func (s GuaranteeStatus) Toggle() GuaranteeStatus {
	if s == GuaranteeActive {
		return GuaranteeInactive
	}
	return GuaranteeActive
}

// Guarantee models one warranty record as attached to an order.
// Both the products and coveredComponents lists are carried as the
// backend returns them; neither is treated as authoritative over the
// other.
type Guarantee struct {
	ID                string          `json:"_id"`
	Products          []string        `json:"products,omitempty"`
	TypeGuarantee     string          `json:"typeGuarantee"`
	StartDate         time.Time       `json:"startDate"`
	EndDate           time.Time       `json:"endDate"`
	Terms             string          `json:"terms"`
	Status            GuaranteeStatus `json:"status,omitempty"`
	CoveredComponents []string        `json:"coveredComponents,omitempty"`
}

// NewGuarantee is the creation payload for a guarantee. It carries no
// status; the backend decides the initial lifecycle state. Dates are
// full timestamps at this point, normalized from the calendar-date
// form the user typed (see GuaranteeDraft).
type NewGuarantee struct {
	TypeGuarantee     string    `json:"typeGuarantee"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	Terms             string    `json:"terms"`
	CoveredComponents []string  `json:"coveredComponents,omitempty"`
	Products          []string  `json:"products,omitempty"`
}
