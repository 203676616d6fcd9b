// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the transport-level records which this dashboard core
// exchanges with the remote backend. The backend owns identity and
// lifecycle of all records; this layer holds transient copies only and
// never assigns identifiers.
// This layer may not depend on outer layers, while all other layers
// may depend on it. It is acceptable to annotate structs in this
// package with framework dependent tags (e.g., json wire names or
// validation rules) since adding more tags does not complicate the
// definition of a struct, but can prevent unnecessary struct
// duplication in the adapter layer.
package model

import (
	"errors"
	"time"
)

// ClientType specifies the client type enum. The backend serializes
// it as a plain string, so the enum is string-backed.
type ClientType string

// Valid values for the ClientType enum.
const (
	ClientTypeIndividual ClientType = "individual"
	ClientTypeCompany    ClientType = "company"
)

// ErrUnknownClientType indicates that a given string may not be
// parsed as a valid/known client type. The caller of ParseClientType
// already knows the invalid string, so the error does not repeat it.
var ErrUnknownClientType = errors.New("unknown client type")

// Validate returns nil if the ClientType value is valid, otherwise
// it returns ErrUnknownClientType.
func (t ClientType) Validate() error {
	switch t {
	case ClientTypeIndividual, ClientTypeCompany:
		return nil
	default:
		return ErrUnknownClientType
	}
}

// ParseClientType parses the given string and returns a ClientType.
// For invalid strings, an empty ClientType and ErrUnknownClientType
// will be returned.
func ParseClientType(t string) (ClientType, error) {
	ct := ClientType(t)
	if err := ct.Validate(); err != nil {
		return "", err
	}
	return ct, nil
}

// OrderStats aggregates per-client order counters. These counters are
// computed by the backend; they are never derived locally, which is
// why mutations of nested guarantees trigger a full client re-fetch
// instead of a local patch.
type OrderStats struct {
	TotalOrders      int `json:"totalOrders"`
	ActiveGuarantees int `json:"activeGuarantees"`
}

// Client models one customer record as returned by the backend.
// OrderStats and Orders are only populated by the single-client
// fetch; the paginated listing returns them empty.
type Client struct {
	ID         string      `json:"_id"`
	FullName   string      `json:"fullName"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	ClientType ClientType  `json:"clientType"`
	IsDeleted  bool        `json:"isDeleted"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	OrderStats *OrderStats `json:"orderStats,omitempty"`
	Orders     []Order     `json:"orders,omitempty"`
}

// NewClient is the creation payload for a client. The backend creates
// the client together with its initial order (car and service fields)
// and that order's first guarantee in one request.
type NewClient struct {
	FullName   string       `json:"fullName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	ClientType ClientType   `json:"clientType"`
	CarModel   string       `json:"carModel"`
	CarColor   string       `json:"carColor"`
	Service    string       `json:"service"`
	Guarantee  NewGuarantee `json:"guarantee"`
}
