// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// Order models a single service engagement for a client, owning zero
// or more guarantees. The wire name of the guarantees list is the
// singular "guarantee", matching the backend schema.
type Order struct {
	ID        string      `json:"_id"`
	ClientID  string      `json:"clientId,omitempty"`
	CarModel  string      `json:"carModel"`
	CarColor  string      `json:"carColor"`
	Service   string      `json:"service"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Guarantee []Guarantee `json:"guarantee"`
}
