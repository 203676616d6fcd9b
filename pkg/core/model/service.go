// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Service models a catalog entry describing an offerable service
// type, independent of any client.
type Service struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewService is the creation payload for a catalog entry.
type NewService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
