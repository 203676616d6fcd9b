// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsuc

import (
	"errors"
	"fmt"
	"time"
)

// Option is a functional option for the clients use case.
type Option func(uc *UseCase) error

// WithDebounce option configures how long the search input stays
// quiet before a fetch is triggered. This option may be passed to the
// New() function; the default is 500ms.
func WithDebounce(d time.Duration) Option {
	return func(uc *UseCase) error {
		if d <= 0 {
			return fmt.Errorf("debounce (%d) is not positive", int64(d))
		}
		if uc.debounce != 0 {
			return errors.New("debounce is already configured")
		}
		uc.debounce = d
		return nil
	}
}

// WithPageSize option overrides the initial page size of the listing.
// The default is 10 records per page.
func WithPageSize(limit int) Option {
	return func(uc *UseCase) error {
		if limit < 1 {
			return fmt.Errorf("page size (%d) is not positive", limit)
		}
		uc.state.Limit = limit
		return nil
	}
}
