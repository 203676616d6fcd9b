// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// DateLayout is the calendar-date form used everywhere a user types a
// date. The backend, in contrast, exchanges full ISO-8601 timestamps;
// ParseDate performs that normalization at the submission boundary.
const DateLayout = "2006-01-02"

// ParseDate parses a user-entered YYYY-MM-DD string into the UTC
// midnight of that calendar day. The layout must match exactly.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// Day truncates t to its calendar day, dropping the time-of-day.
// Date rules (today-or-future, end not before start) compare at this
// granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
