// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"strings"
	"time"
)

// Duration is a specialization of the time.Duration which can be
// decoded from YAML scalars and environment variables, using the
// time.ParseDuration format, and produces a more human-readable
// representation when marshaled using its MarshalText method.
type Duration time.Duration

// UnmarshalText reifies the encoding.TextUnmarshaler interface, so
// a byte slice (e.g., read from a YAML file or an environment
// variable) can be decoded as a time duration. The format of the
// `data` argument should conform to the time.ParseDuration expected
// format. In absence of errors, a nil error will be returned and only
// then, `d` receiver will be updated to contain the decoded duration.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface and
// serializes `d` according to the time.Duration string representation
// format, e.g., 2h3m4s, with this difference that zero trailing values
// will be dropped. That is, no 0s or 0m0s suffix may be included, for
// sake of more readability.
func (d Duration) MarshalText() ([]byte, error) {
	s := time.Duration(d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return []byte(s), nil
}

// Std converts `d` back to a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LogValue implements slog.LogValuer, logging `d` as a DurationValue.
func (d Duration) LogValue() slog.Value {
	return slog.DurationValue(time.Duration(d))
}
