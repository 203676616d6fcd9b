// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// message renders one rule violation as a human-readable sentence.
// Messages stay generic over the field (the caller already keys them
// by field path) but include rule parameters such as length bounds.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		if fe.Kind() == reflect.Slice {
			return "select at least one entry"
		}
		return "this field is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("select at least %s entry", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone":
		return `must be a valid phone number (7 to 15 digits, optional leading "+")`
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "dateymd":
		return "must be a date in YYYY-MM-DD format"
	case "datefwd":
		return "must be today or a future date"
	case "gtedate":
		return "cannot be before " + humanizeField(fe.Param())
	default:
		return fe.Error()
	}
}

// humanizeField turns a Go field name parameter such as "StartDate"
// into the words a user would read, e.g. "start date".
func humanizeField(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
