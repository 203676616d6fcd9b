// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package validate realizes the per-field validation rule set shared
// by all forms. It wraps a go-playground/validator instance with the
// domain-specific rules (trimmed presence, phone format, calendar
// dates, cross-field date ordering) and renders violations as plain
// field-to-message maps, keyed by the JSON path of the offending
// field. Checking is pure: no I/O, no mutation of the checked
// snapshot, and never a panic for user input.
package validate

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sayara/garagedash/pkg/core/model"
)

var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Engine holds a configured validator instance. One Engine serves any
// number of forms concurrently; it keeps no per-check state.
type Engine struct {
	v   *validator.Validate
	now func() time.Time
}

// Option is a functional option for the validation Engine.
type Option func(e *Engine)

// WithNow overrides the clock consulted by the today-or-future date
// rule. Tests use it to pin the current calendar day.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New instantiates an Engine with all custom rules registered.
// Struct fields report under their json names, so nested violations
// come out as paths like "guarantee.startDate".
func New(opts ...Option) *Engine {
	e := &Engine{
		v:   validator.New(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	must(e.v.RegisterValidation("notblank", notBlank))
	must(e.v.RegisterValidation("phone", phone))
	must(e.v.RegisterValidation("dateymd", dateYMD))
	must(e.v.RegisterValidation("datefwd", e.dateTodayOrFuture))
	must(e.v.RegisterValidation("gtedate", dateNotBeforeSibling))
	return e
}

func must(err error) {
	if err != nil {
		panic(err) // duplicate or empty rule name, programmer error
	}
}

// Check validates the given snapshot against its validate tags and
// returns a map from field path to a human-readable message, or nil
// when the snapshot is valid. Cross-field rules see the full snapshot,
// so re-checking after any single edit keeps date ordering consistent.
func (e *Engine) Check(s any) map[string]string {
	err := e.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// non-struct input, programmer error
		panic(err)
	}
	msgs := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldPath(fe)
		if _, dup := msgs[name]; !dup {
			msgs[name] = message(fe)
		}
	}
	return msgs
}

// fieldPath strips the root struct name from the error namespace,
// leaving the json path of the field ("guarantee.endDate").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func phone(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

func dateYMD(fl validator.FieldLevel) bool {
	_, err := model.ParseDate(fl.Field().String())
	return err == nil
}

// dateTodayOrFuture accepts a date that is not strictly before the
// current calendar day. An unparsable value passes; the dateymd rule
// on the same field already reports the format problem.
func (e *Engine) dateTodayOrFuture(fl validator.FieldLevel) bool {
	d, err := model.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	return !d.Before(model.Day(e.now().UTC()))
}

// dateNotBeforeSibling accepts a date that is equal to or after the
// sibling date field named by the rule parameter, at day granularity.
// Missing or unparsable values on either side pass, deferring to the
// presence and format rules of the respective fields.
func dateNotBeforeSibling(fl validator.FieldLevel) bool {
	end, err := model.ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	sibling := fl.Parent()
	if sibling.Kind() == reflect.Ptr {
		sibling = sibling.Elem()
	}
	f := sibling.FieldByName(fl.Param())
	if !f.IsValid() || f.Kind() != reflect.String {
		return true
	}
	start, err := model.ParseDate(f.String())
	if err != nil {
		return true
	}
	return !end.Before(start)
}
