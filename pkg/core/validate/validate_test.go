// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package validate_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/validate"
	"github.com/stretchr/testify/suite"
)

// today is the pinned current day of all date rules in these tests.
var today = time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

type ValidateTestSuite struct {
	suite.Suite

	Engine *validate.Engine
}

func TestValidateTestSuite(t *testing.T) {
	suite.Run(t, &ValidateTestSuite{
		Engine: validate.New(validate.WithNow(func() time.Time {
			return today
		})),
	})
}

// validClientDraft returns a draft that passes every rule; tests
// break one field at a time.
func validClientDraft() model.ClientDraft {
	return model.ClientDraft{
		FullName:   "Hassan Karimi",
		Email:      "hassan@example.com",
		Phone:      "+989121234567",
		ClientType: "individual",
		CarModel:   "Peugeot 206",
		CarColor:   "white",
		Service:    "periodic maintenance",
		Guarantee: model.GuaranteeDraft{
			TypeGuarantee:     "parts",
			StartDate:         "2026-09-01",
			EndDate:           "2026-12-01",
			Terms:             "covers replaced parts",
			CoveredComponents: []string{"brake pads"},
		},
	}
}

func (vts *ValidateTestSuite) TestValidDraftHasNoViolations() {
	d := validClientDraft()
	vts.Nil(vts.Engine.Check(&d))
}

func (vts *ValidateTestSuite) TestBlankFieldsAreReported() {
	d := validClientDraft()
	d.FullName = "   "
	d.Email = ""
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "fullName")
	vts.Contains(errs, "email")
	vts.NotContains(errs, "phone")
}

func (vts *ValidateTestSuite) TestPhoneFormat() {
	for phone, ok := range map[string]bool{
		"+989121234567":    true,
		"02177665544":      true,
		"1234567":          true,  // 7 digits, minimum
		"123456789012345":  true,  // 15 digits, maximum
		"123456":           false, // too short
		"1234567890123456": false, // too long
		"+98 912 123 4567": false, // spaces
		"9121234+567":      false, // misplaced plus
		"phone":            false,
	} {
		d := validClientDraft()
		d.Phone = phone
		errs := vts.Engine.Check(&d)
		if ok {
			vts.NotContains(errs, "phone", "phone %q", phone)
		} else {
			vts.Contains(errs, "phone", "phone %q", phone)
		}
	}
}

func (vts *ValidateTestSuite) TestClientTypeEnum() {
	d := validClientDraft()
	d.ClientType = "organization"
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "clientType")
	vts.Contains(errs["clientType"], "individual")

	d.ClientType = "company"
	vts.Nil(vts.Engine.Check(&d))
}

func (vts *ValidateTestSuite) TestLengthBounds() {
	d := validClientDraft()
	d.FullName = "x"
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "fullName")

	d = validClientDraft()
	d.CarModel = strings.Repeat("x", 51)
	errs = vts.Engine.Check(&d)
	vts.Contains(errs, "carModel")

	d = validClientDraft()
	d.Guarantee.Terms = strings.Repeat("x", 201)
	errs = vts.Engine.Check(&d)
	vts.Contains(errs, "guarantee.terms")
}

func (vts *ValidateTestSuite) TestDateFormat() {
	d := validClientDraft()
	d.Guarantee.StartDate = "01-09-2026"
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "guarantee.startDate")
	vts.Contains(errs["guarantee.startDate"], "YYYY-MM-DD")
}

func (vts *ValidateTestSuite) TestStartDateMustBeTodayOrFuture() {
	d := validClientDraft()
	d.Guarantee.StartDate = "2026-08-27" // yesterday
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "guarantee.startDate")

	d.Guarantee.StartDate = "2026-08-28" // today passes
	d.Guarantee.EndDate = "2026-12-01"
	vts.Nil(vts.Engine.Check(&d))
}

func (vts *ValidateTestSuite) TestEndDateNotBeforeStartDate() {
	d := validClientDraft()
	d.Guarantee.StartDate = "2026-09-10"
	d.Guarantee.EndDate = "2026-09-09"
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "guarantee.endDate")
	vts.Contains(errs["guarantee.endDate"], "start date")

	// an equal end date is acceptable
	d.Guarantee.EndDate = "2026-09-10"
	vts.Nil(vts.Engine.Check(&d))
}

func (vts *ValidateTestSuite) TestCoveredComponentsNeedOneEntry() {
	d := validClientDraft()
	d.Guarantee.CoveredComponents = nil
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "guarantee.coveredComponents")

	d.Guarantee.CoveredComponents = []string{"  "}
	errs = vts.Engine.Check(&d)
	vts.NotEmpty(errs)
}

func (vts *ValidateTestSuite) TestAddGuaranteeDraftHasNoUpperBounds() {
	d := model.AddGuaranteeDraft{
		TypeGuarantee: strings.Repeat("x", 80),
		StartDate:     "2026-09-01",
		EndDate:       "2027-09-01",
		Terms:         strings.Repeat("x", 500),
	}
	vts.Nil(vts.Engine.Check(&d))

	d.Terms = ""
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "terms")
}

func (vts *ValidateTestSuite) TestServiceDraftBounds() {
	d := model.ServiceDraft{
		Name:        "Oil change",
		Description: "Replaces engine oil and the oil filter.",
	}
	vts.Nil(vts.Engine.Check(&d))

	d.Description = "too short"
	errs := vts.Engine.Check(&d)
	vts.Contains(errs, "description")
	vts.Contains(errs["description"], "10")
}
