// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

// Drafts are the editable snapshots held by form state while the user
// is still typing. Dates stay in their YYYY-MM-DD calendar form here
// and are only normalized to full timestamps by the Payload methods,
// i.e. at submission time. The validate tags reference both standard
// rules and the custom rules registered by pkg/core/validate
// (notblank, phone, dateymd, datefwd, gtedate).

// GuaranteeDraft is the guarantee section of the create-client form.
type GuaranteeDraft struct {
	TypeGuarantee     string   `json:"typeGuarantee" validate:"notblank,max=50"`
	StartDate         string   `json:"startDate" validate:"notblank,dateymd,datefwd"`
	EndDate           string   `json:"endDate" validate:"notblank,dateymd,gtedate=StartDate"`
	Terms             string   `json:"terms" validate:"notblank,max=200"`
	CoveredComponents []string `json:"coveredComponents" validate:"required,min=1,dive,notblank"`
	Products          []string `json:"products" validate:"omitempty,dive,notblank"`
}

// Payload normalizes the draft into the wire-level creation payload,
// converting both calendar dates to UTC midnight timestamps. It must
// only be called on a draft that already passed validation; a date
// that fails to parse is reported as an error anyway.
func (d GuaranteeDraft) Payload() (NewGuarantee, error) {
	start, err := ParseDate(d.StartDate)
	if err != nil {
		return NewGuarantee{}, err
	}
	end, err := ParseDate(d.EndDate)
	if err != nil {
		return NewGuarantee{}, err
	}
	return NewGuarantee{
		TypeGuarantee:     d.TypeGuarantee,
		StartDate:         start,
		EndDate:           end,
		Terms:             d.Terms,
		CoveredComponents: d.CoveredComponents,
		Products:          d.Products,
	}, nil
}

// ClientDraft is the editable snapshot of the create-client form,
// covering the client fields, its initial order (car and service),
// and the nested first guarantee.
type ClientDraft struct {
	FullName   string         `json:"fullName" validate:"notblank,min=2,max=100"`
	Email      string         `json:"email" validate:"notblank,email"`
	Phone      string         `json:"phone" validate:"notblank,phone"`
	ClientType string         `json:"clientType" validate:"notblank,oneof=individual company"`
	CarModel   string         `json:"carModel" validate:"notblank,max=50"`
	CarColor   string         `json:"carColor" validate:"notblank,max=30"`
	Service    string         `json:"service" validate:"notblank,max=100"`
	Guarantee  GuaranteeDraft `json:"guarantee"`
}

// Payload normalizes the draft into the wire-level creation payload.
func (d ClientDraft) Payload() (NewClient, error) {
	g, err := d.Guarantee.Payload()
	if err != nil {
		return NewClient{}, err
	}
	return NewClient{
		FullName:   d.FullName,
		Email:      d.Email,
		Phone:      d.Phone,
		ClientType: ClientType(d.ClientType),
		CarModel:   d.CarModel,
		CarColor:   d.CarColor,
		Service:    d.Service,
		Guarantee:  g,
	}, nil
}

// AddGuaranteeDraft is the narrower add-guarantee dialog form used
// when attaching a further guarantee to an existing order. It has no
// component or product selection and no upper length bounds beyond
// presence, matching the dialog's reduced schema.
type AddGuaranteeDraft struct {
	TypeGuarantee string `json:"typeGuarantee" validate:"notblank"`
	StartDate     string `json:"startDate" validate:"notblank,dateymd,datefwd"`
	EndDate       string `json:"endDate" validate:"notblank,dateymd,gtedate=StartDate"`
	Terms         string `json:"terms" validate:"notblank"`
}

// Payload normalizes the draft into the wire-level creation payload.
func (d AddGuaranteeDraft) Payload() (NewGuarantee, error) {
	start, err := ParseDate(d.StartDate)
	if err != nil {
		return NewGuarantee{}, err
	}
	end, err := ParseDate(d.EndDate)
	if err != nil {
		return NewGuarantee{}, err
	}
	return NewGuarantee{
		TypeGuarantee: d.TypeGuarantee,
		StartDate:     start,
		EndDate:       end,
		Terms:         d.Terms,
	}, nil
}

// ServiceDraft is the editable snapshot of the create-service form.
type ServiceDraft struct {
	Name        string `json:"name" validate:"notblank,min=2,max=50"`
	Description string `json:"description" validate:"notblank,min=10,max=500"`
}

// Payload returns the wire-level creation payload. Service drafts
// carry no dates, so no normalization can fail.
func (d ServiceDraft) Payload() NewService {
	return NewService{Name: d.Name, Description: d.Description}
}
