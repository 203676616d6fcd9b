// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package reportuc contains the guarantees report use case: rendering
// an already-loaded sequence of guarantee records into a paginated
// tabular PDF document, entirely locally. It performs no fetching and
// never mutates the records it reads; an empty input sequence is
// reported before any rendering starts.
package reportuc

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sayara/garagedash/pkg/core/model"
)

// ErrNoGuarantees indicates an export attempt over an empty record
// sequence; no document is generated.
var ErrNoGuarantees = errors.New("no guarantees to export")

// cellDateLayout renders dates in the report as MM/DD/YYYY.
const cellDateLayout = "01/02/2006"

// UseCase renders guarantee reports. The clock only feeds the
// generation-timestamp footer.
type UseCase struct {
	now func() time.Time
}

// Option is a functional option for the report use case.
type Option func(uc *UseCase) error

// WithNow overrides the clock used for the footer timestamp.
func WithNow(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("nil clock")
		}
		uc.now = now
		return nil
	}
}

// New instantiates a report use case.
func New(opts ...Option) (*UseCase, error) {
	uc := &UseCase{now: time.Now}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return uc, nil
}

// Export writes a PDF report over the given guarantees to w: one
// table row per guarantee carrying its type, start and end dates,
// terms, and an Active/Inactive status label, followed by a
// generation-date footer. Rendering errors are returned, never
// retried; the caller reports them to the user.
func (uc *UseCase) Export(gs []model.Guarantee, w io.Writer) error {
	if len(gs) == 0 {
		return ErrNoGuarantees
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, "Guarantees Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// column widths sum to the printable width of an A4 portrait page
	widths := []float64{38, 26, 26, 70, 30}
	headers := []string{"Type", "Start Date", "End Date", "Terms", "Status"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(242, 242, 242)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 9, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, g := range gs {
		pdf.CellFormat(widths[0], 8, g.TypeGuarantee, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, g.StartDate.Format(cellDateLayout),
			"1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, g.EndDate.Format(cellDateLayout),
			"1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 8, g.Terms, "1", 0, "L", false, 0, "")
		if g.Status == model.GuaranteeActive {
			pdf.SetTextColor(76, 175, 80)
		} else {
			pdf.SetTextColor(244, 67, 54)
		}
		pdf.CellFormat(widths[4], 8, statusLabel(g.Status),
			"1", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(102, 102, 102)
	footer := "Exported: " + uc.now().Format(cellDateLayout)
	pdf.CellFormat(0, 6, footer, "", 1, "R", false, 0, "")

	if pdf.Err() {
		return fmt.Errorf("rendering guarantees report: %w", pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing guarantees report: %w", err)
	}
	return nil
}

// statusLabel localizes the status for display; any status other
// than active (including the absent one) reads as inactive, matching
// the two-state display rule.
func statusLabel(s model.GuaranteeStatus) string {
	if s == model.GuaranteeActive {
		return "Active"
	}
	return "Inactive"
}
