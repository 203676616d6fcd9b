// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"errors"
	"fmt"
	"os"

	"github.com/sayara/garagedash/pkg/core/usecase/ordersuc"
	"github.com/sayara/garagedash/pkg/core/usecase/reportuc"
	"github.com/spf13/cobra"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report <client-id>",
	Short: "Export the guarantees of one client as a PDF document",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	ouc := ordersuc.New(gw, gw, checker, toasts)
	if err := ouc.Load(cmd.Context(), args[0]); err != nil {
		reportOutcome(cmd)
		return err
	}
	ruc, err := reportuc.New()
	if err != nil {
		return err
	}
	out, err := os.Create(reportOut)
	if err != nil {
		return fmt.Errorf("creating %q: %w", reportOut, err)
	}
	defer out.Close()

	if err := ruc.Export(ouc.Guarantees(), out); err != nil {
		os.Remove(reportOut)
		if errors.Is(err, reportuc.ErrNoGuarantees) {
			return fmt.Errorf("client %s has no guarantees", args[0])
		}
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", reportOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", reportOut)
	return nil
}

func init() {
	reportCmd.Flags().StringVarP(
		&reportOut, "output", "o", "guarantees.pdf",
		"path of the PDF file to write",
	)
	rootCmd.AddCommand(reportCmd)
}
