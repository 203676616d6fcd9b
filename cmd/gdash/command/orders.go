// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/usecase/ordersuc"
	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage the guarantees attached to a client's orders",
}

var (
	orderClientID    string
	orderID          string
	orderGuaranteeID string
	newGuarantee     model.AddGuaranteeDraft
)

var ordersAddGuaranteeCmd = &cobra.Command{
	Use:   "add-guarantee",
	Short: "Attach a further guarantee to an existing order",
	RunE:  runOrdersAddGuarantee,
}

func runOrdersAddGuarantee(cmd *cobra.Command, _ []string) error {
	uc := ordersuc.New(gw, gw, checker, toasts)
	ctx := cmd.Context()
	if err := uc.Load(ctx, orderClientID); err != nil {
		reportOutcome(cmd)
		return err
	}
	f := uc.NewGuaranteeForm()
	f.Replace(newGuarantee)
	if err := uc.SubmitGuarantee(ctx, orderID, f); err != nil {
		printViolations(cmd, f.Errors())
		reportOutcome(cmd)
		return err
	}
	reportOutcome(cmd)
	return nil
}

var ordersToggleStatusCmd = &cobra.Command{
	Use:   "toggle-status",
	Short: "Flip a guarantee between active and inactive",
	RunE:  runOrdersToggleStatus,
}

func runOrdersToggleStatus(cmd *cobra.Command, _ []string) error {
	uc := ordersuc.New(gw, gw, checker, toasts)
	ctx := cmd.Context()
	if err := uc.Load(ctx, orderClientID); err != nil {
		reportOutcome(cmd)
		return err
	}
	sc, err := uc.ProposeStatusChange(orderID, orderGuaranteeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "changing guarantee %s: %s -> %s\n",
		orderGuaranteeID, sc.Current, sc.Proposed)
	if err := sc.Confirm(ctx); err != nil {
		reportOutcome(cmd)
		return err
	}
	reportOutcome(cmd)
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{
		ordersAddGuaranteeCmd, ordersToggleStatusCmd,
	} {
		cmd.Flags().StringVar(
			&orderClientID, "client", "", "owning client id")
		cmd.Flags().StringVar(&orderID, "order", "", "order id")
		_ = cmd.MarkFlagRequired("client")
		_ = cmd.MarkFlagRequired("order")
	}

	fl := ordersAddGuaranteeCmd.Flags()
	fl.StringVar(&newGuarantee.TypeGuarantee, "type", "", "guarantee type")
	fl.StringVar(&newGuarantee.StartDate, "start", "",
		"start date (YYYY-MM-DD)")
	fl.StringVar(&newGuarantee.EndDate, "end", "", "end date (YYYY-MM-DD)")
	fl.StringVar(&newGuarantee.Terms, "terms", "", "guarantee terms")

	ordersToggleStatusCmd.Flags().StringVar(
		&orderGuaranteeID, "guarantee", "", "guarantee id")
	_ = ordersToggleStatusCmd.MarkFlagRequired("guarantee")

	ordersCmd.AddCommand(ordersAddGuaranteeCmd, ordersToggleStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}
