// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/usecase/servicesuc"
	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List and extend the service catalog",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the offerable service types",
	RunE:  runServicesList,
}

func runServicesList(cmd *cobra.Command, _ []string) error {
	uc := servicesuc.New(gw, checker, toasts)
	if err := uc.Load(cmd.Context()); err != nil {
		reportOutcome(cmd)
		return err
	}
	items, _ := uc.Items()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, s := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, s.Description)
	}
	return w.Flush()
}

var newService model.ServiceDraft

var servicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a service type to the catalog",
	RunE:  runServicesCreate,
}

func runServicesCreate(cmd *cobra.Command, _ []string) error {
	uc := servicesuc.New(gw, checker, toasts)
	f := uc.NewServiceForm()
	f.Replace(newService)
	if err := uc.SubmitNew(cmd.Context(), f); err != nil {
		printViolations(cmd, f.Errors())
		reportOutcome(cmd)
		return err
	}
	reportOutcome(cmd)
	return nil
}

func init() {
	fl := servicesCreateCmd.Flags()
	fl.StringVar(&newService.Name, "name", "", "service name")
	fl.StringVar(&newService.Description, "description", "",
		"service description")

	servicesCmd.AddCommand(servicesListCmd, servicesCreateCmd)
	rootCmd.AddCommand(servicesCmd)
}
