// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/sayara/garagedash/pkg/core/model"
	"github.com/sayara/garagedash/pkg/core/usecase/clientsuc"
	"github.com/sayara/garagedash/pkg/core/usecase/ordersuc"
	"github.com/spf13/cobra"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List, inspect, and create client records",
}

var (
	clientsPage   int
	clientsSearch string
)

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients with paging and free-text search",
	RunE:  runClientsList,
}

func runClientsList(cmd *cobra.Command, _ []string) error {
	uc, err := clientsuc.New(
		gw, checker, toasts,
		clientsuc.WithPageSize(cfg.Lists.PageSize),
		clientsuc.WithDebounce(cfg.Lists.Debounce.Std()),
	)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if clientsSearch != "" {
		err = uc.SearchNow(ctx, clientsSearch)
	} else {
		err = uc.SetPage(ctx, clientsPage)
	}
	if err != nil {
		reportOutcome(cmd)
		return err
	}
	if clientsSearch != "" && clientsPage > 1 {
		if err := uc.SetPage(ctx, clientsPage); err != nil {
			reportOutcome(cmd)
			return err
		}
	}
	state, items := uc.State()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFULL NAME\tEMAIL\tPHONE\tTYPE")
	for _, cl := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cl.ID, cl.FullName, cl.Email, cl.Phone, cl.ClientType)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "page %d, %d per page, %d total\n",
		state.PageIndex, state.Limit, state.Total)
	return nil
}

var clientsShowCmd = &cobra.Command{
	Use:   "show <client-id>",
	Short: "Show one client with its orders and guarantees",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientsShow,
}

func runClientsShow(cmd *cobra.Command, args []string) error {
	uc := ordersuc.New(gw, gw, checker, toasts)
	if err := uc.Load(cmd.Context(), args[0]); err != nil {
		reportOutcome(cmd)
		return err
	}
	cl, _ := uc.Client()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s <%s>\n", cl.FullName, cl.Email)
	fmt.Fprintf(out, "phone: %s, type: %s\n", cl.Phone, cl.ClientType)
	if cl.OrderStats != nil {
		fmt.Fprintf(out, "orders: %d, active guarantees: %d\n",
			cl.OrderStats.TotalOrders, cl.OrderStats.ActiveGuarantees)
	}
	for _, o := range cl.Orders {
		fmt.Fprintf(out, "order %s: %s %s, service %q\n",
			o.ID, o.CarColor, o.CarModel, o.Service)
		for _, g := range o.Guarantee {
			fmt.Fprintf(out, "  guarantee %s: %s (%s) %s to %s\n",
				g.ID, g.TypeGuarantee, g.Status,
				g.StartDate.Format(model.DateLayout),
				g.EndDate.Format(model.DateLayout))
		}
	}
	return nil
}

var newClient model.ClientDraft

var clientsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a client with its initial order and guarantee",
	RunE:  runClientsCreate,
}

func runClientsCreate(cmd *cobra.Command, _ []string) error {
	uc, err := clientsuc.New(gw, checker, toasts)
	if err != nil {
		return err
	}
	f := uc.NewClientForm()
	f.Replace(newClient)
	if err := uc.SubmitNew(cmd.Context(), f); err != nil {
		printViolations(cmd, f.Errors())
		reportOutcome(cmd)
		return err
	}
	reportOutcome(cmd)
	return nil
}

// printViolations lists the per-field messages of a rejected form,
// in a stable field order.
func printViolations(cmd *cobra.Command, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, errs[field])
	}
}

func init() {
	clientsListCmd.Flags().IntVarP(
		&clientsPage, "page", "p", 1, "1-based page index")
	clientsListCmd.Flags().StringVarP(
		&clientsSearch, "search", "s", "", "free-text search over names")

	fl := clientsCreateCmd.Flags()
	fl.StringVar(&newClient.FullName, "full-name", "", "client full name")
	fl.StringVar(&newClient.Email, "email", "", "client email address")
	fl.StringVar(&newClient.Phone, "phone", "", "client phone number")
	fl.StringVar(&newClient.ClientType, "type", "individual",
		"client type (individual or company)")
	fl.StringVar(&newClient.CarModel, "car-model", "", "car model")
	fl.StringVar(&newClient.CarColor, "car-color", "", "car color")
	fl.StringVar(&newClient.Service, "service", "", "performed service")
	fl.StringVar(&newClient.Guarantee.TypeGuarantee, "guarantee-type", "",
		"guarantee type")
	fl.StringVar(&newClient.Guarantee.StartDate, "guarantee-start", "",
		"guarantee start date (YYYY-MM-DD)")
	fl.StringVar(&newClient.Guarantee.EndDate, "guarantee-end", "",
		"guarantee end date (YYYY-MM-DD)")
	fl.StringVar(&newClient.Guarantee.Terms, "guarantee-terms", "",
		"guarantee terms")
	fl.StringSliceVar(&newClient.Guarantee.CoveredComponents,
		"covered-components", nil, "covered components")
	fl.StringSliceVar(&newClient.Guarantee.Products,
		"products", nil, "covered products")

	clientsCmd.AddCommand(clientsListCmd, clientsShowCmd, clientsCreateCmd)
	rootCmd.AddCommand(clientsCmd)
}
