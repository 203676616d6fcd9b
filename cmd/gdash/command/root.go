// Copyright (c) 2025-2026 Sayara Auto Services
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands of the gdash
// administration tool. Commands are organized using the cobra
// library. Every sub-command drives the same core use cases which
// back the dashboard screens, against the remote backend API which is
// located by the loaded configuration.
//
//	./gdash clients list [-p page] [-s term] [-c /path/of/config.yaml]
//	./gdash clients show <client-id>
//	./gdash clients create --full-name ... --email ... [...]
//	./gdash orders add-guarantee --client <id> --order <id> [...]
//	./gdash orders toggle-status --client <id> --order <id> --guarantee <id>
//	./gdash services list
//	./gdash services create --name ... --description ...
//	./gdash report <client-id> [-o guarantees.pdf]
package command

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sayara/garagedash/pkg/adapter/config"
	"github.com/sayara/garagedash/pkg/adapter/gateway/restgw"
	"github.com/sayara/garagedash/pkg/core/toast"
	"github.com/sayara/garagedash/pkg/core/validate"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	envPath string

	cfg     *config.Config
	gw      *restgw.Gateway
	checker *validate.Engine
	toasts  *toast.Center
)

var rootCmd = &cobra.Command{
	Use:   "gdash",
	Short: "Administration dashboard for the vehicle service backend",
	Long: `gdash is the administration companion of the vehicle service
backend. It keeps no data of its own: clients, their service orders,
nested product guarantees, and the service catalog all live behind
the remote REST API and every command performs the corresponding
fetches and mutations through it. Listing commands support paging and
free-text search the same way the dashboard screens do, creation
commands run their input through the shared validation rule set
before anything goes on the wire, and the report command renders the
guarantees of one client as a PDF document locally.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// setup loads the environment file and configuration, installs the
// default logger, and wires the shared collaborators. It runs before
// every sub-command.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(envPath); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %q: %w", envPath, err)
	}
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	cfg = c
	slog.SetDefault(cfg.Log.NewLogger(os.Stderr))

	gw, err = restgw.New(
		cfg.API.BaseURL,
		restgw.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout.Std()}),
		restgw.WithToken(cfg.API.Token),
	)
	if err != nil {
		return fmt.Errorf("creating gateway: %w", err)
	}
	checker = validate.New()
	toasts = toast.NewCenter()
	return nil
}

// reportOutcome prints the queued notifications of the executed
// operation, the way the dashboard would flash them.
func reportOutcome(cmd *cobra.Command) {
	for _, n := range toasts.Drain() {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", n.Kind, n.Title,
			n.Message)
	}
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "gdash.yaml",
		"path of the configuration file",
	)
	rootCmd.PersistentFlags().StringVar(
		&envPath, "env-file", ".env",
		"path of an optional environment file",
	)
}
