// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/custody-vault/internal/client"
	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger(os.Stderr, "vaultctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, client.Options{
		Build: models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit)),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		os.Exit(1)
	}
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
