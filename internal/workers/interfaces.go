// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the custody vault
// server and a Workers aggregate that runs them alongside the transports.
package workers

import (
	"context"

	"github.com/MKhiriev/custody-vault/models"
)

// Worker is a background task. Run blocks until ctx is cancelled or the
// worker fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// SupplySource produces the supply report of every provisioned asset.
type SupplySource interface {
	SupplyReport(ctx context.Context) ([]models.SupplyReport, error)
}
