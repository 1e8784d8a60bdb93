// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/custody-vault/internal/logger"
)

// SupplyReporter periodically refreshes the supply and custody balance
// gauges and logs the totals. A failed report is logged and retried on the
// next tick.
type SupplyReporter struct {
	source   SupplySource
	interval time.Duration
	logger   *logger.Logger
}

func NewSupplyReporter(source SupplySource, interval time.Duration, logger *logger.Logger) *SupplyReporter {
	return &SupplyReporter{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

func (r *SupplyReporter) Run(ctx context.Context) error {
	if r.interval <= 0 {
		r.logger.Info().Msg("supply reporter disabled")
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.report(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("supply reporter stopped")
			return nil
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *SupplyReporter) report(ctx context.Context) {
	reports, err := r.source.SupplyReport(r.logger.WithContext(ctx))
	if err != nil {
		r.logger.Err(err).Msg("supply report failed")
		return
	}

	for _, report := range reports {
		r.logger.Debug().
			Str("asset", report.Asset.String()).
			Str("symbol", report.Symbol).
			Str("vault", report.Vault.String()).
			Uint64("supply", report.Supply).
			Uint64("custody_balance", report.CustodyBalance).
			Msg("supply report")
	}
}
