// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instrumentation of the custody vault:
// gate and custody operation counters, custody latencies, the moved volume
// and the supply gauges refreshed by the supply reporter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "custody_vault"

// Result label values.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// CustodyMetrics instruments the authorization gate and custody operations.
type CustodyMetrics struct {
	// Operations counts gate and custody operations by kind and result.
	Operations *prometheus.CounterVec

	// Latencies observes how long custody transactions take, by kind.
	Latencies *prometheus.HistogramVec

	// Volume accumulates moved or destroyed base units, by kind.
	Volume *prometheus.CounterVec

	// AssetSupply is the current total supply per asset.
	AssetSupply *prometheus.GaugeVec

	// CustodyBalance is the pooled balance of each vault custody account.
	CustodyBalance *prometheus.GaugeVec
}

// NewCustodyMetrics creates the custody collectors and registers them with
// reg.
func NewCustodyMetrics(reg prometheus.Registerer) *CustodyMetrics {
	return &CustodyMetrics{
		Operations: registerOnce(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Gate and custody operations, partitioned by kind and result.",
			},
			[]string{"kind", "result"},
		)),
		Latencies: registerOnce(reg, prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "custody_duration_seconds",
				Help:      "How long custody transactions take, partitioned by kind.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind"},
		)),
		Volume: registerOnce(reg, prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "custody_volume_total",
				Help:      "Base units moved or destroyed by successful custody operations.",
			},
			[]string{"kind"},
		)),
		AssetSupply: registerOnce(reg, prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "asset_supply",
				Help:      "Current total supply of each asset in base units.",
			},
			[]string{"asset", "symbol"},
		)),
		CustodyBalance: registerOnce(reg, prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "custody_balance",
				Help:      "Pooled balance of each vault custody account in base units.",
			},
			[]string{"vault"},
		)),
	}
}

// ObserveOperation records one finished operation.
func (m *CustodyMetrics) ObserveOperation(kind, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(kind, result).Inc()
}

// ObserveCustody records a finished custody transaction. Volume only grows
// for successful ones.
func (m *CustodyMetrics) ObserveCustody(kind, result string, amount uint64, started time.Time) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(kind, result).Inc()
	m.Latencies.WithLabelValues(kind).Observe(time.Since(started).Seconds())
	if result == ResultOK {
		m.Volume.WithLabelValues(kind).Add(float64(amount))
	}
}

// SetSupply publishes the supply of one asset.
func (m *CustodyMetrics) SetSupply(asset, symbol string, supply uint64) {
	if m == nil {
		return
	}
	m.AssetSupply.WithLabelValues(asset, symbol).Set(float64(supply))
}

// SetCustodyBalance publishes the pooled balance of one vault.
func (m *CustodyMetrics) SetCustodyBalance(vault string, balance uint64) {
	if m == nil {
		return
	}
	m.CustodyBalance.WithLabelValues(vault).Set(float64(balance))
}
