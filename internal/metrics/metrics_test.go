// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustodyMetrics_ObserveCustody(t *testing.T) {
	m := NewCustodyMetrics(prometheus.NewRegistry())

	m.ObserveCustody("withdraw", ResultOK, 100, time.Now())
	m.ObserveCustody("withdraw", ResultRejected, 999, time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("withdraw", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations.WithLabelValues("withdraw", ResultRejected)))
	assert.Equal(t, 100.0, testutil.ToFloat64(m.Volume.WithLabelValues("withdraw")), "rejected attempts move nothing")
}

func TestCustodyMetrics_Gauges(t *testing.T) {
	m := NewCustodyMetrics(prometheus.NewRegistry())

	m.SetSupply("mint", "GLD", 950)
	m.SetCustodyBalance("vault", 400)

	assert.Equal(t, 950.0, testutil.ToFloat64(m.AssetSupply.WithLabelValues("mint", "GLD")))
	assert.Equal(t, 400.0, testutil.ToFloat64(m.CustodyBalance.WithLabelValues("vault")))
}

func TestCustodyMetrics_NilIsNoop(t *testing.T) {
	var m *CustodyMetrics

	assert.NotPanics(t, func() {
		m.ObserveOperation("grant_consent", ResultOK)
		m.ObserveCustody("burn", ResultOK, 1, time.Now())
		m.SetSupply("a", "b", 1)
		m.SetCustodyBalance("v", 1)
	})
}

func TestRegisterOnce_ReusesExisting(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := NewCustodyMetrics(reg)
	second := NewCustodyMetrics(reg)

	first.ObserveOperation("clear_consent", ResultOK)
	require.Same(t, first.Operations, second.Operations)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.Operations.WithLabelValues("clear_consent", ResultOK)))
}

func TestRequestMetrics_Observe(t *testing.T) {
	m := NewRequestMetrics(prometheus.NewRegistry(), "http")

	m.Observe("/api/vaults", "200", 0.01)
	m.Observe("/api/vaults", "200", 0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCounts.WithLabelValues("/api/vaults", "200")))
}
