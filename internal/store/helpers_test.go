// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
)

func configDB(dsn string) config.DB {
	return config.DB{DSN: dsn}
}

func nopLogger() *logger.Logger {
	return logger.Nop()
}
