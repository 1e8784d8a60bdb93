// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names neither an HTTP nor a
// gRPC listen address, so the vault would expose no API at all.
var errNoHandlersAreCreated = errors.New("no handlers are created: set an HTTP or gRPC address")
