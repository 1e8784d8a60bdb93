// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs the application's transports and background workers.
//
// RunServer blocks until ctx is cancelled, a termination signal arrives or
// one of the components fails, then shuts every component down.
type Server interface {
	RunServer(ctx context.Context) error
}

// transport is a single listener managed by [Server].
type transport interface {
	// Serve accepts connections until Shutdown is called.
	Serve() error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error

	Name() string
}
