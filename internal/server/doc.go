// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC listeners of the custody vault next
// to the background workers and stops all of them together.
package server
