// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the custody vault REST API under /api.
//
// Vault, asset, account, consent and custody routes are delegated to
// [service.VaultService]. The middleware chain tags each request with a trace
// id, logs and counts it, checks the HashSHA256 body signature and resolves
// the bearer token into the caller address.
package http
