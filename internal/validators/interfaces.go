// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks custody requests before they reach the ledger:
// address shape, non-zero amounts, approver distinctness and paging limits.
// Authorization is not its concern; see package gate.
package validators

import "context"

// Validator checks one request value. The variadic names restrict the check
// to the listed fields; an empty list validates everything the type carries.
type Validator interface {
	Validate(ctx context.Context, request any, fields ...string) error
}
