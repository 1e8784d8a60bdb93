// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/custody-vault/internal/gate"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/models"
)

// GrantConsent sets the consent flag of the calling approver. Granting a
// flag that is already set changes nothing and records nothing.
func (s *vaultService) GrantConsent(ctx context.Context, request models.ConsentRequest) (models.VaultView, error) {
	log := logger.FromContext(ctx)

	var (
		view    models.VaultView
		changed bool
	)
	err := s.storages.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		record, err := repos.Vaults.GetVaultForUpdate(ctx, request.Vault)
		if err != nil {
			return err
		}

		changed, err = gate.Grant(&record, request.Caller)
		if err != nil {
			return err
		}

		if changed {
			now := s.now()
			record.UpdatedAt = now
			if err = repos.Vaults.UpdateConsent(ctx, record); err != nil {
				return err
			}
			if err = repos.Operations.AppendOperation(ctx, s.operation(models.OperationGrantConsent, record.Address, request.Caller, now)); err != nil {
				return err
			}
		}

		view, err = s.vaultView(ctx, repos, record)
		return err
	})
	s.metrics.ObserveOperation(string(models.OperationGrantConsent), resultOf(err))
	if err != nil {
		log.Warn().Err(err).
			Str("vault", request.Vault.String()).
			Str("caller", request.Caller.String()).
			Msg("consent grant rejected")
		return models.VaultView{}, fmt.Errorf("consent grant failed: %w", err)
	}

	if changed {
		log.Info().
			Str("vault", view.Address.String()).
			Str("caller", request.Caller.String()).
			Str("state", view.ConsentState).
			Msg("consent granted")
	}

	return view, nil
}

// ClearConsent resets both consent flags. Only the administrator may clear.
func (s *vaultService) ClearConsent(ctx context.Context, request models.ConsentRequest) (models.VaultView, error) {
	log := logger.FromContext(ctx)

	var view models.VaultView
	err := s.storages.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		record, err := repos.Vaults.GetVaultForUpdate(ctx, request.Vault)
		if err != nil {
			return err
		}

		if err = gate.Clear(&record, request.Caller); err != nil {
			return err
		}

		now := s.now()
		record.UpdatedAt = now
		if err = repos.Vaults.UpdateConsent(ctx, record); err != nil {
			return err
		}
		if err = repos.Operations.AppendOperation(ctx, s.operation(models.OperationClearConsent, record.Address, request.Caller, now)); err != nil {
			return err
		}

		view, err = s.vaultView(ctx, repos, record)
		return err
	})
	s.metrics.ObserveOperation(string(models.OperationClearConsent), resultOf(err))
	if err != nil {
		log.Warn().Err(err).
			Str("vault", request.Vault.String()).
			Str("caller", request.Caller.String()).
			Msg("consent clear rejected")
		return models.VaultView{}, fmt.Errorf("consent clear failed: %w", err)
	}

	log.Info().Str("vault", view.Address.String()).Msg("consent cleared")
	return view, nil
}
