// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/MKhiriev/custody-vault/internal/gate"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/metrics"
	"github.com/MKhiriev/custody-vault/internal/store"
	"github.com/MKhiriev/custody-vault/models"
)

// movement describes one custody operation. route picks the source and
// destination accounts once the vault is known; an empty destination burns.
// authorize checks the caller role against the locked vault and source.
type movement struct {
	kind      models.OperationKind
	vault     models.Address
	caller    models.Address
	amount    uint64
	route     func(record models.VaultRecord) (source, destination models.Address)
	authorize func(record models.VaultRecord, source models.Account) error
}

// Withdraw moves request.Amount from the vault custody account to a holder
// account. Only the administrator may withdraw.
func (s *vaultService) Withdraw(ctx context.Context, request models.WithdrawRequest) (models.Operation, error) {
	return s.execute(ctx, movement{
		kind:   models.OperationWithdraw,
		vault:  request.Vault,
		caller: request.Caller,
		amount: request.Amount,
		route: func(record models.VaultRecord) (models.Address, models.Address) {
			return record.CustodyAccount, request.Destination
		},
		authorize: func(record models.VaultRecord, _ models.Account) error {
			if !gate.IsAdministrator(&record, request.Caller) {
				return ErrUnauthorized
			}
			return nil
		},
	})
}

// Transfer moves request.Amount between two accounts of the vault asset.
// The caller must own the source account.
func (s *vaultService) Transfer(ctx context.Context, request models.TransferRequest) (models.Operation, error) {
	return s.execute(ctx, movement{
		kind:   models.OperationTransfer,
		vault:  request.Vault,
		caller: request.Caller,
		amount: request.Amount,
		route: func(models.VaultRecord) (models.Address, models.Address) {
			return request.Source, request.Destination
		},
		authorize: func(_ models.VaultRecord, source models.Account) error {
			if source.Owner != request.Caller {
				return ErrUnauthorized
			}
			return nil
		},
	})
}

// Burn destroys request.Amount held in the target account and lowers the
// asset supply by the same amount. The caller must own the target; the
// administrator acts as owner of the custody account.
func (s *vaultService) Burn(ctx context.Context, request models.BurnRequest) (models.Operation, error) {
	return s.execute(ctx, movement{
		kind:   models.OperationBurn,
		vault:  request.Vault,
		caller: request.Caller,
		amount: request.Amount,
		route: func(models.VaultRecord) (models.Address, models.Address) {
			return request.Target, ""
		},
		authorize: func(record models.VaultRecord, source models.Account) error {
			if source.Owner == request.Caller {
				return nil
			}
			if source.Address == record.CustodyAccount && gate.IsAdministrator(&record, request.Caller) {
				return nil
			}
			return ErrUnauthorized
		},
	})
}

// execute runs m in one transaction. Every check happens before the first
// write, so a rejected operation leaves balances and consent untouched.
func (s *vaultService) execute(ctx context.Context, m movement) (models.Operation, error) {
	log := logger.FromContext(ctx)
	started := s.now()

	var op models.Operation
	err := s.move(ctx, m, &op)
	s.metrics.ObserveCustody(string(m.kind), resultOf(err), m.amount, started)

	if err != nil {
		ev := log.Warn()
		if resultOf(err) == metrics.ResultError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("vault", m.vault.String()).
			Str("caller", m.caller.String()).
			Str("kind", string(m.kind)).
			Uint64("amount", m.amount).
			Msg("custody operation rejected")
		return models.Operation{}, fmt.Errorf("%s failed: %w", m.kind, err)
	}

	log.Info().
		Str("vault", op.Vault.String()).
		Str("caller", op.Caller.String()).
		Str("kind", string(op.Kind)).
		Str("source", op.Source.String()).
		Str("destination", op.Destination.String()).
		Uint64("amount", op.Amount).
		Msg("custody operation executed, consent consumed")

	return op, nil
}

func (s *vaultService) move(ctx context.Context, m movement, result *models.Operation) error {
	if m.amount == 0 || m.amount > math.MaxInt64 {
		return ErrInvalidAmount
	}

	return s.storages.InTx(ctx, func(ctx context.Context, repos store.Repositories) error {
		record, err := repos.Vaults.GetVaultForUpdate(ctx, m.vault)
		if err != nil {
			return err
		}
		if !record.HasAsset() {
			return ErrAssetNotProvisioned
		}
		if err = gate.Require(&record); err != nil {
			return err
		}

		sourceAddr, destinationAddr := m.route(record)
		if sourceAddr == destinationAddr {
			return ErrSameAccount
		}

		accounts, err := lockAccounts(ctx, repos.Accounts, sourceAddr, destinationAddr)
		if err != nil {
			return err
		}
		source := accounts[sourceAddr]

		if err = m.authorize(record, source); err != nil {
			return err
		}
		for _, account := range accounts {
			if account.Asset != record.AssetType {
				return ErrAssetMismatch
			}
		}
		if source.Balance < m.amount {
			return ErrInsufficientBalance
		}

		now := s.now()
		if destinationAddr.IsZero() {
			asset, assetErr := repos.Assets.GetAsset(ctx, record.AssetType)
			if assetErr != nil {
				return assetErr
			}
			if asset.Supply < m.amount {
				return ErrInsufficientBalance
			}
			if err = repos.Assets.UpdateSupply(ctx, asset.Address, asset.Supply-m.amount); err != nil {
				return err
			}
		} else {
			destination := accounts[destinationAddr]
			if destination.Balance > math.MaxInt64-m.amount {
				return ErrInvalidAmount
			}
			if err = repos.Accounts.UpdateBalance(ctx, destinationAddr, destination.Balance+m.amount, now); err != nil {
				return err
			}
		}

		if err = repos.Accounts.UpdateBalance(ctx, sourceAddr, source.Balance-m.amount, now); err != nil {
			return err
		}

		gate.Consume(&record)
		record.UpdatedAt = now
		if err = repos.Vaults.UpdateConsent(ctx, record); err != nil {
			return err
		}

		*result = s.operation(m.kind, record.Address, m.caller, now)
		result.Source = sourceAddr
		result.Destination = destinationAddr
		result.Amount = m.amount

		return repos.Operations.AppendOperation(ctx, *result)
	})
}

// lockAccounts reads and locks the given accounts in address order so that
// two transfers touching the same pair cannot deadlock. Empty addresses are
// skipped.
func lockAccounts(ctx context.Context, accounts store.AccountRepository, addresses ...models.Address) (map[models.Address]models.Account, error) {
	ordered := slices.DeleteFunc(slices.Clone(addresses), models.Address.IsZero)
	slices.Sort(ordered)

	locked := make(map[models.Address]models.Account, len(ordered))
	for _, address := range ordered {
		account, err := accounts.GetAccountForUpdate(ctx, address)
		if err != nil {
			return nil, err
		}
		locked[address] = account
	}

	return locked, nil
}
