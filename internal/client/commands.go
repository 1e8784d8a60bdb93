// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/custody-vault/internal/crypto"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/spf13/cobra"
)

type runFunc func(cmd *cobra.Command, args []string) error

func (a *App) rootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "vaultctl",
		Short:         "Command-line client of the dual-control custody vault",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Adapter.BaseURL, "server", a.cfg.Adapter.BaseURL, "server base URL")
	flags.StringVar(&a.cfg.Adapter.HashKey, "hash-key", a.cfg.Adapter.HashKey, "key for HashSHA256 body signatures")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.StringVarP(&a.cfg.KeyFile, "key-file", "k", a.cfg.KeyFile, "encrypted signing key")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	root.AddCommand(
		a.keygenCommand(),
		a.whoamiCommand(),
		a.vaultCommand(),
		a.assetCommand(),
		a.accountCommand(),
		a.consentCommand(),
		a.withdrawCommand(),
		a.transferCommand(),
		a.burnCommand(),
		a.opsCommand(),
		a.versionCommand(),
	)

	return root
}

// authed runs fn after logging in with the key file.
func (a *App) authed(fn func(ctx context.Context, cmd *cobra.Command, args []string) error) runFunc {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if _, err := a.login(ctx); err != nil {
			return err
		}
		return fn(ctx, cmd, args)
	}
}

func (a *App) keygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a signing key and store it encrypted in the key file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passphrase, err := a.options.Passphrase("New passphrase: ", true)
			if err != nil {
				return err
			}

			key, err := a.options.KeyChain.GenerateSigningKey()
			if err != nil {
				return err
			}
			file, err := a.options.KeyChain.EncryptKey(key, passphrase)
			if err != nil {
				return err
			}
			if err = crypto.WriteKeyFile(a.cfg.KeyFile, file); err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]string{
				"address":  file.Address.String(),
				"key_file": a.cfg.KeyFile,
			})
		},
	}
}

func (a *App) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Authenticate and print the caller address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			caller, err := a.login(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]string{"address": caller.String()})
		},
	}
}

func (a *App) vaultCommand() *cobra.Command {
	vault := &cobra.Command{Use: "vault", Short: "Provision and inspect vaults"}

	var approverA, approverB string
	create := &cobra.Command{
		Use:   "create",
		Short: "Provision a vault administered by the key file identity",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			a1, err := parseAddress(approverA, "approver-a")
			if err != nil {
				return err
			}
			a2, err := parseAddress(approverB, "approver-b")
			if err != nil {
				return err
			}

			view, err := a.adapter.ProvisionVault(ctx, models.ProvisionVaultRequest{ApproverA: a1, ApproverB: a2})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		}),
	}
	create.Flags().StringVar(&approverA, "approver-a", "", "address of the first approver")
	create.Flags().StringVar(&approverB, "approver-b", "", "address of the second approver")
	_ = create.MarkFlagRequired("approver-a")
	_ = create.MarkFlagRequired("approver-b")

	show := &cobra.Command{
		Use:   "show <vault>",
		Short: "Show a vault and its consent state",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0], "vault")
			if err != nil {
				return err
			}
			view, err := a.adapter.GetVault(ctx, address)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		}),
	}

	vault.AddCommand(create, show)
	return vault
}

func (a *App) assetCommand() *cobra.Command {
	asset := &cobra.Command{Use: "asset", Short: "Provision and inspect vault assets"}

	var (
		request  models.ProvisionAssetRequest
		decimals int32
	)
	create := &cobra.Command{
		Use:   "create <vault>",
		Short: "Provision the asset of a vault and mint its supply into custody",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			vault, err := parseAddress(args[0], "vault")
			if err != nil {
				return err
			}
			request.Vault = vault
			if cmd.Flags().Changed("decimals") {
				request.Decimals = &decimals
			}

			result, err := a.adapter.ProvisionAsset(ctx, request)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		}),
	}
	create.Flags().StringVar(&request.Name, "name", "", "asset name")
	create.Flags().StringVar(&request.Symbol, "symbol", "", "asset symbol")
	create.Flags().Int32Var(&decimals, "decimals", 0, "display decimals (server default when omitted)")
	create.Flags().Uint64Var(&request.InitialSupply, "supply", 0, "initial supply in base units (server default when omitted)")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("symbol")

	show := &cobra.Command{
		Use:   "show <asset>",
		Short: "Show an asset and its current supply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0], "asset")
			if err != nil {
				return err
			}
			result, err := a.adapter.GetAsset(cmd.Context(), address)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	asset.AddCommand(create, show)
	return asset
}

func (a *App) accountCommand() *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Open and inspect holder accounts"}

	var assetAddress string
	open := &cobra.Command{
		Use:   "open",
		Short: "Open a holder account of an asset for the key file identity",
		Args:  cobra.NoArgs,
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, _ []string) error {
			asset, err := parseAddress(assetAddress, "asset")
			if err != nil {
				return err
			}
			view, err := a.adapter.OpenAccount(ctx, models.OpenAccountRequest{Asset: asset})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		}),
	}
	open.Flags().StringVar(&assetAddress, "asset", "", "asset address")
	_ = open.MarkFlagRequired("asset")

	show := &cobra.Command{
		Use:   "show <account>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			address, err := parseAddress(args[0], "account")
			if err != nil {
				return err
			}
			view, err := a.adapter.GetAccount(ctx, address)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), view)
		}),
	}

	account.AddCommand(open, show)
	return account
}

func (a *App) consentCommand() *cobra.Command {
	consent := &cobra.Command{Use: "consent", Short: "Grant or clear custody consent"}

	vaultAction := func(use, short string, apply func(context.Context, models.Address) (models.VaultView, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <vault>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
				vault, err := parseAddress(args[0], "vault")
				if err != nil {
					return err
				}
				view, err := apply(ctx, vault)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), view)
			}),
		}
	}

	consent.AddCommand(
		vaultAction("grant", "Record the approval of the key file identity", func(ctx context.Context, vault models.Address) (models.VaultView, error) {
			return a.adapter.GrantConsent(ctx, vault)
		}),
		vaultAction("clear", "Reset both approvals (administrator only)", func(ctx context.Context, vault models.Address) (models.VaultView, error) {
			return a.adapter.ClearConsent(ctx, vault)
		}),
	)
	return consent
}

func (a *App) withdrawCommand() *cobra.Command {
	var (
		amount uint64
		to     string
	)
	cmd := &cobra.Command{
		Use:   "withdraw <vault>",
		Short: "Move custodied value to a holder account",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			vault, err := parseAddress(args[0], "vault")
			if err != nil {
				return err
			}
			destination, err := parseAddress(to, "to")
			if err != nil {
				return err
			}
			op, err := a.adapter.Withdraw(ctx, models.WithdrawRequest{Vault: vault, Amount: amount, Destination: destination})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), op)
		}),
	}
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in base units")
	cmd.Flags().StringVar(&to, "to", "", "destination account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *App) transferCommand() *cobra.Command {
	var (
		amount   uint64
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "transfer <vault>",
		Short: "Move value between two holder accounts",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			vault, err := parseAddress(args[0], "vault")
			if err != nil {
				return err
			}
			source, err := parseAddress(from, "from")
			if err != nil {
				return err
			}
			destination, err := parseAddress(to, "to")
			if err != nil {
				return err
			}
			op, err := a.adapter.Transfer(ctx, models.TransferRequest{Vault: vault, Amount: amount, Source: source, Destination: destination})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), op)
		}),
	}
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in base units")
	cmd.Flags().StringVar(&from, "from", "", "source account owned by the key file identity")
	cmd.Flags().StringVar(&to, "to", "", "destination account")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *App) burnCommand() *cobra.Command {
	var (
		amount uint64
		target string
	)
	cmd := &cobra.Command{
		Use:   "burn <vault>",
		Short: "Destroy value held in an account",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			vault, err := parseAddress(args[0], "vault")
			if err != nil {
				return err
			}
			account, err := parseAddress(target, "target")
			if err != nil {
				return err
			}
			op, err := a.adapter.Burn(ctx, models.BurnRequest{Vault: vault, Amount: amount, Target: account})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), op)
		}),
	}
	cmd.Flags().Uint64Var(&amount, "amount", 0, "amount in base units")
	cmd.Flags().StringVar(&target, "target", "", "account to burn from")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func (a *App) opsCommand() *cobra.Command {
	ops := &cobra.Command{Use: "ops", Short: "Read the audit trail"}

	var limit uint64
	list := &cobra.Command{
		Use:   "list <vault>",
		Short: "List the operations of a vault, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: a.authed(func(ctx context.Context, cmd *cobra.Command, args []string) error {
			vault, err := parseAddress(args[0], "vault")
			if err != nil {
				return err
			}
			operations, err := a.adapter.ListOperations(ctx, models.OperationsQuery{Vault: vault, Limit: limit})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), operations)
		}),
	}
	list.Flags().Uint64Var(&limit, "limit", 0, "maximum number of operations (server default when omitted)")

	ops.AddCommand(list)
	return ops
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := map[string]any{"client": a.options.Build.VersionInfo()}

			server, err := a.adapter.Version(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Msg("server version is unavailable")
			} else {
				result["server"] = server
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func parseAddress(raw, name string) (models.Address, error) {
	address, err := models.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return address, nil
}
