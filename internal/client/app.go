// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/custody-vault/internal/adapter"
	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/crypto"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/models"
	"github.com/rs/zerolog"
)

// Options injects the collaborators of [App]. Nil fields get production
// defaults.
type Options struct {
	Adapter    AdapterFactory
	KeyChain   crypto.KeyChainService
	Passphrase PassphraseReader
	Out        io.Writer
	Build      models.AppBuildInfo
}

// App is the vaultctl runtime. Each Run builds a fresh command tree.
type App struct {
	cfg     config.ClientConfig
	options Options

	// adapter is created after flag parsing
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig, options Options, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("client config is required")
	}

	if options.Adapter == nil {
		options.Adapter = func(adapterCfg config.ClientAdapter) (adapter.ServerAdapter, error) {
			return adapter.NewHTTPServerAdapter(adapterCfg, logger)
		}
	}
	if options.KeyChain == nil {
		options.KeyChain = crypto.NewKeyChainService()
	}
	if options.Passphrase == nil {
		options.Passphrase = TerminalPassphrase
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	return &App{cfg: *cfg, options: options, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.options.Out)
	return root.ExecuteContext(ctx)
}

// prepare applies the parsed flags and connects the adapter.
func (a *App) prepare(verbose bool) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger.SetLevel(level)

	serverAdapter, err := a.options.Adapter(a.cfg.Adapter)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}
	a.adapter = serverAdapter
	return nil
}

// login unlocks the key file and exchanges a signed challenge for a token.
func (a *App) login(ctx context.Context) (models.Address, error) {
	file, err := crypto.ReadKeyFile(a.cfg.KeyFile)
	if err != nil {
		return "", err
	}

	passphrase, err := a.options.Passphrase(fmt.Sprintf("Passphrase for %s: ", file.Address), false)
	if err != nil {
		return "", err
	}

	key, err := a.options.KeyChain.DecryptKey(file, passphrase)
	if err != nil {
		return "", fmt.Errorf("unlock key file %s: %w", a.cfg.KeyFile, err)
	}

	token, err := a.adapter.Authenticate(ctx, key)
	if err != nil {
		return "", err
	}

	a.logger.Debug().Str("caller", token.Caller.String()).Msg("authenticated")
	return token.Caller, nil
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
