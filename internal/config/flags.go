// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"math"
	"net"
	"strconv"
	"time"
)

// NetAddress is a flag.Value for listen addresses.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses server flags from args.
//
// Flags:
//
//	-a               HTTP server address in format [host]:[port]
//	-grpc-address    gRPC server address in format [host]:[port]
//	-d               database DSN
//	-c/-config       JSON file path with configs
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token duration (e.g., "1h", "30m")
//	-auth-window     accepted clock skew of signed auth challenges
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key        response signature hash key
//	-initial-supply  supply minted on asset provisioning
//	-decimals        default asset decimals
//	-report-interval supply report interval (negative disables)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("custody-vault", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var authWindow time.Duration
	var requestTimeout time.Duration
	var hashKey string
	var initialSupply uint64
	var decimals int
	var reportInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&authWindow, "auth-window", 0, "Accepted auth challenge clock skew")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Response signature hash key")
	fs.Uint64Var(&initialSupply, "initial-supply", 0, "Supply minted into custody on asset provisioning")
	fs.IntVar(&decimals, "decimals", 0, "Default asset decimals")
	fs.DurationVar(&reportInterval, "report-interval", 0, "Supply report interval, negative disables the reporter")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if decimals < 0 || decimals > math.MaxInt32 {
		return nil, fmt.Errorf("error parsing flags: decimals %d out of range", decimals)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			AuthWindow:    authWindow,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Vault: Vault{
			InitialSupply:   initialSupply,
			DefaultDecimals: int32(decimals),
		},
		Workers: Workers{
			SupplyReportInterval: reportInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or "" for an unset address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set accepts "host:port", "[ipv6]:port" and ":port". The host must be
// "localhost" or an IP literal.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q must be in range 1-65535", ErrInvalidNetAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not localhost or an IP", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
