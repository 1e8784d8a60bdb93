// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/custody-vault/internal/config"
	"github.com/MKhiriev/custody-vault/internal/logger"
	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/MKhiriev/custody-vault/models"
)

// authService is the concrete implementation of AuthService.
// A caller proves control of an ed25519 key by signing a timestamped
// challenge and receives an HS256 JWT whose subject is the caller address.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// authWindow bounds how far a challenge timestamp may drift from now.
	authWindow time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		authWindow:    cfg.AuthWindow,
		now:           time.Now,
		logger:        logger,
	}
}

// IssueToken verifies the signed challenge in request and issues a token for
// the signer.
//
// Returns:
//   - ErrInvalidDataProvided if the public key or signature is missing.
//   - ErrChallengeExpired if the timestamp is outside the auth window.
//   - ErrInvalidSignature if the signature does not verify.
func (a *authService) IssueToken(ctx context.Context, request models.TokenRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if request.PublicKey.IsZero() || request.Signature == "" {
		return models.TokenResponse{}, ErrInvalidDataProvided
	}

	if !utils.WithinWindow(request.Timestamp, a.now(), a.authWindow) {
		log.Warn().
			Str("caller", request.PublicKey.String()).
			Int64("timestamp", request.Timestamp).
			Msg("stale authentication challenge")
		return models.TokenResponse{}, ErrChallengeExpired
	}

	if err := utils.VerifyChallenge(request.PublicKey, request.Timestamp, request.Signature); err != nil {
		log.Warn().Err(err).Str("caller", request.PublicKey.String()).Msg("challenge verification failed")
		return models.TokenResponse{}, ErrInvalidSignature
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, request.PublicKey, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("caller", request.PublicKey.String()).Msg("token issued")

	return models.TokenResponse{
		Token:     token.SignedString,
		Caller:    request.PublicKey,
		ExpiresAt: token.ExpiresAt.Unix(),
	}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad subject) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
