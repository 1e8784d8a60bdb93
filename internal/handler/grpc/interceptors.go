// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/custody-vault/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey       = "x-trace-id"
	maxTraceIDLength = 64
)

// withLogging attaches a request-scoped logger carrying the trace id to the
// context and logs every finished call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := incomingTraceID(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	log := h.logger.With().Str("trace_id", traceID).Logger()
	ctx = log.WithContext(ctx)

	start := time.Now()
	resp, err := next(ctx, req)
	code := status.Code(err)

	level := zerolog.InfoLevel
	if code == codes.Internal {
		level = zerolog.ErrorLevel
	}
	log.WithLevel(level).
		Str("method", info.FullMethod).
		Str("code", code.String()).
		Dur("duration", time.Since(start)).
		Msg("call served")

	return resp, err
}

func (h *Handler) withMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if h.metrics == nil {
		return next(ctx, req)
	}

	start := time.Now()
	resp, err := next(ctx, req)
	h.metrics.Observe(info.FullMethod, status.Code(err).String(), time.Since(start).Seconds())

	return resp, err
}

// auth validates the bearer token in the "authorization" metadata and stores
// the caller in the context. Public custody methods and other services, such
// as health checks, pass through.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if !strings.HasPrefix(info.FullMethod, "/"+ServiceName+"/") || publicMethods[info.FullMethod] {
		return next(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errMissingMetadata
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, errMissingToken
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		return nil, errMissingToken
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, toStatus(err)
	}

	return next(utils.WithCaller(ctx, token.Caller), req)
}

func incomingTraceID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" && len(values[0]) <= maxTraceIDLength {
			return values[0]
		}
	}
	return uuid.NewString()
}
