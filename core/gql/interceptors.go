package gql

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hrforge/cvclient/core/logger"
)

// requestIDHeader carries the correlation ID for server-side tracing.
const requestIDHeader = "X-Request-Id"

// RequestID returns an interceptor that stamps every outgoing request with
// a UUID v4 correlation ID, keeping an existing one when the caller already
// set it.
func RequestID() Interceptor {
	return func(next DoFunc) DoFunc {
		return func(ctx context.Context, req Request) (json.RawMessage, error) {
			if req.Header.Get(requestIDHeader) == "" {
				req = req.Clone()
				req.Header.Set(requestIDHeader, uuid.New().String())
			}
			return next(ctx, req)
		}
	}
}

// Logging returns an interceptor that logs each operation with its outcome
// and duration. Payloads and headers are never logged; the authorization
// header in particular must not reach log sinks.
func Logging(log *slog.Logger) Interceptor {
	if log == nil {
		log = slog.Default()
	}

	return func(next DoFunc) DoFunc {
		return func(ctx context.Context, req Request) (json.RawMessage, error) {
			start := time.Now()
			data, err := next(ctx, req)

			attrs := []slog.Attr{
				logger.Operation(req.OperationName),
				logger.Duration(time.Since(start)),
			}
			if id := req.Header.Get(requestIDHeader); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			if err != nil {
				attrs = append(attrs, logger.Error(err))
				log.LogAttrs(ctx, slog.LevelWarn, "graphql request failed", attrs...)
				return nil, err
			}

			log.LogAttrs(ctx, slog.LevelDebug, "graphql request", attrs...)
			return data, nil
		}
	}
}
