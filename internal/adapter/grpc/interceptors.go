package grpc

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-observation-service/internal/observability"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Metadata keys.
const (
	APIKeyHeader    = "x-api-key"
	RequestIDHeader = "x-request-id"
)

// AuthInterceptor rejects calls whose x-api-key metadata does not equal
// expected. Rejected calls never reach the handler.
func AuthInterceptor(expected string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !validKey(ctx, expected) {
			return nil, status.Error(codes.Unauthenticated, "invalid API key")
		}
		return handler(ctx, req)
	}
}

func validKey(ctx context.Context, expected string) bool {
	if expected == "" {
		return false
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return false
	}
	values := md.Get(APIKeyHeader)
	if len(values) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(values[0]), []byte(expected)) == 1
}

// LoggingInterceptor tags each call with a request ID, logs its outcome,
// and records request metrics.
func LoggingInterceptor(logger *slog.Logger, metrics *observability.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := incomingRequestID(ctx)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)
		code := status.Code(err)

		metrics.RPCRequests.WithLabelValues(info.FullMethod, code.String()).Inc()
		metrics.RPCDuration.WithLabelValues(info.FullMethod).Observe(elapsed.Seconds())

		attrs := []any{
			"method", info.FullMethod,
			"code", code.String(),
			"duration", elapsed,
			"request_id", requestID,
		}
		switch code {
		case codes.OK:
			logger.Info("rpc completed", attrs...)
		case codes.Internal, codes.Unavailable, codes.Unknown:
			logger.Error("rpc failed", append(attrs, "error", err)...)
		default:
			logger.Warn("rpc rejected", append(attrs, "error", err)...)
		}
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}
