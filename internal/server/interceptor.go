package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/paperbase/paperbase/internal/common"
)

// UnaryLogging tags every request with a request id, lifts the caller identity
// from metadata into the context, and logs one line per RPC.
func UnaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		ctx = common.WithRequestID(ctx, uuid.New().String())
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get("x-user-id"); len(ids) > 0 {
				ctx = common.WithUserID(ctx, ids[0])
			}
		}

		resp, err := handler(ctx, req)

		attrs := []any{
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if uid := common.UserIDFromContext(ctx); uid != "" {
			attrs = append(attrs, "user_id", uid)
		}
		if err != nil {
			attrs = append(attrs, "error", err)
			logger.Warn("rpc.failed", attrs...)
		} else {
			logger.Info("rpc.ok", attrs...)
		}
		return resp, err
	}
}
