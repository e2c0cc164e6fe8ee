package interceptors

import (
	"context"
	"strings"
	"time"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/auth/jwt"
	"github.com/JMURv/tab-audit/internal/config"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// public lists services reachable without a token.
var public = []string{
	"/" + grpc_health_v1.Health_ServiceDesc.ServiceName + "/",
	"/grpc.reflection.",
}

func isPublic(method string) bool {
	for _, p := range public {
		if strings.HasPrefix(method, p) {
			return true
		}
	}
	return false
}

// Auth resolves the bearer token into a principal stored under
// config.PrincipalKey.
func Auth(au auth.Core) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublic(info.FullMethod) {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok || len(md.Get("authorization")) == 0 {
			zap.L().Debug("missing authorization token", zap.String("method", info.FullMethod))
			return nil, status.Error(codes.Unauthenticated, "authentication credentials were not provided")
		}

		tokenStr, found := strings.CutPrefix(md.Get("authorization")[0], "Bearer ")
		if !found || tokenStr == "" {
			return nil, status.Error(codes.Unauthenticated, "authorization header must be a bearer token")
		}

		claims, err := au.ParseClaims(ctx, tokenStr, jwt.TokenAccess)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}

		ctx = context.WithValue(ctx, config.PrincipalKey, claims.Principal())
		return handler(ctx, req)
	}
}

func LogTraceMetrics() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		s := time.Now()
		span, ctx := opentracing.StartSpanFromContext(ctx, info.FullMethod)
		defer span.Finish()

		res, err := handler(ctx, req)
		statusCode := status.Code(err)
		metrics.ObserveRequest(time.Since(s), int(statusCode), info.FullMethod)

		zap.L().Info(
			"<--",
			zap.String("method", info.FullMethod),
			zap.Int("status", int(statusCode)),
			zap.Duration("duration", time.Since(s)),
			zap.Error(err),
		)

		return res, err
	}
}
