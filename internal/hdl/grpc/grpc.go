package grpc

import (
	"errors"
	"fmt"
	"net"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/hdl/grpc/interceptors"
	metrics "github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Handler serves the grpc health protocol for load balancers and
// orchestrators. Every other method is behind token authentication.
type Handler struct {
	name string
	srv  *grpc.Server
	hsrv *health.Server
}

func New(name string, au auth.Core) *Handler {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.LogTraceMetrics(),
			interceptors.Auth(au),
			metrics.SrvMetrics.UnaryServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
		grpc.ChainStreamInterceptor(
			metrics.SrvMetrics.StreamServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
	)

	hsrv := health.NewServer()
	hsrv.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, hsrv)
	reflection.Register(srv)
	metrics.SrvMetrics.InitializeMetrics(srv)

	return &Handler{
		name: name,
		srv:  srv,
		hsrv: hsrv,
	}
}

func (h *Handler) Start(port int) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%v", port))
	if err != nil {
		zap.L().Fatal("failed to listen", zap.Error(err))
	}

	zap.L().Info("Starting GRPC server", zap.Int("port", port))
	if err = h.srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		zap.L().Fatal("failed to serve", zap.Error(err))
	}
}

// Close reports NOT_SERVING to health probes before draining connections.
func (h *Handler) Close() error {
	h.hsrv.SetServingStatus(h.name, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	h.hsrv.Shutdown()
	h.srv.GracefulStop()
	return nil
}
