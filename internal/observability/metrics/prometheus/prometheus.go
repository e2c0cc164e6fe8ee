package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uber/jaeger-client-go"
	"go.uber.org/zap"
)

var (
	SrvMetrics = pm.NewServerMetrics(
		pm.WithServerHandlingTimeHistogram(
			pm.WithHistogramBuckets([]float64{0.001, 0.01, 0.1, 0.3, 0.6, 1, 3, 6, 9, 20, 30, 60, 90, 120}),
		),
	)

	requestMetrics = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "request_duration_seconds",
			Help:    "Duration of requests by operation and status code",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "op"},
	)

	ledgerEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_events_total",
			Help: "Committed checkouts and returns by action",
		},
		[]string{"action"},
	)

	otpFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "otp_verification_failures_total",
			Help: "Rejected return verifications by reason",
		},
		[]string{"reason"},
	)

	stockExhausted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_exhausted_total",
			Help: "Checkouts refused because a tab type ran out of stock",
		},
		[]string{"action"},
	)
)

func init() {
	prometheus.MustRegister(SrvMetrics, requestMetrics, ledgerEvents, otpFailures, stockExhausted)
}

// Exemplar attaches the current trace id to grpc histogram observations.
func Exemplar(ctx context.Context) prometheus.Labels {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return nil
	}

	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		return prometheus.Labels{"traceID": sc.TraceID().String()}
	}
	return nil
}

func ObserveRequest(d time.Duration, status int, op string) {
	requestMetrics.WithLabelValues(strconv.Itoa(status), op).Observe(d.Seconds())
}

func ObserveLedger(action string) {
	ledgerEvents.WithLabelValues(action).Inc()
}

func ObserveOTPFailure(reason string) {
	otpFailures.WithLabelValues(reason).Inc()
}

func ObserveStockExhausted(action string) {
	stockExhausted.WithLabelValues(action).Inc()
}

type Metrics struct {
	srv *http.Server
}

func New(port int) *Metrics {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Metrics{
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%v", port),
			Handler: mux,
		},
	}
}

func (m *Metrics) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Debug("Error shutting down metrics server", zap.Error(err))
		}
	}()

	zap.L().Info("Starting metrics server", zap.String("addr", m.srv.Addr))
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.L().Error("Metrics server error", zap.Error(err))
	}
}
