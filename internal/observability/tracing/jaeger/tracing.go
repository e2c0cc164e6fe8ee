package jaeger

import (
	"context"

	cfg "github.com/JMURv/tab-audit/internal/config"
	"github.com/opentracing/opentracing-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
)

// Start installs the global tracer and keeps it until ctx is cancelled.
// Without a configuration the noop tracer stays in place.
func Start(ctx context.Context, serviceName string, conf *cfg.JaegerConfig) {
	if conf == nil || conf.Reporter.LocalAgentHostPort == "" {
		zap.L().Info("Jaeger is not configured, tracing disabled")
		return
	}

	tracerCfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  conf.Sampler.Type,
			Param: conf.Sampler.Param,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:           conf.Reporter.LogSpans,
			LocalAgentHostPort: conf.Reporter.LocalAgentHostPort,
		},
	}

	tracer, closer, err := tracerCfg.NewTracer()
	if err != nil {
		zap.L().Error("Error initializing Jaeger tracer", zap.Error(err))
		return
	}

	opentracing.SetGlobalTracer(tracer)
	zap.L().Info("Jaeger has been started", zap.String("agent", conf.Reporter.LocalAgentHostPort))
	<-ctx.Done()

	if err = closer.Close(); err != nil {
		zap.L().Debug("Error shutting down Jaeger", zap.Error(err))
	}
	zap.L().Info("Jaeger has been stopped")
}
