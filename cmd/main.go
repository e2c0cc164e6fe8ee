package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/cache/redis"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/ctrl"
	"github.com/JMURv/tab-audit/internal/hdl/grpc"
	"github.com/JMURv/tab-audit/internal/hdl/http"
	"github.com/JMURv/tab-audit/internal/observability/metrics/prometheus"
	"github.com/JMURv/tab-audit/internal/observability/tracing/jaeger"
	"github.com/JMURv/tab-audit/internal/otp"
	"github.com/JMURv/tab-audit/internal/repo/db"
	"github.com/JMURv/tab-audit/internal/repo/memory"
	"github.com/JMURv/tab-audit/internal/repo/s3"
	"go.uber.org/zap"
)

const configPath = ".env"

type repository interface {
	ctrl.AppRepo
	Close(ctx context.Context) error
}

func mustRegisterLogger(mode string) {
	switch mode {
	case "prod":
		zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	case "dev":
		zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))
	}
}

func mustRepo(conf config.Config) repository {
	switch conf.DB.Driver {
	case "memory":
		zap.L().Warn("Using in-memory storage, state is lost on restart")
		return memory.NewWithSeed(conf)
	case "postgres":
		return db.New(conf)
	default:
		zap.L().Fatal("unknown storage driver", zap.String("driver", conf.DB.Driver))
		return nil
	}
}

//	@title			Tab Audit API
//	@version		1.0
//	@description	Device assignment and verified return engine
//	@BasePath		/
func main() {
	defer func() {
		if err := recover(); err != nil {
			zap.L().Panic("panic occurred", zap.Any("error", err))
			os.Exit(1)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conf := config.MustLoad(configPath)
	mustRegisterLogger(conf.Server.Mode)

	go prometheus.New(conf.Server.Port + 5).Start(ctx)
	go jaeger.Start(ctx, conf.ServiceName, conf.Jaeger)

	issuer, err := otp.New(conf.OTP)
	if err != nil {
		zap.L().Fatal("invalid otp configuration", zap.Error(err))
	}

	var storage ctrl.S3Service
	if conf.S3.Enabled {
		storage = s3.New(conf.S3)
	}

	cache := redis.New(conf.Redis)
	repo := mustRepo(conf)
	au := auth.New(conf)
	svc := ctrl.New(au, repo, cache, storage, issuer, conf)

	h := http.New(au, svc)
	g := grpc.New(conf.ServiceName, au)

	zap.L().Info(
		fmt.Sprintf(
			"Starting server on %v://%v:%v",
			conf.Server.Scheme,
			conf.Server.Domain,
			conf.Server.Port,
		),
	)
	go h.Start(conf.Server.Port)
	go g.Start(conf.Server.GRPCPort)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-c

	zap.L().Info("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err = h.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing http handler", zap.Error(err))
	}

	if err = g.Close(); err != nil {
		zap.L().Warn("Error closing grpc handler", zap.Error(err))
	}

	if err = cache.Close(); err != nil {
		zap.L().Warn("Failed to close connection to Redis: ", zap.Error(err))
	}

	if err = repo.Close(shutdownCtx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}

	os.Exit(0)
}
