package http

import (
	"context"
	"database/sql"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JMURv/tab-audit/internal/auth"
	"github.com/JMURv/tab-audit/internal/cache/redis"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/JMURv/tab-audit/internal/ctrl"
	hdl "github.com/JMURv/tab-audit/internal/hdl/http"
	"github.com/JMURv/tab-audit/internal/otp"
	"github.com/JMURv/tab-audit/internal/repo/db"
	"github.com/JMURv/tab-audit/internal/repo/s3"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const getTables = `
SELECT tablename
FROM pg_tables
WHERE schemaname = 'public' AND tablename <> 'schema_migrations';
`

var rootDir = filepath.Join("..", "..", "..")

// bind publishes container ports given as "host:container" or "port".
func bind(ports ...string) func(*container.HostConfig) {
	return func(hostConfig *container.HostConfig) {
		hostConfig.PortBindings = nat.PortMap{}
		for _, p := range ports {
			host, inner, ok := strings.Cut(p, ":")
			if !ok {
				inner = host
			}
			hostConfig.PortBindings[nat.Port(inner+"/tcp")] = []nat.PortBinding{
				{HostIP: "0.0.0.0", HostPort: host},
			}
		}
	}
}

func mustStart(name string, req testcontainers.ContainerRequest) testcontainers.Container {
	c, err := testcontainers.GenericContainer(context.Background(), testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		panic(err)
	}

	zap.L().Info("Container is ready", zap.String("name", name))
	return c
}

func getRedis() testcontainers.Container {
	return mustStart("redis", testcontainers.ContainerRequest{
		Image:              "redis:alpine",
		ExposedPorts:       []string{"6379/tcp"},
		WaitingFor:         wait.ForLog("Ready to accept connections"),
		HostConfigModifier: bind("6379"),
	})
}

func getPostgres() testcontainers.Container {
	user, database := os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_DB")
	return mustStart("postgres", testcontainers.ContainerRequest{
		Image:        "postgres:17.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForHealthCheck(),
		ConfigModifier: func(conf *container.Config) {
			conf.Healthcheck = &container.HealthConfig{
				Test:        []string{"CMD-SHELL", fmt.Sprintf("pg_isready -U %s -d %s", user, database)},
				Interval:    5 * time.Second,
				Timeout:     2 * time.Second,
				Retries:     5,
				StartPeriod: 2 * time.Second,
			}
		},
		HostConfigModifier: bind(os.Getenv("POSTGRES_PORT") + ":5432"),
		Env: map[string]string{
			"POSTGRES_DB":       database,
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": os.Getenv("POSTGRES_PASSWORD"),
		},
	})
}

func getMinio() testcontainers.Container {
	return mustStart("minio", testcontainers.ContainerRequest{
		Image: "minio/minio:RELEASE.2025-06-13T11-33-47Z",
		Cmd:   []string{"server", "/data"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("9000/tcp"),
			wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
		),
		ExposedPorts:       []string{"9000/tcp"},
		HostConfigModifier: bind("9000"),
		Env: map[string]string{
			"MINIO_ROOT_USER":     os.Getenv("MINIO_ROOT_USER"),
			"MINIO_ROOT_PASSWORD": os.Getenv("MINIO_ROOT_PASSWORD"),
		},
	})
}

// setupTestServer runs the full stack against fresh containers. db.New
// precreates the seed admin from the integration env.
func setupTestServer() (*httptest.Server, config.Config, func(t *testing.T)) {
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	conf := config.MustLoad(
		filepath.ToSlash(
			filepath.Join(rootDir, "config", ".env.integration"),
		),
	)

	_ = os.Setenv("MIGRATIONS_PATH", filepath.ToSlash(
		filepath.Join(rootDir, "internal", "repo", "db", "migration"),
	))

	redisC := getRedis()
	pgC := getPostgres()
	minioC := getMinio()

	issuer, err := otp.New(conf.OTP)
	if err != nil {
		panic(err)
	}

	au := auth.New(conf)
	cache := redis.New(conf.Redis)
	repo := db.New(conf)
	svc := ctrl.New(au, repo, cache, s3.New(conf.S3), issuer, conf)
	ts := httptest.NewServer(hdl.New(au, svc))

	cleanupFunc := func(t *testing.T) {
		ts.Close()
		_ = cache.Close()

		if err := truncate(conf); err != nil {
			t.Logf("failed to truncate tables: %v", err)
		}
		_ = repo.Close(context.Background())

		testcontainers.CleanupContainer(t, redisC)
		testcontainers.CleanupContainer(t, pgC)
		testcontainers.CleanupContainer(t, minioC)
	}

	return ts, conf, cleanupFunc
}

func truncate(conf config.Config) error {
	conn, err := sql.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.DB.User,
			conf.DB.Password,
			conf.DB.Host,
			conf.DB.Port,
			conf.DB.Database,
		),
	)
	if err != nil {
		return err
	}
	defer conn.Close()

	rows, err := conn.Query(getTables)
	if err != nil {
		return err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Debug("Error while closing rows", zap.Error(err))
		}
	}(rows)

	var tables []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return err
		}
		tables = append(tables, name)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	if len(tables) == 0 {
		return nil
	}

	_, err = conn.Exec(fmt.Sprintf("TRUNCATE TABLE %v RESTART IDENTITY CASCADE;", strings.Join(tables, ", ")))
	return err
}
