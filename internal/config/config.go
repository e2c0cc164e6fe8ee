package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"tab-audit"`

	Server ServerConfig  `envPrefix:"SERVER_"`
	DB     DBConfig      `envPrefix:"POSTGRES_"`
	Redis  RedisConfig   `envPrefix:"REDIS_"`
	Auth   AuthConfig    `envPrefix:"AUTH_"`
	OTP    OTPConfig     `envPrefix:"OTP_"`
	S3     S3Config      `envPrefix:"MINIO_"`
	Seed   SeedConfig    `envPrefix:"SEED_"`
	Jaeger *JaegerConfig `envPrefix:"JAEGER_"`
}

type ServerConfig struct {
	Mode     string `env:"MODE"      envDefault:"dev"`
	Port     int    `env:"PORT"      envDefault:"8000"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50050"`
	Scheme   string `env:"SCHEME"    envDefault:"http"`
	Domain   string `env:"DOMAIN"    envDefault:"localhost"`
	TimeZone string `env:"TIME_ZONE" envDefault:"UTC"`
}

type DBConfig struct {
	Driver   string `env:"DRIVER"   envDefault:"postgres"`
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DB"       envDefault:"tab_audit"`
}

type RedisConfig struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	Pass string `env:"PASS"`
	DB   int    `env:"DB"   envDefault:"0"`
}

type AuthConfig struct {
	JWT JWTConfig `envPrefix:"JWT_"`
}

type JWTConfig struct {
	Secret     string        `env:"SECRET,required"`
	Issuer     string        `env:"ISSUER"      envDefault:"tab-audit"`
	AccessTTL  time.Duration `env:"ACCESS_TTL"  envDefault:"30m"`
	RefreshTTL time.Duration `env:"REFRESH_TTL" envDefault:"168h"`
}

// OTPConfig controls return challenges. Length and TTL are deployment choices.
type OTPConfig struct {
	Length        int           `env:"LENGTH"         envDefault:"6"`
	TTL           time.Duration `env:"TTL"            envDefault:"15m"`
	MaxAttempts   int           `env:"MAX_ATTEMPTS"   envDefault:"5"`
	AttemptWindow time.Duration `env:"ATTEMPT_WINDOW" envDefault:"15m"`
}

type S3Config struct {
	Enabled   bool   `env:"ENABLED"     envDefault:"false"`
	Addr      string `env:"ADDR"        envDefault:"localhost:9000"`
	AccessKey string `env:"ROOT_USER"`
	SecretKey string `env:"ROOT_PASSWORD"`
	Bucket    string `env:"BUCKET"      envDefault:"tab-audit-exports"`
	UseSSL    bool   `env:"USE_SSL"     envDefault:"false"`
}

// SeedConfig describes the admin account pre-created on an empty store.
type SeedConfig struct {
	EmployeeID string `env:"ADMIN_EMPLOYEE_ID" envDefault:"ADMIN-001"`
	Username   string `env:"ADMIN_USERNAME"    envDefault:"admin"`
	Password   string `env:"ADMIN_PASSWORD"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `env:"SAMPLER_TYPE"  envDefault:"const"`
		Param float64 `env:"SAMPLER_PARAM" envDefault:"1"`
	}
	Reporter struct {
		LogSpans           bool   `env:"REPORTER_LOG_SPANS"             envDefault:"false"`
		LocalAgentHostPort string `env:"REPORTER_LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
	}
}

// Location resolves the configured time zone used for "today" boundaries and CSV timestamps.
func (c ServerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		zap.L().Warn("unknown time zone, falling back to UTC", zap.String("tz", c.TimeZone), zap.Error(err))
		return time.UTC
	}
	return loc
}

func MustLoad(path string) Config {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("failed to load env file: " + err.Error())
	}

	conf := Config{Jaeger: &JaegerConfig{}}
	if err := env.Parse(&conf); err != nil {
		panic("failed to parse config: " + err.Error())
	}

	zap.L().Info("Config loaded", zap.String("path", path))
	return conf
}
