package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envPrefix = "SENTINEL"

// TTL defaults, in minutes. Refresh defaults to 30 days.
const (
	defaultAccessTTLMinutes  = 15
	defaultRefreshTTLMinutes = 30 * 24 * 60
)

// envVars is populated from the environment. TTLs stay strings so a
// malformed value falls back to the default instead of failing startup;
// the signing secret stays base64 so the token codec owns the one fatal
// decode.
type envVars struct {
	Port     string `envconfig:"PORT" default:"8080"`
	AppName  string `envconfig:"APP_NAME" default:"Sentinel"`
	Env      string `envconfig:"ENV" default:"DEV"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	JWTSecret         string `envconfig:"JWT_SECRET"`
	JWTIssuer         string `envconfig:"JWT_ISSUER" default:"nexus-auth"`
	AccessTTLMinutes  string `envconfig:"JWT_ACCESS_TTL_MINUTES" default:"15"`
	RefreshTTLMinutes string `envconfig:"JWT_REFRESH_TTL_MINUTES" default:"43200"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

var _ Config = (*envVars)(nil)

// New loads configuration from SENTINEL_-prefixed environment variables.
func New() (Config, error) {
	var e envVars
	if err := envconfig.Process(envPrefix, &e); err != nil {
		return nil, errors.Wrap(err, "processing environment")
	}
	return &e, nil
}

func (e *envVars) GetPort() string {
	port := e.Port
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e *envVars) GetAppName() string {
	return e.AppName
}

func (e *envVars) GetEnv() string {
	return e.Env
}

func (e *envVars) GetLogLevel() string {
	return e.LogLevel
}

func (e *envVars) GetIssuer() string {
	return e.JWTIssuer
}

func (e *envVars) GetSigningSecret() string {
	return e.JWTSecret
}

func (e *envVars) GetAccessTokenTTL() time.Duration {
	return minutesOrDefault(e.AccessTTLMinutes, defaultAccessTTLMinutes)
}

func (e *envVars) GetRefreshTokenTTL() time.Duration {
	return minutesOrDefault(e.RefreshTTLMinutes, defaultRefreshTTLMinutes)
}

func (e *envVars) GetRedisAddr() string {
	return e.RedisAddr
}

func (e *envVars) GetRedisPassword() string {
	return e.RedisPassword
}

func (e *envVars) GetRedisDB() int {
	return e.RedisDB
}

func (e *envVars) GetAllowedOrigins() []string {
	return e.AllowedOrigins
}

func minutesOrDefault(value string, fallbackMinutes int64) time.Duration {
	minutes, err := strconv.ParseInt(value, 10, 64)
	if err != nil || minutes <= 0 {
		minutes = fallbackMinutes
	}
	return time.Duration(minutes) * time.Minute
}
