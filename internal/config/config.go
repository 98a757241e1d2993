package config

import "time"

type Config interface {
	EnvConfig
	TokenConfig
	RedisConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
}

type TokenConfig interface {
	GetIssuer() string
	GetSigningSecret() string
	GetAccessTokenTTL() time.Duration
	GetRefreshTokenTTL() time.Duration
}

type RedisConfig interface {
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
}

type CorsConfig interface {
	GetAllowedOrigins() []string
}
