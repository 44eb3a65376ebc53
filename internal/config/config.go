package config

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetRedisAddr() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
	GetExposedHeaders() string
}

type SecurityConfig interface {
	GetTokenSigningSecret() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
}

func New() Config {
	return mainConfig{}
}
