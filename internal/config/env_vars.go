package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar      = "PORT"
	appNameVar      = "APP_NAME"
	redisAddrEnvVar = "REDIS_ADDR"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Ordering Auth")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetRedisAddr returns the Redis address for session storage. An empty
// value selects the in-memory session store.
func (EnvVars) GetRedisAddr() string {
	return GetEnv(redisAddrEnvVar, "")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
