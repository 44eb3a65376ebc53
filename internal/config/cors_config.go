package config

import (
	"os"
	"strings"
)

type Cors struct{}

var _ CorsConfig = Cors{}

type AllowedOrigins map[string]struct{}
type nullValue = struct{}

func (a AllowedOrigins) IsAllowedOrigin(origin string) bool {
	_, ok := a[origin]
	return ok
}

func (a AllowedOrigins) String() string {
	var origins []string
	for k := range a {
		origins = append(origins, k)
	}
	return strings.Join(origins, ", ")
}

func (Cors) GetAllowedOrigins() AllowedOrigins {
	origins := AllowedOrigins{}
	configured := os.Getenv("ALLOWED_ORIGINS")
	if configured == "" {
		return AllowedOrigins{"*": nullValue{}}
	}
	for _, origin := range strings.Split(configured, ",") {
		origins[strings.TrimSpace(origin)] = nullValue{}
	}
	return origins
}

func (Cors) GetAllowedMethods() string {
	return "GET, POST, PUT, PATCH, DELETE"
}

func (Cors) GetAllowedHeaders() string {
	return "Content-Type, Authorization"
}

// GetExposedHeaders lists response headers cross-origin callers may read.
// The login response carries the bearer token in "access-token", so that
// header must be visible to browser clients.
func (Cors) GetExposedHeaders() string {
	return "access-token"
}
