package config

type Security struct{}

var _ SecurityConfig = Security{}

// GetTokenSigningSecret returns the process-wide HMAC secret for session
// tokens. All tokens become invalid when it changes.
func (Security) GetTokenSigningSecret() string {
	return GetEnv("TOKEN_SIGNING_SECRET", "dev-only-signing-secret")
}
