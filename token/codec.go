// Package token encodes and decodes the opaque bearer tokens that bind a
// session to a customer. A token carries the subject identifier and the
// validity window, so both can be read without a storage round trip, but
// the persisted session record stays authoritative for logout status.
package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMalformedToken indicates the bearer string could not be parsed or its
// signature did not verify. It is distinct from a token that decodes fine
// but has no matching session, and from an expired session.
var ErrMalformedToken = errors.New("malformed access token")

// Claims is the decoded content of a session token.
type Claims struct {
	Subject   string    // Customer UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec encodes and decodes session tokens with a fixed signer.
type Codec struct {
	signer Signer
}

// NewCodec creates a Codec backed by the given signer.
func NewCodec(signer Signer) *Codec {
	return &Codec{signer: signer}
}

// Encode produces a signed bearer token binding the subject to its
// validity window.
func (c *Codec) Encode(subject string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwtlib.MapClaims{
		"sub": subject,
		"iat": issuedAt.Unix(),
		"exp": expiresAt.Unix(),
		"jti": uuid.New().String(),
	}

	signedToken, err := c.signer.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "[Codec.Encode] signer.Sign")
	}
	return signedToken, nil
}

// Decode parses and verifies a bearer token. Expiry is NOT enforced here:
// the session authority checks the stored record so that logout status can
// take precedence over expiry.
func (c *Codec) Decode(raw string) (*Claims, error) {
	parsed, err := jwtlib.Parse(raw, c.signer.GetVerificationKey,
		jwtlib.WithValidMethods([]string{c.signer.GetSigningMethod().Alg()}),
		jwtlib.WithoutClaimsValidation(),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrMalformedToken
	}

	mapClaims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, ErrMalformedToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrMalformedToken
	}
	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return nil, ErrMalformedToken
	}
	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, ErrMalformedToken
	}

	return &Claims{
		Subject:   subject,
		IssuedAt:  issuedAt.Time,
		ExpiresAt: expiresAt.Time,
	}, nil
}
