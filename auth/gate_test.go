package auth_test

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foodworks/go-ordering-auth/auth"
	"github.com/foodworks/go-ordering-auth/internal/apperr"
)

func basicAuthHeader(contactNumber, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(contactNumber+":"+password))
}

func TestBearerToken(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tok, err := auth.BearerToken("Bearer abc.def.ghi")
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", tok)
	})

	t.Run("missing prefix", func(t *testing.T) {
		_, err := auth.BearerToken("abc.def.ghi")
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := auth.BearerToken("Bearer ")
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})

	t.Run("empty header", func(t *testing.T) {
		_, err := auth.BearerToken("")
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})

	t.Run("basic instead of bearer", func(t *testing.T) {
		_, err := auth.BearerToken(basicAuthHeader("9876543210", "Abcd123!"))
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})
}

func TestBasicCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		contact, password, err := auth.BasicCredentials(basicAuthHeader("9876543210", "Abcd123!"))
		require.NoError(t, err)
		require.Equal(t, "9876543210", contact)
		require.Equal(t, "Abcd123!", password)
	})

	t.Run("missing prefix", func(t *testing.T) {
		_, _, err := auth.BasicCredentials("9876543210:Abcd123!")
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})

	t.Run("invalid base64", func(t *testing.T) {
		_, _, err := auth.BasicCredentials("Basic !!!not-base64!!!")
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})

	t.Run("missing separator", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString([]byte("9876543210Abcd123!"))
		_, _, err := auth.BasicCredentials("Basic " + encoded)
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})
}

func TestGate(t *testing.T) {
	t.Run("login then authenticate", func(t *testing.T) {
		f := setupTestFixture(t)
		created := f.signupTestCustomer(t)

		session, err := f.gate.Login(context.Background(), basicAuthHeader(testContactNumber, testPassword))
		require.NoError(t, err)

		resolved, err := f.gate.Authenticate(context.Background(), "Bearer "+session.AccessToken)
		require.NoError(t, err)
		require.Equal(t, created.UUID, resolved.UUID)
	})

	t.Run("login with malformed header", func(t *testing.T) {
		f := setupTestFixture(t)
		f.signupTestCustomer(t)

		_, err := f.gate.Login(context.Background(), "Bearer whatever")
		require.ErrorIs(t, err, apperr.ErrMalformedHeader)
	})

	t.Run("authenticate after logout", func(t *testing.T) {
		f := setupTestFixture(t)
		f.signupTestCustomer(t)

		session, err := f.gate.Login(context.Background(), basicAuthHeader(testContactNumber, testPassword))
		require.NoError(t, err)

		_, err = f.gate.Logout(context.Background(), "Bearer "+session.AccessToken)
		require.NoError(t, err)

		_, err = f.gate.Authenticate(context.Background(), "Bearer "+session.AccessToken)
		require.ErrorIs(t, err, apperr.ErrAlreadyLoggedOut)
	})
}
