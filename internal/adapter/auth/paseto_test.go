package auth_test

import (
	"testing"

	"github.com/hatien/petmart/internal/adapter/auth"
	"github.com/hatien/petmart/internal/core/domain"
	"github.com/hatien/petmart/internal/core/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service, err := auth.New()
	require.NoError(t, err)

	payload := &port.TokenPayload{UserID: 42, Role: "user"}

	token, err := service.CreateToken(payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, payload.UserID, parsed.UserID)
	assert.Equal(t, payload.Role, parsed.Role)
}

func TestVerifyToken_Garbage(t *testing.T) {
	service, err := auth.New()
	require.NoError(t, err)

	_, err = service.VerifyToken("v4.local.not-a-real-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyToken_ForeignKey(t *testing.T) {
	issuer, err := auth.New()
	require.NoError(t, err)
	verifier, err := auth.New()
	require.NoError(t, err)

	token, err := issuer.CreateToken(&port.TokenPayload{UserID: 42, Role: "user"})
	require.NoError(t, err)

	// each instance generates its own key, so tokens do not transfer
	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
