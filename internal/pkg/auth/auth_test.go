package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("abc123")
	require.NoError(t, err)
	require.NotEqual(t, "abc123", hash)

	assert.True(t, CheckPassword(hash, "abc123"))
	assert.False(t, CheckPassword(hash, "abc124"))
	assert.False(t, CheckPassword("not-a-hash", "abc123"))
}

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "feims.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService()
	userID := uuid.New()

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(userID, "a@b.edu")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.Equal(t, int64(3600), expiresIn)
	assert.Equal(t, int64(720*3600), refreshExpiresIn)

	// The refresh token is opaque, not a JWT.
	_, err = uuid.Parse(refresh)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@b.edu", claims.Email)
	assert.Equal(t, "feims.test", claims.Issuer)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := testJWTService()
	access, _, _, _, err := svc.GenerateTokenPair(uuid.New(), "a@b.edu")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "feims.test",
	})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  -time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "feims.test",
	})
	access, _, _, _, err := svc.GenerateTokenPair(uuid.New(), "a@b.edu")
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := testJWTService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// A bare token is accepted as is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
