package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	before := time.Now()
	token, err := GenerateJWTToken("test-issuer", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(123), token.UserID)
	assert.WithinDuration(t, before.Add(time.Hour), token.ExpiresAt, 2*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)
	assert.Equal(t, generated.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Hour, "correct-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("issuer-a", 1, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "issuer-b")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, -time.Minute, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

// TestValidateAndParseJWTToken_ExpiresAfterDuration moves the parser clock
// past the token lifetime instead of sleeping.
func TestValidateAndParseJWTToken_ExpiresAfterDuration(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss",
		jwt.WithTimeFunc(func() time.Time { return time.Now().Add(59 * time.Minute) }))
	assert.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "key", "iss",
		jwt.WithTimeFunc(func() time.Time { return time.Now().Add(61 * time.Minute) }))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.valid.token", "key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_MissingExpiration(t *testing.T) {
	claims := &jwt.RegisteredClaims{Issuer: "iss", Subject: "1"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestValidateAndParseJWTToken_BadSubject(t *testing.T) {
	for _, subject := range []string{"", "abc"} {
		t.Run("subject="+subject, func(t *testing.T) {
			claims := &jwt.RegisteredClaims{
				Issuer:    "iss",
				Subject:   subject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
			require.NoError(t, err)

			_, err = ValidateAndParseJWTToken(signed, "key", "iss")
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_TamperedPayload(t *testing.T) {
	generated, err := GenerateJWTToken("iss", 1, time.Hour, "key")
	require.NoError(t, err)

	parts := strings.Split(generated.SignedString, ".")
	require.Len(t, parts, 3)
	other, err := GenerateJWTToken("iss", 2, time.Hour, "key")
	require.NoError(t, err)
	otherParts := strings.Split(other.SignedString, ".")

	tampered := parts[0] + "." + otherParts[1] + "." + parts[2]
	_, err = ValidateAndParseJWTToken(tampered, "key", "iss")
	assert.Error(t, err)
}
