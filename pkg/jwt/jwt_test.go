package jwt

import (
	"errors"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, 2*time.Minute, 0)
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)

	claims, err = svc.ValidateToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTService_ValidateMalformedToken(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, 2*time.Minute, 0)

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute, -time.Minute, 0)

	token, err := svc.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_LeewayAcceptsRecentlyExpired(t *testing.T) {
	issuer := NewJWTService("secret", -time.Second, -time.Second, 0)
	token, err := issuer.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	strict := NewJWTService("secret", time.Minute, time.Minute, 0)
	_, err = strict.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)

	lenient := NewJWTService("secret", time.Minute, time.Minute, time.Minute)
	_, err = lenient.ValidateToken(token)
	assert.NoError(t, err)
}

func TestJWTService_ValidateWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Minute, 2*time.Minute, 0)
	verifier := NewJWTService("secret-b", time.Minute, 2*time.Minute, 0)

	token, err := issuer.GenerateAccessToken(uuid.New())
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ValidateWrongSigningMethod(t *testing.T) {
	svc := NewJWTService("secret", time.Minute, 2*time.Minute, 0)

	claims := gjwt.MapClaims{
		"userId": uuid.NewString(),
		"exp":    time.Now().Add(time.Minute).Unix(),
		"iat":    time.Now().Unix(),
		"nbf":    time.Now().Unix(),
	}
	unsigned := gjwt.NewWithClaims(gjwt.SigningMethodNone, claims)
	tokenStr, err := unsigned.SignedString(gjwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(tokenStr)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_SignErrorBranch(t *testing.T) {
	orig := signJWTToken
	t.Cleanup(func() { signJWTToken = orig })

	signJWTToken = func(*gjwt.Token, []byte) (string, error) {
		return "", errors.New("sign failed")
	}

	svc := NewJWTService("secret", time.Minute, 2*time.Minute, 0)
	_, err := svc.GenerateTokenPair(uuid.New())
	assert.Error(t, err)
}
