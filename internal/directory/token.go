package directory

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/janovian/stillpoint/internal/common"
)

// verificationClaims carries the account email as the token subject.
type verificationClaims struct {
	jwt.RegisteredClaims
}

// TokenIssuer mints and checks email-verification tokens (HS256). Token
// delivery is an external concern; the simulated sender just surfaces the
// token to the user.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(secret []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, validity: validity}
}

// Issue returns a signed verification token for the email.
func (i *TokenIssuer) Issue(email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, verificationClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validity)),
		},
	})
	return token.SignedString(i.secret)
}

// Verify parses a verification token and returns the email it was issued
// for. Expired, unsigned, or malformed tokens all fail with
// common.ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &verificationClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
