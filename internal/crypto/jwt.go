package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the JWT payload for a session token. The username is the only
// identity claim; role and user id are re-read from the store on every
// authorized request rather than trusted from the token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

const tokenIssuer = "devs-dairy"

// GenerateToken signs a session token for the given username with HS256.
// Tokens carry no expiry; the signing secret is fixed for the process's
// lifetime and possession of a valid signature is the sole proof of
// authenticity.
func GenerateToken(username, secret string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   tokenIssuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies the signature and issuer of a session token and
// returns its claims. Structurally malformed tokens, wrong signatures and
// non-HMAC signing methods all come back as ErrInvalidToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
