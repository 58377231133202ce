package mock

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SigningKey signs tokens created by NewJWT.
var SigningKey = []byte("svcauth-mock-signing-key")

// NewJWT creates an HS256 token for subject carrying extra claims.
func NewJWT(subject string, extra map[string]interface{}, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": "svcauth-mock",
		"sub": subject,
		"exp": now.Add(expiry).Unix(),
		"iat": now.Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(SigningKey)
}
