package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload stored inside a session token. Binding the
// connection id into the claims means a token stolen from one connection
// is useless on another.
type SessionClaims struct {
	UserID       string `json:"user_id"`
	ConnectionID string `json:"connection_id"`
	jwt.RegisteredClaims
}

// signToken creates a signed session token for a user on one connection.
func signToken(secret []byte, connectionID, userID string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:       userID,
		ConnectionID: connectionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "chat-relay",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// parseToken validates the signature and expiry of a session token and
// returns its claims.
func parseToken(secret []byte, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}
