package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActorTokenIssuer is the issuer stamped on tokens minted by sitebooksctl.
const ActorTokenIssuer = "sitebooksctl"

// IssueActorToken signs an HS256 token whose subject is the acting user.
func IssueActorToken(userID string, secret string, ttl time.Duration, now time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    ActorTokenIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseActorToken validates the signature and standard claims and returns them.
// Errors wrap the jwt sentinels, so errors.Is(err, jwt.ErrTokenExpired) works.
func ParseActorToken(tokenString string, secret string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
