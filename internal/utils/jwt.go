package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session identity inside the signed token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func GenerateJWT(userID, email, secret string, ttlDays int) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseJWT returns the user id and email from a valid token. Expiry comes
// back as jwt.ErrTokenExpired so callers can log it apart from tamper or
// garbage, which surface as other jwt errors.
func ParseJWT(tokenStr, secret string) (string, string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	if !token.Valid || claims.UserID == "" {
		return "", "", jwt.ErrTokenMalformed
	}
	return claims.UserID, claims.Email, nil
}
