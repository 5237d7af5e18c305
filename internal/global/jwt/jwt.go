package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"student-portal-system/config"
	"student-portal-system/tools"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Payload identifies an authenticated principal: a student by reg number or
// an admin by username.
type Payload struct {
	Subject string `json:"sub_id"`
	Role    string `json:"role"`
}

type Claims struct {
	Payload
	jwt.RegisteredClaims
}

// CreateToken signs an access token for the payload using the configured
// secret and lifetime.
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessExpire) * time.Second)),
			Issuer:    "student-portal-system",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessSecret))
	tools.PanicOnErr(err)
	return token
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(config.Get().JWT.AccessSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
