package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"bookcall/config"
)

func adminSecret() []byte {
	secret := config.AppConfig.AdminJWTSecret
	if secret == "" {
		secret = "bookcall-dev-secret"
	}
	return []byte(secret)
}

// GenerateAdminToken creates a signed JWT for admin API access, expiring
// after the given duration.
func GenerateAdminToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminSecret())
}

// ValidateAdminToken parses a token string and verifies signature, expiry and
// the admin role claim.
func ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return adminSecret(), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return errors.New("invalid token")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return errors.New("token does not carry the admin role")
	}
	return nil
}
