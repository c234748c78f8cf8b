package auth

import (
	"fmt"
	"time"

	"scoutlink-server/internal/profile"
	"scoutlink-server/internal/shared/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SessionUser converts validated claims into the request identity.
func (c *Claims) SessionUser() (*SessionUser, error) {
	id, err := uuid.Parse(c.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile id in token: %w", err)
	}

	return &SessionUser{
		ProfileID: id,
		Email:     c.Email,
		Role:      profile.ParseRole(c.Role),
	}, nil
}

func GenerateJWT(p *profile.Profile) (string, error) {
	cfg := config.GlobalConfig

	claims := Claims{
		ProfileID: p.ID.String(),
		Email:     p.Email,
		Role:      p.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Auth.TokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   p.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.JWTSecret))
}

func ValidateJWT(tokenString string) (*Claims, error) {
	cfg := config.GlobalConfig

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
