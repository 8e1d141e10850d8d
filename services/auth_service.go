package services

import (
	"errors"
	"time"

	"nfl-prediction-api/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and validates the admin tokens guarding the cache and
// debug endpoints. The configured admin password is hashed once at startup
// and only the hash is kept.
type AuthService struct {
	jwtSecret     []byte
	expiryH       int
	adminUsername string
	adminHash     string
}

func NewAuthService(jwtCfg config.JWTConfig, adminCfg config.AdminConfig) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		jwtSecret:     []byte(jwtCfg.Secret),
		expiryH:       jwtCfg.ExpiryHours,
		adminUsername: adminCfg.Username,
		adminHash:     string(hash),
	}, nil
}

// CheckCredentials verifies an admin login attempt.
func (s *AuthService) CheckCredentials(username, password string) bool {
	if username != s.adminUsername {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password)) == nil
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) GenerateToken(username string) (string, error) {
	claims := Claims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(
				time.Duration(s.expiryH) * time.Hour,
			)),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return s.jwtSecret, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
