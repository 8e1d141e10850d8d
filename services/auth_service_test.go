package services

import (
	"testing"

	"nfl-prediction-api/config"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(
		config.JWTConfig{Secret: "test-secret-key", ExpiryHours: 24},
		config.AdminConfig{Username: "admin", Password: "letmein123"},
	)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}
	return svc
}

func TestCheckCredentials(t *testing.T) {
	svc := newTestAuthService(t)

	if !svc.CheckCredentials("admin", "letmein123") {
		t.Error("CheckCredentials should accept the configured admin login")
	}
	if svc.CheckCredentials("admin", "wrongpassword") {
		t.Error("CheckCredentials should reject a wrong password")
	}
	if svc.CheckCredentials("intruder", "letmein123") {
		t.Error("CheckCredentials should reject an unknown username")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestAuthService(t)

	token, err := svc.GenerateToken("admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("token should not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
	if claims.ExpiresAt == nil {
		t.Error("ExpiresAt should be set")
	}
	if claims.IssuedAt == nil {
		t.Error("IssuedAt should be set")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("invalid.token.string")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc1, err := NewAuthService(
		config.JWTConfig{Secret: "secret-1", ExpiryHours: 24},
		config.AdminConfig{Username: "admin", Password: "pw"},
	)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}
	svc2, err := NewAuthService(
		config.JWTConfig{Secret: "secret-2", ExpiryHours: 24},
		config.AdminConfig{Username: "admin", Password: "pw"},
	)
	if err != nil {
		t.Fatalf("NewAuthService failed: %v", err)
	}

	token, _ := svc1.GenerateToken("admin")

	if _, err := svc2.ValidateToken(token); err == nil {
		t.Error("expected error when validating with wrong secret")
	}
}
