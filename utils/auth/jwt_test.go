package auth

import (
	"testing"
	"time"
)

func testManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret-not-for-production",
		Expiry: expiry,
		Issuer: "academy-api-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := testManager(time.Hour)

	token, err := manager.GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 1 {
		t.Errorf("UserID = %d, want 1", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
	if claims.Issuer != "academy-api-test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "academy-api-test")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := testManager(time.Hour)
	other := NewJWTManager(JWTConfig{Secret: "different-secret", Expiry: time.Hour, Issuer: "x"})

	token, err := manager.GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("ValidateToken with wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	manager := testManager(-time.Minute)

	token, err := manager.GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := manager.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateToken with expired token: err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := testManager(time.Hour)

	if _, err := manager.ValidateToken("not.a.token"); err != ErrInvalidToken {
		t.Errorf("ValidateToken with garbage: err = %v, want ErrInvalidToken", err)
	}
}
