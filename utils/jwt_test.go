package utils_test

import (
	"testing"

	"marketpro/config"
	"marketpro/models"
	"marketpro/utils"
)

func TestMain(m *testing.M) {
	if err := config.LoadConfig(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{ID: 7, Username: "alice"}

	token, err := utils.GenerateJWTToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := utils.ParseJWTToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(claims.IssuedAt.Time) {
		t.Error("expected expiry after issue time")
	}
}

func TestParseJWTTokenRejectsTampering(t *testing.T) {
	user := &models.User{ID: 7}
	token, err := utils.GenerateJWTToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := utils.ParseJWTToken(token + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}
	if _, err := utils.ParseJWTToken("not-a-token"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}
