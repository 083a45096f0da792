package controller_test

import (
	"net/http"
	"testing"

	"marketpro/store"
)

func TestRegister(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", map[string]interface{}{
		"username":  "alice",
		"email":     "alice@example.com",
		"password":  "s3cret",
		"firstName": "Alice",
		"lastName":  "Smith",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]map[string]interface{}
	decodeBody(t, resp, &body)

	user := body["user"]
	if user == nil {
		t.Fatal("expected user in response")
	}
	if user["username"] != "alice" {
		t.Errorf("expected username alice, got %v", user["username"])
	}
	if user["plan"] != "starter" {
		t.Errorf("expected starter plan default, got %v", user["plan"])
	}
	if _, ok := user["password"]; ok {
		t.Error("password leaked into register response")
	}
	if _, ok := user["passwordHash"]; ok {
		t.Error("password hash leaked into register response")
	}

	// Stored hash, not plaintext.
	stored, ok := s.GetUserByEmail("alice@example.com")
	if !ok {
		t.Fatal("registered user missing from store")
	}
	if stored.PasswordHash == "s3cret" || stored.PasswordHash == "" {
		t.Error("expected bcrypt hash in store")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, s := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", map[string]interface{}{
		"username":  "demo2",
		"email":     "demo@marketpro.com",
		"password":  "whatever",
		"firstName": "Demo",
		"lastName":  "Two",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", resp.StatusCode)
	}

	// The rejected registration must not mutate the store.
	if _, ok := s.GetUserByUsername("demo2"); ok {
		t.Error("duplicate registration created a user")
	}
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/register", map[string]interface{}{
		"username": "bob",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeBody(t, resp, &body)
	if len(body.Errors) == 0 {
		t.Fatal("expected field-level errors")
	}

	fields := make(map[string]bool)
	for _, fieldErr := range body.Errors {
		fields[fieldErr.Field] = true
	}
	for _, want := range []string{"email", "password", "firstName", "lastName"} {
		if !fields[want] {
			t.Errorf("expected error for field %q, got %v", want, fields)
		}
	}
}

func TestLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email":    "demo@marketpro.com",
		"password": store.DemoPassword,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]interface{}
	decodeBody(t, resp, &body)

	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user in login response")
	}
	if user["email"] != "demo@marketpro.com" {
		t.Errorf("unexpected email %v", user["email"])
	}
	if _, ok := user["password"]; ok {
		t.Error("password leaked into login response")
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("expected token in login response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email":    "demo@marketpro.com",
		"password": "not-the-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestGetUser(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/users/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var user map[string]interface{}
	decodeBody(t, resp, &user)
	if user["username"] != "demo" {
		t.Errorf("expected demo user, got %v", user["username"])
	}
	if _, ok := user["password"]; ok {
		t.Error("password leaked into user response")
	}

	resp = doJSON(t, app, "GET", "/api/users/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for missing user, got %d", resp.StatusCode)
	}
}
