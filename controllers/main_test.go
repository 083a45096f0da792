package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"marketpro/config"
	"marketpro/routes"
	"marketpro/store"
)

func TestMain(m *testing.M) {
	if err := config.LoadConfig(); err != nil {
		panic(err)
	}
	m.Run()
}

// newTestApp builds an isolated fiber app over a freshly seeded store.
func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	s := store.New()
	if err := s.Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	routes.SetupRoutes(app, s, logger)
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
