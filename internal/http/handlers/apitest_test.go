package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"bubblycrochet/internal/config"
	"bubblycrochet/internal/domain"
	"bubblycrochet/internal/http/handlers"
	"bubblycrochet/internal/repos"
)

// newTestApp stands up the production routing on an in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	if err := repos.EnsureSchema(db); err != nil {
		t.Fatal(err)
	}
	app := fiber.New()
	deps := handlers.NewDeps(db, config.Config{
		JWTSecret: "test_secret",
		JWTTTL:    time.Hour,
	})
	deps.Register(app)
	return app, db
}

// seedAdmin inserts an admin account (admin@x.com / admin123) directly,
// mirroring the create-admin command.
func seedAdmin(t *testing.T, db *sqlx.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		t.Fatal(err)
	}
	u := &domain.User{
		ID: "u-admin", Email: "admin@x.com", Name: "Admin", Hash: string(hash),
		Role: domain.RoleAdmin, Active: true,
	}
	u.EncodeInterests()
	if err := repos.NewUserRepo(db).Create(u); err != nil {
		t.Fatal(err)
	}
}

func jsonReq(method, path string, body any, token string) *http.Request {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// do runs a request through the app and decodes the JSON body.
func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var body map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("bad json %q: %v", raw, err)
		}
	}
	return resp.StatusCode, body
}

// register creates a client account and returns its token and user id.
func register(t *testing.T, app *fiber.App, email, password, name, address string) (token, id string) {
	t.Helper()
	status, body := do(t, app, jsonReq("POST", "/api/auth/register", fiber.Map{
		"email": email, "password": password, "name": name, "address": address,
	}, ""))
	if status != http.StatusCreated {
		t.Fatalf("register failed: %d %v", status, body)
	}
	token = body["token"].(string)
	id = body["user"].(map[string]any)["id"].(string)
	return token, id
}

// adminLogin seeds the admin if needed and returns an admin token.
func adminLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := do(t, app, jsonReq("POST", "/api/auth/admin/login", fiber.Map{
		"email": "admin@x.com", "password": "admin123",
	}, ""))
	if status != http.StatusOK {
		t.Fatalf("admin login failed: %d %v", status, body)
	}
	return body["token"].(string)
}

// createProduct posts a product as admin and returns its id.
func createProduct(t *testing.T, app *fiber.App, adminTok string, p fiber.Map) string {
	t.Helper()
	status, body := do(t, app, jsonReq("POST", "/api/products", p, adminTok))
	if status != http.StatusCreated {
		t.Fatalf("create product failed: %d %v", status, body)
	}
	return body["product"].(map[string]any)["id"].(string)
}
