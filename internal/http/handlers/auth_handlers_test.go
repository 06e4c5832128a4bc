package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/mworx/stockroom/internal/http/handlers"
	"github.com/mworx/stockroom/internal/models"
)

func TestLoginHandler_Valid(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{
		Email:    adminUser.Email,
		Password: demoPassword,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Token == "" {
		t.Error("expected access token in response")
	}
	if result.User.Email != adminUser.Email {
		t.Errorf("expected user email %q, got %q", adminUser.Email, result.User.Email)
	}
	if result.User.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %q", result.User.Role)
	}
	if result.User.LastLogin.IsZero() {
		t.Error("expected last login to be stamped")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{
		Email:    adminUser.Email,
		Password: "not-the-password",
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{
		Email:    "nobody@mworx.com",
		Password: demoPassword,
	})

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_AppendsActivity(t *testing.T) {
	r, _, activities := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{
		Email:    adminUser.Email,
		Password: demoPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	entries, err := activities.Recent(0)
	if err != nil {
		t.Fatalf("reading activities: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 activity entry, got %d", len(entries))
	}
	if entries[0].Action != models.ActionLogin {
		t.Errorf("expected login action, got %q", entries[0].Action)
	}
	if entries[0].UserName != adminUser.Name {
		t.Errorf("expected actor %q, got %q", adminUser.Name, entries[0].UserName)
	}
}

func TestLogoutHandler_AppendsActivity(t *testing.T) {
	r, _, activities := setupRouter(t)
	token := tokenFor(t, adminUser)

	w := doJSON(r, http.MethodPost, "/logout", token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	entries, _ := activities.Recent(0)
	if len(entries) != 1 || entries[0].Action != models.ActionLogout {
		t.Errorf("expected a single logout activity, got %+v", entries)
	}
}

func TestMeHandler(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := tokenFor(t, adminUser)

	w := doJSON(r, http.MethodGet, "/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var user models.User
	if err := json.NewDecoder(w.Body).Decode(&user); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if user.Email != adminUser.Email {
		t.Errorf("expected %q, got %q", adminUser.Email, user.Email)
	}
}

func TestMeHandler_Unauthorized(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/me", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
