package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mworx/stockroom/internal/auth"
	api "github.com/mworx/stockroom/internal/http"
	handler "github.com/mworx/stockroom/internal/http/handlers"
	rl "github.com/mworx/stockroom/internal/http/rate_limiter"
	"github.com/mworx/stockroom/internal/inventory"
	"github.com/mworx/stockroom/internal/models"
	"github.com/mworx/stockroom/internal/repo"
)

const demoPassword = "mworx123"

var (
	adminUser = models.User{
		ID: "1", Email: "admin@mworx.com", Name: "M-Worx Administrator",
		Role: models.RoleAdmin, IsActive: true,
	}
	regularUser = models.User{
		ID: "3", Email: "staff@mworx.com", Name: "Stockroom Staff",
		Role: models.RoleUser, IsActive: true,
	}
)

// setupRouter wires the handlers against fresh in-memory repositories and
// returns the router plus direct access to the stores.
func setupRouter(t *testing.T) (http.Handler, *repo.InMemoryAlertRepository, *repo.InMemoryActivityRepository) {
	t.Helper()
	rl.CleanupAllVisitors()

	items := repo.NewInMemoryItemRepository()
	alerts := repo.NewInMemoryAlertRepository()
	activities := repo.NewInMemoryActivityRepository()
	users := repo.NewInMemoryUserRepository()
	if err := auth.SeedDemoUsers(users, demoPassword); err != nil {
		t.Fatalf("seeding demo users: %v", err)
	}

	svc := inventory.NewService(items, alerts, activities)
	handler.SetInventoryService(svc)
	handler.SetUserRepo(users)

	return api.NewRouter(), alerts, activities
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return token
}

func doJSON(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(r http.Handler, token string, payload handler.ItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/items", token, payload)
}

func validItemRequest(productID string, quantity, reorderPoint int) handler.ItemRequest {
	return handler.ItemRequest{
		ProductID:    productID,
		Name:         "A4 Premium Paper",
		Category:     "Paper",
		Quantity:     quantity,
		UnitPrice:    12.99,
		ReorderPoint: reorderPoint,
		Supplier:     "Paper Plus Suppliers",
	}
}
