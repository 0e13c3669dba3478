package handlers_test

import (
	"context"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/shop-backoffice/internal/http/handlers"
	"github.com/rogerio-castellano/shop-backoffice/internal/models"
)

func TestNewUserHandler(t *testing.T) {
	t.Cleanup(func() { _ = userRepo.Delete(context.Background(), "newcomer") })

	req := handler.UserRequest{ID: "newcomer", Name: "Newcomer", Email: "new@shop.test", Gender: models.GenderFemale, DOB: "2001-05-20"}
	w := doJSON(http.MethodPost, "/api/v1/user/new", req, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if msg := decode[handler.MessageResponse](t, w); msg.Message != "Welcome, Newcomer" {
		t.Errorf("unexpected message %q", msg.Message)
	}

	// Registering again greets the stored user.
	w = doJSON(http.MethodPost, "/api/v1/user/new", handler.UserRequest{ID: "newcomer"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for existing user, got %d", w.Code)
	}

	u, err := userRepo.GetByID(context.Background(), "newcomer")
	if err != nil {
		t.Fatalf("user was not stored: %v", err)
	}
	if u.Role != models.RoleUser || u.DOB.Year() != 2001 {
		t.Errorf("unexpected stored user %+v", u)
	}
}

func TestNewUserHandler_Invalid(t *testing.T) {
	w := doJSON(http.MethodPost, "/api/v1/user/new", handler.UserRequest{ID: "x", Email: "nope", Gender: "other", DOB: "yesterday"}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	resp := decode[handler.ValidationResponse](t, w)
	if len(resp.Errors) != 4 {
		t.Errorf("expected name, email, gender and dob errors, got %+v", resp.Errors)
	}
}

func TestUserEndpoints(t *testing.T) {
	w := do(http.MethodGet, "/api/v1/user/buyer", nil, "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp := decode[handler.UserResponse](t, w); resp.User.Email != "buyer@shop.test" {
		t.Errorf("unexpected user %+v", resp.User)
	}
	if w := do(http.MethodGet, "/api/v1/user/ghost", nil, "", ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	if w := do(http.MethodGet, "/api/v1/user/all", nil, customerToken, ""); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for customer, got %d", w.Code)
	}
	all := decode[handler.UsersResponse](t, do(http.MethodGet, "/api/v1/user/all", nil, adminToken, ""))
	if len(all.Users) < 2 {
		t.Errorf("expected at least the seeded users, got %d", len(all.Users))
	}
}

func TestDeleteUserHandler(t *testing.T) {
	doJSON(http.MethodPost, "/api/v1/user/new", handler.UserRequest{ID: "leaving", Name: "Leaving", Email: "leaving@shop.test", Gender: models.GenderMale, DOB: "1980-02-02"}, "")

	if w := do(http.MethodDelete, "/api/v1/user/leaving", nil, adminToken, ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := do(http.MethodDelete, "/api/v1/user/leaving", nil, adminToken, ""); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	if w := doJSON(http.MethodPost, "/api/v1/user/login", handler.LoginRequest{ID: "ghost"}, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown user, got %d", w.Code)
	}
	if w := doJSON(http.MethodPost, "/api/v1/user/login", handler.LoginRequest{}, ""); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without id, got %d", w.Code)
	}
}
