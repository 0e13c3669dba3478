package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/shop-backoffice/internal/models"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

// NewUserHandler godoc
// @Summary Register a user, or greet one that already exists
// @Tags users
// @Accept json
// @Produce json
// @Param user body UserRequest true "User to register"
// @Success 200 {object} MessageResponse "Existing user"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ValidationResponse
// @Failure 409 {object} ErrorResponse
// @Router /user/new [post]
func NewUserHandler(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if req.ID != "" {
		existing, err := userRepo.GetByID(r.Context(), req.ID)
		if err == nil {
			respond(w, r, http.StatusOK, envelope{"message": "Welcome, " + existing.Name})
			return
		}
		if !errors.Is(err, repo.ErrUserNotFound) {
			writeStoreError(w, r, err, "could not load user")
			return
		}
	}

	if validationErrors := validateUser(req); len(validationErrors) > 0 {
		writeValidationErrors(w, validationErrors)
		return
	}

	dob, _ := parseDOB(req.DOB)
	created, err := userRepo.Create(r.Context(), models.User{
		ID:     req.ID,
		Name:   req.Name,
		Email:  req.Email,
		Photo:  req.Photo,
		Role:   models.RoleUser,
		Gender: req.Gender,
		DOB:    dob,
	})
	if err != nil {
		writeStoreError(w, r, err, "could not create user")
		return
	}
	respond(w, r, http.StatusCreated, envelope{"message": "Welcome, " + created.Name})
}

// GetAllUsersHandler godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /user/all [get]
func GetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := userRepo.GetAll(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "could not fetch users")
		return
	}
	respond(w, r, http.StatusOK, envelope{"users": users})
}

// GetUserHandler godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/{id} [get]
func GetUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := userRepo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err, "could not fetch user")
		return
	}
	respond(w, r, http.StatusOK, envelope{"user": user})
}

// DeleteUserHandler godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/{id} [delete]
func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := userRepo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, r, err, "could not delete user")
		return
	}
	respond(w, r, http.StatusOK, envelope{"message": "User Deleted Successfully"})
}
