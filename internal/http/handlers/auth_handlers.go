package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/shop-backoffice/internal/auth"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

// LoginHandler godoc
// @Summary Issue a JWT for an existing user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "User id assigned by the identity provider"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /user/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJSON(w, r, &req); err != nil || strings.TrimSpace(req.ID) == "" {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByID(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeStoreError(w, r, err, "could not load user")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		writeStoreError(w, r, err, "could not generate token")
		return
	}
	respond(w, r, http.StatusOK, envelope{"token": token})
}
