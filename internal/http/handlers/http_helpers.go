package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/rogerio-castellano/shop-backoffice/internal/cache"
	"github.com/rogerio-castellano/shop-backoffice/internal/inventory"
	"github.com/rogerio-castellano/shop-backoffice/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

type envelope map[string]any

// respond writes a successful envelope with the given fields.
func respond(w http.ResponseWriter, r *http.Request, status int, fields envelope) {
	body := envelope{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	if err := writeJSON(w, status, body); err != nil {
		logger.WithError(err).WithField("request_id", chimw.GetReqID(r.Context())).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// writeStoreError maps repository and workflow errors onto status codes.
// Anything unrecognised is logged and reported as a 500 with fallback.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product Not Found")
	case errors.Is(err, repo.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "Order Not Found")
	case errors.Is(err, repo.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User Not Found")
	case errors.Is(err, repo.ErrInsufficientStock):
		writeError(w, http.StatusConflict, "Insufficient stock")
	case errors.Is(err, repo.ErrDuplicatedValueUnique):
		writeError(w, http.StatusConflict, "Duplicate value")
	case errors.Is(err, inventory.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
		}).Error(fallback)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func writeValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	_ = writeJSON(w, http.StatusBadRequest, ValidationResponse{
		Success: false,
		Message: "Please Enter All Fields",
		Errors:  errs,
	})
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func cached[T any](r *http.Request, key string, load func() (T, error)) (T, error) {
	return cache.Load(r.Context(), responseCache, key, load)
}

func invalidate(r *http.Request, keys []string) {
	responseCache.Invalidate(r.Context(), keys...)
}
