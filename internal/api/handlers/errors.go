package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/api/validate"
	"github.com/baharkarakas/credit-ledger/internal/middleware"
	repo "github.com/baharkarakas/credit-ledger/internal/repository"
	"github.com/baharkarakas/credit-ledger/internal/services"
)

// writeErr maps service and store errors onto HTTP responses.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", "invalid input", verrs)
	case errors.Is(err, repo.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, repo.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "conflict", "already exists", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", nil)
	case errors.Is(err, services.ErrSessionUnavailable):
		slog.Error("session store", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusServiceUnavailable, "session_unavailable", "could not verify session, retry", nil)
	case errors.Is(err, repo.ErrUnavailable):
		slog.Error("store", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusServiceUnavailable, "store_unavailable", "ledger temporarily unavailable, retry", nil)
	default:
		slog.Error("request failed", "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func badRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "bad request", err.Error())
}

// owner reads the authenticated user id set by the auth middleware.
func owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", nil)
	}
	return uid, ok
}
