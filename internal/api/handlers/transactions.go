package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/services"
)

type TransactionHandler struct {
	Txns *services.TransactionService
}

func (h *TransactionHandler) ListForClient(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	txs, err := h.Txns.List(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	var in services.TransactionInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		badRequest(w, err)
		return
	}
	tx, err := h.Txns.Create(r.Context(), uid, chi.URLParam(r, "id"), in)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, tx)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	if err := h.Txns.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
