package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/services"
)

type ClientHandler struct {
	Clients    *services.ClientService
	Ledger     *services.LedgerService
	Statements *services.StatementService
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	cs, err := h.Clients.List(r.Context(), uid)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cs)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	var in services.ClientInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		badRequest(w, err)
		return
	}
	c, err := h.Clients.Create(r.Context(), uid, in)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

// Get returns the client with its balance and history, newest first.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	d, err := h.Ledger.ClientDetail(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, d)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	var in services.ClientInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		badRequest(w, err)
		return
	}
	c, err := h.Clients.Update(r.Context(), uid, chi.URLParam(r, "id"), in)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	if err := h.Clients.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClientHandler) Statement(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	doc, err := h.Statements.Render(r.Context(), uid, id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="statement-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
