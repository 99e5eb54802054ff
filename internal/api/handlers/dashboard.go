package handlers

import (
	"net/http"

	"github.com/baharkarakas/credit-ledger/internal/api/httpx"
	"github.com/baharkarakas/credit-ledger/internal/services"
)

type DashboardHandler struct {
	Ledger *services.LedgerService
}

// Get serves the ranked client list and the global outstanding total.
// ?q= filters clients by name or phone; the total always covers every client.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := owner(w, r)
	if !ok {
		return
	}
	s, err := h.Ledger.Dashboard(r.Context(), uid, r.URL.Query().Get("q"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, s)
}
