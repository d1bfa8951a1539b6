package handler

import (
	"net/http"
)

// Balance handles GET /balance
// @Summary      Account balance
// @Description  Fetches the ledger account for ?address=, defaulting to the session address
// @Tags         ledger
// @Produce      json
// @Param        address  query     string  false  "0x-prefixed address"
// @Success      200      {object}  model.Account
// @Failure      401      {object}  model.ErrorResponse
// @Router       /balance [get]
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	account, err := h.service.Balance(r.Context(), r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

// State handles GET /ledger/state
// @Summary      Ledger state
// @Description  Relays the ledger's state summary
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  object
// @Router       /ledger/state [get]
func (h *WalletHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	raw, err := h.service.State(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, raw)
}

// Health handles GET /ledger/health
// @Summary      Ledger health
// @Description  Relays the ledger's health summary
// @Tags         ledger
// @Produce      json
// @Success      200  {object}  object
// @Router       /ledger/health [get]
func (h *WalletHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	raw, err := h.service.Health(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, raw)
}
