package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/luminachain/lumina-wallet/internal/client"
	"github.com/luminachain/lumina-wallet/internal/credential"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/session"
	"github.com/luminachain/lumina-wallet/internal/wallet"
	"github.com/luminachain/lumina-wallet/lumina"

	"go.uber.org/zap"
)

// WalletHandler serves the wallet subsystem over HTTP.
type WalletHandler struct {
	service *lumina.Service
	log     *zap.SugaredLogger
}

// NewWalletHandler creates a handler over the wallet service.
func NewWalletHandler(service *lumina.Service, log *zap.SugaredLogger) *WalletHandler {
	return &WalletHandler{service: service, log: log}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps subsystem errors onto HTTP statuses. Validation failures
// are the caller's fault, authentication failures gate the session, errors
// from the ledger boundary surface as gateway problems, and anything else
// (local store failures included) is a plain server error.
func (h *WalletHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ""

	var statusErr *client.StatusError
	var urlErr *url.Error

	switch {
	case errors.Is(err, credential.ErrInvalidEmail):
		status, code = http.StatusBadRequest, "invalid_email"
	case errors.Is(err, credential.ErrWeakPassword):
		status, code = http.StatusBadRequest, "weak_password"
	case errors.Is(err, wallet.ErrInvalidKeyMaterial):
		status, code = http.StatusBadRequest, "invalid_key_material"
	case errors.Is(err, credential.ErrDuplicateAccount):
		status, code = http.StatusConflict, "duplicate_account"
	case errors.Is(err, credential.ErrAccountNotFound):
		status, code = http.StatusUnauthorized, "account_not_found"
	case errors.Is(err, credential.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, session.ErrNotAuthenticated):
		status, code = http.StatusUnauthorized, "not_authenticated"
	case errors.Is(err, client.ErrMalformedReply):
		status, code = http.StatusBadGateway, "ledger_protocol_mismatch"
	case errors.As(err, &statusErr):
		status, code = http.StatusBadGateway, "ledger_error"
	case errors.As(err, &urlErr):
		status, code = http.StatusBadGateway, "ledger_unreachable"
	}

	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}
