package handler

import (
	"encoding/json"
	"net/http"

	"github.com/luminachain/lumina-wallet/internal/model"
)

// Signup handles POST /auth/signup
// @Summary      Create an account
// @Description  Generates a new wallet, binds it to the email identity, and opens a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignupRequest  true  "Signup data"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /auth/signup [post]
func (h *WalletHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Signup(req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Login handles POST /auth/login
// @Summary      Log in
// @Description  Verifies credentials, restores the bound wallet, and opens a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      model.LoginRequest  true  "Login data"
// @Success      200      {object}  model.SessionResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /auth/login [post]
func (h *WalletHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /auth/logout
// @Summary      Log out
// @Description  Clears the session and the persisted wallet together
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *WalletHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.service.Logout(); err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Session handles GET /auth/session
// @Summary      Current session
// @Description  Returns the active session, or 401 when anonymous
// @Tags         auth
// @Produce      json
// @Success      200  {object}  model.WalletAuth
// @Failure      401  {object}  model.ErrorResponse
// @Router       /auth/session [get]
func (h *WalletHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	auth, ok := h.service.Session()
	if !ok {
		writeJSON(w, http.StatusUnauthorized, model.ErrorResponse{Error: "no active session", Code: "not_authenticated"})
		return
	}

	writeJSON(w, http.StatusOK, auth)
}

// ImportKey handles POST /wallet/import
// @Summary      Import a secret key
// @Description  Opens a session from hex-encoded secret key material (no email binding)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Key material"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) ImportKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.ImportKey(req.SecretKeyHex)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ImportKeystore handles POST /wallet/import-keystore
// @Summary      Import a keystore file
// @Description  Opens a sealed keystore file with its passphrase and opens a session for the wallet inside
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportKeystoreRequest  true  "Keystore file and passphrase"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/import-keystore [post]
func (h *WalletHandler) ImportKeystore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportKeystoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	passphrase := []byte(req.Passphrase)
	defer clear(passphrase) // Always clear passphrase from memory

	resp, err := h.service.ImportKeystore(&req.Keystore, passphrase)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ExportKeystore handles POST /wallet/export
// @Summary      Export the wallet
// @Description  Seals the persisted wallet into a passphrase-protected keystore file
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ExportRequest  true  "Export passphrase"
// @Success      200      {object}  model.KeystoreFile
// @Failure      401      {object}  model.ErrorResponse
// @Router       /wallet/export [post]
func (h *WalletHandler) ExportKeystore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	passphrase := []byte(req.Passphrase)
	defer clear(passphrase) // Always clear passphrase from memory

	file, err := h.service.ExportKeystore(passphrase)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, file)
}
