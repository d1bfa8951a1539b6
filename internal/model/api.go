package model

// SignupRequest represents request for POST /auth/signup
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents request for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse represents the active session for auth endpoints.
// QR is a base64 PNG of the address, present on signup.
type SessionResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt"`
	QR        string `json:"QR,omitempty"`
}

// ImportRequest represents request for POST /wallet/import
type ImportRequest struct {
	SecretKeyHex string `json:"secretKey"`
}

// ExportRequest represents request for POST /wallet/export
type ExportRequest struct {
	Passphrase string `json:"passphrase"`
}

// ImportKeystoreRequest represents request for POST /wallet/import-keystore
type ImportKeystoreRequest struct {
	Keystore   KeystoreFile `json:"keystore"`
	Passphrase string       `json:"passphrase"`
}

// SubmitRequest represents request for POST /tx/submit. Exactly one
// instruction field must be set.
type SubmitRequest struct {
	Transfer *TransferParams `json:"transfer,omitempty"`
	Mint     *MintParams     `json:"mint,omitempty"`
	Redeem   *RedeemParams   `json:"redeem,omitempty"`
	GasLimit *uint64         `json:"gasLimit,omitempty"`
	GasPrice *uint64         `json:"gasPrice,omitempty"`
}

// TransferParams are the user-facing transfer fields.
type TransferParams struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Asset  string `json:"asset"`
}

// MintParams are the user-facing mint fields.
type MintParams struct {
	Amount uint64 `json:"amount"`
	Asset  string `json:"asset"`
}

// RedeemParams are the user-facing redeem fields.
type RedeemParams struct {
	Amount uint64 `json:"amount"`
	Asset  string `json:"asset"`
}

// FaucetRequest represents request for POST /faucet
type FaucetRequest struct {
	Address string `json:"address,omitempty"`
}

// ErrorResponse is the JSON shape of every API error. Code is a stable
// machine-readable kind; Error is advisory text and may change.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
