package model

// Account is the ledger's view of an address. A brand-new address has no
// record on chain; callers receive a zero Account for it (nonce 0, all
// balances 0).
type Account struct {
	Address        string            `json:"address"`
	LUSDBalance    uint64            `json:"lusd_balance"`
	LJUNBalance    uint64            `json:"ljun_balance"`
	LuminaBalance  uint64            `json:"lumina_balance"`
	Nonce          uint64            `json:"nonce"`
	CustomBalances map[string]uint64 `json:"custom_balances,omitempty"`
	HasPasskey     bool              `json:"has_passkey,omitempty"`
	GuardianCount  int               `json:"guardian_count,omitempty"`
	CreditScore    uint64            `json:"credit_score,omitempty"`
}

// FaucetResponse is the /faucet reply.
type FaucetResponse struct {
	Status  string `json:"status"`
	Address string `json:"address,omitempty"`
	Amount  uint64 `json:"amount"`
	Asset   string `json:"asset"`
	Error   string `json:"error,omitempty"`
}
