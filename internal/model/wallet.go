package model

// WalletRecord is the persisted form of the active wallet (the "wallet.v1"
// store key). Key material is hex encoded the same way the ledger CLI
// stores it.
type WalletRecord struct {
	PublicKeyHex string `json:"publicKey"`
	SecretKeyHex string `json:"secretKey"`
	CreatedAt    string `json:"createdAt"`
}

// KeystoreFile is a sealed wallet export. The secret material lives in
// CipherText, encrypted with a key derived from the export passphrase.
type KeystoreFile struct {
	Address    string `json:"address"`
	QR         string `json:"QR"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}
