package model

import "time"

// WalletAuth is the current session. It is derived state: Address is always
// "0x" + hex(publicKey). At most one session is active at a time.
type WalletAuth struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	PublicKey string    `json:"publicKey"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CredentialRecord binds a normalized email identity to a wallet's key
// material. PasswordHash is a salted scrypt digest of
// "normalizedEmail:password", never the plaintext.
type CredentialRecord struct {
	Email              string `json:"email"`
	PasswordHash       string `json:"passwordHash"`
	PasswordSalt       string `json:"passwordSalt"`
	WalletPublicKeyHex string `json:"walletPublicKeyHex"`
	WalletSecretKeyHex string `json:"walletSecretKeyHex"`
	CreatedAt          string `json:"createdAt"`
}
