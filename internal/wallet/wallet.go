// Package wallet owns keypair generation, signing, and the persisted wallet
// record. The secret key never leaves this package except inside a sealed
// keystore export or as a signature.
package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/luminachain/lumina-wallet/internal/common"
	"github.com/luminachain/lumina-wallet/internal/crypto"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/store"
)

// storeKey is the wallet's namespaced slot in the local store.
const storeKey = "wallet.v1"

// ErrInvalidKeyMaterial reports a malformed seed or secret key.
var ErrInvalidKeyMaterial = errors.New("invalid key material")

// Wallet is an Ed25519 keypair owned by this client.
type Wallet struct {
	PublicKey ed25519.PublicKey
	SecretKey ed25519.PrivateKey
}

// Address returns the wallet's "0x"-prefixed hex address.
func (w *Wallet) Address() string {
	return common.EncodeAddress(w.PublicKey)
}

// PublicKeyHex returns the bare hex encoding of the public key.
func (w *Wallet) PublicKeyHex() string {
	return hex.EncodeToString(w.PublicKey)
}

// Sign signs message with the wallet's secret key. The resulting 64-byte
// signature verifies under PublicKey.
func (w *Wallet) Sign(message []byte) []byte {
	return ed25519.Sign(w.SecretKey, message)
}

// Store persists and restores the active wallet.
type Store struct {
	files *store.FileStore
}

// NewStore creates a wallet store over the local file store.
func NewStore(files *store.FileStore) *Store {
	return &Store{files: files}
}

// Generate creates a new keypair. A nil seed draws entropy from the OS
// CSPRNG; a 32-byte seed produces the same keypair on every call.
func (s *Store) Generate(seed []byte) (*Wallet, error) {
	if seed == nil {
		pub, sec, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("failed to generate keypair: %w", err)
		}
		return &Wallet{PublicKey: pub, SecretKey: sec}, nil
	}

	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidKeyMaterial, ed25519.SeedSize, len(seed))
	}
	sec := ed25519.NewKeyFromSeed(seed)
	return &Wallet{PublicKey: sec.Public().(ed25519.PublicKey), SecretKey: sec}, nil
}

// FromSecretHex rebuilds a wallet from hex-encoded secret key material:
// either a 32-byte seed or a full 64-byte expanded key.
func (s *Store) FromSecretHex(secretHex string) (*Wallet, error) {
	raw, err := hex.DecodeString(common.StripHexPrefix(secretHex))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	defer clear(raw)

	switch len(raw) {
	case ed25519.SeedSize:
		return s.Generate(raw)
	case ed25519.PrivateKeySize:
		sec := ed25519.PrivateKey(append([]byte(nil), raw...))
		return &Wallet{PublicKey: sec.Public().(ed25519.PublicKey), SecretKey: sec}, nil
	}
	return nil, fmt.Errorf("%w: secret key must be 32 or 64 bytes, got %d", ErrInvalidKeyMaterial, len(raw))
}

// Persist durably stores the wallet. Passing nil clears the slot (logout).
func (s *Store) Persist(w *Wallet) error {
	if w == nil {
		return s.files.Delete(storeKey)
	}
	record := model.WalletRecord{
		PublicKeyHex: hex.EncodeToString(w.PublicKey),
		SecretKeyHex: hex.EncodeToString(w.SecretKey),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	return s.files.Put(storeKey, &record)
}

// Load returns the persisted wallet. Absent or corrupt data yields ok=false
// rather than an error; the caller re-prompts for authentication.
func (s *Store) Load() (*Wallet, bool) {
	var record model.WalletRecord
	if err := s.files.Get(storeKey, &record); err != nil {
		return nil, false
	}
	w, err := s.FromSecretHex(record.SecretKeyHex)
	if err != nil {
		return nil, false
	}
	return w, true
}

// Clear removes the persisted wallet. Satisfies the session manager's
// WalletClearer so logout wipes both records together.
func (s *Store) Clear() error {
	return s.Persist(nil)
}

// Export seals the persisted wallet into a portable keystore file.
// passphrase must be []byte for security (caller should zero it after use)
func (s *Store) Export(qrCode string, passphrase []byte) (*model.KeystoreFile, error) {
	var record model.WalletRecord
	if err := s.files.Get(storeKey, &record); err != nil {
		return nil, fmt.Errorf("no wallet to export: %w", err)
	}

	pub, err := hex.DecodeString(record.PublicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	return crypto.SealWallet(common.EncodeAddress(pub), qrCode, &record, passphrase)
}

// Import opens a sealed keystore file, persists the wallet, and returns it.
// passphrase must be []byte for security (caller should zero it after use)
func (s *Store) Import(file *model.KeystoreFile, passphrase []byte) (*Wallet, error) {
	record, err := crypto.OpenWallet(file, passphrase)
	if err != nil {
		return nil, err
	}

	w, err := s.FromSecretHex(record.SecretKeyHex)
	if err != nil {
		return nil, err
	}
	if err := s.Persist(w); err != nil {
		return nil, err
	}
	return w, nil
}
