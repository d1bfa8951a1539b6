// Package credential keeps the local registry of email identities and their
// wallet bindings. The password hash gates access to locally held key
// material only; it is no substitute for the wallet's signature at the
// ledger boundary.
package credential

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/luminachain/lumina-wallet/internal/crypto"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/session"
	"github.com/luminachain/lumina-wallet/internal/store"
	"github.com/luminachain/lumina-wallet/internal/wallet"
)

// storeKey is the registry's namespaced slot in the local store.
const storeKey = "credentials.v1"

var (
	// ErrInvalidEmail reports an email without an "@".
	ErrInvalidEmail = errors.New("invalid email")
	// ErrWeakPassword reports a password shorter than 8 characters.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrDuplicateAccount reports a signup for an already registered email.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrAccountNotFound reports a login for an unknown email.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials reports a password mismatch. Distinct from
	// ErrAccountNotFound here; the UI may still present both identically to
	// avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store manages the credential registry and drives session establishment on
// signup and login.
type Store struct {
	files    *store.FileStore
	wallets  *wallet.Store
	sessions *session.Manager
}

// NewStore creates a credential store.
func NewStore(files *store.FileStore, wallets *wallet.Store, sessions *session.Manager) *Store {
	return &Store{files: files, wallets: wallets, sessions: sessions}
}

// Normalize trims and lowercases an email address. All registry lookups key
// on the normalized form.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates the email and password, binds the wallet's key material
// to the identity, persists the wallet, and establishes a session. This is
// the only place a freshly generated wallet gets bound to an email.
func (s *Store) Signup(email, password string, w *wallet.Wallet) (model.WalletAuth, error) {
	normalized := Normalize(email)
	if !strings.Contains(normalized, "@") {
		return model.WalletAuth{}, ErrInvalidEmail
	}
	if len(password) < 8 {
		return model.WalletAuth{}, ErrWeakPassword
	}

	records, err := s.loadRegistry()
	if err != nil {
		return model.WalletAuth{}, err
	}
	for _, r := range records {
		if r.Email == normalized {
			return model.WalletAuth{}, ErrDuplicateAccount
		}
	}

	hash, salt, err := crypto.HashPassword(normalized, password)
	if err != nil {
		return model.WalletAuth{}, fmt.Errorf("failed to hash password: %w", err)
	}

	records = append(records, model.CredentialRecord{
		Email:              normalized,
		PasswordHash:       hash,
		PasswordSalt:       salt,
		WalletPublicKeyHex: w.PublicKeyHex(),
		WalletSecretKeyHex: fmt.Sprintf("%x", []byte(w.SecretKey)),
		CreatedAt:          time.Now().UTC().Format(time.RFC3339),
	})
	if err := s.files.Put(storeKey, records); err != nil {
		return model.WalletAuth{}, fmt.Errorf("failed to persist registry: %w", err)
	}

	if err := s.wallets.Persist(w); err != nil {
		return model.WalletAuth{}, fmt.Errorf("failed to persist wallet: %w", err)
	}

	return s.sessions.Login(w.Address(), w.PublicKeyHex(), normalized)
}

// Login verifies the password against the stored hash, reconstructs the
// wallet from the registry's key material, persists it, and establishes a
// session.
func (s *Store) Login(email, password string) (model.WalletAuth, *wallet.Wallet, error) {
	normalized := Normalize(email)

	records, err := s.loadRegistry()
	if err != nil {
		return model.WalletAuth{}, nil, err
	}

	var record *model.CredentialRecord
	for i := range records {
		if records[i].Email == normalized {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return model.WalletAuth{}, nil, ErrAccountNotFound
	}

	ok, err := crypto.VerifyPassword(normalized, password, record.PasswordHash, record.PasswordSalt)
	if err != nil {
		return model.WalletAuth{}, nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return model.WalletAuth{}, nil, ErrInvalidCredentials
	}

	w, err := s.wallets.FromSecretHex(record.WalletSecretKeyHex)
	if err != nil {
		return model.WalletAuth{}, nil, fmt.Errorf("stored key material unusable: %w", err)
	}
	if err := s.wallets.Persist(w); err != nil {
		return model.WalletAuth{}, nil, fmt.Errorf("failed to persist wallet: %w", err)
	}

	auth, err := s.sessions.Login(w.Address(), w.PublicKeyHex(), normalized)
	if err != nil {
		return model.WalletAuth{}, nil, err
	}
	return auth, w, nil
}

func (s *Store) loadRegistry() ([]model.CredentialRecord, error) {
	var records []model.CredentialRecord
	if err := s.files.Get(storeKey, &records); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return records, nil
}
