// Package session owns the process-wide authenticated session. There are two
// states, anonymous and authenticated, and exactly one session value at a
// time; a new login overwrites the previous session.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/store"

	"github.com/google/uuid"
)

// storeKey is the session's namespaced slot in the local store.
const storeKey = "session.v1"

// ErrNotAuthenticated is returned by Require when no session is active.
var ErrNotAuthenticated = errors.New("not authenticated")

// WalletClearer wipes the persisted wallet. The wallet store implements it;
// the indirection keeps each store the sole writer of its own key.
type WalletClearer interface {
	Clear() error
}

// Manager holds the current session. Construct one and inject it wherever
// "who is logged in" matters; there is no package-level session.
type Manager struct {
	files   *store.FileStore
	wallets WalletClearer
	mu      sync.Mutex
}

// NewManager creates a session manager over the local file store.
func NewManager(files *store.FileStore, wallets WalletClearer) *Manager {
	return &Manager{files: files, wallets: wallets}
}

// Get returns the current session, if any.
func (m *Manager) Get() (model.WalletAuth, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var auth model.WalletAuth
	if err := m.files.Get(storeKey, &auth); err != nil {
		return model.WalletAuth{}, false
	}
	return auth, true
}

// Require returns the current session or ErrNotAuthenticated.
func (m *Manager) Require() (model.WalletAuth, error) {
	auth, ok := m.Get()
	if !ok {
		return model.WalletAuth{}, ErrNotAuthenticated
	}
	return auth, nil
}

// Login establishes a new session, overwriting any previous one.
func (m *Manager) Login(address, publicKeyHex, email string) (model.WalletAuth, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	auth := model.WalletAuth{
		ID:        uuid.New().String(),
		Address:   address,
		PublicKey: publicKeyHex,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.files.Put(storeKey, &auth); err != nil {
		return model.WalletAuth{}, fmt.Errorf("failed to persist session: %w", err)
	}
	return auth, nil
}

// Logout clears the session and the persisted wallet in the same step.
// A dangling wallet after logout would leave secret material behind.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.files.Delete(storeKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if err := m.wallets.Clear(); err != nil {
		return fmt.Errorf("failed to clear wallet: %w", err)
	}
	return nil
}
