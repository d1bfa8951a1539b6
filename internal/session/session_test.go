package session

import (
	"errors"
	"testing"

	"github.com/luminachain/lumina-wallet/internal/store"
	"github.com/luminachain/lumina-wallet/internal/wallet"
)

func newManager(t *testing.T) (*Manager, *wallet.Store, *store.FileStore) {
	t.Helper()
	files, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	wallets := wallet.NewStore(files)
	return NewManager(files, wallets), wallets, files
}

func TestLoginOverwritesSession(t *testing.T) {
	m, _, _ := newManager(t)

	if _, ok := m.Get(); ok {
		t.Fatal("expected no session initially")
	}
	if _, err := m.Require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	first, err := m.Login("0xaa", "aa", "a@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	second, err := m.Login("0xbb", "bb", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("each login must mint a fresh session id")
	}

	auth, ok := m.Get()
	if !ok {
		t.Fatal("expected an active session")
	}
	if auth.Address != "0xbb" || auth.Email != "" {
		t.Fatalf("last login must win, got %+v", auth)
	}
}

func TestLogoutClearsSessionAndWallet(t *testing.T) {
	m, wallets, _ := newManager(t)

	w, err := wallets.Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := wallets.Persist(w); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if _, err := m.Login(w.Address(), w.PublicKeyHex(), "a@example.com"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, ok := m.Get(); ok {
		t.Fatal("expected no session after logout")
	}
	if _, ok := wallets.Load(); ok {
		t.Fatal("expected no persisted wallet after logout")
	}
}

func TestLogoutWhenAnonymous(t *testing.T) {
	m, _, _ := newManager(t)

	if err := m.Logout(); err != nil {
		t.Fatalf("logout without session must be a no-op, got %v", err)
	}
}
