package wallet

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/luminachain/lumina-wallet/internal/store"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	files, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return NewStore(files), dir
}

func TestGenerateDeterministicFromSeed(t *testing.T) {
	s, _ := newStore(t)

	seed := bytes.Repeat([]byte{7}, ed25519.SeedSize)
	w1, err := s.Generate(seed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	w2, err := s.Generate(seed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !bytes.Equal(w1.PublicKey, w2.PublicKey) {
		t.Fatal("same seed must produce the same public key")
	}
}

func TestGenerateRandomKeysDiffer(t *testing.T) {
	s, _ := newStore(t)

	w1, err := s.Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	w2, err := s.Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if bytes.Equal(w1.PublicKey, w2.PublicKey) {
		t.Fatal("random wallets must not collide")
	}
}

func TestGenerateRejectsBadSeed(t *testing.T) {
	s, _ := newStore(t)

	if _, err := s.Generate([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidKeyMaterial) {
		t.Fatalf("expected ErrInvalidKeyMaterial, got %v", err)
	}
}

func TestSignVerifies(t *testing.T) {
	s, _ := newStore(t)

	w, err := s.Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	message := []byte("lumina signing bytes")
	sig := w.Sign(message)
	if len(sig) != ed25519.SignatureSize {
		t.Fatalf("expected %d byte signature, got %d", ed25519.SignatureSize, len(sig))
	}
	if !ed25519.Verify(w.PublicKey, message, sig) {
		t.Fatal("signature must verify under the wallet public key")
	}
	if ed25519.Verify(w.PublicKey, []byte("tampered"), sig) {
		t.Fatal("signature must not verify for another message")
	}
}

func TestFromSecretHexSeedAndFullKey(t *testing.T) {
	s, _ := newStore(t)

	seed := bytes.Repeat([]byte{3}, ed25519.SeedSize)
	w, err := s.Generate(seed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	fromSeed, err := s.FromSecretHex(hex.EncodeToString(seed))
	if err != nil {
		t.Fatalf("from seed hex: %v", err)
	}
	fromFull, err := s.FromSecretHex(hex.EncodeToString(w.SecretKey))
	if err != nil {
		t.Fatalf("from full hex: %v", err)
	}

	if !bytes.Equal(fromSeed.PublicKey, w.PublicKey) || !bytes.Equal(fromFull.PublicKey, w.PublicKey) {
		t.Fatal("imported wallets must match the original public key")
	}

	if _, err := s.FromSecretHex("zzzz"); !errors.Is(err, ErrInvalidKeyMaterial) {
		t.Fatalf("expected ErrInvalidKeyMaterial for bad hex, got %v", err)
	}
	if _, err := s.FromSecretHex("aabb"); !errors.Is(err, ErrInvalidKeyMaterial) {
		t.Fatalf("expected ErrInvalidKeyMaterial for bad length, got %v", err)
	}
}

func TestPersistLoadClear(t *testing.T) {
	s, _ := newStore(t)

	w, err := s.Generate(nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := s.Persist(w); err != nil {
		t.Fatalf("persist: %v", err)
	}

	loaded, ok := s.Load()
	if !ok {
		t.Fatal("expected persisted wallet to load")
	}
	if !bytes.Equal(loaded.PublicKey, w.PublicKey) {
		t.Fatal("loaded wallet must match the persisted one")
	}

	if err := s.Persist(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("expected no wallet after clear")
	}
}

func TestLoadCorruptRecord(t *testing.T) {
	s, dir := newStore(t)

	if err := os.WriteFile(filepath.Join(dir, "wallet.v1.json"), []byte("{broken"), 0o600); err != nil {
		t.Fatalf("write corrupt: %v", err)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("corrupt record must load as absent, not panic or succeed")
	}

	// Valid JSON but unusable key material is also treated as absent.
	if err := os.WriteFile(filepath.Join(dir, "wallet.v1.json"), []byte(`{"secretKey":"zz"}`), 0o600); err != nil {
		t.Fatalf("write bad record: %v", err)
	}
	if _, ok := s.Load(); ok {
		t.Fatal("unusable key material must load as absent")
	}
}
