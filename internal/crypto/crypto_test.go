package crypto

import (
	"testing"

	"github.com/luminachain/lumina-wallet/internal/model"
)

func TestPasswordHashVerify(t *testing.T) {
	hash, salt, err := HashPassword("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	ok, err := VerifyPassword("alice@example.com", "password123", hash, salt)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("expected correct password to verify")
	}

	ok, err = VerifyPassword("alice@example.com", "wrongpassword", hash, salt)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("expected wrong password to fail")
	}
}

func TestPasswordHashSaltsDiffer(t *testing.T) {
	hash1, salt1, err := HashPassword("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	hash2, salt2, err := HashPassword("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if salt1 == salt2 {
		t.Fatal("expected fresh salt per hash")
	}
	if hash1 == hash2 {
		t.Fatal("expected different digests for different salts")
	}
}

func TestSealOpenWallet(t *testing.T) {
	record := &model.WalletRecord{
		PublicKeyHex: "aabb",
		SecretKeyHex: "ccdd",
		CreatedAt:    "2026-01-01T00:00:00Z",
	}

	file, err := SealWallet("0xaabb", "qr-png", record, []byte("hunter22"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if file.Address != "0xaabb" || file.CipherText == "" {
		t.Fatalf("unexpected keystore file: %+v", file)
	}

	opened, err := OpenWallet(file, []byte("hunter22"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if opened.SecretKeyHex != record.SecretKeyHex || opened.PublicKeyHex != record.PublicKeyHex {
		t.Fatalf("round trip changed the record: %+v", opened)
	}
}

func TestOpenWalletWrongPassphrase(t *testing.T) {
	record := &model.WalletRecord{SecretKeyHex: "ccdd"}

	file, err := SealWallet("0xaabb", "", record, []byte("hunter22"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	if _, err := OpenWallet(file, []byte("nothunter")); err == nil {
		t.Fatal("expected wrong passphrase to fail")
	}
}
