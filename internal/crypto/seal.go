package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/luminachain/lumina-wallet/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for sealed keystore exports.
	//
	// Exports hold the raw secret key, so the custody-grade cost applies:
	// N=2^18 (~256MB RAM, 0.5-2s) keeps brute force expensive while still
	// working on memory-constrained devices.
	sealN      = 1 << 18
	sealR      = 8
	sealP      = 1
	sealKeyLen = 32
	saltLen    = 32
	nonceLen   = 12
)

// SealWallet encrypts a wallet record into a portable keystore file.
// passphrase must be []byte for security (caller should zero it after use)
func SealWallet(address, qrCode string, record *model.WalletRecord, passphrase []byte) (*model.KeystoreFile, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	key, err := scrypt.Key(passphrase, salt, sealN, sealR, sealP, sealKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet record: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	return &model.KeystoreFile{
		Address:    address,
		QR:         qrCode,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// OpenWallet decrypts a sealed keystore file back into a wallet record.
// passphrase must be []byte for security (caller should zero it after use)
func OpenWallet(file *model.KeystoreFile, passphrase []byte) (*model.WalletRecord, error) {
	salt, err := base64.StdEncoding.DecodeString(file.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(file.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(file.CipherText)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key, err := scrypt.Key(passphrase, salt, sealN, sealR, sealP, sealKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("invalid passphrase")
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var record model.WalletRecord
	if err := json.Unmarshal(plaintext, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet record: %w", err)
	}

	return &record, nil
}
