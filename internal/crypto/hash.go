package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt parameters for the credential check.
	//
	// This hash gates access to locally held key material only; it is not a
	// server-side authentication secret. N=2^15 (~32MB, tens of ms) keeps
	// login interactive while still being memory-hard. The keystore sealing
	// in seal.go uses the heavier custody-grade parameters.
	hashN      = 1 << 15
	hashR      = 8
	hashP      = 1
	hashKeyLen = 32
	hashSalt   = 16
)

// HashPassword derives a salted digest over "normalizedEmail:password".
// Returns the digest and the generated salt, both base64 encoded.
func HashPassword(normalizedEmail, password string) (hash string, salt string, err error) {
	rawSalt := make([]byte, hashSalt)
	if _, err := io.ReadFull(rand.Reader, rawSalt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	digest, err := hashWithSalt(normalizedEmail, password, rawSalt)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(digest), base64.StdEncoding.EncodeToString(rawSalt), nil
}

// VerifyPassword recomputes the digest with the stored salt and compares in
// constant time.
func VerifyPassword(normalizedEmail, password, hash, salt string) (bool, error) {
	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	want, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	got, err := hashWithSalt(normalizedEmail, password, rawSalt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func hashWithSalt(normalizedEmail, password string, salt []byte) ([]byte, error) {
	material := []byte(normalizedEmail + ":" + password)
	defer clear(material)

	digest, err := scrypt.Key(material, salt, hashN, hashR, hashP, hashKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive hash: %w", err)
	}
	return digest, nil
}
