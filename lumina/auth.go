package lumina

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/luminachain/lumina-wallet/internal/model"

	"github.com/skip2/go-qrcode"
)

// Signup generates a fresh wallet, binds it to the email identity, and
// establishes a session. The response carries a QR code of the new address.
func (s *Service) Signup(email, password string) (model.SessionResponse, error) {
	w, err := s.wallets.Generate(nil)
	if err != nil {
		return model.SessionResponse{}, err
	}
	defer clear(w.SecretKey)

	auth, err := s.creds.Signup(email, password, w)
	if err != nil {
		return model.SessionResponse{}, err
	}

	qr, err := addressQRCode(auth.Address)
	if err != nil {
		return model.SessionResponse{}, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return sessionResponse(auth, qr), nil
}

// Generate creates a fresh wallet and opens a session for it with no email
// binding.
func (s *Service) Generate() (model.SessionResponse, error) {
	w, err := s.wallets.Generate(nil)
	if err != nil {
		return model.SessionResponse{}, err
	}
	defer clear(w.SecretKey)

	if err := s.wallets.Persist(w); err != nil {
		return model.SessionResponse{}, fmt.Errorf("failed to persist wallet: %w", err)
	}

	auth, err := s.sessions.Login(w.Address(), w.PublicKeyHex(), "")
	if err != nil {
		return model.SessionResponse{}, err
	}

	qr, err := addressQRCode(auth.Address)
	if err != nil {
		return model.SessionResponse{}, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return sessionResponse(auth, qr), nil
}

// Login verifies the credentials, restores the bound wallet, and establishes
// a session.
func (s *Service) Login(email, password string) (model.SessionResponse, error) {
	auth, w, err := s.creds.Login(email, password)
	if err != nil {
		return model.SessionResponse{}, err
	}
	clear(w.SecretKey)

	return sessionResponse(auth, ""), nil
}

// ImportKey establishes a session from raw secret key material, with no
// email binding (the pure import flow).
func (s *Service) ImportKey(secretHex string) (model.SessionResponse, error) {
	w, err := s.wallets.FromSecretHex(secretHex)
	if err != nil {
		return model.SessionResponse{}, err
	}
	defer clear(w.SecretKey)

	if err := s.wallets.Persist(w); err != nil {
		return model.SessionResponse{}, fmt.Errorf("failed to persist wallet: %w", err)
	}

	auth, err := s.sessions.Login(w.Address(), w.PublicKeyHex(), "")
	if err != nil {
		return model.SessionResponse{}, err
	}
	return sessionResponse(auth, ""), nil
}

// Logout clears the session and the persisted wallet together.
func (s *Service) Logout() error {
	return s.sessions.Logout()
}

// ExportKeystore seals the persisted wallet into a keystore file protected
// by passphrase.
// passphrase must be []byte for security (caller should zero it after use)
func (s *Service) ExportKeystore(passphrase []byte) (*model.KeystoreFile, error) {
	auth, err := s.sessions.Require()
	if err != nil {
		return nil, err
	}

	qr, err := addressQRCode(auth.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return s.wallets.Export(qr, passphrase)
}

// ImportKeystore opens a sealed keystore file and establishes a session for
// its wallet.
// passphrase must be []byte for security (caller should zero it after use)
func (s *Service) ImportKeystore(file *model.KeystoreFile, passphrase []byte) (model.SessionResponse, error) {
	w, err := s.wallets.Import(file, passphrase)
	if err != nil {
		return model.SessionResponse{}, err
	}
	defer clear(w.SecretKey)

	auth, err := s.sessions.Login(w.Address(), w.PublicKeyHex(), "")
	if err != nil {
		return model.SessionResponse{}, err
	}
	return sessionResponse(auth, ""), nil
}

func sessionResponse(auth model.WalletAuth, qr string) model.SessionResponse {
	return model.SessionResponse{
		Address:   auth.Address,
		PublicKey: auth.PublicKey,
		Email:     auth.Email,
		CreatedAt: auth.CreatedAt.Format(time.RFC3339),
		QR:        qr,
	}
}

// addressQRCode renders the address as a base64 PNG.
func addressQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
