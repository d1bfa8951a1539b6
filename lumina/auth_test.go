package lumina

import "testing"

func TestKeystoreExportImportRoundTrip(t *testing.T) {
	s := newTestService(t, "http://127.0.0.1:0")

	resp, err := s.Signup("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	file, err := s.ExportKeystore([]byte("hunter22"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if file.Address != resp.Address {
		t.Fatalf("keystore address %q does not match session %q", file.Address, resp.Address)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := s.Session(); ok {
		t.Fatal("expected no session after logout")
	}

	imported, err := s.ImportKeystore(file, []byte("hunter22"))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if imported.Address != resp.Address || imported.PublicKey != resp.PublicKey {
		t.Fatalf("imported wallet %q does not match the exported one %q", imported.Address, resp.Address)
	}

	auth, ok := s.Session()
	if !ok || auth.Address != resp.Address {
		t.Fatal("expected the import to re-establish the session")
	}
}

func TestImportKeystoreWrongPassphrase(t *testing.T) {
	s := newTestService(t, "http://127.0.0.1:0")

	if _, err := s.Signup("alice@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	file, err := s.ExportKeystore([]byte("hunter22"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if _, err := s.ImportKeystore(file, []byte("nothunter")); err == nil {
		t.Fatal("expected wrong passphrase to fail")
	}
}

func TestExportKeystoreRequiresSession(t *testing.T) {
	s := newTestService(t, "http://127.0.0.1:0")

	if _, err := s.ExportKeystore([]byte("hunter22")); err == nil {
		t.Fatal("expected export without a session to fail")
	}
}
