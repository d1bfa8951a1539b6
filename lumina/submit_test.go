package lumina

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luminachain/lumina-wallet/internal/client"
	"github.com/luminachain/lumina-wallet/internal/credential"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/session"
	"github.com/luminachain/lumina-wallet/internal/store"
	"github.com/luminachain/lumina-wallet/internal/wallet"

	"go.uber.org/zap"
)

// mockLedger is a minimal stand-in for the node API: a fixed nonce per
// account, deterministic signing bytes, and a canned submission reply.
type mockLedger struct {
	t            *testing.T
	nonce        uint64
	accountError string
	signingBytes []byte

	unsignedSeen []model.UnsignedTxRequest
	submitted    []model.SignedTx
}

func (m *mockLedger) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/account/", func(w http.ResponseWriter, r *http.Request) {
		if m.accountError != "" {
			json.NewEncoder(w).Encode(map[string]string{"error": m.accountError})
			return
		}
		addr := strings.TrimPrefix(r.URL.Path, "/account/")
		json.NewEncoder(w).Encode(model.Account{
			Address: "0x" + addr,
			Nonce:   m.nonce,
		})
	})

	mux.HandleFunc("/tx/signing_bytes", func(w http.ResponseWriter, r *http.Request) {
		var req model.UnsignedTxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			m.t.Errorf("decode unsigned tx: %v", err)
			return
		}
		m.unsignedSeen = append(m.unsignedSeen, req)
		json.NewEncoder(w).Encode(model.SigningBytesResponse{
			SigningBytesHex: hex.EncodeToString(m.signingBytes),
		})
	})

	mux.HandleFunc("/tx", func(w http.ResponseWriter, r *http.Request) {
		var tx model.SignedTx
		if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
			m.t.Errorf("decode signed tx: %v", err)
			return
		}
		m.submitted = append(m.submitted, tx)
		json.NewEncoder(w).Encode(model.Receipt{Status: "submitted", TxID: "abc123"})
	})

	return mux
}

func newTestService(t *testing.T, ledgerURL string) *Service {
	t.Helper()
	files, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	log := zap.NewNop().Sugar()
	wallets := wallet.NewStore(files)
	sessions := session.NewManager(files, wallets)
	creds := credential.NewStore(files, wallets, sessions)
	ledger := client.NewLedgerClient(ledgerURL, log)
	return NewService(wallets, creds, sessions, ledger, Options{}, log)
}

func TestSubmitPipeline(t *testing.T) {
	mock := &mockLedger{t: t, nonce: 7, signingBytes: []byte("canonical bytes for nonce 7")}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	s := newTestService(t, server.URL)

	resp, err := s.Signup("alice@example.com", "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	receipt, err := s.Transfer(context.Background(), "0x"+strings.Repeat("11", 32), 10, model.AssetLUSD, nil)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if receipt.Status != "submitted" || receipt.TxID != "abc123" {
		t.Fatalf("unexpected receipt: %+v", receipt)
	}

	if len(mock.submitted) != 1 {
		t.Fatalf("expected one submitted tx, got %d", len(mock.submitted))
	}
	tx := mock.submitted[0]
	if tx.Nonce != 7 {
		t.Fatalf("expected submitted nonce 7, got %d", tx.Nonce)
	}
	if tx.GasLimit != DefaultGasLimit || tx.GasPrice != DefaultGasPrice {
		t.Fatalf("expected default gas settings, got %d/%d", tx.GasLimit, tx.GasPrice)
	}

	// The signature is produced locally over the ledger's canonical bytes
	// and must verify under the session's public key.
	pub, err := hex.DecodeString(resp.PublicKey)
	if err != nil {
		t.Fatalf("decode public key: %v", err)
	}
	if !ed25519.Verify(pub, mock.signingBytes, []byte(tx.Signature)) {
		t.Fatal("submitted signature must verify over the signing bytes")
	}
}

func TestSubmitGasOverrides(t *testing.T) {
	mock := &mockLedger{t: t, signingBytes: []byte("bytes")}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	s := newTestService(t, server.URL)
	if _, err := s.Signup("alice@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	limit, price := uint64(250_000), uint64(3)
	gas := &GasOverrides{GasLimit: &limit, GasPrice: &price}
	if _, err := s.Submit(context.Background(), model.NewTransfer([32]byte{1}, 5, model.AssetLJUN), gas); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(mock.unsignedSeen) != 1 {
		t.Fatalf("expected one signing request, got %d", len(mock.unsignedSeen))
	}
	req := mock.unsignedSeen[0]
	if req.GasLimit != limit || req.GasPrice != price {
		t.Fatalf("expected overridden gas %d/%d, got %d/%d", limit, price, req.GasLimit, req.GasPrice)
	}
}

func TestSubmitRequiresSession(t *testing.T) {
	mock := &mockLedger{t: t, signingBytes: []byte("bytes")}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	s := newTestService(t, server.URL)

	_, err := s.Submit(context.Background(), model.NewTransfer([32]byte{}, 1, model.AssetLUSD), nil)
	if !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestSubmitUnknownAccountUsesNonceZero(t *testing.T) {
	mock := &mockLedger{t: t, accountError: "Account not found", signingBytes: []byte("bytes")}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	s := newTestService(t, server.URL)
	if _, err := s.Signup("alice@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := s.Submit(context.Background(), model.NewTransfer([32]byte{2}, 1, model.AssetLUSD), nil); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(mock.unsignedSeen) != 1 || mock.unsignedSeen[0].Nonce != 0 {
		t.Fatalf("fresh account must submit with nonce 0, got %+v", mock.unsignedSeen)
	}
}

func TestBackToBackSubmitsReadSameNonce(t *testing.T) {
	mock := &mockLedger{t: t, nonce: 3, signingBytes: []byte("bytes")}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	s := newTestService(t, server.URL)
	if _, err := s.Signup("alice@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := s.Submit(context.Background(), model.NewTransfer([32]byte{3}, 1, model.AssetLUSD), nil); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	// The nonce is read fresh from the ledger each time, not tracked
	// locally, so both submissions carry the same value.
	if len(mock.unsignedSeen) != 2 {
		t.Fatalf("expected two signing requests, got %d", len(mock.unsignedSeen))
	}
	if mock.unsignedSeen[0].Nonce != 3 || mock.unsignedSeen[1].Nonce != 3 {
		t.Fatalf("expected both submissions to read nonce 3, got %d and %d",
			mock.unsignedSeen[0].Nonce, mock.unsignedSeen[1].Nonce)
	}
}

type mintFields struct {
	Amount           uint64 `json:"amount"`
	CollateralAmount uint64 `json:"collateral_amount"`
}

func decodeMint(t *testing.T, inst model.Instruction, tag string) mintFields {
	t.Helper()
	data, err := json.Marshal(inst)
	if err != nil {
		t.Fatalf("marshal instruction: %v", err)
	}
	var decoded map[string]mintFields
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal instruction: %v", err)
	}
	fields, ok := decoded[tag]
	if !ok {
		t.Fatalf("expected %s instruction, got %s", tag, data)
	}
	return fields
}

func TestMintInstructionCollateral(t *testing.T) {
	inst, err := MintInstruction(100, model.AssetLUSD)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	fields := decodeMint(t, inst, "MintSenior")
	if fields.Amount != 100 || fields.CollateralAmount != 120 {
		t.Fatalf("expected 120%% collateral, got %+v", fields)
	}

	inst, err = MintInstruction(100, model.AssetLJUN)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if fields := decodeMint(t, inst, "MintJunior"); fields.CollateralAmount != 120 {
		t.Fatalf("expected 120%% collateral, got %+v", fields)
	}
}

func TestMintInstructionCollateralSaturates(t *testing.T) {
	// Amounts past MaxUint64/120 must clamp instead of wrapping, which
	// would otherwise produce a collateral far below the minted amount.
	inst, err := MintInstruction(1<<62, model.AssetLUSD)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	fields := decodeMint(t, inst, "MintSenior")
	if fields.CollateralAmount != math.MaxUint64/100 {
		t.Fatalf("expected saturated collateral %d, got %d", uint64(math.MaxUint64)/100, fields.CollateralAmount)
	}
}

func TestMintRedeemRejectOtherAssets(t *testing.T) {
	if _, err := MintInstruction(1, model.AssetLumina(0)); err == nil {
		t.Fatal("expected mint of the gas token to be rejected")
	}
	if _, err := RedeemInstruction(1, model.AssetLumina(0)); err == nil {
		t.Fatal("expected redeem of the gas token to be rejected")
	}
}

func TestLogoutBlocksSubmission(t *testing.T) {
	mock := &mockLedger{t: t, signingBytes: []byte("bytes")}
	server := httptest.NewServer(mock.handler())
	defer server.Close()

	s := newTestService(t, server.URL)
	if _, err := s.Signup("alice@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := s.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	_, err := s.Submit(context.Background(), model.NewTransfer([32]byte{4}, 1, model.AssetLUSD), nil)
	if !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after logout, got %v", err)
	}
}
