package client

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/luminachain/lumina-wallet/internal/common"
	"github.com/luminachain/lumina-wallet/internal/model"

	"go.uber.org/zap"
)

// LedgerClient talks to the Lumina ledger REST API. It never constructs the
// ledger's canonical transaction serialization itself: signing bytes are
// fetched from the ledger so client and server agree byte for byte.
type LedgerClient struct {
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

// NewLedgerClient creates a client for the given API base URL.
func NewLedgerClient(baseURL string, log *zap.SugaredLogger) *LedgerClient {
	return &LedgerClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// BaseURL returns the API base this client talks to.
func (c *LedgerClient) BaseURL() string {
	return c.baseURL
}

// State fetches the ledger's state summary as raw JSON.
func (c *LedgerClient) State(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/state")
}

// Health fetches the ledger's health summary as raw JSON.
func (c *LedgerClient) Health(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/health")
}

// accountReply covers both shapes /account returns: an account record or an
// error object (HTTP 200 either way).
type accountReply struct {
	model.Account
	Error string `json:"error"`
}

// Account fetches the account record for a "0x"-prefixed address. An error
// payload from the ledger yields a zeroed account (nonce 0, balances 0) so
// first-time addresses can transact before they have any on-chain footprint.
func (c *LedgerClient) Account(ctx context.Context, address string) (model.Account, error) {
	body, err := c.get(ctx, "/account/"+common.StripHexPrefix(address))
	if err != nil {
		return model.Account{}, err
	}

	var reply accountReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return model.Account{}, fmt.Errorf("%w: account: %v", ErrMalformedReply, err)
	}
	if reply.Error != "" {
		c.log.Debugw("account not on ledger, using zeroed default", "address", address, "reason", reply.Error)
		return model.Account{Address: address}, nil
	}
	return reply.Account, nil
}

// Faucet requests test funds for the given address.
func (c *LedgerClient) Faucet(ctx context.Context, address string) (model.FaucetResponse, error) {
	body, err := c.post(ctx, "/faucet", model.FaucetRequest{Address: address})
	if err != nil {
		return model.FaucetResponse{}, err
	}

	var reply model.FaucetResponse
	if err := json.Unmarshal(body, &reply); err != nil {
		return model.FaucetResponse{}, fmt.Errorf("%w: faucet: %v", ErrMalformedReply, err)
	}
	if reply.Error != "" {
		return model.FaucetResponse{}, fmt.Errorf("faucet refused: %s", reply.Error)
	}
	return reply, nil
}

// SigningBytes asks the ledger for the canonical byte encoding of the
// unsigned request. A missing or undecodable signing_bytes_hex aborts the
// flow rather than guessing.
func (c *LedgerClient) SigningBytes(ctx context.Context, req model.UnsignedTxRequest) ([]byte, error) {
	body, err := c.post(ctx, "/tx/signing_bytes", req)
	if err != nil {
		return nil, err
	}

	var reply model.SigningBytesResponse
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("%w: signing bytes: %v", ErrMalformedReply, err)
	}
	if reply.SigningBytesHex == "" {
		return nil, fmt.Errorf("%w: reply is missing signing_bytes_hex", ErrMalformedReply)
	}

	raw, err := hex.DecodeString(reply.SigningBytesHex)
	if err != nil {
		return nil, fmt.Errorf("%w: signing_bytes_hex is not hex: %v", ErrMalformedReply, err)
	}
	return raw, nil
}

// SubmitTx submits a signed transaction and returns the ledger's receipt.
func (c *LedgerClient) SubmitTx(ctx context.Context, tx model.SignedTx) (model.Receipt, error) {
	body, err := c.post(ctx, "/tx", tx)
	if err != nil {
		return model.Receipt{}, err
	}

	var receipt model.Receipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return model.Receipt{}, fmt.Errorf("%w: receipt: %v", ErrMalformedReply, err)
	}
	if receipt.Status == "failed" {
		return model.Receipt{}, fmt.Errorf("ledger rejected transaction: %s", receipt.Error)
	}
	if receipt.TxID == "" {
		return model.Receipt{}, fmt.Errorf("%w: receipt is missing tx_id", ErrMalformedReply)
	}
	return receipt, nil
}

func (c *LedgerClient) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s returned invalid JSON", ErrMalformedReply, path)
	}
	return json.RawMessage(body), nil
}

func (c *LedgerClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req, path)
}

func (c *LedgerClient) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path)
}

func (c *LedgerClient) do(req *http.Request, path string) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, Normalize(err, c.baseURL, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, Normalize(&StatusError{Code: resp.StatusCode, Path: path}, c.baseURL, path)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read %s reply: %w", path, err)
	}
	return buf.Bytes(), nil
}
