// Package lumina ties the wallet, credential, and session stores to the
// ledger client: signup/login flows, the transaction submission pipeline,
// and ledger queries.
package lumina

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luminachain/lumina-wallet/internal/client"
	"github.com/luminachain/lumina-wallet/internal/credential"
	"github.com/luminachain/lumina-wallet/internal/model"
	"github.com/luminachain/lumina-wallet/internal/session"
	"github.com/luminachain/lumina-wallet/internal/wallet"

	"go.uber.org/zap"
)

const (
	// DefaultGasLimit applies when a caller supplies no override.
	DefaultGasLimit = 100_000
	// DefaultGasPrice applies when a caller supplies no override.
	DefaultGasPrice = 1
)

// Service is the wallet subsystem's front door. All dependencies are
// injected; there is no ambient global state.
type Service struct {
	wallets  *wallet.Store
	creds    *credential.Store
	sessions *session.Manager
	ledger   *client.LedgerClient
	gasLimit uint64
	gasPrice uint64
	log      *zap.SugaredLogger
}

// Options tune the service defaults.
type Options struct {
	GasLimit uint64
	GasPrice uint64
}

// NewService wires a service. Zero option fields fall back to the defaults.
func NewService(wallets *wallet.Store, creds *credential.Store, sessions *session.Manager, ledger *client.LedgerClient, opts Options, log *zap.SugaredLogger) *Service {
	gasLimit := opts.GasLimit
	if gasLimit == 0 {
		gasLimit = DefaultGasLimit
	}
	gasPrice := opts.GasPrice
	if gasPrice == 0 {
		gasPrice = DefaultGasPrice
	}

	return &Service{
		wallets:  wallets,
		creds:    creds,
		sessions: sessions,
		ledger:   ledger,
		gasLimit: gasLimit,
		gasPrice: gasPrice,
		log:      log,
	}
}

// Session returns the current session, if any.
func (s *Service) Session() (model.WalletAuth, bool) {
	return s.sessions.Get()
}

// State fetches the ledger state summary.
func (s *Service) State(ctx context.Context) (json.RawMessage, error) {
	return s.ledger.State(ctx)
}

// Health fetches the ledger health summary.
func (s *Service) Health(ctx context.Context) (json.RawMessage, error) {
	return s.ledger.Health(ctx)
}

// Balance fetches the account record for address, defaulting to the current
// session's address when empty.
func (s *Service) Balance(ctx context.Context, address string) (model.Account, error) {
	if address == "" {
		auth, err := s.sessions.Require()
		if err != nil {
			return model.Account{}, err
		}
		address = auth.Address
	}
	return s.ledger.Account(ctx, address)
}

// Faucet requests test funds, defaulting to the current session's address.
func (s *Service) Faucet(ctx context.Context, address string) (model.FaucetResponse, error) {
	if address == "" {
		auth, err := s.sessions.Require()
		if err != nil {
			return model.FaucetResponse{}, err
		}
		address = auth.Address
	}
	reply, err := s.ledger.Faucet(ctx, address)
	if err != nil {
		return model.FaucetResponse{}, fmt.Errorf("failed to request funds: %w", err)
	}
	return reply, nil
}
