// Package commands contains the luminactl wallet CLI.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/luminachain/lumina-wallet/internal/client"
	"github.com/luminachain/lumina-wallet/internal/credential"
	"github.com/luminachain/lumina-wallet/internal/session"
	"github.com/luminachain/lumina-wallet/internal/store"
	"github.com/luminachain/lumina-wallet/internal/wallet"
	"github.com/luminachain/lumina-wallet/lumina"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	nodeURL  string
	storeDir string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&nodeURL, "node-url", "u", "http://localhost:3000", "Ledger API base URL.")
	rootCmd.PersistentFlags().StringVarP(&storeDir, "store", "s", ".lumina", "Path to the local wallet store.")
}

var rootCmd = &cobra.Command{
	Use:   "luminactl",
	Short: "Wallet for the Lumina ledger",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildService wires the stores and ledger client for one CLI invocation.
func buildService() (*lumina.Service, error) {
	files, err := store.NewFileStore(storeDir)
	if err != nil {
		return nil, err
	}

	log := zap.NewNop().Sugar()
	wallets := wallet.NewStore(files)
	sessions := session.NewManager(files, wallets)
	creds := credential.NewStore(files, wallets, sessions)
	ledger := client.NewLedgerClient(nodeURL, log)

	return lumina.NewService(wallets, creds, sessions, ledger, lumina.Options{}, log), nil
}

// promptPassword reads a password from the terminal without echoing.
// Caller must zero the returned slice after use for security.
func promptPassword(label string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter a password")
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	clear(raw)
	return out, nil
}
