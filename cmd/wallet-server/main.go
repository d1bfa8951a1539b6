package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/luminachain/lumina-wallet/internal/api"
	"github.com/luminachain/lumina-wallet/internal/client"
	"github.com/luminachain/lumina-wallet/internal/config"
	"github.com/luminachain/lumina-wallet/internal/credential"
	"github.com/luminachain/lumina-wallet/internal/session"
	"github.com/luminachain/lumina-wallet/internal/store"
	"github.com/luminachain/lumina-wallet/internal/wallet"
	"github.com/luminachain/lumina-wallet/lumina"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {

	// Construct the application logger.
	log, err := newLogger("WALLET")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	if err := config.Init(); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	log.Infow("starting service", "port", config.GetPort(), "store", config.GetStoreDir())
	defer log.Infow("shutdown complete")

	// =========================================================================
	// Ledger API base

	baseURL := config.GetAPIURL()
	if baseURL == "" {
		discovered, err := client.Discover(context.Background(), config.GetAPICandidates(), config.GetProbeTimeout(), log)
		if err != nil {
			return fmt.Errorf("discovering ledger API: %w", err)
		}
		baseURL = discovered
	}
	ledger := client.NewLedgerClient(baseURL, log)

	// =========================================================================
	// Stores and service

	files, err := store.NewFileStore(config.GetStoreDir())
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}

	wallets := wallet.NewStore(files)
	sessions := session.NewManager(files, wallets)
	creds := credential.NewStore(files, wallets, sessions)

	service := lumina.NewService(wallets, creds, sessions, ledger, lumina.Options{
		GasLimit: config.GetGasLimit(),
		GasPrice: config.GetGasPrice(),
	}, log)

	// =========================================================================
	// Start API Service

	server := http.Server{
		Addr:         ":" + config.GetPort(),
		Handler:      api.SetupRouter(service, log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Infow("api listening", "addr", server.Addr, "ledger", baseURL)
		serverErrors <- server.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown started", "signal", sig)
		defer log.Infow("shutdown finished", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func newLogger(service string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.InitialFields = map[string]any{"service": service}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
