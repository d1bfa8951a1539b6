package api

import (
	"net/http"

	"github.com/luminachain/lumina-wallet/internal/handler"
	"github.com/luminachain/lumina-wallet/lumina"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers
func SetupRouter(service *lumina.Service, log *zap.SugaredLogger) http.Handler {
	walletHandler := handler.NewWalletHandler(service, log)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Auth endpoints
	mux.HandleFunc("/auth/signup", walletHandler.Signup)
	mux.HandleFunc("/auth/login", walletHandler.Login)
	mux.HandleFunc("/auth/logout", walletHandler.Logout)
	mux.HandleFunc("/auth/session", walletHandler.Session)

	// Wallet endpoints
	mux.HandleFunc("/wallet/import", walletHandler.ImportKey)
	mux.HandleFunc("/wallet/import-keystore", walletHandler.ImportKeystore)
	mux.HandleFunc("/wallet/export", walletHandler.ExportKeystore)

	// Ledger endpoints
	mux.HandleFunc("/tx/submit", walletHandler.Submit)
	mux.HandleFunc("/faucet", walletHandler.Faucet)
	mux.HandleFunc("/balance", walletHandler.Balance)
	mux.HandleFunc("/ledger/state", walletHandler.State)
	mux.HandleFunc("/ledger/health", walletHandler.Health)

	return mux
}
