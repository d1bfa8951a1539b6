package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config contains all configuration parameters for the application.
// APIURL may be left empty, in which case the API base is auto-discovered
// by probing APICandidates in order.
type Config struct {
	Port          string        `envconfig:"PORT" default:"8080"`
	StoreDir      string        `envconfig:"STORE_DIR" default:".lumina"`
	APIURL        string        `envconfig:"API_URL" default:""`
	APICandidates []string      `envconfig:"API_CANDIDATES" default:"http://localhost:3000,http://127.0.0.1:3000"`
	ProbeTimeout  time.Duration `envconfig:"PROBE_TIMEOUT" default:"2s"`
	GasLimit      uint64        `envconfig:"GAS_LIMIT" default:"100000"`
	GasPrice      uint64        `envconfig:"GAS_PRICE" default:"1"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("WALLET", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetStoreDir returns the local store directory from configuration
func GetStoreDir() string {
	return Get().StoreDir
}

// GetAPIURL returns the configured ledger API URL ("" means discover)
func GetAPIURL() string {
	return Get().APIURL
}

// GetAPICandidates returns the discovery candidate URLs
func GetAPICandidates() []string {
	return Get().APICandidates
}

// GetProbeTimeout returns the per-candidate discovery deadline
func GetProbeTimeout() time.Duration {
	return Get().ProbeTimeout
}

// GetGasLimit returns the default transaction gas limit
func GetGasLimit() uint64 {
	return Get().GasLimit
}

// GetGasPrice returns the default transaction gas price
func GetGasPrice() uint64 {
	return Get().GasPrice
}
