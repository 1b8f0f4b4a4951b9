package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view of the seeder CLI: where the API
// lives and which staff account to log in with.
type ClientConfig struct {
	// BaseAddress is the catalog API address, with or without scheme.
	BaseAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// AdminEmail and AdminPassword are the staff credentials.
	AdminEmail    string
	AdminPassword string
}

// GetClientConfig builds and validates the seeder configuration.
//
// overrides carries values taken from command-line flags (cobra owns flag
// parsing in the seeder); its non-zero fields win over .env and environment
// values and lose to an explicit JSON file.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	clientCfg, err := loadClientConfig(overrides)
	if err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validate()
}

// GetClientConnectionConfig is [GetClientConfig] for commands that only
// need to reach the API: admin credentials are not required.
func GetClientConnectionConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	clientCfg, err := loadClientConfig(overrides)
	if err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validateConnection()
}

func loadClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withConfig(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		BaseAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		AdminEmail:     cfg.Adapter.AdminEmail,
		AdminPassword:  cfg.Adapter.AdminPassword,
	}, nil
}
