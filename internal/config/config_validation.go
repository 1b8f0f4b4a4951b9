// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged server configuration can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is empty", ErrInvalidServerConfigs)
	}

	if cfg.App.SessionHashKey == "" {
		return fmt.Errorf("%w: session hash key is empty", ErrInvalidAppConfigs)
	}

	if cfg.App.DefaultPageSize < 1 || cfg.App.MaxPageSize < cfg.App.DefaultPageSize {
		return fmt.Errorf("%w: page size %d must be within 1..%d", ErrInvalidAppConfigs, cfg.App.DefaultPageSize, cfg.App.MaxPageSize)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.validateConnection(); err != nil {
		return err
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return fmt.Errorf("%w: admin credentials are required", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validateConnection() error {
	if cfg.BaseAddress == "" || cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: api address is empty", ErrInvalidAdapterConfigs)
	}

	return nil
}
