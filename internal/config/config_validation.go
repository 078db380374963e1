// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultTokenIssuer    = "go-notes"
	defaultTokenDuration  = 24 * time.Hour
	defaultDriver         = DriverPostgres
	defaultAttachmentsDir = "storage"
	defaultPerPage        = 20
	defaultHomeLimit      = 50
	defaultRecentLimit    = 5

	// MaxPerPage caps both the configured and the requested page size.
	MaxPerPage = 100
)

// defaults returns the lowest-priority configuration layer. Merged last, it
// only fills fields no other source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       "dev",
		},
		Storage: Storage{
			DB:    DB{Driver: defaultDriver},
			Files: Files{AttachmentsDir: defaultAttachmentsDir},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Listing: Listing{
			PerPage:     defaultPerPage,
			HomeLimit:   defaultHomeLimit,
			RecentLimit: defaultRecentLimit,
		},
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Listing.PerPage < 1 || cfg.Listing.PerPage > MaxPerPage {
		return fmt.Errorf("%w: per page must be within 1..%d", ErrInvalidListingConfigs, MaxPerPage)
	}

	if cfg.Listing.HomeLimit < 1 || cfg.Listing.RecentLimit < 1 {
		return fmt.Errorf("%w: home and recent limits must be positive", ErrInvalidListingConfigs)
	}

	return nil
}
