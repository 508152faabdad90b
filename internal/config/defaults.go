// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer      = "classifieds"
	defaultTokenDuration    = 24 * time.Hour
	defaultPasswordHashCost = 10

	defaultHTTPAddress    = ":3000"
	defaultRequestTimeout = 30 * time.Second

	defaultDBPort         = 5432
	defaultDBMaxOpenConns = 10
	defaultDBMaxIdleConns = 4

	defaultCacheTTL       = 10 * time.Minute
	defaultBrokerExchange = "classifieds.events"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Port:         defaultDBPort,
				MaxOpenConns: defaultDBMaxOpenConns,
				MaxIdleConns: defaultDBMaxIdleConns,
			},
			Cache: Cache{
				TTL: defaultCacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Broker: Broker{
			Exchange: defaultBrokerExchange,
		},
	}
}
