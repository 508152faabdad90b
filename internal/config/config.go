// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// classifieds server. It aggregates all sub-configurations and is populated
// by merging defaults, a .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing settings.
	App App

	// Storage holds configuration for the relational database and the
	// reference data cache.
	Storage Storage

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Broker holds the message broker settings used for domain events.
	Broker Broker `envPrefix:"BROKER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds the security settings of the authentication layer.
type App struct {
	// TokenSignKey is the secret used to sign and verify bearer tokens.
	// It is required: the server refuses to start without it.
	// Env: JWT_SECRET
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: JWT_DURATION
	TokenDuration time.Duration `env:"JWT_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: BCRYPT_COST
	PasswordHashCost int `env:"BCRYPT_COST"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for PostgreSQL. Either DSN or the discrete
// Host/User/Password/Name/Port fields must be provided.
type DB struct {
	// DSN is a complete connection string; it wins over the discrete fields.
	// Env: DB_URI
	DSN string `env:"URI"`

	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"DATABASE"`

	// SSLMode is passed as the sslmode connection parameter.
	SSLMode string `env:"SSL_MODE"`

	// SSLRootCert is the path of the CA bundle used to verify the server.
	SSLRootCert string `env:"SSL_ROOT_CERT"`

	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// Migrate applies the embedded schema migrations at startup.
	Migrate bool `env:"MIGRATE"`
}

// ConnString returns the connection string used to open the pool.
func (d DB) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}

	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	if d.SSLRootCert != "" {
		q.Set("sslrootcert", d.SSLRootCert)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// Cache holds the Redis settings of the reference data cache.
// Caching is disabled when RedisAddress is empty.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	TTL           time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Broker holds the RabbitMQ settings. Event publishing is disabled when
// AMQPURL is empty.
type Broker struct {
	AMQPURL  string `env:"AMQP_URL"`
	Exchange string `env:"EXCHANGE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded first)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
