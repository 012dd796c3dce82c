// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Config is the top-level configuration for the sync engine. It is
// assembled by [Load] from [Default] merged with environment variables.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Server holds the backend connection settings.
	Server Server `envPrefix:"SERVER_"`

	// Argon2 holds the password-based key derivation tuning. The
	// parameters are not stored with the account: Signup, Login and
	// ChangePassword all derive with whatever is configured when they run.
	Argon2 Argon2 `envPrefix:"ARGON2_"`

	// Chunking holds the content-defined chunker's size bounds.
	Chunking Chunking `envPrefix:"CHUNK_"`

	// Sync holds pagination defaults for list and invitation endpoints.
	Sync Sync `envPrefix:"SYNC_"`
}

// Server holds the sync server's address and request timeout.
// internal/backend does not read it; it takes its own HTTPConfig.
type Server struct {
	// URL is the base URL of the sync server, e.g. "https://sync.example.com".
	// Env: SERVER_URL
	URL string `env:"URL"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Argon2 holds the Argon2id parameters used for password-based key
// derivation. These are version 1 parameters per spec; a future version
// would be introduced as a new constant set, not by making these
// per-call tunable.
type Argon2 struct {
	// TimeCost is the number of Argon2id passes.
	// Env: ARGON2_TIME_COST
	TimeCost uint32 `env:"TIME_COST"`

	// MemoryCostKiB is the memory cost in KiB.
	// Env: ARGON2_MEMORY_COST_KIB
	MemoryCostKiB uint32 `env:"MEMORY_COST_KIB"`

	// Threads is the degree of parallelism.
	// Env: ARGON2_THREADS
	Threads uint8 `env:"THREADS"`
}

// Chunking holds content-defined chunker size bounds, in bytes. Load
// validates them; the chunker in internal/models splits with its own
// fixed constants and does not read these values.
type Chunking struct {
	// TargetSize is the average chunk size the rolling hash aims for.
	// Env: CHUNK_TARGET_SIZE
	TargetSize int `env:"TARGET_SIZE"`

	// MaxSize is the hard cap on a single chunk's size.
	// Env: CHUNK_MAX_SIZE
	MaxSize int `env:"MAX_SIZE"`

	// MinSize is the floor below which the rolling hash is ignored.
	// Env: CHUNK_MIN_SIZE
	MinSize int `env:"MIN_SIZE"`
}

// Sync holds page sizes for list-style backend operations. No backend
// call reads them: a listing with a zero ListOptions.Limit sends no
// "limit" query parameter.
type Sync struct {
	// ListPageLimit is the page size for collection/item listing.
	// Env: SYNC_LIST_PAGE_LIMIT
	ListPageLimit int `env:"LIST_PAGE_LIMIT"`

	// InvitationPageLimit is the default page size for invitation
	// listing requests.
	// Env: SYNC_INVITATION_PAGE_LIMIT
	InvitationPageLimit int `env:"INVITATION_PAGE_LIMIT"`
}

// Default returns the built-in configuration defaults. [Load] merges
// environment variables on top of this.
func Default() *Config {
	return &Config{
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Argon2: Argon2{
			TimeCost:      2,
			MemoryCostKiB: 64 * 1024,
			Threads:       4,
		},
		Chunking: Chunking{
			TargetSize: 32 * 1024,
			MaxSize:    128 * 1024,
			MinSize:    2 * 1024,
		},
		Sync: Sync{
			ListPageLimit:       50,
			InvitationPageLimit: 50,
		},
	}
}

// Load assembles a [Config] from [Default] merged with environment
// variables (later source overrides earlier on non-zero fields), then
// validates the result.
func Load() (*Config, error) {
	return newConfigBuilder().
		withDefault().
		withEnv().
		build()
}
