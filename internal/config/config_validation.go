// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [Config] satisfies the
// invariants every sync engine component assumes at construction time.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *Config) validate() error {
	if cfg.Server.URL == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfig
	}

	if cfg.Argon2.TimeCost == 0 || cfg.Argon2.MemoryCostKiB == 0 || cfg.Argon2.Threads == 0 {
		return ErrInvalidArgon2Config
	}

	if cfg.Chunking.MinSize <= 0 || cfg.Chunking.MaxSize <= 0 || cfg.Chunking.MinSize >= cfg.Chunking.MaxSize ||
		cfg.Chunking.TargetSize < cfg.Chunking.MinSize || cfg.Chunking.TargetSize > cfg.Chunking.MaxSize {
		return ErrInvalidChunkingConfig
	}

	return nil
}
