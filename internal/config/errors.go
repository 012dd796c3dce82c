// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfig indicates invalid server settings (for
	// example, empty server URL or zero request timeout).
	ErrInvalidServerConfig = errors.New("invalid server configuration")
	// ErrInvalidArgon2Config indicates invalid Argon2id tuning (for
	// example, zero time cost, memory cost, or thread count).
	ErrInvalidArgon2Config = errors.New("invalid argon2 configuration")
	// ErrInvalidChunkingConfig indicates invalid chunker size bounds
	// (for example, min size exceeding max size).
	ErrInvalidChunkingConfig = errors.New("invalid chunking configuration")
)
