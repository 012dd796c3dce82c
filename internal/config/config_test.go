// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("SERVER_URL", "https://sync.example.com")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("CHUNK_TARGET_SIZE", "16384")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://sync.example.com", cfg.Server.URL)
	require.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	require.Equal(t, 16384, cfg.Chunking.TargetSize)

	// Fields left unset by env keep the default.
	require.Equal(t, uint32(2), cfg.Argon2.TimeCost)
	require.Equal(t, 128*1024, cfg.Chunking.MaxSize)
}

func TestLoad_MissingServerURLFails(t *testing.T) {
	_, err := Load()
	require.ErrorIs(t, err, ErrInvalidServerConfig)
}

func TestConfig_Validate_RejectsBadChunking(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "https://sync.example.com"
	cfg.Chunking.MinSize = cfg.Chunking.MaxSize + 1

	require.ErrorIs(t, cfg.validate(), ErrInvalidChunkingConfig)
}

func TestConfig_Validate_RejectsZeroArgon2Params(t *testing.T) {
	cfg := Default()
	cfg.Server.URL = "https://sync.example.com"
	cfg.Argon2.Threads = 0

	require.ErrorIs(t, cfg.validate(), ErrInvalidArgon2Config)
}
