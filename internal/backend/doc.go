// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backend is the transport port between the sync engine and
// the server: a [Backend] interface with one method per endpoint
// family, and an HTTP/MessagePack implementation built on resty. Every
// method takes and returns opaque ciphertext-bearing wire structs —
// nothing in this package decrypts or verifies anything; that is the
// job of internal/keymanager and internal/models, one layer up.
package backend
