// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the primitive cryptographic operations the
// sync engine is built from: password-based key derivation, symmetric
// AEAD sealing, asymmetric signing and sealing, and keyed MAC / subkey
// derivation.
//
// Nothing in this package knows about accounts, collections, or items —
// it only knows about keys and bytes. The [github.com/vaultmesh/synccore/internal/keymanager]
// package layers entity-scoped managers on top of these primitives.
package crypto
