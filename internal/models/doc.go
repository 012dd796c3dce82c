// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the encrypted envelope structures exchanged
// with the backend: EncryptedCollection, EncryptedCollectionItem,
// EncryptedRevision, Chunk, and SignedInvitation. Every field that
// would reveal plaintext is sealed by the caller's
// [github.com/vaultmesh/synccore/internal/keymanager] manager before it
// reaches this package; this package only knows how to assemble,
// serialize, and integrity-check the resulting ciphertext envelopes.
package models
