// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keymanager layers the entity-scoped key hierarchy on top of
// [github.com/vaultmesh/synccore/internal/crypto]'s primitives:
//
//	Main → Login, Account, Identity
//	Account → (seals) → Collection
//	Collection → (seals) → CollectionItem
//
// Each manager wraps a 32-byte symmetric key (or, for Login/Identity, an
// asymmetric keypair). Only the Login keypair is derived from its
// parent, via an 8-byte context tag; the Account, Collection and
// CollectionItem keys are random and sealed under their parent. Every
// symmetric seal/open call additionally takes an associated-data
// domain tag so that ciphertext from one use cannot
// be replayed into another (for example a sealed collection key cannot
// be mistaken for a sealed item key even under the same account key).
package keymanager
