// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"

	"github.com/vaultmesh/synccore/internal/keymanager"
	"github.com/vaultmesh/synccore/internal/models"
)

// Item is one entry in a [Collection]: a chunked, independently keyed
// piece of content with its own revision history.
type Item struct {
	collection *Collection
	enc        models.EncryptedCollectionItem
	mgr        *keymanager.CollectionItemCryptoManager
}

// UID is the client-minted identifier assigned at creation; items
// exist, and are referenced by their revisions, before any network
// round trip.
func (it *Item) UID() string { return it.enc.UID }

// State classifies the item against the sync state machine: New,
// Clean, or Dirty.
func (it *Item) State() SyncState { return syncStateFromModels(it.enc.State()) }

// Deleted reports whether the item's current revision is a
// tombstone.
func (it *Item) Deleted() bool { return it.enc.Content.Deleted }

// Meta decrypts the item's current revision metadata.
func (it *Item) Meta() (Meta, error) {
	mgr, err := it.cryptoManager()
	if err != nil {
		return Meta{}, err
	}
	return it.enc.Content.DecryptMeta(mgr)
}

// Content decrypts and reassembles the item's current revision
// content from its chunks, downloading any chunk not already held
// locally (a placeholder left by a [PrefetchAuto] fetch or list).
func (it *Item) Content(ctx context.Context) ([]byte, error) {
	if err := it.ensureChunksSealed(ctx); err != nil {
		return nil, err
	}
	mgr, err := it.cryptoManager()
	if err != nil {
		return nil, err
	}
	return it.enc.Content.DecryptContent(mgr)
}

func (it *Item) ensureChunksSealed(ctx context.Context) error {
	for i, c := range it.enc.Content.Chunks {
		if len(c.Sealed) != 0 {
			continue
		}
		sealed, err := it.collection.account.be.DownloadChunk(ctx, it.collection.enc.UID, it.enc.UID, c.UID)
		if err != nil {
			return err
		}
		it.enc.Content.Chunks[i].Sealed = sealed
	}
	return nil
}

// SetMeta stages a new name/mtime locally, advancing the item to the
// Dirty state.
func (it *Item) SetMeta(meta Meta) error {
	mgr, err := it.cryptoManager()
	if err != nil {
		return err
	}
	return it.enc.SetMeta(mgr, meta)
}

// SetContent stages new content locally, advancing the item to the
// Dirty state.
func (it *Item) SetContent(content []byte) error {
	mgr, err := it.cryptoManager()
	if err != nil {
		return err
	}
	return it.enc.SetContent(mgr, content)
}

// Delete stages a tombstone revision locally.
func (it *Item) Delete() error {
	mgr, err := it.cryptoManager()
	if err != nil {
		return err
	}
	return it.enc.MarkDeleted(mgr)
}

func (it *Item) cryptoManager() (*keymanager.CollectionItemCryptoManager, error) {
	if it.mgr != nil {
		return it.mgr, nil
	}
	mgr, err := it.enc.GetCryptoManager(it.collection.mgr)
	if err != nil {
		return nil, err
	}
	it.mgr = mgr
	return mgr, nil
}
