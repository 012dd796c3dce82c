// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"

	"github.com/vaultmesh/synccore/internal/keymanager"
	"github.com/vaultmesh/synccore/internal/models"
)

// Collection is a named, independently keyed group of items. Its own
// display name and description live on a sentinel item carried
// inside the collection's encrypted envelope, encrypted the same way
// any other item's revision is.
type Collection struct {
	account *Account
	enc     models.EncryptedCollection
	mgr     *keymanager.CollectionCryptoManager
	itemMgr *keymanager.CollectionItemCryptoManager
}

// UID is the server-assigned identifier, "" until the first
// successful Upload.
func (c *Collection) UID() string { return c.enc.UID }

// AccessLevel is the caller's permission on this collection.
func (c *Collection) AccessLevel() AccessLevel { return accessLevelFromModels(c.enc.AccessLevel) }

// State classifies the collection's sentinel item against the sync
// state machine.
func (c *Collection) State() SyncState { return syncStateFromModels(c.enc.State()) }

// Type decrypts the application-defined collection type tag (e.g.
// "addressbook", "calendar") supplied at creation.
func (c *Collection) Type() (string, error) { return c.enc.DecryptType(c.mgr) }

// Meta decrypts the collection's own display metadata.
func (c *Collection) Meta() (Meta, error) {
	im, err := c.sentinelItemMgr()
	if err != nil {
		return Meta{}, err
	}
	return c.enc.Item.Content.DecryptMeta(im)
}

// Content decrypts the collection's own content, e.g. a longer
// free-form description, downloading any chunk not already held
// locally.
func (c *Collection) Content(ctx context.Context) ([]byte, error) {
	for i, ch := range c.enc.Item.Content.Chunks {
		if len(ch.Sealed) != 0 {
			continue
		}
		sealed, err := c.account.be.DownloadChunk(ctx, c.enc.UID, c.enc.Item.UID, ch.UID)
		if err != nil {
			return nil, err
		}
		c.enc.Item.Content.Chunks[i].Sealed = sealed
	}
	im, err := c.sentinelItemMgr()
	if err != nil {
		return nil, err
	}
	return c.enc.Item.Content.DecryptContent(im)
}

// SetMeta stages a new display name locally; the edit is not visible
// to the server until Upload or Transaction succeeds.
func (c *Collection) SetMeta(meta Meta) error {
	im, err := c.sentinelItemMgr()
	if err != nil {
		return err
	}
	return c.enc.Item.SetMeta(im, meta)
}

// SetContent stages new collection content locally.
func (c *Collection) SetContent(content []byte) error {
	im, err := c.sentinelItemMgr()
	if err != nil {
		return err
	}
	return c.enc.Item.SetContent(im, content)
}

// Items returns a manager for this collection's items.
func (c *Collection) Items() *ItemManager {
	return &ItemManager{collection: c}
}

// Members returns a manager for this collection's shared membership.
func (c *Collection) Members() *MemberManager {
	return &MemberManager{collection: c}
}

func (c *Collection) sentinelItemMgr() (*keymanager.CollectionItemCryptoManager, error) {
	if c.itemMgr != nil {
		return c.itemMgr, nil
	}
	im, err := c.enc.Item.GetCryptoManager(c.mgr)
	if err != nil {
		return nil, err
	}
	c.itemMgr = im
	return im, nil
}
