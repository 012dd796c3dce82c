package models

import (
	"fmt"

	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

// EncryptedCollectionItem is an item's encrypted envelope: its own
// symmetric key (sealed under the owning collection's key), its
// current revision, and the etag bookkeeping the sync state machine
// uses to detect local edits and server-side conflicts.
type EncryptedCollectionItem struct {
	UID           string            `msgpack:"uid"`
	Version       int               `msgpack:"version"`
	EncryptionKey []byte            `msgpack:"encryptionKey,omitempty"` // nil → collection key used directly
	Content       EncryptedRevision `msgpack:"content"`
	Etag          []byte            `msgpack:"etag"`     // current revision uid, nil if never uploaded
	LastEtag      []byte            `msgpack:"lastEtag"`  // etag as of last successful upload
}

// NewItem generates a fresh item key, seals it under collection, and
// constructs the item's first revision from meta and content. The uid
// is minted client-side via gen since items must exist before any
// network round trip. The resulting item is in the "New" sync state:
// Etag is nil.
func NewItem(gen *UIDGenerator, collection *keymanager.CollectionCryptoManager, meta Meta, content []byte) (EncryptedCollectionItem, *keymanager.CollectionItemCryptoManager, error) {
	uid, err := gen.Generate()
	if err != nil {
		return EncryptedCollectionItem{}, nil, err
	}

	itemKey, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return EncryptedCollectionItem{}, nil, err
	}
	sealedKey, err := collection.SealItemKey(itemKey)
	if err != nil {
		return EncryptedCollectionItem{}, nil, err
	}
	itemMgr := keymanager.NewCollectionItemCryptoManager(itemKey)

	rev, err := NewRevision(itemMgr, meta, content, false)
	if err != nil {
		return EncryptedCollectionItem{}, nil, err
	}

	item := EncryptedCollectionItem{
		UID:           uid,
		Version:       1,
		EncryptionKey: sealedKey,
		Content:       rev,
	}
	return item, itemMgr, nil
}

// GetCryptoManager recovers this item's CollectionItemCryptoManager by
// opening EncryptionKey under collection. Returns crypto.ErrIntegrity if
// the sealed key does not decrypt.
func (it EncryptedCollectionItem) GetCryptoManager(collection *keymanager.CollectionCryptoManager) (*keymanager.CollectionItemCryptoManager, error) {
	if it.EncryptionKey == nil {
		return keymanager.NewCollectionItemCryptoManager(collection.Key()), nil
	}
	key, err := collection.OpenItemKey(it.EncryptionKey)
	if err != nil {
		return nil, err
	}
	return keymanager.NewCollectionItemCryptoManager(key), nil
}

// SetMeta replaces the item's current revision with one carrying new
// meta but the same content, advancing Etag to the new revision's uid.
// LastEtag is left untouched until the caller uploads successfully.
func (it *EncryptedCollectionItem) SetMeta(itemMgr *keymanager.CollectionItemCryptoManager, meta Meta) error {
	content, err := it.Content.DecryptContent(itemMgr)
	if err != nil {
		return err
	}
	rev, err := NewRevision(itemMgr, meta, content, it.Content.Deleted)
	if err != nil {
		return err
	}
	it.Content = rev
	it.Etag = rev.UID
	return nil
}

// SetContent replaces the item's current revision with one carrying
// new content but the same meta.
func (it *EncryptedCollectionItem) SetContent(itemMgr *keymanager.CollectionItemCryptoManager, content []byte) error {
	meta, err := it.Content.DecryptMeta(itemMgr)
	if err != nil {
		return err
	}
	rev, err := NewRevision(itemMgr, meta, content, it.Content.Deleted)
	if err != nil {
		return err
	}
	it.Content = rev
	it.Etag = rev.UID
	return nil
}

// MarkDeleted replaces the current revision with a tombstone carrying
// the same meta and empty content.
func (it *EncryptedCollectionItem) MarkDeleted(itemMgr *keymanager.CollectionItemCryptoManager) error {
	meta, err := it.Content.DecryptMeta(itemMgr)
	if err != nil {
		return err
	}
	rev, err := NewRevision(itemMgr, meta, nil, true)
	if err != nil {
		return err
	}
	it.Content = rev
	it.Etag = rev.UID
	return nil
}

// Verify re-derives the item's crypto manager and checks the current
// revision's integrity.
func (it EncryptedCollectionItem) Verify(collection *keymanager.CollectionCryptoManager) error {
	itemMgr, err := it.GetCryptoManager(collection)
	if err != nil {
		return err
	}
	return it.Content.Verify(itemMgr)
}

// SyncState classifies the item per the sync state machine: New
// (never uploaded), Clean (no local edit pending), or Dirty (local
// edit pending upload). Gone is not representable locally — it is
// assigned by the caller on a 404 from fetch.
type SyncState int

const (
	StateNew SyncState = iota
	StateClean
	StateDirty
)

func (s SyncState) String() string {
	switch s {
	case StateNew:
		return "New"
	case StateClean:
		return "Clean"
	case StateDirty:
		return "Dirty"
	default:
		return fmt.Sprintf("SyncState(%d)", int(s))
	}
}

// State classifies the item's current sync state from its Etag and
// LastEtag bookkeeping.
func (it EncryptedCollectionItem) State() SyncState {
	if it.Etag == nil {
		return StateNew
	}
	if !bytesEqual(it.Etag, it.LastEtag) {
		return StateDirty
	}
	return StateClean
}

// MarkSaved commits a successful upload: LastEtag advances to Etag.
func (it *EncryptedCollectionItem) MarkSaved() {
	it.LastEtag = it.Etag
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
