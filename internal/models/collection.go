package models

import (
	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

// AccessLevel is a member's permission on a shared collection.
type AccessLevel string

const (
	AccessAdmin     AccessLevel = "admin"
	AccessReadWrite AccessLevel = "readwrite"
	AccessReadOnly  AccessLevel = "readonly"
)

// EncryptedCollection is a collection's encrypted envelope: its sealed
// symmetric key, its encrypted type tag, and the sentinel item that
// carries the collection's own meta and content (its display name and
// description, as opposed to the items it contains).
// Etag and sync token live on the sentinel Item (Item.Etag,
// Item.LastEtag) rather than duplicated here: the collection's own
// etag is exactly its sentinel item's etag, and stoken is a per-page
// value threaded through ListOptions/TransactionOptions, not a
// per-collection field. See DESIGN.md.
type EncryptedCollection struct {
	UID                string                  `msgpack:"uid"` // empty until server-assigned on first upload
	Version            int                     `msgpack:"version"`
	AccessLevel         AccessLevel             `msgpack:"accessLevel"`
	CollectionKey       []byte                  `msgpack:"collectionKey"`
	CollectionType      []byte                  `msgpack:"collectionType"`
	Item                EncryptedCollectionItem `msgpack:"item"`
	RemovedMemberships []string                 `msgpack:"removedMemberships,omitempty"`
}

// NewCollection generates a fresh collection key, seals it under
// account, encrypts stype, and constructs the collection's sentinel
// item from meta and content. The collection's AccessLevel is Admin —
// the creator always owns what they create. UID stays empty until the
// server assigns one on the first successful upload.
func NewCollection(gen *UIDGenerator, account *keymanager.AccountCryptoManager, stype string, meta Meta, content []byte) (EncryptedCollection, *keymanager.CollectionCryptoManager, error) {
	collectionKey, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return EncryptedCollection{}, nil, err
	}
	sealedKey, err := account.SealCollectionKey(collectionKey)
	if err != nil {
		return EncryptedCollection{}, nil, err
	}
	colMgr := keymanager.NewCollectionCryptoManager(collectionKey)

	sealedType, err := colMgr.EncryptCollectionType(stype)
	if err != nil {
		return EncryptedCollection{}, nil, err
	}

	item, _, err := NewItem(gen, colMgr, meta, content)
	if err != nil {
		return EncryptedCollection{}, nil, err
	}

	col := EncryptedCollection{
		Version:        1,
		AccessLevel:    AccessAdmin,
		CollectionKey:  sealedKey,
		CollectionType: sealedType,
		Item:           item,
	}
	return col, colMgr, nil
}

// GetCryptoManager decrypts CollectionKey under account and returns a
// CollectionCryptoManager. Returns crypto.ErrIntegrity if decryption
// fails — wrong account, or a collection shared with this account
// through an invitation that was never accepted.
func (c EncryptedCollection) GetCryptoManager(account *keymanager.AccountCryptoManager) (*keymanager.CollectionCryptoManager, error) {
	key, err := account.OpenCollectionKey(c.CollectionKey)
	if err != nil {
		return nil, err
	}
	return keymanager.NewCollectionCryptoManager(key), nil
}

// DecryptType opens CollectionType under colMgr.
func (c EncryptedCollection) DecryptType(colMgr *keymanager.CollectionCryptoManager) (string, error) {
	return colMgr.DecryptCollectionType(c.CollectionType)
}

// Verify checks both the collection's sentinel item and, transitively,
// its current revision.
func (c EncryptedCollection) Verify(colMgr *keymanager.CollectionCryptoManager) error {
	return c.Item.Verify(colMgr)
}

// State classifies the collection's own sync state from its sentinel
// item, matching EncryptedCollectionItem.State's semantics.
func (c EncryptedCollection) State() SyncState {
	return c.Item.State()
}

// MarkSaved commits a successful collection upload.
func (c *EncryptedCollection) MarkSaved() {
	c.Item.MarkSaved()
}
