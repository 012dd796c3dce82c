package keymanager

import "github.com/vaultmesh/synccore/internal/crypto"

// CollectionCryptoManager wraps a collection's symmetric collectionKey.
// It seals/opens every item key belonging to the collection and the
// collection's own type/meta content. A collection's key is never
// derived from its parent — it is generated randomly at creation time
// and distributed to members by sealing it under each member's
// AccountCryptoManager (direct share) or IdentityCryptoManager
// (invitation).
type CollectionCryptoManager struct {
	key []byte
}

// NewCollectionCryptoManager wraps collectionKey, the plaintext key
// recovered via AccountCryptoManager.OpenCollectionKey or
// IdentityCryptoManager.OpenInvitationKey.
func NewCollectionCryptoManager(collectionKey []byte) *CollectionCryptoManager {
	return &CollectionCryptoManager{key: collectionKey}
}

// Key returns the raw collection key, needed when re-sealing it for a
// new member or rewrapping an invitation.
func (c *CollectionCryptoManager) Key() []byte {
	return c.key
}

// SealItemKey seals a freshly generated item key so it can be stored as
// EncryptedCollectionItem.EncryptionKey.
func (c *CollectionCryptoManager) SealItemKey(itemKey []byte) ([]byte, error) {
	return crypto.Seal(c.key, itemKey, []byte(ADItemKey))
}

// OpenItemKey recovers an item's plaintext key from its sealed form.
func (c *CollectionCryptoManager) OpenItemKey(sealed []byte) ([]byte, error) {
	return crypto.Open(c.key, sealed, []byte(ADItemKey))
}

// EncryptCollectionType seals the collection's stype (e.g. "addressbook",
// "calendar") so that even its type is hidden from the server.
func (c *CollectionCryptoManager) EncryptCollectionType(stype string) ([]byte, error) {
	return crypto.Seal(c.key, []byte(stype), []byte(ADCollectionType))
}

// DecryptCollectionType reverses EncryptCollectionType.
func (c *CollectionCryptoManager) DecryptCollectionType(sealed []byte) (string, error) {
	plaintext, err := crypto.Open(c.key, sealed, []byte(ADCollectionType))
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
