package keymanager

import "github.com/vaultmesh/synccore/internal/crypto"

// AccountCryptoManager wraps an account's symmetric accountKey. Every
// collection the account owns directly has its collectionKey sealed
// under this manager; collections shared via invitation instead have
// their key re-sealed under the account's AccountCryptoManager only
// after the invitation is accepted (see the invitation flow).
type AccountCryptoManager struct {
	key []byte
}

// NewAccountCryptoManager wraps accountKey, the 32-byte symmetric key
// recovered by decrypting the account's encryptedContent with the
// MainCryptoManager.
func NewAccountCryptoManager(accountKey []byte) *AccountCryptoManager {
	return &AccountCryptoManager{key: accountKey}
}

// SealCollectionKey seals a freshly generated collection key so it can
// be stored as EncryptedCollection.collectionKey.
func (a *AccountCryptoManager) SealCollectionKey(collectionKey []byte) ([]byte, error) {
	return crypto.Seal(a.key, collectionKey, []byte(ADCollectionKey))
}

// OpenCollectionKey recovers a collection's plaintext key from its
// sealed form. Returns crypto.ErrIntegrity if the account key cannot
// open it (wrong account, or a corrupted/foreign blob).
func (a *AccountCryptoManager) OpenCollectionKey(sealed []byte) ([]byte, error) {
	return crypto.Open(a.key, sealed, []byte(ADCollectionKey))
}
