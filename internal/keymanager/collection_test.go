package keymanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectionCryptoManager_ItemKeyRoundTrip(t *testing.T) {
	collectionKey := make([]byte, 32)
	collectionKey[1] = 9
	c := NewCollectionCryptoManager(collectionKey)

	itemKey := make([]byte, 32)
	itemKey[2] = 3

	sealed, err := c.SealItemKey(itemKey)
	require.NoError(t, err)

	opened, err := c.OpenItemKey(sealed)
	require.NoError(t, err)
	require.Equal(t, itemKey, opened)
}

func TestCollectionCryptoManager_TypeRoundTrip(t *testing.T) {
	c := NewCollectionCryptoManager(make([]byte, 32))

	sealed, err := c.EncryptCollectionType("addressbook")
	require.NoError(t, err)

	stype, err := c.DecryptCollectionType(sealed)
	require.NoError(t, err)
	require.Equal(t, "addressbook", stype)
}
