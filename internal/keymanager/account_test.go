package keymanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountCryptoManager_CollectionKeyRoundTrip(t *testing.T) {
	accountKey := make([]byte, 32)
	for i := range accountKey {
		accountKey[i] = byte(i + 7)
	}
	a := NewAccountCryptoManager(accountKey)

	collectionKey := make([]byte, 32)
	collectionKey[0] = 0xAB

	sealed, err := a.SealCollectionKey(collectionKey)
	require.NoError(t, err)

	opened, err := a.OpenCollectionKey(sealed)
	require.NoError(t, err)
	require.Equal(t, collectionKey, opened)
}

func TestAccountCryptoManager_CrossAccountFails(t *testing.T) {
	a1 := NewAccountCryptoManager(make([]byte, 32))
	key2 := make([]byte, 32)
	key2[0] = 1
	a2 := NewAccountCryptoManager(key2)

	collectionKey := make([]byte, 32)
	collectionKey[0] = 0xCD

	sealed, err := a1.SealCollectionKey(collectionKey)
	require.NoError(t, err)

	_, err = a2.OpenCollectionKey(sealed)
	require.Error(t, err)
}
