package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

func TestNewRevision_VerifyAndDecryptRoundTrip(t *testing.T) {
	item := keymanager.NewCollectionItemCryptoManager(make([]byte, 32))

	rev, err := NewRevision(item, Meta{Name: "notes.txt", Mtime: 1712345678}, []byte("hello world"), false)
	require.NoError(t, err)
	require.NoError(t, rev.Verify(item))

	meta, err := rev.DecryptMeta(item)
	require.NoError(t, err)
	require.Equal(t, "notes.txt", meta.Name)

	content, err := rev.DecryptContent(item)
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), content)
}

func TestRevision_EditingContentChangesUID(t *testing.T) {
	item := keymanager.NewCollectionItemCryptoManager(make([]byte, 32))

	rev1, err := NewRevision(item, Meta{Name: "a"}, []byte("v1"), false)
	require.NoError(t, err)

	rev2, err := NewRevision(item, Meta{Name: "a"}, []byte("v2"), false)
	require.NoError(t, err)

	require.NotEqual(t, rev1.UID, rev2.UID)
}

func TestRevision_VerifyDetectsSwappedChunks(t *testing.T) {
	itemA := keymanager.NewCollectionItemCryptoManager(make([]byte, 32))

	revA, err := NewRevision(itemA, Meta{Name: "a"}, []byte("alpha"), false)
	require.NoError(t, err)
	revB, err := NewRevision(itemA, Meta{Name: "a"}, []byte("beta"), false)
	require.NoError(t, err)

	tampered := revA
	tampered.Chunks = revB.Chunks

	require.Error(t, tampered.Verify(itemA))
}
