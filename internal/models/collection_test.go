package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

func newTestAccountMgr(t *testing.T) *keymanager.AccountCryptoManager {
	t.Helper()
	key, err := crypto.RandomBytes(32)
	require.NoError(t, err)
	return keymanager.NewAccountCryptoManager(key)
}

func TestNewCollection_GetCryptoManagerRoundTrip(t *testing.T) {
	accountMgr := newTestAccountMgr(t)
	gen := NewUIDGenerator()

	col, colMgr, err := NewCollection(gen, accountMgr, "addressbook", Meta{Name: "Contacts"}, []byte("content"))
	require.NoError(t, err)
	require.Equal(t, AccessAdmin, col.AccessLevel)
	require.Equal(t, StateNew, col.State())

	reMgr, err := col.GetCryptoManager(accountMgr)
	require.NoError(t, err)
	require.Equal(t, colMgr.Key(), reMgr.Key())

	stype, err := col.DecryptType(colMgr)
	require.NoError(t, err)
	require.Equal(t, "addressbook", stype)
}

func TestCollection_VerifyDetectsTamperedItem(t *testing.T) {
	accountMgr := newTestAccountMgr(t)
	gen := NewUIDGenerator()

	col, colMgr, err := NewCollection(gen, accountMgr, "calendar", Meta{Name: "Events"}, []byte("content"))
	require.NoError(t, err)

	col.Item.Content.Meta[0] ^= 0xFF
	require.Error(t, col.Verify(colMgr))
}

func TestCollection_GetCryptoManagerFailsForWrongAccount(t *testing.T) {
	accountMgr1 := newTestAccountMgr(t)
	accountMgr2 := newTestAccountMgr(t)
	gen := NewUIDGenerator()

	col, _, err := NewCollection(gen, accountMgr1, "addressbook", Meta{Name: "Contacts"}, []byte("content"))
	require.NoError(t, err)

	_, err = col.GetCryptoManager(accountMgr2)
	require.Error(t, err)
}
