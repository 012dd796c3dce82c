// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func signedUpAccount(t *testing.T, be *fakeBackend, username, password string) *Account {
	t.Helper()
	acct := newTestAccount(be)
	require.NoError(t, acct.Signup(context.Background(), username, password))
	return acct
}

// TestCollectionAndItem_CreateUploadFetch covers the golden path: create a
// collection, create an item inside it, upload both, then fetch them back
// through a second in-memory handle and confirm content round-trips.
func TestCollectionAndItem_CreateUploadFetch(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "addressbook", Meta{Name: "Contacts"}, []byte("a family of contacts"))
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))
	require.NotEmpty(t, col.UID())

	item, err := col.Items().Create(ctx, Meta{Name: "bob.vcf"}, []byte("BEGIN:VCARD\nFN:Bob\nEND:VCARD"))
	require.NoError(t, err)
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))
	require.NotEmpty(t, item.UID())

	fetchedCol, err := acct.Collections().Fetch(ctx, col.UID(), FetchOptions{})
	require.NoError(t, err)
	content, err := fetchedCol.Content(ctx)
	require.NoError(t, err)
	require.Equal(t, "a family of contacts", string(content))

	fetchedItem, err := fetchedCol.Items().Fetch(ctx, item.UID(), FetchOptions{})
	require.NoError(t, err)
	itemContent, err := fetchedItem.Content(ctx)
	require.NoError(t, err)
	require.Equal(t, "BEGIN:VCARD\nFN:Bob\nEND:VCARD", string(itemContent))
}

// TestItem_BatchConflict_StaleEtagRejected covers the optimistic-concurrency
// invariant: two handles racing to upload edits to the same item, the
// second based on a stale etag, must fail with ErrConflict and leave the
// first editor's write intact.
func TestItem_BatchConflict_StaleEtagRejected(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "notes", Meta{Name: "Notes"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	item, err := col.Items().Create(ctx, Meta{Name: "todo.txt"}, []byte("buy milk"))
	require.NoError(t, err)
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	// Two independent handles on the same uploaded item, both believing
	// the same (now stale-once-one-writes) LastEtag is current.
	fetchedA, err := col.Items().Fetch(ctx, item.UID(), FetchOptions{})
	require.NoError(t, err)
	fetchedB, err := col.Items().Fetch(ctx, item.UID(), FetchOptions{})
	require.NoError(t, err)

	require.NoError(t, fetchedA.SetMeta(Meta{Name: "todo-v2.txt"}))
	require.NoError(t, col.Items().Batch(ctx, []*Item{fetchedA}, BatchOptions{}))

	require.NoError(t, fetchedB.SetMeta(Meta{Name: "todo-conflicting.txt"}))
	err = col.Items().Batch(ctx, []*Item{fetchedB}, BatchOptions{})
	require.ErrorIs(t, err, ErrConflict)

	winner, err := col.Items().Fetch(ctx, item.UID(), FetchOptions{})
	require.NoError(t, err)
	meta, err := winner.Meta()
	require.NoError(t, err)
	require.Equal(t, "todo-v2.txt", meta.Name)
}

// TestCollectionManager_UploadConflict_StaleEtagRejected covers the same
// gate at the collection level.
func TestCollectionManager_UploadConflict_StaleEtagRejected(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "notes", Meta{Name: "Notes"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	staleA, err := acct.Collections().Fetch(ctx, col.UID(), FetchOptions{})
	require.NoError(t, err)
	staleB, err := acct.Collections().Fetch(ctx, col.UID(), FetchOptions{})
	require.NoError(t, err)

	require.NoError(t, staleA.SetMeta(Meta{Name: "Renamed once"}))
	require.NoError(t, acct.Collections().Upload(ctx, staleA, UploadOptions{}))

	require.NoError(t, staleB.SetMeta(Meta{Name: "Renamed again, conflicting"}))
	err = acct.Collections().Upload(ctx, staleB, UploadOptions{})
	require.ErrorIs(t, err, ErrConflict)
}

// TestItemManager_Revisions_HistoryIsNewestFirst covers the revision-history
// surface: every SetContent/SetMeta followed by a successful Batch should
// leave a recoverable past state.
func TestItemManager_Revisions_HistoryIsNewestFirst(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "notes", Meta{Name: "Notes"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	item, err := col.Items().Create(ctx, Meta{Name: "log.txt"}, []byte("v1"))
	require.NoError(t, err)
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	require.NoError(t, item.SetContent([]byte("v2")))
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	require.NoError(t, item.SetContent([]byte("v3")))
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	page, err := col.Items().Revisions(ctx, item, ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Revisions, 3)

	contents := make([]string, len(page.Revisions))
	for i, rev := range page.Revisions {
		b, err := rev.Content(ctx)
		require.NoError(t, err)
		contents[i] = string(b)
	}
	require.Equal(t, []string{"v3", "v2", "v1"}, contents)
}

// TestItem_Delete_MarksTombstoneAndSurvivesRoundTrip covers deletion: a
// deleted item still uploads and is reported deleted on fetch, but its
// content is empty.
func TestItem_Delete_MarksTombstoneAndSurvivesRoundTrip(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "notes", Meta{Name: "Notes"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	item, err := col.Items().Create(ctx, Meta{Name: "ephemeral.txt"}, []byte("gone soon"))
	require.NoError(t, err)
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	require.NoError(t, item.Delete())
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	fetched, err := col.Items().Fetch(ctx, item.UID(), FetchOptions{})
	require.NoError(t, err)
	require.True(t, fetched.Deleted())
}

// TestItemManager_FetchUpdates_ReportsOnlyChangedItems covers the
// fetchUpdates diff surface used to avoid re-downloading unchanged items.
func TestItemManager_FetchUpdates_ReportsOnlyChangedItems(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "notes", Meta{Name: "Notes"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	itemA, err := col.Items().Create(ctx, Meta{Name: "a.txt"}, []byte("a"))
	require.NoError(t, err)
	itemB, err := col.Items().Create(ctx, Meta{Name: "b.txt"}, []byte("b"))
	require.NoError(t, err)
	require.NoError(t, col.Items().Batch(ctx, []*Item{itemA, itemB}, BatchOptions{}))

	knownA, err := col.Items().Fetch(ctx, itemA.UID(), FetchOptions{})
	require.NoError(t, err)
	knownB, err := col.Items().Fetch(ctx, itemB.UID(), FetchOptions{})
	require.NoError(t, err)

	require.NoError(t, itemA.SetContent([]byte("a-edited")))
	require.NoError(t, col.Items().Batch(ctx, []*Item{itemA}, BatchOptions{}))

	page, err := col.Items().FetchUpdates(ctx, []*Item{knownA, knownB}, ListOptions{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, itemA.UID(), page.Items[0].UID())
}

// TestItem_TamperedChunk_FailsIntegrity covers the tamper-detection
// invariant: a chunk corrupted between upload and download must fail
// decryption rather than silently return wrong bytes.
func TestItem_TamperedChunk_FailsIntegrity(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := signedUpAccount(t, be, "alice", "correct horse battery staple")

	col, err := acct.Collections().Create(ctx, "notes", Meta{Name: "Notes"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	big := make([]byte, 200*1024)
	for i := range big {
		big[i] = byte(i)
	}
	item, err := col.Items().Create(ctx, Meta{Name: "blob.bin"}, big)
	require.NoError(t, err)
	require.NoError(t, col.Items().Batch(ctx, []*Item{item}, BatchOptions{}))

	for k := range be.chunks {
		be.chunks[k][0] ^= 0xff
		break
	}

	fetched, err := col.Items().Fetch(ctx, item.UID(), FetchOptions{})
	require.NoError(t, err)
	_, err = fetched.Content(ctx)
	require.Error(t, err)
}

// TestInvitation_InviteAccept_RecipientGainsCollectionAccess covers
// sharing: alice invites bob, bob verifies the sender and accepts, and can
// then read the collection's content with his own account key.
func TestInvitation_InviteAccept_RecipientGainsCollectionAccess(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	alice := signedUpAccount(t, be, "alice", "alice password")

	col, err := alice.Collections().Create(ctx, "addressbook", Meta{Name: "Shared Contacts"}, []byte("shared content"))
	require.NoError(t, err)
	require.NoError(t, alice.Collections().Upload(ctx, col, UploadOptions{}))

	be.SetToken("token-alice")
	bob := signedUpAccount(t, be, "bob", "bob password")

	bobProfile, err := be.FetchUserProfile(ctx, "bob")
	require.NoError(t, err)

	be.SetToken("token-alice")
	require.NoError(t, alice.Invitations().Invite(ctx, col, "bob", bobProfile.IdentityPubkey, AccessReadWrite))

	be.SetToken("token-bob")
	incoming, err := bob.Invitations().ListIncoming(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, incoming.Invitations, 1)

	require.NoError(t, bob.Invitations().Accept(ctx, incoming.Invitations[0]))

	page, err := bob.Collections().List(ctx, ListOptions{})
	require.NoError(t, err)
	var shared *Collection
	for _, c := range page.Collections {
		if c.UID() == col.UID() {
			shared = c
		}
	}
	require.NotNil(t, shared, "bob's collection listing must include the collection alice shared with him")

	aliceMeta, err := col.Meta()
	require.NoError(t, err)
	bobMeta, err := shared.Meta()
	require.NoError(t, err)
	require.Equal(t, aliceMeta, bobMeta)

	aliceContent, err := col.Content(ctx)
	require.NoError(t, err)
	bobContent, err := shared.Content(ctx)
	require.NoError(t, err)
	require.Equal(t, aliceContent, bobContent)
}

// TestInvitation_Invite_RecipientPubkeyMismatchFailsProgramming covers the
// guard against a server substituting a different recipient identity than
// the caller independently verified out of band.
func TestInvitation_Invite_RecipientPubkeyMismatchFailsProgramming(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	alice := signedUpAccount(t, be, "alice", "alice password")

	col, err := alice.Collections().Create(ctx, "addressbook", Meta{Name: "Contacts"}, nil)
	require.NoError(t, err)
	require.NoError(t, alice.Collections().Upload(ctx, col, UploadOptions{}))

	be.SetToken("token-alice")
	_ = signedUpAccount(t, be, "bob", "bob password")

	be.SetToken("token-alice")
	err = alice.Invitations().Invite(ctx, col, "bob", []byte("not bobs real pubkey, wrong length too"), AccessReadOnly)
	require.ErrorIs(t, err, ErrProgramming)
}
