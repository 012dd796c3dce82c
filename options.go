// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"github.com/vaultmesh/synccore/internal/backend"
	"github.com/vaultmesh/synccore/internal/models"
)

// AccessLevel is a member's permission on a shared collection.
type AccessLevel string

const (
	AccessAdmin     AccessLevel = AccessLevel(models.AccessAdmin)
	AccessReadWrite AccessLevel = AccessLevel(models.AccessReadWrite)
	AccessReadOnly  AccessLevel = AccessLevel(models.AccessReadOnly)
)

func (l AccessLevel) toModels() models.AccessLevel { return models.AccessLevel(l) }

func accessLevelFromModels(l models.AccessLevel) AccessLevel { return AccessLevel(l) }

// SyncState classifies a collection or item's local state relative to
// the server: New (never uploaded), Clean (matches the server), or
// Dirty (a local edit is pending upload).
type SyncState int

const (
	StateNew SyncState = SyncState(models.StateNew)
	StateClean SyncState = SyncState(models.StateClean)
	StateDirty SyncState = SyncState(models.StateDirty)
)

func (s SyncState) String() string { return models.SyncState(s).String() }

func syncStateFromModels(s models.SyncState) SyncState { return SyncState(s) }

// Meta is the per-revision metadata an application attaches to a
// collection or item: a display name and a modification time.
type Meta = models.Meta

// Invitation is a pending offer of collection access from one account
// to another.
type Invitation = models.SignedInvitation

// Member is one account's access record on a shared collection.
type Member = backend.Member

// CollectionPage is one page of [CollectionManager.List].
type CollectionPage struct {
	Collections   []*Collection
	Stoken        string
	IteratorToken string
	Done          bool
}

// ItemPage is one page of [ItemManager.List] or [ItemManager.FetchUpdates].
type ItemPage struct {
	Items         []*Item
	Stoken        string
	IteratorToken string
	Done          bool
}

// RevisionPage is one page of [ItemManager.Revisions]: past states of
// a single item, newest first.
type RevisionPage struct {
	Revisions     []*Item
	IteratorToken string
	Done          bool
}

// InvitationPage is one page of [InvitationManager.ListIncoming] or
// [InvitationManager.ListOutgoing].
type InvitationPage struct {
	Invitations   []Invitation
	IteratorToken string
}

// MemberPage is one page of [MemberManager.List].
type MemberPage struct {
	Members       []Member
	IteratorToken string
}

// Prefetch controls whether a fetch or list response streams chunk
// content inline (PrefetchMedium) or returns placeholders the caller
// downloads on demand (PrefetchAuto).
type Prefetch string

const (
	PrefetchAuto   Prefetch = Prefetch(backend.PrefetchAuto)
	PrefetchMedium Prefetch = Prefetch(backend.PrefetchMedium)
)

// FetchOptions controls a single-entity fetch (FetchCollection,
// FetchItem).
type FetchOptions struct {
	WithCollection bool
	Prefetch       Prefetch
}

// ListOptions controls pagination over a collection/item/invitation
// listing.
type ListOptions struct {
	// Stoken, when set, asks the server to diff against this sync
	// token instead of returning a full listing.
	Stoken string

	// IteratorToken resumes a listing from a previous page.
	IteratorToken string

	// Limit bounds the page size. Zero uses the server's default.
	Limit int

	WithCollection bool
	Prefetch       Prefetch
}

func (o ListOptions) toBackend() backend.ListOptions {
	return backend.ListOptions{
		Stoken:         o.Stoken,
		IteratorToken:  o.IteratorToken,
		Limit:          o.Limit,
		WithCollection: o.WithCollection,
		Prefetch:       backend.Prefetch(o.Prefetch),
	}
}

func (o FetchOptions) toBackend() backend.ListOptions {
	return backend.ListOptions{
		WithCollection: o.WithCollection,
		Prefetch:       backend.Prefetch(o.Prefetch),
	}
}

// UploadOptions controls a collection or item upload.
type UploadOptions struct{}

// TransactionOptions controls a collection or item transaction: an
// upload additionally gated on the collection's stoken not having
// advanced.
type TransactionOptions struct {
	// Stoken is the collection sync token the caller last observed.
	Stoken string
}

// BatchOptions controls a multi-item batch upload.
type BatchOptions struct {
	// Deps names additional items whose (uid, lastEtag) must still
	// match the server for the batch to apply, without those items
	// themselves being part of the batch.
	Deps []ItemDependency
}

// ItemDependency names a gate for Batch/Transaction: the server
// applies the call only if uid's current etag still equals etag.
type ItemDependency struct {
	UID  string
	Etag []byte
}

func (d ItemDependency) toBackend() backend.ItemDep {
	return backend.ItemDep{UID: d.UID, Etag: d.Etag}
}

func toBackendDeps(deps []ItemDependency) []backend.ItemDep {
	if len(deps) == 0 {
		return nil
	}
	out := make([]backend.ItemDep, len(deps))
	for i, d := range deps {
		out[i] = d.toBackend()
	}
	return out
}
