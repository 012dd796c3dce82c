// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"

	"github.com/vaultmesh/synccore/internal/backend"
	"github.com/vaultmesh/synccore/internal/errs"
	"github.com/vaultmesh/synccore/internal/models"
)

// ItemManager creates, fetches, lists, and uploads the items of one
// [Collection].
type ItemManager struct {
	collection *Collection
}

// Create builds a new item with a client-minted uid, its own key
// sealed under the collection, and an initial revision from meta and
// content. The item has no server etag until Batch or Transaction
// uploads it.
func (m *ItemManager) Create(ctx context.Context, meta Meta, content []byte) (*Item, error) {
	enc, itemMgr, err := models.NewItem(models.NewUIDGenerator(), m.collection.mgr, meta, content)
	if err != nil {
		return nil, err
	}
	return &Item{collection: m.collection, enc: enc, mgr: itemMgr}, nil
}

// Fetch retrieves one item by uid and verifies its current revision's
// integrity.
func (m *ItemManager) Fetch(ctx context.Context, uid string, opts FetchOptions) (*Item, error) {
	enc, err := m.collection.account.be.FetchItem(ctx, m.collection.enc.UID, uid, opts.toBackend())
	if err != nil {
		return nil, err
	}
	return m.wrap(enc)
}

// List pages through the collection's items.
func (m *ItemManager) List(ctx context.Context, opts ListOptions) (ItemPage, error) {
	resp, err := m.collection.account.be.ListItems(ctx, m.collection.enc.UID, opts.toBackend())
	if err != nil {
		return ItemPage{}, err
	}

	items := make([]*Item, 0, len(resp.Data))
	for _, enc := range resp.Data {
		it, err := m.wrap(enc)
		if err != nil {
			return ItemPage{}, err
		}
		items = append(items, it)
	}
	return ItemPage{Items: items, Stoken: resp.Stoken, Done: resp.Done, IteratorToken: resp.IteratorToken}, nil
}

// Batch atomically applies items' staged edits. Every chunk of each
// item's current revision that holds sealed bytes is pushed first — the server dedups
// chunk content by uid, so re-pushing an unchanged chunk costs a
// request but never corrupts state. Fails with [ErrConflict] (no item
// applied) if any item's etag has moved on server-side.
func (m *ItemManager) Batch(ctx context.Context, items []*Item, opts BatchOptions) error {
	if m.collection.enc.UID == "" {
		return errs.New(errs.Programming, "cannot batch into an unsaved collection, call CollectionManager.Upload first")
	}

	encs, err := m.prepareUpload(ctx, items)
	if err != nil {
		return err
	}

	req := backend.BatchRequest{Items: encs, Deps: toBackendDeps(opts.Deps)}
	if err := m.collection.account.be.Batch(ctx, m.collection.enc.UID, req); err != nil {
		return err
	}
	for _, it := range items {
		it.enc.MarkSaved()
	}
	return nil
}

// Transaction is Batch additionally gated on opts.Stoken, the
// caller's last-observed sync token for the collection's item
// listing.
func (m *ItemManager) Transaction(ctx context.Context, items []*Item, opts TransactionOptions) error {
	if m.collection.enc.UID == "" {
		return errs.New(errs.Programming, "cannot transact into an unsaved collection, call CollectionManager.Upload first")
	}

	encs, err := m.prepareUpload(ctx, items)
	if err != nil {
		return err
	}

	req := backend.BatchRequest{Items: encs, Stoken: opts.Stoken}
	if err := m.collection.account.be.Batch(ctx, m.collection.enc.UID, req); err != nil {
		return err
	}
	for _, it := range items {
		it.enc.MarkSaved()
	}
	return nil
}

// FetchUpdates reports which of items have advanced past their last
// known etag on the server.
func (m *ItemManager) FetchUpdates(ctx context.Context, items []*Item, opts ListOptions) (ItemPage, error) {
	deps := make([]backend.ItemDep, len(items))
	for i, it := range items {
		deps[i] = backend.ItemDep{UID: it.enc.UID, Etag: it.enc.LastEtag}
	}

	resp, err := m.collection.account.be.FetchUpdates(ctx, m.collection.enc.UID, backend.FetchUpdatesRequest{
		Items:  deps,
		Stoken: opts.Stoken,
	})
	if err != nil {
		return ItemPage{}, err
	}

	out := make([]*Item, 0, len(resp.Data))
	for _, enc := range resp.Data {
		it, err := m.wrap(enc)
		if err != nil {
			return ItemPage{}, err
		}
		out = append(out, it)
	}
	return ItemPage{Items: out, Stoken: resp.Stoken}, nil
}

// Revisions pages through item's revision history, newest first,
// returning each past state as a read-only pseudo-item sharing
// item's key.
func (m *ItemManager) Revisions(ctx context.Context, item *Item, opts ListOptions) (RevisionPage, error) {
	resp, err := m.collection.account.be.ItemRevisions(ctx, m.collection.enc.UID, item.enc.UID, opts.toBackend())
	if err != nil {
		return RevisionPage{}, err
	}

	revs := make([]*Item, 0, len(resp.Data))
	for _, rev := range resp.Data {
		enc := item.enc
		enc.Content = rev
		enc.Etag = rev.UID
		enc.LastEtag = rev.UID
		revs = append(revs, &Item{collection: m.collection, enc: enc})
	}
	return RevisionPage{Revisions: revs, Done: resp.Done, IteratorToken: resp.IteratorToken}, nil
}

// prepareUpload pushes every sealed chunk of items not already known
// to be a download placeholder, and returns their wire envelopes.
func (m *ItemManager) prepareUpload(ctx context.Context, items []*Item) ([]models.EncryptedCollectionItem, error) {
	encs := make([]models.EncryptedCollectionItem, len(items))
	for i, it := range items {
		for _, c := range it.enc.Content.Chunks {
			if len(c.Sealed) == 0 {
				continue
			}
			if err := m.collection.account.be.UploadChunk(ctx, m.collection.enc.UID, it.enc.UID, c.UID, c.Sealed); err != nil {
				return nil, err
			}
		}
		encs[i] = it.enc
	}
	return encs, nil
}

func (m *ItemManager) wrap(enc models.EncryptedCollectionItem) (*Item, error) {
	if err := enc.Verify(m.collection.mgr); err != nil {
		return nil, err
	}
	return &Item{collection: m.collection, enc: enc}, nil
}
