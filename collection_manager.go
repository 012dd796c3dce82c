// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"

	"github.com/vaultmesh/synccore/internal/errs"
	"github.com/vaultmesh/synccore/internal/models"
)

// CollectionManager creates, fetches, lists, and uploads the
// collections owned by or shared with an [Account].
type CollectionManager struct {
	account *Account
}

// Create builds a new collection of application-defined type stype
// with the given sentinel meta/content, and a fresh key sealed under
// the account. The collection has no server uid until Upload
// succeeds.
func (m *CollectionManager) Create(ctx context.Context, stype string, meta Meta, content []byte) (*Collection, error) {
	accountMgr, err := m.account.accountCryptoManager()
	if err != nil {
		return nil, err
	}
	enc, colMgr, err := models.NewCollection(models.NewUIDGenerator(), accountMgr, stype, meta, content)
	if err != nil {
		return nil, err
	}
	return &Collection{account: m.account, enc: enc, mgr: colMgr}, nil
}

// Fetch retrieves a collection by uid, decrypts its key, and verifies
// its sentinel item's integrity. Fails with [ErrNotFound] if the
// collection does not exist or access was revoked.
func (m *CollectionManager) Fetch(ctx context.Context, uid string, opts FetchOptions) (*Collection, error) {
	enc, err := m.account.be.FetchCollection(ctx, uid, opts.toBackend())
	if err != nil {
		return nil, err
	}
	return m.wrap(enc)
}

// List pages through the account's collections.
func (m *CollectionManager) List(ctx context.Context, opts ListOptions) (CollectionPage, error) {
	resp, err := m.account.be.ListCollections(ctx, opts.toBackend())
	if err != nil {
		return CollectionPage{}, err
	}

	cols := make([]*Collection, 0, len(resp.Data))
	for _, enc := range resp.Data {
		col, err := m.wrap(enc)
		if err != nil {
			return CollectionPage{}, err
		}
		cols = append(cols, col)
	}
	return CollectionPage{
		Collections:   cols,
		Stoken:        resp.Stoken,
		Done:          resp.Done,
		IteratorToken: resp.IteratorToken,
	}, nil
}

// Upload creates or updates col on the server: a create when col has
// no uid yet, otherwise an update gated on col's last known etag.
// Fails with [ErrConflict] if the server's copy has moved on.
func (m *CollectionManager) Upload(ctx context.Context, col *Collection, opts UploadOptions) error {
	if col.enc.UID == "" {
		uid, err := m.account.be.CreateCollection(ctx, col.enc)
		if err != nil {
			return err
		}
		col.enc.UID = uid
		col.enc.MarkSaved()
		return nil
	}

	if err := m.account.be.UpdateCollection(ctx, col.enc.UID, col.enc, col.enc.Item.LastEtag); err != nil {
		return err
	}
	col.enc.MarkSaved()
	return nil
}

// Transaction is Upload additionally gated on opts.Stoken: the
// caller's last-observed sync token for the account's collection
// listing. Fails with [ErrConflict] if the token has advanced.
func (m *CollectionManager) Transaction(ctx context.Context, col *Collection, opts TransactionOptions) error {
	if col.enc.UID == "" {
		return errs.New(errs.Programming, "cannot transact an unsaved collection, call Upload first")
	}
	if err := m.account.be.Transaction(ctx, col.enc.UID, col.enc, col.enc.Item.LastEtag, opts.Stoken); err != nil {
		return err
	}
	col.enc.MarkSaved()
	return nil
}

func (m *CollectionManager) wrap(enc models.EncryptedCollection) (*Collection, error) {
	accountMgr, err := m.account.accountCryptoManager()
	if err != nil {
		return nil, err
	}
	colMgr, err := enc.GetCryptoManager(accountMgr)
	if err != nil {
		return nil, err
	}
	if err := enc.Verify(colMgr); err != nil {
		return nil, err
	}
	return &Collection{account: m.account, enc: enc, mgr: colMgr}, nil
}
