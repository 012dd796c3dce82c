package models

import (
	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

// Meta carries the per-revision metadata the application attaches to
// an item: a display name and a modification timestamp. The deletion
// flag lives on the revision itself, not here, since a deleted
// revision still needs meta for tombstone display.
type Meta struct {
	Name  string `msgpack:"name"`
	Mtime int64  `msgpack:"mtime"`
}

// EncryptedRevision is one immutable state of an item's content: sealed
// meta, an ordered list of content-addressed chunks, and a uid that is
// simultaneously this revision's identity and its integrity tag (the
// item's etag while this revision is current).
type EncryptedRevision struct {
	UID     []byte  `msgpack:"uid"`
	Meta    []byte  `msgpack:"meta"`
	Chunks  []Chunk `msgpack:"chunks"`
	Deleted bool    `msgpack:"deleted"`
}

// NewRevision seals meta and splits+seals content into chunks under
// item, then computes the revision's uid as the keyed digest over the
// sealed meta and the ordered chunk uids. Reusing chunks from a prior
// revision (by passing its already-sealed Chunk values for the spans
// that did not change) is the caller's responsibility; this
// constructor always re-chunks and re-seals its plaintext input.
func NewRevision(item *keymanager.CollectionItemCryptoManager, meta Meta, content []byte, deleted bool) (EncryptedRevision, error) {
	metaBytes, err := Marshal(meta)
	if err != nil {
		return EncryptedRevision{}, err
	}
	sealedMeta, err := item.SealMeta(metaBytes)
	if err != nil {
		return EncryptedRevision{}, err
	}

	plainChunks := SplitContent(content)
	chunks, err := SealChunks(item, plainChunks)
	if err != nil {
		return EncryptedRevision{}, err
	}

	uids := chunkUIDs(chunks)
	uid, err := item.RevisionDigest(sealedMeta, uids, deleted)
	if err != nil {
		return EncryptedRevision{}, err
	}

	return EncryptedRevision{UID: uid, Meta: sealedMeta, Chunks: chunks, Deleted: deleted}, nil
}

// Verify recomputes this revision's uid from its sealed meta and chunk
// uids and compares it against UID, then opens meta to confirm it
// decrypts under item. Returns crypto.ErrIntegrity on any mismatch.
func (r EncryptedRevision) Verify(item *keymanager.CollectionItemCryptoManager) error {
	if err := item.VerifyRevisionDigest(r.Meta, chunkUIDs(r.Chunks), r.Deleted, r.UID); err != nil {
		return err
	}
	if _, err := item.OpenMeta(r.Meta); err != nil {
		return err
	}
	return nil
}

// DecryptMeta opens the revision's sealed meta bytes.
func (r EncryptedRevision) DecryptMeta(item *keymanager.CollectionItemCryptoManager) (Meta, error) {
	raw, err := item.OpenMeta(r.Meta)
	if err != nil {
		return Meta{}, err
	}
	var m Meta
	if err := Unmarshal(raw, &m); err != nil {
		return Meta{}, crypto.ErrIntegrity
	}
	return m, nil
}

// DecryptContent opens and concatenates the revision's chunks.
func (r EncryptedRevision) DecryptContent(item *keymanager.CollectionItemCryptoManager) ([]byte, error) {
	return OpenChunks(item, r.Chunks)
}

func chunkUIDs(chunks []Chunk) [][]byte {
	uids := make([][]byte, len(chunks))
	for i, c := range chunks {
		uids[i] = c.UID
	}
	return uids
}
