package keymanager

import "github.com/vaultmesh/synccore/internal/crypto"

// CollectionItemCryptoManager wraps an item's symmetric itemKey. It
// seals/opens the item's per-revision meta and content chunks, and
// computes the keyed MAC used to derive a revision's uid and to verify
// it on load. Like a collection key, an item key is generated randomly
// at creation and never derived from the collection key — only sealed
// under it.
type CollectionItemCryptoManager struct {
	key []byte
}

// NewCollectionItemCryptoManager wraps itemKey, the plaintext key
// recovered via CollectionCryptoManager.OpenItemKey.
func NewCollectionItemCryptoManager(itemKey []byte) *CollectionItemCryptoManager {
	return &CollectionItemCryptoManager{key: itemKey}
}

// Key returns the raw item key, needed when rotating or re-sealing it.
func (i *CollectionItemCryptoManager) Key() []byte {
	return i.key
}

// SealMeta encrypts a revision's meta bytes (the msgpack-encoded name
// and mtime; the deletion flag lives on the revision itself).
func (i *CollectionItemCryptoManager) SealMeta(meta []byte) ([]byte, error) {
	return crypto.Seal(i.key, meta, []byte(ADItemMeta))
}

// OpenMeta decrypts a revision's sealed meta bytes.
func (i *CollectionItemCryptoManager) OpenMeta(sealed []byte) ([]byte, error) {
	return crypto.Open(i.key, sealed, []byte(ADItemMeta))
}

// SealChunk encrypts a single content chunk. Sealing is deterministic
// (convergent encryption, see crypto.SealDeterministic) rather than
// using a fresh random nonce: two revisions sharing an unchanged chunk
// must produce byte-identical ciphertext so ChunkUID, the MAC of that
// ciphertext, comes out identical too and the sync layer can recognize
// the chunk as already uploaded.
func (i *CollectionItemCryptoManager) SealChunk(chunk []byte) ([]byte, error) {
	return crypto.SealDeterministic(i.key, chunk, []byte(ADItemChunk))
}

// OpenChunk decrypts a single sealed content chunk.
func (i *CollectionItemCryptoManager) OpenChunk(sealed []byte) ([]byte, error) {
	return crypto.Open(i.key, sealed, []byte(ADItemChunk))
}

// RevisionDigest computes the keyed MAC over a revision's canonical
// representation (sealed meta ‖ ordered chunk uids ‖ deleted flag),
// used both as the revision's uid and, on load, to detect a revision
// whose sealed content, chunk list, or deletion state was swapped for
// another valid-looking but wrong revision of the same item.
func (i *CollectionItemCryptoManager) RevisionDigest(sealedMeta []byte, chunkUIDs [][]byte, deleted bool) ([]byte, error) {
	return crypto.MAC(i.key, revisionDigestInput(sealedMeta, chunkUIDs, deleted))
}

// VerifyRevisionDigest recomputes RevisionDigest and compares it to
// want, returning crypto.ErrIntegrity on mismatch.
func (i *CollectionItemCryptoManager) VerifyRevisionDigest(sealedMeta []byte, chunkUIDs [][]byte, deleted bool, want []byte) error {
	return crypto.VerifyMAC(i.key, revisionDigestInput(sealedMeta, chunkUIDs, deleted), want)
}

func revisionDigestInput(sealedMeta []byte, chunkUIDs [][]byte, deleted bool) []byte {
	data := make([]byte, 0, len(sealedMeta)+32*len(chunkUIDs)+1)
	data = append(data, sealedMeta...)
	for _, uid := range chunkUIDs {
		data = append(data, uid...)
	}
	if deleted {
		data = append(data, 0x01)
	} else {
		data = append(data, 0x00)
	}
	return data
}

// ChunkUID computes the content-addressed identifier of a sealed
// chunk, used to deduplicate chunks across revisions: the keyed MAC of
// the chunk's ciphertext under the item key. Because SealChunk is
// deterministic, the same plaintext always produces the same
// ciphertext and therefore the same ChunkUID.
func (i *CollectionItemCryptoManager) ChunkUID(sealedChunk []byte) ([]byte, error) {
	return crypto.MAC(i.key, sealedChunk)
}
