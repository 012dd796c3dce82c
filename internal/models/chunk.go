package models

import (
	"crypto/subtle"

	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

const (
	// chunkTargetSize is the average chunk size the rolling hash aims
	// for: a chunk boundary is declared once a window's hash has its
	// low bits zero with probability 1/chunkTargetSize.
	chunkTargetSize = 32 * 1024
	// chunkMaxSize caps a single chunk regardless of whether the
	// rolling hash found a boundary, bounding worst-case memory use
	// and guaranteeing termination on pathological input (e.g. a long
	// run of identical bytes).
	chunkMaxSize = 128 * 1024
	// chunkMinSize avoids degenerate tiny chunks near a forced split.
	chunkMinSize = 2 * 1024
	rollingWindow = 64
)

// mask is chosen so a boundary triggers once every chunkTargetSize
// bytes on average: P(hash&mask==0) = 1/(mask+1).
const rollingMask = chunkTargetSize - 1

// Chunk is one content-addressed, independently sealed slice of an
// item revision's plaintext content. Splitting is content-defined so
// that two revisions sharing a long unchanged run of bytes also share
// chunk boundaries, and therefore chunk uids, letting the sync layer
// skip re-uploading them.
type Chunk struct {
	UID       []byte // raw bytes; base62-encoded in chunk URL paths
	Plaintext []byte `msgpack:"-"`
	Sealed    []byte // populated by SealChunks, nil until sealed
}

// SplitContent splits plaintext into content-defined chunks using a
// Rabin-style rolling hash over a sliding window. A single payload
// smaller than chunkMinSize always produces exactly one chunk.
func SplitContent(plaintext []byte) [][]byte {
	if len(plaintext) <= chunkMinSize {
		if len(plaintext) == 0 {
			return nil
		}
		return [][]byte{plaintext}
	}

	var chunks [][]byte
	start := 0
	var hash uint64
	var window [rollingWindow]byte
	var wpos int

	for i := 0; i < len(plaintext); i++ {
		b := plaintext[i]
		old := window[wpos]
		window[wpos] = b
		wpos = (wpos + 1) % rollingWindow

		hash = hash*31 + uint64(b) - uint64(old)*rollingPow

		size := i - start + 1
		atBoundary := size >= chunkMinSize && hash&rollingMask == 0
		atMax := size >= chunkMaxSize
		if atBoundary || atMax {
			chunks = append(chunks, plaintext[start:i+1])
			start = i + 1
			hash = 0
			window = [rollingWindow]byte{}
			wpos = 0
		}
	}
	if start < len(plaintext) {
		chunks = append(chunks, plaintext[start:])
	}
	return chunks
}

// rollingPow is 31^rollingWindow mod 2^64, precomputed so the rolling
// hash can subtract the outgoing byte's contribution in O(1).
var rollingPow = pow31(rollingWindow)

func pow31(n int) uint64 {
	var r uint64 = 1
	for i := 0; i < n; i++ {
		r *= 31
	}
	return r
}

// SealChunks seals each plaintext chunk under item and computes its
// content-addressed uid, in order.
func SealChunks(item *keymanager.CollectionItemCryptoManager, plaintexts [][]byte) ([]Chunk, error) {
	chunks := make([]Chunk, 0, len(plaintexts))
	for _, pt := range plaintexts {
		sealed, err := item.SealChunk(pt)
		if err != nil {
			return nil, err
		}
		uid, err := item.ChunkUID(sealed)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, Chunk{UID: uid, Plaintext: pt, Sealed: sealed})
	}
	return chunks, nil
}

// OpenChunks decrypts and concatenates an ordered list of sealed chunks
// back into the revision's plaintext content, verifying that each
// chunk's sealed ciphertext hashes to its claimed uid before decrypting
// it.
func OpenChunks(item *keymanager.CollectionItemCryptoManager, chunks []Chunk) ([]byte, error) {
	var out []byte
	for _, c := range chunks {
		wantUID, err := item.ChunkUID(c.Sealed)
		if err != nil {
			return nil, err
		}
		if len(wantUID) != len(c.UID) || subtle.ConstantTimeCompare(wantUID, c.UID) != 1 {
			return nil, crypto.ErrIntegrity
		}
		pt, err := item.OpenChunk(c.Sealed)
		if err != nil {
			return nil, err
		}
		out = append(out, pt...)
	}
	return out, nil
}
