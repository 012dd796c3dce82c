package models

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// UIDGenerator produces client-side identifiers for entities that must
// exist (and be referenced by their own encrypted revisions) before the
// server has assigned them a canonical uid — currently
// EncryptedCollectionItem, whose uid is minted locally at create time,
// and SignedInvitation.
// EncryptedCollection.uid is always server-assigned and left empty
// until the first successful upload.
type UIDGenerator struct{}

// NewUIDGenerator constructs a UIDGenerator. It holds no state; the
// type exists so callers can inject a fake for deterministic tests.
func NewUIDGenerator() *UIDGenerator {
	return &UIDGenerator{}
}

// Generate returns a fresh time-ordered UUIDv7, base62-encoded to match
// the opaque uid alphabet the server uses for collection and invitation
// identifiers.
func (g *UIDGenerator) Generate() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("models: generate uid: %w", err)
	}
	return EncodeBase62(id[:]), nil
}

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EncodeBase62 encodes b as a base62 string using the alphabet above.
// Used for compact opaque uids; unlike base64 it needs no padding or
// URL-escaping and is safe to embed directly in path segments.
func EncodeBase62(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	n := new(big.Int).SetBytes(b)
	if n.Sign() == 0 {
		return string(base62Alphabet[0])
	}

	base := big.NewInt(62)
	mod := new(big.Int)
	var out []byte
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		out = append(out, base62Alphabet[mod.Int64()])
	}
	// reverse in place
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Marshal encodes v as MessagePack, the wire format the backend uses
// for every request and response body.
func Marshal(v any) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("models: marshal: %w", err)
	}
	return b, nil
}

// Unmarshal decodes MessagePack bytes into v.
func Unmarshal(b []byte, v any) error {
	if err := msgpack.Unmarshal(b, v); err != nil {
		return fmt.Errorf("models: unmarshal: %w", err)
	}
	return nil
}
