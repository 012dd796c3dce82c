package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"github.com/vaultmesh/synccore/internal/errs"
)

// KeySize is the length in bytes of every symmetric key used by the
// sync engine: the main key, account key, collection key, and item key.
const KeySize = 32

// ErrIntegrity is returned whenever an AEAD tag, a keyed MAC, or a
// signature fails to verify. Callers must treat it as non-retryable:
// the ciphertext or its associated data has been tampered with, or the
// wrong key was used. It is the errs.Integrity sentinel, so it matches
// the root package's ErrIntegrity under errors.Is.
var ErrIntegrity error = errs.Integrity

// Argon2Params fixes the Argon2id tuning for a given scheme version.
// Version 1 is pinned to the parameters below so that independently
// written clients derive byte-identical keys from the same password and
// salt.
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params returns the scheme-version-1 Argon2id parameters.
// These approximate libsodium's "moderate" preset, which the wire
// protocol requires for server-side compatibility.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Time: 2, Memory: 64 * 1024, Threads: 4}
}

// RandomBytes reads n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// Seal encrypts plaintext under key using ChaCha20-Poly1305 (IETF
// variant) with a freshly generated random nonce and ad as associated
// data. The returned blob is nonce ‖ ciphertext ‖ tag, safe to store or
// transmit as an opaque value. The associated data is authenticated but
// not included in the returned blob — callers must supply the same ad
// to Open.
func Seal(key, plaintext, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}

	nonce, err := RandomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, ad), nil
}

// SealDeterministic behaves like Seal but derives its nonce from a
// keyed MAC of ad and plaintext instead of drawing fresh randomness,
// so sealing the same plaintext under the same key and ad always
// produces the same blob. This is convergent encryption: it trades
// away the usual guarantee that sealing the same thing twice yields
// unlinkable ciphertexts, in exchange for a ciphertext that can itself
// serve as a stable content-derived identifier. Only chunk sealing
// needs that trade; every other caller uses Seal.
func SealDeterministic(key, plaintext, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}

	seed := make([]byte, 0, len(ad)+len(plaintext))
	seed = append(seed, ad...)
	seed = append(seed, plaintext...)
	mac, err := MAC(key, seed)
	if err != nil {
		return nil, err
	}
	nonce := mac[:aead.NonceSize()]

	return aead.Seal(nonce, nonce, plaintext, ad), nil
}

// Open decrypts a blob produced by Seal under key and ad, and returns
// the plaintext. Returns ErrIntegrity if the blob is too short to
// contain a nonce, or if the AEAD tag fails to verify (wrong key,
// wrong ad, or a tampered blob).
func Open(key, blob, ad []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}

	if len(blob) < aead.NonceSize() {
		return nil, ErrIntegrity
	}
	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, ErrIntegrity
	}
	return plaintext, nil
}

// MAC computes a keyed BLAKE2b-256 digest of data under key. key may be
// any length accepted by blake2b.New256 (up to 64 bytes); in this
// module keys are always 32 bytes.
func MAC(key, data []byte) ([]byte, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return nil, fmt.Errorf("crypto: build mac: %w", err)
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// VerifyMAC recomputes MAC(key, data) and compares it to want in
// constant time. Returns ErrIntegrity on mismatch.
func VerifyMAC(key, data, want []byte) error {
	got, err := MAC(key, data)
	if err != nil {
		return err
	}
	if len(got) != len(want) {
		return ErrIntegrity
	}
	var diff byte
	for i := range got {
		diff |= got[i] ^ want[i]
	}
	if diff != 0 {
		return ErrIntegrity
	}
	return nil
}

// DeriveSubkey derives a child key from parentKey scoped to an 8-byte
// context tag, using parentKey as the BLAKE2b MAC key over the context
// tag. Each CryptoManager in the hierarchy uses this to turn its own
// key into its children's keys without ever transmitting them.
func DeriveSubkey(parentKey []byte, context [8]byte) ([]byte, error) {
	return MAC(parentKey, context[:])
}

// DeriveMainKey runs Argon2id over password and salt with params,
// producing the 32-byte main key. Deterministic: the same password,
// salt, and params always yield the same key.
func DeriveMainKey(password string, salt []byte, params Argon2Params) []byte {
	return argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, KeySize)
}

// Sign produces an Ed25519 signature over message using the signing
// private key signKey.
func Sign(signKey ed25519.PrivateKey, message []byte) []byte {
	return ed25519.Sign(signKey, message)
}

// Verify checks an Ed25519 signature over message against the signer's
// public key. Returns ErrIntegrity if the signature does not verify.
func Verify(signPub ed25519.PublicKey, message, signature []byte) error {
	if !ed25519.Verify(signPub, message, signature) {
		return ErrIntegrity
	}
	return nil
}

// boxInfo is the HKDF info string domain-separating the box construction
// from any other use of the same shared secret.
var boxInfo = []byte("synccore-box-v1")

// BoxSealSigned seals plaintext for recipientPub (an X25519 public key)
// using an ephemeral X25519 keypair plus ChaCha20-Poly1305, then signs
// the ephemeral public key and ciphertext with the sender's Ed25519
// signing key senderSignKey. The returned blob is:
//
//	ephemeralPub(32) ‖ nonce(12) ‖ ciphertext+tag ‖ signature(64)
//
// The receiver authenticates the sender via senderSignPub (the
// corresponding Ed25519 public key, distributed out of band as part of
// the sender's identity) and decrypts via its own X25519 private key.
func BoxSealSigned(senderSignKey ed25519.PrivateKey, recipientPub [32]byte, plaintext []byte) ([]byte, error) {
	var ephPriv [32]byte
	if _, err := io.ReadFull(rand.Reader, ephPriv[:]); err != nil {
		return nil, fmt.Errorf("crypto: generate ephemeral key: %w", err)
	}
	ephPub, err := curve25519.X25519(ephPriv[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("crypto: derive ephemeral pubkey: %w", err)
	}

	shared, err := curve25519.X25519(ephPriv[:], recipientPub[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: ecdh: %w", err)
	}
	boxKey, err := hkdfKey(shared)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(boxKey)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}
	nonce, err := RandomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}
	ciphertext := aead.Seal(nil, nonce, plaintext, nil)

	signed := make([]byte, 0, len(ephPub)+len(nonce)+len(ciphertext))
	signed = append(signed, ephPub...)
	signed = append(signed, nonce...)
	signed = append(signed, ciphertext...)

	sig := ed25519.Sign(senderSignKey, signed)
	return append(signed, sig...), nil
}

// BoxOpenSigned opens a blob produced by BoxSealSigned, verifying the
// sender's signature with senderSignPub and decrypting with the
// receiver's X25519 private key recipientPriv. Returns ErrIntegrity if
// the signature does not verify or the AEAD tag fails.
func BoxOpenSigned(senderSignPub ed25519.PublicKey, recipientPriv [32]byte, blob []byte) ([]byte, error) {
	const ephLen, nonceLen, sigLen = 32, 12, ed25519.SignatureSize
	if len(blob) < ephLen+nonceLen+sigLen {
		return nil, ErrIntegrity
	}

	signed := blob[:len(blob)-sigLen]
	sig := blob[len(blob)-sigLen:]
	if !ed25519.Verify(senderSignPub, signed, sig) {
		return nil, ErrIntegrity
	}

	ephPub := signed[:ephLen]
	nonce := signed[ephLen : ephLen+nonceLen]
	ciphertext := signed[ephLen+nonceLen:]

	shared, err := curve25519.X25519(recipientPriv[:], ephPub)
	if err != nil {
		return nil, fmt.Errorf("crypto: ecdh: %w", err)
	}
	boxKey, err := hkdfKey(shared)
	if err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(boxKey)
	if err != nil {
		return nil, fmt.Errorf("crypto: build aead: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrIntegrity
	}
	return plaintext, nil
}

// hkdfKey stretches an X25519 shared secret into a ChaCha20-Poly1305 key
// via HKDF-SHA256, domain-separated by boxInfo.
func hkdfKey(shared []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, shared, nil, boxInfo)
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("crypto: hkdf expand: %w", err)
	}
	return key, nil
}

// GenerateBoxKeyPair generates a fresh X25519 keypair for use as an
// identity's box (encryption) key.
func GenerateBoxKeyPair() (pub, priv [32]byte, err error) {
	if _, err = io.ReadFull(rand.Reader, priv[:]); err != nil {
		return pub, priv, fmt.Errorf("crypto: generate box key: %w", err)
	}
	pubSlice, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return pub, priv, fmt.Errorf("crypto: derive box pubkey: %w", err)
	}
	copy(pub[:], pubSlice)
	return pub, priv, nil
}

// BoxPublicFromPrivate computes the X25519 public key corresponding to
// priv, used when reloading a persisted identity from its private half
// alone.
func BoxPublicFromPrivate(priv [32]byte) ([32]byte, error) {
	var pub [32]byte
	pubSlice, err := curve25519.X25519(priv[:], curve25519.Basepoint)
	if err != nil {
		return pub, fmt.Errorf("crypto: derive box pubkey: %w", err)
	}
	copy(pub[:], pubSlice)
	return pub, nil
}

// GenerateSignKeyPair generates a fresh Ed25519 keypair for use as an
// identity's signing key.
func GenerateSignKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("crypto: generate sign key: %w", err)
	}
	return pub, priv, nil
}
