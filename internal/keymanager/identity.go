package keymanager

import (
	"crypto/ed25519"
	"fmt"

	"github.com/vaultmesh/synccore/internal/crypto"
)

// IdentityKeyPair is the long-lived asymmetric keypair an account uses
// to send and receive invitations: an X25519 pair for sealing the
// shared collection key, and an Ed25519 pair for signing/verifying the
// sender of an invitation. It is generated once at signup and persisted
// (encrypted) alongside the account key.
type IdentityKeyPair struct {
	BoxPub   [32]byte
	BoxPriv  [32]byte
	SignPub  ed25519.PublicKey
	SignPriv ed25519.PrivateKey
}

const (
	boxPubLen  = 32
	boxPrivLen = 32
)

// GenerateIdentityKeyPair creates a fresh identity keypair for a new
// account.
func GenerateIdentityKeyPair() (IdentityKeyPair, error) {
	boxPub, boxPriv, err := crypto.GenerateBoxKeyPair()
	if err != nil {
		return IdentityKeyPair{}, fmt.Errorf("keymanager: generate identity box key: %w", err)
	}
	signPub, signPriv, err := crypto.GenerateSignKeyPair()
	if err != nil {
		return IdentityKeyPair{}, fmt.Errorf("keymanager: generate identity sign key: %w", err)
	}
	return IdentityKeyPair{BoxPub: boxPub, BoxPriv: boxPriv, SignPub: signPub, SignPriv: signPriv}, nil
}

// MarshalPrivate serializes the private half of the identity keypair as
// boxPriv(32) ∥ signPriv(64), the layout stored (encrypted) in the
// account's encryptedContent alongside the account key.
func (id IdentityKeyPair) MarshalPrivate() []byte {
	out := make([]byte, 0, boxPrivLen+ed25519.PrivateKeySize)
	out = append(out, id.BoxPriv[:]...)
	out = append(out, id.SignPriv...)
	return out
}

// MarshalPublic serializes the public half as boxPub(32) ∥ signPub(32),
// the form exchanged with peers (e.g. via fetchUserProfile) and stored
// on SignedInvitation.fromPubkey / toPubkey.
func (id IdentityKeyPair) MarshalPublic() []byte {
	out := make([]byte, 0, boxPubLen+ed25519.PublicKeySize)
	out = append(out, id.BoxPub[:]...)
	out = append(out, id.SignPub...)
	return out
}

// UnmarshalIdentityPrivate parses the layout produced by MarshalPrivate,
// deriving the public halves from the private keys.
func UnmarshalIdentityPrivate(b []byte) (IdentityKeyPair, error) {
	if len(b) != boxPrivLen+ed25519.PrivateKeySize {
		return IdentityKeyPair{}, fmt.Errorf("keymanager: invalid identity private key length %d", len(b))
	}
	var id IdentityKeyPair
	copy(id.BoxPriv[:], b[:boxPrivLen])
	id.SignPriv = ed25519.PrivateKey(b[boxPrivLen:])
	id.SignPub = id.SignPriv.Public().(ed25519.PublicKey)

	boxPub, err := boxPublicFromPrivate(id.BoxPriv)
	if err != nil {
		return IdentityKeyPair{}, err
	}
	id.BoxPub = boxPub
	return id, nil
}

// UnmarshalIdentityPublic parses the layout produced by MarshalPublic,
// as received from a peer via fetchUserProfile or embedded in an
// invitation.
func UnmarshalIdentityPublic(b []byte) (boxPub [32]byte, signPub ed25519.PublicKey, err error) {
	if len(b) != boxPubLen+ed25519.PublicKeySize {
		return boxPub, nil, fmt.Errorf("keymanager: invalid identity public key length %d", len(b))
	}
	copy(boxPub[:], b[:boxPubLen])
	signPub = ed25519.PublicKey(b[boxPubLen:])
	return boxPub, signPub, nil
}

// IdentityCryptoManager wraps an account's identity keypair to issue
// and accept invitations: sealing/opening a collection key addressed to
// a specific recipient, signed by this identity.
type IdentityCryptoManager struct {
	keys IdentityKeyPair
}

// NewIdentityCryptoManager wraps keys for invitation use.
func NewIdentityCryptoManager(keys IdentityKeyPair) *IdentityCryptoManager {
	return &IdentityCryptoManager{keys: keys}
}

// PublicKey returns the 64-byte public identity (boxPub ∥ signPub)
// published to peers.
func (i *IdentityCryptoManager) PublicKey() []byte {
	return i.keys.MarshalPublic()
}

// SealInvitationKey seals collectionKey for recipientPub (the
// recipient's 32-byte X25519 box public key) and signs it with this
// identity's signing key, producing SignedInvitation.signedEncryptionKey.
func (i *IdentityCryptoManager) SealInvitationKey(recipientPub [32]byte, collectionKey []byte) ([]byte, error) {
	return crypto.BoxSealSigned(i.keys.SignPriv, recipientPub, collectionKey)
}

// OpenInvitationKey opens an invitation's signedEncryptionKey, verifying
// it was signed by senderSignPub, and returns the plaintext collection
// key. Returns crypto.ErrIntegrity if the signature or seal does not
// verify.
func (i *IdentityCryptoManager) OpenInvitationKey(senderSignPub ed25519.PublicKey, blob []byte) ([]byte, error) {
	return crypto.BoxOpenSigned(senderSignPub, i.keys.BoxPriv, blob)
}

func boxPublicFromPrivate(priv [32]byte) ([32]byte, error) {
	return crypto.BoxPublicFromPrivate(priv)
}
