package models

import (
	"crypto/ed25519"

	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/keymanager"
)

// SignedInvitation is a pending offer of collection access from one
// account to another: the collection key sealed and signed from the
// sender's identity to the recipient's, plus enough metadata for the
// recipient to decide whether to accept without yet holding the key.
type SignedInvitation struct {
	UID                 string      `msgpack:"uid"`
	Version             int         `msgpack:"version"`
	FromUsername        string      `msgpack:"fromUsername"`
	FromPubkey          []byte      `msgpack:"fromPubkey"` // sender's marshaled public identity (box ∥ sign)
	ToUsername          string      `msgpack:"toUsername"`
	ToPubkey            []byte      `msgpack:"toPubkey"`
	AccessLevel         AccessLevel `msgpack:"accessLevel"`
	SignedEncryptionKey []byte      `msgpack:"signedEncryptionKey"`
	CollectionType      []byte      `msgpack:"collectionType"`
}

// CreateInvitation decrypts collection's key through account, then
// seals and signs it from sender (identityMgr) to the recipient
// identified by toPubkey (their marshaled public identity, box ∥
// sign), returning a SignedInvitation ready to post.
func CreateInvitation(
	gen *UIDGenerator,
	account *keymanager.AccountCryptoManager,
	identityMgr *keymanager.IdentityCryptoManager,
	collection EncryptedCollection,
	fromUsername, toUsername string,
	toPubkey []byte,
	accessLevel AccessLevel,
) (SignedInvitation, error) {
	uid, err := gen.Generate()
	if err != nil {
		return SignedInvitation{}, err
	}

	colKey, err := account.OpenCollectionKey(collection.CollectionKey)
	if err != nil {
		return SignedInvitation{}, err
	}

	toBoxPub, _, err := keymanager.UnmarshalIdentityPublic(toPubkey)
	if err != nil {
		return SignedInvitation{}, err
	}

	sealedKey, err := identityMgr.SealInvitationKey(toBoxPub, colKey)
	if err != nil {
		return SignedInvitation{}, err
	}

	return SignedInvitation{
		UID:                 uid,
		Version:             1,
		FromUsername:        fromUsername,
		FromPubkey:          identityMgr.PublicKey(),
		ToUsername:          toUsername,
		ToPubkey:            toPubkey,
		AccessLevel:         accessLevel,
		SignedEncryptionKey: sealedKey,
		CollectionType:      collection.CollectionType,
	}, nil
}

// Accept verifies the invitation's sender signature and decrypts the
// collection key using the recipient's identityMgr, then re-seals it
// under the recipient's own account key so the accepted collection is
// indistinguishable from one the recipient created directly. Returns
// crypto.ErrIntegrity if the sender signature or the box seal does not
// verify.
func (inv SignedInvitation) Accept(identityMgr *keymanager.IdentityCryptoManager, account *keymanager.AccountCryptoManager) ([]byte, error) {
	_, fromSignPub, err := keymanager.UnmarshalIdentityPublic(inv.FromPubkey)
	if err != nil {
		return nil, err
	}

	colKey, err := identityMgr.OpenInvitationKey(ed25519.PublicKey(fromSignPub), inv.SignedEncryptionKey)
	if err != nil {
		return nil, err
	}

	return account.SealCollectionKey(colKey)
}

// VerifySender checks that inv.FromPubkey matches the pubkey the
// server independently reports for FromUsername (via fetchUserProfile),
// guarding against a server substituting a different sender identity.
// Returns crypto.ErrIntegrity on mismatch.
func (inv SignedInvitation) VerifySender(serverReportedPubkey []byte) error {
	if len(inv.FromPubkey) != len(serverReportedPubkey) {
		return crypto.ErrIntegrity
	}
	for i := range inv.FromPubkey {
		if inv.FromPubkey[i] != serverReportedPubkey[i] {
			return crypto.ErrIntegrity
		}
	}
	return nil
}
