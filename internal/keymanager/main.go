package keymanager

import (
	"crypto/ed25519"
	"fmt"

	"github.com/vaultmesh/synccore/internal/crypto"
)

// MainCryptoManager wraps an account's main key — the root of the key
// hierarchy, derived from the user's password via Argon2id. It never
// leaves client memory and is used only to seal/unseal the account's
// encryptedContent blob (accountKey ∥ identityPrivateKey) and to derive
// the login signing keypair.
type MainCryptoManager struct {
	key     []byte
	version int
}

// NewMainCryptoManager wraps mainKey for the given scheme version.
// Callers must refuse to operate on an unknown version per spec.
func NewMainCryptoManager(mainKey []byte, version int) *MainCryptoManager {
	return &MainCryptoManager{key: mainKey, version: version}
}

// Version returns the scheme version this manager was constructed with.
func (m *MainCryptoManager) Version() int { return m.version }

// EncryptContent seals accountKey ∥ identityPrivateKey under the main
// key, producing the blob stored server-side as the user's
// encryptedContent.
func (m *MainCryptoManager) EncryptContent(plaintext []byte) ([]byte, error) {
	return crypto.Seal(m.key, plaintext, []byte(ADAccountContent))
}

// DecryptContent reverses EncryptContent. Returns crypto.ErrIntegrity if
// the main key is wrong (bad password) or the blob was tampered with.
func (m *MainCryptoManager) DecryptContent(ciphertext []byte) ([]byte, error) {
	return crypto.Open(m.key, ciphertext, []byte(ADAccountContent))
}

// DeriveLogin derives this account's LoginCryptoManager: an Ed25519
// keypair used to sign login-challenge responses. It is fully
// deterministic in the main key so a fresh client can re-derive it on
// every login without persisting it separately.
func (m *MainCryptoManager) DeriveLogin() (*LoginCryptoManager, error) {
	seed, err := crypto.DeriveSubkey(m.key, ctxLogin)
	if err != nil {
		return nil, fmt.Errorf("keymanager: derive login seed: %w", err)
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &LoginCryptoManager{priv: priv, pub: priv.Public().(ed25519.PublicKey)}, nil
}

// LoginCryptoManager signs login-challenge responses with an Ed25519
// keypair deterministically derived from the main key. The server
// verifies the signature against the public key it stored at signup.
type LoginCryptoManager struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// PublicKey returns the Ed25519 public key the server should have on
// file for this account.
func (l *LoginCryptoManager) PublicKey() ed25519.PublicKey { return l.pub }

// Sign signs message (the JSON-encoded challenge response) and returns
// the raw Ed25519 signature.
func (l *LoginCryptoManager) Sign(message []byte) []byte {
	return crypto.Sign(l.priv, message)
}
