package keymanager

// Context tags scope subkey derivation: DeriveSubkey(parentKey, tag)
// never collides across tags even when two children happen to share a
// parent key, because BLAKE2b is used as a keyed PRF over the tag.
var ctxLogin = [8]byte{'L', 'o', 'g', 'i', 'n', 0, 0, 0}

// Associated-data domain tags passed to AEAD/sign/verify calls. Reusing
// a ciphertext produced under one tag as input to a call with a
// different tag always fails integrity verification, even when both
// calls share the same key.
const (
	ADAccountContent = "Account"     // seals accountKey ∥ identityPrivateKey under the main key
	ADCollectionKey  = "ColKey"      // seals a collection's symmetric key under the account key
	ADItemKey        = "ColItemKey"  // seals an item's symmetric key under the collection key
	ADItemMeta       = "ColItemMeta" // seals an item revision's meta bytes
	ADItemChunk      = "ColItemChunk"
	ADCollectionType = "ColType"
	ADInvitationTag  = "Invite"
)
