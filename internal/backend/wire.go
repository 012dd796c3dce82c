package backend

import "github.com/vaultmesh/synccore/internal/models"

// LoginChallenge is returned by the login-challenge endpoint: the
// account's salt and scheme version, plus a server-minted nonce the
// client must sign to prove possession of the login key.
type LoginChallenge struct {
	Salt      []byte `msgpack:"salt"`
	Challenge string `msgpack:"challenge"`
	Version   int    `msgpack:"version"`
}

// LoginResponse is the JSON-in-msgpack envelope the client signs and
// posts back to complete a login or change-password handshake.
type LoginResponse struct {
	Username  string `msgpack:"username"`
	Challenge string `msgpack:"challenge"`
	Host      string `msgpack:"host"`
	Action    string `msgpack:"action"`
}

// SignupRequest is posted to the signup endpoint.
type SignupRequest struct {
	Username         string `msgpack:"username"`
	Salt             []byte `msgpack:"salt"`
	LoginPubkey      []byte `msgpack:"loginPubkey"`
	Version          int    `msgpack:"version"`
	EncryptedContent []byte `msgpack:"encryptedContent"`
	IdentityPubkey   []byte `msgpack:"identityPubkey"`
}

// UserProfile is the server-held record describing an account, minus
// any secret material.
type UserProfile struct {
	Username         string `msgpack:"username"`
	Salt             []byte `msgpack:"salt"`
	LoginPubkey      []byte `msgpack:"loginPubkey"`
	Version          int    `msgpack:"version"`
	EncryptedContent []byte `msgpack:"encryptedContent"`
	IdentityPubkey   []byte `msgpack:"identityPubkey"`
}

// AuthResponse is returned by signup, login, and fetchToken.
type AuthResponse struct {
	Token   string      `msgpack:"token"`
	Profile UserProfile `msgpack:"profile"`
}

// ChangePasswordRequest is posted to complete a password change: a new
// login signature proving the client still controls the account, plus
// the re-sealed account content under the new main key.
type ChangePasswordRequest struct {
	LoginResponse    LoginResponse `msgpack:"loginResponse"`
	Signature        []byte        `msgpack:"signature"`
	NewSalt          []byte        `msgpack:"newSalt"`
	NewLoginPubkey   []byte        `msgpack:"newLoginPubkey"`
	NewEncryptedContent []byte     `msgpack:"newEncryptedContent"`
}

// CollectionListResponse pages through a user's collections.
type CollectionListResponse struct {
	Data          []models.EncryptedCollection `msgpack:"data"`
	Stoken        string                       `msgpack:"stoken"`
	Done          bool                         `msgpack:"done"`
	IteratorToken string                       `msgpack:"iterator"`
}

// ItemListResponse pages through a collection's items.
type ItemListResponse struct {
	Data          []models.EncryptedCollectionItem `msgpack:"data"`
	Stoken        string                           `msgpack:"stoken"`
	Done          bool                             `msgpack:"done"`
	IteratorToken string                           `msgpack:"iterator"`
}

// ItemRevisionsResponse pages through one item's revision history,
// newest first.
type ItemRevisionsResponse struct {
	Data          []models.EncryptedRevision `msgpack:"data"`
	Done          bool                       `msgpack:"done"`
	IteratorToken string                     `msgpack:"iterator"`
}

// ItemDep names a dependency gate for batch/transaction: the server
// must see (uid, etag) match its own stored state for the item before
// applying any item in the same call.
type ItemDep struct {
	UID  string `msgpack:"uid"`
	Etag []byte `msgpack:"etag"`
}

// BatchRequest is posted to apply a set of item mutations atomically.
type BatchRequest struct {
	Items  []models.EncryptedCollectionItem `msgpack:"items"`
	Deps   []ItemDep                        `msgpack:"deps,omitempty"`
	Stoken string                            `msgpack:"stoken,omitempty"` // present only for transaction
}

// FetchUpdatesRequest asks the server which of the listed items have
// advanced past the client's last known etag.
type FetchUpdatesRequest struct {
	Items  []ItemDep `msgpack:"items"`
	Stoken string    `msgpack:"stoken,omitempty"`
}

// FetchUpdatesResponse reports, for each item whose etag advanced, the
// new item state. Items omitted from Data are unchanged.
type FetchUpdatesResponse struct {
	Data   []models.EncryptedCollectionItem `msgpack:"data"`
	Stoken string                           `msgpack:"stoken"`
}

// InvitationListResponse pages through incoming or outgoing
// invitations.
type InvitationListResponse struct {
	Data          []models.SignedInvitation `msgpack:"data"`
	IteratorToken string                    `msgpack:"iterator"`
}

// AcceptInvitationRequest is posted to accept a pending invitation.
type AcceptInvitationRequest struct {
	CollectionKey  []byte `msgpack:"collectionKey"` // re-sealed under the accepting account
	CollectionType []byte `msgpack:"collectionType"`
}

// Member describes one collaborator on a shared collection.
type Member struct {
	Username    string              `msgpack:"username"`
	AccessLevel models.AccessLevel  `msgpack:"accessLevel"`
}

// MemberListResponse pages through a collection's members.
type MemberListResponse struct {
	Data          []Member `msgpack:"data"`
	IteratorToken string   `msgpack:"iterator"`
}

// ListOptions controls pagination and prefetch for list/fetch calls.
type ListOptions struct {
	Stoken        string
	IteratorToken string
	Limit         int
	WithCollection bool
	Prefetch      Prefetch
}

// Prefetch controls whether chunk content is streamed inline with a
// list/fetch response (Medium) or returned as placeholders to be
// downloaded on demand (Auto).
type Prefetch string

const (
	PrefetchAuto   Prefetch = "auto"
	PrefetchMedium Prefetch = "medium"
)
