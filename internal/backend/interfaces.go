package backend

import (
	"context"

	"github.com/vaultmesh/synccore/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend is the transport-agnostic contract the sync engine uses to
// talk to the server. Implementations own serialization, the
// Authorization header, and mapping transport errors to
// [github.com/vaultmesh/synccore/internal/errs] kinds.
type Backend interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently held, or "" if unset.
	Token() string

	// Signup registers a new account. Returns the server's
	// AuthResponse (token + echoed profile). Fails with
	// errs.Conflict if the username is taken.
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)

	// LoginChallenge fetches the salt, nonce, and scheme version
	// needed to complete a login.
	LoginChallenge(ctx context.Context, username string) (LoginChallenge, error)

	// Login completes authentication with a signed challenge
	// response. Fails with errs.Unauthorized on a bad signature.
	Login(ctx context.Context, username string, resp LoginResponse, signature []byte) (AuthResponse, error)

	// FetchToken refreshes the bearer token using a fresh signed
	// challenge response, identical in shape to Login.
	FetchToken(ctx context.Context, username string, resp LoginResponse, signature []byte) (AuthResponse, error)

	// Logout best-effort revokes the current bearer token server-side.
	Logout(ctx context.Context) error

	// ChangePassword re-keys the account: a new login pubkey and
	// re-sealed account content, authenticated by a signature over the
	// old login challenge.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// FetchUserProfile fetches the public profile (including
	// IdentityPubkey) of username, used to verify invitation senders
	// and recipients out of band.
	FetchUserProfile(ctx context.Context, username string) (UserProfile, error)

	// CreateCollection POSTs a newly constructed collection. The
	// server assigns and returns its uid.
	CreateCollection(ctx context.Context, col models.EncryptedCollection) (string, error)

	// UpdateCollection PUTs an edited collection, gated on lastEtag
	// matching the etag of the server's stored copy. Fails with
	// errs.Conflict if stale.
	UpdateCollection(ctx context.Context, uid string, col models.EncryptedCollection, lastEtag []byte) error

	// Transaction is UpdateCollection additionally gated on the
	// collection's stoken not having advanced.
	Transaction(ctx context.Context, uid string, col models.EncryptedCollection, lastEtag []byte, stoken string) error

	// FetchCollection retrieves one collection by uid. Fails with
	// errs.NotFound if it does not exist or access was revoked.
	FetchCollection(ctx context.Context, uid string, opts ListOptions) (models.EncryptedCollection, error)

	// ListCollections pages through the caller's collections.
	ListCollections(ctx context.Context, opts ListOptions) (CollectionListResponse, error)

	// FetchItem retrieves one item by uid within collection colUID.
	FetchItem(ctx context.Context, colUID, itemUID string, opts ListOptions) (models.EncryptedCollectionItem, error)

	// ListItems pages through a collection's items.
	ListItems(ctx context.Context, colUID string, opts ListOptions) (ItemListResponse, error)

	// Batch atomically applies a set of item mutations within
	// colUID, gated per item (and per dep) on (uid, lastEtag). Fails
	// with errs.Conflict (no item applied) if any gate is stale.
	Batch(ctx context.Context, colUID string, req BatchRequest) error

	// UploadChunk PUTs one content chunk, deduplicated server-side by
	// chunkUID.
	UploadChunk(ctx context.Context, colUID, itemUID string, chunkUID []byte, ciphertext []byte) error

	// DownloadChunk fetches one content chunk's ciphertext.
	DownloadChunk(ctx context.Context, colUID, itemUID string, chunkUID []byte) ([]byte, error)

	// FetchUpdates reports which of req.Items have advanced past the
	// client's last known etag.
	FetchUpdates(ctx context.Context, colUID string, req FetchUpdatesRequest) (FetchUpdatesResponse, error)

	// ItemRevisions pages through one item's revision history,
	// newest first.
	ItemRevisions(ctx context.Context, colUID, itemUID string, opts ListOptions) (ItemRevisionsResponse, error)

	// ListIncomingInvitations pages through invitations addressed to
	// the caller.
	ListIncomingInvitations(ctx context.Context, opts ListOptions) (InvitationListResponse, error)

	// ListOutgoingInvitations pages through invitations the caller
	// has sent.
	ListOutgoingInvitations(ctx context.Context, opts ListOptions) (InvitationListResponse, error)

	// CreateInvitation posts inv to the recipient named on it.
	CreateInvitation(ctx context.Context, colUID string, inv models.SignedInvitation) error

	// AcceptInvitation accepts invitationUID, supplying the
	// collection key re-sealed under the accepting account.
	AcceptInvitation(ctx context.Context, invitationUID string, req AcceptInvitationRequest) error

	// RejectInvitation deletes a pending invitation without
	// accepting it.
	RejectInvitation(ctx context.Context, invitationUID string) error

	// ListMembers pages through a shared collection's members.
	ListMembers(ctx context.Context, colUID string, opts ListOptions) (MemberListResponse, error)

	// RemoveMember revokes username's access to colUID.
	RemoveMember(ctx context.Context, colUID, username string) error

	// ModifyMemberAccessLevel changes username's access level on
	// colUID.
	ModifyMemberAccessLevel(ctx context.Context, colUID, username string, level models.AccessLevel) error

	// LeaveCollection removes the caller's own membership on colUID.
	LeaveCollection(ctx context.Context, colUID string) error
}
