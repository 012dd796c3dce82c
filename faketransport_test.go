// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/vaultmesh/synccore/internal/backend"
	"github.com/vaultmesh/synccore/internal/errs"
	"github.com/vaultmesh/synccore/internal/models"
)

// fakeBackend is an in-memory, single-process stand-in for a real
// server: just enough bookkeeping (etag gating, stoken counters,
// signature verification) to drive the sync engine through its
// optimistic-concurrency and integrity invariants without a network.
type fakeBackend struct {
	mu sync.Mutex

	token string

	profiles map[string]backend.UserProfile

	nextColUID  int
	collections map[string]models.EncryptedCollection
	colOwner    map[string]string
	colStoken   map[string]int
	items       map[string]map[string]models.EncryptedCollectionItem
	revisions   map[string]map[string][]models.EncryptedRevision
	chunks      map[string][]byte
	members     map[string]map[string]models.AccessLevel
	memberKeys  map[string]map[string][]byte

	nextInvUID  int
	invitations map[string]invitationRecord
}

type invitationRecord struct {
	inv    models.SignedInvitation
	colUID string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		profiles:    map[string]backend.UserProfile{},
		collections: map[string]models.EncryptedCollection{},
		colOwner:    map[string]string{},
		colStoken:   map[string]int{},
		items:       map[string]map[string]models.EncryptedCollectionItem{},
		revisions:   map[string]map[string][]models.EncryptedRevision{},
		chunks:      map[string][]byte{},
		members:     map[string]map[string]models.AccessLevel{},
		memberKeys:  map[string]map[string][]byte{},
		invitations: map[string]invitationRecord{},
	}
}

func chunkKey(itemUID string, chunkUID []byte) string {
	return itemUID + "|" + base64.StdEncoding.EncodeToString(chunkUID)
}

func bytesEq(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// signedBytes reconstructs the exact JSON payload Account signs over
// a login-challenge response, so the fake can verify it the same way
// a real server would.
func signedBytes(resp backend.LoginResponse) []byte {
	b, _ := json.Marshal(loginChallengeResponse{
		Username:  resp.Username,
		Challenge: resp.Challenge,
		Host:      resp.Host,
		Action:    resp.Action,
	})
	return b
}

func (f *fakeBackend) currentUsername() string {
	return strings.TrimPrefix(f.token, "token-")
}

func (f *fakeBackend) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeBackend) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeBackend) Signup(ctx context.Context, req backend.SignupRequest) (backend.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.profiles[req.Username]; ok {
		return backend.AuthResponse{}, errs.New(errs.Conflict, "username taken")
	}
	profile := backend.UserProfile{
		Username:         req.Username,
		Salt:             req.Salt,
		LoginPubkey:      req.LoginPubkey,
		Version:          req.Version,
		EncryptedContent: req.EncryptedContent,
		IdentityPubkey:   req.IdentityPubkey,
	}
	f.profiles[req.Username] = profile
	return backend.AuthResponse{Token: "token-" + req.Username, Profile: profile}, nil
}

func (f *fakeBackend) LoginChallenge(ctx context.Context, username string) (backend.LoginChallenge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[username]
	if !ok {
		return backend.LoginChallenge{}, errs.New(errs.NotFound, "no such user")
	}
	return backend.LoginChallenge{Salt: p.Salt, Challenge: "nonce-" + username, Version: p.Version}, nil
}

func (f *fakeBackend) Login(ctx context.Context, username string, resp backend.LoginResponse, signature []byte) (backend.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[username]
	if !ok {
		return backend.AuthResponse{}, errs.New(errs.NotFound, "no such user")
	}
	if !ed25519.Verify(ed25519.PublicKey(p.LoginPubkey), signedBytes(resp), signature) {
		return backend.AuthResponse{}, errs.New(errs.Unauthorized, "bad signature")
	}
	return backend.AuthResponse{Token: "token-" + username, Profile: p}, nil
}

func (f *fakeBackend) FetchToken(ctx context.Context, username string, resp backend.LoginResponse, signature []byte) (backend.AuthResponse, error) {
	return f.Login(ctx, username, resp, signature)
}

func (f *fakeBackend) Logout(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	return nil
}

func (f *fakeBackend) ChangePassword(ctx context.Context, req backend.ChangePasswordRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	username := req.LoginResponse.Username
	p, ok := f.profiles[username]
	if !ok {
		return errs.New(errs.NotFound, "no such user")
	}
	if !ed25519.Verify(ed25519.PublicKey(p.LoginPubkey), signedBytes(req.LoginResponse), req.Signature) {
		return errs.New(errs.Unauthorized, "bad signature")
	}
	p.Salt = req.NewSalt
	p.LoginPubkey = req.NewLoginPubkey
	p.EncryptedContent = req.NewEncryptedContent
	f.profiles[username] = p
	return nil
}

func (f *fakeBackend) FetchUserProfile(ctx context.Context, username string) (backend.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[username]
	if !ok {
		return backend.UserProfile{}, errs.New(errs.NotFound, "no such user")
	}
	return p, nil
}

func (f *fakeBackend) CreateCollection(ctx context.Context, col models.EncryptedCollection) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextColUID++
	uid := fmt.Sprintf("col-%d", f.nextColUID)
	col.UID = uid
	f.collections[uid] = col
	f.colOwner[uid] = f.currentUsername()
	f.colStoken[uid] = 1
	f.items[uid] = map[string]models.EncryptedCollectionItem{}
	f.revisions[uid] = map[string][]models.EncryptedRevision{}
	f.members[uid] = map[string]models.AccessLevel{}
	f.memberKeys[uid] = map[string][]byte{}
	return uid, nil
}

func (f *fakeBackend) UpdateCollection(ctx context.Context, uid string, col models.EncryptedCollection, lastEtag []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.collections[uid]
	if !ok {
		return errs.New(errs.NotFound, "no such collection")
	}
	if !bytesEq(cur.Item.Etag, lastEtag) {
		return errs.New(errs.Conflict, "stale etag")
	}
	col.UID = uid
	f.collections[uid] = col
	f.colStoken[uid]++
	return nil
}

func (f *fakeBackend) Transaction(ctx context.Context, uid string, col models.EncryptedCollection, lastEtag []byte, stoken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stoken != "" && stoken != fmt.Sprintf("%d", f.colStoken[uid]) {
		return errs.New(errs.Conflict, "stoken advanced")
	}
	cur, ok := f.collections[uid]
	if !ok {
		return errs.New(errs.NotFound, "no such collection")
	}
	if !bytesEq(cur.Item.Etag, lastEtag) {
		return errs.New(errs.Conflict, "stale etag")
	}
	col.UID = uid
	f.collections[uid] = col
	f.colStoken[uid]++
	return nil
}

// withCallerKey returns c with CollectionKey substituted for the
// calling member's own resealed key, when the caller isn't the
// original owner and has accepted an invitation to this collection.
// Without this, every caller would be served the owner's
// account-sealed key and could never open it under their own account.
func (f *fakeBackend) withCallerKey(c models.EncryptedCollection, uid string) models.EncryptedCollection {
	me := f.currentUsername()
	if me == f.colOwner[uid] {
		return c
	}
	if key, ok := f.memberKeys[uid][me]; ok {
		c.CollectionKey = key
	}
	return c
}

func (f *fakeBackend) FetchCollection(ctx context.Context, uid string, opts backend.ListOptions) (models.EncryptedCollection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.collections[uid]
	if !ok {
		return models.EncryptedCollection{}, errs.New(errs.NotFound, "no such collection")
	}
	return f.withCallerKey(c, uid), nil
}

func (f *fakeBackend) ListCollections(ctx context.Context, opts backend.ListOptions) (backend.CollectionListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	me := f.currentUsername()
	var data []models.EncryptedCollection
	for uid, c := range f.collections {
		if me != f.colOwner[uid] {
			if _, ok := f.memberKeys[uid][me]; !ok {
				continue
			}
		}
		data = append(data, f.withCallerKey(c, uid))
	}
	return backend.CollectionListResponse{Data: data, Done: true}, nil
}

func (f *fakeBackend) FetchItem(ctx context.Context, colUID, itemUID string, opts backend.ListOptions) (models.EncryptedCollectionItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.items[colUID]
	if !ok {
		return models.EncryptedCollectionItem{}, errs.New(errs.NotFound, "no such collection")
	}
	it, ok := items[itemUID]
	if !ok {
		return models.EncryptedCollectionItem{}, errs.New(errs.NotFound, "no such item")
	}
	return it, nil
}

func (f *fakeBackend) ListItems(ctx context.Context, colUID string, opts backend.ListOptions) (backend.ItemListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []models.EncryptedCollectionItem
	for _, it := range f.items[colUID] {
		data = append(data, it)
	}
	return backend.ItemListResponse{Data: data, Done: true}, nil
}

func (f *fakeBackend) Batch(ctx context.Context, colUID string, req backend.BatchRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, ok := f.items[colUID]
	if !ok {
		return errs.New(errs.NotFound, "no such collection")
	}
	if req.Stoken != "" && req.Stoken != fmt.Sprintf("%d", f.colStoken[colUID]) {
		return errs.New(errs.Conflict, "stoken advanced")
	}
	for _, d := range req.Deps {
		cur, ok := items[d.UID]
		if !ok || !bytesEq(cur.Etag, d.Etag) {
			return errs.New(errs.Conflict, "dependency stale")
		}
	}
	for _, it := range req.Items {
		cur, existed := items[it.UID]
		if existed {
			if !bytesEq(cur.Etag, it.LastEtag) {
				return errs.New(errs.Conflict, "item stale")
			}
		} else if it.LastEtag != nil {
			return errs.New(errs.Conflict, "item stale")
		}
	}
	for _, it := range req.Items {
		f.revisions[colUID][it.UID] = append([]models.EncryptedRevision{it.Content}, f.revisions[colUID][it.UID]...)
		items[it.UID] = it
	}
	f.colStoken[colUID]++
	return nil
}

func (f *fakeBackend) UploadChunk(ctx context.Context, colUID, itemUID string, chunkUID, ciphertext []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chunks[chunkKey(itemUID, chunkUID)] = ciphertext
	return nil
}

func (f *fakeBackend) DownloadChunk(ctx context.Context, colUID, itemUID string, chunkUID []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.chunks[chunkKey(itemUID, chunkUID)]
	if !ok {
		return nil, errs.New(errs.NotFound, "no such chunk")
	}
	return b, nil
}

func (f *fakeBackend) FetchUpdates(ctx context.Context, colUID string, req backend.FetchUpdatesRequest) (backend.FetchUpdatesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := f.items[colUID]
	var data []models.EncryptedCollectionItem
	for _, dep := range req.Items {
		cur, ok := items[dep.UID]
		if ok && !bytesEq(cur.Etag, dep.Etag) {
			data = append(data, cur)
		}
	}
	return backend.FetchUpdatesResponse{Data: data, Stoken: fmt.Sprintf("%d", f.colStoken[colUID])}, nil
}

func (f *fakeBackend) ItemRevisions(ctx context.Context, colUID, itemUID string, opts backend.ListOptions) (backend.ItemRevisionsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return backend.ItemRevisionsResponse{Data: f.revisions[colUID][itemUID], Done: true}, nil
}

func (f *fakeBackend) ListIncomingInvitations(ctx context.Context, opts backend.ListOptions) (backend.InvitationListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	me := f.currentUsername()
	var data []models.SignedInvitation
	for _, rec := range f.invitations {
		if rec.inv.ToUsername == me {
			data = append(data, rec.inv)
		}
	}
	return backend.InvitationListResponse{Data: data}, nil
}

func (f *fakeBackend) ListOutgoingInvitations(ctx context.Context, opts backend.ListOptions) (backend.InvitationListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	me := f.currentUsername()
	var data []models.SignedInvitation
	for _, rec := range f.invitations {
		if rec.inv.FromUsername == me {
			data = append(data, rec.inv)
		}
	}
	return backend.InvitationListResponse{Data: data}, nil
}

func (f *fakeBackend) CreateInvitation(ctx context.Context, colUID string, inv models.SignedInvitation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invitations[inv.UID] = invitationRecord{inv: inv, colUID: colUID}
	return nil
}

func (f *fakeBackend) AcceptInvitation(ctx context.Context, invitationUID string, req backend.AcceptInvitationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.invitations[invitationUID]
	if !ok {
		return errs.New(errs.NotFound, "no such invitation")
	}
	me := f.currentUsername()
	f.members[rec.colUID][me] = rec.inv.AccessLevel
	if f.memberKeys[rec.colUID] == nil {
		f.memberKeys[rec.colUID] = map[string][]byte{}
	}
	f.memberKeys[rec.colUID][me] = req.CollectionKey
	delete(f.invitations, invitationUID)
	return nil
}

func (f *fakeBackend) RejectInvitation(ctx context.Context, invitationUID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.invitations, invitationUID)
	return nil
}

func (f *fakeBackend) ListMembers(ctx context.Context, colUID string, opts backend.ListOptions) (backend.MemberListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var data []backend.Member
	for u, lvl := range f.members[colUID] {
		data = append(data, backend.Member{Username: u, AccessLevel: lvl})
	}
	return backend.MemberListResponse{Data: data}, nil
}

func (f *fakeBackend) RemoveMember(ctx context.Context, colUID, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.members[colUID], username)
	return nil
}

func (f *fakeBackend) ModifyMemberAccessLevel(ctx context.Context, colUID, username string, level models.AccessLevel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.members[colUID][username]; !ok {
		return errs.New(errs.NotFound, "no such member")
	}
	f.members[colUID][username] = level
	return nil
}

func (f *fakeBackend) LeaveCollection(ctx context.Context, colUID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.members[colUID], f.currentUsername())
	return nil
}

var _ backend.Backend = (*fakeBackend)(nil)
