package backend

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vaultmesh/synccore/internal/errs"
	"github.com/vaultmesh/synccore/internal/logger"
	"github.com/vaultmesh/synccore/internal/models"
)

const msgpackContentType = "application/msgpack"

// HTTPConfig configures [NewHTTPBackend].
type HTTPConfig struct {
	ServerURL string
	Timeout   time.Duration
}

type httpBackend struct {
	client *resty.Client
	log    *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPBackend constructs an HTTP/MessagePack implementation of
// [Backend] against cfg.ServerURL. Returns an error if the server URL
// is empty or cannot be parsed.
func NewHTTPBackend(cfg HTTPConfig, log *logger.Logger) (Backend, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", msgpackContentType)

	if log == nil {
		log = logger.Nop()
	}
	return &httpBackend{client: client, log: log}, nil
}

func (h *httpBackend) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBackend) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBackend) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", msgpackContentType)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Token "+token)
	}
	return req
}

// encodeBody packs v as MessagePack for a request body. resty's
// SetBody only auto-marshals JSON and XML, so every msgpack-bodied
// request goes through here rather than SetBody(v) directly.
func (h *httpBackend) encodeBody(v any) ([]byte, error) {
	b, err := models.Marshal(v)
	if err != nil {
		return nil, errs.New(errs.Programming, "encode request body: "+err.Error())
	}
	return b, nil
}

func (h *httpBackend) Signup(ctx context.Context, reqBody SignupRequest) (AuthResponse, error) {
	body, err := h.encodeBody(reqBody)
	if err != nil {
		return AuthResponse{}, err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(authenticationPath("signup"))
	if err != nil {
		return AuthResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return AuthResponse{}, err
	}
	var out AuthResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return AuthResponse{}, errs.New(errs.Programming, "decode signup response: "+err.Error())
	}
	h.SetToken(out.Token)
	return out, nil
}

func (h *httpBackend) LoginChallenge(ctx context.Context, username string) (LoginChallenge, error) {
	body, err := h.encodeBody(map[string]string{"username": username})
	if err != nil {
		return LoginChallenge{}, err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(authenticationPath("login_challenge"))
	if err != nil {
		return LoginChallenge{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return LoginChallenge{}, err
	}
	var out LoginChallenge
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return LoginChallenge{}, errs.New(errs.Programming, "decode login challenge response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) Login(ctx context.Context, username string, loginResp LoginResponse, signature []byte) (AuthResponse, error) {
	return h.completeChallenge(ctx, "login", username, loginResp, signature)
}

func (h *httpBackend) FetchToken(ctx context.Context, username string, loginResp LoginResponse, signature []byte) (AuthResponse, error) {
	return h.completeChallenge(ctx, "login", username, loginResp, signature)
}

func (h *httpBackend) completeChallenge(ctx context.Context, action, username string, loginResp LoginResponse, signature []byte) (AuthResponse, error) {
	reqBody := struct {
		Username  string        `msgpack:"username"`
		Response  LoginResponse `msgpack:"response"`
		Signature []byte        `msgpack:"signature"`
	}{Username: username, Response: loginResp, Signature: signature}

	body, err := h.encodeBody(reqBody)
	if err != nil {
		return AuthResponse{}, err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(authenticationPath(action))
	if err != nil {
		return AuthResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return AuthResponse{}, err
	}
	var out AuthResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return AuthResponse{}, errs.New(errs.Programming, "decode login response: "+err.Error())
	}
	h.SetToken(out.Token)
	return out, nil
}

func (h *httpBackend) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post(authenticationPath("logout"))
	if err != nil {
		return mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		h.log.Warn().Err(err).Msg("logout: server rejected revoke, clearing local token anyway")
	}
	h.SetToken("")
	return nil
}

func (h *httpBackend) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	body, err := h.encodeBody(req)
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(authenticationPath("change_password"))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) FetchUserProfile(ctx context.Context, username string) (UserProfile, error) {
	resp, err := h.authedRequest(ctx).
		Get(userProfilePath(username))
	if err != nil {
		return UserProfile{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return UserProfile{}, err
	}
	var out UserProfile
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return UserProfile{}, errs.New(errs.Programming, "decode user profile response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) CreateCollection(ctx context.Context, col models.EncryptedCollection) (string, error) {
	body, err := h.encodeBody(col)
	if err != nil {
		return "", err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(collectionsPath())
	if err != nil {
		return "", mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}
	var out struct {
		UID string `msgpack:"uid"`
	}
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return "", errs.New(errs.Programming, "decode create collection response: "+err.Error())
	}
	return out.UID, nil
}

func (h *httpBackend) UpdateCollection(ctx context.Context, uid string, col models.EncryptedCollection, lastEtag []byte) error {
	body, err := h.encodeBody(col)
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetHeader("If-Match", string(lastEtag)).
		SetBody(body).
		Put(collectionPath(uid))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) Transaction(ctx context.Context, uid string, col models.EncryptedCollection, lastEtag []byte, stoken string) error {
	body, err := h.encodeBody(col)
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetHeader("If-Match", string(lastEtag)).
		SetQueryParam("stoken", stoken).
		SetBody(body).
		Put(collectionPath(uid) + "transaction/")
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) FetchCollection(ctx context.Context, uid string, opts ListOptions) (models.EncryptedCollection, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(collectionPath(uid))
	if err != nil {
		return models.EncryptedCollection{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.EncryptedCollection{}, err
	}
	var out models.EncryptedCollection
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return models.EncryptedCollection{}, errs.New(errs.Programming, "decode collection response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) ListCollections(ctx context.Context, opts ListOptions) (CollectionListResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(collectionsPath())
	if err != nil {
		return CollectionListResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return CollectionListResponse{}, err
	}
	var out CollectionListResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return CollectionListResponse{}, errs.New(errs.Programming, "decode collection list response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) FetchItem(ctx context.Context, colUID, itemUID string, opts ListOptions) (models.EncryptedCollectionItem, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(itemPath(colUID, itemUID))
	if err != nil {
		return models.EncryptedCollectionItem{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.EncryptedCollectionItem{}, err
	}
	var out models.EncryptedCollectionItem
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return models.EncryptedCollectionItem{}, errs.New(errs.Programming, "decode item response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) ListItems(ctx context.Context, colUID string, opts ListOptions) (ItemListResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(itemsPath(colUID))
	if err != nil {
		return ItemListResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return ItemListResponse{}, err
	}
	var out ItemListResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return ItemListResponse{}, errs.New(errs.Programming, "decode item list response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) Batch(ctx context.Context, colUID string, req BatchRequest) error {
	path := itemBatchPath(colUID)
	if req.Stoken != "" {
		path = itemTransactionPath(colUID)
	}
	body, err := h.encodeBody(req)
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) UploadChunk(ctx context.Context, colUID, itemUID string, chunkUID []byte, ciphertext []byte) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(ciphertext).
		Put(chunkUploadPath(colUID, itemUID, models.EncodeBase62(chunkUID)))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) DownloadChunk(ctx context.Context, colUID, itemUID string, chunkUID []byte) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/octet-stream").
		Get(chunkDownloadPath(colUID, itemUID, models.EncodeBase62(chunkUID)))
	if err != nil {
		return nil, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (h *httpBackend) FetchUpdates(ctx context.Context, colUID string, req FetchUpdatesRequest) (FetchUpdatesResponse, error) {
	body, err := h.encodeBody(req)
	if err != nil {
		return FetchUpdatesResponse{}, err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(itemFetchUpdatesPath(colUID))
	if err != nil {
		return FetchUpdatesResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return FetchUpdatesResponse{}, err
	}
	var out FetchUpdatesResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return FetchUpdatesResponse{}, errs.New(errs.Programming, "decode fetch updates response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) ItemRevisions(ctx context.Context, colUID, itemUID string, opts ListOptions) (ItemRevisionsResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(itemRevisionsPath(colUID, itemUID))
	if err != nil {
		return ItemRevisionsResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return ItemRevisionsResponse{}, err
	}
	var out ItemRevisionsResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return ItemRevisionsResponse{}, errs.New(errs.Programming, "decode item revisions response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) ListIncomingInvitations(ctx context.Context, opts ListOptions) (InvitationListResponse, error) {
	return h.listInvitations(ctx, "incoming", opts)
}

func (h *httpBackend) ListOutgoingInvitations(ctx context.Context, opts ListOptions) (InvitationListResponse, error) {
	return h.listInvitations(ctx, "outgoing", opts)
}

func (h *httpBackend) listInvitations(ctx context.Context, direction string, opts ListOptions) (InvitationListResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(invitationPath(direction))
	if err != nil {
		return InvitationListResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return InvitationListResponse{}, err
	}
	var out InvitationListResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return InvitationListResponse{}, errs.New(errs.Programming, "decode invitation list response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) CreateInvitation(ctx context.Context, colUID string, inv models.SignedInvitation) error {
	body, err := h.encodeBody(inv)
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(invitationPath("outgoing"))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) AcceptInvitation(ctx context.Context, invitationUID string, req AcceptInvitationRequest) error {
	body, err := h.encodeBody(req)
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(invitationByUIDPath(invitationUID) + "accept/")
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) RejectInvitation(ctx context.Context, invitationUID string) error {
	resp, err := h.authedRequest(ctx).
		Delete(invitationByUIDPath(invitationUID))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) ListMembers(ctx context.Context, colUID string, opts ListOptions) (MemberListResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(listQuery(opts)).
		Get(membersPath(colUID))
	if err != nil {
		return MemberListResponse{}, mapTransportError(err)
	}
	if err := mapHTTPError(resp); err != nil {
		return MemberListResponse{}, err
	}
	var out MemberListResponse
	if err := models.Unmarshal(resp.Body(), &out); err != nil {
		return MemberListResponse{}, errs.New(errs.Programming, "decode member list response: "+err.Error())
	}
	return out, nil
}

func (h *httpBackend) RemoveMember(ctx context.Context, colUID, username string) error {
	resp, err := h.authedRequest(ctx).Delete(memberPath(colUID, username))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) ModifyMemberAccessLevel(ctx context.Context, colUID, username string, level models.AccessLevel) error {
	body, err := h.encodeBody(map[string]models.AccessLevel{"accessLevel": level})
	if err != nil {
		return err
	}
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Put(memberPath(colUID, username))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

func (h *httpBackend) LeaveCollection(ctx context.Context, colUID string) error {
	resp, err := h.authedRequest(ctx).Post(leaveCollectionPath(colUID))
	if err != nil {
		return mapTransportError(err)
	}
	return mapHTTPError(resp)
}

var _ Backend = (*httpBackend)(nil)
