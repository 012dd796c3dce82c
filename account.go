// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/vaultmesh/synccore/internal/backend"
	"github.com/vaultmesh/synccore/internal/config"
	"github.com/vaultmesh/synccore/internal/crypto"
	"github.com/vaultmesh/synccore/internal/errs"
	"github.com/vaultmesh/synccore/internal/keymanager"
	"github.com/vaultmesh/synccore/internal/logger"
	"github.com/vaultmesh/synccore/internal/models"
)

// schemeVersion is the only account scheme version this engine knows
// how to operate on. A server reporting any other version is refused.
const schemeVersion = 1

// Account is a user's root handle on the sync engine: the main key
// and its derived managers, the server-held profile, and the bearer
// token for the current session. A zero Account is not usable —
// construct one with [NewAccount].
type Account struct {
	mu sync.RWMutex

	mainKey   []byte
	version   int
	user      backend.UserProfile
	serverURL string
	authToken string

	accountMgr  *keymanager.AccountCryptoManager
	identityMgr *keymanager.IdentityCryptoManager

	be  backend.Backend
	log *logger.Logger
	cfg *config.Config
}

// NewAccount constructs an unauthenticated Account bound to be and
// serverURL. Call Signup or Login before using any other method, or
// Load to restore a previously saved session.
func NewAccount(cfg *config.Config, be backend.Backend, log *logger.Logger, serverURL string) *Account {
	if log == nil {
		log = logger.Nop()
	}
	return &Account{be: be, log: log, cfg: cfg, serverURL: serverURL}
}

// loginChallengeResponse is the JSON object the client signs to prove
// possession of the login key for a given challenge and intent. The
// wire envelope around it (backend.LoginResponse) is msgpack like
// every other request body, but the bytes actually signed are this
// struct's canonical JSON encoding.
type loginChallengeResponse struct {
	Username  string `json:"username"`
	Challenge string `json:"challenge"`
	Host      string `json:"host"`
	Action    string `json:"action"`
}

func hostOf(serverURL string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("synccore: parse server url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("synccore: server url %q has no host", serverURL)
	}
	return u.Host, nil
}

func argon2Params(cfg *config.Config) crypto.Argon2Params {
	if cfg == nil {
		return crypto.DefaultArgon2Params()
	}
	return crypto.Argon2Params{
		Time:    cfg.Argon2.TimeCost,
		Memory:  cfg.Argon2.MemoryCostKiB,
		Threads: cfg.Argon2.Threads,
	}
}

// Signup registers a new account for username. It derives a main key
// from a fresh random salt, generates the account's symmetric
// accountKey and its identity keypair, seals both under the main key,
// and posts the bundle to the server. On success the Account holds an
// authenticated session.
func (a *Account) Signup(ctx context.Context, username, password string) error {
	salt, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return err
	}
	mainKey := crypto.DeriveMainKey(password, salt, argon2Params(a.cfg))
	mainMgr := keymanager.NewMainCryptoManager(mainKey, schemeVersion)

	accountKey, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return err
	}
	identity, err := keymanager.GenerateIdentityKeyPair()
	if err != nil {
		return err
	}

	plaintext := make([]byte, 0, crypto.KeySize+len(identity.MarshalPrivate()))
	plaintext = append(plaintext, accountKey...)
	plaintext = append(plaintext, identity.MarshalPrivate()...)
	encryptedContent, err := mainMgr.EncryptContent(plaintext)
	zero(plaintext)
	if err != nil {
		return err
	}

	loginMgr, err := mainMgr.DeriveLogin()
	if err != nil {
		return err
	}

	a.log.Debug().Str("username", username).Msg("signup: posting to server")
	resp, err := a.be.Signup(ctx, backend.SignupRequest{
		Username:         username,
		Salt:             salt,
		LoginPubkey:      loginMgr.PublicKey(),
		Version:          schemeVersion,
		EncryptedContent: encryptedContent,
		IdentityPubkey:   identity.MarshalPublic(),
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.mainKey = mainKey
	a.version = schemeVersion
	a.user = resp.Profile
	a.authToken = resp.Token
	a.accountMgr = keymanager.NewAccountCryptoManager(accountKey)
	a.identityMgr = keymanager.NewIdentityCryptoManager(identity)
	a.be.SetToken(resp.Token)
	return nil
}

// Login authenticates username against the server. It fetches the
// login challenge, derives the main key from password and the
// server-held salt, signs the challenge, and exchanges the signature
// for a bearer token. Fails with [ErrUnauthorized] on a bad password.
func (a *Account) Login(ctx context.Context, username, password string) error {
	challenge, err := a.be.LoginChallenge(ctx, username)
	if err != nil {
		return err
	}
	if challenge.Version != schemeVersion {
		return errs.New(errs.Programming, fmt.Sprintf("unsupported account scheme version %d", challenge.Version))
	}

	mainKey := crypto.DeriveMainKey(password, challenge.Salt, argon2Params(a.cfg))
	mainMgr := keymanager.NewMainCryptoManager(mainKey, challenge.Version)
	loginMgr, err := mainMgr.DeriveLogin()
	if err != nil {
		return err
	}

	auth, err := a.signChallengeAndExchange(ctx, username, a.serverURL, challenge.Challenge, "login", loginMgr, a.be.Login)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.mainKey = mainKey
	a.version = challenge.Version
	a.user = auth.Profile
	a.authToken = auth.Token
	a.accountMgr = nil
	a.identityMgr = nil
	a.be.SetToken(auth.Token)
	return nil
}

// FetchToken refreshes the bearer token using the main key already
// held in memory — no password required. Useful after
// [ErrUnauthorized] from a prior call.
func (a *Account) FetchToken(ctx context.Context) error {
	a.mu.RLock()
	mainKey, version, username := a.mainKey, a.version, a.user.Username
	a.mu.RUnlock()
	if version < 0 {
		return errs.New(errs.Programming, "account is logged out")
	}

	challenge, err := a.be.LoginChallenge(ctx, username)
	if err != nil {
		return err
	}

	mainMgr := keymanager.NewMainCryptoManager(mainKey, version)
	loginMgr, err := mainMgr.DeriveLogin()
	if err != nil {
		return err
	}

	auth, err := a.signChallengeAndExchange(ctx, username, a.serverURL, challenge.Challenge, "fetchToken", loginMgr, a.be.FetchToken)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.authToken = auth.Token
	a.user = auth.Profile
	a.be.SetToken(auth.Token)
	return nil
}

type challengeExchanger func(ctx context.Context, username string, resp backend.LoginResponse, signature []byte) (backend.AuthResponse, error)

func (a *Account) signChallengeAndExchange(ctx context.Context, username, serverURL, challenge, action string, loginMgr *keymanager.LoginCryptoManager, exchange challengeExchanger) (backend.AuthResponse, error) {
	host, err := hostOf(serverURL)
	if err != nil {
		return backend.AuthResponse{}, err
	}

	signed, err := json.Marshal(loginChallengeResponse{
		Username:  username,
		Challenge: challenge,
		Host:      host,
		Action:    action,
	})
	if err != nil {
		return backend.AuthResponse{}, fmt.Errorf("synccore: encode challenge response: %w", err)
	}
	signature := loginMgr.Sign(signed)

	return exchange(ctx, username, backend.LoginResponse{
		Username:  username,
		Challenge: challenge,
		Host:      host,
		Action:    action,
	}, signature)
}

// Logout best-effort revokes the bearer token server-side, then zeros
// the main key and marks the account logged out: FetchToken,
// ChangePassword, and every operation that needs the account's crypto
// managers fail with [ErrProgramming] until Login, Signup, or Load.
func (a *Account) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.be.Logout(ctx); err != nil {
		a.log.Warn().Err(err).Msg("logout: server revoke failed, proceeding with local teardown")
	}

	zero(a.mainKey)
	a.mainKey = nil
	a.version = -1
	a.accountMgr = nil
	a.identityMgr = nil
	a.authToken = ""
	a.be.SetToken("")
	return nil
}

// ChangePassword re-keys the account under newPassword: a fresh main
// key is derived from a new random salt, the account's existing
// accountKey and identity keypair are re-sealed under it, and the new
// login pubkey is authenticated by a signature from the OLD login key
// over a freshly fetched challenge (proving the caller still controls
// the account). On success the new main key replaces the old one in
// memory.
func (a *Account) ChangePassword(ctx context.Context, newPassword string) error {
	a.mu.RLock()
	mainKey, version, username := a.mainKey, a.version, a.user.Username
	a.mu.RUnlock()
	if version < 0 {
		return errs.New(errs.Programming, "account is logged out")
	}

	challenge, err := a.be.LoginChallenge(ctx, username)
	if err != nil {
		return err
	}

	oldMainMgr := keymanager.NewMainCryptoManager(mainKey, version)
	oldLoginMgr, err := oldMainMgr.DeriveLogin()
	if err != nil {
		return err
	}

	a.mu.RLock()
	accountKey, identity, err := a.decryptContentWith(oldMainMgr)
	a.mu.RUnlock()
	if err != nil {
		return err
	}
	defer zero(accountKey)

	newSalt, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return err
	}
	newMainKey := crypto.DeriveMainKey(newPassword, newSalt, argon2Params(a.cfg))
	newMainMgr := keymanager.NewMainCryptoManager(newMainKey, version)
	newLoginMgr, err := newMainMgr.DeriveLogin()
	if err != nil {
		return err
	}

	plaintext := make([]byte, 0, crypto.KeySize+len(identity.MarshalPrivate()))
	plaintext = append(plaintext, accountKey...)
	plaintext = append(plaintext, identity.MarshalPrivate()...)
	newEncryptedContent, err := newMainMgr.EncryptContent(plaintext)
	zero(plaintext)
	if err != nil {
		return err
	}

	host, err := hostOf(a.serverURL)
	if err != nil {
		return err
	}
	signed, err := json.Marshal(loginChallengeResponse{
		Username:  username,
		Challenge: challenge.Challenge,
		Host:      host,
		Action:    "changePassword",
	})
	if err != nil {
		return fmt.Errorf("synccore: encode challenge response: %w", err)
	}

	err = a.be.ChangePassword(ctx, backend.ChangePasswordRequest{
		LoginResponse: backend.LoginResponse{
			Username:  username,
			Challenge: challenge.Challenge,
			Host:      host,
			Action:    "changePassword",
		},
		Signature:           oldLoginMgr.Sign(signed),
		NewSalt:              newSalt,
		NewLoginPubkey:       newLoginMgr.PublicKey(),
		NewEncryptedContent:  newEncryptedContent,
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	zero(a.mainKey)
	a.mainKey = newMainKey
	a.user.Salt = newSalt
	a.user.LoginPubkey = newLoginMgr.PublicKey()
	a.user.EncryptedContent = newEncryptedContent
	a.accountMgr = nil
	a.identityMgr = nil
	return nil
}

// accountCryptoManager lazily decrypts and caches the account's
// AccountCryptoManager. Invalidated by Logout and ChangePassword.
func (a *Account) accountCryptoManager() (*keymanager.AccountCryptoManager, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.version < 0 {
		return nil, errs.New(errs.Programming, "account is logged out")
	}
	if a.accountMgr != nil {
		return a.accountMgr, nil
	}

	mainMgr := keymanager.NewMainCryptoManager(a.mainKey, a.version)
	accountKey, identity, err := a.decryptContentWith(mainMgr)
	if err != nil {
		return nil, err
	}
	a.accountMgr = keymanager.NewAccountCryptoManager(accountKey)
	if a.identityMgr == nil {
		a.identityMgr = keymanager.NewIdentityCryptoManager(identity)
	}
	return a.accountMgr, nil
}

// identityCryptoManager lazily decrypts and caches the account's
// IdentityCryptoManager. Invalidated by Logout and ChangePassword.
func (a *Account) identityCryptoManager() (*keymanager.IdentityCryptoManager, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.version < 0 {
		return nil, errs.New(errs.Programming, "account is logged out")
	}
	if a.identityMgr != nil {
		return a.identityMgr, nil
	}

	mainMgr := keymanager.NewMainCryptoManager(a.mainKey, a.version)
	accountKey, identity, err := a.decryptContentWith(mainMgr)
	if err != nil {
		return nil, err
	}
	a.identityMgr = keymanager.NewIdentityCryptoManager(identity)
	if a.accountMgr == nil {
		a.accountMgr = keymanager.NewAccountCryptoManager(accountKey)
	}
	return a.identityMgr, nil
}

// decryptContentWith opens the account's encryptedContent blob under
// mainMgr and splits it into the plaintext accountKey and identity
// keypair. The caller must hold a.mu.
func (a *Account) decryptContentWith(mainMgr *keymanager.MainCryptoManager) ([]byte, keymanager.IdentityKeyPair, error) {
	plaintext, err := mainMgr.DecryptContent(a.user.EncryptedContent)
	if err != nil {
		return nil, keymanager.IdentityKeyPair{}, err
	}
	defer zero(plaintext)

	if len(plaintext) <= crypto.KeySize {
		return nil, keymanager.IdentityKeyPair{}, errs.New(errs.Integrity, "malformed encryptedContent")
	}
	accountKey := append([]byte(nil), plaintext[:crypto.KeySize]...)
	identity, err := keymanager.UnmarshalIdentityPrivate(plaintext[crypto.KeySize:])
	if err != nil {
		return nil, keymanager.IdentityKeyPair{}, err
	}
	return accountKey, identity, nil
}

// Username returns the account's username, or "" if never
// authenticated.
func (a *Account) Username() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user.Username
}

// Collections returns a manager for the account's collections.
func (a *Account) Collections() *CollectionManager {
	return &CollectionManager{account: a}
}

// Invitations returns a manager for invitations sent to and from the
// account.
func (a *Account) Invitations() *InvitationManager {
	return &InvitationManager{account: a}
}

// persistedAccount is the wire shape of [Account.Save] / [Account.Load]:
// the exact fields spec.md's persisted-state contract names.
type persistedAccount struct {
	Version   int                 `msgpack:"version"`
	MainKey   []byte              `msgpack:"mainKey"`
	User      backend.UserProfile `msgpack:"user"`
	ServerURL string              `msgpack:"serverUrl"`
	AuthToken string              `msgpack:"authToken"`
}

// Save serializes the account's session state as an opaque blob the
// application can persist and later restore with Load.
func (a *Account) Save() ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return models.Marshal(persistedAccount{
		Version:   a.version,
		MainKey:   a.mainKey,
		User:      a.user,
		ServerURL: a.serverURL,
		AuthToken: a.authToken,
	})
}

// Load restores session state previously produced by Save, discarding
// any cached crypto managers so they are re-derived on first use.
func (a *Account) Load(data []byte) error {
	var p persistedAccount
	if err := models.Unmarshal(data, &p); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.version = p.Version
	a.mainKey = p.MainKey
	a.user = p.User
	a.serverURL = p.ServerURL
	a.authToken = p.AuthToken
	a.accountMgr = nil
	a.identityMgr = nil
	a.be.SetToken(p.AuthToken)
	return nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
