// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaultmesh/synccore/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.URL = "https://sync.example.com"
	return cfg
}

func newTestAccount(be *fakeBackend) *Account {
	return NewAccount(testConfig(), be, nil, "https://sync.example.com")
}

func TestAccount_SignupThenLogin(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()

	signer := newTestAccount(be)
	require.NoError(t, signer.Signup(ctx, "alice", "correct horse battery staple"))
	require.Equal(t, "alice", signer.Username())

	logger := newTestAccount(be)
	require.NoError(t, logger.Login(ctx, "alice", "correct horse battery staple"))
	require.Equal(t, "alice", logger.Username())
}

func TestAccount_LoginWrongPasswordFailsUnauthorized(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()

	require.NoError(t, newTestAccount(be).Signup(ctx, "alice", "correct horse battery staple"))

	attacker := newTestAccount(be)
	err := attacker.Login(ctx, "alice", "wrong password entirely")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAccount_LoginUnknownUserFailsNotFound(t *testing.T) {
	be := newFakeBackend()
	acct := newTestAccount(be)
	err := acct.Login(context.Background(), "nobody", "whatever")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAccount_FetchTokenRefreshesWithoutPassword(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := newTestAccount(be)
	require.NoError(t, acct.Signup(ctx, "alice", "correct horse battery staple"))

	require.NoError(t, acct.FetchToken(ctx))
	require.Equal(t, "alice", acct.Username())
}

func TestAccount_LogoutThenFetchTokenFailsProgramming(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := newTestAccount(be)
	require.NoError(t, acct.Signup(ctx, "alice", "correct horse battery staple"))

	require.NoError(t, acct.Logout(ctx))
	err := acct.FetchToken(ctx)
	require.ErrorIs(t, err, ErrProgramming)
}

func TestAccount_ChangePassword_OldPasswordNoLongerWorks(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := newTestAccount(be)
	require.NoError(t, acct.Signup(ctx, "alice", "correct horse battery staple"))

	require.NoError(t, acct.ChangePassword(ctx, "new stronger passphrase"))

	stale := newTestAccount(be)
	err := stale.Login(ctx, "alice", "correct horse battery staple")
	require.ErrorIs(t, err, ErrUnauthorized)

	fresh := newTestAccount(be)
	require.NoError(t, fresh.Login(ctx, "alice", "new stronger passphrase"))
}

func TestAccount_ChangePassword_CollectionsSurviveRekey(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := newTestAccount(be)
	require.NoError(t, acct.Signup(ctx, "alice", "correct horse battery staple"))

	col, err := acct.Collections().Create(ctx, "addressbook", Meta{Name: "Contacts"}, nil)
	require.NoError(t, err)
	require.NoError(t, acct.Collections().Upload(ctx, col, UploadOptions{}))

	require.NoError(t, acct.ChangePassword(ctx, "new stronger passphrase"))

	fresh := newTestAccount(be)
	require.NoError(t, fresh.Login(ctx, "alice", "new stronger passphrase"))

	fetched, err := fresh.Collections().Fetch(ctx, col.UID(), FetchOptions{})
	require.NoError(t, err)
	meta, err := fetched.Meta()
	require.NoError(t, err)
	require.Equal(t, "Contacts", meta.Name)
}

func TestAccount_SaveLoad_RoundTrips(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	acct := newTestAccount(be)
	require.NoError(t, acct.Signup(ctx, "alice", "correct horse battery staple"))

	blob, err := acct.Save()
	require.NoError(t, err)

	restored := NewAccount(testConfig(), be, nil, "https://sync.example.com")
	require.NoError(t, restored.Load(blob))
	require.Equal(t, "alice", restored.Username())

	col, err := restored.Collections().Create(ctx, "addressbook", Meta{Name: "Contacts"}, nil)
	require.NoError(t, err)
	require.NoError(t, restored.Collections().Upload(ctx, col, UploadOptions{}))
}

func TestAccount_SignupDuplicateUsernameFailsConflict(t *testing.T) {
	ctx := context.Background()
	be := newFakeBackend()
	require.NoError(t, newTestAccount(be).Signup(ctx, "alice", "correct horse battery staple"))

	err := newTestAccount(be).Signup(ctx, "alice", "another password")
	require.ErrorIs(t, err, ErrConflict)
}
