// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import (
	"bytes"
	"context"

	"github.com/vaultmesh/synccore/internal/backend"
	"github.com/vaultmesh/synccore/internal/errs"
	"github.com/vaultmesh/synccore/internal/models"
)

// InvitationManager sends, lists, and resolves offers of collection
// access between accounts.
type InvitationManager struct {
	account *Account
}

// ListIncoming pages through invitations addressed to the account.
func (m *InvitationManager) ListIncoming(ctx context.Context, opts ListOptions) (InvitationPage, error) {
	resp, err := m.account.be.ListIncomingInvitations(ctx, opts.toBackend())
	if err != nil {
		return InvitationPage{}, err
	}
	return InvitationPage{Invitations: resp.Data, IteratorToken: resp.IteratorToken}, nil
}

// ListOutgoing pages through invitations the account has sent.
func (m *InvitationManager) ListOutgoing(ctx context.Context, opts ListOptions) (InvitationPage, error) {
	resp, err := m.account.be.ListOutgoingInvitations(ctx, opts.toBackend())
	if err != nil {
		return InvitationPage{}, err
	}
	return InvitationPage{Invitations: resp.Data, IteratorToken: resp.IteratorToken}, nil
}

// Invite offers col at level to toUsername. The caller must already
// know the recipient's public identity out of band (e.g. from a
// prior directory lookup); Invite independently fetches the
// recipient's profile from the server and fails with
// [ErrProgramming] if the server-reported identity pubkey does not
// match toPubkey, guarding against a server substituting a different
// recipient.
func (m *InvitationManager) Invite(ctx context.Context, col *Collection, toUsername string, toPubkey []byte, level AccessLevel) error {
	profile, err := m.account.be.FetchUserProfile(ctx, toUsername)
	if err != nil {
		return err
	}
	if !bytes.Equal(profile.IdentityPubkey, toPubkey) {
		return errs.New(errs.Programming, "recipient identity pubkey does not match the server-reported profile")
	}

	identityMgr, err := m.account.identityCryptoManager()
	if err != nil {
		return err
	}
	accountMgr, err := m.account.accountCryptoManager()
	if err != nil {
		return err
	}

	inv, err := models.CreateInvitation(models.NewUIDGenerator(), accountMgr, identityMgr, col.enc, m.account.Username(), toUsername, toPubkey, level.toModels())
	if err != nil {
		return err
	}
	return m.account.be.CreateInvitation(ctx, col.enc.UID, inv)
}

// Accept verifies inv's sender against the server-reported profile
// for FromUsername, decrypts and re-seals the collection key under
// the account, and reports acceptance to the server. Fails with
// [ErrIntegrity] if the sender signature does not verify.
func (m *InvitationManager) Accept(ctx context.Context, inv Invitation) error {
	profile, err := m.account.be.FetchUserProfile(ctx, inv.FromUsername)
	if err != nil {
		return err
	}
	if err := inv.VerifySender(profile.IdentityPubkey); err != nil {
		return err
	}

	identityMgr, err := m.account.identityCryptoManager()
	if err != nil {
		return err
	}
	accountMgr, err := m.account.accountCryptoManager()
	if err != nil {
		return err
	}

	resealedKey, err := inv.Accept(identityMgr, accountMgr)
	if err != nil {
		return err
	}
	return m.account.be.AcceptInvitation(ctx, inv.UID, backend.AcceptInvitationRequest{
		CollectionKey:  resealedKey,
		CollectionType: inv.CollectionType,
	})
}

// Reject deletes a pending invitation without accepting it.
func (m *InvitationManager) Reject(ctx context.Context, invitationUID string) error {
	return m.account.be.RejectInvitation(ctx, invitationUID)
}
