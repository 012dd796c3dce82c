// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package synccore

import "context"

// MemberManager administers membership on a [Collection] that has
// already been shared with at least one other account.
type MemberManager struct {
	collection *Collection
}

// List pages through the collection's members.
func (m *MemberManager) List(ctx context.Context, opts ListOptions) (MemberPage, error) {
	resp, err := m.collection.account.be.ListMembers(ctx, m.collection.enc.UID, opts.toBackend())
	if err != nil {
		return MemberPage{}, err
	}
	return MemberPage{Members: resp.Data, IteratorToken: resp.IteratorToken}, nil
}

// Remove revokes username's access. Fails with [ErrPermissionDenied]
// if the caller is not an admin.
func (m *MemberManager) Remove(ctx context.Context, username string) error {
	return m.collection.account.be.RemoveMember(ctx, m.collection.enc.UID, username)
}

// ModifyAccessLevel changes username's access level. Fails with
// [ErrPermissionDenied] if the caller is not an admin.
func (m *MemberManager) ModifyAccessLevel(ctx context.Context, username string, level AccessLevel) error {
	return m.collection.account.be.ModifyMemberAccessLevel(ctx, m.collection.enc.UID, username, level.toModels())
}

// Leave removes the caller's own membership.
func (m *MemberManager) Leave(ctx context.Context) error {
	return m.collection.account.be.LeaveCollection(ctx, m.collection.enc.UID)
}
