// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package synccore implements the client core of an end-to-end
// encrypted synchronization engine for hierarchical user data.
//
// A user holds an [Account] identified by a login key pair. The
// account owns a set of collections ([CollectionManager]), each
// holding many items ([ItemManager]). All payload is encrypted
// client-side before it ever reaches the network; the server is
// trusted only for ordering, storage, and access control over opaque
// ciphertext.
//
// The typical lifecycle is:
//
//	acct := synccore.NewAccount(cfg, be, log, serverURL)
//	if err := acct.Signup(ctx, "alice", "correct horse battery staple"); err != nil { ... }
//	cols := acct.Collections()
//	col, err := cols.Create(ctx, "addressbook", synccore.Meta{Name: "Contacts"}, nil)
//	err = cols.Upload(ctx, col, synccore.UploadOptions{})
//	items := col.Items()
//	item, err := items.Create(ctx, synccore.Meta{Name: "note.txt"}, []byte("hello"))
//	err = items.Batch(ctx, []*synccore.Item{item}, synccore.BatchOptions{})
//
// Collection sharing goes through [InvitationManager]; membership
// administration on an already-shared collection goes through
// [MemberManager].
package synccore
