package crypto

// Zero overwrites b with zero bytes in place. Every secret byte slice in
// the key hierarchy — main keys, account keys, collection keys, item
// keys, identity private keys — must be passed through Zero before its
// owner drops its last reference, per the zero-on-drop resource policy.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
