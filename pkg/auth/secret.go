package auth

import (
	"sync/atomic"
)

// Secret holds the shared key used to authenticate webhook deliveries.
// It is designed to be shared by reference across all verifications for
// the lifetime of the serving process. As it contains secret material
// care must be taken when using it.
//
// The stored key bytes are immutable. Rotate swaps the entire reference
// atomically, so concurrent verifications never observe a partially
// written key; each call sees either the old key or the new one.
type Secret struct {
	key atomic.Pointer[[]byte]
}

// NewSecret creates a Secret holding a copy of key.
func NewSecret(key []byte) *Secret {
	s := &Secret{}
	s.Rotate(key)
	return s
}

// NewSecretString creates a Secret from the UTF-8 bytes of key.
func NewSecretString(key string) *Secret {
	return NewSecret([]byte(key))
}

// Bytes returns the current key. The returned slice must not be modified.
func (s *Secret) Bytes() []byte {
	return *s.key.Load()
}

// Rotate replaces the key with a copy of the given bytes. In-flight
// verifications keep the key they already loaded.
func (s *Secret) Rotate(key []byte) {
	copied := make([]byte, len(key))
	copy(copied, key)
	s.key.Store(&copied)
}
