package vortex

import "github.com/google/uuid"

// NewPointID generates a random point identifier.
func NewPointID() string {
	return uuid.NewString()
}

// Bool returns a pointer to v, for optional request fields like waitFlush.
func Bool(v bool) *bool {
	return &v
}

// Uint32 returns a pointer to v.
func Uint32(v uint32) *uint32 {
	return &v
}

// Uint64 returns a pointer to v.
func Uint64(v uint64) *uint64 {
	return &v
}

// derefString safely dereferences a *string pointer.
// If the pointer is nil, it returns "" instead of panicking.
func derefString(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}
