package arena

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a T stored inside the arena with zeroed memory.
// The returned pointer is valid until the region is reclaimed.
func Alloc[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return &zero
	}
	b := a.AllocBytes(size)
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. Faster than Alloc, but after a Reset the contents are whatever
// the previous cycle left behind. Ensure proper initialization before use.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return &zero
	}
	b := a.AllocBytes(size)
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b := a.AllocBytes(elemSize * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	if s != nil {
		clear(s)
	}
	return s
}

// AllocString copies s into the arena and returns a string backed by
// arena memory; the source is never retained. The copy shares the
// arena's lifetime, so it must not be used after the next reclamation
// of its region. The empty string is a no-op and is returned as-is
// without touching the arena.
func AllocString(a *Arena, s string) string {
	if len(s) == 0 {
		return ""
	}
	b := a.AllocBytes(len(s))
	if b == nil {
		return ""
	}
	copy(b, s)
	return unsafe.String(&b[0], len(b))
}

// AllocStringBytes is AllocString returning the copy as a mutable
// []byte instead of a string. Returns nil for the empty string.
func (a *Arena) AllocStringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	b := a.AllocBytes(len(s))
	if b != nil {
		copy(b, s)
	}
	return b
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// This is useful to prevent the arena from being garbage collected
// while the pointer is still in use in unsafe code.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
