package arena

import (
	"runtime"
	"sync"
)

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafe(chunkSize int) *SafeArena {
	return &SafeArena{a: New(chunkSize)}
}

// AllocBytes thread-safely allocates n bytes and returns a slice pointing to them.
// Returns nil if n <= 0.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// AllocBytesZeroed thread-safely allocates n zeroed bytes.
func (s *SafeArena) AllocBytesZeroed(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytesZeroed(n)
}

// AllocStringBytes thread-safely copies s into the arena.
func (s *SafeArena) AllocStringBytes(str string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocStringBytes(str)
}

// EnsureCapacity thread-safely ensures the head chunk has at least n free bytes.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely resets allocation offsets to zero for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// ResetKeepHead thread-safely frees all chunks but the head.
func (s *SafeArena) ResetKeepHead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.ResetKeepHead()
}

// Trim thread-safely frees every chunk beyond the keep newest ones.
func (s *SafeArena) Trim(keep int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Trim(keep)
}

// Mark thread-safely captures the arena's current allocation position.
// The mark is only meaningful to this SafeArena's ReleaseTo; callers
// still need to serialize their own mark/release pairs, since another
// goroutine allocating between Mark and ReleaseTo will have its memory
// rolled back too.
func (s *SafeArena) Mark() Mark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Mark()
}

// ReleaseTo thread-safely rewinds the arena to a previously taken mark.
func (s *SafeArena) ReleaseTo(m Mark) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.ReleaseTo(m)
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a T stored inside the arena with zeroed memory.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements with zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafeAllocString thread-safely copies s into the arena and returns an
// arena-backed string.
func SafeAllocString(s *SafeArena, str string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocString(s.a, str)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive on the arena.
func SafePtrAndKeepAlive[T any](s *SafeArena, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
