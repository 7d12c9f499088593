// Package arena implements a chunked bump allocator (memory arena).
// Typical usage: create one arena per request or per frame, allocate many
// temporary objects from it, then Reset() at the end of the cycle for
// cheap bulk cleanup. Mark/ReleaseTo add stack-disciplined checkpoints on
// top of that: snapshot the arena, do transient work, roll back.
package arena

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// Alignment is the boundary every address returned by the arena is
// aligned to: natural pointer alignment for the target architecture.
const Alignment = unsafe.Sizeof(uintptr(0))

// chunk is a single contiguous buffer within an arena. Chunk ids are
// monotonically increasing per arena and never reused, which is what
// lets ReleaseTo detect marks into chunks that no longer exist.
type chunk struct {
	buf  []byte  // backing memory; capacity is len(buf)
	used uintptr // bytes consumed from the start of buf
	id   uint64
}

// Arena is a chunked bump allocator. The last element of chunks is the
// head chunk: the one currently receiving allocations. Not goroutine-safe;
// use SafeArena for concurrent access.
type Arena struct {
	chunks    []*chunk
	chunkSize int
	nextID    uint64
}

// New creates an Arena with a single chunk of chunkSize bytes.
// If chunkSize <= 0, DefaultChunkSize is used.
func New(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// AllocBytes returns a []byte slice of n bytes pointing into the arena's
// head chunk, creating a new head chunk when the current one lacks room.
// The slice is valid until the region is reclaimed (Reset, ResetKeepHead,
// Trim, ReleaseTo, or Release). The memory is not zeroed when the chunk
// is being reused after a Reset; use AllocBytesZeroed for that.
// Returns nil without side effects if a is nil or n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if a == nil || n <= 0 {
		return nil
	}
	a.panicIfReleased()

	size := alignUp(uintptr(n))
	c := a.chunks[len(a.chunks)-1]
	if c.used+size > uintptr(len(c.buf)) {
		c = a.grow(int(size))
	}
	start := c.used
	c.used += size
	// used stays a multiple of Alignment, so start is always aligned.
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
}

// AllocBytesZeroed is AllocBytes with every byte of the result set to zero.
func (a *Arena) AllocBytesZeroed(n int) []byte {
	b := a.AllocBytes(n)
	if len(b) > 0 {
		clear(b)
	}
	return b
}

// EnsureCapacity ensures the head chunk has at least n free bytes,
// growing the arena with a new chunk if it does not.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	if n <= 0 {
		return
	}
	size := alignUp(uintptr(n))
	c := a.chunks[len(a.chunks)-1]
	if c.used+size > uintptr(len(c.buf)) {
		a.grow(int(size))
	}
}

// Reset makes every previously allocated region reusable: each chunk's
// used counter drops to zero, but no chunk is freed and the chain keeps
// its shape. Subsequent allocations bump from offset 0 of the existing
// head chunk. Intended for workloads with stable memory demand across
// repeated cycles; use ResetKeepHead to also shed chunks.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for _, c := range a.chunks {
		c.used = 0
	}
}

// ResetKeepHead frees every chunk except the head and resets the head's
// used counter to zero, leaving the arena with exactly one ready chunk.
// The footprint-reducing counterpart to Reset, for use after a spike.
func (a *Arena) ResetKeepHead() {
	a.panicIfReleased()
	h := a.chunks[len(a.chunks)-1]
	h.used = 0
	a.chunks = []*chunk{h}
}

// Trim frees every chunk beyond the keep newest ones. The retained
// chunks, including their used counters, are untouched. Trimming to
// more chunks than exist is a no-op; keep is clamped to 1 since an
// arena always has at least one chunk.
func (a *Arena) Trim(keep int) {
	a.panicIfReleased()
	if keep < 1 {
		keep = 1
	}
	n := len(a.chunks)
	if keep >= n {
		return
	}
	a.chunks = append([]*chunk(nil), a.chunks[n-keep:]...)
}

// Release drops all chunks and makes the arena unusable. Every pointer
// the arena ever returned, and every Mark taken from it, is invalid
// afterward; any subsequent operation panics.
func (a *Arena) Release() {
	a.chunks = nil
}

// grow appends a new head chunk of at least min bytes.
func (a *Arena) grow(min int) *chunk {
	size := a.chunkSize
	if min > size {
		size = min
	}
	c := &chunk{buf: make([]byte, size), id: a.nextID}
	a.nextID++
	a.chunks = append(a.chunks, c)
	return c
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

// alignUp rounds n up to the next multiple of Alignment.
func alignUp(n uintptr) uintptr {
	return (n + Alignment - 1) &^ (Alignment - 1)
}
