package arena

// Mark is an opaque checkpoint into an arena: the identity of the chunk
// that was head when the mark was taken, plus its used offset at that
// moment. A Mark owns nothing and stays valid only while its chunk
// remains part of the arena; ResetKeepHead, Trim, ReleaseTo, and
// Release can all invalidate outstanding marks.
type Mark struct {
	chunkID uint64
	used    uintptr
}

// Mark captures the arena's current allocation position in O(1),
// without allocating or mutating anything. Pass the result to
// ReleaseTo to roll back every allocation made after this point.
func (a *Arena) Mark() Mark {
	a.panicIfReleased()
	h := a.chunks[len(a.chunks)-1]
	return Mark{chunkID: h.id, used: h.used}
}

// ReleaseTo rewinds the arena to the state captured by m: every chunk
// created after the marked chunk is freed, the marked chunk becomes
// head again, and its used counter is restored to the marked offset.
// Allocations made before the mark are untouched, which gives LIFO
// scoped allocation even when the transient work spilled into new
// chunks.
//
// A mark whose chunk has since been pruned (by ResetKeepHead, Trim, a
// wider ReleaseTo, or Release), or a mark taken from a different
// arena, is a programming error and panics rather than corrupting the
// chain. Chunk ids are never reused, so stale marks cannot alias a
// live chunk.
func (a *Arena) ReleaseTo(m Mark) {
	a.panicIfReleased()
	for i := len(a.chunks) - 1; i >= 0; i-- {
		c := a.chunks[i]
		if c.id != m.chunkID {
			continue
		}
		for j := i + 1; j < len(a.chunks); j++ {
			a.chunks[j] = nil
		}
		a.chunks = a.chunks[:i+1]
		c.used = m.used
		return
	}
	panic("arena: ReleaseTo with stale mark")
}
