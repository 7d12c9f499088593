// Package arena implements a chunked bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocator hands out memory from large pre-allocated chunks and
// reclaims it in bulk rather than per object. This is particularly useful
// for:
//
//   - Request-scoped or frame-scoped allocations with batch cleanup
//   - Scratch storage for parsers and builders
//   - Reducing garbage collection pressure
//   - Workloads that need checkpoint/rollback over transient allocations
//
// # Basic Usage
//
//	a := arena.New(0)  // Use default chunk size
//	defer a.Release()  // Clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values and strings
//	ptr := arena.Alloc[MyStruct](a)
//	s := arena.AllocString(a, "temporary")
//
//	// Reset for reuse
//	a.Reset()
//
// # Checkpoints
//
// Mark and ReleaseTo give LIFO-disciplined scoped allocation. A caller
// snapshots the arena, performs transient work (including work that
// spills into new chunks), and rolls back to reclaim exactly what was
// consumed, leaving earlier allocations untouched:
//
//	m := a.Mark()
//	scratch := a.AllocBytes(4096)
//	// ... use scratch ...
//	a.ReleaseTo(m) // scratch is gone, everything before m survives
//
// Marks follow stack discipline: releasing a mark invalidates every mark
// taken after it. Using a mark whose chunk has been pruned (by
// ResetKeepHead, Trim, an enclosing ReleaseTo, or Release) panics.
//
// # Reclamation
//
// Four operations reclaim memory at different granularities:
//
//   - Reset: zero every chunk's used counter, free nothing. Cheapest;
//     for stable per-cycle demand.
//   - ResetKeepHead: free everything except one ready chunk. For
//     shedding footprint after a spike.
//   - Trim: free all but the n newest chunks, leaving their contents
//     intact. Fine-grained footprint control.
//   - ReleaseTo: roll back to a mark.
//
// # Thread Safety
//
// Arena is single-owner: no internal locking, and concurrent use without
// external synchronization is undefined. For shared use, SafeArena wraps
// every operation in a mutex:
//
//	s := arena.NewSafe(0)
//	defer s.Release()
//	buf := s.AllocBytes(1024)
//	ptr := arena.SafeAlloc[MyStruct](s)
//
// # Memory Layout
//
// Memory comes from chunks (default 64KB). When the head chunk fills up, a
// new chunk sized max(chunkSize, request) becomes the head, so an oversized
// request gets its own exactly-sized chunk. Within a chunk, allocation is a
// bump of the used offset, and every returned address is aligned to
// Alignment (natural pointer alignment).
//
// # Performance Characteristics
//
//   - AllocBytes and friends: O(1) amortized
//   - Mark: O(1)
//   - Reset: O(number of chunks)
//   - ResetKeepHead, Trim, ReleaseTo, Release: O(chunks freed)
//
// # Important Notes
//
//   - Allocated memory is only valid while its region is live
//   - No individual deallocation; reclamation is always bulk
//   - AllocBytes does not zero reused memory; use AllocBytesZeroed
//   - Introspection (NumChunks, HeadUsed, HeadCapacity, Metrics) lets
//     callers reason about memory pressure; the arenaprom subpackage
//     exports the same numbers as Prometheus metrics
package arena
