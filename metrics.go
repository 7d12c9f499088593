package arena

// SizeInUse returns the total number of bytes currently allocated in the
// arena, across all chunks. This includes internal fragmentation due to
// alignment.
func (a *Arena) SizeInUse() int {
	if a == nil || a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.used)
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena) NumChunks() int {
	if a == nil {
		return 0
	}
	return len(a.chunks)
}

// HeadUsed returns the number of bytes consumed in the head chunk.
func (a *Arena) HeadUsed() int {
	if a == nil || a.chunks == nil {
		return 0
	}
	return int(a.chunks[len(a.chunks)-1].used)
}

// HeadCapacity returns the capacity in bytes of the head chunk.
func (a *Arena) HeadCapacity() int {
	if a == nil || a.chunks == nil {
		return 0
	}
	return len(a.chunks[len(a.chunks)-1].buf)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	if a == nil || a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	if a == nil {
		return 0
	}
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:    a.SizeInUse(),
		Capacity:     a.Capacity(),
		NumChunks:    a.NumChunks(),
		ChunkSize:    a.ChunkSize(),
		HeadUsed:     a.HeadUsed(),
		HeadCapacity: a.HeadCapacity(),
		Utilization:  a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse    int     // Bytes currently allocated across all chunks
	Capacity     int     // Total capacity in bytes
	NumChunks    int     // Number of chunks
	ChunkSize    int     // Default chunk size
	HeadUsed     int     // Bytes consumed in the head chunk
	HeadCapacity int     // Capacity of the head chunk
	Utilization  float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the total number of bytes currently allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks currently held.
func (s *SafeArena) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// HeadUsed thread-safely returns the bytes consumed in the head chunk.
func (s *SafeArena) HeadUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.HeadUsed()
}

// HeadCapacity thread-safely returns the head chunk's capacity.
func (s *SafeArena) HeadCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.HeadCapacity()
}

// Capacity thread-safely returns the total capacity of all chunks.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Utilization thread-safely returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// ChunkSize thread-safely returns the default chunk size.
func (s *SafeArena) ChunkSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ChunkSize()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
