package arena

import (
	"testing"
	"unsafe"
)

type testStruct struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAlloc(t *testing.T) {
	a := New(1024)

	// Test basic allocation
	ptr := Alloc[int](a)
	if ptr == nil {
		t.Fatal("Alloc[int] returned nil")
	}
	if *ptr != 0 {
		t.Errorf("Alloc[int] value = %d, want 0 (zeroed)", *ptr)
	}

	// Test struct allocation
	s := Alloc[testStruct](a)
	if s == nil {
		t.Fatal("Alloc[testStruct] returned nil")
	}
	if s.a != 0 || s.b != 0 || s.c != 0 || s.d != 0 {
		t.Errorf("Alloc[testStruct] not properly zeroed: %+v", *s)
	}

	// Verify we can write to allocated memory
	*ptr = 42
	s.a = 100
	if *ptr != 42 || s.a != 100 {
		t.Error("Could not write to allocated memory")
	}
}

func TestAllocZeroedAfterReuse(t *testing.T) {
	a := New(1024)

	// Dirty the chunk, reset, and verify Alloc still hands out zeroed memory.
	dirty := Alloc[int64](a)
	*dirty = -1
	a.Reset()

	ptr := Alloc[int64](a)
	if *ptr != 0 {
		t.Errorf("Alloc[int64] after Reset = %d, want 0", *ptr)
	}
}

func TestAllocUninitialized(t *testing.T) {
	a := New(1024)
	ptr := AllocUninitialized[int](a)

	if ptr == nil {
		t.Fatal("AllocUninitialized[int] returned nil")
	}

	// We can't test the value since it's uninitialized,
	// but we can verify we can write to it
	*ptr = 123
	if *ptr != 123 {
		t.Error("Could not write to uninitialized memory")
	}
}

func TestAllocSlice(t *testing.T) {
	a := New(1024)

	// Test normal slice allocation
	slice := AllocSlice[int](a, 10)
	if len(slice) != 10 {
		t.Errorf("AllocSlice[int](10) length = %d, want 10", len(slice))
	}
	if cap(slice) != 10 {
		t.Errorf("AllocSlice[int](10) capacity = %d, want 10", cap(slice))
	}

	// Test zero size
	empty := AllocSlice[int](a, 0)
	if empty != nil {
		t.Errorf("AllocSlice[int](0) = %v, want nil", empty)
	}

	// Test negative size
	negative := AllocSlice[int](a, -1)
	if negative != nil {
		t.Errorf("AllocSlice[int](-1) = %v, want nil", negative)
	}

	// Verify we can write to slice
	for i := range slice {
		slice[i] = i * 2
	}
	for i, v := range slice {
		if v != i*2 {
			t.Errorf("slice[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestAllocSliceZeroed(t *testing.T) {
	a := New(1024)

	// Dirty, reset, and reallocate to exercise the zeroing path.
	first := AllocSlice[byte](a, 64)
	for i := range first {
		first[i] = 0xAB
	}
	a.Reset()

	slice := AllocSliceZeroed[byte](a, 64)
	for i, v := range slice {
		if v != 0 {
			t.Fatalf("AllocSliceZeroed byte %d = %#x, want 0", i, v)
		}
	}
}

func TestAllocString(t *testing.T) {
	a := New(1024)

	src := "hello, arena"
	dup := AllocString(a, src)
	if dup != src {
		t.Errorf("AllocString = %q, want %q", dup, src)
	}

	// The copy must be backed by arena memory, not the source string.
	if unsafe.StringData(dup) == unsafe.StringData(src) {
		t.Error("AllocString did not copy the source")
	}
	if a.SizeInUse() == 0 {
		t.Error("AllocString did not consume arena memory")
	}

	// Empty string is a no-op
	before := a.SizeInUse()
	if got := AllocString(a, ""); got != "" {
		t.Errorf("AllocString(\"\") = %q, want \"\"", got)
	}
	if a.SizeInUse() != before {
		t.Error("AllocString(\"\") consumed arena memory")
	}
}

func TestAllocStringBytes(t *testing.T) {
	a := New(1024)

	b := a.AllocStringBytes("mutable copy")
	if string(b) != "mutable copy" {
		t.Errorf("AllocStringBytes = %q, want %q", b, "mutable copy")
	}

	// The copy is independently mutable.
	b[0] = 'M'
	if string(b) != "Mutable copy" {
		t.Errorf("mutated copy = %q, want %q", b, "Mutable copy")
	}

	if a.AllocStringBytes("") != nil {
		t.Error("AllocStringBytes(\"\") should return nil")
	}
}

func TestAllocZeroSizedType(t *testing.T) {
	a := New(1024)
	before := a.SizeInUse()

	p := Alloc[struct{}](a)
	if p == nil {
		t.Fatal("Alloc[struct{}] returned nil")
	}
	if a.SizeInUse() != before {
		t.Error("zero-sized allocation consumed arena memory")
	}
}

func TestPtrAndKeepAlive(t *testing.T) {
	a := New(1024)
	ptr := Alloc[int](a)
	*ptr = 7

	got := PtrAndKeepAlive(a, ptr)
	if got != ptr || *got != 7 {
		t.Error("PtrAndKeepAlive should return the same pointer")
	}
}

func BenchmarkAlloc(b *testing.B) {
	a := New(1024 * 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Alloc[testStruct](a)
		if i%1000 == 999 {
			a.Reset()
		}
	}
}

func BenchmarkAllocString(b *testing.B) {
	a := New(1024 * 1024)
	src := "a reasonably sized string for duplication"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AllocString(a, src)
		if i%1000 == 999 {
			a.Reset()
		}
	}
}
