// Package arena provides a monotonic bump allocator shared by the
// long-lived node pools (AST, type descriptors, symbols).
package arena

// blockSize is the size of each underlying allocation chunk. Requests
// larger than this get their own dedicated chunk.
const blockSize = 64 * 1024

// minAlign is the minimum alignment, in bytes, of any allocation.
const minAlign = 8

// Arena is a bump allocator. It never frees individual objects; Reset
// releases everything at once. The zero value is an empty arena ready
// for use, the same as New returns.
type Arena struct {
	blocks [][]byte
	cur    []byte
	used   int
}

// New creates an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Alloc returns a zeroed, 8-byte-aligned region of size bytes. Allocation
// never fails from the caller's point of view: if the process is unable
// to grow the heap, Go's runtime itself terminates the process, which is
// the fatal behavior spec'd for this allocator.
func (a *Arena) Alloc(size int) []byte {
	if size == 0 {
		return nil
	}
	if size > blockSize {
		return make([]byte, size)
	}
	if a.cur == nil || a.used+size > len(a.cur) {
		a.cur = make([]byte, blockSize)
		a.blocks = append(a.blocks, a.cur)
		a.used = 0
	}
	aligned := (a.used + minAlign - 1) &^ (minAlign - 1)
	if aligned+size > len(a.cur) {
		a.cur = make([]byte, blockSize)
		a.blocks = append(a.blocks, a.cur)
		a.used = 0
		aligned = 0
	}
	region := a.cur[aligned : aligned+size]
	a.used = aligned + size
	return region
}

// Reset releases all memory allocated by the arena at once.
func (a *Arena) Reset() {
	a.blocks = nil
	a.cur = nil
	a.used = 0
}

// Bytes reports the total number of bytes currently backing the arena's
// allocated blocks (for diagnostics/tests, not part of the core contract).
func (a *Arena) Bytes() int {
	total := 0
	for _, b := range a.blocks {
		total += len(b)
	}
	return total
}
