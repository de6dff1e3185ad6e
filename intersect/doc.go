// Package intersect computes the all-pairs popcount-of-intersection sum
// over a fixed collection of equal-width bitmap vectors:
//
//	S = Σ_{i<j} popcount(B_i AND B_j)
//
// # Core
//
// The two reductions, [Intersect] and [IntersectSparse], plus their
// block-size-explicit twins [IntersectBlocked] and
// [IntersectSparse]'s internal blocked driver, are synchronous and
// single-threaded; buffers are owned by the caller and must remain
// valid and unchanged for the duration of the call. They are not
// allocation-free: the 128/256/512-bit Harley-Seal kernels allocate
// their accumulator registers on the heap on every pair whose vectors
// span at least one 16-lane chunk. [QueryAlignment] and [AllocAligned]
// help a caller lay out those buffers; [EnumerateSetBits] derives the
// position lists [IntersectSparse] needs from a dense vector. There is
// no persistence, no I/O, and no recoverable error path — malformed
// input (misaligned buffers, unsorted position lists) is undefined
// behavior, and no build of the package checks for it.
//
// # Ambient
//
// CPU feature detection ([DetectCapabilities]) is cached process-wide
// after first use; every other piece of state is caller-supplied.
// Logging, CLI flags, and benchmark harnesses live outside this
// package, in cmd/intersectbench and internal/obslog — this package
// never writes to a log or a file.
package intersect
