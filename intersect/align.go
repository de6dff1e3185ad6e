package intersect

import "unsafe"

// QueryAlignment returns the minimum buffer alignment, in bytes,
// required by the dense kernel [selectDenseKernel] would pick for the
// current process's detected capabilities. Callers allocating a
// collection buffer should round its base address up to this
// boundary; [AllocAligned] does this for them.
func QueryAlignment() uint32 {
	caps := DetectCapabilities()
	switch {
	case caps.Has(CapPacked512BW):
		return 64
	case caps.Has(CapPacked256):
		return 32
	case caps.Has(CapPacked128):
		return 16
	default:
		return 8
	}
}

// AllocAligned returns a []uint64 of length nWords whose backing array
// starts at an address satisfying [QueryAlignment]. It is a
// convenience only — spec.md §9 is explicit that the core has no
// allocator policy of its own, so nothing inside Intersect or
// IntersectSparse ever calls this.
func AllocAligned(nWords int) []uint64 {
	align := uintptr(QueryAlignment())
	if align <= 8 {
		// 8-byte alignment is guaranteed by the Go allocator for any
		// slice of a type with 8-byte-aligned elements.
		return make([]uint64, nWords)
	}

	// Over-allocate by one alignment unit's worth of words, then slice
	// the result forward to the first aligned word. This mirrors the
	// base-pointer-plus-slack idiom used for manually-aligned buffers
	// in grailbio-base's simd package, updated to unsafe.Slice instead
	// of reflect.SliceHeader.
	slackWords := int(align / 8)
	raw := make([]uint64, nWords+slackWords)
	base := uintptr(unsafe.Pointer(&raw[0]))
	offset := (align - base%align) % align
	start := int(offset / 8)
	return raw[start : start+nWords : start+nWords]
}
