package intersect

// kernel128 is the portable (non-archsimd) 128-bit dense kernel: the
// Harley-Seal reduction of harleyseal.go with a 2-word (128-bit) lane.
// On amd64 with GOEXPERIMENT=simd, kernel128Hardware in
// kernel_archsimd_amd64.go may replace this in denseKernelTable.
func kernel128(a, b []uint64) uint64 {
	return harleySeal(a, b, 2)
}
