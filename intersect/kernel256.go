package intersect

// kernel256 is the portable 256-bit dense kernel: Harley-Seal with a
// 4-word (256-bit) lane. spec.md §9 notes the original C popcnt256
// helper uses a nibble-SAD trick to sum per-byte popcounts within a
// register; the portable path here gets the same lane-wise popcount
// via bits.OnesCount64 directly (see harleyseal.go popcountWords),
// which the spec explicitly allows ("agnostic to the particular
// trick").
func kernel256(a, b []uint64) uint64 {
	return harleySeal(a, b, 4)
}
