//go:build !amd64

package intersect

// detectCapabilities returns 0 (scalar only) on architectures without
// a packed-SIMD popcount path implemented.
func detectCapabilities() Capabilities {
	return 0
}
