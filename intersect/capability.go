package intersect

import "sync"

// Capabilities is a process-wide immutable bitmask of SIMD feature
// flags the current CPU (and OS) support. It is computed at most once
// per process; concurrent first callers all observe the same value.
type Capabilities uint32

// Flag bits returned by [DetectCapabilities]. Only flags that survive
// both the CPUID query and the OS extended-state check are set.
const (
	CapPOPCNT Capabilities = 1 << iota
	CapPacked128
	CapPacked256
	CapPacked512BW
)

// Has reports whether every bit in want is set in c.
func (c Capabilities) Has(want Capabilities) bool {
	return c&want == want
}

func (c Capabilities) String() string {
	if c == 0 {
		return "scalar"
	}
	s := ""
	add := func(flag Capabilities, name string) {
		if c.Has(flag) {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add(CapPOPCNT, "POPCNT")
	add(CapPacked128, "PACKED_128")
	add(CapPacked256, "PACKED_256")
	add(CapPacked512BW, "PACKED_512_BW")
	return s
}

var (
	detectOnce   sync.Once
	detectResult Capabilities
)

// DetectCapabilities returns the cached capability bitmask for the
// current process, computing it on the first call. The computation is
// idempotent: every caller, racing or not, observes the identical bit
// pattern once the first call completes. The underlying probe is
// architecture-specific (see capability_amd64.go / capability_other.go).
func DetectCapabilities() Capabilities {
	detectOnce.Do(func() {
		detectResult = detectCapabilities()
	})
	return detectResult
}
