//go:build amd64

package intersect

import "golang.org/x/sys/cpu"

// detectCapabilities queries golang.org/x/sys/cpu, which itself folds
// in the OS-saved-state (XCR0/XGETBV) checks that spec.md §4.1
// describes doing by hand: cpu.X86.HasAVX2 and cpu.X86.HasAVX512* are
// only set once the OS has confirmed it saves/restores the relevant
// register state, so there is no separate XCR0 probe here.
func detectCapabilities() Capabilities {
	var caps Capabilities
	if cpu.X86.HasPOPCNT {
		caps |= CapPOPCNT
	}
	if cpu.X86.HasSSE41 && cpu.X86.HasSSE42 {
		caps |= CapPacked128
	}
	if cpu.X86.HasAVX2 {
		caps |= CapPacked256
	}
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL {
		caps |= CapPacked512BW
	}
	return caps
}
