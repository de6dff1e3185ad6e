package intersect

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// =============================================================================
// DetectCapabilities Tests
// =============================================================================

func TestDetectCapabilitiesIdempotent(t *testing.T) {
	first := DetectCapabilities()
	for i := 0; i < 100; i++ {
		got := DetectCapabilities()
		if got != first {
			t.Fatalf("DetectCapabilities() returned %v on call %d, want %v (first call)", got, i, first)
		}
	}
}

func TestDetectCapabilitiesConcurrentAgreement(t *testing.T) {
	const goroutines = 64
	results := make(chan Capabilities, goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			results <- DetectCapabilities()
		}()
	}
	first := <-results
	for i := 1; i < goroutines; i++ {
		if got := <-results; got != first {
			t.Fatalf("concurrent DetectCapabilities() disagreed: got %v, want %v", got, first)
		}
	}
}

// =============================================================================
// Capabilities.Has / String Tests
// =============================================================================

func TestCapabilitiesHas(t *testing.T) {
	tests := []struct {
		name string
		c    Capabilities
		want Capabilities
		has  bool
	}{
		{"empty has nothing", 0, CapPOPCNT, false},
		{"exact match", CapPacked256, CapPacked256, true},
		{"superset", CapPacked128 | CapPacked256, CapPacked128, true},
		{"missing one of two", CapPacked128, CapPacked128 | CapPacked256, false},
		{"all flags", CapPOPCNT | CapPacked128 | CapPacked256 | CapPacked512BW, CapPacked512BW, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Has(tt.want); got != tt.has {
				t.Errorf("%v.Has(%v) = %v, want %v", tt.c, tt.want, got, tt.has)
			}
		})
	}
}

func TestCapabilitiesStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    Capabilities
		want []string
	}{
		{"scalar", 0, nil},
		{"popcnt only", CapPOPCNT, []string{"POPCNT"}},
		{"popcnt and 128", CapPOPCNT | CapPacked128, []string{"POPCNT", "PACKED_128"}},
		{"everything", CapPOPCNT | CapPacked128 | CapPacked256 | CapPacked512BW,
			[]string{"POPCNT", "PACKED_128", "PACKED_256", "PACKED_512_BW"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			if s := tt.c.String(); s != "scalar" {
				got = splitPipe(s)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%v.String() flags mismatch (-want +got):\n%s", tt.c, diff)
			}
		})
	}
}

// splitPipe splits a "A|B|C" flag string into its parts; used only by
// the table test above to avoid depending on String()'s exact
// delimiter elsewhere.
func splitPipe(s string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '|' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return parts
}

// =============================================================================
// QueryAlignment Tests
// =============================================================================

func TestQueryAlignmentMatchesCapabilities(t *testing.T) {
	caps := DetectCapabilities()
	got := QueryAlignment()

	want := uint32(8)
	switch {
	case caps.Has(CapPacked512BW):
		want = 64
	case caps.Has(CapPacked256):
		want = 32
	case caps.Has(CapPacked128):
		want = 16
	}
	if got != want {
		t.Errorf("QueryAlignment() = %d, want %d for capabilities %v", got, want, caps)
	}
}

func TestAllocAlignedSatisfiesAlignment(t *testing.T) {
	align := uintptr(QueryAlignment())
	for _, n := range []int{0, 1, 2, 7, 64, 1000} {
		buf := AllocAligned(n)
		if len(buf) != n {
			t.Fatalf("AllocAligned(%d) returned length %d", n, len(buf))
		}
		if n == 0 {
			continue
		}
		addr := uintptrOf(buf)
		if addr%align != 0 {
			t.Errorf("AllocAligned(%d) address %#x not aligned to %d", n, addr, align)
		}
	}
}
