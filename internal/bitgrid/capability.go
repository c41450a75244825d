package bitgrid

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// PopcountAccelerated reports whether math/bits.OnesCount64 lowers to a
// hardware population count on this machine.
func PopcountAccelerated() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return cpu.X86.HasPOPCNT
	case "arm64":
		// VCNT is part of the base ASIMD set.
		return cpu.ARM64.HasASIMD
	default:
		return false
	}
}
