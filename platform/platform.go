// Package platform detects CPU capabilities at process start and
// publishes a capability table, computed once at package initialization
// rather than per-call, together with the backend it would select. The
// field and curve packages do not consult it; they always run the
// portable implementation.
package platform

import "github.com/klauspost/cpuid/v2"

// Capabilities describes the accelerated integer paths available on the
// running CPU. Every field in this module is implemented portably (see
// DESIGN.md on the dropped x64/ifma/avx2 assembly backends); this table
// exists so call sites can report which *would* be selected, and so a
// future assembly backend has a ready dispatch point.
type Capabilities struct {
	AVX2       bool
	AVX512IFMA bool
	BMI2       bool
	ADX        bool
}

// current is computed once at package init rather than on every call.
var current = detect()

func detect() Capabilities {
	return Capabilities{
		AVX2:       cpuid.CPU.Supports(cpuid.AVX2),
		AVX512IFMA: cpuid.CPU.Supports(cpuid.AVX512IFMA),
		BMI2:       cpuid.CPU.Supports(cpuid.BMI2),
		ADX:        cpuid.CPU.Supports(cpuid.ADX),
	}
}

// Current returns the detected capability table for this process.
func Current() Capabilities { return current }

// Backend names the arithmetic backend a field implementation would
// select for the detected capability table.
type Backend string

const (
	BackendPortable   Backend = "portable"
	BackendBMI2ADX    Backend = "x64-bmi2-adx"
	BackendAVX512IFMA Backend = "x64-avx512-ifma"
)

// SelectBackend returns the most capable backend for caps, preferring
// wider SIMD lanes over scalar carry-chain tricks.
func SelectBackend(caps Capabilities) Backend {
	switch {
	case caps.AVX512IFMA:
		return BackendAVX512IFMA
	case caps.BMI2 && caps.ADX:
		return BackendBMI2ADX
	default:
		return BackendPortable
	}
}
