package astro

import "sync"

// Reference provides typed lookups over the classical reference tables.
// The zero value is not usable; construct with NewReference or share the
// process-wide instance from Std.
type Reference struct {
	// The tables themselves are package-level immutable data. Reference is
	// the injection handle layers receive, which keeps every lookup
	// mockable at the seam where it is consumed and leaves exactly one
	// declaration site for the doctrine.
	_ struct{}
}

var (
	stdOnce sync.Once
	stdRef  *Reference
)

// NewReference returns a reference-table handle.
func NewReference() *Reference {
	return &Reference{}
}

// Std returns the shared process-wide Reference.
func Std() *Reference {
	stdOnce.Do(func() {
		stdRef = NewReference()
	})
	return stdRef
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
