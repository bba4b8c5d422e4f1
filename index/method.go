package index

import "github.com/qompose/qompose/compose"

// Method synthesizes the circuit realizing an indexed operation table.
// Implementations return the synthesized circuit together with the
// register bundle describing its I/O surface; the bundle always carries
// the index role and the target role list, plus the work role when
// HasWork reports true.
type Method interface {
	Synthesize(ops *Operations) (*compose.Circuit, *compose.Registers, error)

	// HasWork reports whether the method allocates a work register.
	HasWork() bool
}
