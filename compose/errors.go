package compose

import "errors"

var (
	// ErrShapeMismatch is returned when two paired structures disagree in size.
	ErrShapeMismatch = errors.New("not the same size")

	// ErrDuplicateQubit is returned when a qubit would be bound twice.
	ErrDuplicateQubit = errors.New("appears more than once")

	// ErrSubset is returned when composing a box into a circuit whose
	// qubits do not cover the required qubits.
	ErrSubset = errors.New("not a subset")

	// ErrLengthMismatch is returned when parallel lists disagree in length.
	ErrLengthMismatch = errors.New("must have the same length")
)
