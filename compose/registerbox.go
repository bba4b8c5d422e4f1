package compose

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
)

// RegisterBox is a named, composable circuit fragment together with the
// register bundle naming its I/O surface. The qubits reachable through the
// bundle are exactly the qubits of the underlying fragment. Boxes are
// immutable once constructed: lifting operations return new boxes, and
// adding a box to a circuit copies its fragment.
type RegisterBox struct {
	name string
	regs *Registers
	circ *circuit.Circuit
}

// NewRegisterBox wraps a circuit fragment with its register bundle.
func NewRegisterBox(regs *Registers, circ *circuit.Circuit) (*RegisterBox, error) {
	declared := regs.Qubits()
	actual := circ.Qubits()
	if len(declared) != len(actual) {
		return nil, fmt.Errorf("register bundle declares %d qubit(s), circuit %q has %d", len(declared), circ.Name(), len(actual))
	}
	set := make(map[circuit.Qubit]struct{}, len(actual))
	for _, q := range actual {
		set[q] = struct{}{}
	}
	for _, q := range declared {
		if _, ok := set[q]; !ok {
			return nil, fmt.Errorf("register bundle qubit %s is not a qubit of circuit %q", q, circ.Name())
		}
	}
	return &RegisterBox{name: circ.Name(), regs: regs, circ: circ}, nil
}

// FromCircuit wraps a circuit as a box, with one role per declared
// register, named after the register. The circuit must not carry bare
// qubits, since those are unreachable through a register bundle.
func FromCircuit(circ *circuit.Circuit) (*RegisterBox, error) {
	regs := NewRegisters()
	for _, r := range circ.Registers() {
		if err := regs.Add(r.Name(), r); err != nil {
			return nil, err
		}
	}
	return NewRegisterBox(regs, circ)
}

// Name returns the box name.
func (b *RegisterBox) Name() string { return b.name }

// Registers returns the box's register bundle.
func (b *RegisterBox) Registers() *Registers { return b.regs }

// Circuit returns the underlying circuit fragment. Callers must treat it
// as read-only.
func (b *RegisterBox) Circuit() *circuit.Circuit { return b.circ }

// Qubits returns the box's qubits in the fragment's native order; this is
// the order used to wire the box into destination circuits.
func (b *RegisterBox) Qubits() []circuit.Qubit { return b.circ.Qubits() }

// NumQubits returns the number of box qubits.
func (b *RegisterBox) NumQubits() int { return b.circ.NumQubits() }

// Dagger returns the inverse box.
func (b *RegisterBox) Dagger() *RegisterBox {
	dag := b.circ.Dagger()
	return &RegisterBox{name: dag.Name(), regs: b.regs.Copy(), circ: dag}
}

// Unitary evaluates the box's unitary.
func (b *RegisterBox) Unitary() (circuit.Matrix, error) {
	return b.circ.Unitary()
}

// SelectedUnitary evaluates the box's unitary with qubits fixed to
// classical values on the input (pre) and output (post) sides.
func (b *RegisterBox) SelectedUnitary(pre, post map[circuit.Qubit]bool) (circuit.Matrix, error) {
	return b.circ.SelectedUnitary(pre, post)
}
