package index

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
)

// OpMap pairs one indexed operation with the register map wiring it onto
// its target qubits. The map's source side must list exactly the box's
// qubits, in the box's native order, so that lifted forms of the box can
// reuse the map's two sides verbatim.
type OpMap struct {
	box *compose.RegisterBox
	m   *compose.RegMap
}

// NewOpMap validates the pairing of a box and its target map.
func NewOpMap(box *compose.RegisterBox, m *compose.RegMap) (OpMap, error) {
	src := m.SourceQubits()
	if len(src) != box.NumQubits() {
		return OpMap{}, fmt.Errorf("box %q has %d qubit(s) but the register map covers %d", box.Name(), box.NumQubits(), len(src))
	}
	for i, q := range box.Qubits() {
		if src[i] != q {
			return OpMap{}, fmt.Errorf("box qubits must match the register map source qubits in the box's native order: got %s, want %s at position %d", src[i], q, i)
		}
	}
	return OpMap{box: box, m: m}, nil
}

// NewOpMapToRegister wires the whole box onto the whole target register,
// qubit by qubit in order.
func NewOpMapToRegister(box *compose.RegisterBox, target circuit.Register) (OpMap, error) {
	m, err := compose.NewRegMap(
		[]compose.MapUnit{compose.UnitQubits(box.Qubits())},
		[]compose.MapUnit{compose.UnitRegister(target)},
	)
	if err != nil {
		return OpMap{}, err
	}
	return NewOpMap(box, m)
}

// Box returns the indexed operation.
func (om OpMap) Box() *compose.RegisterBox { return om.box }

// Map returns the register map onto the target qubits.
func (om OpMap) Map() *compose.RegMap { return om.m }
