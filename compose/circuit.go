package compose

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/logger"
)

// Circuit is a circuit under construction that accepts register boxes
// wired through register maps, on top of the plain gate-level interface.
type Circuit struct {
	*circuit.Circuit
}

// NewCircuit returns an empty register circuit.
func NewCircuit(name string) *Circuit {
	return &Circuit{circuit.New(name)}
}

// AddBox appends a register box as one opaque operation.
//
// With a nil map, the box's qubits must already be a subset of the
// circuit's qubits and are wired onto themselves. With a map, the map's
// source side must be a subset of the box's qubits and its destination
// side a subset of the circuit's qubits; the wiring list is then built by
// iterating the box's native qubit order and looking up each qubit's image
// under the map — not by iterating the map's own declaration order.
func (c *Circuit) AddBox(box *RegisterBox, m *RegMap) error {
	var wiring []circuit.Qubit
	if m == nil {
		for _, q := range box.Qubits() {
			if !c.Contains(q) {
				return fmt.Errorf("register box qubits are %w of circuit qubits", ErrSubset)
			}
		}
		wiring = box.Qubits()
	} else {
		for _, q := range m.SourceQubits() {
			if !box.circ.Contains(q) {
				return fmt.Errorf("register map box qubits are %w of box qubits", ErrSubset)
			}
		}
		for _, q := range m.DestQubits() {
			if !c.Contains(q) {
				return fmt.Errorf("register map circuit qubits are %w of circuit qubits", ErrSubset)
			}
		}
		qm, err := m.QubitMap()
		if err != nil {
			return err
		}
		for _, q := range box.Qubits() {
			img, ok := qm[q]
			if !ok {
				return fmt.Errorf("register box qubits are %w of register map qubits: %s has no image", ErrSubset, q)
			}
			wiring = append(wiring, img)
		}
	}
	log := logger.Logger()
	log.Debug().Str("box", box.Name()).Int("nbQubits", len(wiring)).Str("circuit", c.Name()).Msg("add register box")
	return c.Circuit.AddBox(box.circ, wiring)
}
