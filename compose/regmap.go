package compose

import (
	"fmt"
	"strings"

	"github.com/qompose/qompose/circuit"
)

// Binding pairs one source map unit with one destination map unit.
type Binding struct {
	Src, Dst MapUnit
}

// RegMap binds the qubits of a register box to the qubits of a destination
// circuit. Each source unit maps to the destination unit at the same
// position; paired units must have the same shape, and neither side's
// flattened qubit sequence may repeat a qubit. A RegMap is immutable after
// construction.
type RegMap struct {
	bindings []Binding
	src, dst []circuit.Qubit
}

// NewRegMap builds a register map from parallel unit lists.
func NewRegMap(src, dst []MapUnit) (*RegMap, error) {
	if len(src) != len(dst) {
		return nil, fmt.Errorf("map sides with %d and %d element(s) are %w", len(src), len(dst), ErrShapeMismatch)
	}
	m := &RegMap{bindings: make([]Binding, len(src))}
	for i := range src {
		if !src[i].shapeMatches(dst[i]) {
			return nil, fmt.Errorf("box unit %s and circuit unit %s are %w", src[i], dst[i], ErrShapeMismatch)
		}
		m.bindings[i] = Binding{Src: src[i], Dst: dst[i]}
	}
	var err error
	if m.src, err = flattenUnits(src, "source"); err != nil {
		return nil, err
	}
	if m.dst, err = flattenUnits(dst, "destination"); err != nil {
		return nil, err
	}
	return m, nil
}

// NewRegMapFromBindings builds a register map from explicit bindings,
// preserving their order.
func NewRegMapFromBindings(bindings []Binding) (*RegMap, error) {
	src := make([]MapUnit, len(bindings))
	dst := make([]MapUnit, len(bindings))
	for i, b := range bindings {
		src[i] = b.Src
		dst[i] = b.Dst
	}
	return NewRegMap(src, dst)
}

// ConcatRegMaps builds one register map out of several, preserving order.
// Qubit uniqueness is re-validated across the concatenation.
func ConcatRegMaps(maps ...*RegMap) (*RegMap, error) {
	src := make([]MapUnit, len(maps))
	dst := make([]MapUnit, len(maps))
	for i, m := range maps {
		src[i] = UnitQubits(m.src)
		dst[i] = UnitQubits(m.dst)
	}
	return NewRegMap(src, dst)
}

// flattenUnits flattens one map side to its qubit sequence, rejecting any
// qubit bound twice.
func flattenUnits(units []MapUnit, side string) ([]circuit.Qubit, error) {
	var out []circuit.Qubit
	seen := make(map[circuit.Qubit]struct{})
	for _, u := range units {
		for _, q := range u.qubits {
			if _, dup := seen[q]; dup {
				return nil, fmt.Errorf("qubit %s %w in the map %s", q, ErrDuplicateQubit, side)
			}
			seen[q] = struct{}{}
			out = append(out, q)
		}
	}
	return out, nil
}

// SourceQubits returns the flattened source-side qubits.
func (m *RegMap) SourceQubits() []circuit.Qubit {
	return append([]circuit.Qubit(nil), m.src...)
}

// DestQubits returns the flattened destination-side qubits.
func (m *RegMap) DestQubits() []circuit.Qubit {
	return append([]circuit.Qubit(nil), m.dst...)
}

// Bindings returns the ordered unit pairs.
func (m *RegMap) Bindings() []Binding {
	return append([]Binding(nil), m.bindings...)
}

// QubitMap returns the derived bijection from each source qubit to its
// destination qubit.
func (m *RegMap) QubitMap() (map[circuit.Qubit]circuit.Qubit, error) {
	if len(m.src) != len(m.dst) {
		return nil, fmt.Errorf("flattened map sides with %d and %d qubit(s) are %w", len(m.src), len(m.dst), ErrShapeMismatch)
	}
	out := make(map[circuit.Qubit]circuit.Qubit, len(m.src))
	for i, q := range m.src {
		out[q] = m.dst[i]
	}
	return out, nil
}

func (m *RegMap) String() string {
	var sbb strings.Builder
	sbb.WriteString("RegMap (box -> circ):\n")
	for _, b := range m.bindings {
		fmt.Fprintf(&sbb, "  %s -> %s\n", b.Src, b.Dst)
	}
	return sbb.String()
}
