package compose

import (
	"fmt"
	"strings"

	"github.com/qompose/qompose/circuit"
)

type unitKind uint8

const (
	singleUnit unitKind = iota
	groupUnit
)

// MapUnit is one element of a register map side: either a single qubit or
// an ordered group of qubits (a register or an explicit qubit list). All
// downstream logic operates on the flattened qubit sequence plus the kind,
// which is only consulted for shape matching.
type MapUnit struct {
	kind   unitKind
	qubits []circuit.Qubit
}

// UnitQubit returns a single-qubit map unit.
func UnitQubit(q circuit.Qubit) MapUnit {
	return MapUnit{kind: singleUnit, qubits: []circuit.Qubit{q}}
}

// UnitQubits returns an ordered-group map unit over an explicit qubit list.
func UnitQubits(qs []circuit.Qubit) MapUnit {
	return MapUnit{kind: groupUnit, qubits: append([]circuit.Qubit(nil), qs...)}
}

// UnitRegister returns an ordered-group map unit over a whole register.
func UnitRegister(r circuit.Register) MapUnit {
	return MapUnit{kind: groupUnit, qubits: r.Qubits()}
}

// Qubits returns the flattened qubit sequence of the unit.
func (u MapUnit) Qubits() []circuit.Qubit {
	return append([]circuit.Qubit(nil), u.qubits...)
}

// Size returns the number of qubits in the unit.
func (u MapUnit) Size() int { return len(u.qubits) }

// IsSingle reports whether the unit is a single qubit.
func (u MapUnit) IsSingle() bool { return u.kind == singleUnit }

// shapeMatches reports whether two units may be paired in a register map.
func (u MapUnit) shapeMatches(other MapUnit) bool {
	return u.kind == other.kind && len(u.qubits) == len(other.qubits)
}

func (u MapUnit) String() string {
	if u.kind == singleUnit {
		return u.qubits[0].String()
	}
	parts := make([]string, len(u.qubits))
	for i, q := range u.qubits {
		parts[i] = q.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

var _ fmt.Stringer = MapUnit{}
