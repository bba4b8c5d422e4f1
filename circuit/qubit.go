package circuit

import "fmt"

// Qubit is an addressable unit of a circuit, identified by the name of the
// register it belongs to and its index within that register. Qubits are
// immutable values; two qubits are equal iff both fields are equal.
type Qubit struct {
	Reg   string
	Index int
}

func (q Qubit) String() string {
	return fmt.Sprintf("%s[%d]", q.Reg, q.Index)
}

// Register is an ordered, named sequence of qubits. Its size is fixed at
// creation; register names are unique within one circuit.
type Register struct {
	name string
	size int
}

// NewRegister returns a register of the given name and size.
func NewRegister(name string, size int) Register {
	return Register{name: name, size: size}
}

// Name returns the register name.
func (r Register) Name() string { return r.name }

// Size returns the number of qubits in the register.
func (r Register) Size() int { return r.size }

// Qubit returns the i-th qubit of the register.
func (r Register) Qubit(i int) Qubit {
	if i < 0 || i >= r.size {
		panic(fmt.Sprintf("qubit index %d out of range for register %s of size %d", i, r.name, r.size))
	}
	return Qubit{Reg: r.name, Index: i}
}

// Qubits returns the ordered qubits of the register.
func (r Register) Qubits() []Qubit {
	out := make([]Qubit, r.size)
	for i := range out {
		out[i] = Qubit{Reg: r.name, Index: i}
	}
	return out
}

// Contains reports whether q belongs to the register.
func (r Register) Contains(q Qubit) bool {
	return q.Reg == r.name && q.Index >= 0 && q.Index < r.size
}

func (r Register) String() string {
	return fmt.Sprintf("%s[%d]", r.name, r.size)
}
