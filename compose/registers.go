package compose

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
)

// Conventional role names shared by the library's boxes.
const (
	RoleIndex   = "index"
	RoleWork    = "work"
	RoleTarget  = "target"
	RoleControl = "control"
	RoleDefault = "default"
)

// Registers is an ordered mapping from role name to a register, or to an
// ordered list of registers. It is the labeled I/O surface of a register
// box: every box qubit is reachable through exactly one role.
type Registers struct {
	order  []string
	fields map[string][]circuit.Register
	isList map[string]bool
}

// NewRegisters returns an empty bundle.
func NewRegisters() *Registers {
	return &Registers{
		fields: make(map[string][]circuit.Register),
		isList: make(map[string]bool),
	}
}

func (r *Registers) add(role string, regs []circuit.Register, list bool) error {
	if _, exists := r.fields[role]; exists {
		return fmt.Errorf("role %q already defined in register bundle", role)
	}
	r.order = append(r.order, role)
	r.fields[role] = append([]circuit.Register(nil), regs...)
	r.isList[role] = list
	return nil
}

// Add binds a single register to a new role. Role names must be unique.
func (r *Registers) Add(role string, reg circuit.Register) error {
	return r.add(role, []circuit.Register{reg}, false)
}

// AddList binds an ordered register list to a new role.
func (r *Registers) AddList(role string, regs []circuit.Register) error {
	return r.add(role, regs, true)
}

// Get returns the register bound to a single-register role.
func (r *Registers) Get(role string) (circuit.Register, bool) {
	regs, ok := r.fields[role]
	if !ok || r.isList[role] {
		return circuit.Register{}, false
	}
	return regs[0], true
}

// List returns the registers bound to a list role.
func (r *Registers) List(role string) ([]circuit.Register, bool) {
	regs, ok := r.fields[role]
	if !ok || !r.isList[role] {
		return nil, false
	}
	return append([]circuit.Register(nil), regs...), true
}

// Has reports whether the role is defined.
func (r *Registers) Has(role string) bool {
	_, ok := r.fields[role]
	return ok
}

// Roles returns the role names in definition order.
func (r *Registers) Roles() []string {
	return append([]string(nil), r.order...)
}

// Registers returns all bound registers, role by role in definition order.
func (r *Registers) Registers() []circuit.Register {
	var out []circuit.Register
	for _, role := range r.order {
		out = append(out, r.fields[role]...)
	}
	return out
}

// Qubits returns the qubits reachable through the bundle, in role order.
func (r *Registers) Qubits() []circuit.Qubit {
	var out []circuit.Qubit
	for _, reg := range r.Registers() {
		out = append(out, reg.Qubits()...)
	}
	return out
}

// Copy returns an independent copy of the bundle.
func (r *Registers) Copy() *Registers {
	out := NewRegisters()
	for _, role := range r.order {
		_ = out.add(role, r.fields[role], r.isList[role])
	}
	return out
}

// Extended returns a copy of the bundle with one more single-register
// role. It fails if the role already exists.
func (r *Registers) Extended(role string, reg circuit.Register) (*Registers, error) {
	out := r.Copy()
	if err := out.Add(role, reg); err != nil {
		return nil, err
	}
	return out, nil
}
