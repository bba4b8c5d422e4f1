package index

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
)

// Box is a register box applying one operation out of an indexed table,
// selected by the computational-basis value of its index register.
type Box struct {
	*compose.RegisterBox
	ops    *Operations
	method Method
}

// New synthesizes the indexed table with the given method and wraps the
// result as a register box.
func New(method Method, ops *Operations) (*Box, error) {
	circ, regs, err := method.Synthesize(ops)
	if err != nil {
		return nil, err
	}
	inner, err := compose.NewRegisterBox(regs, circ.Circuit)
	if err != nil {
		return nil, err
	}
	return &Box{RegisterBox: inner, ops: ops, method: method}, nil
}

// Operations returns the indexed operation table.
func (b *Box) Operations() *Operations { return b.ops }

// Method returns the synthesis method.
func (b *Box) Method() Method { return b.method }

// NumIndexQubits returns the width of the index register.
func (b *Box) NumIndexQubits() int { return b.ops.NumIndexQubits() }

// IndexRegister returns the index register.
func (b *Box) IndexRegister() circuit.Register {
	reg, _ := b.Registers().Get(compose.RoleIndex)
	return reg
}

// WorkRegister returns the work register when the method allocates one.
func (b *Box) WorkRegister() (circuit.Register, bool) {
	return b.Registers().Get(compose.RoleWork)
}

// TargetRegisters returns the target registers in declaration order.
func (b *Box) TargetRegisters() []circuit.Register {
	regs, _ := b.Registers().List(compose.RoleTarget)
	return regs
}

// InitialiseCircuit returns a fresh circuit carrying the box's registers,
// ready for the box to be composed in with identity wiring. With noIndex
// the index register is left out, for callers that bring their own.
func (b *Box) InitialiseCircuit(noIndex bool) (*compose.Circuit, error) {
	circ := compose.NewCircuit(fmt.Sprintf("%sCircuit", b.Name()))
	idx := b.IndexRegister()
	for _, reg := range b.Registers().Registers() {
		if noIndex && reg == idx {
			continue
		}
		if _, err := circ.AddRegister(reg); err != nil {
			return nil, err
		}
	}
	return circ, nil
}
