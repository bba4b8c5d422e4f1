// Package cswap provides a controlled swap of paired register lists,
// useful for squared-overlap estimation and state antisymmetrisation.
package cswap

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
)

type config struct {
	controlName string
}

// Option configures New.
type Option func(*config) error

// WithControlRegisterName sets the name of the one-qubit control
// register (defaults to "c").
func WithControlRegisterName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("empty control register name")
		}
		cfg.controlName = name
		return nil
	}
}

// Box swaps each register of list a with its pair in list b, qubit by
// qubit, under one control qubit.
type Box struct {
	*compose.RegisterBox
	control circuit.Register
	a, b    []circuit.Register
}

// ControlQubit returns the control qubit.
func (b *Box) ControlQubit() circuit.Qubit { return b.control.Qubit(0) }

// A returns the first register list.
func (b *Box) A() []circuit.Register { return append([]circuit.Register(nil), b.a...) }

// B returns the second register list.
func (b *Box) B() []circuit.Register { return append([]circuit.Register(nil), b.b...) }

// New builds the controlled swap of the paired register lists. The lists
// must have the same length and each pair the same size.
func New(a, b []circuit.Register, opts ...Option) (*Box, error) {
	cfg := config{controlName: "c"}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("the paired register lists %w", compose.ErrLengthMismatch)
	}
	if len(a) == 0 {
		return nil, fmt.Errorf("no registers to swap")
	}
	for i := range a {
		if a[i].Size() != b[i].Size() {
			return nil, fmt.Errorf("paired registers %q and %q are %w", a[i].Name(), b[i].Name(), compose.ErrShapeMismatch)
		}
	}

	circ := circuit.New("CSWAP")
	ctrl, err := circ.AddRegister(circuit.NewRegister(cfg.controlName, 1))
	if err != nil {
		return nil, err
	}
	for _, reg := range a {
		if _, err := circ.AddRegister(reg); err != nil {
			return nil, err
		}
	}
	for _, reg := range b {
		if _, err := circ.AddRegister(reg); err != nil {
			return nil, err
		}
	}
	for i := range a {
		for q := 0; q < a[i].Size(); q++ {
			circ.CSwap(ctrl.Qubit(0), a[i].Qubit(q), b[i].Qubit(q))
		}
	}

	regs := compose.NewRegisters()
	if err := regs.Add(compose.RoleControl, ctrl); err != nil {
		return nil, err
	}
	if err := regs.AddList("a", a); err != nil {
		return nil, err
	}
	if err := regs.AddList("b", b); err != nil {
		return nil, err
	}
	inner, err := compose.NewRegisterBox(regs, circ)
	if err != nil {
		return nil, err
	}
	return &Box{
		RegisterBox: inner,
		control:     ctrl,
		a:           append([]circuit.Register(nil), a...),
		b:           append([]circuit.Register(nil), b...),
	}, nil
}
