// Package reflection provides the reflection about the all-zeros state,
// R = +-(2|0...0><0...0| - I), the walk operator ingredient of
// amplitude amplification and qubitisation.
package reflection

import (
	"fmt"
	"math"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
)

type config struct {
	regName     string
	controlName string
	positive    bool
}

// Option configures New and NewControlled.
type Option func(*config) error

// WithRegisterName sets the name of the reflected register (defaults
// to "r").
func WithRegisterName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("empty register name")
		}
		cfg.regName = name
		return nil
	}
}

// WithControlRegisterName sets the control register name used by
// NewControlled (defaults to "a").
func WithControlRegisterName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("empty control register name")
		}
		cfg.controlName = name
		return nil
	}
}

// WithNegative builds -R instead of +R.
func WithNegative() Option {
	return func(cfg *config) error {
		cfg.positive = false
		return nil
	}
}

// Box is the reflection about |0...0>.
type Box struct {
	*compose.RegisterBox
	positive bool
}

// Positive reports whether the box implements +R.
func (b *Box) Positive() bool { return b.positive }

// New builds the reflection on nQubits qubits: X on every qubit around a
// multi-controlled Z, with a global phase flip for the positive sign.
func New(nQubits int, opts ...Option) (*Box, error) {
	cfg := config{regName: "r", controlName: "a", positive: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if nQubits < 1 {
		return nil, fmt.Errorf("reflection needs at least one qubit, got %d", nQubits)
	}

	circ := circuit.New("Reflection")
	reg, err := circ.AddRegister(circuit.NewRegister(cfg.regName, nQubits))
	if err != nil {
		return nil, err
	}
	for _, q := range reg.Qubits() {
		circ.X(q)
	}
	if nQubits == 1 {
		circ.Z(reg.Qubit(0))
	} else {
		circ.CnZ(reg.Qubits()...)
	}
	for _, q := range reg.Qubits() {
		circ.X(q)
	}
	if cfg.positive {
		circ.AddPhase(math.Pi)
	}

	regs := compose.NewRegisters()
	if err := regs.Add("reflection", reg); err != nil {
		return nil, err
	}
	inner, err := compose.NewRegisterBox(regs, circ)
	if err != nil {
		return nil, err
	}
	return &Box{RegisterBox: inner, positive: cfg.positive}, nil
}

// ControlledBox is the singly controlled reflection.
type ControlledBox struct {
	*compose.RegisterBox
	control  circuit.Register
	positive bool
}

// ControlRegister returns the one-qubit control register.
func (b *ControlledBox) ControlRegister() circuit.Register { return b.control }

// Positive reports whether the controlled box implements +R.
func (b *ControlledBox) Positive() bool { return b.positive }

// NewControlled builds the reflection under a single control qubit. The
// control folds into the multi-controlled Z with the control qubit as
// target, much cheaper than controlling every gate of the plain box; a Z
// on the control replaces the global phase of the positive sign.
func NewControlled(nQubits int, opts ...Option) (*ControlledBox, error) {
	cfg := config{regName: "r", controlName: "a", positive: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if nQubits < 1 {
		return nil, fmt.Errorf("reflection needs at least one qubit, got %d", nQubits)
	}

	circ := circuit.New("QControl1(Reflection)")
	reg, err := circ.AddRegister(circuit.NewRegister(cfg.regName, nQubits))
	if err != nil {
		return nil, err
	}
	ctrl, err := circ.AddRegister(circuit.NewRegister(cfg.controlName, 1))
	if err != nil {
		return nil, err
	}
	for _, q := range reg.Qubits() {
		circ.X(q)
	}
	circ.CnZ(append(reg.Qubits(), ctrl.Qubit(0))...)
	for _, q := range reg.Qubits() {
		circ.X(q)
	}
	if cfg.positive {
		circ.Z(ctrl.Qubit(0))
	}

	regs := compose.NewRegisters()
	if err := regs.Add("reflection", reg); err != nil {
		return nil, err
	}
	if err := regs.Add(compose.RoleControl, ctrl); err != nil {
		return nil, err
	}
	inner, err := compose.NewRegisterBox(regs, circ)
	if err != nil {
		return nil, err
	}
	return &ControlledBox{RegisterBox: inner, control: ctrl, positive: cfg.positive}, nil
}
