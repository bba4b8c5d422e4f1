package compose

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/internal/qbits"
)

// ControlStrategy selects how a controlled form is synthesized. Callers
// pick the strategy explicitly when requesting a controlled box; today a
// single strategy ships, conditioning the whole fragment as one opaque
// controlled operation.
type ControlStrategy uint8

const (
	// ControlStandard conditions the box fragment as one controlled
	// operation of the circuit collaborator.
	ControlStandard ControlStrategy = iota
)

func (s ControlStrategy) String() string {
	if s == ControlStandard {
		return "standard"
	}
	return "unknown"
}

type qcontrolConfig struct {
	regName      string
	controlIndex int
	strategy     ControlStrategy
}

// QControlOption configures RegisterBox.QControl.
type QControlOption func(*qcontrolConfig) error

// WithControlRegisterName sets the name of the added control register
// (defaults to "a").
func WithControlRegisterName(name string) QControlOption {
	return func(cfg *qcontrolConfig) error {
		if name == "" {
			return fmt.Errorf("empty control register name")
		}
		cfg.regName = name
		return nil
	}
}

// WithControlIndex makes the controlled box activate only when the control
// register reads exactly the given value; the zero bits of the pattern are
// conjugated with X gates around the controlled operation.
func WithControlIndex(i int) QControlOption {
	return func(cfg *qcontrolConfig) error {
		if i < 0 {
			return fmt.Errorf("negative control index %d", i)
		}
		cfg.controlIndex = i
		return nil
	}
}

// WithControlStrategy selects the control synthesis strategy.
func WithControlStrategy(s ControlStrategy) QControlOption {
	return func(cfg *qcontrolConfig) error {
		if s != ControlStandard {
			return fmt.Errorf("unknown control strategy %d", s)
		}
		cfg.strategy = s
		return nil
	}
}

// ControlledBox is a register box applying the original box conditioned on
// a control register, optionally gated to one fixed control bit pattern.
type ControlledBox struct {
	*RegisterBox
	control      circuit.Register
	controlIndex int
}

// ControlRegister returns the added control register.
func (cb *ControlledBox) ControlRegister() circuit.Register { return cb.control }

// ControlIndex returns the fixed control pattern, or -1 when the box
// activates on the all-ones pattern of a plain multi-control.
func (cb *ControlledBox) ControlIndex() int { return cb.controlIndex }

// QControl returns a new box applying b conditioned on nControl extra
// control qubits.
func (b *RegisterBox) QControl(nControl int, opts ...QControlOption) (*ControlledBox, error) {
	if nControl < 1 {
		return nil, fmt.Errorf("controlled box needs at least one control qubit, got %d", nControl)
	}
	cfg := qcontrolConfig{regName: "a", controlIndex: -1, strategy: ControlStandard}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.controlIndex >= 1<<nControl {
		return nil, fmt.Errorf("control index %d does not fit in %d control qubit(s)", cfg.controlIndex, nControl)
	}

	ctrlReg := circuit.NewRegister(cfg.regName, nControl)
	circ := circuit.New(fmt.Sprintf("QControl%d(%s)", nControl, b.name))
	if _, err := circ.AddRegister(ctrlReg); err != nil {
		return nil, err
	}
	for _, r := range b.circ.Registers() {
		if _, err := circ.AddRegister(r); err != nil {
			return nil, err
		}
	}

	// conjugate the zero bits of the pattern so only the matching control
	// value activates the operation
	var flips []circuit.Qubit
	if cfg.controlIndex >= 0 {
		for p, set := range qbits.Bits(cfg.controlIndex, nControl) {
			if !set {
				flips = append(flips, ctrlReg.Qubit(p))
			}
		}
	}
	for _, q := range flips {
		circ.X(q)
	}
	wiring := append(ctrlReg.Qubits(), b.Qubits()...)
	if err := circ.AddControlledBox(b.circ, nControl, wiring); err != nil {
		return nil, err
	}
	for _, q := range flips {
		circ.X(q)
	}

	regs := NewRegisters()
	if err := regs.Add(RoleControl, ctrlReg); err != nil {
		return nil, err
	}
	for _, role := range b.regs.order {
		if err := regs.add(role, b.regs.fields[role], b.regs.isList[role]); err != nil {
			return nil, err
		}
	}
	inner, err := NewRegisterBox(regs, circ)
	if err != nil {
		return nil, err
	}
	return &ControlledBox{RegisterBox: inner, control: ctrlReg, controlIndex: cfg.controlIndex}, nil
}
