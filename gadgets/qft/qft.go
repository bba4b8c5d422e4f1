// Package qft provides the standard quantum Fourier transform as a
// register box.
package qft

import (
	"fmt"
	"math"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
)

type config struct {
	regName string
	doSwaps bool
}

// Option configures New.
type Option func(*config) error

// WithRegisterName sets the name of the transformed register (defaults
// to "q").
func WithRegisterName(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("empty register name")
		}
		cfg.regName = name
		return nil
	}
}

// WithoutSwaps skips the final qubit-reversal swaps. The output then
// carries the frequency modes in reversed qubit order, which callers can
// account for classically instead of paying for the swaps.
func WithoutSwaps() Option {
	return func(cfg *config) error {
		cfg.doSwaps = false
		return nil
	}
}

// Box is the quantum Fourier transform on one register.
type Box struct {
	*compose.RegisterBox
	hasSwaps bool
}

// HasSwaps reports whether the box ends with the qubit-reversal swaps.
func (b *Box) HasSwaps() bool { return b.hasSwaps }

// New builds the transform on nQubits qubits: a Hadamard on each qubit
// followed by the controlled phase ladder, then the reversal swaps
// unless disabled.
func New(nQubits int, opts ...Option) (*Box, error) {
	if nQubits < 1 {
		return nil, fmt.Errorf("transform needs at least one qubit, got %d", nQubits)
	}
	cfg := config{regName: "q", doSwaps: true}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	circ := circuit.New("QFT")
	reg, err := circ.AddRegister(circuit.NewRegister(cfg.regName, nQubits))
	if err != nil {
		return nil, err
	}
	for i := 0; i < nQubits; i++ {
		circ.H(reg.Qubit(i))
		for j := i + 1; j < nQubits; j++ {
			circ.CU1(math.Pi/float64(int(1)<<(j-i)), reg.Qubit(j), reg.Qubit(i))
		}
	}
	if cfg.doSwaps {
		for k := 0; k < nQubits/2; k++ {
			circ.Swap(reg.Qubit(k), reg.Qubit(nQubits-k-1))
		}
	}

	regs := compose.NewRegisters()
	if err := regs.Add(compose.RoleDefault, reg); err != nil {
		return nil, err
	}
	inner, err := compose.NewRegisterBox(regs, circ)
	if err != nil {
		return nil, err
	}
	return &Box{RegisterBox: inner, hasSwaps: cfg.doSwaps}, nil
}
