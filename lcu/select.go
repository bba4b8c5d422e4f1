// Package lcu provides building blocks for linear-combination-of-unitaries
// circuits. The select oracle applies the i-th term of an operator sum to
// the state register, conditioned on the prepare register holding |i>.
package lcu

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
	"github.com/qompose/qompose/index"
)

type selectConfig struct {
	prepareName string
	stateName   string
}

// SelectOption configures NewSelect.
type SelectOption func(*selectConfig) error

// WithPrepareRegisterName sets the name of the prepare register
// (defaults to "p").
func WithPrepareRegisterName(name string) SelectOption {
	return func(cfg *selectConfig) error {
		if name == "" {
			return fmt.Errorf("empty prepare register name")
		}
		cfg.prepareName = name
		return nil
	}
}

// WithStateRegisterName sets the name of the state register (defaults
// to "q").
func WithStateRegisterName(name string) SelectOption {
	return func(cfg *selectConfig) error {
		if name == "" {
			return fmt.Errorf("empty state register name")
		}
		cfg.stateName = name
		return nil
	}
}

// SelectBox is the select oracle of an LCU decomposition: an indexed
// table whose index register doubles as the prepare register.
type SelectBox struct {
	*index.Box
	state circuit.Register
}

// NewSelect builds the select oracle applying terms[i] to the state
// register when the prepare register reads |i>. All terms must act on
// the same number of qubits.
func NewSelect(method index.Method, terms []*compose.RegisterBox, opts ...SelectOption) (*SelectBox, error) {
	cfg := selectConfig{prepareName: "p", stateName: "q"}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("select oracle needs at least one term")
	}
	nState := terms[0].NumQubits()
	for i, term := range terms {
		if term.NumQubits() != nState {
			return nil, fmt.Errorf("select term %d (%q) and term 0 are %w", i, term.Name(), compose.ErrShapeMismatch)
		}
	}

	state := circuit.NewRegister(cfg.stateName, nState)
	ops := make([]index.OpMap, len(terms))
	for i, term := range terms {
		op, err := index.NewOpMapToRegister(term, state)
		if err != nil {
			return nil, err
		}
		ops[i] = op
	}
	table, err := index.NewOperations(
		[]index.RegisterOps{{Target: state, Ops: ops}},
		index.WithIndexRegisterName(cfg.prepareName),
	)
	if err != nil {
		return nil, err
	}
	box, err := index.New(method, table)
	if err != nil {
		return nil, err
	}
	return &SelectBox{Box: box, state: state}, nil
}

// PrepareRegister returns the prepare register addressing the terms.
func (s *SelectBox) PrepareRegister() circuit.Register { return s.IndexRegister() }

// StateRegister returns the register the terms act on.
func (s *SelectBox) StateRegister() circuit.Register { return s.state }

// NumTerms returns the number of terms in the sum.
func (s *SelectBox) NumTerms() int { return s.Operations().NumIndices() }

// NumPrepareQubits returns the width of the prepare register.
func (s *SelectBox) NumPrepareQubits() int { return s.NumIndexQubits() }
