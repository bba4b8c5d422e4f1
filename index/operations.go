package index

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
	"github.com/qompose/qompose/internal/qbits"
)

// RegisterOps lists the indexed operations acting on one target register,
// in index order.
type RegisterOps struct {
	Target circuit.Register
	Ops    []OpMap
}

// Operations is the indexed operation table: for each index value, the
// operations applied to each target register. All targets share the one
// index register, so every per-register operation list must have the same
// length.
type Operations struct {
	entries  []RegisterOps
	nIndex   int
	indexReg string
}

type operationsConfig struct {
	indexReg string
}

// OperationsOption configures NewOperations.
type OperationsOption func(*operationsConfig) error

// WithIndexRegisterName sets the name of the index register (defaults
// to "i").
func WithIndexRegisterName(name string) OperationsOption {
	return func(cfg *operationsConfig) error {
		if name == "" {
			return fmt.Errorf("empty index register name")
		}
		cfg.indexReg = name
		return nil
	}
}

// NewOperations validates and stores an indexed operation table.
func NewOperations(entries []RegisterOps, opts ...OperationsOption) (*Operations, error) {
	cfg := operationsConfig{indexReg: "i"}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("indexed operation table has no target register")
	}
	n := len(entries[0].Ops)
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Target.Name()]; dup {
			return nil, fmt.Errorf("target register %q listed twice", e.Target.Name())
		}
		seen[e.Target.Name()] = struct{}{}
		if len(e.Ops) != n {
			return nil, fmt.Errorf("operations for all target registers %w", compose.ErrLengthMismatch)
		}
		for i, op := range e.Ops {
			for _, q := range op.Map().DestQubits() {
				if !e.Target.Contains(q) {
					return nil, fmt.Errorf("target qubit %s of operation %d is not in register %q", q, i, e.Target.Name())
				}
			}
		}
	}
	if n < 2 {
		return nil, fmt.Errorf("indexed operation table needs at least two operations per register, got %d", n)
	}
	cp := make([]RegisterOps, len(entries))
	for i, e := range entries {
		cp[i] = RegisterOps{Target: e.Target, Ops: append([]OpMap(nil), e.Ops...)}
	}
	return &Operations{entries: cp, nIndex: n, indexReg: cfg.indexReg}, nil
}

// NumIndices returns the number of indexed operations per register.
func (o *Operations) NumIndices() int { return o.nIndex }

// NumIndexQubits returns the width of the index register.
func (o *Operations) NumIndexQubits() int { return qbits.Width(o.nIndex) }

// IndexRegister returns the index register shared by all operations.
func (o *Operations) IndexRegister() circuit.Register {
	return circuit.NewRegister(o.indexReg, o.NumIndexQubits())
}

// Targets returns the target registers in declaration order.
func (o *Operations) Targets() []circuit.Register {
	out := make([]circuit.Register, len(o.entries))
	for i, e := range o.entries {
		out[i] = e.Target
	}
	return out
}

// At returns the operations applied at one index value, one per target
// register in declaration order.
func (o *Operations) At(i int) []OpMap {
	out := make([]OpMap, len(o.entries))
	for j, e := range o.entries {
		out[j] = e.Ops[i]
	}
	return out
}

// Bits returns the index value as a bit string over the index register,
// qubit 0 carrying the most significant bit.
func (o *Operations) Bits(i int) []bool {
	return qbits.Bits(i, o.NumIndexQubits())
}
