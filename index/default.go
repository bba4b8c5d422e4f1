package index

import (
	"github.com/qompose/qompose/compose"
)

// Default synthesizes each indexed operation as one multi-controlled box
// conditioned on the full index register reading the operation's index.
// It needs no work qubits, at the price of an n-controlled box per
// operation.
type Default struct{}

// HasWork reports that the method allocates no work register.
func (Default) HasWork() bool { return false }

// Synthesize builds the indexed circuit.
func (Default) Synthesize(ops *Operations) (*compose.Circuit, *compose.Registers, error) {
	circ := compose.NewCircuit("IndexDefault")

	idxReg, err := circ.AddRegister(ops.IndexRegister())
	if err != nil {
		return nil, nil, err
	}
	for _, target := range ops.Targets() {
		if _, err := circ.AddRegister(target); err != nil {
			return nil, nil, err
		}
	}

	nIdx := ops.NumIndexQubits()
	for i := 0; i < ops.NumIndices(); i++ {
		for _, op := range ops.At(i) {
			cbox, err := op.Box().QControl(nIdx, compose.WithControlIndex(i))
			if err != nil {
				return nil, nil, err
			}
			m, err := compose.NewRegMapFromBindings([]compose.Binding{
				{Src: compose.UnitRegister(cbox.ControlRegister()), Dst: compose.UnitRegister(idxReg)},
				{Src: compose.UnitQubits(op.Map().SourceQubits()), Dst: compose.UnitQubits(op.Map().DestQubits())},
			})
			if err != nil {
				return nil, nil, err
			}
			if err := circ.AddBox(cbox.RegisterBox, m); err != nil {
				return nil, nil, err
			}
		}
	}

	regs := compose.NewRegisters()
	if err := regs.Add(compose.RoleIndex, idxReg); err != nil {
		return nil, nil, err
	}
	if err := regs.AddList(compose.RoleTarget, ops.Targets()); err != nil {
		return nil, nil, err
	}
	return circ, regs, nil
}
