package index

import (
	"fmt"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
	"github.com/qompose/qompose/internal/qbits"
)

// UnaryIteration synthesizes indexed operations with the unary iteration
// method of arXiv:1805.03662. A work register of one qubit per index
// qubit minus one carries a cascade of Toffoli gates computing the
// conjunction of the index bits, so every operation is applied under a
// single control on the bottom work qubit. Between adjacent indices only
// the cascade below the first differing index bit is recomputed.
//
// Gates outside the active index range are not cancelled.
type UnaryIteration struct {
	toffoli   *compose.RegisterBox
	uncompute *compose.RegisterBox
	workName  string
}

// UnaryIterationOption configures NewUnaryIteration.
type UnaryIterationOption func(*UnaryIteration) error

// WithToffoli replaces the CCX primitive used in the cascade with a
// custom three-qubit box, for example a measurement-assisted AND.
func WithToffoli(box *compose.RegisterBox) UnaryIterationOption {
	return func(u *UnaryIteration) error {
		if box.NumQubits() != 3 {
			return fmt.Errorf("toffoli primitive %q must act on 3 qubits, got %d", box.Name(), box.NumQubits())
		}
		u.toffoli = box
		return nil
	}
}

// WithUncomputeToffoli replaces the primitive undoing the cascade. It is
// only valid together with WithToffoli; with WithToffoli alone the
// uncompute primitive defaults to the toffoli's dagger.
func WithUncomputeToffoli(box *compose.RegisterBox) UnaryIterationOption {
	return func(u *UnaryIteration) error {
		if box.NumQubits() != 3 {
			return fmt.Errorf("uncompute toffoli primitive %q must act on 3 qubits, got %d", box.Name(), box.NumQubits())
		}
		u.uncompute = box
		return nil
	}
}

// WithWorkRegisterName sets the name of the work register (defaults
// to "w").
func WithWorkRegisterName(name string) UnaryIterationOption {
	return func(u *UnaryIteration) error {
		if name == "" {
			return fmt.Errorf("empty work register name")
		}
		u.workName = name
		return nil
	}
}

// NewUnaryIteration returns the unary iteration method. Without options
// the cascade uses CCX and its dagger.
func NewUnaryIteration(opts ...UnaryIterationOption) (*UnaryIteration, error) {
	u := &UnaryIteration{workName: "w"}
	for _, opt := range opts {
		if err := opt(u); err != nil {
			return nil, err
		}
	}
	switch {
	case u.toffoli == nil && u.uncompute == nil:
		box, err := ccxBox()
		if err != nil {
			return nil, err
		}
		u.toffoli = box
		u.uncompute = box.Dagger()
	case u.toffoli != nil && u.uncompute == nil:
		u.uncompute = u.toffoli.Dagger()
	case u.toffoli == nil && u.uncompute != nil:
		return nil, fmt.Errorf("provide a toffoli together with the uncompute toffoli")
	}
	return u, nil
}

func ccxBox() (*compose.RegisterBox, error) {
	circ := circuit.New("CCX")
	reg, err := circ.AddRegister(circuit.NewRegister("q", 3))
	if err != nil {
		return nil, err
	}
	circ.CCX(reg.Qubit(0), reg.Qubit(1), reg.Qubit(2))
	return compose.FromCircuit(circ)
}

// HasWork reports that the method allocates a work register.
func (u *UnaryIteration) HasWork() bool { return true }

// Synthesize builds the indexed circuit.
func (u *UnaryIteration) Synthesize(ops *Operations) (*compose.Circuit, *compose.Registers, error) {
	nIdx := ops.NumIndexQubits()
	if nIdx < 2 {
		return nil, nil, fmt.Errorf("unary iteration requires at least 2 index qubits, got %d", nIdx)
	}

	circ := compose.NewCircuit("IndexUnaryIteration")
	idxReg, err := circ.AddRegister(ops.IndexRegister())
	if err != nil {
		return nil, nil, err
	}
	workReg, err := circ.AddRegister(circuit.NewRegister(u.workName, nIdx-1))
	if err != nil {
		return nil, nil, err
	}
	for _, target := range ops.Targets() {
		if _, err := circ.AddRegister(target); err != nil {
			return nil, nil, err
		}
	}

	// fds[i-1] is the highest-order bit position where indices i-1 and i
	// differ; the cascade between them is recomputed from there down.
	fds := qbits.FirstDiffs(ops.NumIndices(), nIdx)
	bottom := nIdx - 1
	last := ops.NumIndices() - 1
	ctrl := workReg.Qubit(workReg.Size() - 1)

	for i := 0; i <= last; i++ {
		bools := ops.Bits(i)
		if i == 0 {
			if err := u.cascadeDown(circ, idxReg, workReg, bools, 0); err != nil {
				return nil, nil, err
			}
			if err := u.control(circ, ops, 0, ctrl); err != nil {
				return nil, nil, err
			}
			continue
		}

		fd := fds[i-1]
		u.adjacentAnd(circ, idxReg, workReg, bools, fd)
		if fd != bottom {
			if err := u.cascadeDown(circ, idxReg, workReg, bools, fd); err != nil {
				return nil, nil, err
			}
		}
		if err := u.control(circ, ops, i, ctrl); err != nil {
			return nil, nil, err
		}
		if i == last || fd == bottom {
			top := 0
			if i != last {
				top = fds[i]
			}
			if err := u.cascadeUp(circ, idxReg, workReg, bools, top); err != nil {
				return nil, nil, err
			}
		}
	}

	regs := compose.NewRegisters()
	if err := regs.Add(compose.RoleIndex, idxReg); err != nil {
		return nil, nil, err
	}
	if err := regs.Add(compose.RoleWork, workReg); err != nil {
		return nil, nil, err
	}
	if err := regs.AddList(compose.RoleTarget, ops.Targets()); err != nil {
		return nil, nil, err
	}
	return circ, regs, nil
}

// cascadeDown computes the work-qubit conjunctions from the first
// differing bit down to the bottom work qubit.
func (u *UnaryIteration) cascadeDown(c *compose.Circuit, idx, work circuit.Register, bools []bool, fd int) error {
	bottom := len(bools) - 1
	for q := fd + 1; q <= bottom; q++ {
		if err := u.cascadeLeg(c, u.toffoli, idx, work, bools, q); err != nil {
			return err
		}
	}
	return nil
}

// cascadeUp undoes the cascade from the bottom work qubit up to the
// first differing bit of the next index, or all the way for the last.
func (u *UnaryIteration) cascadeUp(c *compose.Circuit, idx, work circuit.Register, bools []bool, top int) error {
	bottom := len(bools) - 1
	for q := bottom; q > top; q-- {
		if err := u.cascadeLeg(c, u.uncompute, idx, work, bools, q); err != nil {
			return err
		}
	}
	return nil
}

// cascadeLeg places one indexed Toffoli of the cascade. The top leg acts
// on the two leading index qubits; every other leg takes the conjunction
// computed so far and one more index qubit.
func (u *UnaryIteration) cascadeLeg(c *compose.Circuit, prim *compose.RegisterBox, idx, work circuit.Register, bools []bool, q int) error {
	if q == 1 {
		return u.addIndexedToffoli(c, prim, bools[0], bools[1],
			idx.Qubit(0), idx.Qubit(1), work.Qubit(0))
	}
	return u.addIndexedToffoli(c, prim, true, bools[q],
		work.Qubit(q-2), idx.Qubit(q), work.Qubit(q-1))
}

// adjacentAnd bridges two adjacent indices. When only bits at or below
// the cascade frontier change, a single CX retargets the conjunction
// instead of a full recompute.
func (u *UnaryIteration) adjacentAnd(c *compose.Circuit, idx, work circuit.Register, bools []bool, fd int) {
	switch {
	case fd == 0:
		// top bit flipped, the cascade is rebuilt from the top anyway
	case fd == 1:
		if !bools[0] {
			c.X(idx.Qubit(0))
		}
		c.CX(idx.Qubit(0), work.Qubit(0))
		if !bools[0] {
			c.X(idx.Qubit(0))
		}
	default:
		c.CX(work.Qubit(fd-2), work.Qubit(fd-1))
	}
}

// addIndexedToffoli wraps the primitive with X gates on the control legs
// whose index bit is zero.
func (u *UnaryIteration) addIndexedToffoli(c *compose.Circuit, prim *compose.RegisterBox, c0, c1 bool, q0, q1, q2 circuit.Qubit) error {
	tof := circuit.New(fmt.Sprintf("Toffoli(%d,%d)", bit(c0), bit(c1)))
	reg, err := tof.AddRegister(circuit.NewRegister("q", 3))
	if err != nil {
		return err
	}
	if !c0 {
		tof.X(reg.Qubit(0))
	}
	if !c1 {
		tof.X(reg.Qubit(1))
	}
	if err := tof.AddBox(prim.Circuit(), reg.Qubits()); err != nil {
		return err
	}
	if !c0 {
		tof.X(reg.Qubit(0))
	}
	if !c1 {
		tof.X(reg.Qubit(1))
	}
	return c.Circuit.AddBox(tof, []circuit.Qubit{q0, q1, q2})
}

// control applies the operations at one index under a single control on
// the bottom work qubit.
func (u *UnaryIteration) control(c *compose.Circuit, ops *Operations, i int, ctrl circuit.Qubit) error {
	for _, op := range ops.At(i) {
		cbox, err := op.Box().QControl(1)
		if err != nil {
			return err
		}
		m, err := compose.NewRegMapFromBindings([]compose.Binding{
			{Src: compose.UnitQubit(cbox.ControlRegister().Qubit(0)), Dst: compose.UnitQubit(ctrl)},
			{Src: compose.UnitQubits(op.Map().SourceQubits()), Dst: compose.UnitQubits(op.Map().DestQubits())},
		})
		if err != nil {
			return err
		}
		if err := c.AddBox(cbox.RegisterBox, m); err != nil {
			return err
		}
	}
	return nil
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
