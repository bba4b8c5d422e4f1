package circuit

import (
	"fmt"
)

// operation is one entry of a circuit: either an atomic gate or an opaque
// sub-circuit ("box"), wired at explicit qubits of the enclosing circuit.
// For a controlled box the first nControls qubits are the controls.
type operation struct {
	gate      *Gate
	box       *Circuit
	nControls int
	qubits    []Qubit
}

func (op operation) isBox() bool { return op.box != nil }

// Circuit is an ordered list of operations over named registers and bare
// qubits. It is a pure value: Copy, Dagger and box additions never mutate
// their receiver's sub-circuits.
type Circuit struct {
	name  string
	regs  []Register
	extra []Qubit // bare qubits outside any declared register
	ops   []operation
	phase float64 // global phase, radians
}

// New returns an empty circuit.
func New(name string) *Circuit {
	return &Circuit{name: name}
}

// Name returns the circuit name.
func (c *Circuit) Name() string { return c.name }

// SetName renames the circuit.
func (c *Circuit) SetName(name string) { c.name = name }

// AddRegister declares a register on the circuit. Register names must be
// unique within the circuit.
func (c *Circuit) AddRegister(r Register) (Register, error) {
	for _, have := range c.regs {
		if have.Name() == r.Name() {
			return Register{}, fmt.Errorf("register %q already declared in circuit %q", r.Name(), c.name)
		}
	}
	for _, q := range c.extra {
		if r.Contains(q) {
			return Register{}, fmt.Errorf("register %s collides with bare qubit %s", r, q)
		}
	}
	c.regs = append(c.regs, r)
	return r, nil
}

// AddQubit declares a bare qubit on the circuit.
func (c *Circuit) AddQubit(q Qubit) error {
	if c.Contains(q) {
		return fmt.Errorf("qubit %s already declared in circuit %q", q, c.name)
	}
	c.extra = append(c.extra, q)
	return nil
}

// Register returns the declared register of the given name.
func (c *Circuit) Register(name string) (Register, bool) {
	for _, r := range c.regs {
		if r.Name() == name {
			return r, true
		}
	}
	return Register{}, false
}

// Registers returns the declared registers in declaration order.
func (c *Circuit) Registers() []Register {
	out := make([]Register, len(c.regs))
	copy(out, c.regs)
	return out
}

// Qubits returns all qubits of the circuit: register qubits in register
// declaration order, then bare qubits in declaration order. This enumeration
// order is the circuit's native qubit order, used for wiring boxes.
func (c *Circuit) Qubits() []Qubit {
	out := make([]Qubit, 0, c.NumQubits())
	for _, r := range c.regs {
		out = append(out, r.Qubits()...)
	}
	out = append(out, c.extra...)
	return out
}

// NumQubits returns the total number of qubits.
func (c *Circuit) NumQubits() int {
	n := len(c.extra)
	for _, r := range c.regs {
		n += r.Size()
	}
	return n
}

// Contains reports whether q is declared on the circuit.
func (c *Circuit) Contains(q Qubit) bool {
	for _, r := range c.regs {
		if r.Contains(q) {
			return true
		}
	}
	for _, have := range c.extra {
		if have == q {
			return true
		}
	}
	return false
}

// positions returns the map from qubit to its index in the native order.
func (c *Circuit) positions() map[Qubit]int {
	qs := c.Qubits()
	m := make(map[Qubit]int, len(qs))
	for i, q := range qs {
		m[q] = i
	}
	return m
}

func (c *Circuit) checkWiring(qs []Qubit) error {
	seen := make(map[Qubit]struct{}, len(qs))
	for _, q := range qs {
		if !c.Contains(q) {
			return fmt.Errorf("qubit %s is not declared in circuit %q", q, c.name)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("qubit %s wired twice in one operation", q)
		}
		seen[q] = struct{}{}
	}
	return nil
}

// AddGate appends an atomic gate at the given qubits.
func (c *Circuit) AddGate(g Gate, qs ...Qubit) error {
	if a := g.Kind.arity(); a >= 0 && len(qs) != a {
		return fmt.Errorf("gate %s acts on %d qubit(s), got %d", g.Kind, a, len(qs))
	}
	if g.Kind.arity() < 0 && len(qs) < 1 {
		return fmt.Errorf("gate %s needs at least one qubit", g.Kind)
	}
	if len(g.Params) != g.Kind.nParams() {
		return fmt.Errorf("gate %s takes %d parameter(s), got %d", g.Kind, g.Kind.nParams(), len(g.Params))
	}
	if err := c.checkWiring(qs); err != nil {
		return err
	}
	c.ops = append(c.ops, operation{gate: &g, qubits: append([]Qubit(nil), qs...)})
	return nil
}

// AddBox appends sub as one opaque operation wired at qs, which must list
// one circuit qubit per sub-circuit qubit, in the sub-circuit's native
// order. The sub-circuit is copied; later mutations of sub are not seen.
func (c *Circuit) AddBox(sub *Circuit, qs []Qubit) error {
	return c.AddControlledBox(sub, 0, qs)
}

// AddControlledBox appends sub conditioned on nControls extra qubits; the
// first nControls entries of qs are the controls, the rest wire the
// sub-circuit qubits in native order.
func (c *Circuit) AddControlledBox(sub *Circuit, nControls int, qs []Qubit) error {
	if nControls < 0 {
		return fmt.Errorf("negative control count %d", nControls)
	}
	if want := nControls + sub.NumQubits(); len(qs) != want {
		return fmt.Errorf("box %q needs %d wired qubit(s), got %d", sub.name, want, len(qs))
	}
	if err := c.checkWiring(qs); err != nil {
		return err
	}
	c.ops = append(c.ops, operation{box: sub.Copy(), nControls: nControls, qubits: append([]Qubit(nil), qs...)})
	return nil
}

// AddPhase multiplies the circuit unitary by exp(i*rad).
func (c *Circuit) AddPhase(rad float64) {
	c.phase += rad
}

// Copy returns a deep copy of the circuit.
func (c *Circuit) Copy() *Circuit {
	out := &Circuit{
		name:  c.name,
		regs:  append([]Register(nil), c.regs...),
		extra: append([]Qubit(nil), c.extra...),
		phase: c.phase,
		ops:   make([]operation, len(c.ops)),
	}
	for i, op := range c.ops {
		cp := operation{nControls: op.nControls, qubits: append([]Qubit(nil), op.qubits...)}
		if op.gate != nil {
			g := *op.gate
			g.Params = append([]float64(nil), op.gate.Params...)
			cp.gate = &g
		}
		if op.box != nil {
			cp.box = op.box.Copy()
		}
		out.ops[i] = cp
	}
	return out
}

// Dagger returns the inverse circuit: operations reversed and individually
// inverted, global phase negated.
func (c *Circuit) Dagger() *Circuit {
	out := &Circuit{
		name:  c.name + "†",
		regs:  append([]Register(nil), c.regs...),
		extra: append([]Qubit(nil), c.extra...),
		phase: -c.phase,
		ops:   make([]operation, 0, len(c.ops)),
	}
	for i := len(c.ops) - 1; i >= 0; i-- {
		op := c.ops[i]
		inv := operation{nControls: op.nControls, qubits: append([]Qubit(nil), op.qubits...)}
		if op.gate != nil {
			g := op.gate.Dagger()
			inv.gate = &g
		}
		if op.box != nil {
			inv.box = op.box.Dagger()
		}
		out.ops = append(out.ops, inv)
	}
	return out
}

// NumOperations returns the number of appended operations.
func (c *Circuit) NumOperations() int { return len(c.ops) }

func (c *Circuit) mustAddGate(g Gate, qs ...Qubit) *Circuit {
	if err := c.AddGate(g, qs...); err != nil {
		panic(err)
	}
	return c
}

// The builder shorthands below panic on invalid wiring; they are meant for
// construction code that generates its qubits itself.

func (c *Circuit) X(q Qubit) *Circuit   { return c.mustAddGate(Gate{Kind: X}, q) }
func (c *Circuit) Y(q Qubit) *Circuit   { return c.mustAddGate(Gate{Kind: Y}, q) }
func (c *Circuit) Z(q Qubit) *Circuit   { return c.mustAddGate(Gate{Kind: Z}, q) }
func (c *Circuit) H(q Qubit) *Circuit   { return c.mustAddGate(Gate{Kind: H}, q) }
func (c *Circuit) S(q Qubit) *Circuit   { return c.mustAddGate(Gate{Kind: S}, q) }
func (c *Circuit) Sdg(q Qubit) *Circuit { return c.mustAddGate(Gate{Kind: Sdg}, q) }
func (c *Circuit) T(q Qubit) *Circuit   { return c.mustAddGate(Gate{Kind: T}, q) }
func (c *Circuit) Tdg(q Qubit) *Circuit { return c.mustAddGate(Gate{Kind: Tdg}, q) }

func (c *Circuit) Rx(rad float64, q Qubit) *Circuit {
	return c.mustAddGate(NewGate(Rx, rad), q)
}

func (c *Circuit) Ry(rad float64, q Qubit) *Circuit {
	return c.mustAddGate(NewGate(Ry, rad), q)
}

func (c *Circuit) Rz(rad float64, q Qubit) *Circuit {
	return c.mustAddGate(NewGate(Rz, rad), q)
}

func (c *Circuit) U1(rad float64, q Qubit) *Circuit {
	return c.mustAddGate(NewGate(U1, rad), q)
}

func (c *Circuit) CX(control, target Qubit) *Circuit {
	return c.mustAddGate(Gate{Kind: CX}, control, target)
}

func (c *Circuit) CZ(control, target Qubit) *Circuit {
	return c.mustAddGate(Gate{Kind: CZ}, control, target)
}

func (c *Circuit) CU1(rad float64, control, target Qubit) *Circuit {
	return c.mustAddGate(NewGate(CU1, rad), control, target)
}

func (c *Circuit) Swap(a, b Qubit) *Circuit {
	return c.mustAddGate(Gate{Kind: Swap}, a, b)
}

func (c *Circuit) CCX(c0, c1, target Qubit) *Circuit {
	return c.mustAddGate(Gate{Kind: CCX}, c0, c1, target)
}

func (c *Circuit) CSwap(control, a, b Qubit) *Circuit {
	return c.mustAddGate(Gate{Kind: CSwap}, control, a, b)
}

// CnZ applies a Z on the last qubit controlled on all preceding ones.
func (c *Circuit) CnZ(qs ...Qubit) *Circuit {
	return c.mustAddGate(Gate{Kind: CnZ}, qs...)
}
