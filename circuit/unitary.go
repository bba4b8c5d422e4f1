package circuit

import (
	"fmt"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Matrix is a dense row-major complex matrix.
type Matrix [][]complex128

// Identity returns the dim x dim identity matrix.
func Identity(dim int) Matrix {
	m := make(Matrix, dim)
	for i := range m {
		m[i] = make([]complex128, dim)
		m[i][i] = 1
	}
	return m
}

// Kron returns the tensor product of a and b.
func Kron(a, b Matrix) Matrix {
	ra, rb := len(a), len(b)
	ca, cb := len(a[0]), len(b[0])
	out := make(Matrix, ra*rb)
	for i := range out {
		out[i] = make([]complex128, ca*cb)
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			for k := 0; k < rb; k++ {
				for l := 0; l < cb; l++ {
					out[i*rb+k][j*cb+l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return out
}

// Equal reports whether m and other agree entrywise within tol.
func (m Matrix) Equal(other Matrix, tol float64) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(other[i]) {
			return false
		}
		for j := range m[i] {
			if cmplx.Abs(m[i][j]-other[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// stateBit maps a native qubit position to its bit in a basis-state index.
// Qubit 0 is the most significant bit, so basis states read |q0 q1 ... >.
func stateBit(p, n int) int { return n - 1 - p }

// Apply applies the circuit in place to a statevector of length 2^n.
func (c *Circuit) Apply(state []complex128) error {
	n := c.NumQubits()
	if len(state) != 1<<n {
		return fmt.Errorf("statevector length %d does not match %d qubit(s)", len(state), n)
	}
	layout := make(map[Qubit]int, n)
	for p, q := range c.Qubits() {
		layout[q] = stateBit(p, n)
	}
	c.applyTo(state, layout, 0)
	return nil
}

// applyTo applies the circuit's operations to state, with the circuit's
// qubits located at the state bits given by layout. Only amplitudes whose
// index has all ctrlMask bits set participate; this is how controlled boxes
// are applied without materializing their block unitary.
func (c *Circuit) applyTo(state []complex128, layout map[Qubit]int, ctrlMask uint) {
	if c.phase != 0 {
		p := cmplx.Exp(complex(0, c.phase))
		for i := range state {
			if uint(i)&ctrlMask == ctrlMask {
				state[i] *= p
			}
		}
	}
	for _, op := range c.ops {
		if !op.isBox() {
			tbits := make([]int, len(op.qubits))
			for j, q := range op.qubits {
				tbits[j] = layout[q]
			}
			applyMatrix(state, op.gate.matrix(len(op.qubits)), tbits, ctrlMask)
			continue
		}
		mask := ctrlMask
		for _, q := range op.qubits[:op.nControls] {
			mask |= 1 << layout[q]
		}
		sub := make(map[Qubit]int, op.box.NumQubits())
		for j, q := range op.box.Qubits() {
			sub[q] = layout[op.qubits[op.nControls+j]]
		}
		op.box.applyTo(state, sub, mask)
	}
}

// applyMatrix applies the k-qubit matrix m at the state bits tbits, where
// tbits[0] carries the most significant bit of the sub-index. Control bits
// are disjoint from target bits by construction.
func applyMatrix(state []complex128, m Matrix, tbits []int, ctrlMask uint) {
	k := len(tbits)
	dim := 1 << k
	var tMask uint
	for _, b := range tbits {
		tMask |= 1 << b
	}
	scratch := make([]complex128, dim)
	for i := range state {
		ui := uint(i)
		if ui&tMask != 0 || ui&ctrlMask != ctrlMask {
			continue
		}
		for a := 0; a < dim; a++ {
			scratch[a] = state[ui|spread(a, tbits)]
		}
		for r := 0; r < dim; r++ {
			var acc complex128
			for s := 0; s < dim; s++ {
				acc += m[r][s] * scratch[s]
			}
			state[ui|spread(r, tbits)] = acc
		}
	}
}

// spread places bit j of the sub-index a at state bit tbits[j].
func spread(a int, tbits []int) uint {
	var out uint
	k := len(tbits)
	for j, b := range tbits {
		if a>>(k-1-j)&1 == 1 {
			out |= 1 << b
		}
	}
	return out
}

// Statevector applies the circuit to |0...0> and returns the result.
func (c *Circuit) Statevector() ([]complex128, error) {
	state := make([]complex128, 1<<c.NumQubits())
	state[0] = 1
	if err := c.Apply(state); err != nil {
		return nil, err
	}
	return state, nil
}

// Unitary evaluates the circuit unitary column by column; columns are
// computed in parallel.
func (c *Circuit) Unitary() (Matrix, error) {
	dim := 1 << c.NumQubits()
	out := make(Matrix, dim)
	for r := range out {
		out[r] = make([]complex128, dim)
	}
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for j := 0; j < dim; j++ {
		j := j
		g.Go(func() error {
			col := make([]complex128, dim)
			col[j] = 1
			if err := c.Apply(col); err != nil {
				return err
			}
			for r := 0; r < dim; r++ {
				out[r][j] = col[r]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// SelectedUnitary returns the effective sub-unitary obtained by fixing the
// pre qubits to classical values on the input side and the post qubits on
// the output side. Remaining qubits keep the circuit's native order.
func (c *Circuit) SelectedUnitary(pre, post map[Qubit]bool) (Matrix, error) {
	u, err := c.Unitary()
	if err != nil {
		return nil, err
	}
	rows, err := c.selectIndices(post)
	if err != nil {
		return nil, err
	}
	cols, err := c.selectIndices(pre)
	if err != nil {
		return nil, err
	}
	out := make(Matrix, len(rows))
	for r, ri := range rows {
		out[r] = make([]complex128, len(cols))
		for s, ci := range cols {
			out[r][s] = u[ri][ci]
		}
	}
	return out, nil
}

// selectIndices returns, in increasing order, the basis-state indices whose
// fixed qubits carry the given classical values.
func (c *Circuit) selectIndices(fixed map[Qubit]bool) ([]int, error) {
	n := c.NumQubits()
	pos := c.positions()
	var mask, val uint
	for q, v := range fixed {
		p, ok := pos[q]
		if !ok {
			return nil, fmt.Errorf("selected qubit %s is not declared in circuit %q", q, c.name)
		}
		b := uint(1) << stateBit(p, n)
		mask |= b
		if v {
			val |= b
		}
	}
	out := make([]int, 0, (1<<n)>>len(fixed))
	for i := 0; i < 1<<n; i++ {
		if uint(i)&mask == val {
			out = append(out, i)
		}
	}
	return out, nil
}
