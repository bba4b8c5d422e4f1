package index_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
	"github.com/qompose/qompose/index"
)

const tol = 1e-9

// fixedIndex fixes the index register to the bit string of i and every
// work qubit to zero, for both sides of a selected unitary.
func fixedIndex(b *index.Box, i int) map[circuit.Qubit]bool {
	fixed := make(map[circuit.Qubit]bool)
	idx := b.IndexRegister()
	for p, bit := range b.Operations().Bits(i) {
		fixed[idx.Qubit(p)] = bit
	}
	if w, ok := b.WorkRegister(); ok {
		for _, q := range w.Qubits() {
			fixed[q] = false
		}
	}
	return fixed
}

// requireSelectsTable checks that for every index value, post-selecting
// the index bit string (and clean work qubits) leaves exactly the table
// operation on the targets.
func requireSelectsTable(t *testing.T, b *index.Box, boxes []*compose.RegisterBox) {
	t.Helper()
	for i, opBox := range boxes {
		fixed := fixedIndex(b, i)
		got, err := b.SelectedUnitary(fixed, fixed)
		require.NoError(t, err)
		want, err := opBox.Unitary()
		require.NoError(t, err)
		require.True(t, got.Equal(want, tol), "index %d", i)
	}
}

func singleTarget(t *testing.T, n int) (*index.Operations, []*compose.RegisterBox) {
	t.Helper()
	target := circuit.NewRegister("t", 1)
	boxes, ops := ryTable(t, target, n)
	table, err := index.NewOperations([]index.RegisterOps{{Target: target, Ops: ops}})
	require.NoError(t, err)
	return table, boxes
}

func TestDefaultSelectsEachIndex(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6, 7, 8} {
		table, boxes := singleTarget(t, n)
		b, err := index.New(index.Default{}, table)
		require.NoError(t, err)
		require.False(t, b.Method().HasWork())
		_, hasWork := b.WorkRegister()
		require.False(t, hasWork)
		requireSelectsTable(t, b, boxes)
	}
}

func TestUnaryIterationSelectsEachIndex(t *testing.T) {
	method, err := index.NewUnaryIteration()
	require.NoError(t, err)
	require.True(t, method.HasWork())

	for _, n := range []int{3, 4, 5, 6, 7, 8} {
		table, boxes := singleTarget(t, n)
		b, err := index.New(method, table)
		require.NoError(t, err)
		w, hasWork := b.WorkRegister()
		require.True(t, hasWork)
		require.Equal(t, table.NumIndexQubits()-1, w.Size())
		requireSelectsTable(t, b, boxes)
	}
}

func multiTarget(t *testing.T, n int) (*index.Operations, []*compose.RegisterBox, []*compose.RegisterBox) {
	t.Helper()
	t0 := circuit.NewRegister("t0", 1)
	t1 := circuit.NewRegister("t1", 1)
	boxes0, ops0 := ryTable(t, t0, n)
	boxes1 := make([]*compose.RegisterBox, n)
	ops1 := make([]index.OpMap, n)
	for k := 0; k < n; k++ {
		boxes1[k] = ryBox(t, 1.1-0.2*float64(k))
		op, err := index.NewOpMapToRegister(boxes1[k], t1)
		require.NoError(t, err)
		ops1[k] = op
	}
	table, err := index.NewOperations([]index.RegisterOps{
		{Target: t0, Ops: ops0},
		{Target: t1, Ops: ops1},
	})
	require.NoError(t, err)
	return table, boxes0, boxes1
}

// Operations across registers at the same index share one control; the
// selected block is the tensor product of the per-register operations.
func requireSelectsProducts(t *testing.T, b *index.Box, boxes0, boxes1 []*compose.RegisterBox) {
	t.Helper()
	for i := range boxes0 {
		fixed := fixedIndex(b, i)
		got, err := b.SelectedUnitary(fixed, fixed)
		require.NoError(t, err)
		u0, err := boxes0[i].Unitary()
		require.NoError(t, err)
		u1, err := boxes1[i].Unitary()
		require.NoError(t, err)
		require.True(t, got.Equal(circuit.Kron(u0, u1), tol), "index %d", i)
	}
}

func TestDefaultMultiRegister(t *testing.T) {
	table, boxes0, boxes1 := multiTarget(t, 4)
	b, err := index.New(index.Default{}, table)
	require.NoError(t, err)
	requireSelectsProducts(t, b, boxes0, boxes1)
}

func TestUnaryIterationMultiRegister(t *testing.T) {
	method, err := index.NewUnaryIteration()
	require.NoError(t, err)
	table, boxes0, boxes1 := multiTarget(t, 4)
	b, err := index.New(method, table)
	require.NoError(t, err)
	requireSelectsProducts(t, b, boxes0, boxes1)
}

// decomposedToffoli is the textbook CCX network over H, CX, T and T†.
func decomposedToffoli(t *testing.T) *compose.RegisterBox {
	t.Helper()
	circ := circuit.New("CCXDecomposed")
	reg, err := circ.AddRegister(circuit.NewRegister("q", 3))
	require.NoError(t, err)
	q0, q1, q2 := reg.Qubit(0), reg.Qubit(1), reg.Qubit(2)
	circ.H(q2).
		CX(q1, q2).Tdg(q2).
		CX(q0, q2).T(q2).
		CX(q1, q2).Tdg(q2).
		CX(q0, q2).T(q1).T(q2).
		CX(q0, q1).H(q2).
		T(q0).Tdg(q1).
		CX(q0, q1)
	box, err := compose.FromCircuit(circ)
	require.NoError(t, err)
	return box
}

func TestUnaryIterationCustomToffoli(t *testing.T) {
	method, err := index.NewUnaryIteration(index.WithToffoli(decomposedToffoli(t)))
	require.NoError(t, err)

	table, boxes := singleTarget(t, 4)
	b, err := index.New(method, table)
	require.NoError(t, err)
	requireSelectsTable(t, b, boxes)
}

func TestUnaryIterationCustomToffoliPair(t *testing.T) {
	tof := decomposedToffoli(t)
	method, err := index.NewUnaryIteration(
		index.WithToffoli(tof),
		index.WithUncomputeToffoli(tof.Dagger()),
	)
	require.NoError(t, err)

	table, boxes := singleTarget(t, 5)
	b, err := index.New(method, table)
	require.NoError(t, err)
	requireSelectsTable(t, b, boxes)
}

func TestUnaryIterationPreconditions(t *testing.T) {
	// two operations fit in one index qubit, below the method's minimum
	table, _ := singleTarget(t, 2)
	method, err := index.NewUnaryIteration()
	require.NoError(t, err)
	_, err = index.New(method, table)
	require.ErrorContains(t, err, "requires at least 2 index qubits")

	// an uncompute primitive alone is ambiguous
	_, err = index.NewUnaryIteration(index.WithUncomputeToffoli(decomposedToffoli(t)))
	require.ErrorContains(t, err, "provide a toffoli together with the uncompute toffoli")

	// primitives must act on exactly 3 qubits
	_, err = index.NewUnaryIteration(index.WithToffoli(ryBox(t, 0.3)))
	require.ErrorContains(t, err, "must act on 3 qubits")
}

func TestUnaryIterationWorkRegisterName(t *testing.T) {
	method, err := index.NewUnaryIteration(index.WithWorkRegisterName("anc"))
	require.NoError(t, err)
	table, _ := singleTarget(t, 4)
	b, err := index.New(method, table)
	require.NoError(t, err)
	w, ok := b.WorkRegister()
	require.True(t, ok)
	require.Equal(t, "anc", w.Name())
}

func TestBoxComposesIntoCircuit(t *testing.T) {
	table, _ := singleTarget(t, 4)
	b, err := index.New(index.Default{}, table)
	require.NoError(t, err)

	circ, err := b.InitialiseCircuit(false)
	require.NoError(t, err)
	require.NoError(t, circ.AddBox(b.RegisterBox, nil))

	want, err := b.Unitary()
	require.NoError(t, err)
	got, err := circ.Unitary()
	require.NoError(t, err)
	require.True(t, got.Equal(want, tol))

	// without the index register the box no longer fits as-is
	noIdx, err := b.InitialiseCircuit(true)
	require.NoError(t, err)
	require.False(t, noIdx.Contains(b.IndexRegister().Qubit(0)))
	err = noIdx.AddBox(b.RegisterBox, nil)
	require.ErrorIs(t, err, compose.ErrSubset)
}
