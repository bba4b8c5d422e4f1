package cswap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
	"github.com/qompose/qompose/gadgets/cswap"
)

const tol = 1e-9

func TestSwapUnderControl(t *testing.T) {
	a := circuit.NewRegister("a", 2)
	b := circuit.NewRegister("b", 2)
	box, err := cswap.New([]circuit.Register{a}, []circuit.Register{b})
	require.NoError(t, err)
	require.Equal(t, "c", box.ControlQubit().Reg)

	// with the control set, a marked qubit of a moves to b
	circ := compose.NewCircuit("main")
	for _, reg := range []circuit.Register{circuit.NewRegister("c", 1), a, b} {
		_, err := circ.AddRegister(reg)
		require.NoError(t, err)
	}
	circ.X(box.ControlQubit())
	circ.X(a.Qubit(0))
	require.NoError(t, circ.AddBox(box.RegisterBox, nil))

	state, err := circ.Statevector()
	require.NoError(t, err)
	// qubit order c, a0, a1, b0, b1: expect |1 00 10>
	require.InDelta(t, 1, real(state[0b10010]), tol)

	// with the control clear, nothing moves
	circ2 := compose.NewCircuit("main2")
	for _, reg := range []circuit.Register{circuit.NewRegister("c", 1), a, b} {
		_, err := circ2.AddRegister(reg)
		require.NoError(t, err)
	}
	circ2.X(a.Qubit(0))
	require.NoError(t, circ2.AddBox(box.RegisterBox, nil))

	state, err = circ2.Statevector()
	require.NoError(t, err)
	require.InDelta(t, 1, real(state[0b01000]), tol)
}

func TestSwapPairsMultipleRegisters(t *testing.T) {
	a0 := circuit.NewRegister("a0", 1)
	a1 := circuit.NewRegister("a1", 1)
	b0 := circuit.NewRegister("b0", 1)
	b1 := circuit.NewRegister("b1", 1)
	box, err := cswap.New([]circuit.Register{a0, a1}, []circuit.Register{b0, b1})
	require.NoError(t, err)
	require.Len(t, box.A(), 2)
	require.Len(t, box.B(), 2)

	circ := compose.NewCircuit("main")
	for _, reg := range []circuit.Register{circuit.NewRegister("c", 1), a0, a1, b0, b1} {
		_, err := circ.AddRegister(reg)
		require.NoError(t, err)
	}
	circ.X(box.ControlQubit())
	circ.X(a0.Qubit(0))
	circ.X(a1.Qubit(0))
	require.NoError(t, circ.AddBox(box.RegisterBox, nil))

	state, err := circ.Statevector()
	require.NoError(t, err)
	// qubit order c, a0, a1, b0, b1: both marks move to the b side
	require.InDelta(t, 1, real(state[0b10011]), tol)
}

func TestSwapValidation(t *testing.T) {
	a := circuit.NewRegister("a", 2)
	b := circuit.NewRegister("b", 2)

	_, err := cswap.New([]circuit.Register{a, b}, []circuit.Register{b})
	require.ErrorIs(t, err, compose.ErrLengthMismatch)

	_, err = cswap.New([]circuit.Register{a}, []circuit.Register{circuit.NewRegister("b", 3)})
	require.ErrorIs(t, err, compose.ErrShapeMismatch)

	_, err = cswap.New(nil, nil)
	require.ErrorContains(t, err, "no registers to swap")

	box, err := cswap.New([]circuit.Register{a}, []circuit.Register{b},
		cswap.WithControlRegisterName("ctl"))
	require.NoError(t, err)
	require.Equal(t, "ctl", box.ControlQubit().Reg)
}
