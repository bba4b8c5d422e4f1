package compose

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/qompose/qompose/circuit"
)

func TestRegistersOrderAndAccess(t *testing.T) {
	idx := circuit.NewRegister("i", 2)
	t0 := circuit.NewRegister("t0", 1)
	t1 := circuit.NewRegister("t1", 3)

	regs := NewRegisters()
	require.NoError(t, regs.Add(RoleIndex, idx))
	require.NoError(t, regs.AddList(RoleTarget, []circuit.Register{t0, t1}))

	require.Empty(t, cmp.Diff([]string{RoleIndex, RoleTarget}, regs.Roles()))

	got, ok := regs.Get(RoleIndex)
	require.True(t, ok)
	require.Equal(t, idx, got)

	// a list role is not readable as a single register
	_, ok = regs.Get(RoleTarget)
	require.False(t, ok)

	lst, ok := regs.List(RoleTarget)
	require.True(t, ok)
	require.Equal(t, []circuit.Register{t0, t1}, lst)

	// qubits follow role definition order, registers in list order
	var want []circuit.Qubit
	want = append(want, idx.Qubits()...)
	want = append(want, t0.Qubits()...)
	want = append(want, t1.Qubits()...)
	require.Equal(t, want, regs.Qubits())
}

func TestRegistersCollision(t *testing.T) {
	regs := NewRegisters()
	require.NoError(t, regs.Add(RoleWork, circuit.NewRegister("w", 1)))
	err := regs.Add(RoleWork, circuit.NewRegister("w2", 1))
	require.ErrorContains(t, err, "already defined")

	_, err = regs.Extended(RoleWork, circuit.NewRegister("w3", 1))
	require.ErrorContains(t, err, "already defined")
}

func TestRegistersExtendedIsACopy(t *testing.T) {
	base := NewRegisters()
	require.NoError(t, base.Add(RoleTarget, circuit.NewRegister("t", 1)))

	ext, err := base.Extended(RoleControl, circuit.NewRegister("a", 2))
	require.NoError(t, err)
	require.True(t, ext.Has(RoleControl))
	require.False(t, base.Has(RoleControl))
	require.Equal(t, []string{RoleTarget, RoleControl}, ext.Roles())
}
