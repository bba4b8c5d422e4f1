// Package test provides assertion helpers for circuit tests: unitary
// closeness, selected-block equivalence and serialization round trips.
package test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
)

// Assert is a helper to test circuits and register boxes.
type Assert struct {
	t *testing.T
	*require.Assertions
	opt testingConfig
}

// NewAssert returns an Assert helper embedding a testify/require object
// for convenience.
func NewAssert(t *testing.T, opts ...TestingOption) *Assert {
	t.Helper()
	opt := testingConfig{tolerance: 1e-9}
	for _, o := range opts {
		require.NoError(t, o(&opt))
	}
	return &Assert{t: t, Assertions: require.New(t), opt: opt}
}

// UnitaryEqual asserts that two matrices agree entrywise within the
// configured tolerance.
func (a *Assert) UnitaryEqual(got, want circuit.Matrix) {
	a.t.Helper()
	a.True(got.Equal(want, a.opt.tolerance), "unitaries differ beyond tolerance %v", a.opt.tolerance)
}

// BoxUnitaryEqual asserts that two register boxes implement the same
// unitary.
func (a *Assert) BoxUnitaryEqual(got, want *compose.RegisterBox) {
	a.t.Helper()
	gu, err := got.Unitary()
	a.NoError(err)
	wu, err := want.Unitary()
	a.NoError(err)
	a.True(gu.Equal(wu, a.opt.tolerance), "boxes %q and %q differ beyond tolerance %v", got.Name(), want.Name(), a.opt.tolerance)
}

// SelectedEqual asserts that fixing the given qubits on both sides of
// the box leaves the wanted sub-unitary.
func (a *Assert) SelectedEqual(box *compose.RegisterBox, fixed map[circuit.Qubit]bool, want circuit.Matrix) {
	a.t.Helper()
	got, err := box.SelectedUnitary(fixed, fixed)
	a.NoError(err)
	a.True(got.Equal(want, a.opt.tolerance), "selected block of %q differs beyond tolerance %v", box.Name(), a.opt.tolerance)
}

// SerializationRoundTrip asserts that the circuit survives a write and
// read back with its unitary intact.
func (a *Assert) SerializationRoundTrip(c *circuit.Circuit) {
	a.t.Helper()
	var buf bytes.Buffer
	_, err := c.WriteTo(&buf)
	a.NoError(err)

	var back circuit.Circuit
	_, err = back.ReadFrom(&buf)
	a.NoError(err)

	want, err := c.Unitary()
	a.NoError(err)
	got, err := back.Unitary()
	a.NoError(err)
	a.True(got.Equal(want, a.opt.tolerance), "circuit %q changed across serialization", c.Name())
}
