package lcu_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qompose/qompose/circuit"
	"github.com/qompose/qompose/compose"
	"github.com/qompose/qompose/index"
	"github.com/qompose/qompose/lcu"
	"github.com/qompose/qompose/test"
)

// pauliBox returns a box applying the given single-qubit gates to a
// register of matching width.
func pauliBox(t *testing.T, name string, gates string) *compose.RegisterBox {
	t.Helper()
	circ := circuit.New(name)
	reg, err := circ.AddRegister(circuit.NewRegister("s", len(gates)))
	require.NoError(t, err)
	for i, g := range gates {
		q := reg.Qubit(i)
		switch g {
		case 'I':
			// identity terms carry no gate
		case 'X':
			circ.X(q)
		case 'Y':
			circ.Y(q)
		case 'Z':
			circ.Z(q)
		case 'H':
			circ.H(q)
		default:
			t.Fatalf("unknown gate %q", g)
		}
	}
	box, err := compose.FromCircuit(circ)
	require.NoError(t, err)
	return box
}

func assertSelects(assert *test.Assert, s *lcu.SelectBox, terms []*compose.RegisterBox) {
	prep := s.PrepareRegister()
	for i, term := range terms {
		fixed := make(map[circuit.Qubit]bool)
		for p, bit := range s.Operations().Bits(i) {
			fixed[prep.Qubit(p)] = bit
		}
		if w, ok := s.WorkRegister(); ok {
			for _, q := range w.Qubits() {
				fixed[q] = false
			}
		}
		want, err := term.Unitary()
		assert.NoError(err)
		assert.SelectedEqual(s.RegisterBox, fixed, want)
	}
}

func TestSelectAppliesEachTerm(t *testing.T) {
	assert := test.NewAssert(t)
	terms := []*compose.RegisterBox{
		pauliBox(t, "XZ", "XZ"),
		pauliBox(t, "ZI", "ZI"),
		pauliBox(t, "YY", "YY"),
		pauliBox(t, "IH", "IH"),
	}
	s, err := lcu.NewSelect(index.Default{}, terms)
	assert.NoError(err)
	assert.Equal(4, s.NumTerms())
	assert.Equal(2, s.NumPrepareQubits())
	assert.Equal("p", s.PrepareRegister().Name())
	assert.Equal("q", s.StateRegister().Name())
	assertSelects(assert, s, terms)

	assert.SerializationRoundTrip(s.Circuit())
}

func TestSelectUnaryIteration(t *testing.T) {
	assert := test.NewAssert(t)
	terms := []*compose.RegisterBox{
		pauliBox(t, "X", "X"),
		pauliBox(t, "Y", "Y"),
		pauliBox(t, "Z", "Z"),
		pauliBox(t, "H", "H"),
		pauliBox(t, "I", "I"),
	}
	method, err := index.NewUnaryIteration()
	assert.NoError(err)
	s, err := lcu.NewSelect(method, terms)
	assert.NoError(err)
	assertSelects(assert, s, terms)
}

func TestSelectRegisterNames(t *testing.T) {
	assert := test.NewAssert(t)
	terms := []*compose.RegisterBox{
		pauliBox(t, "X", "X"),
		pauliBox(t, "Z", "Z"),
	}
	s, err := lcu.NewSelect(index.Default{}, terms,
		lcu.WithPrepareRegisterName("prep"),
		lcu.WithStateRegisterName("state"),
	)
	assert.NoError(err)
	assert.Equal("prep", s.PrepareRegister().Name())
	assert.Equal("state", s.StateRegister().Name())
	assertSelects(assert, s, terms)
}

func TestSelectShapeMismatch(t *testing.T) {
	terms := []*compose.RegisterBox{
		pauliBox(t, "X", "X"),
		pauliBox(t, "XZ", "XZ"),
	}
	_, err := lcu.NewSelect(index.Default{}, terms)
	require.ErrorIs(t, err, compose.ErrShapeMismatch)

	_, err = lcu.NewSelect(index.Default{}, nil)
	require.ErrorContains(t, err, "at least one term")
}
