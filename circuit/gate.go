package circuit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Kind enumerates the atomic gate set.
type Kind uint8

const (
	KindUnknown Kind = iota
	X
	Y
	Z
	H
	S
	Sdg
	T
	Tdg
	Rx
	Ry
	Rz
	U1
	CX
	CZ
	CU1
	Swap
	CCX
	CSwap
	CnZ
)

var kindNames = map[Kind]string{
	X: "X", Y: "Y", Z: "Z", H: "H",
	S: "S", Sdg: "Sdg", T: "T", Tdg: "Tdg",
	Rx: "Rx", Ry: "Ry", Rz: "Rz", U1: "U1",
	CX: "CX", CZ: "CZ", CU1: "CU1", Swap: "SWAP",
	CCX: "CCX", CSwap: "CSWAP", CnZ: "CnZ",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// arity returns the number of qubits the kind acts on, or -1 when the kind
// accepts a variable number of qubits.
func (k Kind) arity() int {
	switch k {
	case X, Y, Z, H, S, Sdg, T, Tdg, Rx, Ry, Rz, U1:
		return 1
	case CX, CZ, CU1, Swap:
		return 2
	case CCX, CSwap:
		return 3
	case CnZ:
		return -1
	}
	return 0
}

// nParams returns the number of angle parameters the kind carries.
func (k Kind) nParams() int {
	switch k {
	case Rx, Ry, Rz, U1, CU1:
		return 1
	}
	return 0
}

// Gate is an atomic operation of a fixed kind, with rotation angles in
// radians where applicable.
type Gate struct {
	Kind   Kind
	Params []float64
}

// NewGate returns a gate of the given kind. It panics if the number of
// parameters does not match the kind.
func NewGate(k Kind, params ...float64) Gate {
	if len(params) != k.nParams() {
		panic(fmt.Sprintf("gate %s takes %d parameter(s), got %d", k, k.nParams(), len(params)))
	}
	return Gate{Kind: k, Params: params}
}

// Dagger returns the inverse gate.
func (g Gate) Dagger() Gate {
	switch g.Kind {
	case S:
		return Gate{Kind: Sdg}
	case Sdg:
		return Gate{Kind: S}
	case T:
		return Gate{Kind: Tdg}
	case Tdg:
		return Gate{Kind: T}
	case Rx, Ry, Rz, U1, CU1:
		return Gate{Kind: g.Kind, Params: []float64{-g.Params[0]}}
	default:
		// the remaining kinds are self-inverse
		return g
	}
}

// matrix returns the dense unitary of the gate over nq qubits, with the
// first qubit argument as the most significant basis bit.
func (g Gate) matrix(nq int) Matrix {
	invSqrt2 := complex(1/math.Sqrt2, 0)
	switch g.Kind {
	case X:
		return Matrix{{0, 1}, {1, 0}}
	case Y:
		return Matrix{{0, -1i}, {1i, 0}}
	case Z:
		return Matrix{{1, 0}, {0, -1}}
	case H:
		return Matrix{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	case S:
		return Matrix{{1, 0}, {0, 1i}}
	case Sdg:
		return Matrix{{1, 0}, {0, -1i}}
	case T:
		return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}
	case Tdg:
		return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, -math.Pi/4))}}
	case Rx:
		c := complex(math.Cos(g.Params[0]/2), 0)
		js := complex(0, -math.Sin(g.Params[0]/2))
		return Matrix{{c, js}, {js, c}}
	case Ry:
		c := complex(math.Cos(g.Params[0]/2), 0)
		s := complex(math.Sin(g.Params[0]/2), 0)
		return Matrix{{c, -s}, {s, c}}
	case Rz:
		p := cmplx.Exp(complex(0, g.Params[0]/2))
		return Matrix{{cmplx.Conj(p), 0}, {0, p}}
	case U1:
		return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, g.Params[0]))}}
	case CX:
		return Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 1, 0},
		}
	case CZ:
		return Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, -1},
		}
	case CU1:
		return Matrix{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, cmplx.Exp(complex(0, g.Params[0]))},
		}
	case Swap:
		return Matrix{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}
	case CCX:
		m := Identity(8)
		m[6][6], m[7][7] = 0, 0
		m[6][7], m[7][6] = 1, 1
		return m
	case CSwap:
		m := Identity(8)
		m[5][5], m[6][6] = 0, 0
		m[5][6], m[6][5] = 1, 1
		return m
	case CnZ:
		dim := 1 << nq
		m := Identity(dim)
		m[dim-1][dim-1] = -1
		return m
	}
	panic(fmt.Sprintf("no matrix for gate kind %d", g.Kind))
}
