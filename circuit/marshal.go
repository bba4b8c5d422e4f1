package circuit

import (
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/qompose/qompose"
	"github.com/qompose/qompose/logger"
)

type serQubit struct {
	Reg   string `cbor:"r"`
	Index int    `cbor:"i"`
}

type serRegister struct {
	Name string `cbor:"n"`
	Size int    `cbor:"s"`
}

type serGate struct {
	Kind   string    `cbor:"k"`
	Params []float64 `cbor:"p,omitempty"`
}

type serOp struct {
	Gate      *serGate    `cbor:"g,omitempty"`
	Box       *serCircuit `cbor:"b,omitempty"`
	NControls int         `cbor:"c,omitempty"`
	Qubits    []serQubit  `cbor:"q"`
}

type serCircuit struct {
	Name      string        `cbor:"name"`
	Phase     float64       `cbor:"phase,omitempty"`
	Registers []serRegister `cbor:"regs"`
	Extra     []serQubit    `cbor:"extra,omitempty"`
	Ops       []serOp       `cbor:"ops"`
}

// serEnvelope is the on-wire form: a version header followed by the circuit.
type serEnvelope struct {
	Version string     `cbor:"version"`
	Circuit serCircuit `cbor:"circuit"`
}

func toSerQubits(qs []Qubit) []serQubit {
	out := make([]serQubit, len(qs))
	for i, q := range qs {
		out[i] = serQubit{Reg: q.Reg, Index: q.Index}
	}
	return out
}

func (c *Circuit) toSer() serCircuit {
	s := serCircuit{
		Name:  c.name,
		Phase: c.phase,
		Extra: toSerQubits(c.extra),
	}
	for _, r := range c.regs {
		s.Registers = append(s.Registers, serRegister{Name: r.Name(), Size: r.Size()})
	}
	for _, op := range c.ops {
		so := serOp{NControls: op.nControls, Qubits: toSerQubits(op.qubits)}
		if op.gate != nil {
			so.Gate = &serGate{Kind: op.gate.Kind.String(), Params: op.gate.Params}
		}
		if op.box != nil {
			box := op.box.toSer()
			so.Box = &box
		}
		s.Ops = append(s.Ops, so)
	}
	return s
}

func kindFromName(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown gate kind %q", name)
}

func fromSer(s serCircuit) (*Circuit, error) {
	c := New(s.Name)
	for _, r := range s.Registers {
		if _, err := c.AddRegister(NewRegister(r.Name, r.Size)); err != nil {
			return nil, err
		}
	}
	for _, q := range s.Extra {
		if err := c.AddQubit(Qubit{Reg: q.Reg, Index: q.Index}); err != nil {
			return nil, err
		}
	}
	for _, op := range s.Ops {
		qs := make([]Qubit, len(op.Qubits))
		for i, q := range op.Qubits {
			qs[i] = Qubit{Reg: q.Reg, Index: q.Index}
		}
		switch {
		case op.Gate != nil:
			k, err := kindFromName(op.Gate.Kind)
			if err != nil {
				return nil, err
			}
			if err := c.AddGate(Gate{Kind: k, Params: op.Gate.Params}, qs...); err != nil {
				return nil, err
			}
		case op.Box != nil:
			box, err := fromSer(*op.Box)
			if err != nil {
				return nil, err
			}
			if err := c.AddControlledBox(box, op.NControls, qs); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("serialized operation carries neither gate nor box")
		}
	}
	c.phase = s.Phase
	return c, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// WriteTo serializes the circuit in CBOR, prefixed with the library version.
func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := cbor.NewEncoder(cw)
	err := enc.Encode(serEnvelope{Version: qompose.Version.String(), Circuit: c.toSer()})
	return cw.n, err
}

// ReadFrom deserializes a circuit written by WriteTo, replacing the
// receiver's content. A different major version is rejected; a minor
// mismatch only logs a warning, as there are no guarantees on compatibility.
func (c *Circuit) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	dec := cbor.NewDecoder(cr)
	var env serEnvelope
	if err := dec.Decode(&env); err != nil {
		return cr.n, err
	}
	objectVersion, err := semver.Parse(env.Version)
	if err != nil {
		return cr.n, fmt.Errorf("when parsing serialized version: %w", err)
	}
	if objectVersion.Major != qompose.Version.Major {
		return cr.n, fmt.Errorf("unsupported serialization version %s (binary is %s)", objectVersion, qompose.Version)
	}
	if objectVersion.Compare(qompose.Version) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", qompose.Version.String()).Str("object", objectVersion.String()).Msg("version mismatch with serialized circuit")
	}
	decoded, err := fromSer(env.Circuit)
	if err != nil {
		return cr.n, err
	}
	*c = *decoded
	return cr.n, nil
}
