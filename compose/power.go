package compose

import "fmt"

// PowerBox is a register box applying the original box a fixed number of
// times in sequence.
type PowerBox struct {
	*RegisterBox
	power int
}

// PowerOf returns the number of repetitions.
func (pb *PowerBox) PowerOf() int { return pb.power }

// Power returns a new box applying b n times. n may be zero, giving the
// identity on the box's registers.
func (b *RegisterBox) Power(n int) (*PowerBox, error) {
	if n < 0 {
		return nil, fmt.Errorf("power must be non-negative, got %d", n)
	}
	circ := NewCircuit(fmt.Sprintf("%s^%d", b.name, n))
	for _, r := range b.circ.Registers() {
		if _, err := circ.AddRegister(r); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if err := circ.AddBox(b, nil); err != nil {
			return nil, err
		}
	}
	inner, err := NewRegisterBox(b.regs.Copy(), circ.Circuit)
	if err != nil {
		return nil, err
	}
	return &PowerBox{RegisterBox: inner, power: n}, nil
}
