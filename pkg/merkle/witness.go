package merkle

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/yourorg/zkmembership/pkg/mimc"
)

// ErrMalformedWitness marks witnesses whose shape cannot satisfy any circuit
// of the requested depth: wrong sequence lengths or a non-boolean direction
// bit. It is detected natively, before any assignment reaches the backend.
var ErrMalformedWitness = errors.New("malformed witness")

// Witness is the private material for one membership proof: the committed
// leaf and its authentication path in leaf-to-root order. Bit i = 0 means the
// running value is the left hash input at level i. A Witness is consumed by
// one Prove call and never transmitted.
type Witness struct {
	Leaf     big.Int
	Siblings []big.Int
	Bits     []uint8
}

// Validate checks the witness shape against a tree depth.
func (w *Witness) Validate(depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrMalformedWitness, depth)
	}
	if len(w.Siblings) != depth {
		return fmt.Errorf("%w: %d siblings for depth %d", ErrMalformedWitness, len(w.Siblings), depth)
	}
	if len(w.Bits) != depth {
		return fmt.Errorf("%w: %d direction bits for depth %d", ErrMalformedWitness, len(w.Bits), depth)
	}
	for i, b := range w.Bits {
		if b > 1 {
			return fmt.Errorf("%w: direction bit %d is %d, want 0 or 1", ErrMalformedWitness, i, b)
		}
	}
	return nil
}

// Root recomputes the root this witness hashes to, natively. It mirrors the
// circuit walk exactly; a proof generated from this witness verifies against
// this value and no other.
func (w *Witness) Root() *big.Int {
	running := new(big.Int).Set(&w.Leaf)
	for i := range w.Siblings {
		if w.Bits[i] == 0 {
			running = mimc.CompressBig(running, &w.Siblings[i])
		} else {
			running = mimc.CompressBig(&w.Siblings[i], running)
		}
	}
	return running
}
