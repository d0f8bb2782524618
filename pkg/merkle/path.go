package merkle

import (
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/zkmembership/pkg/mimc"
)

// PathInput carries the in-circuit wires of one authentication path,
// sibling hashes and direction bits in leaf-to-root order.
type PathInput struct {
	Leaf     frontend.Variable
	Siblings []frontend.Variable
	Bits     []frontend.Variable
}

// ComputeRoot walks the path from leaf to root and returns the wire holding
// the recomputed root. The recursion of the reference check is unrolled into
// a fixed chain: level i orders (running, sibling_i) by bit_i and compresses
// the pair into the level i+1 running value. Feeding each output wire into
// the next invocation is what ties every committed sibling to exactly one
// level; no transition is optional, so the circuit shape depends only on the
// path length.
func ComputeRoot(api frontend.API, in PathInput) frontend.Variable {
	if len(in.Siblings) != len(in.Bits) {
		panic("merkle: sibling and bit counts differ")
	}
	chip := mimc.NewChip(api)
	running := in.Leaf
	for i := range in.Bits {
		left, right := Order(api, running, in.Siblings[i], in.Bits[i])
		running = chip.Compress(left, right)
	}
	return running
}
