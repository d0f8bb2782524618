package merkle

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/yourorg/zkmembership/pkg/mimc"
)

// Tree is a fixed-depth binary Merkle tree over field elements, hashed with
// the same compression function the circuit arithmetizes. It exists on the
// prover side only, to derive roots and authentication paths; the verifier
// never sees one.
type Tree struct {
	depth  int
	levels [][]fr.Element // levels[0] = leaves, levels[depth] = [root]
}

// NewTree builds a depth-deep tree over the given leaves, padding the
// remaining slots with zero. Capacity is 1<<depth.
func NewTree(depth int, leaves []*big.Int) (*Tree, error) {
	if depth < 0 {
		return nil, fmt.Errorf("tree depth must be non-negative, got %d", depth)
	}
	capacity := 1 << depth
	if len(leaves) > capacity {
		return nil, fmt.Errorf("%d leaves exceed capacity %d of depth-%d tree", len(leaves), capacity, depth)
	}

	t := &Tree{depth: depth, levels: make([][]fr.Element, depth+1)}
	t.levels[0] = make([]fr.Element, capacity)
	for i, leaf := range leaves {
		t.levels[0][i].SetBigInt(leaf)
	}
	for lvl := 1; lvl <= depth; lvl++ {
		below := t.levels[lvl-1]
		t.levels[lvl] = make([]fr.Element, len(below)/2)
		for i := range t.levels[lvl] {
			t.levels[lvl][i] = mimc.Compress(&below[2*i], &below[2*i+1])
		}
	}
	return t, nil
}

func (t *Tree) Depth() int { return t.depth }

func (t *Tree) Root() *big.Int {
	root := new(big.Int)
	t.levels[t.depth][0].BigInt(root)
	return root
}

// Leaf returns the value stored at the given index.
func (t *Tree) Leaf(index int) (*big.Int, error) {
	if index < 0 || index >= 1<<t.depth {
		return nil, fmt.Errorf("leaf index %d out of range for depth %d", index, t.depth)
	}
	leaf := new(big.Int)
	t.levels[0][index].BigInt(leaf)
	return leaf, nil
}

// Proof derives the membership witness for the leaf at the given index.
// At level i the node's position is bit i of the index: 1 means it sits on
// the right, so its sibling goes on the left of the hash input.
func (t *Tree) Proof(index int) (*Witness, error) {
	if index < 0 || index >= 1<<t.depth {
		return nil, fmt.Errorf("leaf index %d out of range for depth %d", index, t.depth)
	}

	w := &Witness{
		Siblings: make([]big.Int, t.depth),
		Bits:     make([]uint8, t.depth),
	}
	t.levels[0][index].BigInt(&w.Leaf)

	pos := index
	for lvl := 0; lvl < t.depth; lvl++ {
		sibling := pos ^ 1
		t.levels[lvl][sibling].BigInt(&w.Siblings[lvl])
		w.Bits[lvl] = uint8(pos & 1)
		pos >>= 1
	}
	return w, nil
}
