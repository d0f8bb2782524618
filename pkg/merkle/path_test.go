package merkle

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"

	"github.com/yourorg/zkmembership/pkg/mimc"
)

type depth2Circuit struct {
	Root     frontend.Variable `gnark:",public"`
	Leaf     frontend.Variable
	Siblings [2]frontend.Variable
	Bits     [2]frontend.Variable
}

func (c *depth2Circuit) Define(api frontend.API) error {
	computed := ComputeRoot(api, PathInput{
		Leaf:     c.Leaf,
		Siblings: c.Siblings[:],
		Bits:     c.Bits[:],
	})
	api.AssertIsEqual(computed, c.Root)
	return nil
}

// The four-leaf scenario: n0 = H(l0, l1), n1 = H(l2, l3), root = H(n0, n1).
func depth2Fixture() (l0, l1, l2, l3, n0, n1, root *big.Int) {
	l0, l1, l2, l3 = big.NewInt(10), big.NewInt(20), big.NewInt(30), big.NewInt(40)
	n0 = mimc.CompressBig(l0, l1)
	n1 = mimc.CompressBig(l2, l3)
	root = mimc.CompressBig(n0, n1)
	return
}

func TestPathLeftmostLeaf(t *testing.T) {
	l0, l1, _, _, _, n1, root := depth2Fixture()

	assert := test.NewAssert(t)
	assert.ProverSucceeded(
		new(depth2Circuit),
		&depth2Circuit{
			Root:     root,
			Leaf:     l0,
			Siblings: [2]frontend.Variable{l1, n1},
			Bits:     [2]frontend.Variable{0, 0},
		},
		test.WithCurves(ecc.BN254),
	)
}

func TestPathRightSubtreeLeaf(t *testing.T) {
	_, _, l2, l3, n0, _, root := depth2Fixture()

	// l2 is the left child of n1, and n1 the right child of the root
	assert := test.NewAssert(t)
	assert.ProverSucceeded(
		new(depth2Circuit),
		&depth2Circuit{
			Root:     root,
			Leaf:     l2,
			Siblings: [2]frontend.Variable{l3, n0},
			Bits:     [2]frontend.Variable{0, 1},
		},
		test.WithCurves(ecc.BN254),
	)
}

func TestPathFlippedBitBreaksChain(t *testing.T) {
	l0, l1, _, _, _, n1, root := depth2Fixture()

	// with l0 != l1, flipping the level-0 bit hashes H(l1, l0) != n0 and the
	// chain never reaches the root
	assert := test.NewAssert(t)
	assert.ProverFailed(
		new(depth2Circuit),
		&depth2Circuit{
			Root:     root,
			Leaf:     l0,
			Siblings: [2]frontend.Variable{l1, n1},
			Bits:     [2]frontend.Variable{1, 0},
		},
		test.WithCurves(ecc.BN254),
	)
}

func TestPathWrongSibling(t *testing.T) {
	l0, l1, _, _, _, _, root := depth2Fixture()

	assert := test.NewAssert(t)
	assert.ProverFailed(
		new(depth2Circuit),
		&depth2Circuit{
			Root:     root,
			Leaf:     l0,
			Siblings: [2]frontend.Variable{l1, big.NewInt(999)},
			Bits:     [2]frontend.Variable{0, 0},
		},
		test.WithCurves(ecc.BN254),
	)
}
