package circuits

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"

	"github.com/yourorg/zkmembership/pkg/merkle"
)

func Curve() ecc.ID { return ecc.BN254 }

// MembershipCircuit proves that a private leaf sits in the fixed-depth Merkle
// tree hashing to the public Root. Leaf, siblings and direction bits never
// leave the prover; the verifier learns only that some valid path exists.
// The slice lengths fix the tree depth at compile time, so the circuit shape
// depends on depth alone, never on the values assigned.
type MembershipCircuit struct {
	Root frontend.Variable `gnark:",public"`

	Leaf     frontend.Variable
	Siblings []frontend.Variable
	Bits     []frontend.Variable
}

// NewMembership allocates the circuit blueprint for the given depth.
func NewMembership(depth int) *MembershipCircuit {
	return &MembershipCircuit{
		Siblings: make([]frontend.Variable, depth),
		Bits:     make([]frontend.Variable, depth),
	}
}

func (c *MembershipCircuit) Define(api frontend.API) error {
	computed := merkle.ComputeRoot(api, merkle.PathInput{
		Leaf:     c.Leaf,
		Siblings: c.Siblings,
		Bits:     c.Bits,
	})
	api.AssertIsEqual(computed, c.Root)
	return nil
}

// PublicLeafMembershipCircuit is the variant that additionally reveals the
// leaf, for deployments where the committed item is public and only the
// position is private.
type PublicLeafMembershipCircuit struct {
	Root frontend.Variable `gnark:",public"`
	Leaf frontend.Variable `gnark:",public"`

	Siblings []frontend.Variable
	Bits     []frontend.Variable
}

func NewPublicLeafMembership(depth int) *PublicLeafMembershipCircuit {
	return &PublicLeafMembershipCircuit{
		Siblings: make([]frontend.Variable, depth),
		Bits:     make([]frontend.Variable, depth),
	}
}

func (c *PublicLeafMembershipCircuit) Define(api frontend.API) error {
	computed := merkle.ComputeRoot(api, merkle.PathInput{
		Leaf:     c.Leaf,
		Siblings: c.Siblings,
		Bits:     c.Bits,
	})
	api.AssertIsEqual(computed, c.Root)
	return nil
}
