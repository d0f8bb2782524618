// Package prover orchestrates the lifecycle around the membership circuit:
// one-time setup per tree depth, proof generation from a private witness, and
// proof verification against the public inputs.
package prover

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/yourorg/zkmembership/circuits"
	"github.com/yourorg/zkmembership/internal/logging"
	"github.com/yourorg/zkmembership/pkg/merkle"
)

// ErrParameterMismatch marks a depth or key-material mismatch between Setup,
// Prove and Verify artifacts.
var ErrParameterMismatch = errors.New("parameter mismatch")

// ErrUnsatisfied marks a witness the backend could not drive through the
// circuit. Callers must treat it, like any Prove failure, as "membership not
// established" and nothing more specific; the error text is for operators,
// not for relaying to third parties.
var ErrUnsatisfied = errors.New("witness does not satisfy the circuit")

// Config fixes the circuit shape. Two systems with different configs are
// incompatible: proofs from one never verify under the other.
type Config struct {
	Depth int

	// PublicLeaf selects the circuit variant that reveals the leaf as a
	// second public input.
	PublicLeaf bool
}

// ProvingSystem bundles the compiled constraint system with its Groth16 key
// pair. All fields are immutable after Setup; concurrent Prove and Verify
// calls may share one instance freely.
type ProvingSystem struct {
	Depth      int
	PublicLeaf bool

	ProvingKey       groth16.ProvingKey
	VerifyingKey     groth16.VerifyingKey
	ConstraintSystem constraint.ConstraintSystem
}

func blueprint(cfg Config) frontend.Circuit {
	if cfg.PublicLeaf {
		return circuits.NewPublicLeafMembership(cfg.Depth)
	}
	return circuits.NewMembership(cfg.Depth)
}

// Compile builds the constraint system for the given config. Shape depends on
// the config alone, never on witness values.
func Compile(cfg Config) (constraint.ConstraintSystem, error) {
	if cfg.Depth < 0 {
		return nil, fmt.Errorf("%w: negative depth %d", ErrParameterMismatch, cfg.Depth)
	}
	return frontend.Compile(circuits.Curve().ScalarField(), r1cs.NewBuilder, blueprint(cfg))
}

// Setup compiles the circuit and runs the Groth16 trusted setup. It is run
// once per config; the resulting system serves every witness of that shape.
func Setup(cfg Config) (*ProvingSystem, error) {
	ccs, err := Compile(cfg)
	if err != nil {
		return nil, err
	}
	logging.Logger().Info().
		Int("depth", cfg.Depth).
		Bool("publicLeaf", cfg.PublicLeaf).
		Int("constraints", ccs.GetNbConstraints()).
		Msg("circuit compiled")

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("groth16 setup: %w", err)
	}
	return &ProvingSystem{
		Depth:            cfg.Depth,
		PublicLeaf:       cfg.PublicLeaf,
		ProvingKey:       pk,
		VerifyingKey:     vk,
		ConstraintSystem: ccs,
	}, nil
}

// Prove generates a membership proof for the given witness and public root.
// The witness shape is checked natively first (ErrMalformedWitness); a
// well-shaped witness that does not hash to root fails inside the backend
// (ErrUnsatisfied). Either way no proof is emitted.
func (ps *ProvingSystem) Prove(w *merkle.Witness, root *big.Int) (*Proof, error) {
	if err := w.Validate(ps.Depth); err != nil {
		return nil, err
	}

	full, err := frontend.NewWitness(ps.assignment(w, root), circuits.Curve().ScalarField())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", merkle.ErrMalformedWitness, err)
	}

	proof, err := groth16.Prove(ps.ConstraintSystem, ps.ProvingKey, full)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsatisfied, err)
	}
	logging.Logger().Debug().Int("depth", ps.Depth).Msg("proof generated")
	return &Proof{Proof: proof}, nil
}

// Verify checks a proof against the public inputs. leaf is consulted only by
// public-leaf systems and may be nil otherwise. Any failure, from a tampered
// proof to mismatched key material, yields false; Verify never panics and
// never reports why.
func (ps *ProvingSystem) Verify(root *big.Int, leaf *big.Int, proof *Proof) bool {
	if proof == nil || proof.Proof == nil || root == nil {
		return false
	}

	var public frontend.Circuit
	if ps.PublicLeaf {
		if leaf == nil {
			return false
		}
		public = &circuits.PublicLeafMembershipCircuit{Root: root, Leaf: leaf}
	} else {
		public = &circuits.MembershipCircuit{Root: root}
	}

	pubWitness, err := frontend.NewWitness(public, circuits.Curve().ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false
	}
	return groth16.Verify(proof.Proof, ps.VerifyingKey, pubWitness) == nil
}

func (ps *ProvingSystem) assignment(w *merkle.Witness, root *big.Int) frontend.Circuit {
	siblings := make([]frontend.Variable, ps.Depth)
	bits := make([]frontend.Variable, ps.Depth)
	for i := 0; i < ps.Depth; i++ {
		siblings[i] = &w.Siblings[i]
		bits[i] = w.Bits[i]
	}
	if ps.PublicLeaf {
		return &circuits.PublicLeafMembershipCircuit{
			Root:     root,
			Leaf:     &w.Leaf,
			Siblings: siblings,
			Bits:     bits,
		}
	}
	return &circuits.MembershipCircuit{
		Root:     root,
		Leaf:     &w.Leaf,
		Siblings: siblings,
		Bits:     bits,
	}
}
