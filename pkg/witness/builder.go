// Package witness builds proof inputs on the prover side: the private
// authentication path for one leaf, paired with the JSON-encodable public
// inputs handed to the verifier.
package witness

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/yourorg/zkmembership/pkg/merkle"
)

// Bundle pairs the private witness for one proof attempt with its public
// inputs. The private half is consumed by Prove and never serialized.
type Bundle struct {
	Private *merkle.Witness
	Public  PublicInputs
}

// Build derives the membership bundle for the leaf at the given tree index.
func Build(tree *merkle.Tree, index int, publicLeaf bool) (*Bundle, error) {
	w, err := tree.Proof(index)
	if err != nil {
		return nil, err
	}
	pub := PublicInputs{Root: toHex(tree.Root())}
	if publicLeaf {
		pub.Leaf = toHex(&w.Leaf)
	}
	return &Bundle{Private: w, Public: pub}, nil
}

// ReadLeaves parses a JSON array of hex-encoded field elements, the leaf
// values of the tree in index order.
func ReadLeaves(r io.Reader) ([]*big.Int, error) {
	var raw []string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding leaves: %w", err)
	}
	leaves := make([]*big.Int, len(raw))
	for i, s := range raw {
		leaf, err := fromHex(s)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		leaves[i] = leaf
	}
	return leaves, nil
}
