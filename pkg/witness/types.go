package witness

import (
	"fmt"
	"math/big"
)

// PublicInputs is the JSON form of everything the verifier sees: the expected
// root and, for public-leaf deployments only, the leaf. Field elements travel
// as 0x-prefixed hex.
type PublicInputs struct {
	Root string `json:"root"`
	Leaf string `json:"leaf,omitempty"`
}

func (p *PublicInputs) RootInt() (*big.Int, error) {
	return fromHex(p.Root)
}

// LeafInt returns the public leaf, or nil when the leaf is private.
func (p *PublicInputs) LeafInt() (*big.Int, error) {
	if p.Leaf == "" {
		return nil, nil
	}
	return fromHex(p.Leaf)
}

func toHex(i *big.Int) string {
	return fmt.Sprintf("0x%s", i.Text(16))
}

func fromHex(s string) (*big.Int, error) {
	i := new(big.Int)
	if _, ok := i.SetString(s, 0); !ok {
		return nil, fmt.Errorf("invalid field element: %q", s)
	}
	return i, nil
}
