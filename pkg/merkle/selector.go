// Package merkle holds the circuit gadgets that verify a fixed-depth Merkle
// authentication path, plus the native tree used to build witnesses for them.
package merkle

import (
	"github.com/consensys/gnark/frontend"
)

// Order arranges a (current, sibling) pair into hash-input order according to
// a path-direction bit: bit = 0 keeps current on the left, bit = 1 swaps.
//
// A circuit cannot branch, so the swap is the algebraic blend
//
//	left  = current + bit·(sibling − current)
//	right = sibling + bit·(current − sibling)
//
// together with bit·(bit−1) = 0. A witness carrying a non-boolean bit leaves
// the system unsatisfiable and proof generation fails; that failure is the
// enforcement mechanism, not an error path in this code.
func Order(api frontend.API, current, sibling, bit frontend.Variable) (left, right frontend.Variable) {
	api.AssertIsBoolean(bit)
	left = api.Add(current, api.Mul(bit, api.Sub(sibling, current)))
	right = api.Add(sibling, api.Mul(bit, api.Sub(current, sibling)))
	return left, right
}
