// Package mimc implements the 2-to-1 compression function used to hash
// Merkle tree nodes, in two synchronized forms: a native one operating on
// BN254 scalar field elements, used when building trees and witnesses, and a
// circuit chip (see chip.go) producing the identical value inside a
// constraint system. Both walk the same round-constant schedule, so a root
// computed natively is exactly the value the circuit recomputes.
//
// The construction is MiMC with an x^5 S-box folded through Miyaguchi–Preneel:
//
//	E_k(m): x = m; repeat Rounds times: x = (x + k + c_i)^5; return x + k
//	H(a, b): h = 0; h = E_h(a) + h + a; h = E_h(b) + h + b; return h
//
// Collision resistance rests on the hash itself; the circuit only enforces
// that the prover evaluated it correctly.
package mimc

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Compress returns H(a, b), the hash of one tree node over its two children.
func Compress(a, b *fr.Element) fr.Element {
	var h fr.Element
	h = block(h, *a)
	h = block(h, *b)
	return h
}

// CompressBig is Compress over big.Int operands reduced into the field.
func CompressBig(a, b *big.Int) *big.Int {
	var ae, be fr.Element
	ae.SetBigInt(a)
	be.SetBigInt(b)
	out := Compress(&ae, &be)
	res := new(big.Int)
	out.BigInt(res)
	return res
}

func block(h, m fr.Element) fr.Element {
	e := encrypt(h, m)
	e.Add(&e, &h)
	e.Add(&e, &m)
	return e
}

func encrypt(k, m fr.Element) fr.Element {
	cs := constants()
	x := m
	var t fr.Element
	for i := 0; i < Rounds; i++ {
		t.Add(&x, &k)
		t.Add(&t, &cs[i])
		x = pow5(t)
	}
	x.Add(&x, &k)
	return x
}

func pow5(x fr.Element) fr.Element {
	var x2, x4, r fr.Element
	x2.Square(&x)
	x4.Square(&x2)
	r.Mul(&x4, &x)
	return r
}
