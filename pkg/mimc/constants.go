package mimc

import (
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/ethereum/go-ethereum/crypto"
)

// Rounds is the number of keyed-permutation rounds. With the x^5 S-box over
// the BN254 scalar field, 110 rounds clear the algebraic-degree security
// margin (5^110 > r).
const Rounds = 110

// seed anchors the constant schedule. Prover and verifier must agree on it,
// so it is fixed at compile time and versioned.
const seed = "zkmembership/mimc/bn254/v1"

var (
	constantsOnce sync.Once
	roundFr       [Rounds]fr.Element
	roundBig      [Rounds]big.Int
)

func deriveConstants() {
	d := crypto.Keccak256([]byte(seed))
	for i := 0; i < Rounds; i++ {
		d = crypto.Keccak256(d)
		roundFr[i].SetBigInt(new(big.Int).SetBytes(d))
		roundFr[i].BigInt(&roundBig[i])
	}
}

// constants returns the round constant schedule as field elements.
func constants() *[Rounds]fr.Element {
	constantsOnce.Do(deriveConstants)
	return &roundFr
}

// constantsBig returns the same schedule in big.Int form for circuit use.
func constantsBig() *[Rounds]big.Int {
	constantsOnce.Do(deriveConstants)
	return &roundBig
}
