package mimc

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// Chip arithmetizes the compression function. Every Compress call lays down
// the same constraints (2 blocks × Rounds × 3 multiplications plus the
// additions), independent of the values flowing through, so one compiled
// constraint system serves every witness of a given tree depth.
type Chip struct {
	api       frontend.API
	constants *[Rounds]big.Int
}

func NewChip(api frontend.API) *Chip {
	return &Chip{api: api, constants: constantsBig()}
}

// Compress emits the constraints computing H(a, b) and returns the output
// wire. The caller feeds that wire into the next chip; gnark's wiring plays
// the role of a copy constraint between the two.
func (c *Chip) Compress(a, b frontend.Variable) frontend.Variable {
	h := frontend.Variable(0)
	h = c.block(h, a)
	h = c.block(h, b)
	return h
}

func (c *Chip) block(h, m frontend.Variable) frontend.Variable {
	e := c.encrypt(h, m)
	return c.api.Add(e, h, m)
}

func (c *Chip) encrypt(k, m frontend.Variable) frontend.Variable {
	x := m
	for i := 0; i < Rounds; i++ {
		t := c.api.Add(x, k, &c.constants[i])
		x = c.pow5(t)
	}
	return c.api.Add(x, k)
}

func (c *Chip) pow5(x frontend.Variable) frontend.Variable {
	x2 := c.api.Mul(x, x)
	x4 := c.api.Mul(x2, x2)
	return c.api.Mul(x4, x)
}
