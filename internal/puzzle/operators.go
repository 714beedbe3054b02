package puzzle

import (
	"fmt"
	"math/rand"
)

// Operator is an arithmetic operator. Its value is the answer code used
// by operator-choice games.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// Operators lists every operator in code order.
var Operators = []Operator{OpAdd, OpSub, OpMul, OpDiv}

// Symbol is the operator as shown to players.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	case OpDiv:
		return "÷"
	}
	return "?"
}

// Token is the operator in evaluable expression syntax.
func (o Operator) Token() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Apply computes a o b. Division must be exact; ok is false otherwise.
func (o Operator) Apply(a, b int) (int, bool) {
	switch o {
	case OpAdd:
		return a + b, true
	case OpSub:
		return a - b, true
	case OpMul:
		return a * b, true
	case OpDiv:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

// Expr renders "a o b" in evaluable syntax.
func Expr(a int, o Operator, b int) string {
	return fmt.Sprintf("%d %s %d", a, o.Token(), b)
}

// Display renders "a o b" with player-facing symbols.
func Display(a int, o Operator, b int) string {
	return fmt.Sprintf("%d %s %d", a, o.Symbol(), b)
}

// Operands draws a and b in [lo, hi] such that a o b is a non-negative
// integer: subtraction keeps a >= b and division builds a from an exact
// product.
func Operands(rng *rand.Rand, o Operator, lo, hi int) (int, int) {
	switch o {
	case OpSub:
		a, b := Intn(rng, lo, hi), Intn(rng, lo, hi)
		if a < b {
			a, b = b, a
		}
		return a, b
	case OpMul:
		// Keep one factor small so products stay readable.
		return Intn(rng, lo, hi), Intn(rng, lo, max(min(hi, 12), lo))
	case OpDiv:
		lo1 := max(lo, 1)
		b := Intn(rng, lo1, max(min(hi, 12), lo1))
		q := Intn(rng, lo, hi)
		return b * q, b
	default:
		return Intn(rng, lo, hi), Intn(rng, lo, hi)
	}
}
