// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "math"

// DegreeNonlinear is the "3+" sentinel: "nonlinear, degree at least 3".
const DegreeNonlinear = 3

// analysis is the result of one combined forward pass over a reindexed
// tape: per-position polynomial degree, the unique-degree flag, and the
// operator's numeric value (needed to test Pow's exponent for
// integer-valuedness). Computing all three together avoids three separate O(n)
// passes and keeps Operator.Index meaningful for exactly one pass.
type analysis struct {
	degree []int
	unique []bool
	value  []float64
}

// analyze reindexes e and computes degree, unique-degree, and value for
// every tape position.
func (e *Expression) analyze() *analysis {
	e.reindex()
	a := &analysis{
		degree: make([]int, e.n),
		unique: make([]bool, e.n),
		value:  make([]float64, e.n),
	}
	for i := 0; i < e.n; i++ {
		op := e.c.ops[i]
		d, u := computeDegree(op, a)
		a.degree[i] = d
		a.unique[i] = u
		v, _ := evalOperator(op, a.value) // an External operand's error leaves 0, fine: nonlinear regardless
		a.value[i] = v
	}
	return a
}

func operandDegree(o operand, a *analysis) int {
	if o.leaf != nil {
		return leafDegree(o.leaf)
	}
	return a.degree[o.op.Index]
}

func operandUnique(o operand, a *analysis) bool {
	if o.leaf != nil {
		return true
	}
	return a.unique[o.op.Index]
}

func operandValue(o operand, a *analysis) float64 {
	if o.leaf != nil {
		return leafValue(o.leaf)
	}
	return a.value[o.op.Index]
}

func leafDegree(n Node) int {
	if n.IsVariable() {
		return 1
	}
	return 0
}

func isLiteralZero(o operand) bool {
	if o.leaf == nil {
		return false
	}
	c, ok := o.leaf.(*Constant)
	return ok && c.Value == 0
}

func saturate(d int) int {
	if d > DegreeNonlinear {
		return DegreeNonlinear
	}
	return d
}

// computeDegree applies the propagation rule for op.Kind, returning its
// polynomial degree and unique-degree flag.
func computeDegree(op *Operator, a *analysis) (int, bool) {
	switch op.Kind {
	case OpAdd, OpSub:
		d1, u1 := operandDegree(op.Left, a), operandUnique(op.Left, a)
		d2, u2 := operandDegree(op.Right, a), operandUnique(op.Right, a)
		d := d1
		if d2 > d {
			d = d2
		}
		return d, u1 && u2 && d1 == d2

	case OpSum:
		d := 0
		unique := true
		sameDeg := true
		for i, o := range op.Operands {
			od := operandDegree(o, a)
			if i == 0 {
				d = od
			} else if od != d {
				sameDeg = false
			}
			if od > d {
				d = od
			}
			if !operandUnique(o, a) {
				unique = false
			}
		}
		return d, unique && sameDeg

	case OpMul:
		d1 := operandDegree(op.Left, a)
		d2 := operandDegree(op.Right, a)
		return saturate(d1 + d2), operandUnique(op.Left, a) && operandUnique(op.Right, a)

	case OpDiv:
		d1 := operandDegree(op.Left, a)
		d2 := operandDegree(op.Right, a)
		d := d1
		if 3*d2 > d {
			d = 3 * d2
		}
		return saturate(d), operandUnique(op.Left, a) && operandUnique(op.Right, a)

	case OpPow:
		u1 := operandUnique(op.Left, a)
		u2 := operandUnique(op.Right, a)
		d2 := operandDegree(op.Right, a)
		if d2 != 0 {
			return DegreeNonlinear, u1 && u2
		}
		expVal := operandValue(op.Right, a)
		if expVal != math.Trunc(expVal) {
			return DegreeNonlinear, u1 && u2
		}
		eInt := int(expVal)
		if eInt < 0 {
			return DegreeNonlinear, u1 && u2
		}
		return saturate(operandDegree(op.Left, a) * eInt), u1 && u2

	case OpNeg:
		return operandDegree(op.X, a), operandUnique(op.X, a)

	case OpExp, OpLog, OpLog10, OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan:
		u := operandUnique(op.X, a)
		if operandDegree(op.X, a) == 0 {
			return 0, u
		}
		return DegreeNonlinear, u

	case OpLinear:
		return 1, isLiteralZero(op.LinearConstant)

	case OpExternal:
		unique := true
		for _, o := range op.Operands {
			if !operandUnique(o, a) {
				unique = false
			}
		}
		return DegreeNonlinear, unique

	default:
		return DegreeNonlinear, false
	}
}

// Degree returns e's polynomial degree, the DegreeNonlinear sentinel
// standing in for "3 or more".
func (e *Expression) Degree() int {
	if e.n == 0 {
		return 0
	}
	return e.analyze().degree[e.n-1]
}

// Degree returns n's polynomial degree, whether n is a leaf or a tape.
func Degree(n Node) int {
	if n.IsVariable() {
		return 1
	}
	if n.IsLeaf() {
		return 0
	}
	return n.(*Expression).Degree()
}
