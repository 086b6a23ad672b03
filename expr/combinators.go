// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "math"

// binaryHelper assembles a new tape for a binary Operator given two operand
// Nodes, choosing a base tape and extending it per the tape assembly rule:
// if both operands are leaves, start a fresh one-entry tape; otherwise
// shallow-copy the first operand tape (aliasing its operators when safe),
// append the other operand tape's operators, then append op referencing
// each contributing tape's root.
func binaryHelper(n1, n2 Node, op *Operator) *Expression {
	switch {
	case n1.IsLeaf() && n2.IsLeaf():
		op.Left = leafOperand(n1)
		op.Right = leafOperand(n2)
		e := newExpression()
		e.mustAddOperator(op)
		return e
	case n1.IsLeaf():
		e2 := n2.(*Expression)
		op.Left = leafOperand(n1)
		op.Right = e2.lastOperandRef()
		e := e2.copyExpr()
		e.mustAddOperator(op)
		return e
	case n2.IsLeaf():
		e1 := n1.(*Expression)
		op.Left = e1.lastOperandRef()
		op.Right = leafOperand(n2)
		e := e1.copyExpr()
		e.mustAddOperator(op)
		return e
	default:
		e1 := n1.(*Expression)
		e2 := n2.(*Expression)
		op.Left = e1.lastOperandRef()
		op.Right = e2.lastOperandRef()
		e := e1.copyExpr()
		e.extendOperators(e2)
		e.mustAddOperator(op)
		return e
	}
}

// unaryHelper is binaryHelper's one-operand counterpart.
func unaryHelper(n1 Node, op *Operator) *Expression {
	if n1.IsLeaf() {
		op.X = leafOperand(n1)
		e := newExpression()
		e.mustAddOperator(op)
		return e
	}
	e1 := n1.(*Expression)
	op.X = e1.lastOperandRef()
	e := e1.copyExpr()
	e.mustAddOperator(op)
	return e
}

// extendWithOperand appends n's operators (if any) onto e and returns the
// operand that should reference n from a new operator built on e.
func extendWithOperand(e *Expression, n Node) operand {
	if n.IsLeaf() {
		return leafOperand(n)
	}
	ne := n.(*Expression)
	e.extendOperators(ne)
	return ne.lastOperandRef()
}

// Add returns a+b, applying the x+0/0+x identities and constant folding
// before building an AddOperator.
func Add(a, b Node) Node {
	if v, ok := asConstant(b); ok && v == 0 {
		return a
	}
	if v, ok := asConstant(a); ok && v == 0 {
		return b
	}
	if va, oka := asConstant(a); oka {
		if vb, okb := asConstant(b); okb {
			return NewConstant(va + vb)
		}
	}
	return binaryHelper(a, b, &Operator{Kind: OpAdd})
}

// Sub returns a-b, applying the x-0 -> x, 0-x -> neg(x) identities and
// constant folding before building a SubtractOperator.
func Sub(a, b Node) Node {
	if v, ok := asConstant(b); ok && v == 0 {
		return a
	}
	if v, ok := asConstant(a); ok && v == 0 {
		return Neg(b)
	}
	if va, oka := asConstant(a); oka {
		if vb, okb := asConstant(b); okb {
			return NewConstant(va - vb)
		}
	}
	return binaryHelper(a, b, &Operator{Kind: OpSub})
}

// Mul returns a*b, applying the x*1/1*x/x*0/0*x identities and constant
// folding before building a MultiplyOperator.
func Mul(a, b Node) Node {
	if v, ok := asConstant(b); ok {
		if v == 1 {
			return a
		}
		if v == 0 {
			return b
		}
	}
	if v, ok := asConstant(a); ok {
		if v == 1 {
			return b
		}
		if v == 0 {
			return a
		}
	}
	if va, oka := asConstant(a); oka {
		if vb, okb := asConstant(b); okb {
			return NewConstant(va * vb)
		}
	}
	return binaryHelper(a, b, &Operator{Kind: OpMul})
}

// Div returns a/b, applying the x/1 -> x and 0/x -> 0 identities and
// constant folding before building a DivideOperator. Dividing by the
// literal Constant zero is a fatal construction error.
func Div(a, b Node) (Node, error) {
	if v, ok := asConstant(b); ok {
		if v == 1 {
			return a, nil
		}
		if v == 0 {
			return nil, errDivByZero()
		}
	}
	if v, ok := asConstant(a); ok && v == 0 {
		return a, nil
	}
	if va, oka := asConstant(a); oka {
		if vb, okb := asConstant(b); okb {
			return NewConstant(va / vb), nil
		}
	}
	return binaryHelper(a, b, &Operator{Kind: OpDiv}), nil
}

// Pow returns a^b, applying the x^0 -> 1, x^1 -> x, 0^x -> 0, 1^x -> 1
// identities and constant folding before building a PowerOperator.
func Pow(a, b Node) Node {
	if v, ok := asConstant(b); ok {
		if v == 1 {
			return a
		}
		if v == 0 {
			return NewConstant(1)
		}
	}
	if v, ok := asConstant(a); ok {
		if v == 1 || v == 0 {
			return a
		}
	}
	if va, oka := asConstant(a); oka {
		if vb, okb := asConstant(b); okb {
			return NewConstant(math.Pow(va, vb))
		}
	}
	return binaryHelper(a, b, &Operator{Kind: OpPow})
}

// Neg returns -a, folding a literal constant directly.
func Neg(a Node) Node {
	if v, ok := asConstant(a); ok {
		return NewConstant(-v)
	}
	return unaryHelper(a, &Operator{Kind: OpNeg})
}

func unaryMath(kind OperatorKind, a Node, f func(float64) float64) Node {
	if v, ok := asConstant(a); ok {
		return NewConstant(f(v))
	}
	return unaryHelper(a, &Operator{Kind: kind})
}

func Exp(a Node) Node   { return unaryMath(OpExp, a, math.Exp) }
func Log(a Node) Node   { return unaryMath(OpLog, a, math.Log) }
func Log10(a Node) Node { return unaryMath(OpLog10, a, math.Log10) }
func Sin(a Node) Node   { return unaryMath(OpSin, a, math.Sin) }
func Cos(a Node) Node   { return unaryMath(OpCos, a, math.Cos) }
func Tan(a Node) Node   { return unaryMath(OpTan, a, math.Tan) }
func Asin(a Node) Node  { return unaryMath(OpAsin, a, math.Asin) }
func Acos(a Node) Node  { return unaryMath(OpAcos, a, math.Acos) }
func Atan(a Node) Node  { return unaryMath(OpAtan, a, math.Atan) }

// Sum returns the n-ary sum of operands, folding an empty operand list to
// Constant(0), returning a lone operand unchanged, and otherwise assembling
// a single SumOperator over all contributing tapes, extended in order to
// avoid O(n^2) tape growth.
func Sum(operands ...Node) Node {
	if len(operands) == 0 {
		return NewConstant(0)
	}
	if len(operands) == 1 {
		return operands[0]
	}
	op := &Operator{Kind: OpSum}
	e := newExpression()
	op.Operands = make([]operand, len(operands))
	for i, n := range operands {
		op.Operands[i] = extendWithOperand(e, n)
	}
	e.mustAddOperator(op)
	return e
}

// External returns an opaque n-ary reference to a named external function.
// externalFunctionIndex is the solver-assigned index used by NL output; -1
// if the model has not registered one yet.
func External(name string, externalFunctionIndex int, operands ...Node) Node {
	op := &Operator{
		Kind:                  OpExternal,
		FunctionName:          name,
		ExternalFunctionIndex: externalFunctionIndex,
	}
	e := newExpression()
	op.Operands = make([]operand, len(operands))
	for i, n := range operands {
		op.Operands[i] = extendWithOperand(e, n)
	}
	e.mustAddOperator(op)
	return e
}

// LinearTermInput pairs a Variable with its coefficient sub-expression, the
// building block for NewLinear.
type LinearTermInput struct {
	Variable    *Variable
	Coefficient Node
}

// NewLinear builds a LinearOperator: constant + sum(coefficient_i * variable_i).
func NewLinear(constant Node, terms []LinearTermInput) Node {
	op := &Operator{Kind: OpLinear}
	e := newExpression()
	op.LinearConstant = extendWithOperand(e, constant)
	op.Terms = make([]LinearTerm, len(terms))
	for i, t := range terms {
		op.Terms[i] = LinearTerm{
			Variable:    t.Variable,
			coefficient: extendWithOperand(e, t.Coefficient),
		}
	}
	e.mustAddOperator(op)
	return e
}
