// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "math"

// Repn is the four-part canonical decomposition of an expression's value
// into constant + linear + quadratic + nonlinear pieces. Every field is
// non-nil; an unused slot holds Constant(0).
type Repn struct {
	Constant  Node
	Linear    Node
	Quadratic Node
	Nonlinear Node
}

func zeroRepn() *Repn {
	return &Repn{
		Constant:  NewConstant(0),
		Linear:    NewConstant(0),
		Quadratic: NewConstant(0),
		Nonlinear: NewConstant(0),
	}
}

// leafRepn places a bare leaf directly into the Repn slot matching its
// degree: Parameter/Constant (degree 0) into Constant, Variable (degree 1)
// into Linear.
func leafRepn(n Node) *Repn {
	r := zeroRepn()
	if Degree(n) == 0 {
		r.Constant = n
	} else {
		r.Linear = n
	}
	return r
}

// GenerateRepn decomposes n, dispatching to Expression.GenerateRepn for
// tapes and handling bare leaves directly.
func GenerateRepn(n Node) (*Repn, error) {
	if n.IsLeaf() {
		return leafRepn(n), nil
	}
	return n.(*Expression).GenerateRepn()
}

// GenerateRepn runs the combined degree/unique-degree/Repn pass over e's
// tape and returns the root's decomposition.
func (e *Expression) GenerateRepn() (*Repn, error) {
	if e.n == 0 {
		return zeroRepn(), nil
	}
	a := e.analyze()
	repns := make([]*Repn, e.n)
	for i := 0; i < e.n; i++ {
		op := e.c.ops[i]
		if a.unique[i] {
			repns[i] = wrapUnique(op, a.degree[i], e.c)
			continue
		}
		r, err := combineRepn(op, a, repns, e.c)
		if err != nil {
			return nil, err
		}
		repns[i] = r
	}
	return repns[e.n-1], nil
}

// selfView returns a read-only Expression view of the prefix of container
// ending at (and including) op, relying on op.Index having just been
// assigned by reindex. Used both to promote a unique-degree subtree wholesale
// and to collapse an operator's whole value into a single nonlinear slot
// without rebuilding it.
func selfView(op *Operator, container *opContainer) *Expression {
	return &Expression{c: container, n: op.Index + 1}
}

// resolveOperandNode returns the Node an operand denotes: the leaf itself,
// or a view of the tape prefix rooted at its referenced operator.
func resolveOperandNode(o operand, container *opContainer) Node {
	if o.leaf != nil {
		return o.leaf
	}
	return &Expression{c: container, n: o.op.Index + 1}
}

func operandRepn(o operand, a *analysis, repns []*Repn) *Repn {
	if o.leaf != nil {
		return leafRepn(o.leaf)
	}
	return repns[o.op.Index]
}

// wrapUnique promotes a unique-degree subtree into a single Repn slot
// chosen by its declared degree, rather than recursively decomposing it.
func wrapUnique(op *Operator, degree int, container *opContainer) *Repn {
	res := zeroRepn()
	sub := selfView(op, container)
	switch degree {
	case 0:
		res.Constant = sub
	case 1:
		res.Linear = sub
	case 2:
		res.Quadratic = sub
	default:
		res.Nonlinear = sub
	}
	return res
}

func combineRepn(op *Operator, a *analysis, repns []*Repn, container *opContainer) (*Repn, error) {
	switch op.Kind {
	case OpAdd:
		return addRepn(operandRepn(op.Left, a, repns), operandRepn(op.Right, a, repns)), nil
	case OpSub:
		return subRepn(operandRepn(op.Left, a, repns), operandRepn(op.Right, a, repns)), nil
	case OpSum:
		rs := make([]*Repn, len(op.Operands))
		for i, o := range op.Operands {
			rs[i] = operandRepn(o, a, repns)
		}
		return sumRepnList(rs), nil
	case OpMul:
		return mulRepn(operandRepn(op.Left, a, repns), operandRepn(op.Right, a, repns)), nil
	case OpDiv:
		r1 := operandRepn(op.Left, a, repns)
		r2 := operandRepn(op.Right, a, repns)
		return divRepn(r1, r2, operandDegree(op.Right, a))
	case OpPow:
		r1 := operandRepn(op.Left, a, repns)
		return powRepn(op, r1, container), nil
	case OpNeg:
		return negRepn(operandRepn(op.X, a, repns)), nil
	case OpExp, OpLog, OpLog10, OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan:
		return transcendentalRepn(op, container), nil
	case OpExternal:
		res := zeroRepn()
		res.Nonlinear = selfView(op, container)
		return res, nil
	case OpLinear:
		return linearRepn(op, container), nil
	default:
		return nil, &EvaluationError{Reason: "unrecognized operator kind in repn generation"}
	}
}

func addRepn(r1, r2 *Repn) *Repn {
	return &Repn{
		Constant:  Add(r1.Constant, r2.Constant),
		Linear:    Add(r1.Linear, r2.Linear),
		Quadratic: Add(r1.Quadratic, r2.Quadratic),
		Nonlinear: Add(r1.Nonlinear, r2.Nonlinear),
	}
}

func subRepn(r1, r2 *Repn) *Repn {
	return &Repn{
		Constant:  Sub(r1.Constant, r2.Constant),
		Linear:    Sub(r1.Linear, r2.Linear),
		Quadratic: Sub(r1.Quadratic, r2.Quadratic),
		Nonlinear: Sub(r1.Nonlinear, r2.Nonlinear),
	}
}

// sumRepnList combines an n-ary Sum's operand Repns field-wise, using the
// Sum combinator itself on each field to avoid O(n^2) tape growth.
func sumRepnList(rs []*Repn) *Repn {
	constants := make([]Node, len(rs))
	linears := make([]Node, len(rs))
	quads := make([]Node, len(rs))
	nonlins := make([]Node, len(rs))
	for i, r := range rs {
		constants[i] = r.Constant
		linears[i] = r.Linear
		quads[i] = r.Quadratic
		nonlins[i] = r.Nonlinear
	}
	return &Repn{
		Constant:  Sum(constants...),
		Linear:    Sum(linears...),
		Quadratic: Sum(quads...),
		Nonlinear: Sum(nonlins...),
	}
}

// mulRepn is the full polynomial cross-product of r1's and r2's four slots:
// a product lands in the slot matching the sum of its factors' slot degrees,
// saturating at nonlinear.
func mulRepn(r1, r2 *Repn) *Repn {
	fields1 := [4]Node{r1.Constant, r1.Linear, r1.Quadratic, r1.Nonlinear}
	fields2 := [4]Node{r2.Constant, r2.Linear, r2.Quadratic, r2.Nonlinear}
	var buckets [4][]Node
	for d1, n1 := range fields1 {
		for d2, n2 := range fields2 {
			d := d1 + d2
			if d > 3 {
				d = 3
			}
			buckets[d] = append(buckets[d], Mul(n1, n2))
		}
	}
	return &Repn{
		Constant:  Sum(buckets[0]...),
		Linear:    Sum(buckets[1]...),
		Quadratic: Sum(buckets[2]...),
		Nonlinear: Sum(buckets[3]...),
	}
}

// divRepn divides a degree-0 denominator's value into every numerator
// slot in place; otherwise it collapses the whole quotient into nonlinear.
func divRepn(r1, r2 *Repn, denomDegree int) (*Repn, error) {
	res := zeroRepn()
	if denomDegree == 0 {
		denom := r2.Constant
		var err error
		if res.Constant, err = Div(r1.Constant, denom); err != nil {
			return nil, err
		}
		if res.Linear, err = Div(r1.Linear, denom); err != nil {
			return nil, err
		}
		if res.Quadratic, err = Div(r1.Quadratic, denom); err != nil {
			return nil, err
		}
		if res.Nonlinear, err = Div(r1.Nonlinear, denom); err != nil {
			return nil, err
		}
		return res, nil
	}
	whole, err := Div(repnTotal(r1), repnTotal(r2))
	if err != nil {
		return nil, err
	}
	res.Nonlinear = whole
	return res, nil
}

func repnTotal(r *Repn) Node {
	return Sum(r.Constant, r.Linear, r.Quadratic, r.Nonlinear)
}

// powRepn implements the literal-exponent special cases; every other
// exponent (non-constant, or constant outside {0,1,2}) collapses the whole
// power into the nonlinear slot.
func powRepn(op *Operator, r1 *Repn, container *opContainer) *Repn {
	if op.Right.leaf != nil {
		if c, ok := op.Right.leaf.(*Constant); ok {
			switch c.Value {
			case 0:
				res := zeroRepn()
				res.Constant = NewConstant(1)
				return res
			case 1:
				return r1
			case 2:
				return mulRepn(r1, r1)
			}
		}
	}
	res := zeroRepn()
	res.Nonlinear = selfView(op, container)
	return res
}

func negRepn(r *Repn) *Repn {
	return &Repn{
		Constant:  Neg(r.Constant),
		Linear:    Neg(r.Linear),
		Quadratic: Neg(r.Quadratic),
		Nonlinear: Neg(r.Nonlinear),
	}
}

// transcendentalRepn folds a pure-constant operand's scalar value directly;
// otherwise the whole call collapses into the nonlinear slot unchanged.
func transcendentalRepn(op *Operator, container *opContainer) *Repn {
	res := zeroRepn()
	if op.X.leaf != nil {
		if v, ok := asConstant(op.X.leaf); ok {
			res.Constant = NewConstant(applyScalarTranscendental(op.Kind, v))
			return res
		}
	}
	res.Nonlinear = selfView(op, container)
	return res
}

func applyScalarTranscendental(kind OperatorKind, v float64) float64 {
	switch kind {
	case OpExp:
		return math.Exp(v)
	case OpLog:
		return math.Log(v)
	case OpLog10:
		return math.Log10(v)
	case OpSin:
		return math.Sin(v)
	case OpCos:
		return math.Cos(v)
	case OpTan:
		return math.Tan(v)
	case OpAsin:
		return math.Asin(v)
	case OpAcos:
		return math.Acos(v)
	case OpAtan:
		return math.Atan(v)
	default:
		return v
	}
}

// linearRepn splits a LinearOperator into its constant term and a sibling
// LinearOperator with the same variables and coefficients but a zero
// constant, so the linear slot carries no affine part.
func linearRepn(op *Operator, container *opContainer) *Repn {
	res := zeroRepn()
	res.Constant = resolveOperandNode(op.LinearConstant, container)

	newOp := &Operator{
		Kind:           OpLinear,
		LinearConstant: leafOperand(NewConstant(0)),
		Terms:          op.Terms,
	}
	prefix := container.ops[:op.Index]
	ops := make([]*Operator, len(prefix)+1)
	copy(ops, prefix)
	ops[len(prefix)] = newOp
	res.Linear = &Expression{c: &opContainer{ops: ops}, n: len(ops)}
	return res
}
