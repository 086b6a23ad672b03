// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

// opContainer is the backing arena shared by one or more Expression views
// during incremental construction. Sharing a container between views is
// safe because operators are written once and never mutated afterward
// (aside from the pass-scratch Index field); this is the persistent
// append-only vector translation of the source's aliased operator-list
// sharing (see copyExpr and extendOperators below).
type opContainer struct {
	ops []*Operator
}

// Expression is an ordered, append-only tape of Operators in post-order
// (topological) order. The last entry is the root. For every Operator at
// position i, every operand that is itself an Operator reference resides
// at a strictly earlier position in the same tape.
type Expression struct {
	c *opContainer
	n int // this view's recorded length; n <= len(c.ops)
}

// newExpression returns an empty tape backed by a fresh container.
func newExpression() *Expression {
	return &Expression{c: &opContainer{}}
}

func (e *Expression) IsLeaf() bool       { return false }
func (e *Expression) IsVariable() bool   { return false }
func (e *Expression) IsParameter() bool  { return false }
func (e *Expression) IsConstant() bool   { return false }
func (e *Expression) IsExpression() bool { return true }

// NOperators returns the number of operators in this view of the tape.
func (e *Expression) NOperators() int { return e.n }

// opAt returns the operator at tape position i of this view. It panics if i
// is out of range, which cannot happen through the public combinator API.
func (e *Expression) opAt(i int) *Operator {
	if i < 0 || i >= e.n {
		panic("expr: tape index out of range")
	}
	return e.c.ops[i]
}

// Root returns the operator at the last position of the tape, or nil if
// the tape is empty.
func (e *Expression) Root() *Operator {
	if e.n == 0 {
		return nil
	}
	return e.opAt(e.n - 1)
}

// lastOperandRef returns an operand referencing this tape's root, for use
// as an operand field when this tape contributes to a larger expression.
func (e *Expression) lastOperandRef() operand {
	return opOperand(e.opAt(e.n - 1))
}

// reindex assigns each operator in this view its current position, so that
// a pass over this tape can use Operator.Index to address a flat buffer.
// Must be called before any buffer-indexed pass (Evaluate, the degree/Repn
// pass, the pretty-printer) and is safe to call repeatedly.
func (e *Expression) reindex() {
	for i := 0; i < e.n; i++ {
		e.c.ops[i].Index = i
	}
}

// copyExpr produces a logical view whose recorded length equals the
// current length. If the backing container was never extended beyond that
// length, the container is aliased (O(1)); otherwise a fresh container is
// built by re-appending, so later appends to the original cannot retroactively
// corrupt this view.
func (e *Expression) copyExpr() *Expression {
	if len(e.c.ops) == e.n {
		return &Expression{c: e.c, n: e.n}
	}
	ops := make([]*Operator, e.n)
	copy(ops, e.c.ops[:e.n])
	return &Expression{c: &opContainer{ops: ops}, n: e.n}
}

// addOperator appends op to the tape. It only succeeds when this view's
// recorded length equals the physical container length — i.e. this view is
// the sole logical appender. Violating that (appending to a view whose
// suffix has since been shared and extended by another view) is a
// construction-time invariant violation and returns a ConstructionError;
// the public combinators never trigger it because they always copyExpr
// before mutating.
func (e *Expression) addOperator(op *Operator) error {
	if e.n != len(e.c.ops) {
		return &ConstructionError{Reason: "cannot append: tape suffix is shared with another expression"}
	}
	e.c.ops = append(e.c.ops, op)
	e.n++
	return nil
}

// mustAddOperator appends op, panicking on the (unreachable through public
// combinators) invariant violation addOperator can report.
func (e *Expression) mustAddOperator(op *Operator) {
	if err := e.addOperator(op); err != nil {
		panic(err)
	}
}

// extendOperators appends every operator of other onto e, in order. Used to
// merge a second operand tape into the tape that will carry the new root
// operator. Operator records are shared, not copied: the same *Operator
// value now lives in both tapes, which is safe because operators are
// write-once and Index is pass-scratch rather than baked-in identity.
func (e *Expression) extendOperators(other *Expression) {
	for i := 0; i < other.n; i++ {
		e.mustAddOperator(other.opAt(i))
	}
}

func (e *Expression) String() string {
	return printExpression(e)
}
