// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package expr implements the algebraic expression core: leaves, operators,
// the append-only operator tape, and the analyses (evaluation, polynomial
// degree, Repn decomposition, NL serialization) that ride on it.
package expr

import "strconv"

// Node is the common abstraction shared by leaves (Variable, Parameter,
// Constant) and Expression tapes. Combinators accept and return Nodes.
type Node interface {
	// IsLeaf reports whether the node is a Variable, Parameter, or Constant.
	IsLeaf() bool
	// IsVariable reports whether the node is a Variable.
	IsVariable() bool
	// IsParameter reports whether the node is a Parameter.
	IsParameter() bool
	// IsConstant reports whether the node is a literal Constant.
	//
	// Parameter is degree-0 like Constant but is not "constant-type": the
	// Pyomo source from which this core is grounded only applies
	// constant-folding identities to literal Constant leaves, never to
	// Parameters (a Parameter's value may change between solves even
	// though the analyzer treats it as degree 0).
	IsConstant() bool
	// IsExpression reports whether the node is an Expression tape.
	IsExpression() bool

	String() string
}

// Variable is a mutable scalar decision variable with a stable index
// assigned by the surrounding environment. Identity (pointer) equality is
// the only equality Variable supports.
type Variable struct {
	Name  string
	Value float64
	Index int
}

// NewVariable constructs a Variable. Index is assigned by Environment.
func NewVariable(name string, index int) *Variable {
	return &Variable{Name: name, Index: index}
}

func (v *Variable) IsLeaf() bool       { return true }
func (v *Variable) IsVariable() bool   { return true }
func (v *Variable) IsParameter() bool  { return false }
func (v *Variable) IsConstant() bool   { return false }
func (v *Variable) IsExpression() bool { return false }
func (v *Variable) String() string     { return v.Name }

// Parameter is a read-only scalar, rendered as a numeric literal in NL
// output. It carries polynomial degree 0 but is not constant-foldable.
type Parameter struct {
	Name  string
	Value float64
	Index int
}

// NewParameter constructs a Parameter. Index is assigned by Environment.
func NewParameter(name string, value float64, index int) *Parameter {
	return &Parameter{Name: name, Value: value, Index: index}
}

func (p *Parameter) IsLeaf() bool       { return true }
func (p *Parameter) IsVariable() bool   { return false }
func (p *Parameter) IsParameter() bool  { return true }
func (p *Parameter) IsConstant() bool   { return false }
func (p *Parameter) IsExpression() bool { return false }
func (p *Parameter) String() string     { return p.Name }

// Constant carries only a numeric value. It may be synthesized by
// constant-folding during combinator construction.
type Constant struct {
	Value float64
}

// NewConstant constructs a Constant leaf.
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

func (c *Constant) IsLeaf() bool       { return true }
func (c *Constant) IsVariable() bool   { return false }
func (c *Constant) IsParameter() bool  { return false }
func (c *Constant) IsConstant() bool   { return true }
func (c *Constant) IsExpression() bool { return false }
func (c *Constant) String() string     { return strconv.FormatFloat(c.Value, 'g', -1, 64) }

// asConstant reports whether n is a literal Constant leaf and returns its
// value. Used by combinators to apply the narrow constant-folding
// identities of spec §4.1, and by the Repn pass to fold a transcendental of
// a literal Constant; other value reads go through leafValue below.
func asConstant(n Node) (float64, bool) {
	c, ok := n.(*Constant)
	if !ok {
		return 0, false
	}
	return c.Value, true
}

// leafValue returns the current scalar value of a leaf node. It panics if
// called on a non-leaf; analyzers only ever call it on Variable, Parameter,
// or Constant operands, which is an invariant of tape construction.
func leafValue(n Node) float64 {
	switch v := n.(type) {
	case *Variable:
		return v.Value
	case *Parameter:
		return v.Value
	case *Constant:
		return v.Value
	default:
		panic("expr: leafValue called on non-leaf node")
	}
}
