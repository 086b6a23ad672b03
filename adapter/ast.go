// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package adapter translates a host expression language's tagged node tree
// into the expr package's Node representation.
package adapter

import "github.com/solverkit/exprcore/expr"

// HostNode is one tagged node of a host expression. Translate recognizes a
// fixed set of concrete HostNode implementations; any other type is an
// error.
type HostNode interface {
	isHostNode()
}

// IntLit is an integer literal.
type IntLit struct{ Value int64 }

func (IntLit) isHostNode() {}

// FloatLit is a floating-point literal.
type FloatLit struct{ Value float64 }

func (FloatLit) isHostNode() {}

// ScalarVar references a single Variable the host has already obtained from
// an Environment.
type ScalarVar struct{ Var *expr.Variable }

func (ScalarVar) isHostNode() {}

// IndexedVar references one element of a host-declared variable array.
type IndexedVar struct {
	Vars  []*expr.Variable
	Index int
}

func (IndexedVar) isHostNode() {}

// ScalarParam references a single Parameter.
type ScalarParam struct{ Param *expr.Parameter }

func (ScalarParam) isHostNode() {}

// IndexedParam references one element of a host-declared parameter array.
type IndexedParam struct {
	Params []*expr.Parameter
	Index  int
}

func (IndexedParam) isHostNode() {}

// MonomialTerm is coefficient*variable.
type MonomialTerm struct {
	Coefficient HostNode
	Var         HostNode
}

func (MonomialTerm) isHostNode() {}

// Product is Left*Right.
type Product struct{ Left, Right HostNode }

func (Product) isHostNode() {}

// Negation is -X.
type Negation struct{ X HostNode }

func (Negation) isHostNode() {}

// Division is Left/Right.
type Division struct{ Left, Right HostNode }

func (Division) isHostNode() {}

// SumExpr is the n-ary sum of Terms.
type SumExpr struct{ Terms []HostNode }

func (SumExpr) isHostNode() {}

// Power is Base^Exponent.
type Power struct{ Base, Exponent HostNode }

func (Power) isHostNode() {}

// LinearTerm is one coefficient*variable summand of a Linear node.
type LinearTerm struct {
	Var         HostNode
	Coefficient HostNode
}

// Linear is a structured constant + sum(coefficient_i * variable_i) node.
type Linear struct {
	Constant HostNode
	Terms    []LinearTerm
}

func (Linear) isHostNode() {}

// UnaryFunc applies a named unary transcendental to X. Name must be one of
// exp, log, log10, sin, cos, tan, asin, acos, atan.
type UnaryFunc struct {
	Name string
	X    HostNode
}

func (UnaryFunc) isHostNode() {}

// ExternalFunc is an opaque call to a named, solver-registered function.
type ExternalFunc struct {
	Name     string
	Index    int
	Operands []HostNode
}

func (ExternalFunc) isHostNode() {}
