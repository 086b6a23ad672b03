// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"

	"github.com/solverkit/exprcore/adapter"
	"github.com/solverkit/exprcore/expr"
	"github.com/tailscale/hujson"
)

// modelDoc is the on-disk JSONC shape: a flat pool of variables and
// parameters, referenced by index from a list of expression trees.
type modelDoc struct {
	Variables   []leafDoc `json:"variables"`
	Parameters  []leafDoc `json:"parameters"`
	Expressions []nodeDoc `json:"expressions"`
}

type leafDoc struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// nodeDoc is the JSON-tagged shape of a HostNode: Op names which field(s)
// below are populated.
type nodeDoc struct {
	Op       string    `json:"op"`
	Value    float64   `json:"value"`
	Index    int       `json:"index"`
	Name     string    `json:"name"`
	X        *nodeDoc  `json:"x"`
	Left     *nodeDoc  `json:"left"`
	Right    *nodeDoc  `json:"right"`
	Base     *nodeDoc  `json:"base"`
	Exponent *nodeDoc  `json:"exponent"`
	Args     []nodeDoc `json:"args"`
	Constant *nodeDoc  `json:"constant"`
	Terms    []termDoc `json:"terms"`
}

type termDoc struct {
	Var         nodeDoc `json:"var"`
	Coefficient nodeDoc `json:"coefficient"`
}

// parseModelDoc standardizes JSONC input (comments, trailing commas) and
// decodes it into a modelDoc, the way goldenTest.options decodes .jwcc
// fixtures in the teacher's test harness.
func parseModelDoc(input []byte) (*modelDoc, error) {
	standardized, err := hujson.Standardize(input)
	if err != nil {
		return nil, fmt.Errorf("exprc: parse model: %w", err)
	}
	var doc modelDoc
	if err := json.Unmarshal(standardized, &doc); err != nil {
		return nil, fmt.Errorf("exprc: parse model: %w", err)
	}
	return &doc, nil
}

// buildModel realizes a modelDoc's leaves through env, then translates each
// expression tree into an expr.Node (a bare leaf or an expr.Expression).
func buildModel(env *expr.Environment, doc *modelDoc) ([]expr.Node, error) {
	vars := env.NewVariables(len(doc.Variables))
	for i, v := range doc.Variables {
		vars[i].Name = v.Name
		vars[i].Value = v.Value
	}
	params := env.NewParameters(len(doc.Parameters))
	for i, p := range doc.Parameters {
		params[i].Name = p.Name
		params[i].Value = p.Value
	}

	exprs := make([]expr.Node, len(doc.Expressions))
	for i, n := range doc.Expressions {
		host, err := n.toHostNode(vars, params)
		if err != nil {
			return nil, fmt.Errorf("exprc: expression %d: %w", i, err)
		}
		translated, err := adapter.Translate(env, host)
		if err != nil {
			return nil, fmt.Errorf("exprc: expression %d: %w", i, err)
		}
		exprs[i] = translated
	}
	return exprs, nil
}

var unaryFuncOps = map[string]bool{
	"exp": true, "log": true, "log10": true,
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
}

func (n nodeDoc) toHostNode(vars []*expr.Variable, params []*expr.Parameter) (adapter.HostNode, error) {
	switch n.Op {
	case "const":
		return adapter.FloatLit{Value: n.Value}, nil
	case "var":
		if n.Index < 0 || n.Index >= len(vars) {
			return nil, fmt.Errorf("variable index %d out of range [0,%d)", n.Index, len(vars))
		}
		return adapter.ScalarVar{Var: vars[n.Index]}, nil
	case "param":
		if n.Index < 0 || n.Index >= len(params) {
			return nil, fmt.Errorf("parameter index %d out of range [0,%d)", n.Index, len(params))
		}
		return adapter.ScalarParam{Param: params[n.Index]}, nil
	case "neg":
		x, err := n.child(n.X, vars, params)
		if err != nil {
			return nil, err
		}
		return adapter.Negation{X: x}, nil
	case "mul":
		left, right, err := n.pair(vars, params)
		if err != nil {
			return nil, err
		}
		return adapter.Product{Left: left, Right: right}, nil
	case "div":
		left, right, err := n.pair(vars, params)
		if err != nil {
			return nil, err
		}
		return adapter.Division{Left: left, Right: right}, nil
	case "pow":
		base, err := n.child(n.Base, vars, params)
		if err != nil {
			return nil, err
		}
		exponent, err := n.child(n.Exponent, vars, params)
		if err != nil {
			return nil, err
		}
		return adapter.Power{Base: base, Exponent: exponent}, nil
	case "add":
		terms := make([]adapter.HostNode, len(n.Args))
		for i, a := range n.Args {
			t, err := a.toHostNode(vars, params)
			if err != nil {
				return nil, err
			}
			terms[i] = t
		}
		return adapter.SumExpr{Terms: terms}, nil
	case "external":
		operands := make([]adapter.HostNode, len(n.Args))
		for i, a := range n.Args {
			o, err := a.toHostNode(vars, params)
			if err != nil {
				return nil, err
			}
			operands[i] = o
		}
		return adapter.ExternalFunc{Name: n.Name, Index: n.Index, Operands: operands}, nil
	case "linear":
		constant, err := n.child(n.Constant, vars, params)
		if err != nil {
			return nil, err
		}
		terms := make([]adapter.LinearTerm, len(n.Terms))
		for i, t := range n.Terms {
			varNode, err := t.Var.toHostNode(vars, params)
			if err != nil {
				return nil, err
			}
			coeff, err := t.Coefficient.toHostNode(vars, params)
			if err != nil {
				return nil, err
			}
			terms[i] = adapter.LinearTerm{Var: varNode, Coefficient: coeff}
		}
		return adapter.Linear{Constant: constant, Terms: terms}, nil
	default:
		if unaryFuncOps[n.Op] {
			x, err := n.child(n.X, vars, params)
			if err != nil {
				return nil, err
			}
			return adapter.UnaryFunc{Name: n.Op, X: x}, nil
		}
		return nil, fmt.Errorf("unrecognized node op %q", n.Op)
	}
}

func (n nodeDoc) child(c *nodeDoc, vars []*expr.Variable, params []*expr.Parameter) (adapter.HostNode, error) {
	if c == nil {
		return nil, fmt.Errorf("op %q missing required child", n.Op)
	}
	return c.toHostNode(vars, params)
}

func (n nodeDoc) pair(vars []*expr.Variable, params []*expr.Parameter) (adapter.HostNode, adapter.HostNode, error) {
	left, err := n.child(n.Left, vars, params)
	if err != nil {
		return nil, nil, err
	}
	right, err := n.child(n.Right, vars, params)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}
