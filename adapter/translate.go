// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"fmt"

	"github.com/solverkit/exprcore/expr"
)

// UnrecognizedFunctionError reports a UnaryFunc whose Name is not one of the
// functions expr exposes a combinator for.
type UnrecognizedFunctionError struct{ Name string }

func (e *UnrecognizedFunctionError) Error() string {
	return fmt.Sprintf("adapter: unrecognized unary function %q", e.Name)
}

var unaryFuncs = map[string]func(expr.Node) expr.Node{
	"exp":   expr.Exp,
	"log":   expr.Log,
	"log10": expr.Log10,
	"sin":   expr.Sin,
	"cos":   expr.Cos,
	"tan":   expr.Tan,
	"asin":  expr.Asin,
	"acos":  expr.Acos,
	"atan":  expr.Atan,
}

// Translate lowers a host expression tree into an expr.Node, turning
// literals into fresh Constants, returning the Variable and Parameter leaves
// the HostNode already references, and dispatching every other HostNode tag
// to its expr combinator equivalent. env is only passed down to the
// recursive calls.
func Translate(env *expr.Environment, n HostNode) (expr.Node, error) {
	switch v := n.(type) {
	case IntLit:
		return expr.NewConstant(float64(v.Value)), nil

	case FloatLit:
		return expr.NewConstant(v.Value), nil

	case ScalarVar:
		return v.Var, nil

	case IndexedVar:
		if v.Index < 0 || v.Index >= len(v.Vars) {
			return nil, fmt.Errorf("adapter: variable index %d out of range [0,%d)", v.Index, len(v.Vars))
		}
		return v.Vars[v.Index], nil

	case ScalarParam:
		return v.Param, nil

	case IndexedParam:
		if v.Index < 0 || v.Index >= len(v.Params) {
			return nil, fmt.Errorf("adapter: parameter index %d out of range [0,%d)", v.Index, len(v.Params))
		}
		return v.Params[v.Index], nil

	case MonomialTerm:
		coeff, err := Translate(env, v.Coefficient)
		if err != nil {
			return nil, err
		}
		variable, err := Translate(env, v.Var)
		if err != nil {
			return nil, err
		}
		return expr.Mul(coeff, variable), nil

	case Product:
		left, err := Translate(env, v.Left)
		if err != nil {
			return nil, err
		}
		right, err := Translate(env, v.Right)
		if err != nil {
			return nil, err
		}
		return expr.Mul(left, right), nil

	case Negation:
		x, err := Translate(env, v.X)
		if err != nil {
			return nil, err
		}
		return expr.Neg(x), nil

	case Division:
		left, err := Translate(env, v.Left)
		if err != nil {
			return nil, err
		}
		right, err := Translate(env, v.Right)
		if err != nil {
			return nil, err
		}
		return expr.Div(left, right)

	case SumExpr:
		terms := make([]expr.Node, len(v.Terms))
		for i, t := range v.Terms {
			translated, err := Translate(env, t)
			if err != nil {
				return nil, err
			}
			terms[i] = translated
		}
		return expr.Sum(terms...), nil

	case Power:
		base, err := Translate(env, v.Base)
		if err != nil {
			return nil, err
		}
		exponent, err := Translate(env, v.Exponent)
		if err != nil {
			return nil, err
		}
		return expr.Pow(base, exponent), nil

	case Linear:
		constant, err := Translate(env, v.Constant)
		if err != nil {
			return nil, err
		}
		terms := make([]expr.LinearTermInput, len(v.Terms))
		for i, t := range v.Terms {
			varNode, err := Translate(env, t.Var)
			if err != nil {
				return nil, err
			}
			variable, ok := varNode.(*expr.Variable)
			if !ok {
				return nil, fmt.Errorf("adapter: linear term %d does not resolve to a variable", i)
			}
			coeff, err := Translate(env, t.Coefficient)
			if err != nil {
				return nil, err
			}
			terms[i] = expr.LinearTermInput{Variable: variable, Coefficient: coeff}
		}
		return expr.NewLinear(constant, terms), nil

	case UnaryFunc:
		fn, ok := unaryFuncs[v.Name]
		if !ok {
			return nil, &UnrecognizedFunctionError{Name: v.Name}
		}
		x, err := Translate(env, v.X)
		if err != nil {
			return nil, err
		}
		return fn(x), nil

	case ExternalFunc:
		operands := make([]expr.Node, len(v.Operands))
		for i, o := range v.Operands {
			translated, err := Translate(env, o)
			if err != nil {
				return nil, err
			}
			operands[i] = translated
		}
		return expr.External(v.Name, v.Index, operands...), nil

	default:
		return nil, fmt.Errorf("adapter: unrecognized host node type %T", n)
	}
}
