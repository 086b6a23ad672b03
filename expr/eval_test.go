// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import (
	"math"
	"testing"
)

func evalOrFatal(t *testing.T, n Node) float64 {
	t.Helper()
	e, ok := n.(*Expression)
	if !ok {
		return leafValue(n)
	}
	v, err := e.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	return v
}

func TestEvaluateArithmetic(t *testing.T) {
	x := NewVariable("x", 0)
	x.Value = 3
	y := NewVariable("y", 1)
	y.Value = 4

	got := evalOrFatal(t, Mul(Add(x, y), Sub(x, y)))
	if want := -7.0; got != want {
		t.Errorf("(x+y)*(x-y) = %v, want %v", got, want)
	}
}

func TestEvaluatePow(t *testing.T) {
	x := NewVariable("x", 0)
	x.Value = 3
	got := evalOrFatal(t, Pow(Add(x, NewConstant(1)), NewConstant(2)))
	if want := 16.0; got != want {
		t.Errorf("(x+1)^2 at x=3 = %v, want %v", got, want)
	}
}

func TestEvaluateSumOfProducts(t *testing.T) {
	env := NewEnvironment()
	a := env.NewParameters(1)[0]
	a.Value = 2
	x := env.NewVariables(1)[0]
	x.Value = 3

	terms := make([]Node, 1000)
	for i := range terms {
		terms[i] = Mul(a, x)
	}
	got := evalOrFatal(t, Sum(terms...))
	if want := 6000.0; got != want {
		t.Errorf("sum of 1000 a*x terms = %v, want %v", got, want)
	}
}

func TestEvaluateExternalIsFatal(t *testing.T) {
	x := NewVariable("x", 0)
	n := External("foo", -1, x)
	e := n.(*Expression)
	if _, err := e.Evaluate(); err == nil {
		t.Fatal("Evaluate of a tape containing an ExternalOperator: expected an error, got nil")
	}
}

func TestEvaluateLinear(t *testing.T) {
	x := NewVariable("x", 0)
	x.Value = 3
	y := NewVariable("y", 1)
	y.Value = 4

	n := NewLinear(NewConstant(1), []LinearTermInput{
		{Variable: x, Coefficient: NewConstant(2)},
		{Variable: y, Coefficient: NewConstant(5)},
	})
	got := evalOrFatal(t, n)
	if want := 1 + 2*3.0 + 5*4.0; got != want {
		t.Errorf("linear evaluate = %v, want %v", got, want)
	}
}

func TestEvaluateDivByRuntimeZeroPropagatesIEEESemantics(t *testing.T) {
	x := NewVariable("x", 0)
	x.Value = 3
	y := NewVariable("y", 1)
	y.Value = 0

	d, err := Div(x, y)
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	got := evalOrFatal(t, d)
	if !math.IsInf(got, 1) {
		t.Errorf("x/y at y=0 (non-literal) = %v, want +Inf", got)
	}

	zero := NewVariable("zero", 2)
	zero.Value = 0
	got = evalOrFatal(t, mustDiv(t, zero, y))
	if !math.IsNaN(got) {
		t.Errorf("0/0 at runtime (non-literal) = %v, want NaN", got)
	}
}

func TestEvaluateSinPlusProduct(t *testing.T) {
	x := NewVariable("x", 0)
	x.Value = 3
	y := NewVariable("y", 1)
	y.Value = 4

	got := evalOrFatal(t, Add(Sin(x), Mul(x, y)))
	want := math.Sin(3) + 12
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("sin(x)+x*y at (3,4) = %v, want %v", got, want)
	}
}
