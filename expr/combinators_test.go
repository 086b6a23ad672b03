// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "testing"

func TestIdentitiesReturnSameNode(t *testing.T) {
	x := NewVariable("x", 0)

	tests := []struct {
		name string
		got  Node
	}{
		{"x+0", Add(x, NewConstant(0))},
		{"0+x", Add(NewConstant(0), x)},
		{"x-0", Sub(x, NewConstant(0))},
		{"x*1", Mul(x, NewConstant(1))},
		{"1*x", Mul(NewConstant(1), x)},
		{"x^1", Pow(x, NewConstant(1))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.got != Node(x) {
				t.Errorf("%s: got a different Node, want x itself", test.name)
			}
		})
	}

	divX1, err := Div(x, NewConstant(1))
	if err != nil {
		t.Fatalf("Div(x, 1): %v", err)
	}
	if divX1 != Node(x) {
		t.Errorf("x/1: got a different Node, want x itself")
	}
}

func TestAnnihilators(t *testing.T) {
	x := NewVariable("x", 0)

	mustBeConstant := func(t *testing.T, n Node, want float64) {
		t.Helper()
		c, ok := n.(*Constant)
		if !ok {
			t.Fatalf("got %T, want *Constant", n)
		}
		if c.Value != want {
			t.Errorf("got Constant(%v), want Constant(%v)", c.Value, want)
		}
	}

	mustBeConstant(t, Mul(x, NewConstant(0)), 0)
	mustBeConstant(t, Mul(NewConstant(0), x), 0)
	mustBeConstant(t, Pow(NewConstant(0), x), 0)
	mustBeConstant(t, Pow(x, NewConstant(0)), 1)
	mustBeConstant(t, Pow(NewConstant(1), x), 1)
}

func TestFoldCommutativity(t *testing.T) {
	a := NewConstant(3)
	b := NewConstant(4)

	tests := []struct {
		name string
		got  Node
		want float64
	}{
		{"add", Add(a, b), 7},
		{"sub", Sub(a, b), -1},
		{"mul", Mul(a, b), 12},
		{"pow", Pow(a, b), 81},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, ok := test.got.(*Constant)
			if !ok {
				t.Fatalf("got %T, want *Constant", test.got)
			}
			if c.Value != test.want {
				t.Errorf("got %v, want %v", c.Value, test.want)
			}
		})
	}

	div, err := Div(a, b)
	if err != nil {
		t.Fatalf("Div(3,4): %v", err)
	}
	if c, ok := div.(*Constant); !ok || c.Value != 0.75 {
		t.Errorf("Div(3,4) = %v, want Constant(0.75)", div)
	}
}

func TestDivByLiteralZeroIsFatal(t *testing.T) {
	x := NewVariable("x", 0)
	if _, err := Div(x, NewConstant(0)); err == nil {
		t.Fatal("Div(x, 0): expected an error, got nil")
	}
}

func TestNegFoldsConstant(t *testing.T) {
	n := Neg(NewConstant(5))
	c, ok := n.(*Constant)
	if !ok || c.Value != -5 {
		t.Errorf("Neg(Constant(5)) = %v, want Constant(-5)", n)
	}
}

func TestSumEmptyIsZero(t *testing.T) {
	n := Sum()
	c, ok := n.(*Constant)
	if !ok || c.Value != 0 {
		t.Errorf("Sum() = %v, want Constant(0)", n)
	}
}

func TestSumBuildsSingleOperator(t *testing.T) {
	x := NewVariable("x", 0)
	y := NewVariable("y", 1)
	z := NewVariable("z", 2)

	n := Sum(x, y, z)
	e, ok := n.(*Expression)
	if !ok {
		t.Fatalf("Sum(x,y,z) = %T, want *Expression", n)
	}
	if e.Root().Kind != OpSum {
		t.Errorf("root kind = %s, want Sum", e.Root().Kind)
	}
	if got := len(e.Root().Operands); got != 3 {
		t.Errorf("len(Operands) = %d, want 3", got)
	}
}
