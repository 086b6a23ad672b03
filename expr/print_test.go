// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "testing"

func TestPrintExpression(t *testing.T) {
	x := NewVariable("x", 0)
	y := NewVariable("y", 1)

	tests := []struct {
		name string
		n    Node
		want string
	}{
		{"div", mustDiv(t, x, y), "(x/y)"},
		{"sin", Sin(x), "sin(x)"},
		{"neg", Neg(x), "(-x)"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, ok := test.n.(*Expression)
			if !ok {
				t.Fatalf("got %T, want *Expression", test.n)
			}
			if got := e.String(); got != test.want {
				t.Errorf("String() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestPrintSumIsFullyParenthesized(t *testing.T) {
	x := NewVariable("x", 0)
	y := NewVariable("y", 1)
	z := NewVariable("z", 2)

	n := Sum(x, y, z).(*Expression)
	if got, want := n.String(), "(x + y + z)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPrintLinear(t *testing.T) {
	x := NewVariable("x", 0)
	y := NewVariable("y", 1)

	n := NewLinear(NewConstant(1), []LinearTermInput{
		{Variable: x, Coefficient: NewConstant(2)},
		{Variable: y, Coefficient: NewConstant(5)},
	}).(*Expression)
	if got, want := n.String(), "(1 + 2*x + 5*y)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
