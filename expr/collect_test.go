// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "testing"

func TestIdentifyVariablesDedupesSharedSubtrees(t *testing.T) {
	x := NewVariable("x", 0)
	y := NewVariable("y", 1)

	shared := Add(x, y)
	n := Mul(shared, shared)

	vars := IdentifyVariables(n)
	if len(vars) != 2 {
		t.Fatalf("len(IdentifyVariables) = %d, want 2", len(vars))
	}
	if vars[0] != x || vars[1] != y {
		t.Errorf("IdentifyVariables = %v, want [x y] ordered by Index", vars)
	}
}

func TestIdentifyVariablesIncludesLinearTerms(t *testing.T) {
	x := NewVariable("x", 0)
	y := NewVariable("y", 1)

	n := NewLinear(NewConstant(1), []LinearTermInput{
		{Variable: x, Coefficient: NewConstant(2)},
		{Variable: y, Coefficient: NewConstant(5)},
	})
	vars := IdentifyVariables(n)
	if len(vars) != 2 {
		t.Fatalf("len(IdentifyVariables) = %d, want 2", len(vars))
	}
}

func TestIdentifyExternalOperators(t *testing.T) {
	x := NewVariable("x", 0)
	ext := External("foo", 1, x)
	n := Add(ext, NewConstant(3))

	exts := IdentifyExternalOperators(n)
	if len(exts) != 1 {
		t.Fatalf("len(IdentifyExternalOperators) = %d, want 1", len(exts))
	}
	if exts[0].FunctionName != "foo" {
		t.Errorf("FunctionName = %q, want %q", exts[0].FunctionName, "foo")
	}
}

func TestIdentifyVariablesOnBareLeaf(t *testing.T) {
	x := NewVariable("x", 0)
	vars := IdentifyVariables(x)
	if len(vars) != 1 || vars[0] != x {
		t.Errorf("IdentifyVariables(x) = %v, want [x]", vars)
	}
}
