// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/solverkit/exprcore/expr"
)

const testDocument = `{
	// a JSONC model document may carry comments and trailing commas
	"variables": [
		{"name": "x", "value": 3},
		{"name": "y", "value": 4},
	],
	"parameters": [
		{"name": "a", "value": 2},
	],
	"expressions": [
		{"op": "add", "args": [
			{"op": "mul", "left": {"op": "param", "index": 0}, "right": {"op": "var", "index": 0}},
			{"op": "var", "index": 1},
		]},
		{"op": "sin", "x": {"op": "var", "index": 0}},
	],
}`

func TestParseModelDocStandardizesJSONC(t *testing.T) {
	doc, err := parseModelDoc([]byte(testDocument))
	if err != nil {
		t.Fatalf("parseModelDoc: %v", err)
	}
	if len(doc.Variables) != 2 || len(doc.Parameters) != 1 || len(doc.Expressions) != 2 {
		t.Fatalf("parsed doc = %+v, want 2 variables, 1 parameter, 2 expressions", doc)
	}
}

func TestBuildModelTranslatesAndEvaluates(t *testing.T) {
	doc, err := parseModelDoc([]byte(testDocument))
	if err != nil {
		t.Fatalf("parseModelDoc: %v", err)
	}
	env := expr.NewEnvironment()
	exprs, err := buildModel(env, doc)
	if err != nil {
		t.Fatalf("buildModel: %v", err)
	}
	if len(exprs) != 2 {
		t.Fatalf("len(exprs) = %d, want 2", len(exprs))
	}

	sum, ok := exprs[0].(*expr.Expression)
	if !ok {
		t.Fatalf("exprs[0] is %T, want *expr.Expression", exprs[0])
	}
	got, err := sum.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if want := 2*3.0 + 4.0; got != want {
		t.Errorf("a*x+y = %v, want %v", got, want)
	}
}

func TestBuildModelRejectsUnknownOp(t *testing.T) {
	doc, err := parseModelDoc([]byte(`{"expressions": [{"op": "bogus"}]}`))
	if err != nil {
		t.Fatalf("parseModelDoc: %v", err)
	}
	if _, err := buildModel(expr.NewEnvironment(), doc); err == nil {
		t.Fatal("expected an error for an unrecognized node op")
	}
}

func TestBuildModelRejectsOutOfRangeVariableIndex(t *testing.T) {
	doc, err := parseModelDoc([]byte(`{"expressions": [{"op": "var", "index": 5}]}`))
	if err != nil {
		t.Fatalf("parseModelDoc: %v", err)
	}
	if _, err := buildModel(expr.NewEnvironment(), doc); err == nil {
		t.Fatal("expected an error for an out-of-range variable index")
	}
}
