// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// IdentifyVariables returns every Variable leaf referenced anywhere in n,
// deduplicated by identity, in a single linear pass over the tape and
// ordered deterministically by the Variable's stable environment-assigned
// Index.
func IdentifyVariables(n Node) []*Variable {
	set := map[*Variable]struct{}{}
	collectVariables(n, set)
	vars := maps.Keys(set)
	slices.SortFunc(vars, func(a, b *Variable) int { return a.Index - b.Index })
	return vars
}

func collectVariables(n Node, set map[*Variable]struct{}) {
	if n.IsLeaf() {
		if v, ok := n.(*Variable); ok {
			set[v] = struct{}{}
		}
		return
	}
	e := n.(*Expression)
	for i := 0; i < e.n; i++ {
		addOperandVariables(e.c.ops[i], set)
	}
}

func addOperandVariables(op *Operator, set map[*Variable]struct{}) {
	add := func(o operand) {
		if o.leaf != nil {
			if v, ok := o.leaf.(*Variable); ok {
				set[v] = struct{}{}
			}
		}
	}
	switch op.Kind {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		add(op.Left)
		add(op.Right)
	case OpNeg, OpExp, OpLog, OpLog10, OpSin, OpCos, OpTan, OpAsin, OpAcos, OpAtan:
		add(op.X)
	case OpSum, OpExternal:
		for _, o := range op.Operands {
			add(o)
		}
	case OpLinear:
		add(op.LinearConstant)
		for _, t := range op.Terms {
			set[t.Variable] = struct{}{}
			add(t.coefficient)
		}
	}
}

// IdentifyExternalOperators returns every ExternalOperator slot referenced
// anywhere in n, deduplicated by identity and ordered by tape position.
func IdentifyExternalOperators(n Node) []*Operator {
	if n.IsLeaf() {
		return nil
	}
	e := n.(*Expression)
	e.reindex()
	set := map[*Operator]struct{}{}
	for i := 0; i < e.n; i++ {
		if e.c.ops[i].Kind == OpExternal {
			set[e.c.ops[i]] = struct{}{}
		}
	}
	list := maps.Keys(set)
	slices.SortFunc(list, func(a, b *Operator) int { return a.Index - b.Index })
	return list
}
