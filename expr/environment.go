// Copyright 2026 The Solverkit Authors
// SPDX-License-Identifier: Apache-2.0

package expr

import "fmt"

// Environment owns a model's leaves and assigns their stable indices. It is
// the outward half of the host-glue interface: combinators never construct
// leaves themselves.
type Environment struct {
	nextVariableIndex  int
	nextParameterIndex int
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// NewVariables allocates n fresh Variables with consecutive stable indices.
func (env *Environment) NewVariables(n int) []*Variable {
	vars := make([]*Variable, n)
	for i := range vars {
		vars[i] = NewVariable(fmt.Sprintf("x%d", env.nextVariableIndex), env.nextVariableIndex)
		env.nextVariableIndex++
	}
	return vars
}

// NewParameters allocates n fresh, zero-valued Parameters with consecutive
// stable indices. The caller sets their Value before use.
func (env *Environment) NewParameters(n int) []*Parameter {
	params := make([]*Parameter, n)
	for i := range params {
		params[i] = NewParameter(fmt.Sprintf("p%d", env.nextParameterIndex), 0, env.nextParameterIndex)
		env.nextParameterIndex++
	}
	return params
}

// NewConstants allocates n fresh, zero-valued Constant leaves. The caller
// sets their Value before use; unlike Variables and Parameters, Constants
// carry no environment-assigned identity.
func (env *Environment) NewConstants(n int) []*Constant {
	consts := make([]*Constant, n)
	for i := range consts {
		consts[i] = NewConstant(0)
	}
	return consts
}

// GenerateRepns decomposes a batch of expressions, stopping at the first
// failure and reporting which expression in the batch failed.
func (env *Environment) GenerateRepns(exprs []*Expression) ([]*Repn, error) {
	repns := make([]*Repn, len(exprs))
	for i, e := range exprs {
		r, err := e.GenerateRepn()
		if err != nil {
			return nil, fmt.Errorf("expr: generating repn for expression %d: %w", i, err)
		}
		repns[i] = r
	}
	return repns, nil
}
