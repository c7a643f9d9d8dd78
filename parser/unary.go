/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"devt.de/mquery/ast"
	"devt.de/mquery/parsestate"
	"devt.de/mquery/token"
)

// readUnaryExpression reads a run of prefix +/-/not operators over a
// TPrimaryExpression (spec.md 4.C TUnaryExpression). A bare primary
// expression is itself a valid TUnaryExpression, so with zero prefix
// operators this returns the primary node directly rather than wrapping it,
// the same "no wrapper when there is nothing to wrap" discipline the
// binary-operator engine uses for a zero-operator run.
func readUnaryExpression(s *parsestate.State, parent *uint64) (ast.Node, error) {
	if !isUnaryOperator(s.CurrentTokenKind) {
		return readPrimaryExpression(s, parent)
	}

	ctx, err := open(s, ast.KindUnaryExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()

	var operators []*ast.Constant
	for isUnaryOperator(s.CurrentTokenKind) {
		c := leafConstant(s)
		if err := s.Collection.AttachNewLeaf(ctxId, c); err != nil {
			return nil, err
		}
		operators = append(operators, c)
		s.Advance()
	}

	expr, err := readPrimaryExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}

	node := ast.NewUnaryExpression(operators, expr)
	return commit(s, ctx, node), nil
}

func isUnaryOperator(k token.Kind) bool {
	switch k {
	case token.KindPlus, token.KindMinus, token.KindKeywordNot:
		return true
	}
	return false
}
