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
	"devt.de/mquery/constant"
	"devt.de/mquery/parsestate"
)

// precedenceTiers lists every precedence level the table assigns, tightest
// first, the classic recursive-descent chain ParserVariantNaiveRecursiveDescent
// threads one call per level through (spec.md 4.H's precedence table, read
// top-to-bottom instead of flattened): meta binds tighter than multiplicative,
// which binds tighter than additive, and so on down to ??.
var precedenceTiers = []int{
	constant.PrecedenceMeta,
	constant.PrecedenceMultiplicative,
	constant.PrecedenceAdditive,
	constant.PrecedenceRelational,
	constant.PrecedenceEquality,
	constant.PrecedenceAs,
	constant.PrecedenceIs,
	constant.PrecedenceAnd,
	constant.PrecedenceOr,
	constant.PrecedenceNullCoalescing,
}

// readBinOpExpressionNaive is the textbook alternative to the combinatorial
// engine: one recursive call per precedence level instead of a flat
// collect-then-reshape pass, built to exercise
// ParseSettings.ParserVariant.NaiveRecursiveDescent (spec.md 6). It produces
// the identical tree shape as readBinOpExpressionCombinatorial for any
// well-formed input, since both are grounded in the same precedence table —
// they differ only in how the nesting is derived, not in what it is.
func readBinOpExpressionNaive(s *parsestate.State, parent *uint64) (ast.Node, error) {
	read := readUnaryTierNaive
	for _, prec := range precedenceTiers {
		read = bindTier(prec, read)
	}

	root, err := read(s)
	if err != nil {
		return nil, err
	}
	if err := attachRoot(s, parent, root); err != nil {
		return nil, err
	}
	return root, nil
}

func readUnaryTierNaive(s *parsestate.State) (ast.Node, error) {
	return readUnaryExpression(s, nil)
}

// bindTier wraps operand into a left-associative reader over every operator
// at precedence prec, recursing into operand itself for both the initial
// left and every right operand below the next tier up — the ordinary
// precedence-climbing shape. "is"/"as" read a NullablePrimitiveType on the
// right instead of recursing, the same special case the combinatorial
// engine's phase 1 makes.
func bindTier(prec int, operand func(*parsestate.State) (ast.Node, error)) func(*parsestate.State) (ast.Node, error) {
	return func(s *parsestate.State) (ast.Node, error) {
		left, err := operand(s)
		if err != nil {
			return nil, err
		}

		for {
			if err := checkCancelled(s); err != nil {
				return nil, err
			}

			bop, ok := constant.LookupBinOpOperator(s.CurrentTokenKind)
			if !ok || bop.Precedence != prec {
				break
			}

			opConstant := leafConstant(s)
			s.Collection.NewOrphanLeaf(opConstant)
			s.Advance()

			var right ast.Node
			if bop.Kind == constant.BinOpKindIsExpression || bop.Kind == constant.BinOpKindAsExpression {
				right, err = readNullablePrimitiveType(s, nil)
			} else {
				right, err = operand(s)
			}
			if err != nil {
				return nil, err
			}

			left, err = buildBinOpNode(s, bop.Kind, left, opConstant, right)
			if err != nil {
				return nil, err
			}
		}

		return left, nil
	}
}
