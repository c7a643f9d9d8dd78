/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package constant

import (
	"testing"

	"devt.de/mquery/token"
)

func TestLookupBinOpOperatorKnownTokens(t *testing.T) {
	op, ok := LookupBinOpOperator(token.KindPlus)
	if !ok || op.Text != "+" || op.Precedence != PrecedenceAdditive || op.Kind != BinOpKindArithmeticExpression {
		t.Error("expected + to resolve to the additive arithmetic operator", op, ok)
	}

	op, ok = LookupBinOpOperator(token.KindKeywordAnd)
	if !ok || op.Kind != BinOpKindLogicalExpression || op.Precedence != PrecedenceAnd {
		t.Error("expected \"and\" to resolve to LogicalExpression at PrecedenceAnd", op, ok)
	}

	op, ok = LookupBinOpOperator(token.KindKeywordOr)
	if !ok || op.Kind != BinOpKindLogicalExpression || op.Precedence != PrecedenceOr {
		t.Error("expected \"or\" to also resolve to LogicalExpression, at the lower PrecedenceOr", op, ok)
	}
}

func TestLookupBinOpOperatorUnknownToken(t *testing.T) {
	if _, ok := LookupBinOpOperator(token.KindIdentifier); ok {
		t.Error("a plain identifier never starts a binary operator")
	}
}

func TestIsBinOpOperator(t *testing.T) {
	if !IsBinOpOperator(token.KindNullCoalescingOperator) {
		t.Error("expected ?? to be recognized as a binary operator token")
	}
	if IsBinOpOperator(token.KindSemicolon) {
		t.Error("a semicolon never starts a binary operator")
	}
}

func TestPrecedenceTableIsStrictlyOrdered(t *testing.T) {
	// The fold in readBinOpExpressionCombinatorial relies on every tier
	// having a distinct precedence value, and/or included: they share a
	// BinOpExpressionKind but sit on two distinct tiers (PrecedenceAnd,
	// PrecedenceOr), so every tier must stay strictly ordered.
	levels := []int{
		PrecedenceMeta, PrecedenceMultiplicative, PrecedenceAdditive,
		PrecedenceRelational, PrecedenceEquality, PrecedenceAs, PrecedenceIs,
		PrecedenceAnd, PrecedenceOr, PrecedenceNullCoalescing,
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] >= levels[i-1] {
			t.Errorf("expected precedence tier %d (%d) to be strictly below tier %d (%d)",
				i, levels[i], i-1, levels[i-1])
		}
	}
}
