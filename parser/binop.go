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
	"devt.de/mquery/token"
)

// readBinOpExpression is the TExpression entry point every other reader
// calls; it dispatches to one of the two engines ParseSettings.ParserVariant
// names (spec.md 6), defaulting to the combinatorial fast path when no
// variant was requested (the zero value of ParserVariant).
func readBinOpExpression(s *parsestate.State, parent *uint64) (ast.Node, error) {
	if variantOf(s) == ParserVariantNaiveRecursiveDescent {
		return readBinOpExpressionNaive(s, parent)
	}
	return readBinOpExpressionCombinatorial(s, parent)
}

func variantOf(s *parsestate.State) ParserVariant {
	if v, ok := s.Options[optionKeyParserVariant].(ParserVariant); ok {
		return v
	}
	return ParserVariantCombinatorialFastPath
}

// readBinOpExpressionCombinatorial is the combinatorial fast path for the
// entire binary-operator precedence ladder (spec.md 4.H): rather than one
// recursive-descent call per precedence level (?? over or/and over is over
// as over equality over relational over arithmetic over meta over unary),
// it reads one flat run of unary operands separated by whatever operators
// the look-ahead table recognizes, then reshapes that run into a
// precedence-correct tree in a single pass.
//
// Phase 1 operands and operator leaves are built through the ordinary
// readers/leaf helpers and land in the collection as fully valid, parentless
// entries; nothing is ever attached to a throwaway parent only to be
// stripped back out; see DESIGN.md for why this sidesteps the source's
// add-then-delete transient bookkeeping (spec.md 9, Design Notes).
//
// "is"/"as" read a NullablePrimitiveType on the right; every other operator
// in the table reads a UnaryExpression, including meta and ?? — the generic
// precedence-value fold in phase 2 reproduces the correct nesting for all of
// them without a second recursive tier (spec.md 4.C's TLogicalExpression/
// TMetadataExpression/... operand-shape predicates fall out of this
// automatically, since the precedence table assigns exactly one
// BinOpExpressionKind per tier).
func readBinOpExpressionCombinatorial(s *parsestate.State, parent *uint64) (ast.Node, error) {
	left, err := readUnaryExpression(s, nil)
	if err != nil {
		return nil, err
	}

	type step struct {
		op   *ast.Constant
		prec int
		kind constant.BinOpExpressionKind
	}

	var steps []step
	operands := []ast.Node{left}

	for {
		if err := checkCancelled(s); err != nil {
			return nil, err
		}

		bop, ok := constant.LookupBinOpOperator(s.CurrentTokenKind)
		if !ok {
			break
		}

		opConstant := leafConstant(s)
		s.Collection.NewOrphanLeaf(opConstant)
		s.Advance()

		var right ast.Node
		if bop.Kind == constant.BinOpKindIsExpression || bop.Kind == constant.BinOpKindAsExpression {
			right, err = readNullablePrimitiveType(s, nil)
		} else {
			right, err = readUnaryExpression(s, nil)
		}
		if err != nil {
			return nil, err
		}

		steps = append(steps, step{op: opConstant, prec: bop.Precedence, kind: bop.Kind})
		operands = append(operands, right)
	}

	if len(steps) == 0 {
		// No placeholder was ever opened for this run, so there is
		// nothing to delete: the lone unary simply stands for the
		// result (spec.md 8 scenario 1, "no placeholder survives").
		if err := attachRoot(s, parent, left); err != nil {
			return nil, err
		}
		return left, nil
	}

	i := 0
	for len(steps) > 0 {
		if i == len(steps)-1 || steps[i].prec >= steps[i+1].prec {
			node, err := buildBinOpNode(s, steps[i].kind, operands[i], steps[i].op, operands[i+1])
			if err != nil {
				return nil, err
			}
			operands = append(append([]ast.Node{}, operands[:i]...), append([]ast.Node{node}, operands[i+2:]...)...)
			steps = append(append([]step{}, steps[:i]...), steps[i+1:]...)
			if i > 0 {
				i--
			}
		} else {
			i++
		}
	}

	root := operands[0]

	// Fold order is precedence order, not source order, so the ids the
	// wrapper nodes picked up during folding are not a valid depth-first
	// pre-order numbering of the finished subtree; renumber it before
	// handing the result back (spec.md 4.D).
	rename, err := s.Collection.RecalculateIds(root.NodeId())
	if err != nil {
		return nil, err
	}
	if err := s.Collection.UpdateNodeIds(rename); err != nil {
		return nil, err
	}

	if err := attachRoot(s, parent, root); err != nil {
		return nil, err
	}
	return root, nil
}

// attachRoot links node under *parent once it is finished (every node built
// inside this engine is opened parentless, spec.md 4.H, so the caller-given
// parent is wired up here instead of at each intermediate fold).
func attachRoot(s *parsestate.State, parent *uint64, node ast.Node) error {
	if parent == nil {
		return nil
	}
	return s.Collection.Attach(*parent, node)
}

// buildBinOpNode folds one operator: it opens a fresh context, attaches the
// three consumed orphans (left, operator, right) as its children in order,
// validates the shape the precedence table promises for this operator kind,
// and commits.
func buildBinOpNode(s *parsestate.State, kind constant.BinOpExpressionKind, left ast.Node, op *ast.Constant, right ast.Node) (ast.Node, error) {
	if err := validateBinOpOperand(s, kind, left); err != nil {
		return nil, err
	}

	astKind := binOpAstKind(kind)
	ctx, err := open(s, astKind, nil)
	if err != nil {
		return nil, err
	}
	if err := s.Collection.Attach(ctx.Id(), left); err != nil {
		return nil, err
	}
	if err := s.Collection.Attach(ctx.Id(), op); err != nil {
		return nil, err
	}
	if err := s.Collection.Attach(ctx.Id(), right); err != nil {
		return nil, err
	}

	var node ast.Node
	switch kind {
	case constant.BinOpKindArithmeticExpression:
		node = ast.NewArithmeticExpression(left, op, right)
	case constant.BinOpKindEqualityExpression:
		node = ast.NewEqualityExpression(left, op, right)
	case constant.BinOpKindRelationalExpression:
		node = ast.NewRelationalExpression(left, op, right)
	case constant.BinOpKindLogicalExpression:
		node = ast.NewLogicalExpression(left, op, right)
	case constant.BinOpKindAsExpression:
		node = ast.NewAsExpression(left, op, right)
	case constant.BinOpKindIsExpression:
		node = ast.NewIsExpression(left, op, right)
	case constant.BinOpKindMetadataExpression:
		node = ast.NewMetadataExpression(left, op, right)
	case constant.BinOpKindNullCoalescingExpression:
		node = ast.NewNullCoalescingExpression(left, op, right)
	default:
		return nil, invariantViolated(s.TokenIndex, "unrecognized binary operator kind from the precedence table")
	}

	node.SetTokenRange(token.Range{
		TokenIndexStart: left.TokenRange().TokenIndexStart,
		TokenIndexEnd:   right.TokenRange().TokenIndexEnd,
		PositionStart:   left.TokenRange().PositionStart,
		PositionEnd:     right.TokenRange().PositionEnd,
	})
	return s.Collection.CommitContext(ctx, node), nil
}

func binOpAstKind(kind constant.BinOpExpressionKind) ast.Kind {
	switch kind {
	case constant.BinOpKindArithmeticExpression:
		return ast.KindArithmeticExpression
	case constant.BinOpKindEqualityExpression:
		return ast.KindEqualityExpression
	case constant.BinOpKindRelationalExpression:
		return ast.KindRelationalExpression
	case constant.BinOpKindLogicalExpression:
		return ast.KindLogicalExpression
	case constant.BinOpKindAsExpression:
		return ast.KindAsExpression
	case constant.BinOpKindIsExpression:
		return ast.KindIsExpression
	case constant.BinOpKindMetadataExpression:
		return ast.KindMetadataExpression
	case constant.BinOpKindNullCoalescingExpression:
		return ast.KindNullCoalescingExpression
	}
	return ast.KindNotImplementedExpression
}

// validateBinOpOperand is the engine's validator (spec.md 4.H): it checks
// the left operand has the shape the precedence table promises for kind.
// A left operand already of this same fold's own ast.Kind is always
// accepted first: left-associative chaining at one precedence tier (e.g.
// "1 + 2 + 3") or across two tiers that share an ast.Kind ("and"/"or" both
// fold to LogicalExpression) re-feeds an already-folded node of exactly
// this kind back in as the next left operand, which the "next-tighter-kind"
// predicates below do not themselves allow for.
func validateBinOpOperand(s *parsestate.State, kind constant.BinOpExpressionKind, left ast.Node) error {
	if left.Kind() == binOpAstKind(kind) {
		return nil
	}

	ok := true
	switch kind {
	case constant.BinOpKindAsExpression:
		ok = ast.IsTEqualityExpression(left.Kind())
	case constant.BinOpKindIsExpression:
		ok = ast.IsTAsExpression(left.Kind())
	case constant.BinOpKindLogicalExpression:
		ok = ast.IsTIsExpression(left.Kind())
	case constant.BinOpKindNullCoalescingExpression:
		ok = ast.IsTLogicalExpression(left.Kind())
	case constant.BinOpKindMetadataExpression:
		ok = ast.IsTUnaryExpression(left.Kind())
	case constant.BinOpKindArithmeticExpression:
		ok = ast.IsTMetadataExpression(left.Kind())
	case constant.BinOpKindRelationalExpression:
		ok = ast.IsTArithmeticExpression(left.Kind())
	case constant.BinOpKindEqualityExpression:
		ok = ast.IsTRelationalExpression(left.Kind())
	}
	if !ok {
		return invariantViolated(s.TokenIndex, "binary operator fold produced an operand of the wrong shape")
	}
	return nil
}
