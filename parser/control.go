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

// readEachExpression reads "each TFunctionBody", sugar for a one-parameter
// function over "_".
func readEachExpression(s *parsestate.State, parent *uint64) (*ast.EachExpression, error) {
	ctx, err := open(s, ast.KindEachExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	eachConstant, err := consumeConstant(s, ctxId, token.KindKeywordEach)
	if err != nil {
		return nil, err
	}
	body, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewEachExpression(eachConstant, body)
	return commit(s, ctx, node), nil
}

// readIdentifierPairedExpression reads "Identifier = TExpression".
func readIdentifierPairedExpression(s *parsestate.State, parent uint64) (*ast.IdentifierPairedExpression, error) {
	ctx, err := open(s, ast.KindIdentifierPairedExpression, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	key, err := consumeIdentifier(s, ctxId, nil)
	if err != nil {
		return nil, err
	}
	equalConstant, err := consumeConstant(s, ctxId, token.KindEqual)
	if err != nil {
		return nil, err
	}
	value, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewIdentifierPairedExpression(key, equalConstant, value)
	return commit(s, ctx, node), nil
}

// readLetExpression reads "let Csv<IdentifierPairedExpression> in
// TExpression" (spec.md 8 scenario 6).
func readLetExpression(s *parsestate.State, parent *uint64) (*ast.LetExpression, error) {
	ctx, err := open(s, ast.KindLetExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	letConstant, err := consumeConstant(s, ctxId, token.KindKeywordLet)
	if err != nil {
		return nil, err
	}
	variables, err := readCsvArrayWrapper(s, ctxId, isKind(token.KindKeywordIn), readIdentifierPairedExpression)
	if err != nil {
		return nil, err
	}
	inConstant, err := consumeConstant(s, ctxId, token.KindKeywordIn)
	if err != nil {
		return nil, err
	}
	body, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewLetExpression(letConstant, variables, inConstant, body)
	return commit(s, ctx, node), nil
}

// readIfExpression reads "if COND then TRUE else FALSE".
func readIfExpression(s *parsestate.State, parent *uint64) (*ast.IfExpression, error) {
	ctx, err := open(s, ast.KindIfExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	ifConstant, err := consumeConstant(s, ctxId, token.KindKeywordIf)
	if err != nil {
		return nil, err
	}
	condition, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	thenConstant, err := consumeConstant(s, ctxId, token.KindKeywordThen)
	if err != nil {
		return nil, err
	}
	trueExpr, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	elseConstant, err := consumeConstant(s, ctxId, token.KindKeywordElse)
	if err != nil {
		return nil, err
	}
	falseExpr, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewIfExpression(ifConstant, condition, thenConstant, trueExpr, elseConstant, falseExpr)
	return commit(s, ctx, node), nil
}

// readErrorRaisingExpression reads "error TExpression".
func readErrorRaisingExpression(s *parsestate.State, parent *uint64) (*ast.ErrorRaisingExpression, error) {
	ctx, err := open(s, ast.KindErrorRaisingExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	errorConstant, err := consumeConstant(s, ctxId, token.KindKeywordError)
	if err != nil {
		return nil, err
	}
	expr, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewErrorRaisingExpression(errorConstant, expr)
	return commit(s, ctx, node), nil
}

// readErrorHandlingExpression reads "try TExpression" followed by either an
// "otherwise TExpression" clause or an inline "catch [(Identifier)] =>
// TExpression" clause (spec.md's Open Questions: CatchExpression is not a
// distinct ast.Kind, so the catch clause's fields live directly on
// ErrorHandlingExpression).
func readErrorHandlingExpression(s *parsestate.State, parent *uint64) (*ast.ErrorHandlingExpression, error) {
	ctx, err := open(s, ast.KindErrorHandlingExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	tryConstant, err := consumeConstant(s, ctxId, token.KindKeywordTry)
	if err != nil {
		return nil, err
	}
	protected, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}

	if s.CurrentTokenKind == token.KindCatchLanguageConstant {
		catchConstant, err := consumeConstant(s, ctxId, token.KindCatchLanguageConstant)
		if err != nil {
			return nil, err
		}
		var openWrapper, closeWrapper *ast.Constant
		var name *ast.Identifier
		if s.CurrentTokenKind == token.KindLeftParenthesis {
			openWrapper, err = consumeConstant(s, ctxId, token.KindLeftParenthesis)
			if err != nil {
				return nil, err
			}
			name, err = consumeIdentifier(s, ctxId, nil)
			if err != nil {
				return nil, err
			}
			closeWrapper, err = consumeClosingWrapper(s, ctxId, token.KindRightParenthesis)
			if err != nil {
				return nil, err
			}
		}
		arrow, err := consumeConstant(s, ctxId, token.KindFatArrow)
		if err != nil {
			return nil, err
		}
		catchBody, err := readBinOpExpression(s, &ctxId)
		if err != nil {
			return nil, err
		}
		node := ast.NewErrorHandlingExpressionCatch(tryConstant, protected, catchConstant, openWrapper, name, closeWrapper, arrow, catchBody)
		return commit(s, ctx, node), nil
	}

	otherwiseCtx, err := open(s, ast.KindOtherwiseExpression, &ctxId)
	if err != nil {
		return nil, err
	}
	otherwiseCtxId := otherwiseCtx.Id()
	otherwiseConstant, err := consumeConstant(s, otherwiseCtxId, token.KindKeywordOtherwise)
	if err != nil {
		return nil, err
	}
	otherwiseBody, err := readBinOpExpression(s, &otherwiseCtxId)
	if err != nil {
		return nil, err
	}
	otherwise := commit(s, otherwiseCtx, ast.NewOtherwiseExpression(otherwiseConstant, otherwiseBody)).(*ast.OtherwiseExpression)

	node := ast.NewErrorHandlingExpressionOtherwise(tryConstant, protected, otherwise)
	return commit(s, ctx, node), nil
}
