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

// readPrimaryExpression is the TPrimaryExpression dispatcher (spec.md 4.C):
// it picks a production from the current token and then folds in any
// invoke/item-access/field-access suffixes that follow (RecursivePrimaryExpression).
// The head is read as an orphan (nil parent) regardless of the parent given
// here, because whether it ends up attached directly under parent or nested
// one level deeper under a new RecursivePrimaryExpression context depends on
// whether any suffix follows — readRecursiveSuffixes resolves that and does
// the one real Attach.
func readPrimaryExpression(s *parsestate.State, parent *uint64) (ast.Node, error) {
	head, err := readPrimaryExpressionHead(s, nil)
	if err != nil {
		return nil, err
	}
	return readRecursiveSuffixes(s, parent, head)
}

func readPrimaryExpressionHead(s *parsestate.State, parent *uint64) (ast.Node, error) {
	switch s.CurrentTokenKind {
	case token.KindKeywordEach:
		return readEachExpression(s, parent)
	case token.KindKeywordLet:
		return readLetExpression(s, parent)
	case token.KindKeywordIf:
		return readIfExpression(s, parent)
	case token.KindKeywordError:
		return readErrorRaisingExpression(s, parent)
	case token.KindKeywordTry:
		return readErrorHandlingExpression(s, parent)
	case token.KindKeywordType:
		return readTypePrimaryType(s, parent)
	case token.KindLeftParenthesis:
		return disambiguateParenthesizedOrFunction(s, parent)
	case token.KindLeftBrace:
		return readListExpression(s, parent)
	case token.KindLeftBracket:
		return readRecordExpression(s, parent)
	case token.KindAtSign:
		return readIdentifierExpression(s, parent)
	case token.KindEllipsis:
		return readNotImplementedExpression(s, parent)
	case token.KindNumericLiteral, token.KindHexLiteral, token.KindTextLiteral,
		token.KindKeywordTrue, token.KindKeywordFalse:
		return readLiteralExpression(s, parent)
	case token.KindIdentifier:
		if s.CurrentToken.Data == "null" {
			return readLiteralExpression(s, parent)
		}
		return readIdentifierExpression(s, parent)
	}
	return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, token.KindIdentifier, token.KindLeftParenthesis, token.KindLeftBrace, token.KindLeftBracket)
}

// readLiteralExpression reads a numeric, text, logical, or null literal
// leaf. "null" arrives as a plain identifier (the token model has no
// dedicated keyword for it; spec.md's token kind table reserves one for
// every other language constant but not this one), so its text is the
// classifier here rather than its token kind.
func readLiteralExpression(s *parsestate.State, parent *uint64) (*ast.LiteralExpression, error) {
	var kind ast.LiteralKind
	switch {
	case s.CurrentTokenKind == token.KindNumericLiteral || s.CurrentTokenKind == token.KindHexLiteral:
		kind = ast.LiteralKindNumeric
	case s.CurrentTokenKind == token.KindTextLiteral:
		kind = ast.LiteralKindText
	case s.CurrentTokenKind == token.KindKeywordTrue || s.CurrentTokenKind == token.KindKeywordFalse:
		kind = ast.LiteralKindLogical
	case s.CurrentTokenKind == token.KindIdentifier && s.CurrentToken.Data == "null":
		kind = ast.LiteralKindNull
	default:
		return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, token.KindNumericLiteral, token.KindTextLiteral)
	}
	node := ast.NewLiteralExpression(s.CurrentToken.Data, kind)
	node.SetTokenRange(singleTokenRange(s))
	if err := attachLeaf(s, parent, node); err != nil {
		return nil, err
	}
	s.Advance()
	return node, nil
}

// readIdentifierExpression reads "[@]Identifier".
func readIdentifierExpression(s *parsestate.State, parent *uint64) (*ast.IdentifierExpression, error) {
	ctx, err := open(s, ast.KindIdentifierExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	var inclusive *ast.Constant
	if s.CurrentTokenKind == token.KindAtSign {
		inclusive, err = consumeConstant(s, ctxId, token.KindAtSign)
		if err != nil {
			return nil, err
		}
	}
	identifier, err := consumeIdentifier(s, ctxId, inclusive)
	if err != nil {
		return nil, err
	}
	node := ast.NewIdentifierExpression(inclusive, identifier)
	return commit(s, ctx, node), nil
}

// readParenthesizedExpression reads "( TExpression )". Called only once
// disambiguateParenthesizedOrFunction has ruled out a function expression.
func readParenthesizedExpression(s *parsestate.State, parent *uint64) (*ast.ParenthesizedExpression, error) {
	ctx, err := open(s, ast.KindParenthesizedExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftParenthesis)
	if err != nil {
		return nil, err
	}
	content, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightParenthesis)
	if err != nil {
		return nil, err
	}
	node := ast.NewParenthesizedExpression(openWrapper, content, closeWrapper)
	return commit(s, ctx, node), nil
}

// readListExpression reads "{ Csv<TListItem> }". A TListItem is either a
// full expression or a RangeExpression ("a..b").
func readListExpression(s *parsestate.State, parent *uint64) (*ast.ListExpression, error) {
	ctx, err := open(s, ast.KindListExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftBrace)
	if err != nil {
		return nil, err
	}
	content, err := readCsvArrayWrapper(s, ctxId, isKind(token.KindRightBrace), readListItem)
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightBrace)
	if err != nil {
		return nil, err
	}
	node := ast.NewListExpression(openWrapper, content, closeWrapper)
	return commit(s, ctx, node), nil
}

// readListItem reads one TListItem: an expression, optionally followed by
// ".." and a second expression forming a RangeExpression.
func readListItem(s *parsestate.State, parent uint64) (ast.Node, error) {
	left, err := readBinOpExpression(s, nil)
	if err != nil {
		return nil, err
	}
	if s.CurrentTokenKind != token.KindDotDot {
		if err := s.Collection.Attach(parent, left); err != nil {
			return nil, err
		}
		return left, nil
	}
	ctx, err := s.Collection.StartContext(ast.KindRangeExpression, left.TokenRange().TokenIndexStart, tokenAt(s, left.TokenRange().TokenIndexStart), nil)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	if err := s.Collection.Attach(ctxId, left); err != nil {
		return nil, err
	}
	rangeConstant, err := consumeConstant(s, ctxId, token.KindDotDot)
	if err != nil {
		return nil, err
	}
	right, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewRangeExpression(left, rangeConstant, right)
	committed := s.Collection.CommitContext(ctx, node)
	if err := s.Collection.Attach(parent, committed); err != nil {
		return nil, err
	}
	return committed, nil
}

// readGeneralizedIdentifierPairedExpression reads "GeneralizedIdentifier =
// TExpression", a RecordExpression field.
func readGeneralizedIdentifierPairedExpression(s *parsestate.State, parent uint64) (*ast.GeneralizedIdentifierPairedExpression, error) {
	ctx, err := open(s, ast.KindGeneralizedIdentifierPairedExpression, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	key, err := consumeGeneralizedIdentifier(s, ctxId)
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
	node := ast.NewGeneralizedIdentifierPairedExpression(key, equalConstant, value)
	return commit(s, ctx, node), nil
}

// readRecordExpression reads "[ Csv<GeneralizedIdentifierPairedExpression>
// [...] ]" (spec.md 8 scenario 5).
func readRecordExpression(s *parsestate.State, parent *uint64) (*ast.RecordExpression, error) {
	ctx, err := open(s, ast.KindRecordExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftBracket)
	if err != nil {
		return nil, err
	}
	content, err := readCsvArrayWrapper(s, ctxId, isRecordExpressionClose, readGeneralizedIdentifierPairedExpression)
	if err != nil {
		return nil, err
	}
	openRecordMarker, _, err := tryConsumeConstant(s, ctxId, token.KindEllipsis)
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightBracket)
	if err != nil {
		return nil, err
	}
	node := ast.NewRecordExpression(openWrapper, content, openRecordMarker, closeWrapper)
	return commit(s, ctx, node), nil
}

func isRecordExpressionClose(k token.Kind) bool {
	return k == token.KindRightBracket || k == token.KindEllipsis
}

// readNotImplementedExpression reads a bare "..." used in expression
// position.
func readNotImplementedExpression(s *parsestate.State, parent *uint64) (*ast.NotImplementedExpression, error) {
	ctx, err := open(s, ast.KindNotImplementedExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	ellipsis, err := consumeConstant(s, ctxId, token.KindEllipsis)
	if err != nil {
		return nil, err
	}
	node := ast.NewNotImplementedExpression(ellipsis)
	return commit(s, ctx, node), nil
}

// readRecursiveSuffixes folds any run of invoke/item-access/field-access
// suffixes onto head (spec.md 4.C RecursivePrimaryExpression, e.g.
// "f(1)[a]{0}"). With no suffixes, head is returned unwrapped, same
// no-wrapper-when-nothing-to-wrap discipline as the unary and binop
// engines.
func readRecursiveSuffixes(s *parsestate.State, parent *uint64, head ast.Node) (ast.Node, error) {
	if !startsSuffix(s.CurrentTokenKind) {
		if err := attachRoot(s, parent, head); err != nil {
			return nil, err
		}
		return head, nil
	}

	headStart := head.TokenRange().TokenIndexStart
	ctx, err := s.Collection.StartContext(ast.KindRecursivePrimaryExpression, headStart, tokenAt(s, headStart), parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	if err := s.Collection.Attach(ctxId, head); err != nil {
		return nil, err
	}

	arrayCtx, err := open(s, ast.KindArrayWrapper, &ctxId)
	if err != nil {
		return nil, err
	}
	arrayCtxId := arrayCtx.Id()

	var suffixes []ast.Node
	for startsSuffix(s.CurrentTokenKind) {
		var suffix ast.Node
		var err error
		switch s.CurrentTokenKind {
		case token.KindLeftParenthesis:
			suffix, err = readInvokeExpression(s, arrayCtxId)
		case token.KindLeftBrace:
			suffix, err = readItemAccessExpression(s, arrayCtxId)
		case token.KindLeftBracket:
			suffix, err = readFieldSelectorOrProjection(s, arrayCtxId)
		}
		if err != nil {
			return nil, err
		}
		suffixes = append(suffixes, suffix)
	}

	recursiveExpressions := ast.NewArrayWrapper(suffixes)
	commit(s, arrayCtx, recursiveExpressions)

	node := ast.NewRecursivePrimaryExpression(head, recursiveExpressions)
	return commit(s, ctx, node), nil
}

func tokenAt(s *parsestate.State, idx int) token.Token {
	if tok, ok := s.Snapshot.At(idx); ok {
		return tok
	}
	return token.Token{Kind: token.KindEof}
}

func startsSuffix(k token.Kind) bool {
	switch k {
	case token.KindLeftParenthesis, token.KindLeftBrace, token.KindLeftBracket:
		return true
	}
	return false
}

// readInvokeExpression reads a call suffix "( Csv<TExpression> )".
func readInvokeExpression(s *parsestate.State, parent uint64) (*ast.InvokeExpression, error) {
	ctx, err := open(s, ast.KindInvokeExpression, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftParenthesis)
	if err != nil {
		return nil, err
	}
	args, err := readCsvArrayWrapper(s, ctxId, isKind(token.KindRightParenthesis), func(s *parsestate.State, parent uint64) (ast.Node, error) {
		return readBinOpExpression(s, &parent)
	})
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightParenthesis)
	if err != nil {
		return nil, err
	}
	node := ast.NewInvokeExpression(openWrapper, args, closeWrapper)
	return commit(s, ctx, node), nil
}

// readItemAccessExpression reads a suffix "{ TExpression }[?]".
func readItemAccessExpression(s *parsestate.State, parent uint64) (*ast.ItemAccessExpression, error) {
	ctx, err := open(s, ast.KindItemAccessExpression, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftBrace)
	if err != nil {
		return nil, err
	}
	content, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightBrace)
	if err != nil {
		return nil, err
	}
	optional, _, err := tryConsumeConstant(s, ctxId, token.KindQuestionMark)
	if err != nil {
		return nil, err
	}
	node := ast.NewItemAccessExpression(openWrapper, content, closeWrapper, optional)
	return commit(s, ctx, node), nil
}

// readFieldSelectorOrProjection disambiguates the two "[" suffixes
// (spec.md 4.I): a second "[" immediately inside means FieldProjection
// ("[[a],[b]]"), anything else means a single FieldSelector ("[a]"). One
// token of look-ahead resolves it; no checkpoint is needed because neither
// alternative can fail once chosen.
func readFieldSelectorOrProjection(s *parsestate.State, parent uint64) (ast.Node, error) {
	if peekKind(s) == token.KindLeftBracket {
		return readFieldProjection(s, parent)
	}
	return readFieldSelector(s, parent)
}

func readFieldSelector(s *parsestate.State, parent uint64) (*ast.FieldSelector, error) {
	ctx, err := open(s, ast.KindFieldSelector, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftBracket)
	if err != nil {
		return nil, err
	}
	content, err := consumeGeneralizedIdentifier(s, ctxId)
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightBracket)
	if err != nil {
		return nil, err
	}
	optional, _, err := tryConsumeConstant(s, ctxId, token.KindQuestionMark)
	if err != nil {
		return nil, err
	}
	node := ast.NewFieldSelector(openWrapper, content, closeWrapper, optional)
	return commit(s, ctx, node), nil
}

func readFieldProjection(s *parsestate.State, parent uint64) (*ast.FieldProjection, error) {
	ctx, err := open(s, ast.KindFieldProjection, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftBracket)
	if err != nil {
		return nil, err
	}
	content, err := readCsvArrayWrapper(s, ctxId, isKind(token.KindRightBracket), readFieldSelector)
	if err != nil {
		return nil, err
	}
	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightBracket)
	if err != nil {
		return nil, err
	}
	optional, _, err := tryConsumeConstant(s, ctxId, token.KindQuestionMark)
	if err != nil {
		return nil, err
	}
	node := ast.NewFieldProjection(openWrapper, content, closeWrapper, optional)
	return commit(s, ctx, node), nil
}
