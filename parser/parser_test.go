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
	"testing"

	"devt.de/mquery/ast"
	"devt.de/mquery/token"
)

func tk(kind token.Kind, data string) token.Token {
	return token.Token{Kind: kind, Data: data}
}

func snap(toks ...token.Token) token.Snapshot {
	return token.Snapshot{Tokens: toks}
}

func rootOf(t *testing.T, ok *ParseOk) ast.Node {
	t.Helper()
	either, err := ok.NodeIdMap.Xor(ok.RootId)
	if err != nil {
		t.Fatal(err)
	}
	if !either.IsAst() {
		t.Fatal("expected the root id to resolve to a committed ast node")
	}
	return either.Ast
}

// Scenario 1 (spec.md 8): a bare literal stands for itself; no placeholder
// context survives the run.
func TestParseBareLiteral(t *testing.T) {
	ok, perr := Parse(snap(tk(token.KindNumericLiteral, "1")), ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}
	if ok.RootId != 0 {
		t.Error("expected the lone literal to keep id 0, got", ok.RootId)
	}

	root := rootOf(t, ok)
	lit, isLiteral := root.(*ast.LiteralExpression)
	if !isLiteral {
		t.Fatalf("expected *ast.LiteralExpression, got %T", root)
	}
	if lit.Literal != "1" || lit.LiteralKind != ast.LiteralKindNumeric {
		t.Error("expected the numeric literal \"1\" unchanged", lit)
	}
	if rng := lit.TokenRange(); rng.TokenIndexStart != 0 || rng.TokenIndexEnd != 1 {
		t.Error("expected the literal's token range to be [0,1)", rng)
	}
}

// Scenario 2 (spec.md 8): "1 + 2 * 3" folds to the arithmetic-precedence
// tree ArithmeticExpression(+, 1, ArithmeticExpression(*, 2, 3)), with the
// inner multiplication's token range [2,5) and the outer's [0,5).
func TestParseArithmeticPrecedence(t *testing.T) {
	toks := snap(
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindPlus, "+"),
		tk(token.KindNumericLiteral, "2"),
		tk(token.KindAsterisk, "*"),
		tk(token.KindNumericLiteral, "3"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	outer, isArith := rootOf(t, ok).(*ast.ArithmeticExpression)
	if !isArith || outer.OperatorConstant.Text != "+" {
		t.Fatalf("expected an outer + ArithmeticExpression, got %T", rootOf(t, ok))
	}
	left, isLiteral := outer.Left.(*ast.LiteralExpression)
	if !isLiteral || left.Literal != "1" {
		t.Error("expected the outer expression's left operand to be the literal 1", outer.Left)
	}
	if rng := outer.TokenRange(); rng.TokenIndexStart != 0 || rng.TokenIndexEnd != 5 {
		t.Error("expected the outer expression's token range to be [0,5)", rng)
	}

	inner, isArith := outer.Right.(*ast.ArithmeticExpression)
	if !isArith || inner.OperatorConstant.Text != "*" {
		t.Fatalf("expected the right operand to be a * ArithmeticExpression, got %T", outer.Right)
	}
	innerLeft, _ := inner.Left.(*ast.LiteralExpression)
	innerRight, _ := inner.Right.(*ast.LiteralExpression)
	if innerLeft == nil || innerLeft.Literal != "2" || innerRight == nil || innerRight.Literal != "3" {
		t.Error("expected the inner expression to be 2 * 3", inner.Left, inner.Right)
	}
	if rng := inner.TokenRange(); rng.TokenIndexStart != 2 || rng.TokenIndexEnd != 5 {
		t.Error("expected the inner expression's token range to be [2,5)", rng)
	}
}

// Scenario 3 (spec.md 8): "a and b or c" is a left-associative logical
// chain: LogicalExpression(or, LogicalExpression(and, a, b), c).
func TestParseLeftAssociativeLogicalChain(t *testing.T) {
	toks := snap(
		tk(token.KindIdentifier, "a"),
		tk(token.KindKeywordAnd, "and"),
		tk(token.KindIdentifier, "b"),
		tk(token.KindKeywordOr, "or"),
		tk(token.KindIdentifier, "c"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	outer, isLogical := rootOf(t, ok).(*ast.LogicalExpression)
	if !isLogical || outer.OperatorConstant.Text != "or" {
		t.Fatalf("expected an outer \"or\" LogicalExpression, got %T", rootOf(t, ok))
	}
	right := identifierLiteral(t, outer.Right)
	if right != "c" {
		t.Error("expected the outer right operand to be c", outer.Right)
	}

	inner, isLogical := outer.Left.(*ast.LogicalExpression)
	if !isLogical || inner.OperatorConstant.Text != "and" {
		t.Fatalf("expected the left operand to be an \"and\" LogicalExpression, got %T", outer.Left)
	}
	if identifierLiteral(t, inner.Left) != "a" || identifierLiteral(t, inner.Right) != "b" {
		t.Error("expected the inner expression to be a and b", inner.Left, inner.Right)
	}
}

func identifierLiteral(t *testing.T, n ast.Node) string {
	t.Helper()
	ident, ok := n.(*ast.IdentifierExpression)
	if !ok {
		t.Fatalf("expected *ast.IdentifierExpression, got %T", n)
	}
	return ident.Identifier.Literal
}

// Scenario 4 (spec.md 8): "1 as number is any" nests as/is:
// IsExpression(is, AsExpression(as, 1, number), any).
func TestParseAsIsNesting(t *testing.T) {
	toks := snap(
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindKeywordAs, "as"),
		tk(token.KindIdentifier, "number"),
		tk(token.KindKeywordIs, "is"),
		tk(token.KindIdentifier, "any"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	outer, isIs := rootOf(t, ok).(*ast.IsExpression)
	if !isIs {
		t.Fatalf("expected *ast.IsExpression, got %T", rootOf(t, ok))
	}
	rightType, ok2 := outer.Right.(*ast.PrimitiveType)
	if !ok2 || rightType.Literal != "any" {
		t.Error("expected the is-expression's right operand to be the primitive type any", outer.Right)
	}

	inner, isAs := outer.Left.(*ast.AsExpression)
	if !isAs {
		t.Fatalf("expected the is-expression's left operand to be an AsExpression, got %T", outer.Left)
	}
	innerLeft, _ := inner.Left.(*ast.LiteralExpression)
	innerRight, _ := inner.Right.(*ast.PrimitiveType)
	if innerLeft == nil || innerLeft.Literal != "1" || innerRight == nil || innerRight.Literal != "number" {
		t.Error("expected the as-expression to be 1 as number", inner.Left, inner.Right)
	}
}

// Scenario 5 (spec.md 8): "[a=1, b=2, ...]" is a RecordExpression with two
// fields and a non-nil open-record marker.
func TestParseRecordExpressionWithOpenMarker(t *testing.T) {
	toks := snap(
		tk(token.KindLeftBracket, "["),
		tk(token.KindIdentifier, "a"),
		tk(token.KindEqual, "="),
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindComma, ","),
		tk(token.KindIdentifier, "b"),
		tk(token.KindEqual, "="),
		tk(token.KindNumericLiteral, "2"),
		tk(token.KindComma, ","),
		tk(token.KindEllipsis, "..."),
		tk(token.KindRightBracket, "]"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	rec, isRecord := rootOf(t, ok).(*ast.RecordExpression)
	if !isRecord {
		t.Fatalf("expected *ast.RecordExpression, got %T", rootOf(t, ok))
	}
	if rec.OpenRecordMarkerConstant == nil {
		t.Error("expected the trailing \"...\" to set OpenRecordMarkerConstant")
	}
	if got := len(rec.Content.Elements); got != 2 {
		t.Fatalf("expected two record fields, got %d", got)
	}

	first := rec.Content.Elements[0].Element
	if first.Key.Literal != "a" {
		t.Error("expected the first field's key to be a", first.Key)
	}
	firstVal, _ := first.Value.(*ast.LiteralExpression)
	if firstVal == nil || firstVal.Literal != "1" {
		t.Error("expected the first field's value to be 1", first.Value)
	}
	if rec.Content.Elements[0].CommaConstant == nil {
		t.Error("expected a comma constant after the first field")
	}

	second := rec.Content.Elements[1].Element
	if second.Key.Literal != "b" {
		t.Error("expected the second field's key to be b", second.Key)
	}
	secondVal, _ := second.Value.(*ast.LiteralExpression)
	if secondVal == nil || secondVal.Literal != "2" {
		t.Error("expected the second field's value to be 2", second.Value)
	}
	if rec.Content.Elements[1].CommaConstant == nil {
		t.Error("expected a trailing comma before the open-record marker")
	}
}

// Scenario 6 (spec.md 8): "let x = 1 in @x" binds x and evaluates an
// inclusive identifier reference in the body.
func TestParseLetExpressionWithInclusiveIdentifier(t *testing.T) {
	toks := snap(
		tk(token.KindKeywordLet, "let"),
		tk(token.KindIdentifier, "x"),
		tk(token.KindEqual, "="),
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindKeywordIn, "in"),
		tk(token.KindAtSign, "@"),
		tk(token.KindIdentifier, "x"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	let, isLet := rootOf(t, ok).(*ast.LetExpression)
	if !isLet {
		t.Fatalf("expected *ast.LetExpression, got %T", rootOf(t, ok))
	}
	if got := len(let.Variables.Elements); got != 1 {
		t.Fatalf("expected one bound variable, got %d", got)
	}
	binding := let.Variables.Elements[0].Element
	if binding.Key.Literal != "x" {
		t.Error("expected the bound name to be x", binding.Key)
	}
	boundVal, _ := binding.Value.(*ast.LiteralExpression)
	if boundVal == nil || boundVal.Literal != "1" {
		t.Error("expected x to be bound to the literal 1", binding.Value)
	}

	body, isIdentExpr := let.Expression.(*ast.IdentifierExpression)
	if !isIdentExpr {
		t.Fatalf("expected the let body to be an IdentifierExpression, got %T", let.Expression)
	}
	if body.InclusiveConstant == nil || body.InclusiveConstant.Text != "@" {
		t.Error("expected the body reference to be marked inclusive with \"@\"")
	}
	if body.Identifier.Literal != "x" {
		t.Error("expected the body reference to name x", body.Identifier)
	}
}

// A chain of three same-precedence operators must fold left-associatively
// without validateBinOpOperand rejecting the already-folded left operand.
func TestParseArithmeticChainSamePrecedence(t *testing.T) {
	toks := snap(
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindPlus, "+"),
		tk(token.KindNumericLiteral, "2"),
		tk(token.KindPlus, "+"),
		tk(token.KindNumericLiteral, "3"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	outer, isArith := rootOf(t, ok).(*ast.ArithmeticExpression)
	if !isArith {
		t.Fatalf("expected *ast.ArithmeticExpression, got %T", rootOf(t, ok))
	}
	inner, isArith := outer.Left.(*ast.ArithmeticExpression)
	if !isArith {
		t.Fatalf("expected the left operand to already be the folded (1+2), got %T", outer.Left)
	}
	if l, _ := inner.Left.(*ast.LiteralExpression); l == nil || l.Literal != "1" {
		t.Error("expected the innermost left operand to be 1", inner.Left)
	}
	if r, _ := inner.Right.(*ast.LiteralExpression); r == nil || r.Literal != "2" {
		t.Error("expected the innermost right operand to be 2", inner.Right)
	}
	if r, _ := outer.Right.(*ast.LiteralExpression); r == nil || r.Literal != "3" {
		t.Error("expected the outer right operand to be 3", outer.Right)
	}
}

// ReadDocument dispatches to the section production on a leading "section"
// keyword rather than treating it as an ordinary expression.
func TestParseSectionDocument(t *testing.T) {
	toks := snap(
		tk(token.KindKeywordSection, "section"),
		tk(token.KindIdentifier, "Foo"),
		tk(token.KindSemicolon, ";"),
		tk(token.KindKeywordShared, "shared"),
		tk(token.KindIdentifier, "x"),
		tk(token.KindEqual, "="),
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindSemicolon, ";"),
	)
	ok, perr := Parse(toks, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}

	section, isSection := rootOf(t, ok).(*ast.Section)
	if !isSection {
		t.Fatalf("expected *ast.Section, got %T", rootOf(t, ok))
	}
	if section.Name == nil || section.Name.Literal != "Foo" {
		t.Error("expected the section name to be Foo", section.Name)
	}
	if got := len(section.SectionMembers.Elements); got != 1 {
		t.Fatalf("expected one section member, got %d", got)
	}
	member := section.SectionMembers.Elements[0]
	if member.SharedConstant == nil {
		t.Error("expected the member to carry its leading \"shared\" constant")
	}
	if member.NamePairedExpression.Key.Literal != "x" {
		t.Error("expected the member's bound name to be x", member.NamePairedExpression.Key)
	}
}

// disambiguateParenthesizedOrFunction must recover via checkpoint/restore
// when the function-expression attempt fails, falling back to a plain
// parenthesized expression, and must pick the function reading when one is
// actually present.
func TestDisambiguateParenthesizedVsFunction(t *testing.T) {
	paren := snap(
		tk(token.KindLeftParenthesis, "("),
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindPlus, "+"),
		tk(token.KindNumericLiteral, "2"),
		tk(token.KindRightParenthesis, ")"),
	)
	ok, perr := Parse(paren, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}
	if _, isParen := rootOf(t, ok).(*ast.ParenthesizedExpression); !isParen {
		t.Fatalf("expected *ast.ParenthesizedExpression, got %T", rootOf(t, ok))
	}

	fn := snap(
		tk(token.KindLeftParenthesis, "("),
		tk(token.KindIdentifier, "x"),
		tk(token.KindRightParenthesis, ")"),
		tk(token.KindFatArrow, "=>"),
		tk(token.KindIdentifier, "x"),
	)
	ok, perr = Parse(fn, ParseSettings{})
	if perr != nil {
		t.Fatal(perr)
	}
	fnExpr, isFn := rootOf(t, ok).(*ast.FunctionExpression)
	if !isFn {
		t.Fatalf("expected *ast.FunctionExpression, got %T", rootOf(t, ok))
	}
	if got := len(fnExpr.Parameters.Content.Elements); got != 1 || fnExpr.Parameters.Content.Elements[0].Element.Name.Literal != "x" {
		t.Error("expected one parameter named x", fnExpr.Parameters)
	}
}

// The naive recursive-descent variant must resolve the same precedence
// tree shape as the combinatorial fast path for the same input.
func TestNaiveVariantMatchesCombinatorialShape(t *testing.T) {
	toks := snap(
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindPlus, "+"),
		tk(token.KindNumericLiteral, "2"),
		tk(token.KindAsterisk, "*"),
		tk(token.KindNumericLiteral, "3"),
	)

	naive, perr := Parse(toks, ParseSettings{ParserVariant: ParserVariantNaiveRecursiveDescent})
	if perr != nil {
		t.Fatal(perr)
	}

	outer, isArith := rootOf(t, naive).(*ast.ArithmeticExpression)
	if !isArith || outer.OperatorConstant.Text != "+" {
		t.Fatalf("expected the naive engine's root to be a + ArithmeticExpression, got %T", rootOf(t, naive))
	}
	inner, isArith := outer.Right.(*ast.ArithmeticExpression)
	if !isArith || inner.OperatorConstant.Text != "*" {
		t.Fatalf("expected the naive engine's right operand to be a * ArithmeticExpression, got %T", outer.Right)
	}
}

type alwaysCancelled struct{}

func (alwaysCancelled) Cancelled() bool { return true }

// Parse must surface a Cancelled ParseError immediately when the supplied
// cancellation handle already reports cancelled, before reading anything.
func TestParseCancelledBeforeStart(t *testing.T) {
	_, perr := Parse(snap(tk(token.KindNumericLiteral, "1")), ParseSettings{Cancellation: alwaysCancelled{}})
	if perr == nil {
		t.Fatal("expected a Cancelled ParseError")
	}
	if perr.Kind != Cancelled {
		t.Error("expected ParseErrorKind Cancelled, got", perr.Kind)
	}
	if perr.NodeIdMapAtFailure == nil {
		t.Error("expected the partial node-id map to be attached even to a cancellation before any reading")
	}
}

// A complete document read that leaves trailing tokens unconsumed must
// raise UnusedTokensRemain rather than silently ignoring the rest.
func TestParseUnusedTokensRemain(t *testing.T) {
	toks := snap(
		tk(token.KindNumericLiteral, "1"),
		tk(token.KindNumericLiteral, "1"),
	)
	_, perr := Parse(toks, ParseSettings{})
	if perr == nil {
		t.Fatal("expected an error for the unconsumed trailing literal")
	}
	if perr.Kind != UnusedTokensRemain {
		t.Error("expected ParseErrorKind UnusedTokensRemain, got", perr.Kind)
	}
	if perr.TokenIndex != 1 {
		t.Error("expected the failure to be reported at the first unconsumed token", perr.TokenIndex)
	}
}

// An unexpected token inside a nested production must surface an
// UnexpectedToken error carrying the partial map built up to that point.
func TestParseUnexpectedTokenKeepsPartialMap(t *testing.T) {
	toks := snap(
		tk(token.KindLeftBracket, "["),
		tk(token.KindIdentifier, "a"),
		tk(token.KindEqual, "="),
	)
	_, perr := Parse(toks, ParseSettings{})
	if perr == nil {
		t.Fatal("expected an error for the truncated record expression")
	}
	if perr.Kind != UnexpectedToken {
		t.Error("expected ParseErrorKind UnexpectedToken, got", perr.Kind)
	}
	if perr.NodeIdMapAtFailure == nil {
		t.Error("expected the partial node-id map to be attached to the failure")
	}
}

// A bracketed construct that reaches Eof before its closer must raise the
// dedicated ExpectedClosingBracket kind rather than the generic
// UnexpectedToken a plain consumeConstant call would report.
func TestParseMissingClosingBracketRaisesExpectedClosingBracket(t *testing.T) {
	toks := snap(
		tk(token.KindLeftBracket, "["),
		tk(token.KindIdentifier, "a"),
		tk(token.KindEqual, "="),
		tk(token.KindNumericLiteral, "1"),
	)
	_, perr := Parse(toks, ParseSettings{})
	if perr == nil {
		t.Fatal("expected an error for the unterminated record expression")
	}
	if perr.Kind != ExpectedClosingBracket {
		t.Error("expected ParseErrorKind ExpectedClosingBracket, got", perr.Kind)
	}
	if len(perr.ExpectedKinds) != 1 || perr.ExpectedKinds[0] != token.KindRightBracket {
		t.Error("expected the error to name \"]\" as the missing closer", perr.ExpectedKinds)
	}
}
