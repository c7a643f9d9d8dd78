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

import "devt.de/mquery/token"

// ArithmeticOperator is the closed family of the *, /, +, -, & operators.
type ArithmeticOperator string

const (
	ArithmeticOperatorMultiplication ArithmeticOperator = "*"
	ArithmeticOperatorDivision       ArithmeticOperator = "/"
	ArithmeticOperatorAddition       ArithmeticOperator = "+"
	ArithmeticOperatorSubtraction    ArithmeticOperator = "-"
	ArithmeticOperatorAnd            ArithmeticOperator = "&"
)

// EqualityOperator is the closed family of = and <>.
type EqualityOperator string

const (
	EqualityOperatorEqualTo    EqualityOperator = "="
	EqualityOperatorNotEqualTo EqualityOperator = "<>"
)

// RelationalOperator is the closed family of <, <=, >, >=.
type RelationalOperator string

const (
	RelationalOperatorLessThan           RelationalOperator = "<"
	RelationalOperatorLessThanEqualTo    RelationalOperator = "<="
	RelationalOperatorGreaterThan        RelationalOperator = ">"
	RelationalOperatorGreaterThanEqualTo RelationalOperator = ">="
)

// LogicalOperator is the closed family of and / or.
type LogicalOperator string

const (
	LogicalOperatorAnd LogicalOperator = "and"
	LogicalOperatorOr  LogicalOperator = "or"
)

// UnaryOperator is the closed family of unary +, -, not.
type UnaryOperator string

const (
	UnaryOperatorPositive UnaryOperator = "+"
	UnaryOperatorNegative UnaryOperator = "-"
	UnaryOperatorNot      UnaryOperator = "not"
)

// KeywordOperator covers the three binary operators spelled as keywords
// (as, is, meta) plus the ?? null-coalescing operator, none of which fit
// the symbolic families above but which the precedence table still ranks.
type KeywordOperator string

const (
	KeywordOperatorAs              KeywordOperator = "as"
	KeywordOperatorIs              KeywordOperator = "is"
	KeywordOperatorMeta            KeywordOperator = "meta"
	KeywordOperatorNullCoalescing  KeywordOperator = "??"
)

// Precedence table, highest first, mirroring spec.md 4.B. Ties share a
// level and are left-associative.
const (
	PrecedenceMeta            = 110
	PrecedenceMultiplicative  = 100
	PrecedenceAdditive        = 90
	PrecedenceRelational      = 80
	PrecedenceEquality        = 70
	PrecedenceAs              = 60
	PrecedenceIs              = 50
	PrecedenceAnd             = 40
	PrecedenceOr              = 30
	PrecedenceNullCoalescing  = 20
)

// BinOpExpressionKind names the AST node shape a binary operator token
// produces; the parser package's ast.Kind values are not imported here to
// keep this package leaf-level, so the engine maps this to ast.Kind itself.
type BinOpExpressionKind int

const (
	BinOpKindNone BinOpExpressionKind = iota
	BinOpKindLogicalExpression
	BinOpKindIsExpression
	BinOpKindAsExpression
	BinOpKindEqualityExpression
	BinOpKindRelationalExpression
	BinOpKindArithmeticExpression
	BinOpKindMetadataExpression
	BinOpKindNullCoalescingExpression
)

// BinOpOperator is the family-tagged sum of every symbol the precedence
// table ranks, letting the engine carry one uniform operator value through
// phase 1 collection regardless of family.
type BinOpOperator struct {
	Text       string
	Precedence int
	Kind       BinOpExpressionKind
}

// binOpLookahead is keyed by the token kind that can start the next
// operator/operand pair; it is the "look-ahead table" of spec.md 4.H.
var binOpLookahead = map[token.Kind]BinOpOperator{
	token.KindAsterisk:              {"*", PrecedenceMultiplicative, BinOpKindArithmeticExpression},
	token.KindDivision:               {"/", PrecedenceMultiplicative, BinOpKindArithmeticExpression},
	token.KindPlus:                   {"+", PrecedenceAdditive, BinOpKindArithmeticExpression},
	token.KindMinus:                  {"-", PrecedenceAdditive, BinOpKindArithmeticExpression},
	token.KindAmpersand:              {"&", PrecedenceAdditive, BinOpKindArithmeticExpression},
	token.KindLessThan:               {"<", PrecedenceRelational, BinOpKindRelationalExpression},
	token.KindLessThanEqualTo:        {"<=", PrecedenceRelational, BinOpKindRelationalExpression},
	token.KindGreaterThan:            {">", PrecedenceRelational, BinOpKindRelationalExpression},
	token.KindGreaterThanEqualTo:     {">=", PrecedenceRelational, BinOpKindRelationalExpression},
	token.KindEqual:                  {"=", PrecedenceEquality, BinOpKindEqualityExpression},
	token.KindNotEqual:               {"<>", PrecedenceEquality, BinOpKindEqualityExpression},
	token.KindKeywordAs:              {"as", PrecedenceAs, BinOpKindAsExpression},
	token.KindKeywordIs:              {"is", PrecedenceIs, BinOpKindIsExpression},
	token.KindKeywordAnd:             {"and", PrecedenceAnd, BinOpKindLogicalExpression},
	token.KindKeywordOr:              {"or", PrecedenceOr, BinOpKindLogicalExpression},
	token.KindKeywordMeta:            {"meta", PrecedenceMeta, BinOpKindMetadataExpression},
	token.KindNullCoalescingOperator: {"??", PrecedenceNullCoalescing, BinOpKindNullCoalescingExpression},
}

// LookupBinOpOperator is the table consult of spec.md 4.H phase 1: given
// the current token kind, it returns the operator to read next, or ok=false
// when the token cannot continue a binary-operator chain.
func LookupBinOpOperator(k token.Kind) (BinOpOperator, bool) {
	op, ok := binOpLookahead[k]
	return op, ok
}

// IsBinOpOperator reports whether k can appear as a binary operator
// anywhere in the precedence table, independent of position.
func IsBinOpOperator(k token.Kind) bool {
	_, ok := binOpLookahead[k]
	return ok
}
