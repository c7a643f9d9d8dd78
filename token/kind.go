/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package token defines the fixed, closed set of lexical token kinds and
// source positions the parser consumes. The lexer that produces these is an
// external collaborator; this package only describes its output shape.
package token

// Kind identifies the lexical category of a Token. The set is closed: the
// parser switches over it and a reader that sees a kind it does not expect
// reports UnexpectedToken, never treating it as a new case to add ad hoc.
type Kind int

const (
	KindEof Kind = iota

	// Literal kinds

	KindIdentifier
	KindNumericLiteral
	KindTextLiteral
	KindHexLiteral
	KindKeywordIdentifier // #shared, #table, #date, ... before disambiguation

	// Keywords

	KindKeywordAnd
	KindKeywordAs
	KindKeywordEach
	KindKeywordElse
	KindKeywordError
	KindKeywordFalse
	KindKeywordIf
	KindKeywordIn
	KindKeywordIs
	KindKeywordLet
	KindKeywordMeta
	KindKeywordNot
	KindKeywordOr
	KindKeywordOtherwise
	KindKeywordSection
	KindKeywordShared
	KindKeywordThen
	KindKeywordTrue
	KindKeywordTry
	KindKeywordType
	KindKeywordHashBinary
	KindKeywordHashDate
	KindKeywordHashDateTime
	KindKeywordHashDateTimeZone
	KindKeywordHashDuration
	KindKeywordHashInfinity
	KindKeywordHashNan
	KindKeywordHashSections
	KindKeywordHashShared
	KindKeywordHashTable
	KindKeywordHashTime

	// Language constants (not true keywords but reserved identifiers)

	KindNullableLanguageConstant // nullable
	KindOptionalLanguageConstant // optional
	KindCatchLanguageConstant    // catch

	// Punctuation / wrappers

	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindLeftParenthesis
	KindRightParenthesis

	// Operators and misc constants

	KindAmpersand
	KindAsterisk
	KindAtSign
	KindComma
	KindDivision
	KindDotDot
	KindEllipsis
	KindEqual
	KindFatArrow
	KindGreaterThan
	KindGreaterThanEqualTo
	KindLessThan
	KindLessThanEqualTo
	KindMinus
	KindNotEqual
	KindNullCoalescingOperator
	KindPlus
	KindQuestionMark
	KindSemicolon

	// Catch-all. Primitive type names have no kind of their own: they are
	// lexed as identifiers and reclassified by the constant vocabulary
	// during parsing.

	KindUnknown
)

// String renders a human-readable name, used in diagnostics and trace
// records. It never participates in lexical classification.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

var kindNames = map[Kind]string{
	KindEof:                     "Eof",
	KindIdentifier:              "Identifier",
	KindNumericLiteral:          "NumericLiteral",
	KindTextLiteral:             "TextLiteral",
	KindHexLiteral:              "HexLiteral",
	KindKeywordIdentifier:       "KeywordIdentifier",
	KindKeywordAnd:              "KeywordAnd",
	KindKeywordAs:               "KeywordAs",
	KindKeywordEach:             "KeywordEach",
	KindKeywordElse:             "KeywordElse",
	KindKeywordError:            "KeywordError",
	KindKeywordFalse:            "KeywordFalse",
	KindKeywordIf:               "KeywordIf",
	KindKeywordIn:               "KeywordIn",
	KindKeywordIs:               "KeywordIs",
	KindKeywordLet:              "KeywordLet",
	KindKeywordMeta:             "KeywordMeta",
	KindKeywordNot:              "KeywordNot",
	KindKeywordOr:               "KeywordOr",
	KindKeywordOtherwise:        "KeywordOtherwise",
	KindKeywordSection:          "KeywordSection",
	KindKeywordShared:           "KeywordShared",
	KindKeywordThen:             "KeywordThen",
	KindKeywordTrue:             "KeywordTrue",
	KindKeywordTry:              "KeywordTry",
	KindKeywordType:             "KeywordType",
	KindKeywordHashBinary:       "KeywordHashBinary",
	KindKeywordHashDate:         "KeywordHashDate",
	KindKeywordHashDateTime:     "KeywordHashDateTime",
	KindKeywordHashDateTimeZone: "KeywordHashDateTimeZone",
	KindKeywordHashDuration:     "KeywordHashDuration",
	KindKeywordHashInfinity:     "KeywordHashInfinity",
	KindKeywordHashNan:          "KeywordHashNan",
	KindKeywordHashSections:     "KeywordHashSections",
	KindKeywordHashShared:       "KeywordHashShared",
	KindKeywordHashTable:        "KeywordHashTable",
	KindKeywordHashTime:         "KeywordHashTime",
	KindNullableLanguageConstant: "nullable",
	KindOptionalLanguageConstant: "optional",
	KindCatchLanguageConstant:    "catch",
	KindLeftBrace:                "LeftBrace",
	KindRightBrace:               "RightBrace",
	KindLeftBracket:              "LeftBracket",
	KindRightBracket:             "RightBracket",
	KindLeftParenthesis:          "LeftParenthesis",
	KindRightParenthesis:         "RightParenthesis",
	KindAmpersand:                "Ampersand",
	KindAsterisk:                 "Asterisk",
	KindAtSign:                   "AtSign",
	KindComma:                    "Comma",
	KindDivision:                 "Division",
	KindDotDot:                   "DotDot",
	KindEllipsis:                 "Ellipsis",
	KindEqual:                    "Equal",
	KindFatArrow:                 "FatArrow",
	KindGreaterThan:              "GreaterThan",
	KindGreaterThanEqualTo:       "GreaterThanEqualTo",
	KindLessThan:                 "LessThan",
	KindLessThanEqualTo:          "LessThanEqualTo",
	KindMinus:                    "Minus",
	KindNotEqual:                 "NotEqual",
	KindNullCoalescingOperator:   "NullCoalescingOperator",
	KindPlus:                     "Plus",
	KindQuestionMark:             "QuestionMark",
	KindSemicolon:                "Semicolon",
	KindUnknown:                  "Unknown",
}

// KindFromName is the inverse of String, used by callers that read a token
// stream back from a serialized form (the CLI's token-file loader) rather
// than from a live lexer.
func KindFromName(name string) (Kind, bool) {
	k, ok := namesToKind[name]
	return k, ok
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// IsKeywordIdentifier reports whether k is one of the "#keyword"-family
// lexical kinds (#table, #date, #shared, ...), each of which has its own
// KindKeywordHash* kind; KindKeywordIdentifier itself is not one of them.
func IsKeywordIdentifier(k Kind) bool {
	switch k {
	case KindKeywordHashBinary, KindKeywordHashDate, KindKeywordHashDateTime,
		KindKeywordHashDateTimeZone, KindKeywordHashDuration, KindKeywordHashInfinity,
		KindKeywordHashNan, KindKeywordHashSections, KindKeywordHashShared,
		KindKeywordHashTable, KindKeywordHashTime:
		return true
	}
	return false
}
