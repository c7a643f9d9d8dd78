/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package constant holds the closed textual vocabularies the grammar uses
// wherever a Constant leaf node is required: keywords, language constants,
// miscellaneous punctuation constants, primitive type names, and the
// operator families, plus the single precedence table the combinatorial
// binary-expression engine drives from (spec.md 4.B).
package constant

// Keyword is the closed set of reserved words the grammar recognizes
// outside expression operators (those live in the operator families below).
type Keyword string

const (
	KeywordAnd        Keyword = "and"
	KeywordAs         Keyword = "as"
	KeywordEach       Keyword = "each"
	KeywordElse       Keyword = "else"
	KeywordError      Keyword = "error"
	KeywordFalse      Keyword = "false"
	KeywordIf         Keyword = "if"
	KeywordIn         Keyword = "in"
	KeywordIs         Keyword = "is"
	KeywordLet        Keyword = "let"
	KeywordMeta       Keyword = "meta"
	KeywordNot        Keyword = "not"
	KeywordOr         Keyword = "or"
	KeywordOtherwise  Keyword = "otherwise"
	KeywordSection    Keyword = "section"
	KeywordShared     Keyword = "shared"
	KeywordThen       Keyword = "then"
	KeywordTrue       Keyword = "true"
	KeywordTry        Keyword = "try"
	KeywordType       Keyword = "type"
	KeywordHashBinary         Keyword = "#binary"
	KeywordHashDate           Keyword = "#date"
	KeywordHashDateTime       Keyword = "#datetime"
	KeywordHashDateTimeZone   Keyword = "#datetimezone"
	KeywordHashDuration       Keyword = "#duration"
	KeywordHashInfinity       Keyword = "#infinity"
	KeywordHashNan            Keyword = "#nan"
	KeywordHashSections       Keyword = "#sections"
	KeywordHashShared         Keyword = "#shared"
	KeywordHashTable          Keyword = "#table"
	KeywordHashTime           Keyword = "#time"
)

// LanguageConstant covers the three reserved identifiers the grammar treats
// as constants rather than operators or keywords.
type LanguageConstant string

const (
	LanguageConstantNullable LanguageConstant = "nullable"
	LanguageConstantOptional LanguageConstant = "optional"
	LanguageConstantCatch    LanguageConstant = "catch"
)

// MiscConstant is the closed set of punctuation constants that appear as
// Constant leaves but are neither keywords nor operators.
type MiscConstant string

const (
	MiscConstantAmpersand   MiscConstant = "&"
	MiscConstantAtSign      MiscConstant = "@"
	MiscConstantComma       MiscConstant = ","
	MiscConstantDotDot      MiscConstant = ".."
	MiscConstantEllipsis    MiscConstant = "..."
	MiscConstantEqual       MiscConstant = "="
	MiscConstantFatArrow    MiscConstant = "=>"
	MiscConstantNullCoalescing MiscConstant = "??"
	MiscConstantSemicolon   MiscConstant = ";"
	MiscConstantQuestionMark MiscConstant = "?"
)

// WrapperConstant is the closed set of delimiter constants used by Wrapped.
type WrapperConstant string

const (
	WrapperConstantLeftBrace        WrapperConstant = "{"
	WrapperConstantRightBrace       WrapperConstant = "}"
	WrapperConstantLeftBracket      WrapperConstant = "["
	WrapperConstantRightBracket     WrapperConstant = "]"
	WrapperConstantLeftParenthesis  WrapperConstant = "("
	WrapperConstantRightParenthesis WrapperConstant = ")"
)

// PrimitiveTypeConstant is the closed set of built-in type names: the 17
// Power Query primitive types plus the two pseudo-types "action" and "time"
// the grammar also accepts in a PrimitiveType slot, 19 names in all
// (spec.md 4.B).
type PrimitiveTypeConstant string

const (
	PrimitiveTypeAction       PrimitiveTypeConstant = "action"
	PrimitiveTypeAny          PrimitiveTypeConstant = "any"
	PrimitiveTypeAnyNonNull   PrimitiveTypeConstant = "anynonnull"
	PrimitiveTypeBinary       PrimitiveTypeConstant = "binary"
	PrimitiveTypeDate         PrimitiveTypeConstant = "date"
	PrimitiveTypeDateTime     PrimitiveTypeConstant = "datetime"
	PrimitiveTypeDateTimeZone PrimitiveTypeConstant = "datetimezone"
	PrimitiveTypeDuration     PrimitiveTypeConstant = "duration"
	PrimitiveTypeFunction     PrimitiveTypeConstant = "function"
	PrimitiveTypeList         PrimitiveTypeConstant = "list"
	PrimitiveTypeLogical      PrimitiveTypeConstant = "logical"
	PrimitiveTypeNone         PrimitiveTypeConstant = "none"
	PrimitiveTypeNull         PrimitiveTypeConstant = "null"
	PrimitiveTypeNumber       PrimitiveTypeConstant = "number"
	PrimitiveTypeRecord       PrimitiveTypeConstant = "record"
	PrimitiveTypeTable        PrimitiveTypeConstant = "table"
	PrimitiveTypeText         PrimitiveTypeConstant = "text"
	PrimitiveTypeTime         PrimitiveTypeConstant = "time"
	PrimitiveTypeType         PrimitiveTypeConstant = "type"
)

var primitiveTypeConstants = map[string]PrimitiveTypeConstant{
	string(PrimitiveTypeAction):       PrimitiveTypeAction,
	string(PrimitiveTypeAny):          PrimitiveTypeAny,
	string(PrimitiveTypeAnyNonNull):   PrimitiveTypeAnyNonNull,
	string(PrimitiveTypeBinary):       PrimitiveTypeBinary,
	string(PrimitiveTypeDate):         PrimitiveTypeDate,
	string(PrimitiveTypeDateTime):     PrimitiveTypeDateTime,
	string(PrimitiveTypeDateTimeZone): PrimitiveTypeDateTimeZone,
	string(PrimitiveTypeDuration):     PrimitiveTypeDuration,
	string(PrimitiveTypeFunction):     PrimitiveTypeFunction,
	string(PrimitiveTypeList):         PrimitiveTypeList,
	string(PrimitiveTypeLogical):      PrimitiveTypeLogical,
	string(PrimitiveTypeNone):         PrimitiveTypeNone,
	string(PrimitiveTypeNull):         PrimitiveTypeNull,
	string(PrimitiveTypeNumber):       PrimitiveTypeNumber,
	string(PrimitiveTypeRecord):       PrimitiveTypeRecord,
	string(PrimitiveTypeTable):        PrimitiveTypeTable,
	string(PrimitiveTypeText):         PrimitiveTypeText,
	string(PrimitiveTypeTime):         PrimitiveTypeTime,
	string(PrimitiveTypeType):         PrimitiveTypeType,
}

// LookupPrimitiveTypeConstant classifies an identifier's text as a
// primitive type name, or reports InvalidPrimitiveType via ok=false.
func LookupPrimitiveTypeConstant(text string) (PrimitiveTypeConstant, bool) {
	c, ok := primitiveTypeConstants[text]
	return c, ok
}
