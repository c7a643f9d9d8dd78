/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package ast holds the closed family of Power Query syntax node variants
// (spec.md 4.C): a single Kind enumeration, one Go struct per variant, and
// the kind-group membership predicates ("T..." unions in the source
// specification) that replace the source's overlapping polymorphic type
// aliases (spec.md 9, Design Notes: "Open polymorphic unions").
package ast

// Kind enumerates every node variant the grammar produces. It is closed:
// every Node implementation in this package sets Kind from this list, and
// nothing outside the package can extend it (see astNode's unexported
// marker method).
type Kind int

const (
	// Leaves. No children; carry literal payloads (spec.md glossary).

	KindConstant Kind = iota
	KindIdentifier
	KindGeneralizedIdentifier
	KindLiteralExpression
	KindPrimitiveType

	// Binary-operator family, one kind per BinOp<Left, Op, Right>
	// instantiation (spec.md 4.C TBinOpExpression).

	KindArithmeticExpression
	KindEqualityExpression
	KindRelationalExpression
	KindLogicalExpression
	KindAsExpression
	KindIsExpression
	KindMetadataExpression
	KindNullCoalescingExpression

	// Unary and primary expressions.

	KindUnaryExpression
	KindRangeExpression
	KindIdentifierExpression
	KindParenthesizedExpression
	KindInvokeExpression
	KindListExpression
	KindRecordExpression
	KindFieldSelector
	KindFieldProjection
	KindItemAccessExpression
	KindRecursivePrimaryExpression
	KindNotImplementedExpression

	// Control / let / error forms, all members of TPrimaryExpression except
	// OtherwiseExpression (the handler clause of ErrorHandlingExpression).

	KindEachExpression
	KindLetExpression
	KindIfExpression
	KindErrorRaisingExpression
	KindErrorHandlingExpression
	KindOtherwiseExpression

	// Functions.

	KindFunctionExpression
	KindParameter
	KindParameterList
	KindFunctionType

	// Types.

	KindTypePrimaryType
	KindNullableType
	KindNullablePrimitiveType
	KindTableType
	KindRecordType
	KindListType
	KindFieldSpecification
	KindFieldSpecificationList
	KindFieldTypeSpecification

	// Sections / documents.

	KindSection
	KindSectionMember

	// Paired / keyed shapes.

	KindGeneralizedIdentifierPairedExpression
	KindIdentifierPairedExpression

	// Generic containers. One kind each, reused across every grammar slot
	// that needs an addressable ordered sequence or a trailing-comma item
	// (spec.md 4.C: ArrayWrapper<T>, Csv<T>).

	KindArrayWrapper
	KindCsv
)

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UnknownKind"
}

var kindNames = map[Kind]string{
	KindConstant:                    "Constant",
	KindIdentifier:                  "Identifier",
	KindGeneralizedIdentifier:       "GeneralizedIdentifier",
	KindLiteralExpression:           "LiteralExpression",
	KindPrimitiveType:               "PrimitiveType",
	KindArithmeticExpression:        "ArithmeticExpression",
	KindEqualityExpression:          "EqualityExpression",
	KindRelationalExpression:        "RelationalExpression",
	KindLogicalExpression:           "LogicalExpression",
	KindAsExpression:                "AsExpression",
	KindIsExpression:                "IsExpression",
	KindMetadataExpression:          "MetadataExpression",
	KindNullCoalescingExpression:    "NullCoalescingExpression",
	KindUnaryExpression:             "UnaryExpression",
	KindRangeExpression:             "RangeExpression",
	KindIdentifierExpression:        "IdentifierExpression",
	KindParenthesizedExpression:     "ParenthesizedExpression",
	KindInvokeExpression:            "InvokeExpression",
	KindListExpression:              "ListExpression",
	KindRecordExpression:            "RecordExpression",
	KindFieldSelector:               "FieldSelector",
	KindFieldProjection:             "FieldProjection",
	KindItemAccessExpression:        "ItemAccessExpression",
	KindRecursivePrimaryExpression:  "RecursivePrimaryExpression",
	KindNotImplementedExpression:    "NotImplementedExpression",
	KindEachExpression:              "EachExpression",
	KindLetExpression:               "LetExpression",
	KindIfExpression:                "IfExpression",
	KindErrorRaisingExpression:      "ErrorRaisingExpression",
	KindErrorHandlingExpression:     "ErrorHandlingExpression",
	KindOtherwiseExpression:         "OtherwiseExpression",
	KindFunctionExpression:          "FunctionExpression",
	KindParameter:                   "Parameter",
	KindParameterList:               "ParameterList",
	KindFunctionType:                "FunctionType",
	KindTypePrimaryType:             "TypePrimaryType",
	KindNullableType:                "NullableType",
	KindNullablePrimitiveType:       "NullablePrimitiveType",
	KindTableType:                   "TableType",
	KindRecordType:                  "RecordType",
	KindListType:                    "ListType",
	KindFieldSpecification:          "FieldSpecification",
	KindFieldSpecificationList:      "FieldSpecificationList",
	KindFieldTypeSpecification:      "FieldTypeSpecification",
	KindSection:                     "Section",
	KindSectionMember:               "SectionMember",
	KindGeneralizedIdentifierPairedExpression: "GeneralizedIdentifierPairedExpression",
	KindIdentifierPairedExpression:            "IdentifierPairedExpression",
	KindArrayWrapper:                "ArrayWrapper",
	KindCsv:                         "Csv",
}

// leafKinds is the fixed set of variants that carry no children (glossary:
// Leaf). Exactly these five, per spec.md 3.
var leafKinds = map[Kind]bool{
	KindConstant:              true,
	KindIdentifier:            true,
	KindGeneralizedIdentifier: true,
	KindLiteralExpression:     true,
	KindPrimitiveType:         true,
}

// IsLeafKind reports whether k identifies one of the five leaf variants.
func IsLeafKind(k Kind) bool {
	return leafKinds[k]
}

// primaryExpressionKinds is TPrimaryExpression: the members reachable
// without any prefix operator (spec.md 4.C).
var primaryExpressionKinds = buildSet(
	KindLiteralExpression, KindIdentifierExpression, KindParenthesizedExpression,
	KindInvokeExpression, KindListExpression, KindRecordExpression,
	KindFieldSelector, KindFieldProjection, KindItemAccessExpression,
	KindRecursivePrimaryExpression, KindNotImplementedExpression,
	KindFunctionExpression, KindEachExpression, KindLetExpression,
	KindIfExpression, KindErrorRaisingExpression, KindErrorHandlingExpression,
	KindTypePrimaryType,
)

var unaryExpressionKinds = unionWith(primaryExpressionKinds, KindUnaryExpression)
var metadataExpressionKinds = unionWith(unaryExpressionKinds, KindMetadataExpression)
var arithmeticExpressionKinds = unionWith(metadataExpressionKinds, KindArithmeticExpression)
var relationalExpressionKinds = unionWith(arithmeticExpressionKinds, KindRelationalExpression)
var equalityExpressionKinds = unionWith(relationalExpressionKinds, KindEqualityExpression)
var asExpressionKinds = unionWith(equalityExpressionKinds, KindAsExpression)
var isExpressionKinds = unionWith(asExpressionKinds, KindIsExpression)
var logicalExpressionKinds = unionWith(isExpressionKinds, KindLogicalExpression)
var expressionKinds = unionWith(logicalExpressionKinds, KindNullCoalescingExpression)

var primaryTypeKinds = buildSet(
	KindPrimitiveType, KindFunctionType, KindTableType, KindNullableType,
	KindRecordType, KindListType, KindTypePrimaryType,
)

var typeExpressionKinds = unionWith(expressionKinds, KindTypePrimaryType)

var fieldAccessExpressionKinds = buildSet(KindFieldSelector, KindFieldProjection)

var anyLiteralKinds = buildSet(KindLiteralExpression, KindListExpression, KindRecordExpression)

var listItemKinds = unionWith(expressionKinds, KindRangeExpression)

var nullablePrimitiveTypeKinds = buildSet(KindPrimitiveType, KindNullablePrimitiveType)

func buildSet(kinds ...Kind) map[Kind]bool {
	s := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		s[k] = true
	}
	return s
}

func unionWith(base map[Kind]bool, extra ...Kind) map[Kind]bool {
	s := make(map[Kind]bool, len(base)+len(extra))
	for k := range base {
		s[k] = true
	}
	for _, k := range extra {
		s[k] = true
	}
	return s
}

// The following predicates are the Go realization of spec.md 4.C's
// polymorphic unions (TExpression, TLogicalExpression, ...). Each accepts
// every kind at its own grammar level and every kind nested tighter.

func IsTExpression(k Kind) bool             { return expressionKinds[k] }
func IsTLogicalExpression(k Kind) bool      { return logicalExpressionKinds[k] }
func IsTIsExpression(k Kind) bool           { return isExpressionKinds[k] }
func IsTAsExpression(k Kind) bool           { return asExpressionKinds[k] }
func IsTEqualityExpression(k Kind) bool     { return equalityExpressionKinds[k] }
func IsTRelationalExpression(k Kind) bool   { return relationalExpressionKinds[k] }
func IsTArithmeticExpression(k Kind) bool   { return arithmeticExpressionKinds[k] }
func IsTMetadataExpression(k Kind) bool     { return metadataExpressionKinds[k] }
func IsTUnaryExpression(k Kind) bool        { return unaryExpressionKinds[k] }
func IsTTypeExpression(k Kind) bool         { return typeExpressionKinds[k] }
func IsTPrimaryExpression(k Kind) bool      { return primaryExpressionKinds[k] }
func IsTPrimaryType(k Kind) bool            { return primaryTypeKinds[k] }
func IsTFieldAccessExpression(k Kind) bool  { return fieldAccessExpressionKinds[k] }
func IsTAnyLiteral(k Kind) bool             { return anyLiteralKinds[k] }
func IsTListItem(k Kind) bool               { return listItemKinds[k] }
func IsTNullablePrimitiveType(k Kind) bool  { return nullablePrimitiveTypeKinds[k] }
