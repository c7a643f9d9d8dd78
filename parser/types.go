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

// readPrimitiveType reads one of the closed built-in type names (spec.md
// 4.B PrimitiveTypeConstant). It is a leaf: no context is opened.
func readPrimitiveType(s *parsestate.State, parent *uint64) (*ast.PrimitiveType, error) {
	if s.CurrentTokenKind != token.KindIdentifier && s.CurrentTokenKind != token.KindKeywordType {
		return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, token.KindIdentifier)
	}
	if _, ok := constant.LookupPrimitiveTypeConstant(s.CurrentToken.Data); !ok {
		return nil, &ParseError{Kind: InvalidPrimitiveType, TokenIndex: s.TokenIndex, ActualKind: s.CurrentTokenKind}
	}
	node := ast.NewPrimitiveType(s.CurrentToken.Data)
	node.SetTokenRange(singleTokenRange(s))
	if err := attachLeaf(s, parent, node); err != nil {
		return nil, err
	}
	s.Advance()
	return node, nil
}

// readNullablePrimitiveType reads "[nullable] PrimitiveType" (spec.md 4.C
// TNullablePrimitiveType), the narrower type slot used by Parameter/
// FunctionExpression return-type annotations and by "is"/"as" right-hand
// operands.
func readNullablePrimitiveType(s *parsestate.State, parent *uint64) (ast.Node, error) {
	if s.CurrentTokenKind != token.KindNullableLanguageConstant {
		pt, err := readPrimitiveType(s, parent)
		if err != nil {
			return nil, err
		}
		return pt, nil
	}

	ctx, err := open(s, ast.KindNullablePrimitiveType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	nullableConstant, err := consumeConstant(s, ctxId, token.KindNullableLanguageConstant)
	if err != nil {
		return nil, err
	}
	primitiveType, err := readPrimitiveType(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewNullablePrimitiveType(nullableConstant, primitiveType)
	return commit(s, ctx, node), nil
}

// readPrimaryType reads one of the seven TPrimaryType shapes (spec.md 4.C):
// PrimitiveType, FunctionType, TableType, NullableType, RecordType,
// ListType, or a nested TypePrimaryType. "function"/"table"/"list"/"record"
// arrive as plain identifiers (no dedicated token kind), ambiguous with the
// primitive type names of the same spelling; a single token of look-ahead
// at the following bracket resolves it without a checkpoint.
func readPrimaryType(s *parsestate.State, parent *uint64) (ast.Node, error) {
	switch {
	case s.CurrentTokenKind == token.KindKeywordType:
		return readTypePrimaryType(s, parent)
	case s.CurrentTokenKind == token.KindNullableLanguageConstant:
		return readNullableType(s, parent)
	case s.CurrentTokenKind == token.KindIdentifier && s.CurrentToken.Data == "function" && peekKind(s) == token.KindLeftParenthesis:
		return readFunctionType(s, parent)
	case s.CurrentTokenKind == token.KindIdentifier && s.CurrentToken.Data == "table" && peekKind(s) == token.KindLeftBracket:
		return readTableType(s, parent)
	case s.CurrentTokenKind == token.KindIdentifier && s.CurrentToken.Data == "list" && peekKind(s) == token.KindLeftBrace:
		return readListType(s, parent)
	case s.CurrentTokenKind == token.KindIdentifier && s.CurrentToken.Data == "record" && peekKind(s) == token.KindLeftBracket:
		return readRecordType(s, parent)
	default:
		return readPrimitiveType(s, parent)
	}
}

func peekKind(s *parsestate.State) token.Kind {
	if tok, ok := s.Snapshot.At(s.TokenIndex + 1); ok {
		return tok.Kind
	}
	return token.KindEof
}

// readTypePrimaryType reads "type TPrimaryType".
func readTypePrimaryType(s *parsestate.State, parent *uint64) (*ast.TypePrimaryType, error) {
	ctx, err := open(s, ast.KindTypePrimaryType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	typeConstant, err := consumeConstant(s, ctxId, token.KindKeywordType)
	if err != nil {
		return nil, err
	}
	primaryType, err := readPrimaryType(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewTypePrimaryType(typeConstant, primaryType)
	return commit(s, ctx, node), nil
}

// readNullableType reads "nullable TType". Unlike readNullablePrimitiveType,
// the wrapped type is a full type expression, not just a primitive name.
func readNullableType(s *parsestate.State, parent *uint64) (*ast.NullableType, error) {
	ctx, err := open(s, ast.KindNullableType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	nullableConstant, err := consumeConstant(s, ctxId, token.KindNullableLanguageConstant)
	if err != nil {
		return nil, err
	}
	typ, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewNullableType(nullableConstant, typ)
	return commit(s, ctx, node), nil
}

// readFunctionType reads "function ParameterList as TNullablePrimitiveType".
func readFunctionType(s *parsestate.State, parent *uint64) (*ast.FunctionType, error) {
	ctx, err := open(s, ast.KindFunctionType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	functionConstant, err := consumeConstant(s, ctxId, token.KindIdentifier)
	if err != nil {
		return nil, err
	}
	parameters, err := readParameterList(s, &ctxId)
	if err != nil {
		return nil, err
	}
	asConstant, err := consumeConstant(s, ctxId, token.KindKeywordAs)
	if err != nil {
		return nil, err
	}
	returnType, err := readNullablePrimitiveType(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewFunctionType(functionConstant, parameters, asConstant, returnType)
	return commit(s, ctx, node), nil
}

// readTableType reads "table TRowType", where TRowType is either a bracketed
// FieldSpecificationList or a reference expression naming a row type.
func readTableType(s *parsestate.State, parent *uint64) (*ast.TableType, error) {
	ctx, err := open(s, ast.KindTableType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	tableConstant, err := consumeConstant(s, ctxId, token.KindIdentifier)
	if err != nil {
		return nil, err
	}
	var rowType ast.Node
	if s.CurrentTokenKind == token.KindLeftBracket {
		rowType, err = readFieldSpecificationList(s, &ctxId)
	} else {
		rowType, err = readBinOpExpression(s, &ctxId)
	}
	if err != nil {
		return nil, err
	}
	node := ast.NewTableType(tableConstant, rowType)
	return commit(s, ctx, node), nil
}

// readRecordType reads "record FieldSpecificationList".
func readRecordType(s *parsestate.State, parent *uint64) (*ast.RecordType, error) {
	ctx, err := open(s, ast.KindRecordType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	if _, err := consumeConstant(s, ctxId, token.KindIdentifier); err != nil {
		return nil, err
	}
	fields, err := readFieldSpecificationList(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewRecordType(fields)
	return commit(s, ctx, node), nil
}

// readListType reads "list {TType}".
func readListType(s *parsestate.State, parent *uint64) (*ast.ListType, error) {
	ctx, err := open(s, ast.KindListType, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	if _, err := consumeConstant(s, ctxId, token.KindIdentifier); err != nil {
		return nil, err
	}
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
	node := ast.NewListType(openWrapper, content, closeWrapper)
	return commit(s, ctx, node), nil
}

// readFieldSpecification reads "[nullable] GeneralizedIdentifier [= TType]".
func readFieldSpecification(s *parsestate.State, parent uint64) (*ast.FieldSpecification, error) {
	ctx, err := open(s, ast.KindFieldSpecification, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	nullableConstant, _, err := tryConsumeConstant(s, ctxId, token.KindNullableLanguageConstant)
	if err != nil {
		return nil, err
	}
	name, err := consumeGeneralizedIdentifier(s, ctxId)
	if err != nil {
		return nil, err
	}
	var fieldTypeSpec *ast.FieldTypeSpecification
	if s.CurrentTokenKind == token.KindEqual {
		fieldTypeSpec, err = readFieldTypeSpecification(s, ctxId)
		if err != nil {
			return nil, err
		}
	}
	node := ast.NewFieldSpecification(nullableConstant, name, fieldTypeSpec)
	return commit(s, ctx, node), nil
}

func readFieldTypeSpecification(s *parsestate.State, parent uint64) (*ast.FieldTypeSpecification, error) {
	ctx, err := open(s, ast.KindFieldTypeSpecification, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	equalConstant, err := consumeConstant(s, ctxId, token.KindEqual)
	if err != nil {
		return nil, err
	}
	fieldType, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewFieldTypeSpecification(equalConstant, fieldType)
	return commit(s, ctx, node), nil
}

// readFieldSpecificationList reads "[ Csv<FieldSpecification> [...] ]".
func readFieldSpecificationList(s *parsestate.State, parent *uint64) (*ast.FieldSpecificationList, error) {
	ctx, err := open(s, ast.KindFieldSpecificationList, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftBracket)
	if err != nil {
		return nil, err
	}

	content, err := readCsvArrayWrapper(s, ctxId, isFieldSpecificationListClose, readFieldSpecification)
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

	node := ast.NewFieldSpecificationList(openWrapper, content, openRecordMarker, closeWrapper)
	return commit(s, ctx, node), nil
}

func isFieldSpecificationListClose(k token.Kind) bool {
	return k == token.KindRightBracket || k == token.KindEllipsis
}
