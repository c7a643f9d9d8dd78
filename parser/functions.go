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

// readParameter reads "[optional] Identifier [as TNullablePrimitiveType]"
// (spec.md 4.G). A required parameter following one already marked
// optional is rejected by the caller, readParameterList, which is the only
// place the ordering is visible.
func readParameter(s *parsestate.State, parent uint64) (*ast.Parameter, error) {
	ctx, err := open(s, ast.KindParameter, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	optionalConstant, _, err := tryConsumeConstant(s, ctxId, token.KindOptionalLanguageConstant)
	if err != nil {
		return nil, err
	}
	name, err := consumeIdentifier(s, ctxId, nil)
	if err != nil {
		return nil, err
	}
	var asConstant *ast.Constant
	var parameterType ast.Node
	if s.CurrentTokenKind == token.KindKeywordAs {
		asConstant, err = consumeConstant(s, ctxId, token.KindKeywordAs)
		if err != nil {
			return nil, err
		}
		parameterType, err = readNullablePrimitiveType(s, &ctxId)
		if err != nil {
			return nil, err
		}
	}
	node := ast.NewParameter(optionalConstant, name, asConstant, parameterType)
	return commit(s, ctx, node), nil
}

// readParameterList reads "( Csv<Parameter> )", enforcing that no required
// parameter follows an optional one (spec.md 4.G
// RequiredParameterAfterOptional).
func readParameterList(s *parsestate.State, parent *uint64) (*ast.ParameterList, error) {
	ctx, err := open(s, ast.KindParameterList, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	openWrapper, err := consumeConstant(s, ctxId, token.KindLeftParenthesis)
	if err != nil {
		return nil, err
	}

	seenOptional := false
	content, err := readCsvArrayWrapper(s, ctxId, isKind(token.KindRightParenthesis), func(s *parsestate.State, parent uint64) (*ast.Parameter, error) {
		p, err := readParameter(s, parent)
		if err != nil {
			return nil, err
		}
		if p.OptionalConstant == nil && seenOptional {
			return nil, &ParseError{Kind: RequiredParameterAfterOptional, TokenIndex: s.TokenIndex}
		}
		if p.OptionalConstant != nil {
			seenOptional = true
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	closeWrapper, err := consumeClosingWrapper(s, ctxId, token.KindRightParenthesis)
	if err != nil {
		return nil, err
	}
	node := ast.NewParameterList(openWrapper, content, closeWrapper)
	return commit(s, ctx, node), nil
}

// readFunctionExpression reads "ParameterList [as TNullablePrimitiveType] =>
// TExpression" (spec.md 4.G, disambiguated against ParenthesizedExpression
// by the caller, disambiguate.go).
func readFunctionExpression(s *parsestate.State, parent *uint64) (*ast.FunctionExpression, error) {
	ctx, err := open(s, ast.KindFunctionExpression, parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	parameters, err := readParameterList(s, &ctxId)
	if err != nil {
		return nil, err
	}
	var asConstant *ast.Constant
	var returnType ast.Node
	if s.CurrentTokenKind == token.KindKeywordAs {
		asConstant, err = consumeConstant(s, ctxId, token.KindKeywordAs)
		if err != nil {
			return nil, err
		}
		returnType, err = readNullablePrimitiveType(s, &ctxId)
		if err != nil {
			return nil, err
		}
	}
	fatArrow, err := consumeConstant(s, ctxId, token.KindFatArrow)
	if err != nil {
		return nil, err
	}
	body, err := readBinOpExpression(s, &ctxId)
	if err != nil {
		return nil, err
	}
	node := ast.NewFunctionExpression(parameters, asConstant, returnType, fatArrow, body)
	return commit(s, ctx, node), nil
}
