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

// readCsv reads one ArrayWrapper<Csv<T>> element: T followed by an optional
// trailing comma, wrapped in its own Csv context so the comma itself is
// addressable (spec.md 4.C Csv<T>).
func readCsv[T ast.Node](s *parsestate.State, parent uint64, readElement func(*parsestate.State, uint64) (T, error)) (*ast.Csv[T], bool, error) {
	ctx, err := open(s, ast.KindCsv, &parent)
	if err != nil {
		return nil, false, err
	}
	ctxId := ctx.Id()
	elem, err := readElement(s, ctxId)
	if err != nil {
		return nil, false, err
	}
	comma, hasComma, err := tryConsumeConstant(s, ctxId, token.KindComma)
	if err != nil {
		return nil, false, err
	}
	node := ast.NewCsv(elem, comma)
	commit(s, ctx, node)
	return node, hasComma, nil
}

// readCsvArrayWrapper reads a whole comma-separated run of T into a single
// ArrayWrapper<Csv<T>>, stopping as soon as isClose reports true for the
// current token (the list's closing wrapper is read by the caller).
func readCsvArrayWrapper[T ast.Node](s *parsestate.State, parent uint64, isClose func(token.Kind) bool, readElement func(*parsestate.State, uint64) (T, error)) (*ast.ArrayWrapper[*ast.Csv[T]], error) {
	ctx, err := open(s, ast.KindArrayWrapper, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()

	var elements []*ast.Csv[T]
	for !isClose(s.CurrentTokenKind) {
		if err := checkCancelled(s); err != nil {
			return nil, err
		}
		csv, hasComma, err := readCsv(s, ctxId, readElement)
		if err != nil {
			return nil, err
		}
		elements = append(elements, csv)
		if !hasComma {
			break
		}
	}

	node := ast.NewArrayWrapper(elements)
	commit(s, ctx, node)
	return node, nil
}

func isKind(target token.Kind) func(token.Kind) bool {
	return func(k token.Kind) bool { return k == target }
}
