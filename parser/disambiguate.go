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
	"errors"

	"devt.de/mquery/ast"
	"devt.de/mquery/parsestate"
)

// disambiguateParenthesizedOrFunction resolves the one real ambiguity the
// grammar cannot settle by look-ahead (spec.md 4.I): a leading "(" begins
// either a ParenthesizedExpression or a FunctionExpression's ParameterList,
// and the two cannot be told apart without reading arbitrarily far past the
// matching ")" to see whether "=>" (or "as TNullablePrimitiveType =>")
// follows. The engine checkpoints, attempts the function reading, and on
// failure restores and falls back to the parenthesized form. An
// InvariantViolated is never a sign of a bad guess, so it is left to
// propagate rather than triggering a restore.
func disambiguateParenthesizedOrFunction(s *parsestate.State, parent *uint64) (ast.Node, error) {
	cp := s.Checkpoint()

	fn, err := readFunctionExpression(s, parent)
	if err == nil {
		return fn, nil
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Kind == InvariantViolated {
		return nil, err
	}

	s.Restore(cp)
	return readParenthesizedExpression(s, parent)
}
