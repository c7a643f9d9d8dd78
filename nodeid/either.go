/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package nodeid

import (
	"devt.de/mquery/ast"
)

// Either is the sum of "committed ast.Node" and "in-progress Context" that
// every id in the collection resolves to (spec.md 4.D's xor(id)). Exactly
// one field is non-nil.
type Either struct {
	Ast     ast.Node
	Context *Context
}

// IsAst reports whether this Either holds a committed AST node rather than
// an open context.
func (e Either) IsAst() bool { return e.Ast != nil }

// Id returns the id shared by whichever side is populated.
func (e Either) Id() uint64 {
	if e.Ast != nil {
		return e.Ast.NodeId()
	}
	return e.Context.Id()
}

// Kind returns the AST kind of whichever side is populated: the committed
// node's kind, or the context's reserved target kind.
func (e Either) Kind() ast.Kind {
	if e.Ast != nil {
		return e.Ast.Kind()
	}
	return e.Context.Kind()
}

// TokenIndexStart returns the start of whichever side's token span: the
// committed node's recorded range, or the context's anchor position.
func (e Either) TokenIndexStart() int {
	if e.Ast != nil {
		return e.Ast.TokenRange().TokenIndexStart
	}
	return e.Context.TokenIndexStart()
}
