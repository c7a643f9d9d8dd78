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
	"devt.de/mquery/token"
)

// Context is an in-progress node: a reader has reserved an id and a target
// kind for it but has not yet produced the finished ast.Node (spec.md 4.E).
// A context opened with a parent links itself immediately, the way the
// ordinary recursive-descent readers use it ("links itself under
// state.current_context"); a context opened without one is an orphan whose
// eventual committed node some later, explicit Collection.Attach call
// places — the shape the binary-operator engine's flat-collection phase
// relies on (spec.md 4.E, 4.H, 9 Design Notes).
type Context struct {
	id               uint64
	kind             ast.Kind
	tokenIndexStart  int
	tokenAnchor      token.Token
	attributeCounter int  // children attached to THIS context so far
	attributeIndex   *int // this context's own slot under its parent, nil until known
}

// Id returns the reserved node id. This is the id the eventual committed
// ast.Node will carry; nothing else in the collection ever reuses it.
func (c *Context) Id() uint64 { return c.id }

// Kind returns the target variant this context was opened for.
func (c *Context) Kind() ast.Kind { return c.kind }

// TokenIndexStart is the cursor position when the context was opened, used
// to compute the committed node's token range.
func (c *Context) TokenIndexStart() int { return c.tokenIndexStart }

// TokenAnchor is the token under the cursor when the context was opened,
// kept for diagnostics (e.g. reporting where an unterminated construct
// began).
func (c *Context) TokenAnchor() token.Token { return c.tokenAnchor }

// AttributeCounter is the number of children attached to this context so
// far; the index assigned to the next one.
func (c *Context) AttributeCounter() int { return c.attributeCounter }

// AttributeIndex is this context's own slot under its parent, known from
// the moment it was opened with a parent, or nil for an orphan context
// (spec.md 9 Design Notes: the binary-operator engine's transient entries).
func (c *Context) AttributeIndex() *int { return c.attributeIndex }
