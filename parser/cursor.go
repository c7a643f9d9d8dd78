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
	"devt.de/mquery/nodeid"
	"devt.de/mquery/parsestate"
	"devt.de/mquery/token"
)

// open starts a context of kind under parent (nil for a root context),
// anchored at the current cursor position.
func open(s *parsestate.State, kind ast.Kind, parent *uint64) (*nodeid.Context, error) {
	return s.Collection.StartContext(kind, s.TokenIndex, s.CurrentToken, parent)
}

// spanRange computes the token range from ctx's anchor to the last token
// consumed since it was opened, the "first child's start to last child's
// end" rule of spec.md 4.E commit.
func spanRange(s *parsestate.State, ctx *nodeid.Context) token.Range {
	startIdx := ctx.TokenIndexStart()
	endIdx := s.TokenIndex
	startPos := ctx.TokenAnchor().PositionStart
	endPos := startPos
	if endIdx > startIdx {
		if tok, ok := s.Snapshot.At(endIdx - 1); ok {
			endPos = tok.PositionEnd
		}
	}
	return token.Range{TokenIndexStart: startIdx, TokenIndexEnd: endIdx, PositionStart: startPos, PositionEnd: endPos}
}

// commit sets node's token range from ctx and finishes the context.
func commit(s *parsestate.State, ctx *nodeid.Context, node ast.Node) ast.Node {
	node.SetTokenRange(spanRange(s, ctx))
	return s.Collection.CommitContext(ctx, node)
}

// consumeConstant requires the current token to be kind, builds the
// Constant leaf for it, attaches it under parent, advances, and returns it.
func consumeConstant(s *parsestate.State, parent uint64, kind token.Kind) (*ast.Constant, error) {
	if s.CurrentTokenKind != kind {
		return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, kind)
	}
	c := leafConstant(s)
	if err := s.Collection.AttachNewLeaf(parent, c); err != nil {
		return nil, err
	}
	s.Advance()
	return c, nil
}

// consumeClosingWrapper requires the current token to be the closing bracket
// of a "[...]"/"{...}"/"(...)" construct, in the same fashion as
// consumeConstant, but raises ExpectedClosingBracket instead of the generic
// UnexpectedToken when it is missing: the reader reached Eof or an unrelated
// token before finding its closer.
func consumeClosingWrapper(s *parsestate.State, parent uint64, kind token.Kind) (*ast.Constant, error) {
	if s.CurrentTokenKind != kind {
		return nil, expectedClosingBracket(s.TokenIndex, s.CurrentTokenKind, kind)
	}
	c := leafConstant(s)
	if err := s.Collection.AttachNewLeaf(parent, c); err != nil {
		return nil, err
	}
	s.Advance()
	return c, nil
}

// consumeConstantAny requires the current token to be one of kinds, in the
// same fashion as consumeConstant.
func consumeConstantAny(s *parsestate.State, parent uint64, kinds ...token.Kind) (*ast.Constant, error) {
	for _, kind := range kinds {
		if s.CurrentTokenKind == kind {
			return consumeConstant(s, parent, kind)
		}
	}
	return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, kinds...)
}

// tryConsumeConstant consumes the current token as a Constant iff it is
// kind, reporting ok=false (and consuming nothing) otherwise. Used for
// optional leading/trailing tokens ("optional", "shared", "nullable", ...).
func tryConsumeConstant(s *parsestate.State, parent uint64, kind token.Kind) (*ast.Constant, bool, error) {
	if s.CurrentTokenKind != kind {
		return nil, false, nil
	}
	c, err := consumeConstant(s, parent, kind)
	return c, err == nil, err
}

// attachLeaf attaches a freshly built leaf node (Constant, Identifier,
// GeneralizedIdentifier, LiteralExpression, PrimitiveType) under parent, or
// leaves it an orphan when parent is nil — the same nil-means-orphan
// convention StartContext uses, needed here because a handful of leaf
// productions (bare literals, bare primitive type names) can be the direct
// return value of a reader invoked with no enclosing context, notably from
// the binary-operator engine's phase 1 (spec.md 4.H).
func attachLeaf(s *parsestate.State, parent *uint64, node ast.Node) error {
	if parent == nil {
		s.Collection.NewOrphanLeaf(node)
		return nil
	}
	return s.Collection.AttachNewLeaf(*parent, node)
}

func leafConstant(s *parsestate.State) *ast.Constant {
	tok := s.CurrentToken
	c := ast.NewConstant(tok.Data)
	c.SetTokenRange(singleTokenRange(s))
	return c
}

func singleTokenRange(s *parsestate.State) token.Range {
	tok := s.CurrentToken
	return token.Range{
		TokenIndexStart: s.TokenIndex,
		TokenIndexEnd:   s.TokenIndex + 1,
		PositionStart:   tok.PositionStart,
		PositionEnd:     tok.PositionEnd,
	}
}

// consumeIdentifier reads a plain identifier token (optionally preceded by
// an already-consumed "@" inclusive-marker Constant) and attaches it.
func consumeIdentifier(s *parsestate.State, parent uint64, inclusive *ast.Constant) (*ast.Identifier, error) {
	if s.CurrentTokenKind != token.KindIdentifier {
		return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, token.KindIdentifier)
	}
	id := ast.NewIdentifier(s.CurrentToken.Data, inclusive)
	id.SetTokenRange(singleTokenRange(s))
	if err := s.Collection.AttachNewLeaf(parent, id); err != nil {
		return nil, err
	}
	s.Advance()
	return id, nil
}

// consumeGeneralizedIdentifier reads one or more identifier/keyword tokens
// joined by "." or whitespace into a single GeneralizedIdentifier leaf.
// Power Query allows field names that are not valid plain identifiers
// (keywords, dotted paths); the lexer still emits them token-by-token, so
// this reader greedily joins adjacent identifier-like tokens on the same
// line. A single token is by far the common case.
func consumeGeneralizedIdentifier(s *parsestate.State, parent uint64) (*ast.GeneralizedIdentifier, error) {
	if !isGeneralizedIdentifierStart(s.CurrentTokenKind) {
		return nil, unexpectedToken(s.TokenIndex, s.CurrentTokenKind, token.KindIdentifier)
	}
	start := s.CurrentToken
	literal := start.Data
	startIdx := s.TokenIndex
	s.Advance()
	for s.CurrentTokenKind == token.KindIdentifier {
		literal += " " + s.CurrentToken.Data
		s.Advance()
	}
	gi := ast.NewGeneralizedIdentifier(literal)
	endPos := start.PositionEnd
	if tok, ok := s.Snapshot.At(s.TokenIndex - 1); ok {
		endPos = tok.PositionEnd
	}
	gi.SetTokenRange(token.Range{TokenIndexStart: startIdx, TokenIndexEnd: s.TokenIndex, PositionStart: start.PositionStart, PositionEnd: endPos})
	if err := s.Collection.AttachNewLeaf(parent, gi); err != nil {
		return nil, err
	}
	return gi, nil
}

func isGeneralizedIdentifierStart(k token.Kind) bool {
	return k == token.KindIdentifier || token.IsKeywordIdentifier(k)
}
