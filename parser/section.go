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

// readSectionMember reads "[shared] Identifier = TExpression ;".
func readSectionMember(s *parsestate.State, parent uint64) (*ast.SectionMember, error) {
	ctx, err := open(s, ast.KindSectionMember, &parent)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	sharedConstant, _, err := tryConsumeConstant(s, ctxId, token.KindKeywordShared)
	if err != nil {
		return nil, err
	}
	namePaired, err := readIdentifierPairedExpression(s, ctxId)
	if err != nil {
		return nil, err
	}
	semicolon, err := consumeConstant(s, ctxId, token.KindSemicolon)
	if err != nil {
		return nil, err
	}
	node := ast.NewSectionMember(sharedConstant, namePaired, semicolon)
	return commit(s, ctx, node), nil
}

// readSection reads "section [Name] ; member*" (spec.md 4.G). Called only
// after the top-level driver has confirmed the leading "section" keyword,
// since an ordinary expression document starting with an identifier named
// "section" would otherwise be mistaken for one (the keyword is reserved,
// so this never actually happens, but the caller peeks rather than guesses).
func readSection(s *parsestate.State) (*ast.Section, error) {
	ctx, err := open(s, ast.KindSection, nil)
	if err != nil {
		return nil, err
	}
	ctxId := ctx.Id()
	sectionConstant, err := consumeConstant(s, ctxId, token.KindKeywordSection)
	if err != nil {
		return nil, err
	}
	var name *ast.Identifier
	if s.CurrentTokenKind == token.KindIdentifier {
		name, err = consumeIdentifier(s, ctxId, nil)
		if err != nil {
			return nil, err
		}
	}
	semicolon, err := consumeConstant(s, ctxId, token.KindSemicolon)
	if err != nil {
		return nil, err
	}

	membersCtx, err := open(s, ast.KindArrayWrapper, &ctxId)
	if err != nil {
		return nil, err
	}
	membersCtxId := membersCtx.Id()
	var members []*ast.SectionMember
	for s.CurrentTokenKind != token.KindEof {
		if err := checkCancelled(s); err != nil {
			return nil, err
		}
		member, err := readSectionMember(s, membersCtxId)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	memberArray := ast.NewArrayWrapper(members)
	commit(s, membersCtx, memberArray)

	node := ast.NewSection(sectionConstant, name, semicolon, memberArray)
	return commit(s, ctx, node), nil
}

// ReadDocument is the top-level document production (spec.md 4.G
// read_document): a document is either a Section or a bare expression, and
// the two are told apart by a single look-ahead on the leading keyword, not
// by checkpoint/restore — "section" is reserved, so no expression can begin
// with it.
func ReadDocument(s *parsestate.State) (ast.Node, error) {
	if s.CurrentTokenKind == token.KindKeywordSection {
		return readSection(s)
	}
	return readBinOpExpression(s, nil)
}
