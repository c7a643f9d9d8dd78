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
	"testing"

	"devt.de/mquery/ast"
	"devt.de/mquery/token"
)

func TestStartCommitContextRoot(t *testing.T) {
	c := NewCollection()

	ctx, err := c.StartContext(ast.KindIdentifierExpression, 0, token.Token{Kind: token.KindIdentifier, Data: "x"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.AttributeIndex() != nil {
		t.Error("root context should have no attribute index")
	}

	node := ast.NewIdentifier("x", nil)
	committed := c.CommitContext(ctx, node)

	if committed.NodeId() != ctx.Id() {
		t.Error("commit should keep the reserved id")
	}
	if c.AstNodeCount() != 1 {
		t.Error("expected one committed node, got", c.AstNodeCount())
	}
	if _, err := c.Xor(ctx.Id()); err != nil {
		t.Error("unexpected lookup error for a committed id:", err)
	}
	if _, isContextStillOpen := c.contextById[ctx.id]; isContextStillOpen {
		t.Error("committing should remove the context from the open half")
	}
}

func TestStartContextWithParentLinksImmediately(t *testing.T) {
	c := NewCollection()

	parentCtx, err := c.StartContext(ast.KindUnaryExpression, 0, token.Token{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	parentId := parentCtx.Id()

	childCtx, err := c.StartContext(ast.KindIdentifierExpression, 1, token.Token{}, &parentId)
	if err != nil {
		t.Fatal(err)
	}
	if childCtx.AttributeIndex() == nil || *childCtx.AttributeIndex() != 0 {
		t.Error("first child should take attribute index 0")
	}

	children, ok := c.Children(parentId)
	if !ok || len(children) != 1 || children[0] != childCtx.Id() {
		t.Error("parent should already list the child before it commits", children)
	}
}

func TestStartContextUnknownParent(t *testing.T) {
	c := NewCollection()
	bogus := uint64(999)
	if _, err := c.StartContext(ast.KindIdentifierExpression, 0, token.Token{}, &bogus); err == nil {
		t.Error("expected an UnknownIdError for a nonexistent parent")
	}
}

func TestAttachAndNthChild(t *testing.T) {
	c := NewCollection()

	ctx, _ := c.StartContext(ast.KindArithmeticExpression, 0, token.Token{}, nil)
	ctxId := ctx.Id()

	left := ast.NewLiteralExpression("1", ast.LiteralKindNumeric)
	c.NewOrphanLeaf(left)
	if err := c.Attach(ctxId, left); err != nil {
		t.Fatal(err)
	}

	op := ast.NewConstant("+")
	if err := c.AttachNewLeaf(ctxId, op); err != nil {
		t.Fatal(err)
	}

	right := ast.NewLiteralExpression("2", ast.LiteralKindNumeric)
	if err := c.AttachNewLeaf(ctxId, right); err != nil {
		t.Fatal(err)
	}

	node := ast.NewArithmeticExpression(left, op, right)
	committed := c.CommitContext(ctx, node)

	nth, ok := c.NthChild(committed.NodeId(), 1)
	if !ok || !nth.IsAst() || nth.Ast.(*ast.Constant).Text != "+" {
		t.Error("expected the operator constant at attribute index 1")
	}

	asConst, err := c.AssertAstNthChild(committed.NodeId(), 1, ast.KindConstant)
	if err != nil || asConst.(*ast.Constant).Text != "+" {
		t.Error("AssertAstNthChild should resolve the same slot", err)
	}

	if _, err := c.AssertAstNthChild(committed.NodeId(), 0, ast.KindConstant); err == nil {
		t.Error("expected a WrongKindError for the left operand slot")
	}

	if _, ok := c.MaybeAstNthChild(committed.NodeId(), 5, ast.KindConstant); ok {
		t.Error("expected MaybeAstNthChild to report false past the end")
	}
}

func TestDeleteContextDetachesFromParent(t *testing.T) {
	c := NewCollection()

	parentCtx, _ := c.StartContext(ast.KindUnaryExpression, 0, token.Token{}, nil)
	parentId := parentCtx.Id()

	childCtx, _ := c.StartContext(ast.KindIdentifierExpression, 1, token.Token{}, &parentId)
	c.DeleteContext(childCtx)

	if children, _ := c.Children(parentId); len(children) != 0 {
		t.Error("deleting the only child should leave the parent with none", children)
	}
	if _, err := c.Xor(childCtx.Id()); err == nil {
		t.Error("a deleted context id should no longer resolve")
	}
}

func TestNewOrphanLeafHasNoParent(t *testing.T) {
	c := NewCollection()
	leaf := ast.NewConstant("+")
	id := c.NewOrphanLeaf(leaf)

	if _, hasParent := c.Parent(id); hasParent {
		t.Error("an orphan leaf should report no parent")
	}
	if !c.LeafIds()[id] {
		t.Error("expected the orphan leaf id in LeafIds")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	c := NewCollection()
	ctx, _ := c.StartContext(ast.KindUnaryExpression, 0, token.Token{}, nil)
	ctxId := ctx.Id()

	cp := c.Copy()

	// Mutating the original after Copy must not affect cp.
	leaf := ast.NewConstant("-")
	if err := c.AttachNewLeaf(ctxId, leaf); err != nil {
		t.Fatal(err)
	}

	if children, _ := cp.Children(ctxId); len(children) != 0 {
		t.Error("copy should not see children attached after it was taken", children)
	}
	if children, _ := c.Children(ctxId); len(children) != 1 {
		t.Error("original should see its own new child", children)
	}

	// And the reverse: mutating cp must not affect the original.
	leaf2 := ast.NewConstant("not")
	if err := cp.AttachNewLeaf(ctxId, leaf2); err != nil {
		t.Fatal(err)
	}
	if children, _ := c.Children(ctxId); len(children) != 1 {
		t.Error("mutating the copy should not leak back into the original", children)
	}
}

func TestRecalculateAndUpdateNodeIds(t *testing.T) {
	c := NewCollection()

	// Build a tiny tree out of order: commit the right leaf before the
	// left one, then the root, the way the binary-operator engine's fold
	// can land ids in a non-pre-order sequence.
	rightLeaf := ast.NewLiteralExpression("2", ast.LiteralKindNumeric)
	c.NewOrphanLeaf(rightLeaf)

	leftLeaf := ast.NewLiteralExpression("1", ast.LiteralKindNumeric)
	c.NewOrphanLeaf(leftLeaf)

	opLeaf := ast.NewConstant("+")
	c.NewOrphanLeaf(opLeaf)

	ctx, _ := c.StartContext(ast.KindArithmeticExpression, 0, token.Token{}, nil)
	rootId := ctx.Id()
	c.Attach(rootId, leftLeaf)
	c.Attach(rootId, opLeaf)
	c.Attach(rootId, rightLeaf)
	root := c.CommitContext(ctx, ast.NewArithmeticExpression(leftLeaf, opLeaf, rightLeaf))

	rename, err := c.RecalculateIds(root.NodeId())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateNodeIds(rename); err != nil {
		t.Fatal(err)
	}

	newRootId := root.NodeId()
	children, ok := c.Children(newRootId)
	if !ok || len(children) != 3 {
		t.Fatal("expected three children after renumbering", children)
	}
	for i, childId := range children {
		if childId != newRootId+uint64(i+1) {
			t.Errorf("child %d should be pre-order numbered right after its parent, got %d", i, childId)
		}
	}
}

func TestHasParsedTokenAndTokenRange(t *testing.T) {
	c := NewCollection()

	anchor := token.Token{Kind: token.KindIdentifier, PositionStart: token.Position{CodeUnit: 3}}
	ctx, _ := c.StartContext(ast.KindIdentifierExpression, 3, anchor, nil)

	r, err := c.XorTokenRange(ctx.Id())
	if err != nil {
		t.Fatal(err)
	}
	if !r.IsEmpty() {
		t.Error("an empty, just-opened context should report an empty range")
	}
	if c.HasParsedToken(ctx.Id()) {
		t.Error("HasParsedToken should be false before anything is attached")
	}

	node := ast.NewIdentifier("x", nil)
	node.SetTokenRange(token.Range{TokenIndexStart: 3, TokenIndexEnd: 4})
	committed := c.CommitContext(ctx, node)

	if !c.HasParsedToken(committed.NodeId()) {
		t.Error("HasParsedToken should be true once the context committed a non-empty range")
	}
}

func TestHasParsedTokenAndTokenRangeOpenContextWithChild(t *testing.T) {
	c := NewCollection()

	anchor := token.Token{Kind: token.KindIdentifier, PositionStart: token.Position{CodeUnit: 3}}
	ctx, _ := c.StartContext(ast.KindArithmeticExpression, 3, anchor, nil)
	ctxId := ctx.Id()

	if c.HasParsedToken(ctxId) {
		t.Error("a still-empty context should report no parsed token")
	}

	left := ast.NewLiteralExpression("1", ast.LiteralKindNumeric)
	left.SetTokenRange(token.Range{
		TokenIndexStart: 3, TokenIndexEnd: 4,
		PositionEnd: token.Position{CodeUnit: 4},
	})
	if err := c.AttachNewLeaf(ctxId, left); err != nil {
		t.Fatal(err)
	}

	if !c.HasParsedToken(ctxId) {
		t.Error("HasParsedToken should be true for an open context with a committed child, not just after CommitContext")
	}

	r, err := c.XorTokenRange(ctxId)
	if err != nil {
		t.Fatal(err)
	}
	if r.TokenIndexStart != 3 || r.TokenIndexEnd != 4 {
		t.Errorf("expected the open context's range to extend to its rightmost leaf's end, got %+v", r)
	}
	if r.PositionEnd.CodeUnit != 4 {
		t.Errorf("expected the range's end position to come from the rightmost leaf, got %+v", r.PositionEnd)
	}
}

func TestRightmostLeafSeen(t *testing.T) {
	c := NewCollection()
	if c.RightmostLeafSeen() != nil {
		t.Error("a fresh collection should report no rightmost leaf")
	}

	first := ast.NewLiteralExpression("1", ast.LiteralKindNumeric)
	first.SetTokenRange(token.Range{TokenIndexStart: 0, TokenIndexEnd: 1})
	c.NewOrphanLeaf(first)

	second := ast.NewLiteralExpression("2", ast.LiteralKindNumeric)
	second.SetTokenRange(token.Range{TokenIndexStart: 2, TokenIndexEnd: 3})
	c.NewOrphanLeaf(second)

	if c.RightmostLeafSeen() != second {
		t.Error("expected the later leaf to win, regardless of insertion order mattering only via position")
	}
}

func TestIdsOfKind(t *testing.T) {
	c := NewCollection()
	ctx, _ := c.StartContext(ast.KindUnaryExpression, 0, token.Token{}, nil)

	if set := c.IdsOfKind(ast.KindUnaryExpression); !set[ctx.Id()] {
		t.Error("expected the open context's id indexed under its target kind")
	}

	node := ast.NewUnaryExpression(nil, ast.NewIdentifier("x", nil))
	c.CommitContext(ctx, node)

	if set := c.IdsOfKind(ast.KindUnaryExpression); !set[node.NodeId()] {
		t.Error("expected the committed node's id still indexed after commit")
	}
}
