/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package nodeid is the process-local arena a single parse builds its tree
// in (spec.md 3, 4.D, 4.E). Every node — committed ast.Node or in-progress
// Context — lives under a monotonically allocated uint64 id, indexed six
// ways: by id (split across the ast/context halves), by parent, by
// children, by kind, and (for leaves) in a standing set used to answer
// "what AST position does the cursor currently sit after" without a walk.
//
// A node gets a parent link either when its context is opened under a
// parent context (StartContext with a non-nil parent id) or when something
// explicitly attaches it (Collection.Attach / AttachNewLeaf); CommitContext
// never touches parent_by_id or children_by_id. Opening contexts with a nil
// parent is what lets the combinatorial binary-operator engine in package parser
// build operand and operator nodes that sit in the collection as ordinary,
// fully valid, parentless entries — and decide only later, during
// precedence shaping, which of them become children of which freshly
// allocated operator node (spec.md 9, Design Notes: "eliminate the add-then-
// delete transient entries" of the source's two-phase collector).
package nodeid

import (
	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/sortutil"

	"devt.de/mquery/ast"
	"devt.de/mquery/token"
)

// Collection is the node-id map: the single authority for node identity,
// parentage, and kind membership over the course of one parse.
type Collection struct {
	nextId uint64

	astById     map[uint64]ast.Node
	contextById map[uint64]*Context

	parentById   map[uint64]uint64
	childrenById map[uint64][]uint64

	idsByKind map[ast.Kind]map[uint64]bool
	leafIds   map[uint64]bool

	rightmostLeaf ast.Node
}

// NewCollection returns an empty collection with its id counter at zero.
func NewCollection() *Collection {
	return &Collection{
		astById:      make(map[uint64]ast.Node),
		contextById:  make(map[uint64]*Context),
		parentById:   make(map[uint64]uint64),
		childrenById: make(map[uint64][]uint64),
		idsByKind:    make(map[ast.Kind]map[uint64]bool),
		leafIds:      make(map[uint64]bool),
	}
}

func (c *Collection) allocateId() uint64 {
	id := c.nextId
	c.nextId++
	return id
}

func (c *Collection) indexKind(kind ast.Kind, id uint64) {
	set, ok := c.idsByKind[kind]
	if !ok {
		set = make(map[uint64]bool)
		c.idsByKind[kind] = set
	}
	set[id] = true
}

func (c *Collection) unindexKind(kind ast.Kind, id uint64) {
	if set, ok := c.idsByKind[kind]; ok {
		delete(set, id)
	}
}

func (c *Collection) considerRightmostLeaf(node ast.Node) {
	if !node.IsLeaf() {
		return
	}
	if c.rightmostLeaf == nil || c.rightmostLeaf.TokenRange().TokenIndexStart < node.TokenRange().TokenIndexStart {
		c.rightmostLeaf = node
	}
}

// StartContext reserves a fresh id and opens a Context targeting kind. When
// parentContextId is non-nil, the new context links itself under that
// (still-open) context immediately, taking the parent's next attribute
// slot — the ordinary reader discipline of spec.md 4.E ("links itself
// under state.current_context"). When parentContextId is nil, the context
// is opened as an orphan with no parent of its own (used by the root reader,
// and by the binary-operator engine's flat-collection phase, which decides
// parentage later via Attach; spec.md 4.H, 9 Design Notes).
func (c *Collection) StartContext(kind ast.Kind, tokenIndexStart int, tokenAnchor token.Token, parentContextId *uint64) (*Context, error) {
	ctx := &Context{
		id:              c.allocateId(),
		kind:            kind,
		tokenIndexStart: tokenIndexStart,
		tokenAnchor:     tokenAnchor,
	}

	if parentContextId != nil {
		parent, ok := c.contextById[*parentContextId]
		if !ok {
			return nil, &UnknownIdError{Id: *parentContextId}
		}
		idx := parent.attributeCounter
		parent.attributeCounter++
		ctx.attributeIndex = &idx
		c.parentById[ctx.id] = *parentContextId
		c.childrenById[*parentContextId] = append(c.childrenById[*parentContextId], ctx.id)
	}

	c.contextById[ctx.id] = ctx
	c.indexKind(kind, ctx.id)
	return ctx, nil
}

// CommitContext finishes ctx, converting it into the committed node, which
// keeps ctx's reserved id and whatever parent link it already had (set at
// StartContext time). The returned node is an orphan only if ctx itself
// was opened without a parent; the caller then attaches it wherever the
// grammar places it (spec.md 4.E, "commit").
func (c *Collection) CommitContext(ctx *Context, node ast.Node) ast.Node {
	errorutil.AssertTrue(ctx != nil, "CommitContext requires a context")
	_, open := c.contextById[ctx.id]
	errorutil.AssertTrue(open, "CommitContext called on an id that is not an open context")

	delete(c.contextById, ctx.id)
	c.unindexKind(ctx.kind, ctx.id)

	node.SetNodeId(ctx.id)
	node.SetAttributeIndex(ctx.attributeIndex)
	c.astById[ctx.id] = node
	c.indexKind(node.Kind(), ctx.id)
	c.considerRightmostLeaf(node)

	return node
}

// DeleteContext discards ctx without ever producing a node: it removes ctx
// from the context and kind indices, detaches it from its parent, and drops
// its children list (spec.md 4.E, "delete").
func (c *Collection) DeleteContext(ctx *Context) {
	errorutil.AssertTrue(ctx != nil, "DeleteContext requires a context")
	_, open := c.contextById[ctx.id]
	errorutil.AssertTrue(open, "DeleteContext called on an id that is not an open context")

	delete(c.contextById, ctx.id)
	c.unindexKind(ctx.kind, ctx.id)
	c.detachFromParent(ctx.id)
	delete(c.childrenById, ctx.id)
}

func (c *Collection) detachFromParent(id uint64) {
	parentId, hasParent := c.parentById[id]
	if !hasParent {
		return
	}
	delete(c.parentById, id)
	siblings := c.childrenById[parentId]
	for i, sibling := range siblings {
		if sibling == id {
			c.childrenById[parentId] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
}

// Attach links an already-id'd node (one returned by CommitContext, or any
// node read back out of the collection) as the next child of
// parentContextId, assigning it the parent's current attribute index.
func (c *Collection) Attach(parentContextId uint64, node ast.Node) error {
	parent, ok := c.contextById[parentContextId]
	if !ok {
		return &UnknownIdError{Id: parentContextId}
	}
	idx := parent.attributeCounter
	parent.attributeCounter++

	node.SetAttributeIndex(&idx)
	id := node.NodeId()
	c.parentById[id] = parentContextId
	c.childrenById[parentContextId] = append(c.childrenById[parentContextId], id)
	return nil
}

// AttachNewLeaf allocates a fresh id for node, then attaches it as the next
// child of parentContextId in one step. This is the naive readers' usual
// path for constructing a Constant/Identifier/GeneralizedIdentifier/
// LiteralExpression/PrimitiveType leaf directly under the context currently
// being read (spec.md 4.F).
func (c *Collection) AttachNewLeaf(parentContextId uint64, node ast.Node) error {
	parent, ok := c.contextById[parentContextId]
	if !ok {
		return &UnknownIdError{Id: parentContextId}
	}
	id := c.allocateId()
	node.SetNodeId(id)

	idx := parent.attributeCounter
	parent.attributeCounter++
	node.SetAttributeIndex(&idx)

	c.astById[id] = node
	c.parentById[id] = parentContextId
	c.childrenById[parentContextId] = append(c.childrenById[parentContextId], id)
	c.indexKind(node.Kind(), id)
	c.leafIds[id] = true
	c.considerRightmostLeaf(node)
	return nil
}

// NewOrphanLeaf allocates a fresh id for node and inserts it with no parent
// at all. Used by the binary-operator engine's flat-collection phase to
// build operator Constant leaves that may or may not end up attached,
// depending on how the chain is shaped in phase two (spec.md 4.H, 9 Design
// Notes).
func (c *Collection) NewOrphanLeaf(node ast.Node) uint64 {
	id := c.allocateId()
	node.SetNodeId(id)
	c.astById[id] = node
	c.indexKind(node.Kind(), id)
	c.leafIds[id] = true
	c.considerRightmostLeaf(node)
	return id
}

// Xor resolves id to whichever of the committed/in-progress halves holds
// it (spec.md 4.D).
func (c *Collection) Xor(id uint64) (Either, error) {
	if node, ok := c.astById[id]; ok {
		return Either{Ast: node}, nil
	}
	if ctx, ok := c.contextById[id]; ok {
		return Either{Context: ctx}, nil
	}
	return Either{}, &UnknownIdError{Id: id}
}

// Parent returns the Either holding id's parent, if any.
func (c *Collection) Parent(id uint64) (Either, bool) {
	parentId, ok := c.parentById[id]
	if !ok {
		return Either{}, false
	}
	either, err := c.Xor(parentId)
	if err != nil {
		return Either{}, false
	}
	return either, true
}

// Children returns id's child ids in attribute-index order.
func (c *Collection) Children(id uint64) ([]uint64, bool) {
	children, ok := c.childrenById[id]
	return children, ok
}

// NthChild resolves the child of parentId at the given attribute index.
func (c *Collection) NthChild(parentId uint64, attributeIndex int) (Either, bool) {
	children := c.childrenById[parentId]
	if attributeIndex < 0 || attributeIndex >= len(children) {
		return Either{}, false
	}
	either, err := c.Xor(children[attributeIndex])
	if err != nil {
		return Either{}, false
	}
	return either, true
}

// AssertAstNthChild resolves the child at attributeIndex and requires it to
// be a committed node of exactly kind, failing with WrongKindError
// otherwise. This is the "assert" flavour readers use once the grammar
// guarantees the slot's shape (spec.md 4.D).
func (c *Collection) AssertAstNthChild(parentId uint64, attributeIndex int, kind ast.Kind) (ast.Node, error) {
	either, ok := c.NthChild(parentId, attributeIndex)
	if !ok {
		return nil, &UnknownIdError{Id: parentId}
	}
	if !either.IsAst() || either.Kind() != kind {
		return nil, &WrongKindError{Id: either.Id(), Expected: kind, Actual: either.Kind()}
	}
	return either.Ast, nil
}

// MaybeAstNthChild is the "optional" flavour of AssertAstNthChild: it
// reports ok=false instead of erroring when the slot is absent or of a
// different kind, for grammar positions the caller has already bracketed
// with its own kind test (spec.md 4.D).
func (c *Collection) MaybeAstNthChild(parentId uint64, attributeIndex int, kind ast.Kind) (ast.Node, bool) {
	either, ok := c.NthChild(parentId, attributeIndex)
	if !ok || !either.IsAst() || either.Kind() != kind {
		return nil, false
	}
	return either.Ast, true
}

// LeftmostXor walks first-children from id down to the leaf that begins
// id's subtree (spec.md 4.D).
func (c *Collection) LeftmostXor(id uint64) (Either, bool) {
	current := id
	for {
		children, ok := c.childrenById[current]
		if !ok || len(children) == 0 {
			either, err := c.Xor(current)
			if err != nil {
				return Either{}, false
			}
			return either, true
		}
		current = children[0]
	}
}

// RightmostLeaf walks id's subtree from the right, returning the rightmost
// leaf for which predicate holds (or every leaf, if predicate is nil). A
// branch whose token_index_start is at or before the best candidate's start
// is never descended into (spec.md 4.D).
func (c *Collection) RightmostLeaf(id uint64, predicate func(ast.Node) bool) (ast.Node, bool) {
	var best ast.Node

	var visit func(id uint64)
	visit = func(id uint64) {
		either, err := c.Xor(id)
		if err != nil {
			return
		}
		if best != nil && either.TokenIndexStart() <= best.TokenRange().TokenIndexStart {
			return
		}
		if either.IsAst() && either.Ast.IsLeaf() {
			if predicate == nil || predicate(either.Ast) {
				if best == nil || either.Ast.TokenRange().TokenIndexStart > best.TokenRange().TokenIndexStart {
					best = either.Ast
				}
			}
			return
		}
		children := c.childrenById[id]
		for i := len(children) - 1; i >= 0; i-- {
			visit(children[i])
		}
	}
	visit(id)

	if best == nil {
		return nil, false
	}
	return best, true
}

// HasParsedToken reports whether id's subtree has consumed at least one
// token: false for an empty context (no children yet) or a leaf with an
// empty range, true otherwise.
func (c *Collection) HasParsedToken(id uint64) bool {
	r, err := c.XorTokenRange(id)
	if err != nil {
		return false
	}
	return !r.IsEmpty()
}

// XorTokenRange resolves id's token range: the committed range for an
// ast.Node, or for an in-progress Context, [token_index_start,
// rightmost_leaf(id).token_index_end] once at least one leaf has been
// attached under it, falling back to the empty range anchored at the
// context's own start when the subtree is still empty (spec.md 4.D).
func (c *Collection) XorTokenRange(id uint64) (token.Range, error) {
	either, err := c.Xor(id)
	if err != nil {
		return token.Range{}, err
	}
	if either.IsAst() {
		return either.Ast.TokenRange(), nil
	}

	anchor := token.Range{
		TokenIndexStart: either.Context.TokenIndexStart(),
		TokenIndexEnd:   either.Context.TokenIndexStart(),
		PositionStart:   either.Context.TokenAnchor().PositionStart,
		PositionEnd:     either.Context.TokenAnchor().PositionStart,
	}

	rightmost, ok := c.RightmostLeaf(id, nil)
	if !ok {
		return anchor, nil
	}

	leafRange := rightmost.TokenRange()
	return token.Range{
		TokenIndexStart: anchor.TokenIndexStart,
		TokenIndexEnd:   leafRange.TokenIndexEnd,
		PositionStart:   anchor.PositionStart,
		PositionEnd:     leafRange.PositionEnd,
	}, nil
}

// Copy clones the collection's maps, indices and context nodes, so the
// parser's checkpoint/restore mechanism can take a speculative branch
// without disturbing the restore point's indices (spec.md 4.E/4.F). The
// committed ast.Node values themselves are not cloned: the copy's
// ast_by_id holds the same node pointers as the original, so a
// SetNodeId/SetAttributeIndex call on a node through either collection is
// seen by both.
func (c *Collection) Copy() *Collection {
	cp := &Collection{
		nextId:       c.nextId,
		astById:      make(map[uint64]ast.Node, len(c.astById)),
		contextById:  make(map[uint64]*Context, len(c.contextById)),
		parentById:   make(map[uint64]uint64, len(c.parentById)),
		childrenById: make(map[uint64][]uint64, len(c.childrenById)),
		idsByKind:    make(map[ast.Kind]map[uint64]bool, len(c.idsByKind)),
		leafIds:      make(map[uint64]bool, len(c.leafIds)),
		rightmostLeaf: c.rightmostLeaf,
	}
	for id, node := range c.astById {
		cp.astById[id] = node
	}
	for id, ctx := range c.contextById {
		ctxCopy := *ctx
		cp.contextById[id] = &ctxCopy
	}
	for id, parentId := range c.parentById {
		cp.parentById[id] = parentId
	}
	for id, children := range c.childrenById {
		dup := make([]uint64, len(children))
		copy(dup, children)
		cp.childrenById[id] = dup
	}
	for kind, set := range c.idsByKind {
		dup := make(map[uint64]bool, len(set))
		for id := range set {
			dup[id] = true
		}
		cp.idsByKind[kind] = dup
	}
	for id := range c.leafIds {
		cp.leafIds[id] = true
	}
	return cp
}

// RecalculateIds walks rootId's subtree in depth-first pre-order and
// returns the delta-only rename map from each node's current id to its new,
// strictly increasing pre-order id. Nodes whose id is already correct are
// omitted (spec.md 4.D). Call UpdateNodeIds with the result to apply it.
func (c *Collection) RecalculateIds(rootId uint64) (map[uint64]uint64, error) {
	var order []uint64
	var walk func(id uint64)
	walk = func(id uint64) {
		order = append(order, id)
		// children_by_id is already kept in attribute-index order by
		// Attach/AttachNewLeaf, so a plain walk is pre-order.
		for _, child := range c.childrenById[id] {
			walk(child)
		}
	}
	walk(rootId)

	// Sanity-check the walk actually produced a permutation of its own
	// old ids before trusting it to drive the rename below.
	sorted := append([]uint64(nil), order...)
	sortutil.UInt64s(sorted)
	for i := 1; i < len(sorted); i++ {
		errorutil.AssertTrue(sorted[i] != sorted[i-1], "recalculate_ids found a node reachable twice from the given root")
	}

	rename := make(map[uint64]uint64)
	for i, id := range order {
		if id != sorted[i] {
			rename[id] = sorted[i]
		}
	}
	return rename, nil
}

// UpdateNodeIds applies a rename map produced by RecalculateIds, rewriting
// every index entry and every node's own id (SetNodeId) in place
// (spec.md 4.D). Applying an empty map is a no-op.
func (c *Collection) UpdateNodeIds(rename map[uint64]uint64) error {
	if len(rename) == 0 {
		return nil
	}

	translate := func(id uint64) uint64 {
		if newId, ok := rename[id]; ok {
			return newId
		}
		return id
	}

	newAstById := make(map[uint64]ast.Node, len(c.astById))
	for id, node := range c.astById {
		newId := translate(id)
		node.SetNodeId(newId)
		newAstById[newId] = node
	}
	c.astById = newAstById

	newContextById := make(map[uint64]*Context, len(c.contextById))
	for id, ctx := range c.contextById {
		newId := translate(id)
		ctx.id = newId
		newContextById[newId] = ctx
	}
	c.contextById = newContextById

	newParentById := make(map[uint64]uint64, len(c.parentById))
	for id, parentId := range c.parentById {
		newParentById[translate(id)] = translate(parentId)
	}
	c.parentById = newParentById

	newChildrenById := make(map[uint64][]uint64, len(c.childrenById))
	for id, children := range c.childrenById {
		dup := make([]uint64, len(children))
		for i, child := range children {
			dup[i] = translate(child)
		}
		newChildrenById[translate(id)] = dup
	}
	c.childrenById = newChildrenById

	newIdsByKind := make(map[ast.Kind]map[uint64]bool, len(c.idsByKind))
	for kind, set := range c.idsByKind {
		dup := make(map[uint64]bool, len(set))
		for id := range set {
			dup[translate(id)] = true
		}
		newIdsByKind[kind] = dup
	}
	c.idsByKind = newIdsByKind

	newLeafIds := make(map[uint64]bool, len(c.leafIds))
	for id := range c.leafIds {
		newLeafIds[translate(id)] = true
	}
	c.leafIds = newLeafIds

	return nil
}

// IdsOfKind returns the current set of ids committed (or open, for a
// Context kind) under kind, for tooling that needs to enumerate by
// variant (e.g. cmd/mquery's dump subcommand).
func (c *Collection) IdsOfKind(kind ast.Kind) map[uint64]bool {
	return c.idsByKind[kind]
}

// AstNodeCount returns the number of committed nodes currently held.
func (c *Collection) AstNodeCount() int {
	return len(c.astById)
}

// LeafIds returns the current set of ids committed as leaf AST variants
// (spec.md 3 "leaf_ids"), for ParseOk's output shape (spec.md 6).
func (c *Collection) LeafIds() map[uint64]bool {
	out := make(map[uint64]bool, len(c.leafIds))
	for id := range c.leafIds {
		out[id] = true
	}
	return out
}

// RightmostLeafSeen returns the leaf with the greatest token_index_start
// observed across the collection's lifetime, or nil if none has been
// inserted yet.
func (c *Collection) RightmostLeafSeen() ast.Node {
	return c.rightmostLeaf
}
