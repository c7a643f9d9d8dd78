/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "devt.de/mquery/token"

// Node is the common surface every committed AST variant implements. The
// unexported astNode marker keeps the family closed to this package, the
// Go analogue of the source's single tagged enum (spec.md 9, Design Notes).
//
// Mutating setters are exported because the node-id map (package nodeid) is
// the sole owner of node identity and rewrites Id/AttributeIndex/TokenRange
// in place during id renumbering (spec.md 4.D) and context commit (4.E);
// nothing else should call them.
type Node interface {
	NodeId() uint64
	SetNodeId(uint64)
	Kind() Kind
	AttributeIndex() *int
	SetAttributeIndex(*int)
	TokenRange() token.Range
	SetTokenRange(token.Range)
	IsLeaf() bool

	astNode()
}

// Base is embedded by every concrete variant and supplies the common header
// spec.md 3 describes: kind, id, attribute_index, token_range, is_leaf.
type Base struct {
	id             uint64
	kind           Kind
	attributeIndex *int
	tokenRange     token.Range
}

// NewBase constructs the header for a variant of the given kind. Variant
// constructors call this first, then fill in their own attribute fields.
func NewBase(kind Kind) Base {
	return Base{kind: kind}
}

func (b *Base) NodeId() uint64                    { return b.id }
func (b *Base) SetNodeId(id uint64)               { b.id = id }
func (b *Base) Kind() Kind                        { return b.kind }
func (b *Base) AttributeIndex() *int              { return b.attributeIndex }
func (b *Base) SetAttributeIndex(i *int)          { b.attributeIndex = i }
func (b *Base) TokenRange() token.Range           { return b.tokenRange }
func (b *Base) SetTokenRange(r token.Range)        { b.tokenRange = r }
func (b *Base) IsLeaf() bool                      { return IsLeafKind(b.kind) }
func (b *Base) astNode()                          {}

// Constant is a leaf node holding one of the closed textual vocabularies in
// package constant (keyword, language constant, misc constant, wrapper
// constant, primitive type name, or operator symbol) together with the
// token it came from.
type Constant struct {
	Base
	Text string
}

// NewConstant builds a Constant leaf for the given literal text.
func NewConstant(text string) *Constant {
	c := &Constant{Base: NewBase(KindConstant), Text: text}
	return c
}

// Identifier is a leaf holding a plain (non-generalized) identifier,
// optionally marked inclusive (the "@" prefix used to suppress
// auto-generalization, e.g. "@x" in "let x = 1 in @x").
type Identifier struct {
	Base
	Literal            string
	InclusiveConstant  *Constant // non-nil iff written as "@identifier"
}

func NewIdentifier(literal string, inclusive *Constant) *Identifier {
	return &Identifier{Base: NewBase(KindIdentifier), Literal: literal, InclusiveConstant: inclusive}
}

// GeneralizedIdentifier is a leaf holding an identifier that may contain
// dots, spaces, and keywords (record field names, section member names).
type GeneralizedIdentifier struct {
	Base
	Literal string
}

func NewGeneralizedIdentifier(literal string) *GeneralizedIdentifier {
	return &GeneralizedIdentifier{Base: NewBase(KindGeneralizedIdentifier), Literal: literal}
}

// LiteralKind classifies the payload a LiteralExpression carries.
type LiteralKind int

const (
	LiteralKindNumeric LiteralKind = iota
	LiteralKindText
	LiteralKindLogical
	LiteralKindNull
	LiteralKindRecord
)

// LiteralExpression is a leaf holding a numeric, text, logical, null, or
// record literal's raw text.
type LiteralExpression struct {
	Base
	Literal     string
	LiteralKind LiteralKind
}

func NewLiteralExpression(literal string, kind LiteralKind) *LiteralExpression {
	return &LiteralExpression{Base: NewBase(KindLiteralExpression), Literal: literal, LiteralKind: kind}
}

// PrimitiveType is a leaf holding one of the closed built-in type names.
type PrimitiveType struct {
	Base
	Literal string
}

func NewPrimitiveType(literal string) *PrimitiveType {
	return &PrimitiveType{Base: NewBase(KindPrimitiveType), Literal: literal}
}
