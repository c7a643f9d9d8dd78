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

// IdentifierExpression is an identifier reference, optionally prefixed with
// "@" to suppress implicit generalized-identifier lookup.
type IdentifierExpression struct {
	Base
	InclusiveConstant  *Constant // non-nil iff "@identifier"
	Identifier         *Identifier
}

func NewIdentifierExpression(inclusive *Constant, identifier *Identifier) *IdentifierExpression {
	return &IdentifierExpression{Base: NewBase(KindIdentifierExpression), InclusiveConstant: inclusive, Identifier: identifier}
}

// ParenthesizedExpression is Wrapped<"(", TExpression, ")">.
type ParenthesizedExpression struct {
	Base
	OpenWrapperConstant   *Constant
	Content               Node
	CloseWrapperConstant  *Constant
}

func NewParenthesizedExpression(open *Constant, content Node, close *Constant) *ParenthesizedExpression {
	return &ParenthesizedExpression{Base: NewBase(KindParenthesizedExpression), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close}
}

// InvokeExpression is a function call: Wrapped<"(", ArrayWrapper<Csv<TExpression>>, ")">.
type InvokeExpression struct {
	Base
	OpenWrapperConstant   *Constant
	Arguments             *ArrayWrapper[*Csv[Node]]
	CloseWrapperConstant  *Constant
}

func NewInvokeExpression(open *Constant, arguments *ArrayWrapper[*Csv[Node]], close *Constant) *InvokeExpression {
	return &InvokeExpression{Base: NewBase(KindInvokeExpression), OpenWrapperConstant: open, Arguments: arguments, CloseWrapperConstant: close}
}

// ListExpression is Wrapped<"{", ArrayWrapper<Csv<TListItem>>, "}">.
type ListExpression struct {
	Base
	OpenWrapperConstant   *Constant
	Content               *ArrayWrapper[*Csv[Node]]
	CloseWrapperConstant  *Constant
}

func NewListExpression(open *Constant, content *ArrayWrapper[*Csv[Node]], close *Constant) *ListExpression {
	return &ListExpression{Base: NewBase(KindListExpression), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close}
}

// RecordExpression is Wrapped<"[", ArrayWrapper<Csv<GeneralizedIdentifierPairedExpression>>, "]">,
// with an optional trailing "..." open-record marker (spec.md 8 scenario 5).
type RecordExpression struct {
	Base
	OpenWrapperConstant    *Constant
	Content                *ArrayWrapper[*Csv[*GeneralizedIdentifierPairedExpression]]
	OpenRecordMarkerConstant *Constant // non-nil iff the field list ends with "..."
	CloseWrapperConstant   *Constant
}

func NewRecordExpression(open *Constant, content *ArrayWrapper[*Csv[*GeneralizedIdentifierPairedExpression]], openRecordMarker *Constant, close *Constant) *RecordExpression {
	return &RecordExpression{
		Base: NewBase(KindRecordExpression), OpenWrapperConstant: open, Content: content,
		OpenRecordMarkerConstant: openRecordMarker, CloseWrapperConstant: close,
	}
}

// FieldSelector is Wrapped<"[", GeneralizedIdentifier, "]"> with an
// optional trailing "?" marking an optional field access.
type FieldSelector struct {
	Base
	OpenWrapperConstant   *Constant
	Content               *GeneralizedIdentifier
	CloseWrapperConstant  *Constant
	OptionalConstant      *Constant // non-nil iff suffixed with "?"
}

func NewFieldSelector(open *Constant, content *GeneralizedIdentifier, close *Constant, optional *Constant) *FieldSelector {
	return &FieldSelector{Base: NewBase(KindFieldSelector), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close, OptionalConstant: optional}
}

// FieldProjection is Wrapped<"[", ArrayWrapper<Csv<FieldSelector>>, "]">
// with an optional trailing "?".
type FieldProjection struct {
	Base
	OpenWrapperConstant   *Constant
	Content               *ArrayWrapper[*Csv[*FieldSelector]]
	CloseWrapperConstant  *Constant
	OptionalConstant      *Constant
}

func NewFieldProjection(open *Constant, content *ArrayWrapper[*Csv[*FieldSelector]], close *Constant, optional *Constant) *FieldProjection {
	return &FieldProjection{Base: NewBase(KindFieldProjection), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close, OptionalConstant: optional}
}

// ItemAccessExpression is Wrapped<"{", TExpression, "}"> with an optional
// trailing "?".
type ItemAccessExpression struct {
	Base
	OpenWrapperConstant   *Constant
	Content               Node
	CloseWrapperConstant  *Constant
	OptionalConstant      *Constant
}

func NewItemAccessExpression(open *Constant, content Node, close *Constant, optional *Constant) *ItemAccessExpression {
	return &ItemAccessExpression{Base: NewBase(KindItemAccessExpression), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close, OptionalConstant: optional}
}

// RecursivePrimaryExpression is a TPrimaryExpression head followed by one
// or more field-access/invoke/item-access suffixes, e.g. "f(1)[a]{0}".
type RecursivePrimaryExpression struct {
	Base
	Head                Node
	RecursiveExpressions *ArrayWrapper[Node]
}

func NewRecursivePrimaryExpression(head Node, recursive *ArrayWrapper[Node]) *RecursivePrimaryExpression {
	return &RecursivePrimaryExpression{Base: NewBase(KindRecursivePrimaryExpression), Head: head, RecursiveExpressions: recursive}
}

// NotImplementedExpression is the "..." placeholder used in expression
// position (distinct from a record's open-record marker use of the same
// token text).
type NotImplementedExpression struct {
	Base
	EllipsisConstant *Constant
}

func NewNotImplementedExpression(ellipsis *Constant) *NotImplementedExpression {
	return &NotImplementedExpression{Base: NewBase(KindNotImplementedExpression), EllipsisConstant: ellipsis}
}
