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

// Each of the eight binary-operator variants below is one instantiation of
// spec.md 4.C's BinOp<Left, Op, Right> shape: a left operand, an operator
// Constant, and a right operand. Operand shapes are enforced at
// construction time by the family-specific validators the combinatorial
// engine runs (spec.md 4.H), not by the Go type system — Left/Right are
// Node so the engine can attempt a candidate before validating it.

type ArithmeticExpression struct {
	Base
	Left              Node
	OperatorConstant  *Constant
	Right             Node
}

func NewArithmeticExpression(left Node, op *Constant, right Node) *ArithmeticExpression {
	return &ArithmeticExpression{Base: NewBase(KindArithmeticExpression), Left: left, OperatorConstant: op, Right: right}
}

type EqualityExpression struct {
	Base
	Left              Node
	OperatorConstant  *Constant
	Right             Node
}

func NewEqualityExpression(left Node, op *Constant, right Node) *EqualityExpression {
	return &EqualityExpression{Base: NewBase(KindEqualityExpression), Left: left, OperatorConstant: op, Right: right}
}

type RelationalExpression struct {
	Base
	Left              Node
	OperatorConstant  *Constant
	Right             Node
}

func NewRelationalExpression(left Node, op *Constant, right Node) *RelationalExpression {
	return &RelationalExpression{Base: NewBase(KindRelationalExpression), Left: left, OperatorConstant: op, Right: right}
}

// LogicalExpression covers both "and" and "or"; the operator constant text
// distinguishes them (spec.md 4.H treats them as one family with two
// allowed operand shapes).
type LogicalExpression struct {
	Base
	Left              Node
	OperatorConstant  *Constant
	Right             Node
}

func NewLogicalExpression(left Node, op *Constant, right Node) *LogicalExpression {
	return &LogicalExpression{Base: NewBase(KindLogicalExpression), Left: left, OperatorConstant: op, Right: right}
}

// AsExpression: left is TEqualityExpression, right is TNullablePrimitiveType.
type AsExpression struct {
	Base
	Left              Node
	AsConstant        *Constant
	Right             Node
}

func NewAsExpression(left Node, asConstant *Constant, right Node) *AsExpression {
	return &AsExpression{Base: NewBase(KindAsExpression), Left: left, AsConstant: asConstant, Right: right}
}

// IsExpression: left is TAsExpression, right is TNullablePrimitiveType.
type IsExpression struct {
	Base
	Left              Node
	IsConstant        *Constant
	Right             Node
}

func NewIsExpression(left Node, isConstant *Constant, right Node) *IsExpression {
	return &IsExpression{Base: NewBase(KindIsExpression), Left: left, IsConstant: isConstant, Right: right}
}

// MetadataExpression: left and right are TUnaryExpression.
type MetadataExpression struct {
	Base
	Left              Node
	MetaConstant      *Constant
	Right             Node
}

func NewMetadataExpression(left Node, metaConstant *Constant, right Node) *MetadataExpression {
	return &MetadataExpression{Base: NewBase(KindMetadataExpression), Left: left, MetaConstant: metaConstant, Right: right}
}

// NullCoalescingExpression ("??"): left and right are TLogicalExpression.
type NullCoalescingExpression struct {
	Base
	Left              Node
	OperatorConstant  *Constant
	Right             Node
}

func NewNullCoalescingExpression(left Node, op *Constant, right Node) *NullCoalescingExpression {
	return &NullCoalescingExpression{Base: NewBase(KindNullCoalescingExpression), Left: left, OperatorConstant: op, Right: right}
}

// UnaryExpression is a run of prefix operators (+, -, not) applied to a
// TPrimaryExpression. Unlike the BinOp family this is unary, so it stores
// the operator constants as a flat slice rather than a single operand.
type UnaryExpression struct {
	Base
	OperatorConstants  []*Constant
	Expression         Node
}

func NewUnaryExpression(operators []*Constant, expression Node) *UnaryExpression {
	return &UnaryExpression{Base: NewBase(KindUnaryExpression), OperatorConstants: operators, Expression: expression}
}

// RangeExpression is a list item of the form "left..right" (spec.md 4.C
// TListItem grouping).
type RangeExpression struct {
	Base
	Left              Node
	RangeConstant     *Constant
	Right             Node
}

func NewRangeExpression(left Node, rangeConstant *Constant, right Node) *RangeExpression {
	return &RangeExpression{Base: NewBase(KindRangeExpression), Left: left, RangeConstant: rangeConstant, Right: right}
}
