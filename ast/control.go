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

// EachExpression is PairedConstant<each, TFunctionBody>: sugar for a
// one-parameter function taking "_".
type EachExpression struct {
	Base
	EachConstant  *Constant
	Expression    Node
}

func NewEachExpression(eachConstant *Constant, expression Node) *EachExpression {
	return &EachExpression{Base: NewBase(KindEachExpression), EachConstant: eachConstant, Expression: expression}
}

// LetExpression binds a comma-separated list of name/value pairs and
// evaluates a body expression in their scope (spec.md 8 scenario 6).
type LetExpression struct {
	Base
	LetConstant   *Constant
	Variables     *ArrayWrapper[*Csv[*IdentifierPairedExpression]]
	InConstant    *Constant
	Expression    Node
}

func NewLetExpression(letConstant *Constant, variables *ArrayWrapper[*Csv[*IdentifierPairedExpression]], inConstant *Constant, expression Node) *LetExpression {
	return &LetExpression{Base: NewBase(KindLetExpression), LetConstant: letConstant, Variables: variables, InConstant: inConstant, Expression: expression}
}

// IfExpression is the full "if COND then TRUE else FALSE" conditional.
type IfExpression struct {
	Base
	IfConstant       *Constant
	Condition        Node
	ThenConstant     *Constant
	TrueExpression   Node
	ElseConstant     *Constant
	FalseExpression  Node
}

func NewIfExpression(ifConstant *Constant, condition Node, thenConstant *Constant, trueExpr Node, elseConstant *Constant, falseExpr Node) *IfExpression {
	return &IfExpression{
		Base: NewBase(KindIfExpression), IfConstant: ifConstant, Condition: condition,
		ThenConstant: thenConstant, TrueExpression: trueExpr, ElseConstant: elseConstant, FalseExpression: falseExpr,
	}
}

// ErrorRaisingExpression is PairedConstant<error, TExpression>.
type ErrorRaisingExpression struct {
	Base
	ErrorConstant  *Constant
	Expression     Node
}

func NewErrorRaisingExpression(errorConstant *Constant, expression Node) *ErrorRaisingExpression {
	return &ErrorRaisingExpression{Base: NewBase(KindErrorRaisingExpression), ErrorConstant: errorConstant, Expression: expression}
}

// OtherwiseExpression is PairedConstant<otherwise, TExpression>, the
// fallback clause of "try EXPR otherwise EXPR".
type OtherwiseExpression struct {
	Base
	OtherwiseConstant  *Constant
	Expression         Node
}

func NewOtherwiseExpression(otherwiseConstant *Constant, expression Node) *OtherwiseExpression {
	return &OtherwiseExpression{Base: NewBase(KindOtherwiseExpression), OtherwiseConstant: otherwiseConstant, Expression: expression}
}

// ErrorHandlingExpression is "try TExpression" followed by exactly one
// handler clause: either an OtherwiseExpression, or an inline
// "catch (name) => TExpression" clause. Per spec.md's Open Questions,
// CatchExpression is deliberately not its own ast.Kind; the catch clause's
// fields live directly on ErrorHandlingExpression instead.
type ErrorHandlingExpression struct {
	Base
	TryConstant          *Constant
	ProtectedExpression  Node

	// Exactly one of Otherwise or CatchConstant is set.

	Otherwise            *OtherwiseExpression

	CatchConstant        *Constant
	CatchOpenWrapperConstant  *Constant // "(" before the catch parameter, nil for parameterless catch
	CatchName            *Identifier   // nil for parameterless catch ("catch () => ...")
	CatchCloseWrapperConstant *Constant
	CatchArrowConstant   *Constant
	CatchExpression      Node
}

func NewErrorHandlingExpressionOtherwise(tryConstant *Constant, protected Node, otherwise *OtherwiseExpression) *ErrorHandlingExpression {
	return &ErrorHandlingExpression{Base: NewBase(KindErrorHandlingExpression), TryConstant: tryConstant, ProtectedExpression: protected, Otherwise: otherwise}
}

func NewErrorHandlingExpressionCatch(
	tryConstant *Constant, protected Node, catchConstant *Constant,
	openWrapper *Constant, name *Identifier, closeWrapper *Constant,
	arrow *Constant, catchExpression Node,
) *ErrorHandlingExpression {
	return &ErrorHandlingExpression{
		Base: NewBase(KindErrorHandlingExpression), TryConstant: tryConstant, ProtectedExpression: protected,
		CatchConstant: catchConstant, CatchOpenWrapperConstant: openWrapper, CatchName: name,
		CatchCloseWrapperConstant: closeWrapper, CatchArrowConstant: arrow, CatchExpression: catchExpression,
	}
}
