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

// Parameter is one entry of a ParameterList: an optional "optional"
// marker, a name, and an optional "as TType" annotation. A required
// parameter may not follow an optional one (spec.md 4.G
// RequiredParameterAfterOptional).
type Parameter struct {
	Base
	OptionalConstant  *Constant // non-nil iff marked "optional"
	Name              *Identifier
	AsConstant        *Constant // non-nil iff a type annotation follows
	ParameterType     Node      // TNullablePrimitiveType, nil when AsConstant is nil
}

func NewParameter(optional *Constant, name *Identifier, asConstant *Constant, parameterType Node) *Parameter {
	return &Parameter{Base: NewBase(KindParameter), OptionalConstant: optional, Name: name, AsConstant: asConstant, ParameterType: parameterType}
}

// ParameterList is Wrapped<"(", ArrayWrapper<Csv<Parameter>>, ")">.
type ParameterList struct {
	Base
	OpenWrapperConstant   *Constant
	Content               *ArrayWrapper[*Csv[*Parameter]]
	CloseWrapperConstant  *Constant
}

func NewParameterList(open *Constant, content *ArrayWrapper[*Csv[*Parameter]], close *Constant) *ParameterList {
	return &ParameterList{Base: NewBase(KindParameterList), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close}
}

// FunctionExpression is "(params) [as TType] => TFunctionBody".
type FunctionExpression struct {
	Base
	Parameters      *ParameterList
	AsConstant      *Constant // non-nil iff a return-type annotation follows
	ReturnType      Node      // TNullablePrimitiveType, nil when AsConstant is nil
	FatArrowConstant *Constant
	Expression      Node
}

func NewFunctionExpression(parameters *ParameterList, asConstant *Constant, returnType Node, fatArrow *Constant, expression Node) *FunctionExpression {
	return &FunctionExpression{
		Base: NewBase(KindFunctionExpression), Parameters: parameters, AsConstant: asConstant,
		ReturnType: returnType, FatArrowConstant: fatArrow, Expression: expression,
	}
}

// FunctionType is "function ParameterList as TNullablePrimitiveType".
type FunctionType struct {
	Base
	FunctionConstant  *Constant
	Parameters        *ParameterList
	AsConstant        *Constant
	ReturnType        Node
}

func NewFunctionType(functionConstant *Constant, parameters *ParameterList, asConstant *Constant, returnType Node) *FunctionType {
	return &FunctionType{Base: NewBase(KindFunctionType), FunctionConstant: functionConstant, Parameters: parameters, AsConstant: asConstant, ReturnType: returnType}
}
