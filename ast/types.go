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

// TypePrimaryType is "type TPrimaryType": PairedConstant<type, TPrimaryType>.
type TypePrimaryType struct {
	Base
	TypeConstant  *Constant
	PrimaryType   Node
}

func NewTypePrimaryType(typeConstant *Constant, primaryType Node) *TypePrimaryType {
	return &TypePrimaryType{Base: NewBase(KindTypePrimaryType), TypeConstant: typeConstant, PrimaryType: primaryType}
}

// NullableType is "nullable TType": PairedConstant<nullable, TType>, used
// wherever a full type expression (not just a primitive) may be nullable.
type NullableType struct {
	Base
	NullableConstant  *Constant
	Type              Node
}

func NewNullableType(nullableConstant *Constant, typ Node) *NullableType {
	return &NullableType{Base: NewBase(KindNullableType), NullableConstant: nullableConstant, Type: typ}
}

// NullablePrimitiveType is "nullable PrimitiveType", the narrower form used
// by Parameter/FunctionExpression return-type annotations (spec.md 4.C
// TNullablePrimitiveType).
type NullablePrimitiveType struct {
	Base
	NullableConstant  *Constant
	PrimitiveType     *PrimitiveType
}

func NewNullablePrimitiveType(nullableConstant *Constant, primitiveType *PrimitiveType) *NullablePrimitiveType {
	return &NullablePrimitiveType{Base: NewBase(KindNullablePrimitiveType), NullableConstant: nullableConstant, PrimitiveType: primitiveType}
}

// TableType is "table TRowType", where TRowType is either a
// FieldSpecificationList or a primary expression referencing a type.
type TableType struct {
	Base
	TableConstant  *Constant
	RowType        Node
}

func NewTableType(tableConstant *Constant, rowType Node) *TableType {
	return &TableType{Base: NewBase(KindTableType), TableConstant: tableConstant, RowType: rowType}
}

// RecordType wraps a FieldSpecificationList.
type RecordType struct {
	Base
	Fields  *FieldSpecificationList
}

func NewRecordType(fields *FieldSpecificationList) *RecordType {
	return &RecordType{Base: NewBase(KindRecordType), Fields: fields}
}

// ListType is Wrapped<"{", TType, "}">.
type ListType struct {
	Base
	OpenWrapperConstant   *Constant
	Content               Node
	CloseWrapperConstant  *Constant
}

func NewListType(open *Constant, content Node, close *Constant) *ListType {
	return &ListType{Base: NewBase(KindListType), OpenWrapperConstant: open, Content: content, CloseWrapperConstant: close}
}

// FieldTypeSpecification is "= TType", the optional suffix of a
// FieldSpecification.
type FieldTypeSpecification struct {
	Base
	EqualConstant  *Constant
	FieldType      Node
}

func NewFieldTypeSpecification(equalConstant *Constant, fieldType Node) *FieldTypeSpecification {
	return &FieldTypeSpecification{Base: NewBase(KindFieldTypeSpecification), EqualConstant: equalConstant, FieldType: fieldType}
}

// FieldSpecification is "[nullable] GeneralizedIdentifier [FieldTypeSpecification]".
type FieldSpecification struct {
	Base
	NullableConstant  *Constant // non-nil iff the field itself is marked nullable
	Name              *GeneralizedIdentifier
	FieldTypeSpec     *FieldTypeSpecification // nil when no "= TType" follows
}

func NewFieldSpecification(nullableConstant *Constant, name *GeneralizedIdentifier, fieldTypeSpec *FieldTypeSpecification) *FieldSpecification {
	return &FieldSpecification{Base: NewBase(KindFieldSpecification), NullableConstant: nullableConstant, Name: name, FieldTypeSpec: fieldTypeSpec}
}

// FieldSpecificationList is Wrapped<"[", ArrayWrapper<Csv<FieldSpecification>>, "]">
// with an optional trailing "..." open-record marker.
type FieldSpecificationList struct {
	Base
	OpenWrapperConstant       *Constant
	Content                   *ArrayWrapper[*Csv[*FieldSpecification]]
	OpenRecordMarkerConstant  *Constant
	CloseWrapperConstant      *Constant
}

func NewFieldSpecificationList(open *Constant, content *ArrayWrapper[*Csv[*FieldSpecification]], openRecordMarker *Constant, close *Constant) *FieldSpecificationList {
	return &FieldSpecificationList{
		Base: NewBase(KindFieldSpecificationList), OpenWrapperConstant: open, Content: content,
		OpenRecordMarkerConstant: openRecordMarker, CloseWrapperConstant: close,
	}
}
