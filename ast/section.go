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

// GeneralizedIdentifierPairedExpression is "GeneralizedIdentifier = TExpression",
// used by record fields.
type GeneralizedIdentifierPairedExpression struct {
	Base
	Key            *GeneralizedIdentifier
	EqualConstant  *Constant
	Value          Node
}

func NewGeneralizedIdentifierPairedExpression(key *GeneralizedIdentifier, equalConstant *Constant, value Node) *GeneralizedIdentifierPairedExpression {
	return &GeneralizedIdentifierPairedExpression{Base: NewBase(KindGeneralizedIdentifierPairedExpression), Key: key, EqualConstant: equalConstant, Value: value}
}

// IdentifierPairedExpression is "Identifier = TExpression", used by let
// bindings and section member names.
type IdentifierPairedExpression struct {
	Base
	Key            *Identifier
	EqualConstant  *Constant
	Value          Node
}

func NewIdentifierPairedExpression(key *Identifier, equalConstant *Constant, value Node) *IdentifierPairedExpression {
	return &IdentifierPairedExpression{Base: NewBase(KindIdentifierPairedExpression), Key: key, EqualConstant: equalConstant, Value: value}
}

// SectionMember is "[shared] IdentifierPairedExpression ;".
type SectionMember struct {
	Base
	SharedConstant      *Constant // non-nil iff marked "shared"
	NamePairedExpression *IdentifierPairedExpression
	SemicolonConstant   *Constant
}

func NewSectionMember(sharedConstant *Constant, namePairedExpression *IdentifierPairedExpression, semicolon *Constant) *SectionMember {
	return &SectionMember{Base: NewBase(KindSectionMember), SharedConstant: sharedConstant, NamePairedExpression: namePairedExpression, SemicolonConstant: semicolon}
}

// Section is the top-level "section [Name]; member; member; ..." document
// form (spec.md 4.G read_document's primary attempt before falling back to
// read_expression).
type Section struct {
	Base
	SectionConstant    *Constant
	Name               *Identifier // nil for an unnamed section
	SemicolonConstant  *Constant
	SectionMembers     *ArrayWrapper[*SectionMember]
}

func NewSection(sectionConstant *Constant, name *Identifier, semicolon *Constant, members *ArrayWrapper[*SectionMember]) *Section {
	return &Section{Base: NewBase(KindSection), SectionConstant: sectionConstant, Name: name, SemicolonConstant: semicolon, SectionMembers: members}
}
