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

// ArrayWrapper wraps an ordered sequence of T so the sequence itself is
// addressable as a node (spec.md 4.C). One generic shape, reused under
// every csv-list and statement-list grammar slot; KindArrayWrapper is the
// single Kind every instantiation carries.
type ArrayWrapper[T Node] struct {
	Base
	Elements []T
}

func NewArrayWrapper[T Node](elements []T) *ArrayWrapper[T] {
	return &ArrayWrapper[T]{Base: NewBase(KindArrayWrapper), Elements: elements}
}

// NodeElements returns the wrapped elements widened to Node, for callers
// (principally the node-id map) that only need the common interface.
func (a *ArrayWrapper[T]) NodeElements() []Node {
	out := make([]Node, len(a.Elements))
	for i, e := range a.Elements {
		out[i] = e
	}
	return out
}

// Csv pairs an element with its optional trailing comma constant
// (spec.md 4.C Csv<T>). Every comma-separated list element is wrapped in
// one of these so the trailing comma itself is addressable.
type Csv[T Node] struct {
	Base
	Element        T
	CommaConstant  *Constant // nil when no comma follows the element
}

func NewCsv[T Node](element T, comma *Constant) *Csv[T] {
	return &Csv[T]{Base: NewBase(KindCsv), Element: element, CommaConstant: comma}
}
