/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "testing"

func TestPositionLess(t *testing.T) {
	a := Position{CodeUnit: 3}
	b := Position{CodeUnit: 5}
	if !a.Less(b) {
		t.Error("expected the earlier code unit to sort first")
	}
	if b.Less(a) {
		t.Error("expected the later code unit to not sort before the earlier one")
	}
	if a.Less(a) {
		t.Error("a position is never less than itself")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{LineNumber: 2, LineCodeUnit: 7}
	if s := p.String(); s != "2:7" {
		t.Error("expected \"2:7\", got", s)
	}
}

func TestRangeIsEmpty(t *testing.T) {
	if !(Range{TokenIndexStart: 3, TokenIndexEnd: 3}).IsEmpty() {
		t.Error("a range with equal start and end should be empty")
	}
	if (Range{TokenIndexStart: 3, TokenIndexEnd: 4}).IsEmpty() {
		t.Error("a range spanning one token should not be empty")
	}
}

func TestSnapshotAt(t *testing.T) {
	snap := Snapshot{Tokens: []Token{{Kind: KindIdentifier, Data: "x"}}}

	tok, ok := snap.At(0)
	if !ok || tok.Data != "x" {
		t.Error("expected At(0) to return the lone token", tok, ok)
	}

	if _, ok := snap.At(1); ok {
		t.Error("expected At to report false past the end")
	}
	if _, ok := snap.At(-1); ok {
		t.Error("expected At to report false for a negative index")
	}
}
