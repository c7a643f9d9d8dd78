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

import "fmt"

// Position is a zero-indexed location in the source, expressed three ways
// so callers can pick whichever is convenient without re-scanning the file.
type Position struct {
	LineCodeUnit int // code unit offset within the current line
	LineNumber   int // zero-indexed line number
	CodeUnit     int // code unit offset from the start of the file
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineNumber, p.LineCodeUnit)
}

// Less orders positions by absolute code unit, matching file order.
func (p Position) Less(other Position) bool {
	return p.CodeUnit < other.CodeUnit
}

// Token is one lexical unit: a half-open range over the source plus the
// kind the lexer assigned it and the literal text it covers.
type Token struct {
	Kind           Kind
	PositionStart  Position
	PositionEnd    Position
	Data           string
}

// Range describes a token span by both token index and source position, as
// kept on every AST node and context node. Start is inclusive, End is
// exclusive, in both token-index and position space.
type Range struct {
	TokenIndexStart int
	TokenIndexEnd   int
	PositionStart   Position
	PositionEnd     Position
}

// IsEmpty reports a range that covers no tokens, the shape XorTokenRange
// returns for a context with no committed leaf under it (spec.md 4.D).
func (r Range) IsEmpty() bool {
	return r.TokenIndexStart == r.TokenIndexEnd
}
