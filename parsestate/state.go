/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package parsestate holds the one piece of mutable state a parse threads
// through every reader: the cursor into the lexed token stream, the id of
// the context currently being built, the node-id map that context lives in,
// and the trace/cancellation hooks a host may have installed (spec.md 4.F).
//
// Speculative parsing (disambiguation, spec.md 4.I) works by taking a
// Checkpoint before a guess and, if the guess fails, Restoring to it; this
// is the only backtracking primitive the engine has, so Checkpoint must
// capture everything Restore needs to make the guess invisible.
package parsestate

import (
	"devt.de/krotik/common/datautil"

	"devt.de/mquery/nodeid"
	"devt.de/mquery/token"
)

// State is the parser's single piece of mutable state (spec.md 4.F).
type State struct {
	Snapshot token.Snapshot

	TokenIndex       int
	CurrentToken     token.Token
	CurrentTokenKind token.Kind

	// CurrentContextId is carried through Checkpoint/Restore but is not
	// updated by the readers in package parser, which pass parent context
	// ids explicitly; it stays nil unless a caller sets it.
	CurrentContextId *uint64

	// Collection is contextState: the node-id map, which also owns the id
	// counter (spec.md 4.F).
	Collection *nodeid.Collection

	Trace        TraceSink
	Cancellation CancellationHandle

	// Options carries host-supplied, non-core settings (e.g. a future
	// diagnostic locale) that readers may consult without growing the
	// core state tuple; built by merging override maps at construction
	// time the way the teacher's debugger composes request option maps
	// (interpreter/debug.go MergeMaps).
	Options map[string]interface{}
}

// New builds the initial state positioned before the first token of
// snapshot. trace and cancellation may be nil. overrides are merged, later
// maps winning over earlier ones, into State.Options.
func New(snapshot token.Snapshot, trace TraceSink, cancellation CancellationHandle, overrides ...map[string]interface{}) *State {
	s := &State{
		Snapshot:     snapshot,
		Collection:   nodeid.NewCollection(),
		Trace:        trace,
		Cancellation: cancellation,
		Options:      datautil.MergeMaps(overrides...),
	}
	s.syncCurrentToken()
	return s
}

func (s *State) syncCurrentToken() {
	if tok, ok := s.Snapshot.At(s.TokenIndex); ok {
		s.CurrentToken = tok
		s.CurrentTokenKind = tok.Kind
		return
	}
	// Past the last real token: synthesize the Eof the lexer would have
	// appended, so readers never need a separate end-of-stream check.
	s.CurrentToken = token.Token{Kind: token.KindEof}
	s.CurrentTokenKind = token.KindEof
}

// Advance consumes the current token and moves the cursor to the next one.
// This is the only way a reader may "consume" a token (spec.md 4.F).
func (s *State) Advance() {
	s.TokenIndex++
	s.syncCurrentToken()
}

// IsCancelled reports whether a cancellation handle was installed and has
// fired.
func (s *State) IsCancelled() bool {
	return s.Cancellation != nil && s.Cancellation.Cancelled()
}

// EmitTrace forwards event to the installed sink, if any.
func (s *State) EmitTrace(event TraceEvent) {
	if s.Trace != nil {
		s.Trace.Trace(event)
	}
}

// Checkpoint is an opaque snapshot sufficient to restore the state and node-
// id map to the exact moment it was taken (spec.md 4.F).
type Checkpoint struct {
	tokenIndex       int
	currentToken     token.Token
	currentTokenKind token.Kind
	currentContextId *uint64
	collection       *nodeid.Collection
}

// Checkpoint captures the cursor, current context id, and a copy of the
// node-id map (Collection.Copy).
func (s *State) Checkpoint() *Checkpoint {
	var contextId *uint64
	if s.CurrentContextId != nil {
		id := *s.CurrentContextId
		contextId = &id
	}
	return &Checkpoint{
		tokenIndex:       s.TokenIndex,
		currentToken:     s.CurrentToken,
		currentTokenKind: s.CurrentTokenKind,
		currentContextId: contextId,
		collection:       s.Collection.Copy(),
	}
}

// Restore replaces s's cursor, current context id, and node-id map with an
// independent copy of what cp captured, so the same checkpoint may be
// restored to more than once without the restored states aliasing each
// other's map (the checkpoint/restore law, spec.md 9).
func (s *State) Restore(cp *Checkpoint) {
	s.TokenIndex = cp.tokenIndex
	s.CurrentToken = cp.currentToken
	s.CurrentTokenKind = cp.currentTokenKind
	s.CurrentContextId = cp.currentContextId
	s.Collection = cp.collection.Copy()
}
