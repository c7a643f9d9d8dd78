/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parsestate

import (
	"testing"

	"devt.de/mquery/ast"
	"devt.de/mquery/token"
)

func snapshotOf(kinds ...token.Kind) token.Snapshot {
	toks := make([]token.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = token.Token{Kind: k}
	}
	return token.Snapshot{Tokens: toks}
}

func TestNewPositionsBeforeFirstToken(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier, token.KindPlus)
	s := New(snap, nil, nil)

	if s.TokenIndex != 0 || s.CurrentTokenKind != token.KindIdentifier {
		t.Error("New should position the cursor on the first token")
	}
	if s.CurrentContextId != nil {
		t.Error("a fresh state should have no current context")
	}
}

func TestAdvancePastEndSynthesizesEof(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier)
	s := New(snap, nil, nil)

	s.Advance()
	if s.CurrentTokenKind != token.KindEof {
		t.Error("advancing past the last token should synthesize Eof")
	}

	s.Advance()
	if s.CurrentTokenKind != token.KindEof {
		t.Error("Eof should persist once the cursor runs past the snapshot")
	}
}

func TestOptionsMergeOverrides(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier)
	s := New(snap, nil, nil, map[string]interface{}{"a": 1}, map[string]interface{}{"a": 2, "b": 3})

	if s.Options["a"] != 2 {
		t.Error("later override maps should win over earlier ones")
	}
	if s.Options["b"] != 3 {
		t.Error("expected the second map's key to survive the merge")
	}
}

type fakeCancellation bool

func (f fakeCancellation) Cancelled() bool { return bool(f) }

func TestIsCancelled(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier)

	s := New(snap, nil, nil)
	if s.IsCancelled() {
		t.Error("a nil cancellation handle should never report cancelled")
	}

	s = New(snap, nil, fakeCancellation(true))
	if !s.IsCancelled() {
		t.Error("expected the installed handle's Cancelled() to be consulted")
	}
}

func TestCheckpointRestoreIsolatesCollection(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier, token.KindPlus)
	s := New(snap, nil, nil)

	ctx, err := s.Collection.StartContext(ast.KindUnaryExpression, 0, s.CurrentToken, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctxId := ctx.Id()
	s.CurrentContextId = &ctxId
	s.Advance()

	cp := s.Checkpoint()

	// Mutate state after the checkpoint: advance further and attach a
	// leaf under the open context.
	leaf := ast.NewConstant("+")
	if err := s.Collection.AttachNewLeaf(ctxId, leaf); err != nil {
		t.Fatal(err)
	}
	s.Advance()

	s.Restore(cp)

	if s.TokenIndex != 1 {
		t.Error("restore should roll the cursor back to the checkpoint position, got", s.TokenIndex)
	}
	if s.CurrentContextId == nil || *s.CurrentContextId != ctxId {
		t.Error("restore should bring back the checkpointed current context id")
	}
	if children, _ := s.Collection.Children(ctxId); len(children) != 0 {
		t.Error("restore should undo attachments made after the checkpoint", children)
	}

	// The checkpoint's own copy must not be disturbed by a second round
	// of mutation against the restored state (the checkpoint/restore law:
	// restoring to the same checkpoint twice must not alias).
	if err := s.Collection.AttachNewLeaf(ctxId, ast.NewConstant("-")); err != nil {
		t.Fatal(err)
	}
	s.Restore(cp)
	if children, _ := s.Collection.Children(ctxId); len(children) != 0 {
		t.Error("a second restore to the same checkpoint should still see no children", children)
	}
}

func TestEmitTraceNilSinkIsNoop(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier)
	s := New(snap, nil, nil)
	s.EmitTrace(TraceEvent{Reader: "test"}) // must not panic
}

type recordingSink struct {
	events []TraceEvent
}

func (r *recordingSink) Trace(event TraceEvent) {
	r.events = append(r.events, event)
}

func TestEmitTraceForwardsToSink(t *testing.T) {
	snap := snapshotOf(token.KindIdentifier)
	sink := &recordingSink{}
	s := New(snap, sink, nil)

	s.EmitTrace(TraceEvent{Reader: "readIdentifierExpression", TokenIndex: 0})
	if len(sink.events) != 1 || sink.events[0].Reader != "readIdentifierExpression" {
		t.Error("expected the trace event to reach the sink", sink.events)
	}
}
