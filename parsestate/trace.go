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

import "fmt"

// TraceEvent is one point of interest forwarded to the trace sink through
// State.EmitTrace. The readers in package parser do not emit any events
// themselves. Tooling correlates events by ContextId to reconstruct what
// happened around a given node (spec.md 4.F "trace_handle").
type TraceEvent struct {
	Reader     string
	TokenIndex int
	ContextId  uint64
	Detail     string
}

func (e TraceEvent) String() string {
	return fmt.Sprintf("%s@%d (context %d): %s", e.Reader, e.TokenIndex, e.ContextId, e.Detail)
}

// TraceSink receives trace events as the parse progresses. A nil sink is
// always valid and means tracing is off; State.EmitTrace checks for it.
// Implementations must not mutate parser state from Trace.
type TraceSink interface {
	Trace(event TraceEvent)
}

// CancellationHandle reports whether the caller has asked the parse to stop
// early (spec.md 4.F "cancellation_handle"). A nil handle means the parse is
// never cancellable.
type CancellationHandle interface {
	Cancelled() bool
}

// ChannelCancellation adapts a close-to-cancel channel, the idiom the
// teacher uses for shutdown signalling (see engine/monitor.go's done
// channels), into a CancellationHandle.
type ChannelCancellation <-chan struct{}

func (c ChannelCancellation) Cancelled() bool {
	select {
	case <-c:
		return true
	default:
		return false
	}
}
