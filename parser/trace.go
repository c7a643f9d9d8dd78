/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"devt.de/krotik/common/datautil"

	"devt.de/mquery/parsestate"
)

// RingBufferTraceSink is the provided parsestate.TraceSink implementation:
// it keeps the last N trace events in memory, the same bounded-history shape
// the teacher uses for its in-memory log (util/logging.go's MemoryLogger).
type RingBufferTraceSink struct {
	buffer *datautil.RingBuffer
}

// NewRingBufferTraceSink returns a sink retaining at most size events.
func NewRingBufferTraceSink(size int) *RingBufferTraceSink {
	return &RingBufferTraceSink{buffer: datautil.NewRingBuffer(size)}
}

func (s *RingBufferTraceSink) Trace(event parsestate.TraceEvent) {
	s.buffer.Add(event)
}

// Events returns the retained trace events, oldest first.
func (s *RingBufferTraceSink) Events() []parsestate.TraceEvent {
	raw := s.buffer.Slice()
	events := make([]parsestate.TraceEvent, len(raw))
	for i, r := range raw {
		events[i] = r.(parsestate.TraceEvent)
	}
	return events
}

// Reset clears the retained history.
func (s *RingBufferTraceSink) Reset() {
	s.buffer.Reset()
}
