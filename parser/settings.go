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
	"devt.de/mquery/nodeid"
	"devt.de/mquery/parsestate"
	"devt.de/mquery/token"
)

// ParserVariant selects which engine readBinOpExpression runs for the
// binary-operator precedence ladder (spec.md 6 ParseSettings). The zero
// value is ParserVariantCombinatorialFastPath, so a zero-value ParseSettings
// runs the fast path by default.
type ParserVariant int

const (
	ParserVariantCombinatorialFastPath ParserVariant = iota
	ParserVariantNaiveRecursiveDescent
)

func (v ParserVariant) String() string {
	if v == ParserVariantNaiveRecursiveDescent {
		return "NaiveRecursiveDescent"
	}
	return "CombinatorialFastPath"
}

// optionKeyParserVariant is the parsestate.State.Options key Parse stashes
// ParseSettings.ParserVariant under, read back by readBinOpExpression's
// variantOf dispatcher.
const optionKeyParserVariant = "parser_variant"

// ParseSettings is the host-supplied configuration spec.md 6 names: a
// reserved diagnostic locale, an optional cancellation handle, an optional
// trace sink, and the engine variant to run.
type ParseSettings struct {
	Locale        string
	Cancellation  parsestate.CancellationHandle
	TraceSink     parsestate.TraceSink
	ParserVariant ParserVariant
}

// ParseOk is the successful result of Parse (spec.md 6): the finished
// document's root id, the node-id map it lives in, the set of ids that are
// leaf variants, and the snapshot's comments passed through untouched.
type ParseOk struct {
	RootId     uint64
	NodeIdMap  *nodeid.Collection
	LeafIds    map[uint64]bool
	Comments   []token.Comment
}

// Parse runs the whole core pipeline over snapshot (spec.md 4.G
// read_document, 6 "Input to the core"/"Output"): a Section if the input
// begins with the reserved "section" keyword, a bare expression otherwise.
// On success the full node-id map and leaf set are returned; on failure the
// returned *ParseError carries the partial map built up to the point of
// failure, so tooling can inspect what was parsed before the error.
func Parse(snapshot token.Snapshot, settings ParseSettings) (*ParseOk, *ParseError) {
	s := parsestate.New(snapshot, settings.TraceSink, settings.Cancellation, map[string]interface{}{
		optionKeyParserVariant: settings.ParserVariant,
	})

	if err := checkCancelled(s); err != nil {
		return nil, attachFailureMap(err, s)
	}

	root, err := ReadDocument(s)
	if err != nil {
		return nil, attachFailureMap(err, s)
	}

	if s.CurrentTokenKind != token.KindEof {
		return nil, attachFailureMap(&ParseError{
			Kind: UnusedTokensRemain, TokenIndex: s.TokenIndex, ActualKind: s.CurrentTokenKind,
			InnerDetails: "document reader finished before the cursor reached end of input",
		}, s)
	}

	return &ParseOk{
		RootId:    root.NodeId(),
		NodeIdMap: s.Collection,
		LeafIds:   s.Collection.LeafIds(),
		Comments:  snapshot.Comments,
	}, nil
}

func attachFailureMap(err error, s *parsestate.State) *ParseError {
	parseErr, ok := err.(*ParseError)
	if !ok {
		parseErr = &ParseError{Kind: Unknown, TokenIndex: s.TokenIndex, InnerDetails: err.Error()}
	}
	parseErr.NodeIdMapAtFailure = s.Collection
	return parseErr
}
