/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"devt.de/krotik/common/fileutil"

	"devt.de/mquery/token"
)

// tokenFile is the on-disk shape cmd/mquery reads in place of source text.
// Text-to-token lexing is an external collaborator (spec.md 6 LexerSnapshot,
// SPEC_FULL.md 5 Non-goals), so the CLI never tokenizes anything itself: it
// loads a token stream some other tool already produced.
type tokenFile struct {
	Tokens []tokenJSON `json:"tokens"`
}

type tokenJSON struct {
	Kind          string       `json:"kind"`
	Data          string       `json:"data"`
	PositionStart positionJSON `json:"position_start"`
	PositionEnd   positionJSON `json:"position_end"`
}

// positionJSON mirrors token.Position field-for-field (same order, same
// types) so it converts with a plain type conversion below.
type positionJSON struct {
	LineCodeUnit int `json:"column"`
	LineNumber   int `json:"line"`
	CodeUnit     int `json:"code_unit"`
}

// loadSnapshot reads path as a tokenFile and converts it to a token.Snapshot.
// The existence check is split from the read the way LoadStdlibPlugins
// (cli/tool/interpret.go) checks fileutil.PathExists before ioutil.ReadFile,
// so a missing file is reported as "no such token file" rather than a raw
// os.PathError.
func loadSnapshot(path string) (token.Snapshot, error) {
	if ok, _ := fileutil.PathExists(path); !ok {
		return token.Snapshot{}, fmt.Errorf("no such token file: %s", path)
	}

	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return token.Snapshot{}, err
	}

	var tf tokenFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return token.Snapshot{}, fmt.Errorf("%s is not a valid token file: %w", path, err)
	}

	toks := make([]token.Token, len(tf.Tokens))
	for i, tj := range tf.Tokens {
		kind, ok := token.KindFromName(tj.Kind)
		if !ok {
			return token.Snapshot{}, fmt.Errorf("%s: token %d has unknown kind %q", path, i, tj.Kind)
		}
		toks[i] = token.Token{
			Kind:          kind,
			Data:          tj.Data,
			PositionStart: token.Position(tj.PositionStart),
			PositionEnd:   token.Position(tj.PositionEnd),
		}
	}

	return token.Snapshot{Tokens: toks}, nil
}
