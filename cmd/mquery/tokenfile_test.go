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
	"io/ioutil"
	"os"
	"testing"

	"devt.de/mquery/token"
)

func writeTokenFile(t *testing.T, content string) string {
	t.Helper()
	f, err := ioutil.TempFile("", "mquery-tokens-*.json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func TestLoadSnapshotDecodesKnownKinds(t *testing.T) {
	path := writeTokenFile(t, `{
		"tokens": [
			{"kind": "NumericLiteral", "data": "1", "position_start": {"line": 0, "column": 0, "code_unit": 0}, "position_end": {"line": 0, "column": 1, "code_unit": 1}},
			{"kind": "Plus", "data": "+", "position_start": {"line": 0, "column": 2, "code_unit": 2}, "position_end": {"line": 0, "column": 3, "code_unit": 3}},
			{"kind": "NumericLiteral", "data": "2", "position_start": {"line": 0, "column": 4, "code_unit": 4}, "position_end": {"line": 0, "column": 5, "code_unit": 5}}
		]
	}`)

	snap, err := loadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Tokens) != 3 {
		t.Fatalf("expected three tokens, got %d", len(snap.Tokens))
	}
	if snap.Tokens[0].Kind != token.KindNumericLiteral || snap.Tokens[0].Data != "1" {
		t.Error("expected the first token to decode to the numeric literal 1", snap.Tokens[0])
	}
	if snap.Tokens[1].Kind != token.KindPlus {
		t.Error("expected the second token to decode to Plus", snap.Tokens[1])
	}
	if snap.Tokens[0].PositionEnd.CodeUnit != 1 {
		t.Error("expected the position fields to carry through the conversion", snap.Tokens[0].PositionEnd)
	}
}

func TestLoadSnapshotRejectsUnknownKind(t *testing.T) {
	path := writeTokenFile(t, `{"tokens": [{"kind": "NotARealKind", "data": "x"}]}`)

	if _, err := loadSnapshot(path); err == nil {
		t.Fatal("expected an error for an unrecognized token kind")
	}
}

func TestLoadSnapshotRejectsMissingFile(t *testing.T) {
	if _, err := loadSnapshot("/nonexistent/path/to/a/token/file.json"); err == nil {
		t.Fatal("expected an error for a missing token file")
	}
}
