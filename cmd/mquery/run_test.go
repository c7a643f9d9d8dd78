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
	"strings"
	"testing"
)

type capturingTerminal struct {
	written []string
}

func (c *capturingTerminal) WriteString(s string) {
	c.written = append(c.written, s)
}

func (c *capturingTerminal) all() string {
	return strings.Join(c.written, "")
}

func TestRunParseReportsSuccess(t *testing.T) {
	path := writeTokenFile(t, `{"tokens": [{"kind": "NumericLiteral", "data": "1"}]}`)

	out := &capturingTerminal{}
	if err := runParse(out, []string{path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.all(), "parsed OK") {
		t.Error("expected a success message", out.all())
	}
}

func TestRunParseReportsFailure(t *testing.T) {
	path := writeTokenFile(t, `{"tokens": [{"kind": "Plus", "data": "+"}]}`)

	out := &capturingTerminal{}
	if err := runParse(out, []string{path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.all(), "parse failed") {
		t.Error("expected a failure message", out.all())
	}
}

func TestRunParseRequiresExactlyOneArgument(t *testing.T) {
	out := &capturingTerminal{}
	if err := runParse(out, nil); err == nil {
		t.Fatal("expected an error when no token-file argument is given")
	}
}

func TestRunDumpRendersTables(t *testing.T) {
	path := writeTokenFile(t, `{"tokens": [
		{"kind": "NumericLiteral", "data": "1"},
		{"kind": "Plus", "data": "+"},
		{"kind": "NumericLiteral", "data": "2"}
	]}`)

	out := &capturingTerminal{}
	if err := runDump(out, []string{path}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.all(), "ArithmeticExpression") {
		t.Error("expected the dump to mention the folded ArithmeticExpression kind", out.all())
	}
}

func TestHandleConsoleLineDispatchesSym(t *testing.T) {
	out := &capturingTerminal{}
	handleConsoleLine(out, "@sym")
	if !strings.Contains(out.all(), "InvariantViolated") {
		t.Error("expected @sym to list the ParseErrorKind taxonomy", out.all())
	}
}
