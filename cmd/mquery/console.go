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
	"fmt"
	"os"
	"strings"

	"devt.de/krotik/common/termutil"

	"devt.de/mquery/config"
)

// runConsole is the interactive shell, grounded on CLIInterpreter.Interpret's
// history-mixin REPL loop (cli/tool/interpret.go): each plain line is the
// path to a token file, parsed immediately; "@dump <path>" parses and dumps
// the node-id map; "@sym" (or "?") lists the engine's closed
// ParseErrorKind taxonomy the way "@sym"/"@std" list ECAL's built-ins.
func runConsole() error {
	term, err := termutil.NewConsoleLineTerminal(os.Stdout)
	if err != nil {
		return err
	}

	term, err = termutil.AddHistoryMixin(term, "", isExitLine)
	if err != nil {
		return err
	}

	if err := term.StartTerm(); err != nil {
		return err
	}
	defer term.StopTerm()

	fmt.Fprintln(os.Stdout, fmt.Sprintf("mquery %v", config.ProductVersion))
	fmt.Fprintln(os.Stdout, "Enter a token-file path to parse it, '@sym' for the error taxonomy, 'q' or 'quit' to exit")

	line, err := term.NextLine()
	for err == nil && !isExitLine(line) {
		handleConsoleLine(term, strings.TrimSpace(line))
		line, err = term.NextLine()
	}

	return nil
}

func isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}

func handleConsoleLine(ot OutputTerminal, line string) {
	switch {
	case line == "":
		return
	case line == "?" || line == "@sym":
		displayErrorTaxonomy(ot)
	case strings.HasPrefix(line, "@dump "):
		if err := runDump(ot, []string{strings.TrimSpace(line[len("@dump "):])}); err != nil {
			ot.WriteString(fmt.Sprintf("Error: %v\n", err))
		}
	default:
		if err := runParse(ot, []string{line}); err != nil {
			ot.WriteString(fmt.Sprintf("Error: %v\n", err))
		}
	}
}
