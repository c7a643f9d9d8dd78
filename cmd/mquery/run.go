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

	"devt.de/mquery/config"
	"devt.de/mquery/nodeid"
	"devt.de/mquery/parser"
)

// settingsFromConfig builds a parser.ParseSettings out of the tool's
// config defaults, the same way the teacher's CreateRuntimeProvider reads
// config before constructing its runtime.
func settingsFromConfig() parser.ParseSettings {
	variant := parser.ParserVariantCombinatorialFastPath
	if config.Str(config.ParserVariant) == "naive" {
		variant = parser.ParserVariantNaiveRecursiveDescent
	}

	return parser.ParseSettings{
		Locale:        config.Str(config.Locale),
		ParserVariant: variant,
		TraceSink:     parser.NewRingBufferTraceSink(config.Int(config.TraceBufferSize)),
	}
}

func runParse(out OutputTerminal, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("parse requires exactly one token-file argument")
	}

	snapshot, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	ok, perr := parser.Parse(snapshot, settingsFromConfig())
	if perr != nil {
		out.WriteString(fmt.Sprintf("parse failed: %v\n", perr))
		return nil
	}

	out.WriteString(fmt.Sprintf("parsed OK: root id %d, %d ast nodes, %d leaves\n",
		ok.RootId, ok.NodeIdMap.AstNodeCount(), len(ok.LeafIds)))
	return nil
}

func runDump(out OutputTerminal, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("dump requires exactly one token-file argument")
	}

	snapshot, err := loadSnapshot(args[0])
	if err != nil {
		return err
	}

	ok, perr := parser.Parse(snapshot, settingsFromConfig())
	if perr != nil {
		out.WriteString(fmt.Sprintf("parse failed: %v\n", perr))
		if m, isMap := perr.NodeIdMapAtFailure.(*nodeid.Collection); isMap {
			out.WriteString(fmt.Sprintf("partial map retained %d committed nodes\n", m.AstNodeCount()))
		}
		return nil
	}

	renderDump(out, ok.RootId, ok.NodeIdMap)
	return nil
}
