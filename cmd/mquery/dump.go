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

	"devt.de/krotik/common/sortutil"
	"devt.de/krotik/common/stringutil"

	"devt.de/mquery/nodeid"
)

// renderDump walks the finished node-id map from rootId and renders two
// tables (id/kind/token range, then children when any node has them) the way the teacher's console renders its symbol/package listings
// (displaySymbols in cli/tool/interpret.go): one flat table per concern
// rather than one dump blob, using stringutil.PrintGraphicStringTable.
func renderDump(out OutputTerminal, rootId uint64, m *nodeid.Collection) {
	ids := collectIds(rootId, m)
	sortutil.UInt64s(ids)

	astRows := []string{"Id", "Kind", "Token range"}
	childRows := []string{"Id", "Children (in attribute order)"}

	for _, id := range ids {
		either, err := m.Xor(id)
		if err != nil {
			continue
		}

		astRows = append(astRows, fmt.Sprint(id), either.Kind().String(), tokenRangeLabel(either))

		if children, ok := m.Children(id); ok && len(children) > 0 {
			labels := make([]string, len(children))
			for i, c := range children {
				labels[i] = fmt.Sprint(c)
			}
			childRows = append(childRows, fmt.Sprint(id), fmt.Sprint(labels))
		}
	}

	out.WriteString(stringutil.PrintGraphicStringTable(astRows, 3, 1, stringutil.SingleDoubleLineTable))
	if len(childRows) > 2 {
		out.WriteString(stringutil.PrintGraphicStringTable(childRows, 2, 1, stringutil.SingleDoubleLineTable))
	}
}

func tokenRangeLabel(either nodeid.Either) string {
	if !either.IsAst() {
		return fmt.Sprintf("[%d, ...) (in progress)", either.TokenIndexStart())
	}
	r := either.Ast.TokenRange()
	return fmt.Sprintf("[%d, %d)", r.TokenIndexStart, r.TokenIndexEnd)
}

// collectIds walks every id reachable from rootId: Children already reports
// them in attribute-index order (Collection.Attach/AttachNewLeaf build the
// slice that way), so a plain depth-first walk is pre-order.
func collectIds(rootId uint64, m *nodeid.Collection) []uint64 {
	var ids []uint64
	var walk func(id uint64)
	walk = func(id uint64) {
		ids = append(ids, id)
		children, _ := m.Children(id)
		for _, c := range children {
			walk(c)
		}
	}
	walk(rootId)
	return ids
}
