/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package nodeid

import (
	"fmt"

	"devt.de/mquery/ast"
)

// UnknownIdError is returned by any lookup keyed by an id absent from both
// ast_by_id and context_by_id.
type UnknownIdError struct {
	Id uint64
}

func (e *UnknownIdError) Error() string {
	return fmt.Sprintf("unknown node id: %d", e.Id)
}

// WrongKindError is returned by the "assert" flavour of a typed child
// lookup when the node at the expected slot exists but is not of the
// required kind (spec.md 4.D).
type WrongKindError struct {
	Id       uint64
	Expected ast.Kind
	Actual   ast.Kind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("node %d has kind %v, expected %v", e.Id, e.Actual, e.Expected)
}
