/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(Locale); res != "en-US" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Str(ParserVariant); res != "combinatorial" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(TraceBufferSize); res != 256 {
		t.Error("Unexpected result:", res)
		return
	}
}
