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
	"devt.de/krotik/common/stringutil"
)

// displayErrorTaxonomy lists the closed ParseErrorKind set, grounded on
// displaySymbols's inbuild-function listing (cli/tool/interpret.go).
func displayErrorTaxonomy(ot OutputTerminal) {
	tabData := []string{"ParseErrorKind", "Fires when"}

	rows := [][2]string{
		{"UnexpectedToken", "a reader required one of several token kinds and found a different one"},
		{"UnusedTokensRemain", "the document reader finished but the cursor did not reach end of input"},
		{"InvariantViolated", "an internal engine assumption broke; never caught, even by disambiguation"},
		{"Cancelled", "the supplied cancellation handle reported cancelled mid-parse"},
		{"Unknown", "an error from outside the closed taxonomy was wrapped at the top-level driver"},
		{"ExpectedClosingBracket", "a bracketed construct reached Eof or an unrelated token before its closer"},
		{"InvalidPrimitiveType", "a type-expression reader consumed an identifier that names no primitive type"},
		{"RequiredParameterAfterOptional", "a parameter list has a required parameter after an optional one"},
	}

	for _, r := range rows {
		tabData = append(tabData, r[0], r[1])
	}

	ot.WriteString(stringutil.PrintGraphicStringTable(tabData, 2, 1, stringutil.SingleDoubleLineTable))
}
