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

import "fmt"

// OutputTerminal is the same narrow sink the teacher's cli/tool package
// writes console output through (cli/tool/helper.go's OutputTerminal),
// letting renderDump/runParse write identically whether the destination is
// stdout or an interactive termutil.ConsoleLineTerminal.
type OutputTerminal interface {
	WriteString(s string)
}

type stdoutTerminal struct{}

func (stdoutTerminal) WriteString(s string) {
	fmt.Print(s)
}
