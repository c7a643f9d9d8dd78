/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Command mquery is a thin CLI over the parser package: it reads a
// pre-lexed token stream from disk (text-to-token lexing is an external
// collaborator, never this tool's job) and either parses it once ("parse"),
// parses it and dumps the resulting node-id map ("dump"), or repeatedly
// reads token-file paths from an interactive console ("console").
package main

import (
	"flag"
	"fmt"
	"os"

	"devt.de/mquery/config"
)

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)

	flag.Usage = func() {
		fmt.Println(fmt.Sprintf("Usage of %s <command>", os.Args[0]))
		fmt.Println()
		fmt.Println(fmt.Sprintf("mquery %v - Power Query / M formula language parser core", config.ProductVersion))
		fmt.Println()
		fmt.Println("Available commands:")
		fmt.Println()
		fmt.Println("    parse <token-file>   Parse a token stream and report success or failure")
		fmt.Println("    dump <token-file>    Parse a token stream and dump the node-id map")
		fmt.Println("    console              Interactive console (default)")
		fmt.Println()
		fmt.Println(fmt.Sprintf("Use %s <command> -help for more information about a given command.", os.Args[0]))
		fmt.Println()
	}

	var err error

	if err = flag.CommandLine.Parse(os.Args[1:]); err == nil {
		args := flag.Args()

		if len(args) == 0 {
			err = runConsole()
		} else {
			switch args[0] {
			case "parse":
				err = runParse(stdoutTerminal{}, args[1:])
			case "dump":
				err = runDump(stdoutTerminal{}, args[1:])
			case "console":
				err = runConsole()
			default:
				flag.Usage()
			}
		}
	}

	if err != nil {
		fmt.Println(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
