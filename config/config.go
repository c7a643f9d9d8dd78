/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package config holds tool-level defaults for the cmd/mquery CLI. It is
// deliberately not consulted by the parser package itself: a parsing library
// must not read mutable package state behind a caller's back (spec.md 5),
// so every default here is something the CLI reads once at startup and
// passes down explicitly as a parser.ParseSettings field.
package config

import (
	"fmt"
	"strconv"

	"devt.de/krotik/common/errorutil"
)

// Global variables
// ================

/*
ProductVersion is the current version of the mquery CLI.
*/
const ProductVersion = "0.1.0"

/*
Known configuration options for the mquery CLI.
*/
const (
	ParserVariant   = "ParserVariant"   // "combinatorial" or "naive"
	TraceBufferSize = "TraceBufferSize" // capacity of the RingBufferTraceSink
	Locale          = "Locale"          // reserved for future diagnostic formatting
)

/*
DefaultConfig is the default configuration.
*/
var DefaultConfig = map[string]interface{}{
	ParserVariant:   "combinatorial",
	TraceBufferSize: 256,
	Locale:          "en-US",
}

/*
Config is the actual config which is used.
*/
var Config map[string]interface{}

/*
Initialise the config
*/
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

/*
Str reads a config value as a string value.
*/
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

/*
Int reads a config value as an int value.
*/
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return int(ret)
}

/*
Bool reads a config value as a boolean value.
*/
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))

	errorutil.AssertTrue(err == nil,
		fmt.Sprintf("Could not parse config key %v: %v", key, err))

	return ret
}
