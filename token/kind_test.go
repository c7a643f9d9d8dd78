/*
 * mquery
 *
 * Copyright 2026 The mquery Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "testing"

func TestKindStringKnownAndUnknown(t *testing.T) {
	if s := KindIdentifier.String(); s != "Identifier" {
		t.Error("expected KindIdentifier to render as \"Identifier\", got", s)
	}
	if s := Kind(-1).String(); s != "Unknown" {
		t.Error("expected an unlisted kind to render as \"Unknown\", got", s)
	}
}

func TestKindFromNameRoundTripsEveryListedKind(t *testing.T) {
	for k, name := range kindNames {
		got, ok := KindFromName(name)
		if !ok {
			t.Errorf("expected KindFromName(%q) to succeed", name)
			continue
		}
		if got != k {
			t.Errorf("expected KindFromName(%q) to return %v, got %v", name, k, got)
		}
	}
}

func TestKindFromNameRejectsUnknownName(t *testing.T) {
	if _, ok := KindFromName("NotARealKindName"); ok {
		t.Error("expected an unrecognized name to fail")
	}
}

func TestIsKeywordIdentifier(t *testing.T) {
	if !IsKeywordIdentifier(KindKeywordHashTable) {
		t.Error("expected #table's kind to report as a keyword identifier")
	}
	if IsKeywordIdentifier(KindIdentifier) {
		t.Error("a plain identifier is not a \"#keyword\"-family kind")
	}
}
