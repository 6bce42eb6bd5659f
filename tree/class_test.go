// Copyright (c) 2024 The morloc project contributors

package tree

import "testing"

func TestValueTypeIsTotal(t *testing.T) {
	// every declared class must project to a concrete payload shape
	for c := CNest; c <= PManifold; c++ {
		if ValueType(c) == VInvalid {
			t.Errorf("class %s (%d) has no ValueType mapping", c, c)
		}
	}
}

func TestIsModifier(t *testing.T) {
	cases := []struct {
		class Class
		want  bool
	}{
		{TAlias, true},
		{TLang, true},
		{TH0, true},
		{TH9, true},
		{TCheck, true},
		{TFail, true},
		{TArgument, true},
		{TCache, true},
		{TDoc, true},
		{TPath, false},
		{CNest, false},
		{CManifold, false},
		{TString, false},
	}
	for _, c := range cases {
		if got := IsModifier(c.class); got != c.want {
			t.Errorf("IsModifier(%s) = %v, want %v", c.class, got, c.want)
		}
	}
}

func TestHookIndex(t *testing.T) {
	for i, cls := range []Class{TH0, TH1, TH2, TH3, TH4, TH5, TH6, TH7, TH8, TH9} {
		if got := HookIndex(cls); got != i {
			t.Errorf("HookIndex(%s) = %d, want %d", cls, got, i)
		}
	}
	if HookIndex(TAlias) != -1 {
		t.Error("HookIndex of a non-hook class must be -1")
	}
}
