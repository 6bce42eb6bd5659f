// Copyright (c) 2024 The morloc project contributors

package walk

import (
	"testing"

	"github.com/morloc-lang/manifold-link/tree"
)

func manifoldWs(labels ...string) tree.Ws {
	var ws tree.Ws
	for i, l := range labels {
		ws = ws.Add(tree.NewManifoldNode(tree.Label{Name: l}, &tree.Manifold{UID: i + 1}))
	}
	return ws
}

func TestRFilterFindsManifoldsInsideNest(t *testing.T) {
	inner := manifoldWs("foo", "bar")
	top := tree.NewWsOf(tree.NewNest("scope", inner))

	found := RFilter(top, RecurseMost, IsManifold)
	if found.Length() != 2 {
		t.Fatalf("want 2 manifolds found through a nest, got %d", found.Length())
	}
}

func TestRFilterRespectsRecurseNone(t *testing.T) {
	inner := manifoldWs("foo")
	top := tree.NewWsOf(tree.NewNest("scope", inner))

	found := RFilter(top, RecurseNone, IsManifold)
	if found.Length() != 0 {
		t.Fatalf("RecurseNone must not descend, got %d matches", found.Length())
	}
}

func TestTwoModCartesianProduct(t *testing.T) {
	xs := manifoldWs("a", "b")
	ys := manifoldWs("c")

	var pairs int
	TwoMod(xs, ys, func(x, y tree.W) { pairs++ })
	if pairs != 2 {
		t.Fatalf("want 2 pairs (2x1), got %d", pairs)
	}
}

func TestTwoModEmptySideIsNoop(t *testing.T) {
	xs := manifoldWs("a")
	var ys tree.Ws
	var called bool
	TwoMod(xs, ys, func(x, y tree.W) { called = true })
	if called {
		t.Fatal("TwoMod must not call mutate when either side is empty")
	}
}

func TestMapSplitFansOutKList(t *testing.T) {
	sel := tree.NewKList([]tree.W{tree.NewKName("a"), tree.NewKName("b")})
	mod := tree.NewModifier(tree.TLang, sel, tree.NewString(tree.PString, "py"), '=')
	ws := tree.NewWsOf(mod)

	split := MapSplit(ws, func(w tree.W) tree.Ws {
		c, ok := w.GCouplet()
		if !ok || c.Lhs.Class != tree.KList {
			return tree.NewWsOf(w)
		}
		selectors, _ := c.Lhs.GWs()
		var out tree.Ws
		for _, s := range selectors.Slice() {
			out = out.Add(tree.NewModifier(w.Class, s, c.Rhs, c.Op))
		}
		return out
	})
	if split.Length() != 2 {
		t.Fatalf("want 2 split modifiers, got %d", split.Length())
	}
}

func TestRecursePathEntersNestUnconditionally(t *testing.T) {
	inner := manifoldWs("foo")
	nest := tree.NewNest("unrelated", inner)

	selector := tree.NewModifier(tree.TAlias, tree.NewKName("foo"), tree.NewString(tree.PString, "f2"), '=')
	children, ok := RecursePath(nest, selector)
	if !ok || len(children) != 1 {
		t.Fatal("RecursePath must always descend into a C_NEST regardless of the active selector")
	}
}

func TestRecursePathGatesTPathByLabel(t *testing.T) {
	inner := manifoldWs("foo")
	block := tree.NewPathBlock("a", inner)

	matching := tree.NewModifier(tree.TAlias, tree.NewKPath([]tree.Label{{Name: "a"}, {Name: "foo"}}), tree.NewString(tree.PString, "f2"), '=')
	if _, ok := RecursePath(block, matching); !ok {
		t.Fatal("RecursePath must descend into a T_PATH whose label matches the selector head")
	}

	mismatched := tree.NewModifier(tree.TAlias, tree.NewKPath([]tree.Label{{Name: "z"}, {Name: "foo"}}), tree.NewString(tree.PString, "f2"), '=')
	if _, ok := RecursePath(block, mismatched); ok {
		t.Fatal("RecursePath must not descend into a T_PATH whose label does not match")
	}
}

func TestBasenameMatchRequiresSingleRemainingLabel(t *testing.T) {
	foo := tree.NewManifoldNode(tree.Label{Name: "foo"}, &tree.Manifold{UID: 1})

	single := tree.NewModifier(tree.TAlias, tree.NewKName("foo"), tree.NewString(tree.PString, "x"), '=')
	if !BasenameMatch(foo, single) {
		t.Fatal("a single-label selector matching the manifold's name must match")
	}

	multi := tree.NewModifier(tree.TAlias, tree.NewKPath([]tree.Label{{Name: "a"}, {Name: "foo"}}), tree.NewString(tree.PString, "x"), '=')
	if BasenameMatch(foo, multi) {
		t.Fatal("a multi-label selector must not match before its path is consumed down to one label")
	}
}

func TestIfPathPopsHeadOnTPath(t *testing.T) {
	block := tree.NewPathBlock("a", tree.Ws{})
	sel := tree.NewModifier(tree.TAlias, tree.NewKPath([]tree.Label{{Name: "a"}, {Name: "foo"}}), tree.NewString(tree.PString, "x"), '=')

	next := IfPath(sel, block)
	labels, ok := SelectorLabels(next)
	if !ok || len(labels) != 1 || labels[0].Name != "foo" {
		t.Fatalf("IfPath must strip the matched head label, got %+v, %v", labels, ok)
	}
}

func TestIfPathPopsHeadOnMatchingNest(t *testing.T) {
	nest := tree.NewNest("a", tree.Ws{})
	sel := tree.NewModifier(tree.TAlias, tree.NewKPath([]tree.Label{{Name: "a"}, {Name: "foo"}}), tree.NewString(tree.PString, "x"), '=')

	next := IfPath(sel, nest)
	labels, ok := SelectorLabels(next)
	if !ok || len(labels) != 1 || labels[0].Name != "foo" {
		t.Fatalf("IfPath must strip a C_NEST's own matching label, got %+v, %v", labels, ok)
	}
}

func TestIfPathLeavesSelectorUnchangedOnMismatchedNest(t *testing.T) {
	nest := tree.NewNest("unrelated", tree.Ws{})
	sel := tree.NewModifier(tree.TAlias, tree.NewKPath([]tree.Label{{Name: "a"}, {Name: "foo"}}), tree.NewString(tree.PString, "x"), '=')

	next := IfPath(sel, nest)
	labels, ok := SelectorLabels(next)
	if !ok || len(labels) != 2 {
		t.Fatalf("IfPath must pass the selector through unchanged on a non-matching nest, got %+v, %v", labels, ok)
	}
}
