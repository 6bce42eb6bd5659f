// Copyright (c) 2024 The morloc project contributors

package link

import (
	"github.com/morloc-lang/manifold-link/diag"
	"github.com/morloc-lang/manifold-link/tree"
	"github.com/morloc-lang/manifold-link/walk"
)

// PhaseB binds declared types to manifolds by name. §4.3. M is every
// manifold reachable through composition recursion; T is every
// top-level (non-recursive) type declaration. Comparison is on the
// label's Name only — qualifiers are ignored at this point.
func PhaseB(top tree.Ws, sink diag.Sink) {
	manifolds := walk.RFilter(top, walk.RecurseComposition, walk.IsManifold)
	types := walk.RFilter(top, walk.RecurseNone, walk.IsType)

	walk.TwoMod(manifolds, types, func(mw, tw tree.W) {
		setManifoldType(mw, tw, sink)
	})
}

func setManifoldType(mw, tw tree.W, sink diag.Sink) {
	mLabel, ok := mw.Lhs().GLabel()
	if !ok {
		sink.Warnf(diag.Structural, "manifold node has no label to match against a type declaration")
		return
	}
	tName, ok := tw.Lhs().GString()
	if !ok {
		sink.Warnf(diag.Structural, "type declaration has no name")
		return
	}
	if mLabel.Name != tName {
		return
	}
	m, ok := mw.GManifold()
	if !ok {
		sink.Warnf(diag.ClassAssertion, "expected a manifold node for %q, got class %s", mLabel.Name, mw.Class)
		return
	}
	if !m.Type.Empty() {
		sink.Warnf(diag.TypeRedeclaration, "redeclaration of type for manifold %q", mLabel.Name)
		return
	}
	rhsWs, ok := tw.Rhs().GWs()
	if !ok {
		sink.Warnf(diag.Structural, "type declaration %q has no body sequence", tName)
		return
	}
	m.Type = rhsWs
}
