// Copyright (c) 2024 The morloc project contributors

package link

import (
	"testing"

	"github.com/morloc-lang/manifold-link/diag"
	"github.com/morloc-lang/manifold-link/tree"
)

func TestDefaultFunctionNameVerbatimByDefault(t *testing.T) {
	got := DefaultFunctionName(tree.Label{Name: "my.weird name"}, Options{})
	if got != "my.weird name" {
		t.Fatalf("with NormalizeNames off, name must copy verbatim, got %q", got)
	}
}

func TestDefaultFunctionNameNormalizes(t *testing.T) {
	got := DefaultFunctionName(tree.Label{Name: "my.weird name"}, Options{NormalizeNames: true})
	if got == "my.weird name" {
		t.Fatal("with NormalizeNames on, a non-bare identifier must be rewritten")
	}
}

func TestDefaultFunctionNameLeavesBareIdentifierAlone(t *testing.T) {
	got := DefaultFunctionName(tree.Label{Name: "already_snake"}, Options{NormalizeNames: true})
	if got != "already_snake" {
		t.Fatalf("a bare identifier must pass through unchanged even when normalizing, got %q", got)
	}
}

func TestPhaseASetsDefaultOnlyWhenUnset(t *testing.T) {
	fresh := &tree.Manifold{UID: 1}
	preset := &tree.Manifold{UID: 2, Function: "explicit"}
	top := tree.NewWsOf(tree.NewManifoldNode(tree.Label{Name: "foo"}, fresh))
	top = top.Add(tree.NewManifoldNode(tree.Label{Name: "bar"}, preset))

	PhaseA(top, Options{}, diag.Discard())

	if fresh.Function != "foo" {
		t.Fatalf("want default function %q, got %q", "foo", fresh.Function)
	}
	if preset.Function != "explicit" {
		t.Fatalf("PhaseA must not overwrite an already-set function, got %q", preset.Function)
	}
}

func TestPhaseBBindsTypeByName(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	typeNode := tree.NewTypeDecl("foo", tree.NewWsOf(tree.NewString(tree.PString, "int")))
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(typeNode)

	PhaseB(top, diag.Discard())

	if m.Type.Empty() {
		t.Fatal("PhaseB must bind the matching type declaration")
	}
}

func TestPhaseBIgnoresNonMatchingType(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	typeNode := tree.NewTypeDecl("bar", tree.NewWsOf(tree.NewString(tree.PString, "int")))
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(typeNode)

	PhaseB(top, diag.Discard())

	if !m.Type.Empty() {
		t.Fatal("PhaseB must not bind a type declared under a different name")
	}
}

func TestPhaseBWarnsOnRedeclaration(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	first := tree.NewTypeDecl("foo", tree.NewWsOf(tree.NewString(tree.PString, "int")))
	second := tree.NewTypeDecl("foo", tree.NewWsOf(tree.NewString(tree.PString, "str")))
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(first)
	top = top.Add(second)

	collector := &diag.Collector{}
	PhaseB(top, collector)

	if collector.Count(diag.TypeRedeclaration) == 0 {
		t.Fatal("a second type declaration for the same name must raise TypeRedeclaration")
	}
}

func TestPhaseCSetsLang(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	mod := tree.NewModifier(tree.TLang, tree.NewKName("foo"), tree.NewString(tree.PString, "py"), '=')
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(mod)

	PhaseC(top, diag.Discard())

	if m.Lang != "py" {
		t.Fatalf("want lang %q, got %q", "py", m.Lang)
	}
}

func TestPhaseCAliasRenamesFunction(t *testing.T) {
	m := &tree.Manifold{UID: 1, Function: "foo"}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	mod := tree.NewModifier(tree.TAlias, tree.NewKName("foo"), tree.NewString(tree.PString, "renamed"), '=')
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(mod)

	PhaseC(top, diag.Discard())

	if m.Function != "renamed" {
		t.Fatalf("want function %q, got %q", "renamed", m.Function)
	}
}

func TestPhaseCHookAppend(t *testing.T) {
	target := &tree.Manifold{UID: 1}
	check := &tree.Manifold{UID: 2}
	targetNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, target)
	checkRefNode := tree.NewManifoldNode(tree.Label{Name: "chk"}, check)

	// rhs of a hook modifier is a one-element outer sequence wrapping
	// the real replacement/append sequence, per §4.4.2.
	innerList := tree.NewWsOf(checkRefNode)
	wrapped := tree.NewWs(tree.PWs, innerList)
	rhs := tree.NewWs(tree.PWs, tree.NewWsOf(wrapped))

	mod := tree.NewModifier(tree.TCheck, tree.NewKName("foo"), rhs, '+')
	top := tree.NewWsOf(targetNode)
	top = top.Add(mod)

	PhaseC(top, diag.Discard())

	if target.Check.Length() != 1 {
		t.Fatalf("want 1 appended check entry, got %d", target.Check.Length())
	}
}

func TestPhaseCUnsupportedArgumentSubtractWarns(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	arg := tree.NewCouplet(tree.PArgument, tree.NewKName("x"), tree.NewString(tree.PString, "1"), '=')
	mod := tree.NewModifier(tree.TArgument, tree.NewKName("foo"), arg, '-')
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(mod)

	collector := &diag.Collector{}
	PhaseC(top, collector)

	if collector.Count(diag.UnsupportedOp) == 0 {
		t.Fatal("subtracting an argument must raise UnsupportedOp")
	}
}

func TestRunExecutesAllThreePhases(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	manifoldNode := tree.NewManifoldNode(tree.Label{Name: "foo"}, m)
	typeNode := tree.NewTypeDecl("foo", tree.NewWsOf(tree.NewString(tree.PString, "int")))
	mod := tree.NewModifier(tree.TLang, tree.NewKName("foo"), tree.NewString(tree.PString, "py"), '=')
	top := tree.NewWsOf(manifoldNode)
	top = top.Add(typeNode)
	top = top.Add(mod)

	Run(top, nil, Options{})

	if m.Function != "foo" || m.Type.Empty() || m.Lang != "py" {
		t.Fatalf("Run must apply all three phases, got function=%q type-empty=%v lang=%q",
			m.Function, m.Type.Empty(), m.Lang)
	}
}
