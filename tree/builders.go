// Copyright (c) 2024 The morloc project contributors

package tree

// NewNest builds a C_NEST node: a named lexical scope wrapping content.
func NewNest(name string, content Ws) W {
	lhs := NewLabel(Label{Name: name})
	rhs := NewWs(PWs, content)
	return W{Class: CNest, couplet: &Couplet{Lhs: lhs, Rhs: rhs}}
}

// NewPathBlock builds a T_PATH node: scaffolding the parser emits for
// a dotted-selector scope block (e.g. "a.b { ... }" or the desugaring
// of "a.b.foo : ..."), distinct from a literal brace nest only in
// provenance, not in traversal shape.
func NewPathBlock(name string, content Ws) W {
	lhs := NewLabel(Label{Name: name})
	rhs := NewWs(PWs, content)
	return W{Class: TPath, couplet: &Couplet{Lhs: lhs, Rhs: rhs}}
}

// NewTypeDecl builds a T_STRING top-level type declaration: name is
// the declared type's name (compared against manifold labels by Phase
// B), terms is the sequence of type-term nodes attached on match.
func NewTypeDecl(name string, terms Ws) W {
	lhs := NewString(KName, name)
	rhs := NewWs(PWs, terms)
	return W{Class: TString, couplet: &Couplet{Lhs: lhs, Rhs: rhs}}
}

// NewKName builds a bare-name selector (K_NAME).
func NewKName(name string) W {
	return NewString(KName, name)
}

// NewKPath builds a dotted-path selector (K_PATH) from labels in
// outer-to-inner order.
func NewKPath(labels []Label) W {
	var ws Ws
	for _, l := range labels {
		ws = ws.Add(NewLabel(l))
	}
	return NewWs(KPath, ws)
}

// NewKList builds a K_LIST selector wrapping several alternative
// selectors.
func NewKList(selectors []W) W {
	var ws Ws
	for _, s := range selectors {
		ws = ws.Add(s)
	}
	return NewWs(KList, ws)
}

// NewModifier builds a modifier couplet node of class cls (one of
// T_ALIAS, T_LANG, T_CACHE, T_DOC, T_CHECK, T_FAIL, T_ARGUMENT, or a
// T_H0..T_H9 hook slot), selecting lhs with operator op against rhs.
func NewModifier(cls Class, lhs W, rhs W, op byte) W {
	return NewCouplet(cls, lhs, rhs, op)
}
