// Copyright (c) 2024 The morloc project contributors

package tree

import "fmt"

// Label is a (name, qualifier?) pair used for name comparison. The
// qualifier is ignored both by Phase B's type-name comparison (§4.3)
// and by LabelEqual's selector matching; only String renders it.
type Label struct {
	Name      string
	Qualifier string // empty when absent
}

func (l Label) String() string {
	if l.Qualifier == "" {
		return l.Name
	}
	return l.Name + "@" + l.Qualifier
}

// LabelEqual compares two labels the way basename_match does: by name
// only. Qualifiers are not part of manifold identity matching.
func LabelEqual(a, b Label) bool {
	return a.Name == b.Name
}

// Couplet is a {lhs, rhs, op} triple. lhs is a selector (K_NAME,
// K_LABEL, K_PATH, K_LIST) or, for C_MANIFOLD nodes, the manifold's
// declared label; rhs is the attached value or, for C_MANIFOLD, the
// Manifold record itself.
type Couplet struct {
	Lhs W
	Rhs W
	Op  byte // '=', '+', or '-'
}

// W is a tagged node: a Class plus exactly one populated payload,
// selected by ValueType(Class). Next links a node into the Ws
// sequence that owns it; it is nil for a node not (yet) linked, or
// freshly isolated.
type W struct {
	Class Class

	str      string
	label    Label
	ws       Ws
	couplet  *Couplet
	manifold *Manifold

	Next *W
}

// NewString builds a string-payload node.
func NewString(cls Class, s string) W {
	if ValueType(cls) != VString {
		panic(fmt.Sprintf("tree: class %s does not carry a string payload", cls))
	}
	return W{Class: cls, str: s}
}

// NewLabel builds a label-payload node (K_LABEL).
func NewLabel(l Label) W {
	return W{Class: KLabel, label: l}
}

// NewWs builds a sequence-payload node.
func NewWs(cls Class, ws Ws) W {
	if ValueType(cls) != VWs {
		panic(fmt.Sprintf("tree: class %s does not carry a sequence payload", cls))
	}
	return W{Class: cls, ws: ws}
}

// NewCouplet builds a couplet-payload node.
func NewCouplet(cls Class, lhs, rhs W, op byte) W {
	if ValueType(cls) != VCouplet {
		panic(fmt.Sprintf("tree: class %s does not carry a couplet payload", cls))
	}
	return W{Class: cls, couplet: &Couplet{Lhs: lhs, Rhs: rhs, Op: op}}
}

// NewManifoldNode wraps label/manifold into a C_MANIFOLD couplet node,
// per §3's invariant that every C_MANIFOLD node's couplet has a label
// lhs and a Manifold rhs.
func NewManifoldNode(label Label, m *Manifold) W {
	lhs := NewLabel(label)
	rhs := W{Class: PManifold, manifold: m}
	return W{Class: CManifold, couplet: &Couplet{Lhs: lhs, Rhs: rhs, Op: '='}}
}

// GString projects a string payload, asserting the class carries one.
// Mirrors g_string's debug-assertion-on-mismatch contract (§9).
func (w W) GString() (string, bool) {
	if ValueType(w.Class) != VString {
		return "", false
	}
	return w.str, true
}

// GLabel projects a label payload.
func (w W) GLabel() (Label, bool) {
	if ValueType(w.Class) != VLabel {
		return Label{}, false
	}
	return w.label, true
}

// GWs projects a sequence payload.
func (w W) GWs() (Ws, bool) {
	if ValueType(w.Class) != VWs {
		return Ws{}, false
	}
	return w.ws, true
}

// GCouplet projects a couplet payload.
func (w W) GCouplet() (*Couplet, bool) {
	if ValueType(w.Class) != VCouplet {
		return nil, false
	}
	return w.couplet, true
}

// GManifold projects the Manifold record carried by a C_MANIFOLD
// node's rhs. It accepts either the outer couplet node or the bare
// P_MANIFOLD rhs leaf, since callers commonly hold either.
func (w W) GManifold() (*Manifold, bool) {
	if w.Class == PManifold && w.manifold != nil {
		return w.manifold, true
	}
	if w.Class == CManifold && w.couplet != nil {
		return w.couplet.Rhs.GManifold()
	}
	return nil, false
}

// Lhs/Rhs/Op are convenience accessors for couplet-shaped nodes; they
// panic via GCouplet's zero-value semantics (nil) when misused, the
// same failure mode as a nil dereference on a mismatched C union
// accessor.
func (w W) Lhs() W   { c, _ := w.GCouplet(); return c.Lhs }
func (w W) Rhs() W   { c, _ := w.GCouplet(); return c.Rhs }
func (w W) Op() byte { c, _ := w.GCouplet(); return c.Op }

// IsValid reports whether w's class maps to a payload shape. It does
// not check that the payload field itself is populated.
func (w W) IsValid() bool {
	return ValueType(w.Class) != VInvalid
}

// Isolate returns a copy of w with Next cleared, detaching it from
// whatever sequence it was linked into. Used when a node is re-wrapped
// into a freshly split couplet (ws_isolate in the C original).
func (w W) Isolate() W {
	n := w
	n.Next = nil
	return n
}

// RebuildCouplet returns a copy of w with its couplet payload replaced
// by c. w's class must already carry a couplet payload; used by
// walk.IfPath to rebuild a selector couplet with a shortened path
// without reaching into tree's unexported fields.
func RebuildCouplet(w W, c *Couplet) W {
	n := w.Isolate()
	n.couplet = c
	return n
}

// Clone deep-copies w: sequences and couplets are copied recursively,
// the Manifold pointer (a record shared by every node that refers to
// it, not owned by any one node) is shared, matching tzgo's Prim.Clone, which copies structural payload
// but shares leaf byte slices it doesn't own exclusively.
func (w W) Clone() W {
	n := w.Isolate()
	if !w.ws.Empty() {
		n.ws = w.ws.Clone()
	}
	if w.couplet != nil {
		lhs := w.couplet.Lhs.Clone()
		rhs := w.couplet.Rhs.Clone()
		n.couplet = &Couplet{Lhs: lhs, Rhs: rhs, Op: w.couplet.Op}
	}
	return n
}
