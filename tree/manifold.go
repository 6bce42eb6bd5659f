// Copyright (c) 2024 The morloc project contributors

package tree

// Manifold is the mutable record the linking pass populates. Its UID
// is assigned by the (external) parser and never changes; every other
// field starts zero-valued and is filled in by Phase A, B, and C.
//
// Hook slots, Check, Fail, and Args hold references to other
// manifolds that live elsewhere in the scope tree: ownership stays
// with the tree, these fields are non-owning (§9's "cyclic
// back-references" note) — they share node identity with whatever
// produced them, they do not copy the referenced manifold.
type Manifold struct {
	UID int

	Function string
	Lang     string

	Type Ws // optional sequence of type-term nodes

	H0, H1, H2, H3, H4, H5, H6, H7, H8, H9 Ws

	Check Ws
	Fail  Ws
	Args  Ws // sequence of P_ARGUMENT nodes wrapping argument couplets

	Cache Ws // sequence of P_STRING nodes
	Doc   Ws // sequence of P_STRING nodes
}

// HookSlot returns a pointer to the Ws field backing hook index i
// (0-9), or nil if i is out of range. Used by link.addModifier so the
// ten T_H* cases can share one code path instead of a ten-way switch
// duplicated at each call site.
func (m *Manifold) HookSlot(i int) *Ws {
	switch i {
	case 0:
		return &m.H0
	case 1:
		return &m.H1
	case 2:
		return &m.H2
	case 3:
		return &m.H3
	case 4:
		return &m.H4
	case 5:
		return &m.H5
	case 6:
		return &m.H6
	case 7:
		return &m.H7
	case 8:
		return &m.H8
	case 9:
		return &m.H9
	default:
		return nil
	}
}
