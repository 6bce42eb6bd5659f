// Copyright (c) 2024 The morloc project contributors

package walk

import "github.com/morloc-lang/manifold-link/tree"

// SelectorLabels normalizes any selector shape (K_NAME, K_LABEL, or
// K_PATH) to its sequence of remaining labels, so BasenameMatch and
// IfPath don't need to special-case each lhs class. A bare name or
// label is a path of length one; a K_PATH exposes however many
// segments recursion hasn't yet consumed.
func SelectorLabels(sel tree.W) ([]tree.Label, bool) {
	c, ok := sel.GCouplet()
	if !ok {
		return nil, false
	}
	return lhsLabels(c.Lhs)
}

func lhsLabels(lhs tree.W) ([]tree.Label, bool) {
	switch lhs.Class {
	case tree.KName:
		s, ok := lhs.GString()
		if !ok {
			return nil, false
		}
		return []tree.Label{{Name: s}}, true
	case tree.KLabel:
		l, ok := lhs.GLabel()
		if !ok {
			return nil, false
		}
		return []tree.Label{l}, true
	case tree.KPath:
		ws, ok := lhs.GWs()
		if !ok {
			return nil, false
		}
		labels := make([]tree.Label, 0, ws.Length())
		for _, w := range ws.Slice() {
			l, ok := w.GLabel()
			if !ok {
				return nil, false
			}
			labels = append(labels, l)
		}
		return labels, true
	default:
		return nil, false
	}
}

// IsSelectorClass reports whether cls is a shape a modifier's lhs may
// legally carry: a bare name, a qualified label, or a path/list of
// either. Anything else reaching a selector position is ILLEGAL_SELECTOR.
func IsSelectorClass(cls tree.Class) bool {
	switch cls {
	case tree.KName, tree.KLabel, tree.KPath, tree.KList:
		return true
	default:
		return false
	}
}

// popHead returns a copy of selector p with the head label stripped
// from its path. The rebuilt lhs is always K_PATH-shaped so repeated
// consumption composes cleanly regardless of the original lhs class.
func popHead(p tree.W) tree.W {
	labels, ok := SelectorLabels(p)
	if !ok || len(labels) == 0 {
		return p
	}
	rest := labels[1:]
	c, _ := p.GCouplet()
	newLhs := tree.NewWs(tree.KPath, labelsToWs(rest))
	newCouplet := tree.Couplet{Lhs: newLhs, Rhs: c.Rhs, Op: c.Op}
	return tree.RebuildCouplet(p, &newCouplet)
}

func labelsToWs(labels []tree.Label) tree.Ws {
	var ws tree.Ws
	for _, l := range labels {
		ws = ws.Add(tree.NewLabel(l))
	}
	return ws
}
