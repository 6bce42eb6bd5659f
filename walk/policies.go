// Copyright (c) 2024 The morloc project contributors

package walk

import "github.com/morloc-lang/manifold-link/tree"

// RecurseMost descends into sequence-valued nodes directly, and for
// couplets descends into whichever side (lhs, rhs, or both) is
// itself recursive — class K_PATH or sequence-valued. This is the
// structural walk used to find manifolds and modifier declarations
// anywhere in the tree, including inside T_PATH wrapper blocks.
//
// The couplet case falls through with no further branch once a side
// has been checked, mirroring the harmless default-arm fallthrough
// noted in the original source (see §9's open question — preserved
// as specified, it has no observable effect here since Go's switch
// doesn't fall through by default and there is nothing left to do
// after the two sides are checked).
func RecurseMost(w tree.W, _ tree.W) ([]tree.Ws, bool) {
	if ws, ok := w.GWs(); ok {
		return []tree.Ws{ws}, true
	}
	if c, ok := w.GCouplet(); ok {
		var out []tree.Ws
		if isRecursiveSide(c.Lhs) {
			if ws, ok := c.Lhs.GWs(); ok {
				out = append(out, ws)
			}
		}
		if isRecursiveSide(c.Rhs) {
			if ws, ok := c.Rhs.GWs(); ok {
				out = append(out, ws)
			}
		}
		if len(out) > 0 {
			return out, true
		}
	}
	return nil, false
}

func isRecursiveSide(w tree.W) bool {
	if w.Class == tree.KPath {
		return true
	}
	_, ok := w.GWs()
	return ok
}

// RecurseWs descends only into sequence-valued payloads, ignoring
// couplets entirely.
func RecurseWs(w tree.W, _ tree.W) ([]tree.Ws, bool) {
	ws, ok := w.GWs()
	if !ok {
		return nil, false
	}
	return []tree.Ws{ws}, true
}

// RecurseNone never descends. Used to collect only the immediate,
// top-level elements of a sequence (Phase B's type declarations).
func RecurseNone(tree.W, tree.W) ([]tree.Ws, bool) {
	return nil, false
}

// RecurseComposition follows dataflow-composition structure: a
// manifold's declared type/body may itself nest further manifolds
// (sub-compositions). Those live in the manifold's Type sequence,
// since that is the only place a manifold record can structurally
// reference nested composition terms before Phase B has run.
func RecurseComposition(w tree.W, _ tree.W) ([]tree.Ws, bool) {
	if ws, ok := w.GWs(); ok {
		return []tree.Ws{ws}, true
	}
	if m, ok := w.GManifold(); ok && !m.Type.Empty() {
		return []tree.Ws{m.Type}, true
	}
	return nil, false
}

// RecursePath descends into every C_NEST unconditionally (a lexical
// scope is always searched, regardless of the active selector) and
// into a T_PATH only when the active selector's head label equals
// that T_PATH's own label (a dotted selector block only applies
// along the path it names). Mirrors recurse_path of §4.1.
func RecursePath(w tree.W, p tree.W) ([]tree.Ws, bool) {
	switch w.Class {
	case tree.CNest:
		c, ok := w.GCouplet()
		if !ok {
			return nil, false
		}
		ws, ok := c.Rhs.GWs()
		if !ok {
			return nil, false
		}
		return []tree.Ws{ws}, true
	case tree.TPath:
		c, ok := w.GCouplet()
		if !ok {
			return nil, false
		}
		nestLabel, ok := c.Lhs.GLabel()
		if !ok {
			return nil, false
		}
		labels, ok := SelectorLabels(p)
		if !ok || len(labels) == 0 || !tree.LabelEqual(labels[0], nestLabel) {
			return nil, false
		}
		ws, ok := c.Rhs.GWs()
		if !ok {
			return nil, false
		}
		return []tree.Ws{ws}, true
	default:
		return nil, false
	}
}

// IsManifold reports whether w is a C_MANIFOLD node.
func IsManifold(w tree.W, _ tree.W) bool {
	return w.Class == tree.CManifold
}

// IsType reports whether w is a top-level type declaration.
func IsType(w tree.W, _ tree.W) bool {
	return w.Class == tree.TString
}

// KeepAll accepts every node; used by Flatten-style walks.
func KeepAll(tree.W, tree.W) bool {
	return true
}

// ManifoldModifier reports whether w's class is one of the modifier
// classes Phase C applies (§4.4): the ten hooks, cache, check, fail,
// alias, lang, doc, argument. T_PATH is deliberately excluded — it is
// structural scaffolding, not an applicable modifier itself.
func ManifoldModifier(w tree.W, _ tree.W) bool {
	return tree.IsModifier(w.Class)
}

// BasenameMatch is Phase C's conservative match gate (§4.4.3): true
// only when w is a manifold and the selector's remaining path has
// been consumed down to a single label equal to w's own declared
// label.
func BasenameMatch(w tree.W, p tree.W) bool {
	if w.Class != tree.CManifold {
		return false
	}
	labels, ok := SelectorLabels(p)
	if !ok || len(labels) != 1 {
		return false
	}
	wLabel, ok := w.Lhs().GLabel()
	if !ok {
		return false
	}
	return tree.LabelEqual(labels[0], wLabel)
}

// Always advances the selector to its Next link, ignoring the node
// just matched.
func Always(p tree.W, _ tree.W) tree.W {
	if p.Next == nil {
		return tree.W{}
	}
	return *p.Next
}

// Never reuses the same selector unchanged.
func Never(p tree.W, _ tree.W) tree.W {
	return p
}

// IfPath strips one label off the front of p's path when descending
// into a T_PATH (the match that licensed the descent already
// consumed it structurally; IfPath keeps the selector's remaining
// path in sync), or when descending into a C_NEST whose own label
// equals the path's current head (so a lexical scope a{b{...}} scopes
// a dotted selector a.b.c exactly the way a desugared a.b{c :...}
// block would). Any other transition copies p through unchanged.
func IfPath(p tree.W, w tree.W) tree.W {
	switch w.Class {
	case tree.TPath:
		return popHead(p)
	case tree.CNest:
		c, ok := w.GCouplet()
		if !ok {
			return p
		}
		nestLabel, ok := c.Lhs.GLabel()
		if !ok {
			return p
		}
		labels, ok := SelectorLabels(p)
		if ok && len(labels) > 0 && tree.LabelEqual(labels[0], nestLabel) {
			return popHead(p)
		}
		return p
	default:
		return p
	}
}
