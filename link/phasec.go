// Copyright (c) 2024 The morloc project contributors

package link

import (
	"github.com/morloc-lang/manifold-link/diag"
	"github.com/morloc-lang/manifold-link/tree"
	"github.com/morloc-lang/manifold-link/walk"
)

// PhaseC applies every modifier declaration reachable in top to every
// manifold its selector names. §4.4.
func PhaseC(top tree.Ws, sink diag.Sink) {
	modifiers := walk.RFilter(top, walk.RecurseMost, walk.ManifoldModifier)
	split := walk.MapSplit(modifiers, func(w tree.W) tree.Ws { return splitCouplet(w, sink) })

	walk.MapPMod(top, split, func(xs tree.Ws, p tree.W) {
		walk.PRMod(xs, p, walk.RecursePath, func(w, p tree.W) {
			addModifier(w, p, sink)
		}, walk.IfPath)
	})
}

// splitCouplet fans a K_LIST-headed couplet out into one couplet per
// alternative selector, isolating each so they don't share Next
// linkage. Any other legal selector class passes the couplet through
// unchanged; an illegal lhs class is reported and dropped. Mirrors
// ws_split_couplet.
func splitCouplet(w tree.W, sink diag.Sink) tree.Ws {
	c, ok := w.GCouplet()
	if !ok {
		sink.Warnf(diag.ClassAssertion, "expected a modifier couplet, got class %s", w.Class)
		return tree.Ws{}
	}
	if !walk.IsSelectorClass(c.Lhs.Class) {
		sink.Warnf(diag.IllegalSelector, "modifier selector has illegal lhs class %s", c.Lhs.Class)
		return tree.Ws{}
	}
	if c.Lhs.Class != tree.KList {
		return tree.NewWsOf(w)
	}
	selectors, ok := c.Lhs.GWs()
	if !ok {
		sink.Warnf(diag.Structural, "K_LIST selector has no sequence payload")
		return tree.Ws{}
	}
	var out tree.Ws
	for _, sel := range selectors.Slice() {
		if !walk.IsSelectorClass(sel.Class) {
			sink.Warnf(diag.IllegalSelector, "list selector alternative has illegal lhs class %s", sel.Class)
			continue
		}
		nc := tree.Couplet{Lhs: sel, Rhs: c.Rhs, Op: c.Op}
		out = out.Add(tree.RebuildCouplet(w, &nc))
	}
	return out
}

// addModifier is Phase C's mutate callback. walk.PRMod calls it on
// every node of the tree for every split modifier selector; the
// match gate (basename_match, §4.4.3) is applied here rather than as
// a separate combinator parameter, since prmod has no criterion slot
// (see walk.PRMod).
func addModifier(w, p tree.W, sink diag.Sink) {
	if !walk.BasenameMatch(w, p) {
		return
	}
	m, ok := w.GManifold()
	if !ok {
		sink.Warnf(diag.ClassAssertion, "modifier target matched a non-manifold node of class %s", w.Class)
		return
	}
	rhs := p.Rhs()
	op := p.Op()

	switch p.Class {
	case tree.TAlias:
		applyAlias(m, p, rhs, sink)
	case tree.TLang:
		if s, ok := rhs.GString(); ok {
			m.Lang = s
		} else {
			m.Lang = "*"
		}
	case tree.TCheck:
		applyHookSlot(&m.Check, rhs, op, sink)
	case tree.TFail:
		applyHookSlot(&m.Fail, rhs, op, sink)
	case tree.TH0, tree.TH1, tree.TH2, tree.TH3, tree.TH4,
		tree.TH5, tree.TH6, tree.TH7, tree.TH8, tree.TH9:
		applyHookSlot(m.HookSlot(tree.HookIndex(p.Class)), rhs, op, sink)
	case tree.TArgument:
		applyArgument(m, rhs, op, sink)
	case tree.TCache:
		applyStringSlot(&m.Cache, rhs)
	case tree.TDoc:
		applyStringSlot(&m.Doc, rhs)
	default:
		// unknown modifier class reaching here is a developer error
		// in the selector-class partition, not a corruption risk:
		// silently ignored per §4.4.1.
	}
}

// applyAlias implements T_ALIAS: set the manifold's function to the
// declared string, or — absent one — reset it using the *selector
// couplet's own* basename rather than the manifold's own label. This
// mirrors original_source precisely; see SPEC_FULL.md's §9 addendum
// for why the two coincide under basename_match's single-label gate.
func applyAlias(m *tree.Manifold, p, rhs tree.W, sink diag.Sink) {
	if s, ok := rhs.GString(); ok {
		m.Function = s
		return
	}
	labels, ok := walk.SelectorLabels(p)
	if !ok || len(labels) == 0 {
		sink.Warnf(diag.IllegalSelector, "alias modifier's selector carries no usable label")
		return
	}
	m.Function = DefaultFunctionName(labels[0], Options{})
}

// applyHookSlot implements the shared T_H*/T_CHECK/T_FAIL dispatch of
// §4.4.1: if rhs carries a (possibly doubly-wrapped) sequence, run
// do_op against its head; otherwise clear the slot.
func applyHookSlot(slot *tree.Ws, rhs tree.W, op byte, sink diag.Sink) {
	q, ok := hookOperand(rhs)
	if !ok {
		*slot = tree.Ws{}
		return
	}
	*slot = doOp(*slot, q, op, sink)
}

// hookOperand unwraps rhs's outer sequence (possibly empty) down to
// its head element's own sequence payload — the "q" of §4.4.1/4.4.2.
// An absent or empty outer sequence means "no value", signalled by
// ok == false.
func hookOperand(rhs tree.W) (tree.Ws, bool) {
	outer, ok := rhs.GWs()
	if !ok || outer.Empty() {
		return tree.Ws{}, false
	}
	head := outer.Head()
	return head.GWs()
}

// doOp implements §4.4.2's replace/append/subtract semantics.
func doOp(ws tree.Ws, q tree.Ws, op byte, sink diag.Sink) tree.Ws {
	switch op {
	case '=':
		return q.Clone()
	case '+':
		return tree.Join(ws, q)
	case '-':
		return subtractByUID(ws, q)
	default:
		sink.Warnf(diag.UnsupportedOp, "unexpected operator %q in do_op", op)
		return ws
	}
}

// subtractByUID removes every element of ws whose manifold uid
// appears anywhere in r.
func subtractByUID(ws, r tree.Ws) tree.Ws {
	excluded := make(map[int]struct{})
	for _, w := range r.Slice() {
		if m, ok := w.GManifold(); ok {
			excluded[m.UID] = struct{}{}
		}
	}
	var out tree.Ws
	for _, w := range ws.Slice() {
		if m, ok := w.GManifold(); ok {
			if _, skip := excluded[m.UID]; skip {
				continue
			}
		}
		out = out.Add(w)
	}
	return out
}

// applyArgument implements §4.4.1's T_ARGUMENT dispatch. op is forced
// to '!' whenever rhs isn't itself couplet-shaped (an argument is
// always a name=value couplet; anything else means "clear").
func applyArgument(m *tree.Manifold, rhs tree.W, op byte, sink diag.Sink) {
	if _, ok := rhs.GCouplet(); !ok {
		op = '!'
	}
	switch op {
	case '=':
		m.Args = tree.NewWsOf(wrapArgument(rhs))
	case '+':
		m.Args = m.Args.Add(wrapArgument(rhs))
	case '!':
		m.Args = tree.Ws{}
	case '-':
		sink.Warnf(diag.UnsupportedOp, "the '-' operator is not supported for arguments")
	default:
		sink.Warnf(diag.UnsupportedOp, "unexpected operator %q in add_modifier", op)
	}
}

func wrapArgument(rhs tree.W) tree.W {
	c, ok := rhs.GCouplet()
	if !ok {
		return tree.W{Class: tree.PArgument}
	}
	return tree.NewCouplet(tree.PArgument, c.Lhs, c.Rhs, c.Op)
}

// applyStringSlot implements §4.4.1's shared T_CACHE/T_DOC dispatch:
// append the string or clear the slot.
func applyStringSlot(slot *tree.Ws, rhs tree.W) {
	s, ok := rhs.GString()
	if !ok {
		*slot = tree.Ws{}
		return
	}
	*slot = slot.Add(tree.NewString(tree.PString, s))
}
