// Copyright (c) 2024 The morloc project contributors

// Package walk provides the higher-order tree combinators the linking
// pass is built from: filter-recursive walks, path-aware filter walks,
// modifier-application walks, cartesian-product walks, and depth-N
// "cone" walks. Every combinator is parameterised by small, swappable
// callable values rather than an interface hierarchy — recurse,
// criterion, next, and mutate are plain function types, matching the
// shape of blockwatch.cc/tzgo's Prim.Walk(PrimWalkerFunc) but
// generalised to four cooperating callables instead of one.
package walk

import "github.com/morloc-lang/manifold-link/tree"

// Recurse returns the child sequences a node should be descended
// into, given the evolving path-selector p, and whether descent
// applies at all. The two-sequence case happens when a couplet's lhs
// and rhs are both independently recursive (e.g. a K_LIST lhs and a
// sequence-valued rhs).
type Recurse func(w tree.W, p tree.W) (children []tree.Ws, ok bool)

// Criterion decides whether a visited node belongs in a filter's
// result set.
type Criterion func(w tree.W, p tree.W) bool

// NextFn computes the selector to carry into a node's children, given
// the selector active before descent and the node just matched.
type NextFn func(p tree.W, w tree.W) tree.W

// Mutate performs an in-place side effect on a node, given the active
// selector.
type Mutate func(w tree.W, p tree.W)

// Split turns one node into zero or more replacement nodes — used to
// fan a K_LIST-headed couplet out into one couplet per selector.
type Split func(w tree.W) tree.Ws

// RFilter returns, in pre-order depth-first order, every node
// reachable from ws (via recurse) that satisfies criterion. Mirrors
// ws_rfilter.
func RFilter(ws tree.Ws, recurse Recurse, criterion Criterion) tree.Ws {
	var zero tree.W
	var result tree.Ws
	for w := ws.Head(); w != nil; w = w.Next {
		if criterion(*w, zero) {
			result = result.Add(*w)
		}
		children, ok := recurse(*w, zero)
		if !ok {
			continue
		}
		for _, c := range children {
			result = tree.Join(result, RFilter(c, recurse, criterion))
		}
	}
	return result
}

// PRFilter is RFilter generalised so criterion, recurse, and the
// selector threaded through next may all consult the evolving
// selector p. Mirrors ws_prfilter.
func PRFilter(ws tree.Ws, p tree.W, recurse Recurse, criterion Criterion, next NextFn) tree.Ws {
	var result tree.Ws
	for w := ws.Head(); w != nil; w = w.Next {
		if criterion(*w, p) {
			result = result.Add(*w)
		}
		children, ok := recurse(*w, p)
		if !ok {
			continue
		}
		childP := next(p, *w)
		for _, c := range children {
			result = tree.Join(result, PRFilter(c, childP, recurse, criterion, next))
		}
	}
	return result
}

// PRMod walks ws calling mutate(w, p) at every node — not only at
// matches — and descends via recurse(w, p). Mirrors ws_prmod; this is
// the walk Phase C uses to apply one modifier couplet across the
// whole tree.
func PRMod(ws tree.Ws, p tree.W, recurse Recurse, mutate Mutate, next NextFn) {
	for w := ws.Head(); w != nil; w = w.Next {
		mutate(*w, p)
		children, ok := recurse(*w, p)
		if !ok {
			continue
		}
		childP := next(p, *w)
		for _, c := range children {
			PRMod(c, childP, recurse, mutate, next)
		}
	}
}

// MapPMod invokes pmod(xs, p) once per selector in ps. Mirrors
// ws_map_pmod: Phase C calls this once with ps set to the fully
// split modifier-couplet list.
func MapPMod(xs tree.Ws, ps tree.Ws, pmod func(tree.Ws, tree.W)) {
	for p := ps.Head(); p != nil; p = p.Next {
		pmod(xs, *p)
	}
}

// MapSplit applies split to every node of ws and concatenates the
// results, in order. Mirrors ws_map_split.
func MapSplit(ws tree.Ws, split Split) tree.Ws {
	var result tree.Ws
	for w := ws.Head(); w != nil; w = w.Next {
		result = tree.Join(result, split(*w))
	}
	return result
}

// TwoMod calls mutate on every pair in the cartesian product xs × ys.
// Mirrors ws_2mod; Phase B uses this to test every (manifold, type)
// pair for a name match.
func TwoMod(xs, ys tree.Ws, mutate func(x, y tree.W)) {
	if xs.Empty() || ys.Empty() {
		return
	}
	for x := xs.Head(); x != nil; x = x.Next {
		for y := ys.Head(); y != nil; y = y.Next {
			mutate(*x, *y)
		}
	}
}

// ThreeMod calls mutate on every triple in xs × ys × zs. Mirrors
// ws_3mod.
func ThreeMod(xs, ys, zs tree.Ws, mutate func(x, y, z tree.W)) {
	if xs.Empty() || ys.Empty() || zs.Empty() {
		return
	}
	for x := xs.Head(); x != nil; x = x.Next {
		for y := ys.Head(); y != nil; y = y.Next {
			for z := zs.Head(); z != nil; z = z.Next {
				mutate(*x, *y, *z)
			}
		}
	}
}

// Cone filters an outer set from top, then for each outer element
// filters an inner set that may depend on it, then mutates every
// (x, y) pair. Mirrors ws_cone: one filter per depth.
func Cone(top tree.Ws, xfilter func(tree.Ws) tree.Ws, yfilter func(tree.Ws, tree.W) tree.Ws, mutate func(top tree.Ws, x, y tree.W)) {
	xs := xfilter(top)
	for x := xs.Head(); x != nil; x = x.Next {
		ys := yfilter(top, *x)
		for y := ys.Head(); y != nil; y = y.Next {
			mutate(top, *x, *y)
		}
	}
}

// TwoCone is Cone extended one level deeper. Mirrors ws_2cone.
func TwoCone(
	top tree.Ws,
	xfilter func(tree.Ws) tree.Ws,
	yfilter func(tree.Ws, tree.W) tree.Ws,
	zfilter func(tree.Ws, tree.W, tree.W) tree.Ws,
	mutate func(top tree.Ws, x, y, z tree.W),
) {
	xs := xfilter(top)
	for x := xs.Head(); x != nil; x = x.Next {
		ys := yfilter(top, *x)
		for y := ys.Head(); y != nil; y = y.Next {
			zs := zfilter(top, *x, *y)
			for z := zs.Head(); z != nil; z = z.Next {
				mutate(top, *x, *y, *z)
			}
		}
	}
}
