// Copyright (c) 2024 The morloc project contributors

// Package manifold provides a UID-keyed arena over the manifold
// records a linked tree produces, plus a gjson-backed path query over
// their JSON projection. It does not own the tree.Manifold records
// themselves (those remain tree-owned, consistent with tree's
// non-owning hook-reference design) — it only indexes pointers to
// them by UID and renders snapshots for inspection.
package manifold

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"golang.org/x/exp/slices"

	"github.com/morloc-lang/manifold-link/tree"
	"github.com/morloc-lang/manifold-link/walk"
)

// Table indexes every manifold discovered in a linked tree by UID, so
// callers can resolve a hook/check/fail/args reference (which carries
// only a UID-bearing node, per tree's non-owning reference design)
// back to the record it names.
type Table struct {
	byUID map[int]*tree.Manifold
}

// NewTable builds a Table from every manifold reachable in top via
// the given collector, for callers that want a non-default traversal.
func NewTable(top tree.Ws, collect func(tree.Ws) []*tree.Manifold) *Table {
	t := &Table{byUID: make(map[int]*tree.Manifold)}
	for _, m := range collect(top) {
		t.Register(m)
	}
	return t
}

// New builds a Table from every manifold reachable in top by
// composition recursion — the same traversal Phase B uses to find
// candidate manifolds. This is the constructor cmd/linkdump and most
// callers want.
func New(top tree.Ws) *Table {
	nodes := walk.RFilter(top, walk.RecurseComposition, walk.IsManifold)
	return NewTable(top, func(tree.Ws) []*tree.Manifold {
		var out []*tree.Manifold
		for _, w := range nodes.Slice() {
			if m, ok := w.GManifold(); ok {
				out = append(out, m)
			}
		}
		return out
	})
}

// Register indexes m by its UID, overwriting any prior entry at that
// UID. A zero UID is accepted: the Table makes no assumption about
// how UIDs are minted upstream.
func (t *Table) Register(m *tree.Manifold) {
	if t.byUID == nil {
		t.byUID = make(map[int]*tree.Manifold)
	}
	t.byUID[m.UID] = m
}

// Get resolves a UID to its manifold record, if one was registered.
func (t *Table) Get(uid int) (*tree.Manifold, bool) {
	m, ok := t.byUID[uid]
	return m, ok
}

// All returns every registered manifold, ordered by ascending UID so
// Query's output (and tests asserting against it) are deterministic.
func (t *Table) All() []*tree.Manifold {
	out := make([]*tree.Manifold, 0, len(t.byUID))
	for _, m := range t.byUID {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b *tree.Manifold) int {
		return a.UID - b.UID
	})
	return out
}

// Snapshot renders the table as a single JSON document:
// {"manifolds": [...]}, ordered by UID. This is what Query runs gjson
// path expressions against.
func (t *Table) Snapshot() ([]byte, error) {
	return json.Marshal(map[string]interface{}{"manifolds": t.All()})
}

// Query evaluates a gjson path expression (e.g. "manifolds.0.function"
// or "manifolds.#(uid==3).lang") against the table's JSON snapshot and
// returns the matched value as gjson.Result.String renders it (a JSON
// string comes back unquoted, other values as their JSON text). ok is false
// when the path matches nothing, mirroring gjson.Result.Exists.
func (t *Table) Query(path string) (string, bool, error) {
	buf, err := t.Snapshot()
	if err != nil {
		return "", false, err
	}
	res := gjson.GetBytes(buf, path)
	return res.String(), res.Exists(), nil
}
