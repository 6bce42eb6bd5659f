// Copyright (c) 2024 The morloc project contributors

package manifold

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/morloc-lang/manifold-link/tree"
)

func TestNewIndexesByUID(t *testing.T) {
	a := &tree.Manifold{UID: 1, Function: "a"}
	b := &tree.Manifold{UID: 2, Function: "b"}
	top := tree.NewWsOf(tree.NewManifoldNode(tree.Label{Name: "a"}, a))
	top = top.Add(tree.NewManifoldNode(tree.Label{Name: "b"}, b))

	table := New(top)

	got, ok := table.Get(2)
	require.True(t, ok)
	require.Equal(t, "b", got.Function)

	_, ok = table.Get(99)
	require.False(t, ok)
}

func TestAllIsOrderedByUID(t *testing.T) {
	b := &tree.Manifold{UID: 2}
	a := &tree.Manifold{UID: 1}
	top := tree.NewWsOf(tree.NewManifoldNode(tree.Label{Name: "b"}, b))
	top = top.Add(tree.NewManifoldNode(tree.Label{Name: "a"}, a))

	table := New(top)
	all := table.All()
	require.Len(t, all, 2)
	require.Equal(t, 1, all[0].UID)
	require.Equal(t, 2, all[1].UID)
}

func TestQueryByUID(t *testing.T) {
	m := &tree.Manifold{UID: 3, Function: "foo", Lang: "py"}
	top := tree.NewWsOf(tree.NewManifoldNode(tree.Label{Name: "foo"}, m))

	table := New(top)
	val, ok, err := table.Query("manifolds.#(uid==3).lang")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "py", val)
}

func TestQueryMissingPathReportsNotFound(t *testing.T) {
	m := &tree.Manifold{UID: 1}
	top := tree.NewWsOf(tree.NewManifoldNode(tree.Label{Name: "foo"}, m))

	table := New(top)
	_, ok, err := table.Query("manifolds.0.nonexistent")
	require.NoError(t, err)
	require.False(t, ok)
}
