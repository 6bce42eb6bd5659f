// Copyright (c) 2024 The morloc project contributors

package tree

// Ws is an ordered, singly-linked, non-cyclic sequence of nodes. The
// zero Ws is the empty sequence; Head is the first element, Tail is
// tracked internally so Add/Join stay O(1).
type Ws struct {
	head *W
	tail *W
}

// Head returns the first node of the sequence, or nil if empty.
func (ws Ws) Head() *W {
	return ws.head
}

// Empty reports whether the sequence has no elements.
func (ws Ws) Empty() bool {
	return ws.head == nil
}

// NewWsOf builds a sequence from a single node, isolating it first so
// the caller's Next pointer doesn't leak into the new sequence.
func NewWsOf(w W) Ws {
	n := w.Isolate()
	return Ws{head: &n, tail: &n}
}

// Add appends w (isolated first) to ws, returning the (possibly new)
// sequence. Mirrors ws_add. A non-empty sequence built through Add,
// NewWsOf or Join always has a tail; Add itself reports nothing (it
// has no sink to report to, matching the leaf nature of the tree
// package).
func (ws Ws) Add(w W) Ws {
	n := w.Isolate()
	if ws.head == nil {
		return Ws{head: &n, tail: &n}
	}
	ws.tail.Next = &n
	ws.tail = &n
	return ws
}

// Join concatenates b after a in order, returning the combined
// sequence. Join(empty, b) == b; Join(a, empty) == a.
func Join(a, b Ws) Ws {
	if b.head == nil {
		return a
	}
	if a.head == nil {
		return b
	}
	a.tail.Next = b.head
	a.tail = b.tail
	return a
}

// Length counts the elements of ws in O(n).
func (ws Ws) Length() int {
	n := 0
	for w := ws.head; w != nil; w = w.Next {
		n++
	}
	return n
}

// Slice materializes ws as a []W snapshot, each entry isolated so
// mutating the slice never mutates the source sequence's linkage
// (the underlying Manifold/couplet pointers are still shared, per the
// package's node-identity-sharing contract).
func (ws Ws) Slice() []W {
	out := make([]W, 0, ws.Length())
	for w := ws.head; w != nil; w = w.Next {
		out = append(out, w.Isolate())
	}
	return out
}

// FromSlice builds a Ws from a []W in order.
func FromSlice(ws []W) Ws {
	var out Ws
	for _, w := range ws {
		out = out.Add(w)
	}
	return out
}

// Clone deep-copies the sequence: every element is cloned, Manifold
// pointers are shared (not owned by any one node), nested Ws/Couplet payloads are
// copied recursively.
func (ws Ws) Clone() Ws {
	var out Ws
	for w := ws.head; w != nil; w = w.Next {
		out = out.Add(w.Clone())
	}
	return out
}
