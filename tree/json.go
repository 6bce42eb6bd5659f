// Copyright (c) 2024 The morloc project contributors

package tree

import "encoding/json"

// MarshalJSON renders w as a plain JSON value, one field per populated
// payload shape. Mirrors micheline.Prim.MarshalJSON's map-then-marshal
// style: build a map keyed by payload kind, let encoding/json do the
// rest. Used by manifold.Table.Query to expose the tree to gjson path
// queries and by cmd/linkdump to dump a linked tree for inspection.
func (w W) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{"class": w.Class.String()}
	switch ValueType(w.Class) {
	case VString:
		m["string"] = w.str
	case VLabel:
		m["name"] = w.label.Name
		if w.label.Qualifier != "" {
			m["qualifier"] = w.label.Qualifier
		}
	case VWs:
		m["items"] = w.ws.Slice()
	case VCouplet:
		if w.couplet != nil {
			m["lhs"] = w.couplet.Lhs
			m["rhs"] = w.couplet.Rhs
			m["op"] = string(rune(w.couplet.Op))
		}
	case VManifold:
		m["manifold"] = w.manifold
	}
	return json.Marshal(m)
}

// MarshalJSON renders ws as a JSON array of its elements, or `[]`
// when empty.
func (ws Ws) MarshalJSON() ([]byte, error) {
	return json.Marshal(ws.Slice())
}

// MarshalJSON renders a manifold record as a flat JSON object. Empty
// sequence fields (hook slots included) and an empty lang are omitted
// rather than emitted as `[]` or `""`, so a gjson query like
// `manifolds.0.h0` reports not-found for an empty slot.
func (m *Manifold) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"uid":      m.UID,
		"function": m.Function,
	}
	if m.Lang != "" {
		out["lang"] = m.Lang
	}
	if !m.Type.Empty() {
		out["type"] = m.Type
	}
	if !m.Check.Empty() {
		out["check"] = m.Check
	}
	if !m.Fail.Empty() {
		out["fail"] = m.Fail
	}
	if !m.Args.Empty() {
		out["args"] = m.Args
	}
	if !m.Cache.Empty() {
		out["cache"] = m.Cache
	}
	if !m.Doc.Empty() {
		out["doc"] = m.Doc
	}
	for i := 0; i < 10; i++ {
		if slot := m.HookSlot(i); slot != nil && !slot.Empty() {
			out[hookKey(i)] = *slot
		}
	}
	return json.Marshal(out)
}

func hookKey(i int) string {
	const digits = "0123456789"
	return "h" + string(digits[i])
}
