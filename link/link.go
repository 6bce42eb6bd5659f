// Copyright (c) 2024 The morloc project contributors

// Package link implements the three-phase manifold linking pass: Phase
// A assigns default function names, Phase B binds declared types to
// matching manifolds, and Phase C applies every modifier declaration
// to every manifold its selector names. See walk for the traversal
// combinators this package composes.
package link

import (
	"github.com/morloc-lang/manifold-link/diag"
	"github.com/morloc-lang/manifold-link/tree"
	"github.com/morloc-lang/manifold-link/walk"
)

// Options tunes behavior the original source leaves as a single fixed
// choice. The zero value reproduces original_source's literal
// semantics exactly.
type Options struct {
	// NormalizeNames runs DefaultFunctionName's identifier-safe
	// normalization instead of copying a label's name verbatim.
	// Default false: copy verbatim, matching original_source.
	NormalizeNames bool
}

// Run executes Phase A, B, and C in order over top, reporting every
// advisory diagnostic to sink. A nil sink is replaced with a
// discarding one; Run never fails — every recoverable error is
// reported and skipped, per §7.
func Run(top tree.Ws, sink diag.Sink, opts Options) {
	if sink == nil {
		sink = diag.Discard()
	}
	PhaseA(top, opts, sink)
	PhaseB(top, sink)
	PhaseC(top, sink)
}

// PhaseA assigns every reachable manifold a default function name
// from its declared label, unless one is already set. §4.2.
func PhaseA(top tree.Ws, opts Options, sink diag.Sink) {
	manifolds := walk.RFilter(top, walk.RecurseMost, walk.IsManifold)
	for _, cm := range manifolds.Slice() {
		setDefaultFunction(cm, opts, sink)
	}
}

func setDefaultFunction(cm tree.W, opts Options, sink diag.Sink) {
	m, ok := cm.GManifold()
	if !ok {
		sink.Warnf(diag.ClassAssertion, "expected a manifold node, got class %s", cm.Class)
		return
	}
	if m.Function != "" {
		return
	}
	label, ok := cm.Lhs().GLabel()
	if !ok {
		sink.Warnf(diag.Structural, "manifold %d has no label to derive a default function name from", m.UID)
		return
	}
	m.Function = DefaultFunctionName(label, opts)
}

// DefaultFunctionName derives a manifold's default function name from
// its declared label. With NormalizeNames off (the default) it copies
// label.Name verbatim, exactly as original_source's
// _set_default_manifold_function does. With NormalizeNames on, a name
// that isn't already a bare identifier (contains whitespace, a dot,
// or starts with a digit) is rewritten to snake_case via
// github.com/iancoleman/strcase, the same library the teacher's
// cmd/tzgen uses to turn annotation text into Go identifiers.
func DefaultFunctionName(label tree.Label, opts Options) string {
	if !opts.NormalizeNames || isBareIdentifier(label.Name) {
		return label.Name
	}
	return strcaseToSnake(label.Name)
}
