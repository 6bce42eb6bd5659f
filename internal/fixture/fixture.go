// Copyright (c) 2024 The morloc project contributors

// Package fixture builds tree.Ws values from a compact YAML
// description, for tests that would otherwise need long hand-written
// chains of tree.New* calls. It is test-only scaffolding: nothing
// outside _test.go files and cmd/linkdump imports it.
package fixture

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/morloc-lang/manifold-link/tree"
)

// Node is one entry of a fixture document. Which fields apply depends
// on Class: string-shaped classes read Value, label-shaped classes
// read Name/Qualifier, sequence-shaped classes read Items, and
// couplet-shaped classes read Lhs/Rhs/Op. The three structural
// shorthands (nest, path, typedecl) and the manifold shorthand read
// Name plus Items/Value directly, matching their tree.New* helpers.
type Node struct {
	Class     string `yaml:"class"`
	Name      string `yaml:"name,omitempty"`
	Qualifier string `yaml:"qualifier,omitempty"`
	Value     string `yaml:"value,omitempty"`
	UID       int    `yaml:"uid,omitempty"`
	Op        string `yaml:"op,omitempty"`
	Items     []Node `yaml:"items,omitempty"`
	Lhs       *Node  `yaml:"lhs,omitempty"`
	Rhs       *Node  `yaml:"rhs,omitempty"`
}

var modifierClasses = map[string]tree.Class{
	"alias":    tree.TAlias,
	"lang":     tree.TLang,
	"cache":    tree.TCache,
	"doc":      tree.TDoc,
	"check":    tree.TCheck,
	"fail":     tree.TFail,
	"argument": tree.TArgument,
	"h0":       tree.TH0,
	"h1":       tree.TH1,
	"h2":       tree.TH2,
	"h3":       tree.TH3,
	"h4":       tree.TH4,
	"h5":       tree.TH5,
	"h6":       tree.TH6,
	"h7":       tree.TH7,
	"h8":       tree.TH8,
	"h9":       tree.TH9,
}

// Load parses a YAML document of top-level fixture nodes into a Ws
// sequence.
func Load(data []byte) (tree.Ws, error) {
	var nodes []Node
	if err := yaml.Unmarshal(data, &nodes); err != nil {
		return tree.Ws{}, errors.Wrap(err, "fixture: failed to unmarshal yaml")
	}
	return buildSeq(nodes)
}

func buildSeq(nodes []Node) (tree.Ws, error) {
	var ws tree.Ws
	for _, n := range nodes {
		w, err := build(n)
		if err != nil {
			return tree.Ws{}, err
		}
		ws = ws.Add(w)
	}
	return ws, nil
}

func build(n Node) (tree.W, error) {
	switch n.Class {
	case "nest":
		content, err := buildSeq(n.Items)
		if err != nil {
			return tree.W{}, err
		}
		return tree.NewNest(n.Name, content), nil
	case "path":
		content, err := buildSeq(n.Items)
		if err != nil {
			return tree.W{}, err
		}
		return tree.NewPathBlock(n.Name, content), nil
	case "typedecl":
		terms, err := buildSeq(n.Items)
		if err != nil {
			return tree.W{}, err
		}
		return tree.NewTypeDecl(n.Name, terms), nil
	case "manifold":
		m := &tree.Manifold{UID: n.UID}
		if n.Value != "" {
			m.Function = n.Value
		}
		return tree.NewManifoldNode(tree.Label{Name: n.Name, Qualifier: n.Qualifier}, m), nil
	case "kname":
		return tree.NewKName(n.Name), nil
	case "klabel":
		return tree.NewLabel(tree.Label{Name: n.Name, Qualifier: n.Qualifier}), nil
	case "kpath":
		labels := make([]tree.Label, 0, len(n.Items))
		for _, item := range n.Items {
			labels = append(labels, tree.Label{Name: item.Name, Qualifier: item.Qualifier})
		}
		return tree.NewKPath(labels), nil
	case "klist":
		selectors := make([]tree.W, 0, len(n.Items))
		for _, item := range n.Items {
			w, err := build(item)
			if err != nil {
				return tree.W{}, err
			}
			selectors = append(selectors, w)
		}
		return tree.NewKList(selectors), nil
	case "string":
		return tree.NewString(tree.PString, n.Value), nil
	}

	cls, ok := modifierClasses[n.Class]
	if !ok {
		return tree.W{}, errors.Errorf("fixture: unknown node class %q", n.Class)
	}
	if n.Lhs == nil || n.Rhs == nil {
		return tree.W{}, errors.Errorf("fixture: class %q requires both lhs and rhs", n.Class)
	}
	lhs, err := build(*n.Lhs)
	if err != nil {
		return tree.W{}, err
	}
	rhs, err := build(*n.Rhs)
	if err != nil {
		return tree.W{}, err
	}
	op := byte('=')
	if n.Op != "" {
		op = n.Op[0]
	}
	return tree.NewModifier(cls, lhs, rhs, op), nil
}
