// Copyright (c) 2024 The morloc project contributors

// Package tree implements the tagged node model the linking pass walks:
// W nodes, Ws sequences, and Couplet payloads. See Manifold
// (manifold.go) for the record type nodes ultimately point at.
package tree

import "fmt"

// Class is the tag on a node. It determines which payload field of W
// is populated and which ValueType it projects to.
type Class uint8

const (
	// structural
	CNest Class = iota // a scope
	CManifold

	// selector classes (lhs of couplets)
	KName
	KLabel
	KPath
	KList

	// modifier classes
	TAlias
	TLang
	TCache
	TDoc
	TCheck
	TFail
	TArgument
	TH0
	TH1
	TH2
	TH3
	TH4
	TH5
	TH6
	TH7
	TH8
	TH9
	TPath

	// type declaration
	TString

	// internal helpers, used when rebuilding payloads
	PWs
	PString
	PArgument
	// PManifold tags the bare Manifold-value leaf carried as the rhs
	// of a C_MANIFOLD node's couplet. The spec's class groups don't
	// name this tag explicitly; it exists only so ValueType stays a
	// total function while C_MANIFOLD's own ValueType remains
	// COUPLET, mirroring g_manifold(g_rhs(cm)) in the original source
	// projecting the rhs as a distinct manifold-shaped value.
	PManifold
)

var classNames = map[Class]string{
	CNest:     "C_NEST",
	CManifold: "C_MANIFOLD",
	KName:     "K_NAME",
	KLabel:    "K_LABEL",
	KPath:     "K_PATH",
	KList:     "K_LIST",
	TAlias:    "T_ALIAS",
	TLang:     "T_LANG",
	TCache:    "T_CACHE",
	TDoc:      "T_DOC",
	TCheck:    "T_CHECK",
	TFail:     "T_FAIL",
	TArgument: "T_ARGUMENT",
	TH0:       "T_H0",
	TH1:       "T_H1",
	TH2:       "T_H2",
	TH3:       "T_H3",
	TH4:       "T_H4",
	TH5:       "T_H5",
	TH6:       "T_H6",
	TH7:       "T_H7",
	TH8:       "T_H8",
	TH9:       "T_H9",
	TPath:     "T_PATH",
	TString:   "T_STRING",
	PWs:       "P_WS",
	PString:   "P_STRING",
	PArgument: "P_ARGUMENT",
	PManifold: "P_MANIFOLD",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// VType is the payload shape a node's value projects to.
type VType uint8

const (
	VInvalid VType = iota
	VString
	VLabel
	VWs
	VCouplet
	VManifold
)

func (t VType) String() string {
	switch t {
	case VString:
		return "string"
	case VLabel:
		return "label"
	case VWs:
		return "ws"
	case VCouplet:
		return "couplet"
	case VManifold:
		return "manifold"
	default:
		return "invalid"
	}
}

// ValueType is total: every Class maps to exactly one payload shape.
func ValueType(c Class) VType {
	switch c {
	case CManifold:
		return VCouplet
	case PManifold:
		return VManifold
	case CNest:
		return VCouplet
	case KName, PString:
		return VString
	case KLabel:
		return VLabel
	case KPath, KList, PWs:
		return VWs
	case TAlias, TLang, TCache, TDoc, TString:
		return VCouplet
	case TCheck, TFail, TArgument,
		TH0, TH1, TH2, TH3, TH4, TH5, TH6, TH7, TH8, TH9,
		TPath:
		return VCouplet
	case PArgument:
		return VCouplet
	default:
		return VInvalid
	}
}

// IsModifier reports whether c is one of the modifier classes that
// add_modifier knows how to dispatch on (T_ALIAS .. T_ARGUMENT, the
// ten hook slots).
func IsModifier(c Class) bool {
	switch c {
	case TH0, TH1, TH2, TH3, TH4, TH5, TH6, TH7, TH8, TH9,
		TCache, TCheck, TFail, TAlias, TLang, TDoc, TArgument:
		return true
	default:
		return false
	}
}

// HookIndex returns the 0-9 slot index for a T_H* class, or -1 if c
// is not a hook class.
func HookIndex(c Class) int {
	switch c {
	case TH0:
		return 0
	case TH1:
		return 1
	case TH2:
		return 2
	case TH3:
		return 3
	case TH4:
		return 4
	case TH5:
		return 5
	case TH6:
		return 6
	case TH7:
		return 7
	case TH8:
		return 8
	case TH9:
		return 9
	default:
		return -1
	}
}
