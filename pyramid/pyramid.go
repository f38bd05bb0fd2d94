// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pyramid provides the fixed tree of 31 coded nodes that polytree
// renders and searches. The tree is stored as a flat slice in binary heap
// order: the parent of node i is (i-1)/2 and its children are 2i+1 and 2i+2,
// so no links are stored on the nodes themselves.
package pyramid

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/lab/base/randx"
)

const (
	// NodesN is the number of nodes in the tree: a complete binary
	// tree of [Depth] levels.
	NodesN = 1<<Depth - 1

	// Depth is the number of levels in the tree.
	Depth = 5

	// LeafStart is the index of the first leaf; nodes at or
	// above it have no children.
	LeafStart = NodesN / 2
)

// Tree is the complete binary tree of [NodesN] nodes.
// It is immutable once made by [New].
type Tree struct {
	nodes [NodesN]Node
}

// Edge is a parent-child link between two node indexes.
type Edge struct {
	Child, Parent int
}

// New makes a new [Tree] placing node i at coords[i] with code codes[i].
// It returns an error if fewer than [NodesN] coordinates or codes are
// given, or if the first [NodesN] codes are not distinct valid codes.
func New(coords []math32.Vector3, codes []Code) (*Tree, error) {
	if len(coords) < NodesN {
		return nil, fmt.Errorf("pyramid.New: need %d coordinates, got %d", NodesN, len(coords))
	}
	if len(codes) < NodesN {
		return nil, fmt.Errorf("pyramid.New: need %d codes, got %d", NodesN, len(codes))
	}
	seen := make(map[Code]bool, NodesN)
	for i, c := range codes[:NodesN] {
		if !c.IsValid() {
			return nil, fmt.Errorf("pyramid.New: code %d at index %d is outside [%d, %d)", c, i, CodeMin, CodeMax)
		}
		if seen[c] {
			return nil, fmt.Errorf("pyramid.New: duplicate code %d at index %d", c, i)
		}
		seen[c] = true
	}
	t := &Tree{}
	for i := range t.nodes {
		t.nodes[i] = Node{index: i, pos: coords[i], code: codes[i]}
	}
	return t, nil
}

// NewRandom makes a new [Tree] on [Layout] with codes drawn
// from rnd by [SampleCodes].
func NewRandom(rnd randx.Rand) (*Tree, error) {
	return New(Layout[:], SampleCodes(rnd))
}

// Len returns the number of nodes, which is always [NodesN].
func (t *Tree) Len() int {
	return NodesN
}

// Node returns the node at given index.
func (t *Tree) Node(i int) Node {
	return t.nodes[i]
}

// Nodes returns a copy of all nodes in index order.
func (t *Tree) Nodes() []Node {
	ns := make([]Node, NodesN)
	copy(ns, t.nodes[:])
	return ns
}

// Code returns the code of the node at given index.
func (t *Tree) Code(i int) Code {
	return t.nodes[i].code
}

// Children returns the child indexes of the node at given index.
func (t *Tree) Children(i int) []int {
	return Children(i)
}

// Index returns the index of the node with given code,
// or -1 if no node has it.
func (t *Tree) Index(c Code) int {
	for i := range t.nodes {
		if t.nodes[i].code == c {
			return i
		}
	}
	return -1
}

// Edges returns the link from every non-root node to its parent,
// in child index order.
func (t *Tree) Edges() []Edge {
	es := make([]Edge, 0, NodesN-1)
	for i := 1; i < NodesN; i++ {
		es = append(es, Edge{Child: i, Parent: Parent(i)})
	}
	return es
}
