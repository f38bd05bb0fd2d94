// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pyramid

import "cogentcore.org/core/math32"

// Node is one element of the [Tree]: a coded shape at a fixed position.
type Node struct {
	index int
	pos   math32.Vector3
	code  Code
}

// Index returns the heap index of the node.
func (n Node) Index() int { return n.index }

// Pos returns the position of the node in scene coordinates.
func (n Node) Pos() math32.Vector3 { return n.pos }

// Code returns the identifier of the node.
func (n Node) Code() Code { return n.code }

// Parent returns the parent index, or -1 for the root.
func (n Node) Parent() int { return Parent(n.index) }

// Children returns the child indexes, or nil for a leaf.
func (n Node) Children() []int { return Children(n.index) }

// Parent returns the heap parent of index i, or -1 for the root.
func Parent(i int) int {
	if i <= 0 {
		return -1
	}
	return (i - 1) / 2
}

// Children returns the heap children of index i, left first,
// or nil if i is a leaf.
func Children(i int) []int {
	if i < 0 || i >= LeafStart {
		return nil
	}
	return []int{2*i + 1, 2*i + 2}
}

// Level returns the depth of index i, with the root at level 0.
func Level(i int) int {
	lv := 0
	for i > 0 {
		i = Parent(i)
		lv++
	}
	return lv
}
