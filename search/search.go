// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search provides a paced depth-first search for a node code
// over a heap-ordered tree, used to animate the search path.
package search

import (
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/polytree/pyramid"
)

// DefaultDelay is the pause after entering each node in [Search.Run].
const DefaultDelay = time.Second

// Tree is the tree being searched. [*pyramid.Tree] implements it.
type Tree interface {
	// Len returns the number of nodes.
	Len() int

	// Code returns the code of the node at given index.
	Code(i int) pyramid.Code

	// Children returns the child indexes of node i, left first.
	Children(i int) []int
}

// Search is a pre-order depth-first search from the root for a target
// code. It uses an explicit stack instead of recursion, and each call
// to [Search.Step] enters exactly one node, so a caller can show the
// path as it is taken.
type Search struct {

	// Target is the code being searched for.
	Target pyramid.Code

	// Delay is the pause after each node entered by [Search.Run].
	Delay time.Duration

	// Visited has the indexes of the nodes entered so far, in order.
	Visited []int

	// Sleep is used by [Search.Run] to pause; defaults to [time.Sleep].
	Sleep func(d time.Duration)

	tree    Tree
	stack   []int
	visited map[int]bool
	found   int
}

// New returns a new [Search] for target over the given tree,
// positioned at the root.
func New(tree Tree, target pyramid.Code) *Search {
	s := &Search{Target: target, Delay: DefaultDelay, Sleep: time.Sleep, tree: tree, found: -1}
	s.visited = make(map[int]bool, tree.Len())
	if tree.Len() > 0 {
		s.stack = []int{0}
	}
	return s
}

// Step enters the next node in pre-order, marking it visited, and
// returns its index. It returns false once the target has been found
// or every reachable node has been entered.
func (s *Search) Step() (int, bool) {
	if s.found >= 0 {
		return -1, false
	}
	for len(s.stack) > 0 {
		n := len(s.stack) - 1
		i := s.stack[n]
		s.stack = s.stack[:n]
		if s.visited[i] {
			continue
		}
		s.visited[i] = true
		s.Visited = append(s.Visited, i)
		if s.tree.Code(i) == s.Target {
			s.found = i
			s.stack = nil
			return i, true
		}
		kids := s.tree.Children(i)
		for k := len(kids) - 1; k >= 0; k-- { // left child on top
			if !s.visited[kids[k]] {
				s.stack = append(s.stack, kids[k])
			}
		}
		return i, true
	}
	return -1, false
}

// Done returns whether the search has finished.
func (s *Search) Done() bool {
	return s.found >= 0 || len(s.stack) == 0
}

// Found returns whether the target has been found.
func (s *Search) Found() bool {
	return s.found >= 0
}

// FoundIndex returns the index of the target, or -1 if it
// has not been found.
func (s *Search) FoundIndex() int {
	return s.found
}

// Run steps the search to completion, calling visit (if non-nil) on
// each entered node and then pausing for [Search.Delay]. It blocks
// until the target is found or the whole tree has been entered, and
// returns whether the target was found. There is no way to stop a
// search early.
func (s *Search) Run(visit func(i int)) bool {
	sleep := s.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for {
		i, ok := s.Step()
		if !ok {
			break
		}
		logx.PrintfDebug("search: entered node %d (level %d, code %d) looking for %d\n", i, pyramid.Level(i), s.tree.Code(i), s.Target)
		if visit != nil {
			visit(i)
		}
		if s.Delay > 0 {
			sleep(s.Delay)
		}
	}
	if s.Found() {
		logx.PrintfDebug("search: found %d at node %d\n", s.Target, s.FoundIndex())
	}
	return s.Found()
}
