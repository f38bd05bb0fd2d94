// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "cogentcore.org/core/events/key"

// Actions are the things a key press can do.
type Actions int32 //enums:enum

const (
	// NoAction is for keys that are not bound.
	NoAction Actions = iota

	// RotateUp increases the rotation about X.
	RotateUp

	// RotateDown decreases the rotation about X.
	RotateDown

	// RotateLeft decreases the rotation about Y.
	RotateLeft

	// RotateRight increases the rotation about Y.
	RotateRight

	// MoveUp decreases the Y translation.
	MoveUp

	// MoveDown increases the Y translation.
	MoveDown

	// MoveLeft increases the X translation.
	MoveLeft

	// MoveRight decreases the X translation.
	MoveRight

	// ScaleDown decreases the scale, with no lower bound.
	ScaleDown

	// ScaleUp increases the scale.
	ScaleUp

	// Find prompts for a code and searches the tree for it.
	Find
)

// Keys maps key chords to actions.
var Keys = map[key.Chord]Actions{
	"UpArrow":    RotateUp,
	"DownArrow":  RotateDown,
	"LeftArrow":  RotateLeft,
	"RightArrow": RotateRight,
	"w":          MoveUp,
	"s":          MoveDown,
	"a":          MoveLeft,
	"d":          MoveRight,
	"[":          ScaleDown,
	"]":          ScaleUp,
	"f":          Find,
}

// ActionFor returns the action bound to the given chord in [Keys],
// or [NoAction].
func ActionFor(ch key.Chord) Actions {
	if act, ok := Keys[ch]; ok {
		return act
	}
	return NoAction
}
