// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view has the view transform (rotation, translation and scale)
// that the user changes with the keyboard, and the key bindings for it.
package view

//go:generate core generate

// View is the transform applied to the whole scene: rotation about X,
// then rotation about Y, then uniform scale, then translation.
// None of the values are bounded; the scale can become negative,
// which mirrors the scene.
type View struct {

	// RotateX is the rotation about the X axis, in degrees.
	RotateX float32

	// RotateY is the rotation about the Y axis, in degrees.
	RotateY float32

	// TranslateX is the translation along X, in scaled units.
	TranslateX float32

	// TranslateY is the translation along Y, in scaled units.
	TranslateY float32

	// Scale is the uniform scale factor.
	Scale float32
}

// DefaultScale is the initial [View.Scale].
const DefaultScale = 0.2

// Default returns the initial view: no rotation or translation,
// at [DefaultScale].
func Default() View {
	return View{Scale: DefaultScale}
}

// Steps are the amounts one key press changes a [View] by.
type Steps struct {

	// Rotate is the rotation step in degrees.
	Rotate float32

	// Move is the translation step.
	Move float32

	// Scale is the scale step.
	Scale float32
}

// DefaultSteps returns the standard [Steps].
func DefaultSteps() Steps {
	return Steps{Rotate: 5, Move: 0.1, Scale: 0.1}
}

// Apply changes the view by the given action. It returns false if the
// action does not change the view, which includes [Find].
func (v *View) Apply(act Actions, st Steps) bool {
	switch act {
	case RotateUp:
		v.RotateX += st.Rotate
	case RotateDown:
		v.RotateX -= st.Rotate
	case RotateRight:
		v.RotateY += st.Rotate
	case RotateLeft:
		v.RotateY -= st.Rotate
	case MoveUp:
		v.TranslateY -= st.Move
	case MoveDown:
		v.TranslateY += st.Move
	case MoveLeft:
		v.TranslateX += st.Move
	case MoveRight:
		v.TranslateX -= st.Move
	case ScaleDown:
		v.Scale -= st.Scale
	case ScaleUp:
		v.Scale += st.Scale
	default:
		return false
	}
	return true
}
