// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"cogentcore.org/core/events/key"
	"github.com/stretchr/testify/assert"
)

func press(v *View, chords ...key.Chord) {
	st := DefaultSteps()
	for _, ch := range chords {
		v.Apply(ActionFor(ch), st)
	}
}

func TestScale(t *testing.T) {
	v := Default()
	assert.Equal(t, float32(0.2), v.Scale)
	press(&v, "]", "]", "]", "[")
	assert.InDelta(t, 0.4, v.Scale, 1e-5)
}

func TestScaleNegative(t *testing.T) {
	v := Default()
	press(&v, "[", "[", "[", "[")
	assert.InDelta(t, -0.2, v.Scale, 1e-5)
}

func TestRotate(t *testing.T) {
	v := Default()
	press(&v, "UpArrow", "UpArrow", "UpArrow", "UpArrow", "UpArrow", "LeftArrow", "LeftArrow", "LeftArrow")
	assert.Equal(t, float32(25), v.RotateX)
	assert.Equal(t, float32(-15), v.RotateY)

	press(&v, "DownArrow", "RightArrow")
	assert.Equal(t, float32(20), v.RotateX)
	assert.Equal(t, float32(-10), v.RotateY)
}

func TestRotateUnbounded(t *testing.T) {
	v := Default()
	for range 100 {
		press(&v, "UpArrow")
	}
	assert.Equal(t, float32(500), v.RotateX)
}

func TestMove(t *testing.T) {
	tests := []struct {
		ch   key.Chord
		x, y float32
	}{
		{"w", 0, -0.1},
		{"s", 0, 0.1},
		{"a", 0.1, 0},
		{"d", -0.1, 0},
	}
	for _, tt := range tests {
		v := Default()
		press(&v, tt.ch)
		assert.InDelta(t, tt.x, v.TranslateX, 1e-6, "key %s", tt.ch)
		assert.InDelta(t, tt.y, v.TranslateY, 1e-6, "key %s", tt.ch)
	}
}

func TestUnhandled(t *testing.T) {
	v := Default()
	assert.False(t, v.Apply(Find, DefaultSteps()))
	assert.False(t, v.Apply(ActionFor("x"), DefaultSteps()))
	assert.Equal(t, Default(), v)
	assert.Equal(t, Find, ActionFor("f"))
	assert.Equal(t, NoAction, ActionFor("Control+f"))
}

func TestActionsString(t *testing.T) {
	assert.Equal(t, "ScaleUp", ScaleUp.String())
	var a Actions
	assert.NoError(t, a.SetString("MoveLeft"))
	assert.Equal(t, MoveLeft, a)
}
