// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pyramid

import (
	"cogentcore.org/lab/base/randx"
)

// Code is a two-digit node identifier. The tens digit selects
// the shape (1 = [Cube] through 4 = [Tetrahedron]) and the
// ones digit selects the entry in [Palette].
type Code int

const (
	// CodeMin is the smallest valid [Code].
	CodeMin Code = 10

	// CodeMax is one past the largest valid [Code].
	CodeMax Code = 10 * (Code(ShapesN) + 1)
)

// NewCode returns the code for given shape and color.
func NewCode(sh Shapes, cl Colors) Code {
	return Code((int(sh)+1)*10 + int(cl))
}

// IsValid returns whether the code is in [CodeMin, CodeMax).
func (c Code) IsValid() bool {
	return c >= CodeMin && c < CodeMax
}

// Shape returns the shape selected by the tens digit.
func (c Code) Shape() Shapes {
	return Shapes(int(c)/10 - 1)
}

// Color returns the color selected by the ones digit.
func (c Code) Color() Colors {
	return Colors(int(c) % 10)
}

// Shapes are the kinds of solid a node is drawn as.
type Shapes int32 //enums:enum

const (
	// Cube is a unit cube.
	Cube Shapes = iota

	// Sphere is a sphere.
	Sphere

	// Teapot is a teapot made of a body, spout, handle and lid.
	Teapot

	// Tetrahedron is a triangular pyramid.
	Tetrahedron
)

// Colors are the entries of [Palette].
type Colors int32 //enums:enum

const (
	Blue Colors = iota
	Green
	Maroon
	Mauve
	Peach
	Pink
	Red
	Rosewater
	Sky
	Yellow
)

// SampleCodes returns [NodesN] distinct codes drawn uniformly
// without replacement from [CodeMin, CodeMax).
func SampleCodes(rnd randx.Rand) []Code {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	perm := rnd.Perm(int(CodeMax - CodeMin))
	codes := make([]Code, NodesN)
	for i := range codes {
		codes[i] = CodeMin + Code(perm[i])
	}
	return codes
}
