// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pyramid

import "image/color"

// Palette is the fill color for each [Colors] value.
var Palette = [ColorsN]color.RGBA{
	Blue:      {137, 180, 250, 255},
	Green:     {166, 227, 161, 255},
	Maroon:    {235, 160, 172, 255},
	Mauve:     {203, 166, 247, 255},
	Peach:     {250, 179, 135, 255},
	Pink:      {245, 194, 231, 255},
	Red:       {243, 139, 168, 255},
	Rosewater: {245, 224, 220, 255},
	Sky:       {137, 220, 235, 255},
	Yellow:    {249, 226, 175, 255},
}

var (
	// Background is the scene clear color.
	Background = color.RGBA{30, 30, 46, 255}

	// Foreground is used for edges and for highlighted nodes.
	Foreground = color.RGBA{205, 214, 244, 255}
)

// RGBA returns the palette color for c.
func (c Colors) RGBA() color.RGBA {
	return Palette[c]
}
