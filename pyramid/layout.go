// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pyramid

import "cogentcore.org/core/math32"

// Layout is the position of each node by heap index. The root is at
// the bottom and each level is 4 units above its parent level, with
// every node centered below its two children, so the 16 leaves form
// the widest row at the top.
var Layout = [NodesN]math32.Vector3{
	// level 0
	{X: 0, Y: -8, Z: 0},

	// level 1
	{X: -8, Y: -4, Z: 0}, {X: 8, Y: -4, Z: 0},

	// level 2
	{X: -12, Y: 0, Z: 0}, {X: -4, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 12, Y: 0, Z: 0},

	// level 3
	{X: -14, Y: 4, Z: 0}, {X: -10, Y: 4, Z: 0}, {X: -6, Y: 4, Z: 0}, {X: -2, Y: 4, Z: 0},
	{X: 2, Y: 4, Z: 0}, {X: 6, Y: 4, Z: 0}, {X: 10, Y: 4, Z: 0}, {X: 14, Y: 4, Z: 0},

	// level 4
	{X: -15, Y: 8, Z: 0}, {X: -13, Y: 8, Z: 0}, {X: -11, Y: 8, Z: 0}, {X: -9, Y: 8, Z: 0},
	{X: -7, Y: 8, Z: 0}, {X: -5, Y: 8, Z: 0}, {X: -3, Y: 8, Z: 0}, {X: -1, Y: 8, Z: 0},
	{X: 1, Y: 8, Z: 0}, {X: 3, Y: 8, Z: 0}, {X: 5, Y: 8, Z: 0}, {X: 7, Y: 8, Z: 0},
	{X: 9, Y: 8, Z: 0}, {X: 11, Y: 8, Z: 0}, {X: 13, Y: 8, Z: 0}, {X: 15, Y: 8, Z: 0},
}
