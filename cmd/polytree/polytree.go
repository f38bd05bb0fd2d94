// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command polytree shows a tree of coded 3D shapes and animates
// depth-first searches over it.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/polytree/polytree"
)

func main() {
	opts := cli.DefaultOptions("polytree", "Polytree shows a tree of coded 3D shapes and animates depth-first searches over it.")
	opts.DefaultFiles = []string{"polytree.toml"}
	cli.Run(opts, &polytree.Config{}, polytree.Run)
}
