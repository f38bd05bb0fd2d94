// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polytree

import (
	"time"

	"cogentcore.org/polytree/view"
)

// Config is the configuration for polytree, set from
// defaults, the polytree.toml file, and command line flags.
type Config struct {

	// Title is the window title.
	Title string `default:"Multiple Cubes"`

	// Width is the minimum width of the scene, in dp.
	Width int `default:"800"`

	// Height is the minimum height of the scene, in dp.
	Height int `default:"800"`

	// Seed is the random seed for the node codes.
	// If it is 0, the current time is used.
	Seed int64

	// Delay is the pause on each node during a search.
	Delay time.Duration `default:"1s"`

	// Scale is the initial scale of the view.
	Scale float32 `default:"0.2"`

	// RotateStep is the rotation in degrees for each arrow key press.
	RotateStep float32 `default:"5"`

	// MoveStep is the translation for each w, a, s, d key press.
	MoveStep float32 `default:"0.1"`

	// ScaleStep is the scale change for each [ or ] key press.
	ScaleStep float32 `default:"0.1"`

	// Debug turns on debug level logging.
	Debug bool `flag:"d,debug"`
}

// Steps returns the view steps from the config.
func (c *Config) Steps() view.Steps {
	return view.Steps{Rotate: c.RotateStep, Move: c.MoveStep, Scale: c.ScaleStep}
}

// View returns the initial view from the config.
func (c *Config) View() view.View {
	v := view.Default()
	v.Scale = c.Scale
	return v
}
