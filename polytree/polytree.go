// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polytree shows a tree of 31 coded shapes in a 3D window, with
// keys to rotate, move and scale the view, and an animated depth-first
// search for a code entered on standard input.
package polytree

//go:generate core generate -add-types -add-funcs

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/polytree/console"
	"cogentcore.org/polytree/pyramid"
	"cogentcore.org/polytree/render"
	"cogentcore.org/polytree/search"
	"cogentcore.org/polytree/view"
)

// App has the state of a running polytree: the tree, the view,
// and the scene showing them.
type App struct {

	// Config is the configuration the app was made with.
	Config *Config

	// Tree is the tree shown and searched.
	Tree *pyramid.Tree

	// View is the current view transform.
	View view.View

	// Steps are the view changes per key press.
	Steps view.Steps

	// Scene shows the tree; it is set by [App.SetScene].
	Scene *render.Scene

	// In is where search targets are read from.
	In io.Reader

	// Out is where the legend and search results are written.
	Out io.Writer

	// Exit is called with status 1 when the search input is invalid.
	Exit func(code int)

	// Sleep replaces [time.Sleep] for the pause between search steps.
	Sleep func(d time.Duration)

	// widget is the scene widget, if running in a window.
	widget *xyzcore.Scene

	// searching is set while a search is running.
	searching atomic.Bool

	// pending has the keys pressed during a search, handled in
	// order when it ends. It is guarded by mu.
	pending []key.Chord
	mu      sync.Mutex
}

// NewApp returns a new [App] with a tree of random codes drawn using
// [Config.Seed]. It does not make any window.
func NewApp(c *Config) (*App, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logx.PrintlnDebug("polytree: random seed", seed)
	tr, err := pyramid.NewRandom(randx.NewSysRand(seed))
	if err != nil {
		return nil, err
	}
	a := &App{Config: c, Tree: tr, View: c.View(), Steps: c.Steps()}
	a.In = bufio.NewReader(os.Stdin)
	a.Out = os.Stdout
	a.Exit = os.Exit
	return a, nil
}

// SetScene builds the tree into sc with the current view.
func (a *App) SetScene(sc *xyz.Scene) {
	a.Scene = render.New(sc, a.Tree)
	a.Scene.SetView(a.View)
}

// Build adds the scene widget to parent and connects it to the app.
// The widget takes all key presses, and mouse scrolling and dragging
// are turned off so that only the view keys move the scene.
func (a *App) Build(parent tree.Node) *xyzcore.Scene {
	sw := xyzcore.NewScene(parent)
	sw.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(float32(a.Config.Width)), units.Dp(float32(a.Config.Height)))
	})
	a.widget = sw
	a.SetScene(sw.XYZ)

	sw.On(events.Scroll, func(e events.Event) { e.SetHandled() })
	sw.On(events.SlideMove, func(e events.Event) { e.SetHandled() })
	sw.OnKeyChord(func(e events.Event) {
		e.SetHandled()
		a.HandleKey(e.KeyChord())
	})
	return sw
}

// HandleKey does the action bound to ch in [view.Keys]. A [view.Find]
// starts a search on its own goroutine; every other action changes the
// view and asks for a render. Keys pressed while a search is running
// are held and handled in order once it is done.
func (a *App) HandleKey(ch key.Chord) {
	if a.hold(ch) {
		logx.PrintlnDebug("polytree: holding key until search is done:", ch)
		return
	}
	a.do(view.ActionFor(ch))
}

// do does act, and returns whether it started a search.
func (a *App) do(act view.Actions) bool {
	switch act {
	case view.NoAction:
		return false
	case view.Find:
		a.searching.Store(true)
		go a.findOrExit()
		return true
	}
	a.View.Apply(act, a.Steps)
	a.Scene.SetView(a.View)
	a.needsRender()
	return false
}

// IsSearching returns whether a search is running.
func (a *App) IsSearching() bool {
	return a.searching.Load()
}

// hold adds ch to the pending keys if a search is running,
// and returns whether it did.
func (a *App) hold(ch key.Chord) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.searching.Load() {
		return false
	}
	a.pending = append(a.pending, ch)
	return true
}

// endSearch handles the keys pressed during a search, in order, and
// then clears the searching state. A pending find starts the next
// search, which takes over the keys after it.
func (a *App) endSearch() {
	for {
		a.mu.Lock()
		if len(a.pending) == 0 {
			a.searching.Store(false)
			a.mu.Unlock()
			return
		}
		ch := a.pending[0]
		a.pending = a.pending[1:]
		a.mu.Unlock()
		if a.do(view.ActionFor(ch)) {
			return
		}
	}
}

func (a *App) findOrExit() {
	if err := a.Find(); err != nil {
		slog.Error("polytree: could not read search value", "err", err)
		a.Exit(1)
	}
}

// Find prints the code legend, reads a target from [App.In], and
// searches for it, highlighting each node as it is entered and pausing
// for [Config.Delay] on it. It then prints the result and clears the
// highlights. It blocks until the search is done, and then handles
// any keys pressed during it.
func (a *App) Find() error {
	a.searching.Store(true)
	defer a.async(a.endSearch)

	console.Legend(a.Out)
	target, err := console.Prompt(a.Out, a.In)
	if err != nil {
		return err
	}
	logx.PrintlnDebug("polytree: searching for", target, "at node", a.Tree.Index(target))
	s := search.New(a.Tree, target)
	s.Delay = a.Config.Delay
	if a.Sleep != nil {
		s.Sleep = a.Sleep
	}
	found := s.Run(func(i int) {
		a.async(func() { a.Scene.Highlight(i, true) })
	})
	console.Report(a.Out, target, s.Visited, found)
	a.async(a.Scene.Reset)
	return nil
}

// async runs f with the widget locked for updating from outside the
// event loop, and then renders the widget.
func (a *App) async(f func()) {
	if a.widget == nil {
		f()
		return
	}
	a.widget.AsyncLock()
	f()
	a.widget.NeedsRender()
	a.widget.AsyncUnlock()
}

func (a *App) needsRender() {
	if a.widget != nil {
		a.widget.NeedsRender()
	}
}

// Run runs polytree in a new window until the window is closed.
func Run(c *Config) error { //cli:cmd -root
	if c.Debug {
		logx.UserLevel = slog.LevelDebug
	}
	a, err := NewApp(c)
	if err != nil {
		return err
	}
	b := core.NewBody(c.Title)
	sw := a.Build(b)
	b.OnShow(func(e events.Event) {
		sw.SetFocus()
	})
	b.RunMainWindow()
	return nil
}
