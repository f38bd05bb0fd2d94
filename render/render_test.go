// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/polytree/pyramid"
	"cogentcore.org/polytree/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T) *Scene {
	tr, err := pyramid.NewRandom(randx.NewSysRand(7))
	require.NoError(t, err)
	return New(xyz.NewScene(), tr)
}

func TestBuild(t *testing.T) {
	s := newTestScene(t)
	assert.Equal(t, pyramid.NodesN, s.move.NumChildren()-len(s.edges))
	assert.Len(t, s.edges, pyramid.NodesN-1)
	for i, gp := range s.nodes {
		require.NotNil(t, gp, "node %d", i)
		assert.Equal(t, s.Tree.Node(i).Pos(), gp.Pose.Pos)
		if s.Tree.Code(i).Shape() == pyramid.Teapot {
			assert.Equal(t, 4, gp.NumChildren())
		} else {
			assert.Equal(t, 1, gp.NumChildren())
		}
	}
	for _, nm := range []string{CubeMesh, SphereMesh, TetrahedronMesh, TeapotBodyMesh, TeapotLidMesh, TeapotSpoutMesh, TeapotHandleMesh} {
		ms, err := s.XYZ.MeshByName(nm)
		require.NoError(t, err, nm)
		assert.NotNil(t, ms, nm)
	}
	assert.Equal(t, math32.Vec3(0, 0, CameraDistance), s.XYZ.Camera.Pose.Pos)
}

func TestEdges(t *testing.T) {
	s := newTestScene(t)
	require.Len(t, s.edges, pyramid.NodesN-1)
	for k, ln := range s.edges {
		i := k + 1
		p := pyramid.Parent(i)
		st, ed := pyramid.Layout[i], pyramid.Layout[p]
		assert.Equal(t, fmt.Sprintf("edge-%d", i), ln.Name)
		assert.Equal(t, pyramid.Foreground, ln.Material.Color)

		// the unit line runs from -0.5 to 0.5 on X before its pose
		half := math32.Vec3(0.5*ln.Pose.Scale.X, 0, 0).MulQuat(ln.Pose.Quat)
		from := ln.Pose.Pos.Sub(half)
		to := ln.Pose.Pos.Add(half)
		assert.InDelta(t, st.DistanceTo(ed), ln.Pose.Scale.X, 1e-4, "edge %d", i)
		assert.InDelta(t, 0, from.DistanceTo(st), 1e-4, "edge %d start", i)
		assert.InDelta(t, 0, to.DistanceTo(ed), 1e-4, "edge %d end", i)
		assert.InDelta(t, EdgeWidth, ln.Pose.Scale.Y, 1e-6)
	}
}

func TestSetView(t *testing.T) {
	s := newTestScene(t)
	v := view.View{RotateX: 25, RotateY: -15, TranslateX: 0.3, TranslateY: -0.1, Scale: -0.1}
	s.SetView(v)
	assert.Equal(t, math32.Vec3(-0.1, -0.1, -0.1), s.scale.Pose.Scale)
	assert.Equal(t, math32.Vec3(0.3, -0.1, 0), s.move.Pose.Pos)

	var q math32.Quat
	q.SetFromAxisAngle(math32.Vec3(1, 0, 0), math32.DegToRad(25))
	assert.InDelta(t, q.X, s.rotateX.Pose.Quat.X, 1e-5)
	assert.InDelta(t, q.W, s.rotateX.Pose.Quat.W, 1e-5)
}

func TestHighlight(t *testing.T) {
	s := newTestScene(t)
	palette := s.Tree.Code(3).Color().RGBA()
	assert.Equal(t, palette, s.NodeColor(3))

	s.Highlight(3, true)
	assert.True(t, s.IsHighlighted(3))
	assert.Equal(t, pyramid.Foreground, s.NodeColor(3))
	sld := s.nodes[3].Child(0).(*xyz.Solid)
	assert.Equal(t, pyramid.Foreground, sld.Material.Color)

	s.Highlight(5, true)
	s.Reset()
	assert.False(t, s.IsHighlighted(3))
	assert.False(t, s.IsHighlighted(5))
	assert.Equal(t, palette, sld.Material.Color)
}
