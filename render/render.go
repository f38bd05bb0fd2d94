// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render builds an [xyz.Scene] showing a [pyramid.Tree]:
// one solid (or group of solids) per node and a line per edge,
// under a chain of groups that apply a [view.View].
package render

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/polytree/pyramid"
	"cogentcore.org/polytree/view"
)

const (
	// EdgeWidth is the width of the edge lines.
	EdgeWidth = 0.05

	// CameraDistance is the distance of the camera from the origin, along +Z.
	CameraDistance = 5

	// FOV is the vertical field of view of the camera in degrees,
	// matching a frustum of half-height 1 at a near distance of 1.5.
	FOV = 67.38

	// Near and Far are the camera clipping distances.
	Near = 1.5
	Far  = 20
)

// Scene shows a [pyramid.Tree] in an [xyz.Scene]. The view transform is
// applied by four nested groups, in order: rotate about X, rotate about Y,
// scale, translate. Because each group's pose applies to everything
// below it, the nodes see exactly that order.
type Scene struct {

	// XYZ is the scene being drawn into.
	XYZ *xyz.Scene

	// Tree is the tree being shown.
	Tree *pyramid.Tree

	rotateX, rotateY, scale, move *xyz.Group

	nodes       [pyramid.NodesN]*xyz.Group
	edges       []*xyz.Solid
	highlighted [pyramid.NodesN]bool
}

// New builds tr into sc and returns the [Scene] for it. It sets the
// background, lights and camera of sc, and adds the shared meshes.
func New(sc *xyz.Scene, tr *pyramid.Tree) *Scene {
	s := &Scene{XYZ: sc, Tree: tr}
	s.configScene()
	s.configMeshes()
	s.configNodes()
	s.SetView(view.Default())
	return s
}

func (s *Scene) configScene() {
	sc := s.XYZ
	sc.Background = colors.Uniform(pyramid.Background)
	xyz.NewAmbient(sc, "ambient", 0.6, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "directional", 0.6, xyz.DirectSun)
	dir.Pos.Set(0, 2, CameraDistance)

	sc.Camera.FOV = FOV
	sc.Camera.Near = Near
	sc.Camera.Far = Far
	sc.Camera.Pose.Pos.Set(0, 0, CameraDistance)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
}

func (s *Scene) configNodes() {
	s.rotateX = xyz.NewGroup(s.XYZ)
	s.rotateX.SetName("rotate-x")
	s.rotateY = xyz.NewGroup(s.rotateX)
	s.rotateY.SetName("rotate-y")
	s.scale = xyz.NewGroup(s.rotateY)
	s.scale.SetName("scale")
	s.move = xyz.NewGroup(s.scale)
	s.move.SetName("move")

	for i, nd := range s.Tree.Nodes() {
		gp := xyz.NewGroup(s.move)
		gp.SetName(fmt.Sprintf("node-%d", i))
		p := nd.Pos()
		gp.SetPos(p.X, p.Y, p.Z)
		s.addShape(gp, nd.Code().Shape())
		s.nodes[i] = gp
		s.setNodeColor(i, s.NodeColor(i))
	}
	for _, e := range s.Tree.Edges() {
		st := s.Tree.Node(e.Child).Pos()
		ed := s.Tree.Node(e.Parent).Pos()
		ln := xyz.NewLine(s.XYZ, s.move, fmt.Sprintf("edge-%d", e.Child), st, ed, EdgeWidth, pyramid.Foreground)
		s.edges = append(s.edges, ln)
	}
}

// SetView sets the transform groups from v.
func (s *Scene) SetView(v view.View) {
	s.rotateX.SetAxisRotation(1, 0, 0, v.RotateX)
	s.rotateY.SetAxisRotation(0, 1, 0, v.RotateY)
	s.scale.SetScale(v.Scale, v.Scale, v.Scale)
	s.move.SetPos(v.TranslateX, v.TranslateY, 0)
	s.XYZ.SetNeedsUpdate()
}

// Highlight sets whether node i is drawn in the highlight color.
// The caller must request a render of the widget showing the scene
// for the change to appear.
func (s *Scene) Highlight(i int, on bool) {
	s.highlighted[i] = on
	s.setNodeColor(i, s.NodeColor(i))
	s.XYZ.SetNeedsRender()
}

// IsHighlighted returns whether node i is highlighted.
func (s *Scene) IsHighlighted(i int) bool {
	return s.highlighted[i]
}

// Reset turns off all highlights.
func (s *Scene) Reset() {
	for i := range s.nodes {
		if s.highlighted[i] {
			s.Highlight(i, false)
		}
	}
}

// NodeColor returns the color node i is currently drawn with.
func (s *Scene) NodeColor(i int) color.RGBA {
	if s.highlighted[i] {
		return pyramid.Foreground
	}
	return s.Tree.Code(i).Color().RGBA()
}

// setNodeColor sets the color of every solid making up node i.
func (s *Scene) setNodeColor(i int, clr color.RGBA) {
	s.nodes[i].WalkDown(func(n tree.Node) bool {
		if sld, ok := n.(*xyz.Solid); ok {
			sld.SetColor(clr)
		}
		return tree.Continue
	})
}
