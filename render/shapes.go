// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/xyz"
	"cogentcore.org/polytree/pyramid"
)

// Mesh names, one set shared by all nodes.
const (
	CubeMesh         = "cube"
	SphereMesh       = "sphere"
	TetrahedronMesh  = "tetrahedron"
	TeapotBodyMesh   = "teapot-body"
	TeapotLidMesh    = "teapot-lid"
	TeapotSpoutMesh  = "teapot-spout"
	TeapotHandleMesh = "teapot-handle"
)

func (s *Scene) configMeshes() {
	sc := s.XYZ
	xyz.NewBox(sc, CubeMesh, 1, 1, 1)
	xyz.NewSphere(sc, SphereMesh, 0.7, 20)
	xyz.NewCone(sc, TetrahedronMesh, 1, 0.8, 3, 1, true)

	// xyz has no teapot, so it is put together from parts
	xyz.NewSphere(sc, TeapotBodyMesh, 0.5, 20)
	xyz.NewSphere(sc, TeapotLidMesh, 0.15, 12)
	xyz.NewCone(sc, TeapotSpoutMesh, 0.5, 0.12, 12, 1, true)
	xyz.NewTorus(sc, TeapotHandleMesh, 0.22, 0.05, 16)
}

// addShape adds the solids for shape sh to the node group gp.
func (s *Scene) addShape(gp *xyz.Group, sh pyramid.Shapes) {
	switch sh {
	case pyramid.Cube:
		s.addSolid(gp, "cube", CubeMesh)
	case pyramid.Sphere:
		s.addSolid(gp, "sphere", SphereMesh)
	case pyramid.Tetrahedron:
		s.addSolid(gp, "tetrahedron", TetrahedronMesh).SetPos(0, -0.2, 0)
	case pyramid.Teapot:
		s.addSolid(gp, "body", TeapotBodyMesh).SetScale(1, 0.75, 1)
		s.addSolid(gp, "lid", TeapotLidMesh).SetPos(0, 0.4, 0)
		s.addSolid(gp, "spout", TeapotSpoutMesh).SetPos(0.55, 0.1, 0).SetAxisRotation(0, 0, 1, -50)
		s.addSolid(gp, "handle", TeapotHandleMesh).SetPos(-0.55, 0.05, 0)
	}
}

func (s *Scene) addSolid(gp *xyz.Group, name, mesh string) *xyz.Solid {
	sld := xyz.NewSolid(gp)
	sld.SetName(name)
	sld.SetMesh(errors.Log1(s.XYZ.MeshByName(mesh)))
	return sld
}
