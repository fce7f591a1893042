package models

import (
	"fmt"
	"io"
	"slices"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// BuildGLTF converts the mesh into a glTF document with one primitive per
// material.
func BuildGLTF(m *Mesh) *gltf.Document {
	doc := gltf.NewDocument()

	for _, mat := range m.Materials {
		c := mat.BaseColor
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name:        mat.Name,
			DoubleSided: true,
			AlphaMode:   alphaMode(c[3]),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{c[0], c[1], c[2], c[3]},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(0.8),
			},
		})
	}

	groups := m.FacesByMaterial()
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	gm := &gltf.Mesh{Name: m.Name}
	for _, mat := range keys {
		faces := groups[mat]
		positions := make([][3]float32, 0, len(faces)*3)
		normals := make([][3]float32, 0, len(faces)*3)
		indices := make([]uint32, 0, len(faces)*3)
		for _, fi := range faces {
			f := m.Faces[fi]
			for _, vi := range f.V {
				v := m.Vertices[vi]
				indices = append(indices, uint32(len(positions)))
				positions = append(positions, [3]float32{float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z)})
				normals = append(normals, [3]float32{float32(v.Normal.X), float32(v.Normal.Y), float32(v.Normal.Z)})
			}
		}
		prim := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
		}
		if mat >= 0 && mat < len(doc.Materials) {
			prim.Material = gltf.Index(mat)
		}
		gm.Primitives = append(gm.Primitives, prim)
	}

	doc.Meshes = append(doc.Meshes, gm)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// WriteGLB writes the mesh as a binary glTF container.
func WriteGLB(w io.Writer, m *Mesh) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(BuildGLTF(m)); err != nil {
		return fmt.Errorf("encode glb: %w", err)
	}
	return nil
}

func alphaMode(a float64) gltf.AlphaMode {
	if a < 1 {
		return gltf.AlphaBlend
	}
	return gltf.AlphaOpaque
}
