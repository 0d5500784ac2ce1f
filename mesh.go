package rasterizer

import "fmt"

// Mesh is an indexed triangle list.
//
// Every three consecutive entries of Indices name the vertices of one
// triangle. Indices are 0-based.
type Mesh struct {
	Vertices []Vec3
	Indices  []uint32
}

// TriangleCount returns the number of complete triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertices of the i-th triangle.
// The mesh must be valid and i in range.
func (m *Mesh) Triangle(i int) [3]Vec3 {
	j := i * 3
	return [3]Vec3{
		m.Vertices[m.Indices[j]],
		m.Vertices[m.Indices[j+1]],
		m.Vertices[m.Indices[j+2]],
	}
}

// Validate checks that the index list describes whole triangles and that
// every index refers to an existing vertex.
func (m *Mesh) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil mesh", ErrInvalidMesh)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi Vec3) {
	if len(m.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	lo, hi = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo.X, hi.X = min(lo.X, v.X), max(hi.X, v.X)
		lo.Y, hi.Y = min(lo.Y, v.Y), max(hi.Y, v.Y)
		lo.Z, hi.Z = min(lo.Z, v.Z), max(hi.Z, v.Z)
	}
	return lo, hi
}

// Cube returns a unit cube centred at (0, 0, -1), one unit in front of the
// eye. Its near face lies in the plane z = -0.5 and fills the image at the
// default near plane distance.
func Cube() *Mesh {
	return &Mesh{
		Vertices: []Vec3{
			{-0.5, -0.5, -0.5},
			{0.5, -0.5, -0.5},
			{-0.5, 0.5, -0.5},
			{0.5, 0.5, -0.5},
			{-0.5, 0.5, -1.5},
			{0.5, 0.5, -1.5},
			{-0.5, -0.5, -1.5},
			{0.5, -0.5, -1.5},
		},
		Indices: []uint32{
			0, 1, 2,
			2, 1, 3,
			2, 3, 4,
			4, 3, 5,
			4, 5, 6,
			6, 5, 7,
			6, 7, 0,
			0, 7, 1,
			1, 7, 3,
			3, 7, 5,
			6, 0, 4,
			4, 0, 2,
		},
	}
}
