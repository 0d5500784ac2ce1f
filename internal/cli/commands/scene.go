package commands

import (
	"fmt"
	"math"

	"github.com/gogpu/rasterizer"
	"github.com/gogpu/rasterizer/internal/cli/config"
)

// Scene is a mesh placed in front of the eye.
type Scene struct {
	Mesh *rasterizer.Mesh

	center rasterizer.Vec3
	radius float64
	camera config.Camera
}

// LoadScene reads the mesh at path, or uses the built-in cube when path is
// empty, and places it according to cam.
func LoadScene(path string, cam config.Camera) (*Scene, error) {
	mesh := rasterizer.Cube()
	if path != "" {
		var err error
		mesh, err = rasterizer.LoadOBJ(path)
		if err != nil {
			return nil, fmt.Errorf("load mesh: %w", err)
		}
	}
	return NewScene(mesh, cam), nil
}

// NewScene places mesh according to cam.
func NewScene(mesh *rasterizer.Mesh, cam config.Camera) *Scene {
	lo, hi := mesh.Bounds()
	return &Scene{
		Mesh:   mesh,
		center: lo.Add(hi).Mul(0.5),
		radius: hi.Sub(lo).Length() / 2,
		camera: cam,
	}
}

// Transform returns the model-view matrix. The mesh is centred on the
// origin, rotated by the camera angles plus yaw degrees about Y and moved
// Distance units down -Z.
//
// For the built-in cube at distance 1 with no rotation this is the
// identity.
func (s *Scene) Transform(yaw float64) rasterizer.Matrix {
	c := s.camera
	return rasterizer.Translate(0, 0, -c.Distance).
		Multiply(rasterizer.RotateZ(radians(c.RotateZ))).
		Multiply(rasterizer.RotateX(radians(c.RotateX))).
		Multiply(rasterizer.RotateY(radians(c.RotateY + yaw))).
		Multiply(rasterizer.Translate(-s.center.X, -s.center.Y, -s.center.Z))
}

// DepthRange returns the depth interval the mesh can occupy in any
// orientation.
func (s *Scene) DepthRange() (near, far float64) {
	d := s.camera.Distance
	return max(d-s.radius, 0), d + s.radius
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
