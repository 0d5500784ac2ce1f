package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/rasterizer"
	"github.com/gogpu/rasterizer/internal/cli/config"
)

func TestScene_DefaultCubeIsIdentity(t *testing.T) {
	s, err := LoadScene("", config.Camera{Distance: config.DefaultDistance})
	require.NoError(t, err)

	assert.True(t, s.Transform(0).IsIdentity(), "default camera should reproduce the demo view")
	assert.Equal(t, 12, s.Mesh.TriangleCount())
}

func TestScene_Transform(t *testing.T) {
	s := NewScene(rasterizer.Cube(), config.Camera{RotateY: 90, Distance: 4})
	m := s.Transform(0)

	// The mesh centre lands on the view axis at the requested distance.
	c := m.TransformPoint(rasterizer.V3(0, 0, -1))
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)
	assert.InDelta(t, -4, c.Z, 1e-9)

	// A quarter turn about Y takes +X towards -Z.
	p := m.TransformPoint(rasterizer.V3(0.5, 0, -1))
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, -4.5, p.Z, 1e-9)

	// Extra yaw adds to the camera angle.
	assert.Equal(t, m, NewScene(rasterizer.Cube(), config.Camera{RotateY: 45, Distance: 4}).Transform(45))
}

func TestScene_DepthRange(t *testing.T) {
	s := NewScene(rasterizer.Cube(), config.Camera{Distance: 5})
	near, far := s.DepthRange()

	r := rasterizer.V3(1, 1, 1).Length() / 2
	assert.InDelta(t, 5-r, near, 1e-9)
	assert.InDelta(t, 5+r, far, 1e-9)

	near, _ = NewScene(rasterizer.Cube(), config.Camera{Distance: 0.1}).DepthRange()
	assert.Zero(t, near)
}

func TestNewRasterizer(t *testing.T) {
	cfg := &config.Config{Background: 40, Workers: 3, Samples: 2, Shading: config.ShadingFacing, Near: 1, Far: 100, Aspect: 1}
	scene := NewScene(rasterizer.Cube(), config.Camera{Distance: 1})

	r := newRasterizer(cfg, scene, 0)
	assert.Equal(t, uint8(40), r.Background())
	assert.Equal(t, 3, r.Workers())
	assert.Equal(t, 2, r.Supersample())

	assert.Equal(t, 1, newRasterizer(cfg, scene, 1).Workers())
}

func TestPrintStats(t *testing.T) {
	frames := []frame{
		{Index: 0, Path: "a.png", Stats: rasterizer.Stats{Triangles: 12, Rasterized: 6, Culled: 6, Pixels: 1234567, Elapsed: time.Millisecond}},
		{Index: 1, Path: "b.png", Stats: rasterizer.Stats{Triangles: 12, Rasterized: 6, Culled: 6, Pixels: 1000, Elapsed: time.Millisecond}},
	}

	var buf bytes.Buffer
	require.NoError(t, printStats(&buf, frames))

	out := buf.String()
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "1,235,567")
	assert.Contains(t, out, "Total")
	assert.NotContains(t, out, "Wrote")

	buf.Reset()
	require.NoError(t, printStats(&buf, frames[:1]))
	assert.Contains(t, buf.String(), "Wrote a.png")
	assert.NotContains(t, buf.String(), "Total")
}
