package rasterizer

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/rasterizer/internal/parallel"
)

// Rasterizer renders triangle meshes into framebuffers.
//
// A Rasterizer holds only configuration and may be used from several
// goroutines at once, each rendering into its own Framebuffer.
type Rasterizer struct {
	opts options
}

// New creates a rasterizer with the given options.
func New(opts ...Option) *Rasterizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.shader == nil {
		o.shader = FacingShader{}
	}
	return &Rasterizer{opts: o}
}

// Background returns the configured background value.
func (r *Rasterizer) Background() uint8 {
	return r.opts.background
}

// Workers returns the number of goroutines used per frame.
func (r *Rasterizer) Workers() int {
	return r.opts.workers
}

// Supersample returns the supersampling factor used by RenderImage.
func (r *Rasterizer) Supersample() int {
	return r.opts.supersample
}

// triangle is a triangle after per-frame setup, ready for traversal.
type triangle struct {
	cam    [3]Vec3 // camera space
	ras    [3]Vec3 // raster space, Z = 1/depth
	area   float64
	normal Vec3

	minX, minY, maxX, maxY int // clamped pixel box
}

// Render draws mesh, moved by transform, into fb.
//
// The framebuffer is cleared to the configured background and far plane
// first. The returned Stats describe the frame. Render returns ctx.Err()
// if the context is cancelled before all tiles are done; fb then holds a
// partially rendered frame.
func (r *Rasterizer) Render(ctx context.Context, mesh *Mesh, transform Matrix, fb *Framebuffer) (Stats, error) {
	if fb == nil {
		return Stats{}, fmt.Errorf("%w: nil framebuffer", ErrInvalidSize)
	}
	if err := mesh.Validate(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	start := time.Now()
	fb.Clear(r.opts.background, r.opts.farPlane)

	tris, stats := r.setup(mesh, transform, fb.width, fb.height)

	grid := parallel.NewGrid(fb.width, fb.height)
	bins := parallel.NewBins(grid)
	for i := range tris {
		t := &tris[i]
		bins.Add(int32(i), t.minX, t.minY, t.maxX, t.maxY)
	}
	stats.Tiles = grid.TileCount()

	var err error
	tiles := grid.Tiles()
	if r.opts.workers <= 1 || len(tiles) == 1 {
		for i, tile := range tiles {
			if err = ctx.Err(); err != nil {
				break
			}
			stats.add(r.rasterizeTile(tile, tris, bins.Items(i), fb))
		}
	} else {
		var mu sync.Mutex
		work := make([]func(), len(tiles))
		for i, tile := range tiles {
			work[i] = func() {
				ts := r.rasterizeTile(tile, tris, bins.Items(i), fb)
				mu.Lock()
				stats.add(ts)
				mu.Unlock()
			}
		}
		pool := parallel.NewWorkerPool(min(r.opts.workers, len(tiles)))
		err = pool.ExecuteAll(ctx, work)
		pool.Close()
	}

	stats.Elapsed = time.Since(start)
	Logger().Debug("rasterizer: frame rendered",
		"width", fb.width,
		"height", fb.height,
		"workers", r.opts.workers,
		"stats", stats)

	return stats, err
}

// RenderImage allocates a framebuffer, renders mesh into it and returns
// the color plane as an image of the requested size.
//
// With supersampling enabled the frame is rendered at a multiple of the
// requested size and filtered down. Pixel counts in Stats refer to the
// supersampled frame.
func (r *Rasterizer) RenderImage(ctx context.Context, mesh *Mesh, transform Matrix, width, height int) (*image.Gray, Stats, error) {
	if width <= 0 || height <= 0 {
		return nil, Stats{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	n := r.opts.supersample
	fb, err := NewFramebuffer(width*n, height*n)
	if err != nil {
		return nil, Stats{}, err
	}

	stats, err := r.Render(ctx, mesh, transform, fb)
	if err != nil {
		return nil, stats, err
	}

	src := fb.Gray()
	if n == 1 {
		return src, stats, nil
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, stats, nil
}

// setup transforms and projects every triangle, dropping those that cannot
// produce fragments.
func (r *Rasterizer) setup(mesh *Mesh, transform Matrix, width, height int) ([]triangle, Stats) {
	proj := newProjection(width, height, r.opts.nearPlane, r.opts.deviceAspect)
	w := width - 1
	h := height - 1

	count := mesh.TriangleCount()
	stats := Stats{Triangles: count}
	tris := make([]triangle, 0, count)

	for i := range count {
		src := mesh.Triangle(i)

		var t triangle
		behind := false
		for k := range 3 {
			t.cam[k] = transform.TransformPoint(src[k])
			if !(t.cam[k].Z < 0) {
				behind = true
			}
		}
		if behind {
			stats.Clipped++
			continue
		}
		for k := range 3 {
			t.ras[k] = proj.toRaster(t.cam[k])
		}

		rMinX := min(t.ras[0].X, t.ras[1].X, t.ras[2].X)
		rMaxX := max(t.ras[0].X, t.ras[1].X, t.ras[2].X)
		rMinY := min(t.ras[0].Y, t.ras[1].Y, t.ras[2].Y)
		rMaxY := max(t.ras[0].Y, t.ras[1].Y, t.ras[2].Y)
		if math.IsNaN(rMinX+rMaxX+rMinY+rMaxY) || math.IsInf(rMinX+rMaxX+rMinY+rMaxY, 0) {
			stats.Clipped++
			continue
		}
		if rMinX > float64(w) || rMaxX < 0 || rMinY > float64(h) || rMaxY < 0 {
			stats.Offscreen++
			continue
		}

		t.area = edgeFunction(t.ras[0], t.ras[1], t.ras[2])
		switch {
		case t.area == 0:
			stats.Culled++
			continue
		case t.area < 0:
			if r.opts.cullBackFaces {
				stats.Culled++
				continue
			}
			t.ras[1], t.ras[2] = t.ras[2], t.ras[1]
			t.cam[1], t.cam[2] = t.cam[2], t.cam[1]
			t.area = -t.area
		}

		// Clamp before converting: near the eye plane the raster box can
		// exceed the int range.
		t.minX = int(max(0, math.Floor(rMinX)))
		t.maxX = int(min(float64(w), math.Floor(rMaxX)))
		t.minY = int(max(0, math.Floor(rMinY)))
		t.maxY = int(min(float64(h), math.Floor(rMaxY)))

		n := t.cam[1].Sub(t.cam[0]).Cross(t.cam[2].Sub(t.cam[0]))
		t.normal, _ = n.Normalize()

		tris = append(tris, t)
	}
	stats.Rasterized = len(tris)
	return tris, stats
}

// rasterizeTile draws the binned triangles clipped to one tile.
// Tiles never overlap, so concurrent calls touch disjoint pixels.
func (r *Rasterizer) rasterizeTile(tile parallel.Tile, tris []triangle, items []int32, fb *Framebuffer) Stats {
	var stats Stats
	tMinX, tMinY, tMaxX, tMaxY := tile.Rect()
	frag := Fragment{Background: r.opts.background}

	for _, idx := range items {
		t := &tris[idx]
		minX, maxX := max(t.minX, tMinX), min(t.maxX, tMaxX)
		minY, maxY := max(t.minY, tMinY), min(t.maxY, tMaxY)
		if minX > maxX || minY > maxY {
			continue
		}

		frag.Camera = t.cam
		frag.Normal = t.normal
		invArea := 1 / t.area

		for y := minY; y <= maxY; y++ {
			row := y * fb.width
			for x := minX; x <= maxX; x++ {
				p := Vec3{X: float64(x) + 0.5, Y: float64(y) + 0.5}

				w0 := edgeFunction(t.ras[1], t.ras[2], p)
				w1 := edgeFunction(t.ras[2], t.ras[0], p)
				w2 := edgeFunction(t.ras[0], t.ras[1], p)
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
				w0 *= invArea
				w1 *= invArea
				w2 *= invArea

				z := 1 / (t.ras[0].Z*w0 + t.ras[1].Z*w1 + t.ras[2].Z*w2)
				if float32(z) >= fb.depth[row+x] {
					stats.DepthRejects++
					continue
				}
				fb.depth[row+x] = float32(z)

				frag.X, frag.Y = x, y
				frag.Bary = [3]float64{w0, w1, w2}
				frag.Depth = z
				frag.View = viewVector(t.cam, frag.Bary, z)
				fb.color[row+x] = r.opts.shader.Shade(&frag)
				stats.Pixels++
			}
		}
	}
	return stats
}

// viewVector returns the unit vector from the surface point under the
// pixel back to the eye. The point is rebuilt from the interpolated
// image-plane position, which is linear in screen space, scaled by depth.
func viewVector(cam [3]Vec3, b [3]float64, depth float64) Vec3 {
	px := (cam[0].X/-cam[0].Z)*b[0] + (cam[1].X/-cam[1].Z)*b[1] + (cam[2].X/-cam[2].Z)*b[2]
	py := (cam[0].Y/-cam[0].Z)*b[0] + (cam[1].Y/-cam[1].Z)*b[1] + (cam[2].Y/-cam[2].Z)*b[2]

	v, _ := Vec3{X: -px * depth, Y: -py * depth, Z: depth}.Normalize()
	return v
}
