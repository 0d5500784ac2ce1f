// Package rasterizer is a pure Go software rasterizer for triangle meshes.
//
// # Overview
//
// rasterizer projects triangles from camera space onto an 8-bit grayscale
// framebuffer. Visibility is resolved with a depth buffer and each pixel is
// shaded by how directly its triangle faces the eye. No GPU is involved.
//
// # Quick Start
//
//	import "github.com/gogpu/rasterizer"
//
//	r := rasterizer.New()
//	img, stats, err := r.RenderImage(ctx, rasterizer.Cube(), rasterizer.Identity(), 600, 600)
//	if err != nil {
//	    return err
//	}
//	log.Printf("%d of %d triangles drawn", stats.Rasterized, stats.Triangles)
//	return png.Encode(w, img)
//
// # Coordinate System
//
// The eye sits at the origin looking down -Z. Vertices are first moved by
// the model-view [Matrix], then projected onto the image plane at distance
// NearPlane. Raster space has its origin in the top-left corner with Y
// pointing down. Triangles wound counter-clockwise in camera space face the
// eye; with back-face culling enabled (the default) the others are skipped.
//
// # Depth
//
// The reciprocal of camera depth is interpolated with barycentric weights,
// giving perspective-correct depth per pixel. The depth buffer is cleared to
// FarPlane, so geometry beyond it is never drawn.
//
// # Parallelism
//
// A frame is split into 64x64 tiles which are rasterized independently on a
// worker pool. Tiles never share pixels, and within a tile triangles are
// processed in submission order, so the output is identical to a serial
// render regardless of worker count.
//
// # Output
//
// [Framebuffer] implements [image.Image]. [ASCII] renders any image as text
// using a ten-step luminance ramp.
package rasterizer

// Name is the library name.
const Name = "rasterizer"
