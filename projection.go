package rasterizer

// projection maps camera space onto raster space for one frame size.
type projection struct {
	width   float64
	height  float64
	near    float64
	wAspect float64
	hAspect float64
}

// newProjection prepares the camera-to-raster mapping for a frame.
//
// When the device is wider than the frame, vertical extent is reduced;
// otherwise horizontal extent is, so the image keeps the device's
// proportions.
func newProjection(width, height int, near, deviceAspect float64) projection {
	w := float64(width)
	h := float64(height)
	frameAspect := w / h

	p := projection{
		width:   w,
		height:  h,
		near:    near,
		wAspect: 1,
		hAspect: 1,
	}
	if deviceAspect > frameAspect {
		p.hAspect = frameAspect / deviceAspect
	} else {
		p.wAspect = deviceAspect / frameAspect
	}
	return p
}

// toRaster projects a camera-space point. X and Y of the result are pixel
// coordinates with the origin at the top-left; Z holds the reciprocal of
// the camera depth, which interpolates linearly across the screen.
//
// v.Z must be negative (in front of the eye).
func (p projection) toRaster(v Vec3) Vec3 {
	d := -v.Z
	return Vec3{
		X: (1 + p.near*(v.X*p.wAspect)/d) * 0.5 * p.width,
		Y: (1 - p.near*(v.Y*p.hAspect)/d) * 0.5 * p.height,
		Z: 1 / d,
	}
}

// edgeFunction tells on which side of the directed edge a→b the point p
// lies, using only X and Y. Zero means p is on the edge. The magnitude is
// twice the area of the triangle (a, b, p), which makes the three edge
// values of a pixel its unnormalised barycentric weights.
func edgeFunction(a, b, p Vec3) float64 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}
