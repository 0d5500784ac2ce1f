// Package parallel provides tile-based parallel rasterization infrastructure.
//
// The framebuffer is divided into 64x64 pixel tiles that never share pixels,
// so each tile can be rasterized by a different goroutine without locking.
// Triangles are binned into every tile their bounding box overlaps, keeping
// their submission order, which makes parallel output identical to serial.
//
// Thread safety: Grid is immutable after construction. Bins is NOT
// thread-safe while being filled; fill it before handing tiles to workers.
package parallel

// Tile size constants.
const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64

	// TilePixels is the total number of pixels in a full tile.
	TilePixels = TileWidth * TileHeight
)

// Tile is a rectangular region of the framebuffer.
// Edge tiles may be smaller than TileWidth x TileHeight when the frame is
// not evenly divisible by the tile size.
type Tile struct {
	// X is the tile column index (0-based).
	X int

	// Y is the tile row index (0-based).
	Y int

	// Width is the actual width in pixels.
	Width int

	// Height is the actual height in pixels.
	Height int
}

// Bounds returns the pixel bounds of this tile in frame space.
// Returns (x, y, width, height) where x,y is the top-left corner.
func (t Tile) Bounds() (x, y, w, h int) {
	return t.X * TileWidth, t.Y * TileHeight, t.Width, t.Height
}

// Rect returns the inclusive pixel range covered by the tile.
func (t Tile) Rect() (minX, minY, maxX, maxY int) {
	x, y, w, h := t.Bounds()
	return x, y, x + w - 1, y + h - 1
}

// Contains returns true if the frame-space pixel (px, py) is within this tile.
func (t Tile) Contains(px, py int) bool {
	x, y, w, h := t.Bounds()
	return px >= x && px < x+w && py >= y && py < y+h
}

// Pixels returns the number of pixels covered by the tile.
func (t Tile) Pixels() int {
	return t.Width * t.Height
}
