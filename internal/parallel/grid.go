package parallel

// Grid divides a frame into tiles.
//
// Tiles are stored in row-major order, index = ty*TilesX() + tx.
type Grid struct {
	tiles  []Tile
	tilesX int
	tilesY int
	width  int
	height int
}

// NewGrid creates a tile grid covering a frame of the given dimensions.
// Non-positive dimensions produce an empty grid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}

	tilesX := (width + TileWidth - 1) / TileWidth
	tilesY := (height + TileHeight - 1) / TileHeight

	g := &Grid{
		tiles:  make([]Tile, 0, tilesX*tilesY),
		tilesX: tilesX,
		tilesY: tilesY,
		width:  width,
		height: height,
	}

	for ty := range tilesY {
		for tx := range tilesX {
			w := min(TileWidth, width-tx*TileWidth)
			h := min(TileHeight, height-ty*TileHeight)
			g.tiles = append(g.tiles, Tile{X: tx, Y: ty, Width: w, Height: h})
		}
	}
	return g
}

// TileCount returns the total number of tiles.
func (g *Grid) TileCount() int {
	return len(g.tiles)
}

// TilesX returns the number of tile columns.
func (g *Grid) TilesX() int {
	return g.tilesX
}

// TilesY returns the number of tile rows.
func (g *Grid) TilesY() int {
	return g.tilesY
}

// Tiles returns all tiles in row-major order.
// The returned slice must not be modified.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// TileAt returns the tile at tile coordinates (tx, ty).
func (g *Grid) TileAt(tx, ty int) (Tile, bool) {
	if tx < 0 || tx >= g.tilesX || ty < 0 || ty >= g.tilesY {
		return Tile{}, false
	}
	return g.tiles[ty*g.tilesX+tx], true
}

// Span returns the inclusive range of tile indices that overlap the
// inclusive pixel rectangle [minX,maxX]x[minY,maxY]. ok is false when the
// rectangle misses the frame.
func (g *Grid) Span(minX, minY, maxX, maxY int) (tx0, ty0, tx1, ty1 int, ok bool) {
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, g.width-1)
	maxY = min(maxY, g.height-1)
	if minX > maxX || minY > maxY {
		return 0, 0, 0, 0, false
	}
	return minX / TileWidth, minY / TileHeight, maxX / TileWidth, maxY / TileHeight, true
}

// Bins records, per tile, which items overlap it.
// Items are appended in the order they are added, so iterating a bin visits
// items in submission order.
type Bins struct {
	grid *Grid
	bins [][]int32
}

// NewBins creates empty bins for every tile of g.
func NewBins(g *Grid) *Bins {
	return &Bins{
		grid: g,
		bins: make([][]int32, g.TileCount()),
	}
}

// Add records item in every tile overlapping the inclusive pixel rectangle.
func (b *Bins) Add(item int32, minX, minY, maxX, maxY int) {
	tx0, ty0, tx1, ty1, ok := b.grid.Span(minX, minY, maxX, maxY)
	if !ok {
		return
	}
	for ty := ty0; ty <= ty1; ty++ {
		row := ty * b.grid.tilesX
		for tx := tx0; tx <= tx1; tx++ {
			b.bins[row+tx] = append(b.bins[row+tx], item)
		}
	}
}

// Items returns the items binned into the tile with the given index.
func (b *Bins) Items(tile int) []int32 {
	if tile < 0 || tile >= len(b.bins) {
		return nil
	}
	return b.bins[tile]
}
