package parallel

import (
	"slices"
	"testing"
)

func TestTile_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		tile         Tile
		wantX, wantY int
		wantW, wantH int
	}{
		{"first tile", Tile{X: 0, Y: 0, Width: 64, Height: 64}, 0, 0, 64, 64},
		{"second row first column", Tile{X: 0, Y: 1, Width: 64, Height: 64}, 0, 64, 64, 64},
		{"edge tile", Tile{X: 2, Y: 3, Width: 32, Height: 16}, 128, 192, 32, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := tt.tile.Bounds()
			if x != tt.wantX || y != tt.wantY || w != tt.wantW || h != tt.wantH {
				t.Errorf("Bounds() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					x, y, w, h, tt.wantX, tt.wantY, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestTile_RectAndContains(t *testing.T) {
	tile := Tile{X: 1, Y: 2, Width: 10, Height: 5}

	minX, minY, maxX, maxY := tile.Rect()
	if minX != 64 || minY != 128 || maxX != 73 || maxY != 132 {
		t.Errorf("Rect() = (%d,%d,%d,%d), want (64,128,73,132)", minX, minY, maxX, maxY)
	}
	if !tile.Contains(64, 128) || !tile.Contains(73, 132) {
		t.Error("Contains() false for corner pixels")
	}
	if tile.Contains(74, 128) || tile.Contains(64, 133) || tile.Contains(63, 128) {
		t.Error("Contains() true for pixel outside tile")
	}
	if tile.Pixels() != 50 {
		t.Errorf("Pixels() = %d, want 50", tile.Pixels())
	}
}

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantX, wantY  int
	}{
		{"exact", 128, 64, 2, 1},
		{"partial", 600, 600, 10, 10},
		{"single pixel", 1, 1, 1, 1},
		{"empty", 0, 10, 0, 0},
		{"negative", -1, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height)
			if g.TilesX() != tt.wantX || g.TilesY() != tt.wantY {
				t.Errorf("grid = %dx%d tiles, want %dx%d", g.TilesX(), g.TilesY(), tt.wantX, tt.wantY)
			}
			if g.TileCount() != tt.wantX*tt.wantY {
				t.Errorf("TileCount() = %d, want %d", g.TileCount(), tt.wantX*tt.wantY)
			}

			// Tiles must cover every pixel exactly once.
			total := 0
			for _, tile := range g.Tiles() {
				total += tile.Pixels()
			}
			want := max(tt.width, 0) * max(tt.height, 0)
			if tt.wantX == 0 {
				want = 0
			}
			if total != want {
				t.Errorf("tiles cover %d pixels, want %d", total, want)
			}
		})
	}
}

func TestGrid_EdgeTiles(t *testing.T) {
	g := NewGrid(100, 70)

	tile, ok := g.TileAt(1, 1)
	if !ok {
		t.Fatal("TileAt(1,1) not found")
	}
	if tile.Width != 36 || tile.Height != 6 {
		t.Errorf("edge tile = %dx%d, want 36x6", tile.Width, tile.Height)
	}
	if _, ok := g.TileAt(2, 0); ok {
		t.Error("TileAt(2,0) should be out of range")
	}
}

func TestGrid_Span(t *testing.T) {
	g := NewGrid(200, 200)

	tests := []struct {
		name                   string
		minX, minY, maxX, maxY int
		want                   [4]int
		wantOK                 bool
	}{
		{"inside one tile", 1, 1, 10, 10, [4]int{0, 0, 0, 0}, true},
		{"crosses tiles", 60, 60, 130, 70, [4]int{0, 0, 2, 1}, true},
		{"clamped", -50, -50, 500, 500, [4]int{0, 0, 3, 3}, true},
		{"off left", -20, 0, -1, 10, [4]int{}, false},
		{"off bottom", 0, 200, 10, 300, [4]int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx0, ty0, tx1, ty1, ok := g.Span(tt.minX, tt.minY, tt.maxX, tt.maxY)
			if ok != tt.wantOK {
				t.Fatalf("Span() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && [4]int{tx0, ty0, tx1, ty1} != tt.want {
				t.Errorf("Span() = %v, want %v", [4]int{tx0, ty0, tx1, ty1}, tt.want)
			}
		})
	}
}

func TestBins_PreserveOrder(t *testing.T) {
	g := NewGrid(128, 64)
	b := NewBins(g)

	b.Add(0, 0, 0, 127, 63) // both tiles
	b.Add(1, 70, 0, 80, 10) // right tile only
	b.Add(2, 0, 0, 10, 10)  // left tile only
	b.Add(3, 300, 0, 400, 10)
	b.Add(4, 60, 0, 70, 10) // both tiles

	if got := b.Items(0); !slices.Equal(got, []int32{0, 2, 4}) {
		t.Errorf("Items(0) = %v, want [0 2 4]", got)
	}
	if got := b.Items(1); !slices.Equal(got, []int32{0, 1, 4}) {
		t.Errorf("Items(1) = %v, want [0 1 4]", got)
	}
	if got := b.Items(5); got != nil {
		t.Errorf("Items(5) = %v, want nil", got)
	}
}
