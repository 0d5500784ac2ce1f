package rasterizer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadOBJ loads a triangle mesh from a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("rasterizer: open OBJ: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseOBJ(f)
}

// ParseOBJ reads the geometric subset of the Wavefront OBJ format.
//
// Only vertex positions ("v") and faces ("f") are used. Face corners may be
// written as i, i/t, i//n or i/t/n; texture and normal references are
// ignored. Negative indices count back from the most recent vertex. Faces
// with more than three corners are split into a triangle fan around the
// first corner. Every other record is skipped.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	var corners []uint32
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseOBJVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidOBJ, lineNo, err)
			}
			m.Vertices = append(m.Vertices, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: face needs at least 3 corners, got %d",
					ErrInvalidOBJ, lineNo, len(fields)-1)
			}
			corners = corners[:0]
			for _, ref := range fields[1:] {
				idx, err := resolveOBJIndex(ref, len(m.Vertices))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidOBJ, lineNo, err)
				}
				corners = append(corners, idx)
			}
			for i := 1; i+1 < len(corners); i++ {
				m.Indices = append(m.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrInvalidOBJ, err)
	}

	Logger().Debug("rasterizer: parsed OBJ",
		"vertices", len(m.Vertices),
		"triangles", m.TriangleCount())
	return m, nil
}

func parseOBJVertex(fields []string) (Vec3, error) {
	if len(fields) < 3 {
		return Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range xyz {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[i], err)
		}
		xyz[i] = f
	}
	v := Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}

	// Homogeneous weight, rarely used.
	if len(fields) >= 4 {
		w, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("vertex weight %q: %w", fields[3], err)
		}
		if w != 0 && w != 1 {
			v = v.Mul(1 / w)
		}
	}
	if !v.IsFinite() {
		return Vec3{}, fmt.Errorf("vertex %v is not finite", v)
	}
	return v, nil
}

// resolveOBJIndex converts a 1-based (or negative, relative) face reference
// into a 0-based vertex index.
func resolveOBJIndex(ref string, count int) (uint32, error) {
	if i := strings.IndexByte(ref, '/'); i >= 0 {
		ref = ref[:i]
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return 0, fmt.Errorf("face index %q: %w", ref, err)
	}
	switch {
	case n > 0 && n <= count:
		return uint32(n - 1), nil
	case n < 0 && -n <= count:
		return uint32(count + n), nil
	default:
		return 0, fmt.Errorf("face index %d out of range (%d vertices)", n, count)
	}
}
