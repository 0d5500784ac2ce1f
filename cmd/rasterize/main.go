// Command rasterize renders triangle meshes to image files or ASCII art.
package main

import (
	"os"

	"github.com/gogpu/rasterizer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
