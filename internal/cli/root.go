// Package cli provides the command-line interface for the rasterizer.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/rasterizer/internal/cli/commands"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rasterize",
		Short: "Render triangle meshes on the CPU",
		Long: `rasterize draws triangle meshes with an edge-function rasterizer using
perspective projection, a depth buffer and flat facing-ratio shading.
Frames are split into tiles and rendered in parallel.

Settings are read from rasterizer.yaml in the working directory (or
--config), then RASTERIZER_* environment variables, then flags.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rasterizer.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewASCIICommand())

	return rootCmd
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
