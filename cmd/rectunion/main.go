// Command rectunion inspects and renders unions of integer rectangles
// read from a rectangle list file: one "minX minY maxX maxY" line per
// rectangle, with // comments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridplane/rectunion"
	"github.com/gridplane/rectunion/svg"
	"github.com/gridplane/rectunion/visual"
)

var cfg struct {
	verify   bool
	svgOut   string
	svgScale int
	pngOut   string
	pngScale int
}

var rootCmd = &cobra.Command{
	Use:           "rectunion",
	Short:         "compute and render unions of integer rectangles",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var infoCmd = &cobra.Command{
	Use:   "info <rect-file>",
	Short: "print components, area, boundary and largest rectangle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildFromFile(args[0])
		if err != nil {
			return err
		}
		printInfo(cmd, u)
		return nil
	},
}

var svgCmd = &cobra.Command{
	Use:   "svg <rect-file>",
	Short: "render the union as an SVG document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := buildFromFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if cfg.svgOut != "" {
			f, err := os.Create(cfg.svgOut)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		svg.Export(out, u, svg.Options{Scale: cfg.svgScale})
		return nil
	},
}

var pngCmd = &cobra.Command{
	Use:   "png <rect-file>",
	Short: "render the union as a PNG image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.pngOut == "" {
			return fmt.Errorf("png: --out is required")
		}
		u, err := buildFromFile(args[0])
		if err != nil {
			return err
		}
		return visual.SavePNG(cfg.pngOut, u, cfg.pngScale)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.verify, "verify", false, "run full self-checks while computing")
	svgCmd.Flags().StringVarP(&cfg.svgOut, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().IntVarP(&cfg.svgScale, "scale", "s", 10, "pixels per cell")
	pngCmd.Flags().StringVarP(&cfg.pngOut, "out", "o", "", "output file")
	pngCmd.Flags().IntVarP(&cfg.pngScale, "scale", "s", 4, "pixels per cell")
	rootCmd.AddCommand(infoCmd, svgCmd, pngCmd)
}

func buildFromFile(path string) (*rectunion.Union, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rects, err := readRects(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var opts []rectunion.Option
	if cfg.verify {
		opts = append(opts, rectunion.WithVerify(rectunion.VerifyFull))
	}
	return rectunion.Build(rects, opts...)
}

func printInfo(cmd *cobra.Command, u *rectunion.Union) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rectangles: %d\n", u.Len())
	if bounds, ok := u.Bounds(); ok {
		fmt.Fprintf(out, "bounds: %v\n", bounds)
	}
	fmt.Fprintf(out, "components: %d\n", u.ConnectedComponentCount())
	fmt.Fprintf(out, "area: %.0f\n", u.Area())
	boundaries := u.Boundaries()
	fmt.Fprintf(out, "boundaries: %d\n", len(boundaries))
	for i, polygon := range boundaries {
		fmt.Fprintf(out, "  boundary %d: %d links, signed area %.0f\n",
			i, len(polygon), rectunion.BoundaryArea(polygon))
	}
	if r, ok := u.LargestRectangle(); ok {
		fmt.Fprintf(out, "largest: %v (area %.0f)\n", r, r.Area())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rectunion:", err)
		os.Exit(1)
	}
}
