package cli

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/verbal"
	"github.com/phanxgames/verbal/internal/demo"
)

type renderOpts struct {
	output string
	script string
	region string
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{output: "verbal.png"}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo scene to a PNG",
		Long: `Render draws the demo scene on an offscreen canvas and writes it as a PNG.
With --script, an input script is replayed first; its snapshot steps are
written to the configured output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runRender(opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output PNG path")
	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "JSON input script to replay before rendering")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "export region as x,y,w,h (default: whole canvas)")
	return cmd
}

func (c *CLI) runRender(opts renderOpts) error {
	start := time.Now()
	region := image.Rect(0, 0, c.Config.Width, c.Config.Height)
	if opts.region != "" {
		r, err := parseRegion(opts.region)
		if err != nil {
			return err
		}
		region = r
	}

	canvas := verbal.NewImageCanvas(c.Config.Width, c.Config.Height)
	defer canvas.Close()
	l := verbal.NewLayer(canvas, c.background()...)
	demo.Build(l)

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := verbal.LoadInputScript(data)
		if err != nil {
			return err
		}
		c.Logger.Debug("replaying input script", "path", opts.script, "steps", script.Len())
		shots, err := script.Run(l, c.Config.OutDir)
		if err != nil {
			return err
		}
		for _, s := range shots {
			c.Logger.Info("snapshot written", "path", s)
		}
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := l.ExportPNG(f, region); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	c.Logger.Infof("Rendered %s (%s)", opts.output, time.Since(start).Round(time.Millisecond))
	return nil
}

// parseRegion reads "x,y,w,h" into a rectangle.
func parseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("region %q: want x,y,w,h", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return image.Rectangle{}, fmt.Errorf("region %q: width and height must be positive", s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}
