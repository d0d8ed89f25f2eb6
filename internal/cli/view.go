package cli

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/verbal"
	"github.com/phanxgames/verbal/ebitenview"
	"github.com/phanxgames/verbal/internal/demo"
)

func (c *CLI) viewCommand() *cobra.Command {
	var showFPS, wobble bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the demo scene in a window",
		Long: `View opens the demo scene in a window. Press a shape to select it, drag it
to move it, and drag the transformer handles to resize or rotate it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := ebitenview.New(c.Config.Width, c.Config.Height, c.background()...)
			v.ShowFPS = showFPS
			verbal.SetTextMeasurer(ebitenview.TextMeasurer{})
			s := demo.Build(v.Layer)
			if wobble {
				s.StartWobble()
			}
			ebiten.SetTPS(c.Config.TPS)
			c.Logger.Info("opening window", "title", c.Config.Title, "tps", c.Config.TPS)
			return v.Run(c.Config.Title)
		},
	}
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show an FPS overlay")
	cmd.Flags().BoolVar(&wobble, "wobble", false, "animate the picture")
	return cmd
}
