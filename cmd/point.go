package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// pointCmd represents the point command
var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Generate points on the unit circle or sphere",
	Long: `Generate points on the unit circle or sphere, For example:
  unityrand point --shape circle --seed 7 --count 3
  unityrand point --shape ball --count 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			switch shape {
			case "circle":
				p := g.InsideUnitCircle()
				fmt.Println(p.X, p.Y)
			case "sphere":
				p := g.OnUnitSphere()
				fmt.Println(p.X, p.Y, p.Z)
			case "ball":
				p := g.InsideUnitSphere()
				fmt.Println(p.X, p.Y, p.Z)
			default:
				return errors.Errorf("unknown shape %q, want circle, sphere or ball", shape)
			}
		}
		return finishRun(g)
	},
}

var shape string

func init() {
	rootCmd.AddCommand(pointCmd)
	flags := pointCmd.Flags()
	addStreamFlags(flags)
	flags.StringVar(&shape, "shape", "circle", "circle (inside), sphere (surface) or ball (inside)")
}
