package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// colorCmd represents the color command
var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Generate random RGBA colors from HSV ranges",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			c := g.ColorHSVA(hueMin, hueMax, satMin, satMax, valMin, valMax, alphaMin, alphaMax)
			fmt.Printf("%v %v %v %v %v %v %v %v\n",
				color.RedString("R:"), c.R,
				color.GreenString("G:"), c.G,
				color.BlueString("B:"), c.B,
				color.WhiteString("A:"), c.A)
		}
		return finishRun(g)
	},
}

var (
	hueMin, hueMax     float32
	satMin, satMax     float32
	valMin, valMax     float32
	alphaMin, alphaMax float32
)

func init() {
	rootCmd.AddCommand(colorCmd)
	flags := colorCmd.Flags()
	addStreamFlags(flags)
	flags.Float32Var(&hueMin, "hue-min", 0, "hue lower bound")
	flags.Float32Var(&hueMax, "hue-max", 1, "hue upper bound")
	flags.Float32Var(&satMin, "sat-min", 0, "saturation lower bound")
	flags.Float32Var(&satMax, "sat-max", 1, "saturation upper bound")
	flags.Float32Var(&valMin, "val-min", 0, "value lower bound")
	flags.Float32Var(&valMax, "val-max", 1, "value upper bound")
	flags.Float32Var(&alphaMin, "alpha-min", 1, "alpha lower bound")
	flags.Float32Var(&alphaMax, "alpha-max", 1, "alpha upper bound")
}
