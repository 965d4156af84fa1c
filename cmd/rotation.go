package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"unityrand/rand"
)

// rotationCmd represents the rotation command
var rotationCmd = &cobra.Command{
	Use:   "rotation",
	Short: "Generate random rotation quaternions",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			var q rand.Quaternion
			if uniform {
				q = g.RotationUniform()
			} else {
				q = g.Rotation()
			}
			fmt.Println(q.X, q.Y, q.Z, q.W)
		}
		return finishRun(g)
	},
}

var uniform bool

func init() {
	rootCmd.AddCommand(rotationCmd)
	flags := rotationCmd.Flags()
	addStreamFlags(flags)
	flags.BoolVar(&uniform, "uniform", false, "use the uniformly distributed Hopf fibration sampling")
}
