package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// intCmd represents the int command
var intCmd = &cobra.Command{
	Use:   "int",
	Short: "Generate ints in [min,max), max excluded",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			fmt.Println(g.Range(intMin, intMax))
		}
		return finishRun(g)
	},
}

// floatCmd represents the float command
var floatCmd = &cobra.Command{
	Use:   "float",
	Short: "Generate floats in [min,max], both ends included",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			fmt.Println(g.RangeFloat(floatMin, floatMax))
		}
		return finishRun(g)
	},
}

var (
	intMin   int32
	intMax   int32
	floatMin float32
	floatMax float32
)

func init() {
	rootCmd.AddCommand(intCmd)
	flags := intCmd.Flags()
	addStreamFlags(flags)
	flags.Int32Var(&intMin, "min", 0, "lower bound, included")
	flags.Int32Var(&intMax, "max", 100, "upper bound, excluded")

	rootCmd.AddCommand(floatCmd)
	flags = floatCmd.Flags()
	addStreamFlags(flags)
	flags.Float32Var(&floatMin, "min", 0, "lower bound, included")
	flags.Float32Var(&floatMax, "max", 1, "upper bound, included")
}
