package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// valueCmd represents the value command
var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Generate floats in [0,1], both ends included",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			fmt.Println(g.Value())
		}
		return finishRun(g)
	},
}

func init() {
	rootCmd.AddCommand(valueCmd)
	addStreamFlags(valueCmd.Flags())
}
