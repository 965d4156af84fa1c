package cmd

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the raw stream for cross-implementation diffing",
	Long: `Dump the raw stream for cross-implementation diffing.
Each row is one Xorshift128 step: the raw word and the [0,1] float the
derived distributions would consume. Feed the same seed to the other
implementation and compare, For example:
  unityrand dump --seed 358118 --count 16`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(cmd)
		if err != nil {
			return err
		}

		table := uitable.New()
		table.AddRow("#", "UINT32", "HEX", "FLOAT")
		st := g.State()
		for i := 0; i < count; i++ {
			u := st.Uint32()
			// the float draw consumes the same step, derive it from
			// the word instead of advancing again
			f := float32(u&0x7FFFFF) / float32(0x7FFFFF)
			table.AddRow(i, u, fmt.Sprintf("%08x", u), f)
		}
		g.SetState(st)
		fmt.Println(table)
		return finishRun(g)
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	addStreamFlags(dumpCmd.Flags())
}
