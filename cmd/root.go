package cmd

import (
	"log"
	"os"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"unityrand/rand"
)

var (
	cfgFile   string
	statePath string

	// Shared flags of the sequence commands
	seed  int32
	count int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "unityrand",
	Short: "Unity-compatible seeded random sequences.",
	Long: `Unity-compatible seeded random sequences.
Reproduces the engine's Xorshift128 stream bit for bit, For example:
  unityrand value --seed 358118 --count 5
  unityrand dump --seed 42 --count 16
  unityrand rotation --uniform --state stream.json`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(color.RedString("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.unityrand.yaml)")
	flags.StringVar(&statePath, "state", "", "load the generator state from this JSON file and write the advanced state back")
}

// addStreamFlags registers the flags every sequence command shares.
func addStreamFlags(flags *pflag.FlagSet) {
	flags.Int32VarP(&seed, "seed", "s", 0, "generator seed")
	flags.IntVarP(&count, "count", "n", 1, "number of values to generate")
}

// applyConfig fills in config file defaults for flags the user did not
// set explicitly.
func applyConfig(cmd *cobra.Command) {
	if !cmd.Flags().Changed("seed") && viper.IsSet("seed") {
		seed = viper.GetInt32("seed")
	}
	if !cmd.Flags().Changed("count") && viper.IsSet("count") {
		count = viper.GetInt("count")
	}
}

// newGenerator builds the generator for one run, seeded or restored
// from the state file.
func newGenerator(cmd *cobra.Command) (*rand.Generator, error) {
	applyConfig(cmd)
	g := rand.NewSeeded(seed)
	if statePath != "" {
		st, err := loadState(statePath)
		if err != nil {
			return nil, err
		}
		g.SetState(st)
	}
	return g, nil
}

// finishRun persists the advanced state when --state is in use.
func finishRun(g *rand.Generator) error {
	if statePath == "" {
		return nil
	}
	return saveState(statePath, g.State())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".unityrand"
		// (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".unityrand")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
