package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strettolab/contrapunto/algorithms/theory"
	"github.com/strettolab/contrapunto/analysis"
	"github.com/strettolab/contrapunto/logging"
)

var (
	meterFlag   string
	configFlag  string
	keyFlag     string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "contrapunto",
	Short: "Contrapuntal and harmonic analysis of melodic voices",
	Long: `Contrapunto analyzes symbolic melodic voices: interval content between
voice pairs, parallel perfect consonances, species classification of
dissonances, motion profiles, and the implied harmony of a single line.

Voices are JSON files holding an array of note events:
  [{"pitch": 60, "onset": 0, "duration": 1}, ...]
with pitch as a MIDI note number and times in quarter-note units.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logging.SetLevel(logging.DebugLevel)
		}
	},
}

// Execute runs the CLI
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&meterFlag, "meter", "4/4", "time signature, e.g. 3/4 or 6/8")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&keyFlag, "key", "", "annotate notes with scale degrees, e.g. \"C major\" or \"d dorian\"")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves the effective configuration: an explicit config file
// wins, otherwise defaults for the --meter flag
func loadConfig() (analysis.Config, error) {
	if configFlag != "" {
		return analysis.LoadConfig(configFlag)
	}
	m, err := theory.ParseMeter(meterFlag)
	if err != nil {
		return analysis.Config{}, err
	}
	return analysis.DefaultConfig(m), nil
}
