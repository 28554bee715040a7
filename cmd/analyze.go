package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strettolab/contrapunto/analysis"
)

var analyzeInvertible bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeInvertible, "invertible", false, "also test invertible counterpoint at the octave")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <voiceA.json> <voiceB.json>",
	Short: "Analyze the counterpoint between two voices",
	Long: `Analyze the counterpoint between two voices: sounding intervals,
parallel perfect consonances, the species role of every dissonance and the
motion profile. The report is written to stdout as JSON.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		voiceA, err := loadVoice(args[0])
		if err != nil {
			return err
		}
		voiceB, err := loadVoice(args[1])
		if err != nil {
			return err
		}

		analyzer := analysis.NewAnalyzerWithConfig(cfg)
		if analyzeInvertible {
			report, err := analyzer.CheckInvertible(voiceA, voiceB)
			if err != nil {
				return err
			}
			return writeJSON(report)
		}

		report, err := analyzer.AnalyzePair(voiceA, voiceB)
		if err != nil {
			return err
		}
		return writeJSON(report)
	},
}
