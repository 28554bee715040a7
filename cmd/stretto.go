package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strettolab/contrapunto/analysis"
)

var (
	strettoTranspositions []int
	strettoMinDistance    float64
	strettoMaxDistance    float64
	strettoStep           float64
	strettoFull           bool
)

func init() {
	strettoCmd.Flags().IntSliceVar(&strettoTranspositions, "transpose", nil, "comes transpositions in semitones (default 0,7,12)")
	strettoCmd.Flags().Float64Var(&strettoMinDistance, "min-distance", 0, "smallest entry distance in quarter notes (default one beat)")
	strettoCmd.Flags().Float64Var(&strettoMaxDistance, "max-distance", 0, "largest entry distance in quarter notes (default subject length minus one beat)")
	strettoCmd.Flags().Float64Var(&strettoStep, "step", 0, "entry distance increment (default one beat)")
	strettoCmd.Flags().BoolVar(&strettoFull, "full", false, "include the full pair report per entry")
	rootCmd.AddCommand(strettoCmd)
}

var strettoCmd = &cobra.Command{
	Use:   "stretto <subject.json>",
	Short: "Search stretto entry points for a subject",
	Long: `Lay transposed copies of the subject against itself across a grid of
entry distances and rank the overlapping combinations by counterpoint
quality. The ranked entries are written to stdout as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		subject, err := loadVoice(args[0])
		if err != nil {
			return err
		}

		analyzer := analysis.NewAnalyzerWithConfig(cfg)
		result, err := analyzer.EvaluateStretto(subject, analysis.StrettoOptions{
			Transpositions: strettoTranspositions,
			MinDistance:    strettoMinDistance,
			MaxDistance:    strettoMaxDistance,
			DistanceStep:   strettoStep,
		})
		if err != nil {
			return err
		}

		if !strettoFull {
			for i := range result.Entries {
				result.Entries[i].Report = nil
			}
		}
		return writeJSON(result)
	},
}
