package cmd

import (
	"github.com/spf13/cobra"

	"github.com/strettolab/contrapunto/analysis"
)

func init() {
	rootCmd.AddCommand(harmonyCmd)
}

var harmonyCmd = &cobra.Command{
	Use:   "harmony <voice.json>",
	Short: "Infer the implied harmony of a single voice",
	Long: `Infer the most plausible chord per metric beat of a single voice,
letting one harmony persist across arpeggiated or sustained beats. The
sequence is written to stdout as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		voice, err := loadVoice(args[0])
		if err != nil {
			return err
		}

		report, err := analysis.NewAnalyzerWithConfig(cfg).AnalyzeVoice(voice)
		if err != nil {
			return err
		}
		return writeJSON(report)
	},
}
