package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "happymeter",
	Short: "How happy are you today?",
	Long:  "Happymeter is a one-minute terminal quiz that rates your happiness on a five-point scale.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("questions", "", "Path to a JSON or YAML question file (default: built-in questions)")
	flags.String("log-file", "", "Path to the log file (default: $XDG_STATE_HOME/happymeter/happymeter.log)")
	flags.Uint64("seed", 0, "Seed for question sampling (0 picks a random seed)")
	flags.Bool("no-chime", false, "Do not ring the terminal bell on the result screen")
	flags.String("env", "local", "Environment: local or production")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}
