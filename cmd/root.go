package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathadv",
	Short: "Adaptive arithmetic practice",
	Long: "Math Adventures: terminal arithmetic practice that moves between Easy, Medium\n" +
		"and Hard as you answer, based on recent accuracy and speed.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides MATHADV_CONFIG)")
	rootCmd.PersistentFlags().String("debug-log", "", "Write structured JSON logs to this file")

	addSessionFlags(rootCmd)
	addSessionFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
