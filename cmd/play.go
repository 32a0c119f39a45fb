package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

// addSessionFlags registers the flags shared by the root command and play.
func addSessionFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("name", "", "Learner name (skips the name prompt)")
	f.String("level", "", "Starting level: easy, medium or hard (skips the level prompt)")
	f.Int("questions", 0, "Maximum number of questions")
	f.Uint64("seed", 0, "Seed for a repeatable question sequence")
	f.Bool("plain", false, "Use the line-based console instead of the full-screen UI")
	f.String("log", "", "CSV attempt log path")
	f.String("log-format", "", "Attempt log sink: csv, sqlite or both")
	f.String("db", "", "SQLite attempt log path (overrides MATHADV_DB_PATH)")
}
