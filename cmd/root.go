package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "biblegym",
	Short: "Daily Scripture memory workouts",
	Long: `biblegym builds a daily workout of Scripture drills (fill in the blanks,
background questions, verse matching and clause ordering), tracks verse
mastery across five recall levels and keeps streaks, gems and a group
leaderboard in a local SQLite database.`,
	SilenceUsage: true,
	RunE:         runHome,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides BIBLEGYM_DB env var)")
	pf.String("corpus", "", "Path to a JSON corpus replacing the built-in passages")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(workoutCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BIBLEGYM_DB env var, then the default XDG path.
func resolveDBPath(path string) (string, error) {
	if path != "" {
		return path, store.EnsureDir(path)
	}
	return store.DefaultDBPath()
}

func runHome(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	st := rt.engine.State()
	if st.User == nil {
		fmt.Fprintln(out, "Welcome to biblegym. Sign in to start your streak:")
		fmt.Fprintln(out, "  biblegym login --name \"Your Name\" --email you@example.com")
		return nil
	}

	u := st.User
	fmt.Fprintf(out, "Hi %s! Streak: %d day(s), total score: %d\n", u.Name, u.Streak, u.TotalScore)
	if st.Workout != nil && st.Workout.Date == rt.today() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, rt.render.Workout(st.Workout))
		if !st.Workout.Completed {
			fmt.Fprintln(out, "\nRun `biblegym play` to continue.")
		}
		return nil
	}
	fmt.Fprintln(out, "Today's workout is waiting. Run `biblegym play` to begin.")
	return nil
}
