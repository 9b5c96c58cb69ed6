package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streak, scores, mastery and gems",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		repo := rt.store.EventRepo()
		st := rt.engine.State()

		if u := st.User; u != nil {
			fmt.Fprintf(out, "%s (%s)\n", u.Name, u.AvatarInitials)
			fmt.Fprintf(out, "Streak:       %d day(s)\n", u.Streak)
			fmt.Fprintf(out, "Total score:  %d\n", u.TotalScore)
			if u.LastWorkoutDate != "" {
				fmt.Fprintf(out, "Last workout: %s\n", u.LastWorkoutDate)
			}
		} else {
			fmt.Fprintln(out, "Not signed in.")
		}

		ms := st.MasteryStats
		fmt.Fprintf(out, "Verses:       %d mastered, %d learning (avg best %d%%)\n",
			ms.TotalMastered, ms.Learning, ms.AverageBestAccuracy)

		// Recent workouts.
		workouts, err := repo.QueryWorkoutEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query workouts: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Recent Workouts")
		fmt.Fprintln(out, strings.Repeat("─", 64))
		if len(workouts) == 0 {
			fmt.Fprintln(out, "No workouts yet.")
		}
		for _, w := range workouts {
			label := w.Theme
			if label == "" {
				label = "daily"
			}
			if w.GroupChallenge {
				label += " (challenge)"
			}
			fmt.Fprintf(out, "%-10s  %-26s  %5d  streak %d\n", w.Date, truncate(label, 26), w.TotalScore, w.Streak)
		}

		// Averages by drill type.
		avgs, err := repo.DrillAverages(ctx)
		if err != nil {
			return fmt.Errorf("query drill averages: %w", err)
		}
		if len(avgs) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Drill Averages")
			fmt.Fprintln(out, strings.Repeat("─", 64))
			for _, a := range avgs {
				name := a.DrillType
				if k, err := drill.ParseKind(a.DrillType); err == nil {
					name = k.DisplayName()
				}
				fmt.Fprintf(out, "%-16s  %5.1f%%  (%d played)\n", name, a.Average, a.Count)
			}
		}

		// Gems.
		counts, total, err := repo.GemCounts(ctx)
		if err != nil {
			return fmt.Errorf("query gems: %w", err)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, rt.render.GemCounts(counts, total))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 7, "Number of recent workouts to show")
}
