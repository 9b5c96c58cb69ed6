package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/drillgen"
	"github.com/abhisek/biblegym/internal/workout"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Show today's workout",
	Long: `Show today's workout, generating it if needed. With --date the workout
for that day is previewed without changing your progress. With --theme an
AI workout on the theme replaces today's workout.`,
	RunE: runWorkout,
}

func init() {
	workoutCmd.Flags().String("date", "", "Preview the workout for a day (YYYY-MM-DD)")
	workoutCmd.Flags().String("theme", "", "Generate an AI workout on a theme")
}

func runWorkout(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	date, _ := cmd.Flags().GetString("date")
	theme, _ := cmd.Flags().GetString("theme")

	switch {
	case date != "":
		day, err := time.ParseInLocation(time.DateOnly, date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
		}
		userID := ""
		if u := rt.engine.State().User; u != nil {
			userID = u.ID
		}
		w, err := workout.GenerateDaily(rt.corpus, userID, day)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rt.render.Workout(w))
		return nil

	case theme != "":
		w, err := rt.gen.ThemedWorkout(ctx, theme)
		if errors.Is(err, drillgen.ErrNoProvider) {
			return fmt.Errorf("AI workouts need an LLM provider; set BIBLEGYM_GEMINI_API_KEY or another provider key")
		}
		if err != nil {
			return err
		}
		if _, _, err := rt.engine.Dispatch(ctx, app.StartWorkout{Workout: w}); err != nil {
			return err
		}
		fmt.Fprintln(out, rt.render.Workout(w))
		return nil
	}

	w, err := rt.ensureWorkout(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rt.render.Workout(w))
	return nil
}
