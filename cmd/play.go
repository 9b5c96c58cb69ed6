package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/workout"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play today's workout",
	Long: `Play today's workout drill by drill, resuming where you left off. Type q
at any prompt to stop; progress so far is kept.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Bool("challenge", false, "Play your group's challenge workout instead")
}

func runPlay(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	if _, err := rt.requireUser(); err != nil {
		return err
	}

	var w *workout.Workout
	if challenge, _ := cmd.Flags().GetBool("challenge"); challenge {
		st := rt.engine.State()
		g := st.UserGroup()
		if g == nil || g.Challenge == nil {
			return fmt.Errorf("your group has no challenge; create one with `biblegym group challenge`")
		}
		if st.Workout == nil || st.Workout.ID != g.Challenge.ID {
			if _, _, err := rt.engine.Dispatch(ctx, app.StartWorkout{Workout: g.Challenge}); err != nil {
				return err
			}
		}
		w = rt.engine.State().Workout
	} else {
		w, err = rt.ensureWorkout(ctx)
		if err != nil {
			return err
		}
	}
	if w.Completed {
		fmt.Fprintln(out, "You've finished today's workout. Come back tomorrow!")
		fmt.Fprintln(out)
		fmt.Fprintln(out, rt.render.Workout(w))
		return nil
	}

	p := newPrompter(cmd.InOrStdin(), out, rt.render)
	start := rt.engine.State().CurrentDrill
	for i := start; i < len(w.Drills); i++ {
		d := w.Drills[i]
		fmt.Fprintln(out)
		fmt.Fprintln(out, rt.render.DrillHeader(i, len(w.Drills), d))

		answers, err := p.playDrill(d)
		if errors.Is(err, errQuit) {
			fmt.Fprintln(out, "\nStopped. Run `biblegym play` to resume.")
			return nil
		}
		if err != nil {
			return err
		}

		score, err := drill.Score(d, answers)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rt.render.Score("Score:", score))

		if _, _, err := rt.engine.Dispatch(ctx, app.CompleteDrill{Kind: d.Kind(), Score: score}); err != nil {
			return err
		}
		if i < len(w.Drills)-1 {
			if _, _, err := rt.engine.Dispatch(ctx, app.NextDrill{}); err != nil {
				return err
			}
		}
	}

	_, outcome, err := rt.engine.Dispatch(ctx, app.CompleteWorkout{At: rt.now()})
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, rt.render.Workout(outcome.Workout))
	if outcome.NewStreak > outcome.PrevStreak {
		fmt.Fprintf(out, "\nStreak: %d day(s)\n", outcome.NewStreak)
	}
	printGems(cmd, rt)
	return nil
}

// printGems lists gems awarded during this run.
func printGems(cmd *cobra.Command, rt *runtime) {
	awards := rt.engine.SessionGems()
	if len(awards) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	for _, a := range awards {
		fmt.Fprintln(out, rt.render.GemAward(a))
	}
}
