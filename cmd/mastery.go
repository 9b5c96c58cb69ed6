package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/mastery"
	"github.com/abhisek/biblegym/internal/store"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Memorize verses through five recall levels",
}

var masteryPacksCmd = &cobra.Command{
	Use:   "packs",
	Short: "List mastery packs and your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		st := rt.engine.State()
		fmt.Fprintln(cmd.OutOrStdout(), rt.render.Packs(rt.corpus.MasteryPacks, st.VerseMastery))
		s := st.MasteryStats
		fmt.Fprintf(cmd.OutOrStdout(), "\nMastered %d, learning %d, average best accuracy %d%%\n",
			s.TotalMastered, s.Learning, s.AverageBestAccuracy)
		return nil
	},
}

var masteryStartCmd = &cobra.Command{
	Use:   "start <reference>",
	Short: "Start tracking a verse",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ref := strings.Join(args, " ")
		p, ok := rt.corpus.MasteryVerse(ref)
		if !ok {
			p, err = rt.lookup.Lookup(cmd.Context(), ref)
			if err != nil {
				return fmt.Errorf("find %q: %w", ref, err)
			}
		}

		st, _, err := rt.engine.Dispatch(cmd.Context(), app.StartMastery{Passage: p, At: rt.now()})
		if err != nil {
			return err
		}
		rec := st.VerseMastery[p.Reference]
		fmt.Fprintln(cmd.OutOrStdout(), rt.render.MasteryRecord(rec))
		fmt.Fprintf(cmd.OutOrStdout(), "\nRun `biblegym mastery practice %s` to begin.\n", p.Reference)
		return nil
	},
}

var masteryShowCmd = &cobra.Command{
	Use:   "show <reference>",
	Short: "Show a verse's mastery progress",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		rec, err := findMastery(rt.engine.State(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, rt.render.MasteryRecord(rec))

		history, err := rt.store.EventRepo().QueryMasteryEvents(cmd.Context(), rec.ID, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}
		if len(history) > 0 {
			fmt.Fprintln(out, "\nRecent attempts")
			for _, e := range history {
				fmt.Fprintf(out, "  %s  level %d  %3d%%  %3ds  %s\n",
					e.Timestamp.Local().Format("2006-01-02 15:04"), e.Level, e.Accuracy, e.Seconds, e.Trigger)
			}
		}
		return nil
	},
}

var masteryPracticeCmd = &cobra.Command{
	Use:   "practice <reference>",
	Short: "Attempt a recall level for a verse",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		rec, err := findMastery(rt.engine.State(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		level := rec.CurrentLevel
		if n, _ := cmd.Flags().GetInt("level"); n != 0 {
			level = mastery.Level(n)
		}
		if !level.Valid() {
			return fmt.Errorf("%w: %d", mastery.ErrInvalidLevel, level)
		}
		if level > rec.CurrentLevel {
			return fmt.Errorf("%w: level %d opens after level %d", mastery.ErrLevelLocked, level, rec.CurrentLevel)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, rt.render.MasteryLevel(rec, level))
		fmt.Fprintln(out)

		p := newPrompter(cmd.InOrStdin(), out, rt.render)
		started := time.Now()
		input, err := p.ask("Type the verse > ")
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		seconds := int(time.Since(started).Round(time.Second) / time.Second)

		accuracy := mastery.Accuracy(input, rec.Passage.Text)
		_, outcome, err := rt.engine.Dispatch(cmd.Context(), app.CompleteMasteryLevel{
			Reference: rec.ID,
			Level:     level,
			Accuracy:  accuracy,
			Seconds:   seconds,
			At:        rt.now(),
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(out, rt.render.Score("Accuracy:", accuracy))
		if tr := outcome.Transition; tr != nil {
			switch tr.Trigger {
			case "mastered":
				fmt.Fprintf(out, "%s is mastered!\n", rec.Passage.Reference)
			case "level-cleared":
				fmt.Fprintf(out, "Level %d unlocked: %s\n", tr.ToLevel, tr.ToLevel.Name())
			case "level-failed":
				fmt.Fprintf(out, "Reach %d%% to clear this level.\n", mastery.PassAccuracy)
			}
		}
		printGems(cmd, rt)
		return nil
	},
}

// findMastery looks a record up by reference, ignoring case.
func findMastery(st *app.State, ref string) (*mastery.VerseMastery, error) {
	if rec, ok := st.VerseMastery[ref]; ok {
		return rec, nil
	}
	for key, rec := range st.VerseMastery {
		if strings.EqualFold(key, ref) {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s (run `biblegym mastery start %s`)", app.ErrNoMastery, ref, strconv.Quote(ref))
}

func init() {
	masteryPracticeCmd.Flags().Int("level", 0, "Level to attempt (defaults to the current level)")

	masteryCmd.AddCommand(masteryPacksCmd)
	masteryCmd.AddCommand(masteryStartCmd)
	masteryCmd.AddCommand(masteryShowCmd)
	masteryCmd.AddCommand(masteryPracticeCmd)
}
