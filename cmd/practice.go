package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/drill"
	"github.com/abhisek/biblegym/internal/drillgen"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <memorization|context|verse-match|rearrange|ai-themed>",
	Short: "Practice a single drill",
	Long: `Practice one drill outside the daily workout. Passages come from the LLM
when one is configured (narrowed with --by and --value) and from the
built-in corpus otherwise. ai-themed plays one drill of a workout on a
random theme.`,
	Args: cobra.ExactArgs(1),
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("by", drillgen.ByRandom, "Passage selector: book, chapter, theme or random")
	practiceCmd.Flags().String("value", "", "Selector value, e.g. \"Romans\", \"John 3\" or \"hope\"")
	practiceCmd.Flags().Bool("show", false, "Print the drill as JSON instead of playing it")
}

func runPractice(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	by, _ := cmd.Flags().GetString("by")
	value, _ := cmd.Flags().GetString("value")
	by = strings.ToLower(by)

	practice := app.Practice{Kind: args[0], By: by, Value: value}

	var res *drillgen.PracticeResult
	if args[0] == app.KindAIThemed {
		d, err := rt.gen.RandomDrill(ctx)
		if errors.Is(err, drillgen.ErrNoProvider) {
			return fmt.Errorf("ai-themed practice needs an LLM provider")
		}
		if err != nil {
			return err
		}
		res = &drillgen.PracticeResult{Drill: d, IsAIGenerated: true}
		practice.By, practice.Value = "", ""
	} else {
		kind, err := drill.ParseKind(args[0])
		if err != nil {
			return err
		}
		res, err = rt.gen.Practice(ctx, kind, drillgen.PracticeConfig{By: by, Value: value})
		if err != nil {
			return err
		}
	}

	if show, _ := cmd.Flags().GetBool("show"); show {
		data, err := drill.Encode(res.Drill)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if _, _, err := rt.engine.Dispatch(ctx, app.StartPractice{Practice: practice}); err != nil {
		return err
	}

	source := "built-in passages"
	if res.IsAIGenerated {
		source = "AI-selected passages"
	}
	fmt.Fprintf(out, "%s practice from %s\n\n", res.Drill.Kind().DisplayName(), source)

	p := newPrompter(cmd.InOrStdin(), out, rt.render)
	answers, err := p.playDrill(res.Drill)
	if errors.Is(err, errQuit) {
		return nil
	}
	if err != nil {
		return err
	}
	score, err := drill.Score(res.Drill, answers)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, rt.render.Score("\nScore:", score))
	return rt.engine.RecordPractice(ctx, res.Drill.Kind(), score, res.IsAIGenerated)
}
