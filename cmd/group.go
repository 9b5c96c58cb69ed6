package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
	"github.com/abhisek/biblegym/internal/drillgen"
	"github.com/abhisek/biblegym/internal/group"
	"github.com/abhisek/biblegym/internal/rng"
	"github.com/abhisek/biblegym/internal/workout"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Study groups, challenges and the weekly leaderboard",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group and join it",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		st := rt.engine.State()
		if st.User == nil {
			return app.ErrNoUser
		}
		if st.User.GroupID != "" {
			return group.ErrAlreadyMember
		}

		g := group.New(strings.Join(args, " "), st.User.ID, rt.now(), rng.System())
		if _, _, err := rt.engine.Dispatch(ctx, app.SetGroups{Groups: append(st.Groups, g)}); err != nil {
			return err
		}
		if err := joinGroup(cmd, rt, g); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %q. Share the invite code %s.\n", g.Name, g.InviteCode)
		return nil
	},
}

var groupJoinCmd = &cobra.Command{
	Use:   "join <invite-code>",
	Short: "Join a known group by invite code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		g, err := group.FindByCode(rt.engine.State().Groups, args[0])
		if err != nil {
			return fmt.Errorf("invite code %s: %w", group.NormalizeCode(args[0]), err)
		}
		if err := joinGroup(cmd, rt, g); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Joined %q.\n", g.Name)
		return nil
	},
}

// joinGroup adds the user to g and puts them on the leaderboard.
func joinGroup(cmd *cobra.Command, rt *runtime, g *group.Group) error {
	ctx := cmd.Context()
	st, _, err := rt.engine.Dispatch(ctx, app.JoinGroup{Group: g})
	if err != nil {
		return err
	}

	u := st.User
	members := st.GroupMembers
	for _, m := range members {
		if m.UserID == u.ID {
			return nil
		}
	}
	members = append(members, group.Member{
		UserID:         u.ID,
		Name:           u.Name,
		AvatarInitials: u.AvatarInitials,
		Streak:         u.Streak,
	})
	group.SortLeaderboard(members)
	_, _, err = rt.engine.Dispatch(ctx, app.SetGroupMembers{Members: members})
	return err
}

var groupChallengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Set or clear your group's challenge workout",
	Long: `Set your group's challenge. With --theme the challenge is an AI workout on
the theme; otherwise today's daily workout is used. --delete clears it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if del, _ := cmd.Flags().GetBool("delete"); del {
			if _, _, err := rt.engine.Dispatch(ctx, app.DeleteGroupChallenge{}); err != nil {
				return err
			}
			fmt.Fprintln(out, "Challenge removed.")
			return nil
		}

		var w *workout.Workout
		if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
			w, err = rt.gen.ThemedWorkout(ctx, theme)
			if errors.Is(err, drillgen.ErrNoProvider) {
				return fmt.Errorf("themed challenges need an LLM provider")
			}
		} else {
			userID, _ := rt.requireUser()
			w, err = workout.GenerateDaily(rt.corpus, userID, rt.now())
		}
		if err != nil {
			return err
		}

		if _, _, err := rt.engine.Dispatch(ctx, app.SetGroupChallenge{Workout: w}); err != nil {
			return err
		}
		fmt.Fprintln(out, rt.render.Workout(w))
		fmt.Fprintln(out, "\nChallenge set. Play it with `biblegym play --challenge`.")
		return nil
	},
}

var groupLeaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show your group's weekly leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		st := rt.engine.State()
		g := st.UserGroup()
		if g == nil {
			return app.ErrNoGroup
		}
		fmt.Fprintln(cmd.OutOrStdout(), rt.render.Leaderboard(g, st.GroupMembers))
		return nil
	},
}

func init() {
	groupChallengeCmd.Flags().String("theme", "", "Generate an AI challenge on a theme")
	groupChallengeCmd.Flags().Bool("delete", false, "Remove the current challenge")

	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupJoinCmd)
	groupCmd.AddCommand(groupChallengeCmd)
	groupCmd.AddCommand(groupLeaderboardCmd)
}
