package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/biblegym/internal/app"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as a local user",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		if name == "" {
			name = rt.cfg.UserName
		}
		if email == "" {
			email = rt.cfg.UserEmail
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("--name is required (or set BIBLEGYM_USER)")
		}

		if u := rt.engine.State().User; u != nil && strings.EqualFold(u.Email, email) && u.Name == name {
			fmt.Fprintf(cmd.OutOrStdout(), "Already signed in as %s.\n", u.Name)
			return nil
		}

		u := app.NewUser(name, strings.TrimSpace(email), rt.now())
		if _, _, err := rt.engine.Dispatch(cmd.Context(), app.SetUser{User: u}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s).\n", u.Name, u.AvatarInitials)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear local progress from the current state",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		if _, _, err := rt.engine.Dispatch(cmd.Context(), app.Logout{}); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("name", "", "Display name")
	loginCmd.Flags().String("email", "", "Email address")
}
