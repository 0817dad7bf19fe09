package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avatar-commerce/avatarcommerce/internal/account"
)

const passwordEnv = "AVATAR_PASSWORD"

func newLoginCommand(e *env) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			state, err := a.Session.Login(cmd.Context(), account.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			user, _ := state.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", user.Name, user.UserType)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (or "+passwordEnv+")")
	return cmd
}

func newSignupCommand(e *env) *cobra.Command {
	var reg account.Registration
	var userType string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if reg.Password == "" {
				reg.Password = os.Getenv(passwordEnv)
			}
			if reg.ConfirmPassword == "" {
				reg.ConfirmPassword = reg.Password
			}
			if userType != "" {
				t, err := account.ParseUserType(userType)
				if err != nil {
					return err
				}
				reg.UserType = t
			}
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			user, err := a.Session.Signup(cmd.Context(), reg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. Run avatarctl login to sign in.\n", user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&reg.Name, "name", "", "display name")
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "password, at least 8 characters (or "+passwordEnv+")")
	cmd.Flags().StringVar(&reg.ConfirmPassword, "confirm", "", "password confirmation (defaults to --password)")
	cmd.Flags().StringVar(&userType, "type", "customer", "account type: customer or influencer")
	return cmd
}

func newLogoutCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			a.Session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newStatusCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"whoami"},
		Short:   "Show the current session",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.client(cmd.Context())
			if err != nil {
				return err
			}
			state := a.Session.State()
			user, ok := state.User()
			if !state.IsAuthenticated() || !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\nType: %s\nID: %s\n", user.Name, user.Email, user.UserType, user.ID)
			return nil
		},
	}
}
