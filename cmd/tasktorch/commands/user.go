package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewUserCommand creates the user management command
func NewUserCommand() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
		Long:  "Sign up and verify accounts in the user store",
	}

	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			if !a.auth.AddUser(username, password) {
				return fmt.Errorf("username %q is taken", username)
			}
			fmt.Printf("Account %q created\n", username)
			return nil
		},
	}
	signupCmd.Flags().String("username", "", "account name")
	signupCmd.Flags().String("password", "", "account password")
	userCmd.AddCommand(signupCmd)

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify a username/password pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")

			user := a.auth.Authenticate(username, password)
			if user == nil {
				return fmt.Errorf("invalid username or password")
			}
			a.sess.SignIn(*user)
			fmt.Printf("Signed in as %s (theme: %s)\n", user.Username, a.sess.Theme())
			return nil
		},
	}
	loginCmd.Flags().String("username", "", "account name")
	loginCmd.Flags().String("password", "", "account password")
	userCmd.AddCommand(loginCmd)

	existsCmd := &cobra.Command{
		Use:   "exists <username>",
		Short: "Check whether a username is taken",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if a.auth.UsernameExists(args[0]) {
				fmt.Printf("%q is taken\n", args[0])
			} else {
				fmt.Printf("%q is available\n", args[0])
			}
			return nil
		},
	}
	userCmd.AddCommand(existsCmd)

	return userCmd
}
