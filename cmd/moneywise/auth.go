package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moneywise/client-go/internal/api"
)

func loginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and persist the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if password == "" {
				password, err = readPassword("Password: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			user, err := a.auth.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			fmt.Printf("Signed in as %s (%s)\n", user.FullName(), user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	return cmd
}

func registerCmd() *cobra.Command {
	var params api.RegisterParams

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account; sign-in requires email verification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			params.Email = args[0]
			if params.Password == "" {
				params.Password, err = readPassword("Password: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				params.ConfirmPassword, err = readPassword("Confirm password: ")
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
			}

			user, err := a.auth.Register(cmd.Context(), params)
			if err != nil {
				return err
			}

			fmt.Printf("Account created for %s.\nCheck your inbox and run `moneywise verify-email <link>` to activate it.\n", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&params.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&params.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&params.Currency, "currency", "USD", "Preferred currency")
	cmd.Flags().StringVar(&params.VerificationURL, "verification-url", "https://app.moneywise.app/verify-email", "Base URL embedded in the verification email")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			a.auth.Logout()
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			user := a.auth.CurrentUser()
			if user == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s (%s), currency %s\n", user.FullName(), user.Email, user.Currency)
			return nil
		},
	}
}

func verifyEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email <link-or-token>",
		Short: "Redeem an email verification link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			token := args[0]
			if extracted, err := api.VerificationTokenFromURL(token); err == nil {
				token = extracted
			}

			if err := a.auth.VerifyEmail(cmd.Context(), token); err != nil {
				return err
			}
			fmt.Println("Email verified. You can sign in now.")
			return nil
		},
	}
}
