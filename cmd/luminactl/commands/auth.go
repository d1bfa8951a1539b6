package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var email string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a new wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		resp, err := service.Generate()
		if err != nil {
			return err
		}

		fmt.Println("Wallet initialized")
		fmt.Println("Address:", resp.Address)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		auth, ok := service.Session()
		if !ok {
			return fmt.Errorf("no active session; run init, signup, or login")
		}

		fmt.Println("Address:", auth.Address)
		fmt.Println("Public Key:", auth.PublicKey)
		if auth.Email != "" {
			fmt.Println("Email:", auth.Email)
		}
		fmt.Println("Since:", auth.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account bound to an email",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		password, err := promptPassword("Choose a password")
		if err != nil {
			return err
		}
		defer clear(password)

		resp, err := service.Signup(email, string(password))
		if err != nil {
			return err
		}

		fmt.Println("Account created")
		fmt.Println("Address:", resp.Address)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		password, err := promptPassword("Password")
		if err != nil {
			return err
		}
		defer clear(password)

		resp, err := service.Login(email, string(password))
		if err != nil {
			return err
		}

		fmt.Println("Logged in")
		fmt.Println("Address:", resp.Address)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session and the stored wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := buildService()
		if err != nil {
			return err
		}

		if err := service.Logout(); err != nil {
			return err
		}

		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVarP(&email, "email", "e", "", "Email address.")
	signupCmd.MarkFlagRequired("email")
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "Email address.")
	loginCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(initCmd, showCmd, signupCmd, loginCmd, logoutCmd)
}
