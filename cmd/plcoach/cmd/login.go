package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the coaching server",
	Long: `Authenticate with the coaching server.

Examples:
  plcoach login                           # Interactive login
  plcoach login --email user@example.com  # Login with email`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		reader := bufio.NewReader(os.Stdin)

		if email == "" {
			fmt.Print("Email: ")
			email, _ = reader.ReadString('\n')
			email = strings.TrimSpace(email)
		}
		if email == "" {
			return fmt.Errorf("email is required")
		}

		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password := string(passwordBytes)
		if password == "" {
			return fmt.Errorf("password is required")
		}

		fmt.Println("Logging in...")

		user, err := client.Login(email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		fmt.Println("")
		fmt.Printf("✓ Logged in as %s (%s)\n", user.DisplayName(), user.Role)
		fmt.Println("")
		fmt.Println("Next steps:")
		fmt.Println("  plcoach dashboard   — Your next and recent workouts")
		fmt.Println("  plcoach workouts    — Full workout list")

		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from the coaching server",
	Long:  `Clear stored credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		if err := client.Logout(); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current user",
	Long:  `Display the currently logged in user.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		data, err := client.AuthStore().Load()
		if err != nil || data == nil || data.Token == "" {
			fmt.Println("Not logged in")
			fmt.Println("")
			fmt.Println("Run 'plcoach login' to authenticate")
			return nil
		}

		if data.User != nil {
			fmt.Printf("Logged in as %s (%s)\n", data.User.DisplayName(), data.User.Role)
		} else {
			fmt.Println("Logged in")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().String("email", "", "Email address")
}
