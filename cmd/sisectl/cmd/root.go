package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/cmd/attendance"
	"github.com/victorpuello/SISE/cmd/sisectl/cmd/auth"
	"github.com/victorpuello/SISE/cmd/sisectl/cmd/grades"
	"github.com/victorpuello/SISE/cmd/sisectl/cmd/observer"
	"github.com/victorpuello/SISE/cmd/sisectl/cmd/plans"
	"github.com/victorpuello/SISE/cmd/sisectl/cmd/reports"
	"github.com/victorpuello/SISE/cmd/sisectl/cmd/users"
	"github.com/victorpuello/SISE/cmd/sisectl/internal/client"
	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "sisectl",
	Short: "SISE CLI - school management client",
	Long: `sisectl is the command-line interface for SISE, an academic management
system for schools. Use it to manage users, attendance, grades, lesson
plans, observer entries, and institutional reports.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env in the working directory seeds missing variables; the real
		// environment always wins.
		_ = godotenv.Load()

		env, err := config.LoadEnv()
		if err != nil {
			return err
		}

		// Flags beat environment beats defaults.
		if !cmd.Flags().Changed("server") {
			serverURL = env.ServerURL
		}
		if !cmd.Flags().Changed("non-interactive") {
			nonInteractive = env.NonInteractive
		}

		provider := client.NewProvider(serverURL, env.RequestTimeout)
		if env.CredentialsFile != "" {
			provider.SetStorePath(env.CredentialsFile)
		}
		if env.Token != "" {
			provider.SetBearerToken(env.Token)
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			RequestTimeout: env.RequestTimeout,
			NonInteractive: nonInteractive,
			ClientProvider: provider,
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000/api", "SISE API server URL (also set via SISE_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via SISE_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(attendance.AttendanceCmd)
	rootCmd.AddCommand(grades.GradesCmd)
	rootCmd.AddCommand(plans.PlansCmd)
	rootCmd.AddCommand(observer.ObserverCmd)
	rootCmd.AddCommand(reports.ReportsCmd)
}
