package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/config"
)

var (
	shellFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session token as an environment variable",
	Long: `Export the stored session token as a SISE_TOKEN environment variable.

Scripts and CI jobs can use SISE_TOKEN to call sisectl without touching
the credential store.

Supported shells:
  - posix (bash, zsh, sh) - default
  - fish
  - powershell

Usage:
  # POSIX shells (bash/zsh/sh)
  eval $(sisectl auth export)

  # Fish shell
  eval (sisectl auth export --shell fish)

  # PowerShell
  sisectl auth export --shell powershell | Invoke-Expression

The token is loaded from your stored login session. If not logged in,
run 'sisectl auth login' first.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Shell format: posix, fish, powershell (auto-detected if not specified)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.MustFromContext(cmd.Context())

	creds, err := cfg.ClientProvider.Credentials()
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w\n\nPlease run 'sisectl auth login' first", err)
	}

	// Auto-detect shell if not specified
	if shellFormat == "" {
		shellFormat = detectShell()
	}

	shellFormat = strings.ToLower(shellFormat)

	switch shellFormat {
	case "posix", "bash", "zsh", "sh":
		printPosixExport(creds.Token)
	case "fish":
		printFishExport(creds.Token)
	case "powershell", "pwsh", "ps1":
		printPowerShellExport(creds.Token)
	default:
		return fmt.Errorf("unsupported shell format: %s\n\nSupported formats: posix, fish, powershell", shellFormat)
	}

	return nil
}

// detectShell attempts to detect the current shell from the SHELL environment variable
func detectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "posix"
	}

	shellName := filepath.Base(shell)

	switch shellName {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	default:
		// Default to POSIX for bash, zsh, sh, and unknown shells
		return "posix"
	}
}

func printPosixExport(token string) {
	// Only print instructions if stdout is a TTY (interactive mode, not being piped/eval'd)
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   eval $(sisectl auth export)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("export SISE_TOKEN=\"%s\"\n", token)
}

func printFishExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   eval (sisectl auth export --shell fish)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("set -x SISE_TOKEN \"%s\"\n", token)
}

func printPowerShellExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   sisectl auth export --shell powershell | Invoke-Expression")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("$env:SISE_TOKEN=\"%s\"\n", token)
}

// isTerminal checks if the given file is a terminal (TTY)
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
