// Package cli wires the keyup commands: provision, list, show, doctor,
// config, version, and completion.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// Persistent flags shared by all commands
var (
	configFlag  string
	noColorFlag bool
	quietFlag   bool
)

// rootCmd is the base command for keyup.
var rootCmd = &cobra.Command{
	Use:   "keyup",
	Short: "Provision SSH deploy keys",
	Long: `keyup generates SSH key pairs for CI deploy access and authorizes them
on the local machine.

A provision run creates the key pair with ssh-keygen, appends the public
key to ~/.ssh/authorized_keys, and prints the private key so it can be
pasted into a CI secret.

Examples:
  keyup provision
  keyup provision deploy-bot --type ed25519
  keyup list
  keyup doctor`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag || os.Getenv("NO_COLOR") != "" {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default ~/.config/keyup/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "only print essential output")
}

// Config returns the --config flag value.
func Config() string {
	return configFlag
}

// Quiet reports whether --quiet was set.
func Quiet() bool {
	return quietFlag
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Structured errors render their own symbol and suggestion
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
