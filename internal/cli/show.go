package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/errors"
	"github.com/keyup-sh/keyup/internal/inspect"
	"github.com/keyup-sh/keyup/internal/provision"
	"github.com/keyup-sh/keyup/internal/ui"
	"github.com/spf13/cobra"
)

var showPrivate bool

// showCmd prints details for one key pair
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show details for one key pair",
	Long: `Show the public key line, fingerprint, and comment for a key pair.

With no name argument, an interactive picker lists the discovered keys.
With --private the private key material is printed, framed the same way
as after a provision run.

Examples:
  keyup show
  keyup show github-actions
  keyup show deploy-bot --private`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return showCommand(name)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showPrivate, "private", false, "print the private key material")
	rootCmd.AddCommand(showCmd)
}

// showCommand implements the show command logic.
func showCommand(name string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name, err = pickKeyName(cfg.SSHDir)
		if err != nil {
			return err
		}
	}

	key, err := inspect.Find(cfg.SSHDir, name)
	if err != nil {
		return err
	}

	printKeyDetails(key)

	if showPrivate {
		privateKey, err := provision.ReadPrivateKey(key.PrivatePath)
		if err != nil {
			return err
		}

		bannerStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)
		fmt.Println(bannerStyle.Render("Private key to add to GitHub Secrets:"))
		fmt.Println()
		fmt.Print(string(privateKey))
	}

	return nil
}

// pickKeyName runs the interactive picker, or returns the only key's name
// when just one exists.
func pickKeyName(sshDir string) (string, error) {
	if !ui.IsTerminal(os.Stdin) {
		return "", errors.New(errors.ErrConfig,
			"No key name given",
			"Pass the name as an argument: keyup show <name>")
	}

	keys, err := inspect.Scan(sshDir)
	if err != nil {
		return "", err
	}

	choices := make([]ui.KeyChoice, len(keys))
	for i, key := range keys {
		choices[i] = ui.KeyChoice{
			Name:        key.Name,
			Type:        key.Type,
			Fingerprint: key.Fingerprint,
			Comment:     key.Comment,
		}
	}

	choice, err := ui.PickKey(choices)
	if err != nil {
		return "", err
	}
	if choice == nil {
		return "", errors.New(errors.ErrConfig,
			"No key selected",
			"Pass the name as an argument: keyup show <name>")
	}

	return choice.Name, nil
}

// printKeyDetails prints one key's metadata and public line.
func printKeyDetails(key *inspect.Key) {
	labelStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	fmt.Printf("%s %s\n", labelStyle.Render("Name:"), key.Name)
	fmt.Printf("%s %s\n", labelStyle.Render("Type:"), key.Type)
	if key.Fingerprint != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Fingerprint:"), key.Fingerprint)
	}
	if key.Comment != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Comment:"), key.Comment)
	}
	authorized := "no"
	if key.Authorized {
		authorized = "yes"
	}
	fmt.Printf("%s %s\n", labelStyle.Render("Authorized:"), authorized)
	fmt.Printf("%s %s\n", labelStyle.Render("Private key:"), mutedStyle.Render(key.PrivatePath))
	fmt.Println()

	if pub, err := os.ReadFile(key.PublicPath); err == nil {
		fmt.Print(string(pub))
		if !strings.HasSuffix(string(pub), "\n") {
			fmt.Println()
		}
	}
	fmt.Println()
}
