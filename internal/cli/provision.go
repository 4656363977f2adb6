package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/errors"
	"github.com/keyup-sh/keyup/internal/provision"
	"github.com/keyup-sh/keyup/internal/ui"
	"github.com/spf13/cobra"
)

var (
	provisionType        string
	provisionBits        int
	provisionComment     string
	provisionNoAuthorize bool
)

// provisionCmd generates a key pair and authorizes it locally
var provisionCmd = &cobra.Command{
	Use:   "provision [name]",
	Short: "Generate an SSH key pair and authorize it",
	Long: `Generate an SSH key pair and append the public key to authorized_keys.

The key pair is created in the SSH directory with ssh-keygen, the public
key is appended to authorized_keys, and the private key is printed so it
can be stored as a CI secret.

With no name argument, prompts interactively on a terminal and otherwise
falls back to the configured default name.

Examples:
  keyup provision
  keyup provision deploy-bot
  keyup provision ci --type ed25519 --no-authorize`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return provisionCommand(cmd, name)
	},
}

func init() {
	provisionCmd.Flags().StringVar(&provisionType, "type", "", "key type: rsa, ed25519, or ecdsa (default rsa)")
	provisionCmd.Flags().IntVar(&provisionBits, "bits", 0, "key length for RSA keys (default 4096)")
	provisionCmd.Flags().StringVar(&provisionComment, "comment", "", "key comment (defaults to the key name)")
	provisionCmd.Flags().BoolVar(&provisionNoAuthorize, "no-authorize", false, "skip the authorized_keys append")

	rootCmd.AddCommand(provisionCmd)
}

// provisionCommand implements the provision command logic.
func provisionCommand(cmd *cobra.Command, nameArg string) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(nameArg)
	if name == "" && ui.IsTerminal(os.Stdin) {
		name, err = promptKeyName(cfg.DefaultName)
		if err != nil {
			return err
		}
	}
	name = provision.ResolveName(name, cfg.DefaultName)

	keyType := cfg.KeyType
	if cmd.Flags().Changed("type") {
		keyType = provisionType
	}
	bits := cfg.Bits
	if cmd.Flags().Changed("bits") {
		bits = provisionBits
	}
	authorize := cfg.Authorize
	if provisionNoAuthorize {
		authorize = false
	}

	opts := provision.Options{
		Name:      name,
		KeyType:   keyType,
		Bits:      bits,
		Comment:   provisionComment,
		Authorize: authorize,
	}

	var spinner *ui.Spinner
	if !quietFlag {
		spinner = ui.NewSpinner(fmt.Sprintf("Generating %s key '%s'", keyType, name))
		spinner.Start()
	}

	result, err := provision.New(cfg.SSHDir).Provision(opts)
	if err != nil {
		if spinner != nil {
			spinner.Fail()
		}
		return err
	}
	if spinner != nil {
		spinner.Success()
	}

	printProvisionResult(result)
	return nil
}

// promptKeyName asks for the key name on an interactive terminal.
func promptKeyName(defaultName string) (string, error) {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Key name").
				Description(fmt.Sprintf("Filename for the new key pair (empty for '%s')", defaultName)).
				Placeholder(defaultName).
				Value(&name),
		),
	)

	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read the key name",
			"Pass the name as an argument: keyup provision <name>")
	}

	return name, nil
}

// printProvisionResult prints the file locations and the private key banner.
func printProvisionResult(result *provision.Result) {
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	bannerStyle := lipgloss.NewStyle().Bold(true).Foreground(ui.ColorPrimary)

	if !quietFlag {
		fmt.Println()
		fmt.Printf("  Private key: %s\n", mutedStyle.Render(result.PrivateKeyPath))
		fmt.Printf("  Public key:  %s\n", mutedStyle.Render(result.PublicKeyPath))
		if result.Authorized {
			fmt.Printf("  Authorized:  %s\n", mutedStyle.Render(result.AuthorizedKeysPath))
		}
		fmt.Println()
	}

	fmt.Println(bannerStyle.Render("Private key to add to GitHub Secrets:"))
	fmt.Println()
	fmt.Print(string(result.PrivateKey))
}
