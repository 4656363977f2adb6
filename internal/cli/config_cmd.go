package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/errors"
	"github.com/keyup-sh/keyup/internal/ui"
	"github.com/spf13/cobra"
)

var configInitForce bool

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage keyup configuration",
	Long:  `Manage the keyup global configuration file.`,
}

// configInitCmd writes a starter global config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the global config file",
	Long: `Create ~/.config/keyup/config.yaml with the built-in defaults.

Edit the file afterwards to change the SSH directory, the default key
name, or the key parameters.

Examples:
  keyup config init
  keyup config init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configInitCommand()
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite existing config")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

// configInitCommand implements the config init logic.
func configInitCommand() error {
	path, err := config.GlobalPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		if !ui.IsTerminal(os.Stdin) {
			return errors.New(errors.ErrConfig,
				"Config file already exists: "+path,
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
