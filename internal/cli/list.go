package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/inspect"
	"github.com/keyup-sh/keyup/internal/ui"
	"github.com/spf13/cobra"
)

var listJSON bool

// listCmd shows the key pairs found in the SSH directory
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List key pairs in the SSH directory",
	Long: `List the SSH key pairs found in the SSH directory.

A key pair is a private key file with a matching .pub sibling. The table
shows the key type, SHA256 fingerprint, and whether the public key appears
in authorized_keys.

Examples:
  keyup list
  keyup list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCommand()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listCommand implements the list command logic.
func listCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	keys, err := inspect.Scan(cfg.SSHDir)
	if err != nil {
		return err
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(keys)
	}

	if len(keys) == 0 {
		fmt.Printf("No key pairs found in %s\n", cfg.SSHDir)
		fmt.Println("Run 'keyup provision' to create one.")
		return nil
	}

	columns := []ui.TableColumn{
		{Title: "NAME", Width: maxNameWidth(keys)},
		{Title: "TYPE", Width: 20},
		{Title: "FINGERPRINT", Width: 50},
		{Title: "AUTHORIZED", Width: 10},
	}

	rows := make([][]string, len(keys))
	for i, key := range keys {
		authorized := "no"
		if key.Authorized {
			authorized = "yes"
		}
		rows[i] = []string{key.Name, key.Type, key.Fingerprint, authorized}
	}

	fmt.Println(ui.RenderSimpleTable(columns, rows))
	return nil
}

// maxNameWidth sizes the NAME column to the longest key name.
func maxNameWidth(keys []inspect.Key) int {
	width := len("NAME")
	for _, key := range keys {
		if len(key.Name) > width {
			width = len(key.Name)
		}
	}
	return width + 2
}
