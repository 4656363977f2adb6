package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/keyup-sh/keyup/internal/config"
	"github.com/keyup-sh/keyup/internal/doctor"
	"github.com/keyup-sh/keyup/internal/ui"
	"github.com/keyup-sh/keyup/internal/util"
	"github.com/spf13/cobra"
)

var doctorJSON bool

// doctorCmd diagnoses the local key setup
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the local key setup",
	Long: `Run diagnostic checks for the local key setup.

Checks:
  - ssh-keygen availability on PATH
  - SSH directory existence and permissions
  - authorized_keys permissions
  - SSH client config IdentityFile entries

Examples:
  keyup doctor
  keyup doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput is the JSON shape for the doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput groups results under one category heading.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput tallies the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	checks := doctor.NewAllChecks(cfg.SSHDir)
	results := doctor.RunAll(checks)

	if doctorJSON {
		return outputDoctorJSON(checks, results)
	}
	return outputDoctorText(checks, results)
}

// outputDoctorJSON writes the results as indented JSON.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var categoryOrder []string

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	pass, warn, fail := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     pass,
		Warn:     warn,
		Fail:     fail,
		AllClear: warn == 0 && fail == 0,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText renders the human-readable report.
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("keyup Diagnostic Report"))
	fmt.Println()

	grouped := make(map[string][]int)
	var categoryOrder []string
	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], i)
	}

	for _, category := range categoryOrder {
		fmt.Println(headerStyle.Render(category))
		for _, idx := range grouped[category] {
			renderCheckResult(results[idx], successStyle, errorStyle, warnStyle, mutedStyle)
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("━", 60))
	fmt.Println()

	_, warn, fail := doctor.CountByStatus(results)
	if warn == 0 && fail == 0 {
		fmt.Printf("%s %s\n", successStyle.Render(ui.SymbolSuccess), "Everything looks good")
	} else {
		total := warn + fail
		fmt.Printf("%s %d %s found\n",
			errorStyle.Render(ui.SymbolFail),
			total,
			util.Pluralize(total, "issue", "issues"),
		)
	}

	fmt.Println()
	return nil
}

// renderCheckResult renders a single check result line with its suggestion.
func renderCheckResult(result doctor.CheckResult, successStyle, errorStyle, warnStyle, mutedStyle lipgloss.Style) {
	var symbol string
	var style lipgloss.Style

	switch result.Status {
	case doctor.StatusPass:
		symbol = ui.SymbolComplete
		style = successStyle
	case doctor.StatusWarn:
		symbol = ui.SymbolComplete
		style = warnStyle
	case doctor.StatusFail:
		symbol = ui.SymbolFail
		style = errorStyle
	}

	fmt.Printf("  %s %s\n", style.Render(symbol), result.Message)

	if result.Suggestion != "" && result.Status != doctor.StatusPass {
		for _, line := range strings.Split(result.Suggestion, "\n") {
			fmt.Printf("    %s\n", mutedStyle.Render(line))
		}
	}
}
