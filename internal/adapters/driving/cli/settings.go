package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/oddart/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change pipeline, quiz and museum API settings.

Settings are stored in ~/.oddart/config.toml. Use 'oddart settings keys'
to list every key.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting. Lists are comma separated.

Examples:
  oddart settings set pipeline.min_records 5
  oddart settings set pipeline.target_departments "European Paintings,The American Wing"
  oddart settings set quiz.seed 42`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsUnset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsModeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Select the multi-value mode",
	Long: `Select how delimiter-joined values such as "Dept A|Dept B" are expanded
when collecting distinct departments and artists.

Available modes:
  literal - joined values are not expanded (default)
  tokens  - joined values are split and deduplicated`,
	Args: cobra.NoArgs,
	RunE: runSettingsMode,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsModeCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Retain fields: %s\n", strings.Join(settings.Pipeline.RetainFields, ", "))
	cmd.Printf("  Target departments: %s\n", strings.Join(settings.Pipeline.TargetDepartments, ", "))
	cmd.Printf("  Min records: %d\n", settings.Pipeline.MinRecords)
	cmd.Printf("  URL base: %s\n", settings.Pipeline.URLBase)
	cmd.Printf("  Multi-value mode: %s\n", settings.Pipeline.MultiValueMode.Description())
	cmd.Println()

	cmd.Println("[Paths]")
	cmd.Printf("  Input: %s\n", settings.Paths.Input)
	cmd.Printf("  Index: %s\n", settings.Paths.Index)
	cmd.Println()

	cmd.Println("[Quiz]")
	if settings.Quiz.Seeded {
		cmd.Printf("  Seed: %d\n", settings.Quiz.Seed)
	} else {
		cmd.Println("  Seed: (time)")
	}
	cmd.Println()

	cmd.Println("[Museum API]")
	if settings.Museum.Enabled {
		cmd.Println("  Enabled: yes")
		cmd.Printf("  Rate limit: %s req/s\n", strconv.FormatFloat(settings.Museum.RateLimit, 'f', -1, 64))
		cmd.Printf("  Timeout: %s\n", settings.Museum.Timeout)
	} else {
		cmd.Println("  Enabled: no")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'oddart settings unset <key>' to restore a default.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runSettingsUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Unset(args[0]); err != nil {
		return err
	}
	cmd.Printf("Restored default for %s\n", args[0])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsMode(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Select Multi-Value Mode")
	cmd.Println("-----------------------")
	modes := domain.AllMultiValueModes()
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
	}
	cmd.Print("\nEnter choice: ")
	idx := parseChoice(readLine(reader), len(modes), 0)
	if idx == 0 {
		return errors.New("invalid selection")
	}

	selected := modes[idx-1]
	if err := settingsService.Set("pipeline.multi_value_mode", selected.String()); err != nil {
		return fmt.Errorf("failed to set multi-value mode: %w", err)
	}

	cmd.Printf("Multi-value mode set to: %s\n", selected.Description())
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
