package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

var (
	artistsJSON        bool
	artistsDepartments bool
)

var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List artists in the index",
	Long: `Lists the artists in the index with their painting counts.

With --departments, lists the departments of the curated collection instead.
This reads the object export without writing the index.`,
	Args: cobra.NoArgs,
	RunE: runArtists,
}

func init() {
	artistsCmd.Flags().BoolVar(&artistsJSON, "json", false, "output as JSON")
	artistsCmd.Flags().BoolVar(&artistsDepartments, "departments", false, "list departments of the curated collection")
	rootCmd.AddCommand(artistsCmd)
}

func runArtists(cmd *cobra.Command, _ []string) error {
	if artistsDepartments {
		return runDepartments(cmd)
	}

	if quizService == nil {
		return errors.New("quiz service not configured")
	}

	artists, err := quizService.Artists(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing artists: %w", err)
	}

	if artistsJSON {
		return outputJSON(cmd, artists)
	}

	if len(artists) == 0 {
		cmd.Println("No artists in the index.")
		return nil
	}

	width := 0
	for _, a := range artists {
		width = max(width, len(a.Name))
	}
	for _, a := range artists {
		cmd.Printf("%-*s  %d\n", width, a.Name, a.Paintings)
	}
	cmd.Printf("\n%d artists\n", len(artists))
	return nil
}

func runDepartments(cmd *cobra.Command) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	report, err := pipelineService.Build(cmd.Context(), driving.BuildOptions{DryRun: true})
	if err != nil {
		return fmt.Errorf("reading departments: %w", err)
	}

	if artistsJSON {
		return outputJSON(cmd, report.Departments)
	}
	cmd.Println(strings.Join(report.Departments, "\n"))
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
