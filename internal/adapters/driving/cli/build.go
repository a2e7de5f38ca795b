package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

var (
	buildDryRun      bool
	buildDepartments []string
	buildMinRecords  int
	buildMode        string
	buildJSON        bool
	buildWatch       bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the artist index from the object export",
	Long: `Reads the object export, keeps public-domain paintings with a reliable
attribution, and writes each qualifying artist's painting URLs to the index
file.

An artist qualifies with at least --min-records paintings and at least one
painting in a target department. The URL list always covers all of the
artist's paintings.

Examples:
  oddart build --input MetObjects.csv
  oddart build --department "The American Wing" --min-records 5
  oddart build --dry-run --json
  oddart build --watch`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "build without writing the index file")
	buildCmd.Flags().StringSliceVarP(&buildDepartments, "department", "d", nil, "target department (repeatable, overrides pipeline.target_departments)")
	buildCmd.Flags().IntVar(&buildMinRecords, "min-records", 0, "minimum paintings per artist (overrides pipeline.min_records)")
	buildCmd.Flags().StringVar(&buildMode, "mode", "", "multi-value mode: literal or tokens (overrides pipeline.multi_value_mode)")
	buildCmd.Flags().BoolVar(&buildJSON, "json", false, "output the build report as JSON")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild whenever the input file changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if pipelineService == nil {
		return errors.New("pipeline service not configured")
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := buildOnce(ctx, cmd, opts); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}
	return watchAndRebuild(ctx, cmd, opts)
}

// buildOptions applies flag overrides on top of the stored pipeline settings.
func buildOptions(cmd *cobra.Command) (driving.BuildOptions, error) {
	opts := driving.BuildOptions{DryRun: buildDryRun}

	flags := cmd.Flags()
	if !flags.Changed("department") && !flags.Changed("min-records") && !flags.Changed("mode") {
		return opts, nil
	}

	pipeline := domain.DefaultAppSettings().Pipeline
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return opts, fmt.Errorf("loading settings: %w", err)
		}
		pipeline = settings.Pipeline
	}

	if flags.Changed("department") {
		pipeline.TargetDepartments = buildDepartments
	}
	if flags.Changed("min-records") {
		pipeline.MinRecords = buildMinRecords
	}
	if flags.Changed("mode") {
		mode := domain.MultiValueMode(buildMode)
		if !mode.IsValid() {
			return opts, fmt.Errorf("%w: unknown mode %q (want literal or tokens)", domain.ErrInvalidInput, buildMode)
		}
		pipeline.MultiValueMode = mode
	}

	opts.Pipeline = &pipeline
	return opts, nil
}

func buildOnce(ctx context.Context, cmd *cobra.Command, opts driving.BuildOptions) error {
	report, err := pipelineService.Build(ctx, opts)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if buildJSON {
		return outputBuildJSON(cmd, report)
	}
	outputBuildReport(cmd, report)
	return nil
}

func watchAndRebuild(ctx context.Context, cmd *cobra.Command, opts driving.BuildOptions) error {
	if inputWatcher == nil {
		return errors.New("input watcher not configured")
	}

	changes, err := inputWatcher.Watch(ctx)
	if err != nil {
		return err
	}

	cmd.PrintErrln("Watching for changes. Press Ctrl+C to stop.")
	for range changes {
		cmd.PrintErrln("Input changed, rebuilding...")
		if err := buildOnce(ctx, cmd, opts); err != nil {
			// A half-written export is expected mid-download; keep watching.
			cmd.PrintErrf("Error: %v\n", err)
		}
	}
	return nil
}

// buildReportJSON is the --json form of a build report.
type buildReportJSON struct {
	Source                string                 `json:"source"`
	Destination           string                 `json:"destination,omitempty"`
	RecordsRead           int                    `json:"records_read"`
	PublicDomainPaintings int                    `json:"public_domain_paintings"`
	Attributed            int                    `json:"attributed"`
	Departments           []string               `json:"departments"`
	Artists               int                    `json:"artists"`
	QualifyingArtists     int                    `json:"qualifying_artists"`
	Index                 *domain.ArtistURLIndex `json:"index"`
}

func outputBuildJSON(cmd *cobra.Command, report *driving.BuildReport) error {
	data, err := json.MarshalIndent(buildReportJSON{
		Source:                report.Source,
		Destination:           report.Destination,
		RecordsRead:           report.RecordsRead,
		PublicDomainPaintings: report.PublicDomainPaintings,
		Attributed:            report.Attributed,
		Departments:           report.Departments,
		Artists:               len(report.Artists),
		QualifyingArtists:     report.Index.Len(),
		Index:                 report.Index,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputBuildReport(cmd *cobra.Command, report *driving.BuildReport) {
	cmd.Printf("Read %d records from %s\n", report.RecordsRead, report.Source)
	cmd.Printf("  Public domain paintings: %d\n", report.PublicDomainPaintings)
	cmd.Printf("  Reliable attributions:   %d\n", report.Attributed)
	cmd.Printf("  Departments:             %d\n", len(report.Departments))
	cmd.Printf("  Artists:                 %d\n", len(report.Artists))
	cmd.Printf("Qualifying artists: %d\n", report.Index.Len())

	if report.Destination == "" {
		cmd.Println("Dry run: index not written.")
		return
	}
	cmd.Printf("Wrote %s\n", report.Destination)
}
