package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driving"
)

// mockPipelineService records the options of every build.
type mockPipelineService struct {
	report *driving.BuildReport
	err    error
	calls  []driving.BuildOptions
}

func (m *mockPipelineService) Build(_ context.Context, opts driving.BuildOptions) (*driving.BuildReport, error) {
	m.calls = append(m.calls, opts)
	if m.err != nil {
		return nil, m.err
	}
	report := *m.report
	if opts.DryRun {
		report.Destination = ""
	}
	return &report, nil
}

// mockQuizService serves fixed answers.
type mockQuizService struct {
	set     *domain.AnswerSet
	artists []driving.ArtistSummary
	score   domain.Score
	history []domain.Outcome
	reset   bool
	err     error
}

func (m *mockQuizService) Draw(_ context.Context) (*domain.AnswerSet, error) {
	return m.set, m.err
}

func (m *mockQuizService) NewRound(_ context.Context) (*domain.Round, error) {
	return nil, m.err
}

func (m *mockQuizService) Answer(_ context.Context, _ *domain.Round, _ int) (*domain.Outcome, error) {
	return nil, m.err
}

func (m *mockQuizService) Score(_ context.Context) (domain.Score, error) {
	return m.score, m.err
}

func (m *mockQuizService) History(_ context.Context, limit int) ([]domain.Outcome, error) {
	if limit > 0 && limit < len(m.history) {
		return m.history[:limit], m.err
	}
	return m.history, m.err
}

func (m *mockQuizService) ResetScore(_ context.Context) error {
	m.reset = true
	return m.err
}

func (m *mockQuizService) Index(_ context.Context) (*domain.ArtistURLIndex, error) {
	return nil, m.err
}

func (m *mockQuizService) Artists(_ context.Context) ([]driving.ArtistSummary, error) {
	return m.artists, m.err
}

func testReport() *driving.BuildReport {
	index := domain.NewArtistURLIndex()
	index.Set("Claude Monet", []string{"u/1", "u/2", "u/3"})
	index.Set("Edgar Degas", []string{"u/4", "u/5", "u/6"})
	return &driving.BuildReport{
		Index:                 index,
		RecordsRead:           11,
		PublicDomainPaintings: 9,
		Attributed:            8,
		Departments:           []string{"European Paintings", "The American Wing"},
		Artists:               []string{"Claude Monet", "Edgar Degas", "Unknown Hand"},
		Source:                "MetObjects.csv",
		Destination:           "painting_urls.json",
	}
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args against the given services and
// returns everything written to stdout and stderr.
// Flags are reset before each run so several calls in one test start clean.
func execute(t *testing.T, services Services, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	pipelineService = services.Pipeline
	quizService = services.Quiz
	settingsService = services.Settings
	inputWatcher = services.Watcher
	closer = nil
	t.Cleanup(func() {
		pipelineService = nil
		quizService = nil
		settingsService = nil
		inputWatcher = nil
		wiring = nil
		closer = nil
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
