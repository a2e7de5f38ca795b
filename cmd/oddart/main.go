// Command oddart curates public-domain paintings from the Met open-access
// export and plays the Odd Art Out quiz on the result.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/custodia-labs/oddart/internal/adapters/driven/config/file"
	"github.com/custodia-labs/oddart/internal/adapters/driven/museum"
	"github.com/custodia-labs/oddart/internal/adapters/driven/source/csvfile"
	"github.com/custodia-labs/oddart/internal/adapters/driven/storage/indexfile"
	"github.com/custodia-labs/oddart/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/oddart/internal/adapters/driven/watch"
	"github.com/custodia-labs/oddart/internal/adapters/driving/cli"
	"github.com/custodia-labs/oddart/internal/core/services"
	"github.com/custodia-labs/oddart/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetWiring(wire)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func wire(opts cli.GlobalOptions) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	input := settings.Paths.Input
	if opts.Input != "" {
		input = opts.Input
	}
	indexPath := settings.Paths.Index
	if opts.Index != "" {
		indexPath = opts.Index
	}
	logger.Debug("Config: %s", configStore.Path())
	logger.Debug("Input: %s, index: %s", input, indexPath)

	indexStore := indexfile.NewStore(indexPath)
	pipelineService := services.NewPipelineService(csvfile.NewSource(input), indexStore, settings.Pipeline)

	var sampler *services.AnswerSampler
	if settings.Quiz.Seeded {
		sampler = services.NewSeededSampler(settings.Quiz.Seed)
	} else {
		now := uint64(time.Now().UnixNano())
		sampler = services.NewAnswerSampler(rand.NewPCG(now, now>>1))
	}
	quizService := services.NewQuizService(indexStore, sampler)

	if settings.Museum.Enabled {
		quizService.SetArtworkFetcher(museum.NewClient(museum.Config{
			RateLimit: settings.Museum.RateLimit,
			Timeout:   settings.Museum.Timeout,
		}))
	}

	// Score history is optional: a broken database only costs persistence.
	var closeFn func() error
	store, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		logger.Warn("score history disabled: %v", err)
	} else {
		quizService.SetScoreStore(store.ScoreStore())
		closeFn = store.Close
	}

	return &cli.Services{
		Pipeline: pipelineService,
		Quiz:     quizService,
		Settings: settingsService,
		Watcher:  watch.New(input, 0),
		Close:    closeFn,
	}, nil
}
