package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/happymeter/internal/app"
	"github.com/abhisek/happymeter/internal/chime"
	"github.com/abhisek/happymeter/internal/config"
	"github.com/abhisek/happymeter/internal/corpus"
	"github.com/abhisek/happymeter/internal/logging"
	"github.com/abhisek/happymeter/internal/quiz"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	qs, err := corpus.Load(cfg.QuestionsFile)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}

	ctrlOpts := []quiz.Option{quiz.WithLogger(logger)}
	if cfg.Seed != 0 {
		ctrlOpts = append(ctrlOpts, quiz.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}
	ctrl := quiz.NewController(qs, corpus.DefaultScale(), ctrlOpts...)

	var chimer chime.Chimer = chime.NewBell(os.Stderr)
	if cfg.NoChime {
		chimer = chime.Nop{}
	}

	logger.Info("happymeter starting",
		zap.String("env", cfg.Env),
		zap.Int("questions", qs.Len()),
		zap.Bool("chime", !cfg.NoChime),
	)

	return app.Run(app.Options{
		Controller: ctrl,
		Chimer:     chimer,
		Logger:     logger,
	})
}
