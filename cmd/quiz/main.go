package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/aliskhannn/kalvium-quiz/internal/config"
	"github.com/aliskhannn/kalvium-quiz/internal/delivery/tui"
	"github.com/aliskhannn/kalvium-quiz/internal/domain/entities"
	"github.com/aliskhannn/kalvium-quiz/internal/logger"
	"github.com/aliskhannn/kalvium-quiz/internal/repository"
	"github.com/aliskhannn/kalvium-quiz/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = run(cfg, lg)
	if err != nil {
		lg.Error("quiz stopped", zap.Error(err))
	}
	_ = lg.Sync()

	if err != nil {
		log.Fatal(err)
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the question set and build the quiz.
	questionRepo, err := repository.NewQuestionRepository(cfg.QuestionsPath)
	if err != nil {
		return fmt.Errorf("load questions from %q: %w", cfg.QuestionsPath, err)
	}

	engine, err := service.NewQuizEngine(questionRepo.GetAll(), lg)
	if err != nil {
		return fmt.Errorf("build quiz: %w", err)
	}

	theme := entities.NewTheme(cfg.Theme.Dark)
	model := tui.NewModel(engine, theme, cfg.UI.Title, lg)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run quiz ui: %w", err)
	}

	if result, ok := engine.Result(); ok {
		lg.Info("final result", zap.String("result", result.String()))
	}

	return nil
}
