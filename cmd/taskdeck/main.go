package main

import (
	"log/slog"
	"os"

	"taskdeck/adapter/cli"
	"taskdeck/internal/tasks/application/commands"
	"taskdeck/internal/tasks/application/queries"
	"taskdeck/internal/tasks/infrastructure/persistence"
	"taskdeck/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		cfg = &config.Config{AppEnv: "development", LogLevel: "info", TasksFile: "tasks.json"}
	}

	// Update logger level based on config
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	cli.SetLogger(logger)

	// Open the task store. A corrupt store is a startup failure; a missing
	// file just starts empty.
	repo, err := persistence.NewFileTaskRepository(cfg.TasksFile)
	if err != nil {
		logger.Error("failed to open task store", "path", cfg.TasksFile, "error", err)
		os.Exit(1)
	}

	cli.SetApp(cli.NewApp(
		commands.NewAddTaskHandler(repo),
		queries.NewListTasksHandler(repo),
	))

	cli.Execute()
}
