package cli

import (
	"taskdeck/internal/tasks/application/commands"
	"taskdeck/internal/tasks/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	AddTaskHandler *commands.AddTaskHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
}

// NewApp creates a new CLI App with the given handlers.
func NewApp(
	addTaskHandler *commands.AddTaskHandler,
	listTasksHandler *queries.ListTasksHandler,
) *App {
	return &App{
		AddTaskHandler:   addTaskHandler,
		ListTasksHandler: listTasksHandler,
	}
}

var app *App

// SetApp sets the application instance used by the commands.
func SetApp(a *App) {
	app = a
}

// GetApp returns the current application instance.
func GetApp() *App {
	return app
}
