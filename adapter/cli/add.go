package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskdeck/internal/tasks/application/commands"
	"taskdeck/internal/tasks/domain"
)

var (
	addTitle       string
	addDescription string
	addDueDate     string
	addPriority    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long: `Add a new task to the store.

Any field not supplied as a flag is prompted for interactively.

Examples:
  taskdeck add
  taskdeck add --title "Write report" --priority High --due-date 2024-07-15
  taskdeck add --title "Review" --description "Q3 summary" --due-date 2024-07-20 --priority low`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.AddTaskHandler == nil {
			return fmt.Errorf("application not initialized - task store required")
		}

		reader := bufio.NewReader(cmd.InOrStdin())

		title, err := flagOrPrompt(cmd, reader, "title", addTitle, "Task Title")
		if err != nil {
			return err
		}
		description, err := flagOrPrompt(cmd, reader, "description", addDescription, "Task Description")
		if err != nil {
			return err
		}
		dueDate, err := flagOrPrompt(cmd, reader, "due-date", addDueDate, "Due Date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
		priority, err := flagOrPrompt(cmd, reader, "priority", addPriority, "Task Priority (Low/Medium/High)")
		if err != nil {
			return err
		}

		result, err := app.AddTaskHandler.Handle(cmd.Context(), commands.AddTaskCommand{
			Title:       title,
			Description: description,
			DueDate:     dueDate,
			Priority:    priority,
		})
		if err != nil {
			if isInputError(err) {
				// Recoverable input error: report it and exit normally.
				cmd.PrintErrf("Error: %v\n", err)
				return nil
			}
			return fmt.Errorf("failed to add task: %w", err)
		}

		cmd.Printf("Task successfully added!\n")
		cmd.Printf("  ID: %d\n", result.TaskID)
		cmd.Printf("  Title: %s\n", result.Title)
		cmd.Printf("  Priority: %s\n", result.Priority)
		cmd.Printf("  Due: %s\n", result.DueDate)
		return nil
	},
}

// flagOrPrompt returns the flag value when the flag was given on the
// command line, and prompts on stdin otherwise.
func flagOrPrompt(cmd *cobra.Command, reader *bufio.Reader, flag, value, prompt string) (string, error) {
	if cmd.Flags().Changed(flag) {
		return value, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", flag, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrEmptyTitle) ||
		errors.Is(err, domain.ErrInvalidPriority) ||
		errors.Is(err, domain.ErrInvalidDueDate)
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "the title of the task")
	addCmd.Flags().StringVar(&addDescription, "description", "", "a detailed description of the task")
	addCmd.Flags().StringVar(&addDueDate, "due-date", "", "the due date for the task (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "task priority (Low, Medium, High)")
}
