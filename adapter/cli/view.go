package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"taskdeck/internal/tasks/application/queries"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View all tasks",
	Long:  `View all stored tasks as a table, in the order they were added.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return fmt.Errorf("application not initialized - task store required")
		}

		tasks, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			cmd.Println("No current tasks.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tDESCRIPTION\tPRIORITY\tDUE DATE")
		for _, t := range tasks {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Description, t.Priority, t.DueDate)
		}
		return w.Flush()
	},
}
