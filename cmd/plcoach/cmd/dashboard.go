package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/api"
	"github.com/plcoach/plcoach/internal/workout"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your athlete dashboard",
	Long:  `Display your coach, next workout, and recent sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		dash, err := client.Dashboard()
		if err != nil {
			return err
		}

		fmt.Println()
		if dash.Athlete != nil {
			fmt.Printf("🏋  %s\n", dash.Athlete.Name)
		} else {
			fmt.Println("🏋  Dashboard")
		}
		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		if dash.Coach != nil {
			fmt.Printf("   Coach: %s\n", dash.Coach.Name)
		} else {
			fmt.Println("   Coach: self-coached")
		}

		fmt.Println()
		fmt.Println("Next workout")
		if dash.NextWorkout != nil {
			printWorkoutLine(*dash.NextWorkout)
		} else {
			fmt.Println("   Nothing assigned — check with your coach")
		}

		if len(dash.RecentWorkouts) > 0 {
			fmt.Println()
			fmt.Println("Recent")
			for _, w := range dash.RecentWorkouts {
				printWorkoutLine(w)
			}
		}

		fmt.Println()
		return nil
	},
}

func printWorkoutLine(w api.WorkoutSummary) {
	label := "Training Session"
	if w.Label != nil && *w.Label != "" {
		label = *w.Label
	}
	date := "no date"
	if w.Date != nil && *w.Date != "" {
		date = *w.Date
	}
	fmt.Printf("   #%-5d %-28s %-12s %s\n", w.ID, label, date, workout.PrettyStatus(workout.Status(w.Status)))
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
