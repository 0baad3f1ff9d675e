package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/api"
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List your assigned workouts",
	Long: `List your workouts grouped by training block.

Examples:
  plcoach workouts            # Pending workouts per block
  plcoach workouts --all      # Include completed sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		showAll, _ := cmd.Flags().GetBool("all")

		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		list, err := client.WorkoutList()
		if err != nil {
			return err
		}

		fmt.Println()
		if list.Athlete != nil {
			fmt.Printf("Workouts — %s\n", list.Athlete.Name)
		} else {
			fmt.Println("Workouts")
		}
		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		empty := true
		for _, block := range list.Blocks {
			key := strconv.Itoa(block.ID)
			pending := list.PendingMap[key]
			completed := list.CompletedMap[key]
			if len(pending) == 0 && (!showAll || len(completed) == 0) {
				continue
			}
			empty = false

			fmt.Println()
			fmt.Printf("▸ %s\n", block.Name)
			printWorkoutGroup("pending", pending)
			if showAll {
				printWorkoutGroup("completed", completed)
			}
		}

		if len(list.UnassignedPending) > 0 || (showAll && len(list.UnassignedCompleted) > 0) {
			empty = false
			fmt.Println()
			fmt.Println("▸ No block")
			printWorkoutGroup("pending", list.UnassignedPending)
			if showAll {
				printWorkoutGroup("completed", list.UnassignedCompleted)
			}
		}

		if empty {
			fmt.Println()
			fmt.Println("   No workouts found")
		}

		fmt.Println()
		fmt.Println("Open one with: plcoach workout show <id>")
		return nil
	},
}

func printWorkoutGroup(title string, ws []api.WorkoutSummary) {
	if len(ws) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, w := range ws {
		fmt.Print("  ")
		printWorkoutLine(w)
	}
}

func init() {
	rootCmd.AddCommand(workoutsCmd)
	workoutsCmd.Flags().Bool("all", false, "Include completed workouts")
}
