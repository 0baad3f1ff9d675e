package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/api"
	"github.com/plcoach/plcoach/internal/workout"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Coach-side views of your roster",
	Long:  `View your athlete roster and roster-wide training activity. Requires a coach account.`,
}

var coachDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show roster-wide training counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		dash, err := client.CoachDashboard()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("Coach Dashboard")
		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		fmt.Printf("   Total athletes      %d\n", dash.Total)
		fmt.Printf("   Today assigned      %d\n", dash.TodayAssigned)
		fmt.Printf("   Today logged        %d\n", dash.TodayLogged)
		fmt.Printf("   Missed yesterday    %d\n", dash.MissedYesterday)
		fmt.Printf("   Pending approvals   %d\n", dash.PendingApprovals)
		fmt.Printf("   Video reviews       %d\n", dash.PendingReviews)

		fmt.Println()
		fmt.Println("No log in 3+ days")
		if len(dash.NoLog3Plus) == 0 {
			fmt.Println("   — none")
		}
		for _, a := range dash.NoLog3Plus {
			fmt.Printf("   • %s\n", a.Name)
		}

		fmt.Println()
		fmt.Println("Drill into a counter with: plcoach coach kpi <today_assigned|today_logged|missed_yesterday>")
		return nil
	},
}

var coachRosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List your athletes",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		roster, err := client.CoachRoster()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Printf("Coach Roster — %d %s\n", len(roster.Athletes), plural(len(roster.Athletes), "athlete"))
		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		if len(roster.Athletes) == 0 {
			fmt.Println("   No athletes yet. Add athletes from the web coach dashboard.")
			return nil
		}

		// Self-coached entry renders last, like the roster screen.
		var self []string
		for _, a := range roster.Athletes {
			line := rosterLine(a)
			if a.IsSelf {
				self = append(self, line)
				continue
			}
			fmt.Println(line)
		}
		for _, line := range self {
			fmt.Println(line)
		}
		return nil
	},
}

var coachKPICmd = &cobra.Command{
	Use:   "kpi <kind>",
	Short: "Expand one dashboard counter into its workouts",
	Long: `Expand one coach dashboard counter into its per-workout rows.

Kinds: today_assigned, today_logged, missed_yesterday`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		kpi, err := client.CoachKPI(args[0])
		if err != nil {
			return err
		}

		title := kpi.Title
		if title == "" {
			title = kpiTitle(args[0])
		}

		fmt.Println()
		fmt.Println(title)
		fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

		if len(kpi.Rows) == 0 {
			fmt.Println("   No workouts in this KPI.")
			return nil
		}
		for _, row := range kpi.Rows {
			date := "No date"
			if row.Date != nil && *row.Date != "" {
				date = *row.Date
			}
			label := "Workout"
			if row.Label != nil && *row.Label != "" {
				label = *row.Label
			}
			status := workout.StatusAssigned
			if row.Status != nil && *row.Status != "" {
				status = workout.Status(*row.Status)
			}
			fmt.Printf("   #%-5d %-20s %-28s %-12s %s\n",
				row.WorkoutID, row.AthleteName, label, date, workout.PrettyStatus(status))
		}
		return nil
	},
}

var linkCoachCmd = &cobra.Command{
	Use:   "link-coach",
	Short: "Show your coach link",
	Long:  `Show whether your account is linked to a coach. Linking is invite-driven from the coach's side.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		link, err := client.LinkCoachStatus()
		if err != nil {
			return err
		}

		if link.Coach != nil {
			fmt.Printf("✓ Linked to %s\n", link.Coach.Name)
			fmt.Println()
			fmt.Println("  plcoach workouts    — Your workout list")
			fmt.Println("  plcoach dashboard   — Your dashboard")
			return nil
		}

		fmt.Println("Not linked to a coach yet")
		fmt.Println("Don't see an invite? Contact your coach directly.")
		return nil
	},
}

func rosterLine(a api.RosterEntry) string {
	name := a.Name
	if a.IsSelf {
		name += " (you)"
	}
	sex := "—"
	if a.Sex != nil && *a.Sex != "" {
		sex = *a.Sex
	}
	bw := "—"
	if a.Bodyweight != nil {
		bw = fmt.Sprintf("%.1f kg", *a.Bodyweight)
	}
	return fmt.Sprintf("   %-28s %-4s BW %-10s DOTS %.1f", name, sex, bw, a.Dots)
}

func kpiTitle(kind string) string {
	switch kind {
	case "today_assigned":
		return "Today Assigned"
	case "today_logged":
		return "Today Logged"
	case "missed_yesterday":
		return "Missed Yesterday"
	}
	return "KPI Detail"
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func init() {
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(linkCoachCmd)
	coachCmd.AddCommand(coachDashboardCmd)
	coachCmd.AddCommand(coachRosterCmd)
	coachCmd.AddCommand(coachKPICmd)
}
