package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/api"
	"github.com/plcoach/plcoach/internal/session"
	"github.com/plcoach/plcoach/internal/units"
	"github.com/plcoach/plcoach/internal/workout"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "View and run a single workout",
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout's prescription and logged sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseWorkoutID(args[0])
		if err != nil {
			return err
		}
		client, err := newClient(cmd)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		payload, err := client.Workout(id)
		if err != nil {
			return err
		}

		renderWorkout(payload, displayUnit(cmd))
		return nil
	},
}

var workoutBeginCmd = &cobra.Command{
	Use:   "begin <id>",
	Short: "Check out a workout and mark it in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := loadController(cmd, args[0])
		if err != nil {
			return err
		}

		if err := ctrl.Begin(); err != nil {
			var conflict *api.ConflictError
			if errors.As(err, &conflict) {
				fmt.Printf("Unable to begin workout: %s\n", conflict.Error())
				return nil
			}
			return err
		}

		fmt.Println("✓ Workout started")
		fmt.Printf("Log sets with: plcoach workout log %d\n", ctrl.WorkoutID())
		return nil
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a workout completed and release the session lock",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := loadController(cmd, args[0])
		if err != nil {
			return err
		}
		if err := ctrl.Complete(); err != nil {
			return err
		}
		fmt.Println("✓ Workout completed")
		return nil
	},
}

var workoutCancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel an in-progress workout",
	Long:  `Reset an in-progress workout. Logged sets may be discarded by the server.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := loadController(cmd, args[0])
		if err != nil {
			return err
		}

		confirmed := false
		prompt := &survey.Confirm{
			Message: "Cancel this workout? This resets the session.",
			Default: false,
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Kept in progress")
			return nil
		}

		if err := ctrl.Cancel(); err != nil {
			return err
		}
		fmt.Println("✓ Workout cancelled")
		return nil
	},
}

var workoutResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Reopen a completed workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := loadController(cmd, args[0])
		if err != nil {
			return err
		}
		if err := ctrl.Resume(); err != nil {
			return err
		}
		fmt.Println("✓ Workout reopened")
		fmt.Printf("Log sets with: plcoach workout log %d\n", ctrl.WorkoutID())
		return nil
	},
}

func parseWorkoutID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid workout id %q", raw)
	}
	return id, nil
}

// loadController builds a session controller and performs the initial fetch.
func loadController(cmd *cobra.Command, rawID string) (*session.Controller, error) {
	id, err := parseWorkoutID(rawID)
	if err != nil {
		return nil, err
	}
	client, err := newClient(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	ctrl := session.NewController(client, id, displayUnit(cmd))
	if err := ctrl.Refresh(); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// === Rendering ===

func renderWorkout(p *workout.Payload, unit units.Unit) {
	w := &p.Workout

	label := "Training Session"
	if w.Label != nil && *w.Label != "" {
		label = *w.Label
	}
	date := "No date set"
	if w.Date != nil && *w.Date != "" {
		date = *w.Date
	}

	fmt.Println()
	fmt.Printf("%s  [%s]\n", label, workout.PrettyStatus(w.Status))
	fmt.Printf("%s · %s\n", p.Athlete.Name, date)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")

	for _, core := range w.CoreItems {
		// BK rows render under their parent TOP card.
		if core.Variant == workout.VariantBackdown && core.ParentItemID != nil {
			continue
		}
		renderCoreItem(w, core, unit)
	}

	for _, grp := range w.AccessoryGroups {
		renderAccessoryGroup(grp, unit)
	}

	fmt.Println()
}

func renderCoreItem(w *workout.Workout, core workout.Item, unit units.Unit) {
	fmt.Println()
	fmt.Printf("▸ %s  (%s)\n", workout.DisplayName(core), variantLabel(core))
	fmt.Printf("  %s\n", schemeLine(core))

	if line := lookbackLine(core, unit); line != "" {
		fmt.Printf("  %s\n", line)
	}
	if core.Notes != nil && strings.TrimSpace(*core.Notes) != "" {
		fmt.Printf("  Note: %s\n", *core.Notes)
	}

	if core.Variant == workout.VariantTop {
		renderTopWithBackdowns(w, core, unit)
		return
	}
	renderSetLines(core, unit)
}

func renderTopWithBackdowns(w *workout.Workout, top workout.Item, unit units.Unit) {
	if workout.HasTopActual(top) {
		fmt.Printf("  Top set: %s %s", units.Format(*top.ActualWeightKg, unit), unit)
		if top.ActualRPE != nil {
			fmt.Printf(" @ RPE %.1f", *top.ActualRPE)
		}
		fmt.Println()
	} else {
		fmt.Printf("  Top set: %s\n", targetOrPlaceholder(top, unit))
	}

	for _, bk := range workout.BackdownsOf(w, top) {
		fmt.Printf("  Backdowns — %s\n", schemeLine(bk))
		renderSetLines(bk, unit)
	}
}

func renderSetLines(it workout.Item, unit units.Unit) {
	total := it.PrescribedSets()
	if total <= 0 {
		return
	}
	nextIdx, hasNext := workout.NextLoggableIndex(it)

	for setIdx := 1; setIdx <= total; setIdx++ {
		var existing *workout.SetLog
		for i := range it.SetLogs {
			if it.SetLogs[i].SetIndex == setIdx {
				existing = &it.SetLogs[i]
				break
			}
		}

		switch {
		case existing != nil:
			fmt.Printf("    Set %d: %s\n", setIdx, setLogLine(*existing, unit))
		case hasNext && setIdx == nextIdx:
			fmt.Printf("    Set %d: ▷ next  %s\n", setIdx, targetOrPlaceholder(it, unit))
		default:
			fmt.Printf("    Set %d: locked until previous set is logged\n", setIdx)
		}
	}
}

func renderAccessoryGroup(grp workout.AccessoryGroup, unit units.Unit) {
	fmt.Println()
	if grp.Group != nil && *grp.Group != "" {
		fmt.Printf("▸ Superset %s\n", *grp.Group)
	} else {
		fmt.Println("▸ Accessories")
	}
	for _, it := range grp.Items {
		fmt.Printf("  %s — %s\n", workout.DisplayName(it), schemeLine(it))
		renderSetLines(it, unit)
	}
}

func variantLabel(it workout.Item) string {
	switch it.Variant {
	case workout.VariantTop:
		return "Top + Backdown"
	case workout.VariantBackdown:
		return "Backdown"
	default:
		return "Straight Sets"
	}
}

// schemeLine renders "5 × 5 @ RPE 8.0" / "3 × 8-10 @ 72.5% TM".
func schemeLine(it workout.Item) string {
	line := fmt.Sprintf("%d × %s", it.PrescribedSets(), it.RepsLabel())
	if it.Mode != nil {
		switch *it.Mode {
		case workout.ModeRPE:
			if it.RPETarget != nil {
				line += fmt.Sprintf(" @ RPE %.1f", *it.RPETarget)
			}
		case workout.ModePct:
			if it.Pct != nil {
				line += fmt.Sprintf(" @ %.1f%% TM", *it.Pct*100)
			}
		}
	}
	if it.RIRTarget != nil {
		line += fmt.Sprintf(" • RIR %.1f", *it.RIRTarget)
	}
	return line
}

func targetOrPlaceholder(it workout.Item, unit units.Unit) string {
	if it.TargetLowKg != nil && it.TargetHighKg != nil &&
		(*it.TargetLowKg != 0 || *it.TargetHighKg != 0) {
		return fmt.Sprintf("target %s–%s %s",
			units.Format(*it.TargetLowKg, unit),
			units.Format(*it.TargetHighKg, unit), unit)
	}
	return "not logged"
}

func setLogLine(sl workout.SetLog, unit units.Unit) string {
	parts := []string{}
	if sl.ActualWeightKg != nil {
		parts = append(parts, fmt.Sprintf("%s %s", units.Format(*sl.ActualWeightKg, unit), unit))
	}
	if sl.ActualReps != nil {
		parts = append(parts, fmt.Sprintf("× %d", *sl.ActualReps))
	}
	if sl.ActualRPE != nil {
		parts = append(parts, fmt.Sprintf("@ RPE %.1f", *sl.ActualRPE))
	}
	if sl.ActualRIR != nil {
		parts = append(parts, fmt.Sprintf("(RIR %g)", *sl.ActualRIR))
	}
	if len(parts) == 0 {
		return "logged"
	}
	return strings.Join(parts, " ")
}

func lookbackLine(it workout.Item, unit units.Unit) string {
	best := it.LookbackBest
	if best == nil || best.ActualWeightKg == nil || best.ActualReps == nil {
		return ""
	}
	line := fmt.Sprintf("Last best: %s %s × %d",
		units.Format(*best.ActualWeightKg, unit), unit, *best.ActualReps)
	if best.ActualRPE != nil {
		line += fmt.Sprintf(" @ RPE %.1f", *best.ActualRPE)
	}
	if best.ActualRIR != nil {
		line += fmt.Sprintf(" (RIR %g)", *best.ActualRIR)
	}
	if best.Date != nil && *best.Date != "" {
		date := *best.Date
		if len(date) > 10 {
			date = date[:10]
		}
		line += " · " + date
	}
	return line
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutShowCmd)
	workoutCmd.AddCommand(workoutBeginCmd)
	workoutCmd.AddCommand(workoutCompleteCmd)
	workoutCmd.AddCommand(workoutCancelCmd)
	workoutCmd.AddCommand(workoutResumeCmd)
}
