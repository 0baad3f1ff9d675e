package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/plcoach/plcoach/internal/config"
	"github.com/plcoach/plcoach/internal/session"
	"github.com/plcoach/plcoach/internal/workout"
)

var workoutLogCmd = &cobra.Command{
	Use:   "log <id>",
	Short: "Interactively log sets for an in-progress workout",
	Long: `Run an interactive logging session: pick an exercise, enter the
weight and reps you hit, and rest between sets with the built-in timer.

The workout must be in progress (plcoach workout begin <id>).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := loadController(cmd, args[0])
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runLoggingSession(ctrl, cfg)
	},
}

// menuAction is one selectable entry in the logging loop.
type menuAction struct {
	label string
	run   func() (done bool, err error)
}

func runLoggingSession(ctrl *session.Controller, cfg *config.Config) error {
	for {
		snap := ctrl.Snapshot()
		if snap == nil {
			return fmt.Errorf("no workout loaded")
		}

		if snap.Workout.Status != workout.StatusInProgress {
			fmt.Printf("Workout is %s — start it first:\n", workout.PrettyStatus(snap.Workout.Status))
			fmt.Printf("  plcoach workout begin %d\n", ctrl.WorkoutID())
			return nil
		}

		actions := buildActions(ctrl, cfg)

		labels := make([]string, len(actions))
		for i, a := range actions {
			labels[i] = a.label
		}

		var choice string
		prompt := &survey.Select{
			Message:  "What next?",
			Options:  labels,
			PageSize: 14,
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			// Ctrl-C out of the menu ends the session cleanly.
			return nil
		}

		for _, a := range actions {
			if a.label == choice {
				done, err := a.run()
				if err != nil {
					// Errors in the loop are dismissible, never fatal:
					// show them and re-render the menu.
					fmt.Printf("✗ %v\n", err)
				}
				if done {
					return nil
				}
				break
			}
		}
	}
}

func buildActions(ctrl *session.Controller, cfg *config.Config) []menuAction {
	snap := ctrl.Snapshot()
	w := &snap.Workout
	unit := ctrl.Unit()

	var actions []menuAction

	addItem := func(it workout.Item, accessory bool) {
		if !workout.CanSubmit(it, w, snap.Permissions) {
			return
		}

		name := workout.DisplayName(it)
		switch {
		case it.Variant == workout.VariantTop:
			if !workout.HasTopActual(it) {
				actions = append(actions, logAction(ctrl, cfg, it, fmt.Sprintf("Log top set — %s", name), false))
			} else {
				item := it
				actions = append(actions, menuAction{
					label: fmt.Sprintf("Clear top set — %s", name),
					run: func() (bool, error) {
						return false, ctrl.ClearTop(item.ID)
					},
				})
			}
		default:
			if idx, ok := workout.NextLoggableIndex(it); ok {
				kind := "set"
				if it.Variant == workout.VariantBackdown {
					kind = "backdown"
				}
				label := fmt.Sprintf("Log %s %d of %d — %s", kind, idx, it.PrescribedSets(), name)
				actions = append(actions, logAction(ctrl, cfg, it, label, accessory))
			}
		}

		if workout.CanUndo(it) {
			item := it
			actions = append(actions, menuAction{
				label: fmt.Sprintf("Undo last set — %s", name),
				run: func() (bool, error) {
					return false, ctrl.UndoLast(item.ID)
				},
			})
		}

		if accessory {
			item := it
			actions = append(actions, menuAction{
				label: fmt.Sprintf("Swap movement — %s", name),
				run: func() (bool, error) {
					movement := ""
					if err := survey.AskOne(&survey.Input{Message: "New movement:"}, &movement); err != nil {
						return false, nil
					}
					if movement == "" {
						return false, nil
					}
					return false, ctrl.SwapAccessory(item.ID, movement)
				},
			})
		}
	}

	for _, core := range w.CoreItems {
		addItem(core, false)
	}
	for _, grp := range w.AccessoryGroups {
		for _, it := range grp.Items {
			addItem(it, true)
		}
	}

	actions = append(actions,
		menuAction{label: "Show workout", run: func() (bool, error) {
			renderWorkout(ctrl.Snapshot(), unit)
			return false, nil
		}},
		menuAction{label: "Refresh from server", run: func() (bool, error) {
			return false, ctrl.Refresh()
		}},
		menuAction{label: "Rest timer", run: func() (bool, error) {
			offerRestTimer(ctrl, cfg)
			return false, nil
		}},
		menuAction{label: "Complete workout", run: func() (bool, error) {
			if err := ctrl.Complete(); err != nil {
				return false, err
			}
			fmt.Println("✓ Workout completed")
			return true, nil
		}},
		menuAction{label: "Cancel workout", run: func() (bool, error) {
			confirmed := false
			prompt := &survey.Confirm{
				Message: "Cancel this workout? This resets the session.",
				Default: false,
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
				return false, nil
			}
			if err := ctrl.Cancel(); err != nil {
				return false, err
			}
			fmt.Println("✓ Workout cancelled")
			return true, nil
		}},
		menuAction{label: "Quit (stays in progress)", run: func() (bool, error) {
			return true, nil
		}},
	)

	return actions
}

// logAction prompts for the item's fields, submits, and offers the rest
// timer on success.
func logAction(ctrl *session.Controller, cfg *config.Config, it workout.Item, label string, accessory bool) menuAction {
	return menuAction{
		label: label,
		run: func() (bool, error) {
			unit := ctrl.Unit()
			form := ctrl.Form(it.ID)

			qs := []*survey.Question{
				{
					Name:   "weight",
					Prompt: &survey.Input{Message: fmt.Sprintf("Weight (%s):", unit)},
				},
			}
			if accessory {
				qs = append(qs,
					&survey.Question{Name: "reps", Prompt: &survey.Input{Message: "Reps:"}},
					&survey.Question{Name: "rir", Prompt: &survey.Input{Message: "RIR (optional):"}},
				)
			} else {
				rpeMsg := "RPE (optional):"
				if it.Variant == workout.VariantTop {
					rpeMsg = "RPE:"
				}
				qs = append(qs, &survey.Question{Name: "rpe", Prompt: &survey.Input{Message: rpeMsg}})
			}

			answers := struct {
				Weight string
				Reps   string
				RPE    string
				RIR    string
			}{}
			if err := survey.Ask(qs, &answers); err != nil {
				return false, nil
			}
			form.Weight = answers.Weight
			form.Reps = answers.Reps
			form.RPE = answers.RPE
			form.RIR = answers.RIR

			if err := ctrl.LogSet(it.ID); err != nil {
				var vErr *workout.ValidationError
				if errors.As(err, &vErr) {
					return false, fmt.Errorf("%s", vErr.Message)
				}
				return false, err
			}

			fmt.Println("✓ Set logged")
			offerRestTimer(ctrl, cfg)
			return false, nil
		},
	}
}

// offerRestTimer shows the duration picker and runs the countdown in the
// foreground. The timer is anchored to a wall-clock deadline, so a
// suspended terminal still comes back with the right remaining time.
func offerRestTimer(ctrl *session.Controller, cfg *config.Config) {
	options := cfg.RestOptions()
	labels := make([]string, 0, len(options)+1)
	defaultLabel := ""
	for _, secs := range options {
		label := session.FormatClock(secs)
		labels = append(labels, label)
		if secs == cfg.Rest.DefaultSeconds {
			defaultLabel = label
		}
	}
	labels = append(labels, "skip")

	choice := ""
	prompt := &survey.Select{
		Message: "Rest timer:",
		Options: labels,
	}
	if defaultLabel != "" {
		prompt.Default = defaultLabel
	}
	if err := survey.AskOne(prompt, &choice); err != nil || choice == "skip" {
		return
	}

	var seconds int
	for i, label := range labels {
		if label == choice && i < len(options) {
			seconds = options[i]
			break
		}
	}
	if seconds <= 0 {
		return
	}

	ctrl.Timer.Start(seconds)
	runCountdown(ctrl.Timer)
}

func runCountdown(t *session.RestTimer) {
	for {
		remaining := t.Tick()
		if remaining <= 0 {
			fmt.Printf("\r  Rest done          \n")
			return
		}
		fmt.Printf("\r  Rest %s  ", session.FormatClock(remaining))
		time.Sleep(time.Second)
	}
}

func init() {
	workoutCmd.AddCommand(workoutLogCmd)
}
