package api

import (
	"fmt"

	"github.com/plcoach/plcoach/internal/workout"
)

// WorkoutSummary is the condensed workout shape used by the dashboard and
// the workout list.
type WorkoutSummary struct {
	ID     int     `json:"id"`
	Date   *string `json:"date"`
	Label  *string `json:"label"`
	Status string  `json:"status"`
}

// Coach identifies the athlete's coach on the dashboard.
type Coach struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AthleteSummary is the athlete header on list endpoints.
type AthleteSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	UserID  int    `json:"user_id"`
	CoachID *int   `json:"coach_id"`
}

// DashboardResponse is the athlete dashboard payload.
type DashboardResponse struct {
	Athlete        *AthleteSummary  `json:"athlete"`
	Coach          *Coach           `json:"coach"`
	NextWorkout    *WorkoutSummary  `json:"next_workout"`
	RecentWorkouts []WorkoutSummary `json:"recent_workouts"`
}

// Dashboard fetches the athlete dashboard.
func (c *Client) Dashboard() (*DashboardResponse, error) {
	var resp DashboardResponse
	if err := c.get("/athletes/mobile/dashboard", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TrainingBlock is a named grouping of workouts.
type TrainingBlock struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// WorkoutListResponse groups the athlete's workouts by training block.
// Map keys are block ids as decimal strings.
type WorkoutListResponse struct {
	Athlete             *AthleteSummary             `json:"athlete"`
	Blocks              []TrainingBlock             `json:"blocks"`
	PendingMap          map[string][]WorkoutSummary `json:"pending_map"`
	CompletedMap        map[string][]WorkoutSummary `json:"completed_map"`
	UnassignedPending   []WorkoutSummary            `json:"unassigned_pending"`
	UnassignedCompleted []WorkoutSummary            `json:"unassigned_completed"`
}

// WorkoutList fetches the athlete's workout list.
func (c *Client) WorkoutList() (*WorkoutListResponse, error) {
	var resp WorkoutListResponse
	if err := c.get("/workouts/my_list/mobile", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Workout fetches the full workout aggregate. The returned payload is a
// copy-on-fetch snapshot: callers replace it wholesale after every
// mutation and never patch it in place.
func (c *Client) Workout(id int) (*workout.Payload, error) {
	var resp workout.Payload
	if err := c.get(fmt.Sprintf("/workouts/mobile/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// === Session lock ===
//
// The lock is server-held; the client keeps no "I hold the lock" flag and
// re-requests it every time a logging session begins.

// Checkout requests the exclusive soft-lock on a workout for this device.
// Returns a ConflictError when another device or session holds it; the
// caller must surface that and must not proceed to begin the workout.
func (c *Client) Checkout(id int) error {
	err := c.post(fmt.Sprintf("/workouts/mobile/%d/checkout", id), nil, nil)
	if srvErr, ok := err.(*ServerError); ok {
		return &ConflictError{Message: srvErr.Message}
	}
	return err
}

// Checkin releases the lock. Best-effort: callers log failures and never
// let them block or reverse a status transition that already happened.
func (c *Client) Checkin(id int) error {
	return c.post(fmt.Sprintf("/workouts/mobile/%d/checkin", id), nil, nil)
}

// === Lifecycle transitions ===

// Begin marks an assigned workout in_progress. Callers must have checked
// out the session lock first.
func (c *Client) Begin(id int) error {
	return c.post(fmt.Sprintf("/workouts/mobile/%d/begin", id), nil, nil)
}

// Complete marks an in-progress workout completed.
func (c *Client) Complete(id int) error {
	return c.post(fmt.Sprintf("/workouts/mobile/%d/complete", id), nil, nil)
}

// Cancel resets an in-progress workout back to assigned.
func (c *Client) Cancel(id int) error {
	return c.post(fmt.Sprintf("/workouts/mobile/%d/cancel", id), nil, nil)
}

// Resume reopens a completed workout. The server does not require a fresh
// checkout for this transition.
func (c *Client) Resume(id int) error {
	return c.post(fmt.Sprintf("/workouts/mobile/%d/resume", id), nil, nil)
}

// === Per-item set mutations ===
//
// All weights on the wire are kilograms; pound display never leaves the
// terminal.

type liftLogRequest struct {
	ActualWeightKg float64  `json:"actual_weight_kg"`
	ActualRPE      *float64 `json:"actual_rpe"`
}

type accessoryLogRequest struct {
	ActualWeightKg float64  `json:"actual_weight_kg"`
	ActualReps     int      `json:"actual_reps"`
	ActualRIR      *float64 `json:"actual_rir,omitempty"`
}

func (c *Client) itemPath(workoutID, itemID int, action string) string {
	return fmt.Sprintf("/workouts/mobile/%d/items/%d/%s", workoutID, itemID, action)
}

// LogStraight records the next straight set for an item.
func (c *Client) LogStraight(workoutID, itemID int, entry workout.LiftEntry) error {
	body := liftLogRequest{ActualWeightKg: entry.WeightKg, ActualRPE: entry.RPE}
	return c.post(c.itemPath(workoutID, itemID, "log_straight"), body, nil)
}

// LogTop records a TOP item's top set.
func (c *Client) LogTop(workoutID, itemID int, entry workout.LiftEntry) error {
	body := liftLogRequest{ActualWeightKg: entry.WeightKg, ActualRPE: entry.RPE}
	return c.post(c.itemPath(workoutID, itemID, "log_top"), body, nil)
}

// LogBackdown records the next backdown set for a BK item.
func (c *Client) LogBackdown(workoutID, itemID int, entry workout.LiftEntry) error {
	body := liftLogRequest{ActualWeightKg: entry.WeightKg, ActualRPE: entry.RPE}
	return c.post(c.itemPath(workoutID, itemID, "log_bk"), body, nil)
}

// LogAccessory records the next set for an accessory item.
func (c *Client) LogAccessory(workoutID, itemID int, entry workout.AccessoryEntry) error {
	body := accessoryLogRequest{
		ActualWeightKg: entry.WeightKg,
		ActualReps:     entry.Reps,
		ActualRIR:      entry.RIR,
	}
	return c.post(c.itemPath(workoutID, itemID, "log_acc"), body, nil)
}

// ClearTop removes a TOP item's recorded top set.
func (c *Client) ClearTop(workoutID, itemID int) error {
	return c.post(c.itemPath(workoutID, itemID, "clear_top"), nil, nil)
}

// DeleteLastSet removes the highest-index set log for an item. The server
// enforces that only the latest set can be undone.
func (c *Client) DeleteLastSet(workoutID, itemID int) error {
	return c.post(c.itemPath(workoutID, itemID, "delete_last_set"), nil, nil)
}

// SwapAccessory replaces an accessory item's movement.
func (c *Client) SwapAccessory(workoutID, itemID int, movement string) error {
	body := map[string]string{"movement": movement}
	return c.post(c.itemPath(workoutID, itemID, "swap_acc"), body, nil)
}
