// Package session coordinates one device's logging session over a workout.
// The controller owns the fetched snapshot, the per-item input forms, the
// in-flight mutation guard, and the rest timer, and funnels every mutation
// through gate → validate → POST → full refetch.
package session

import (
	"fmt"
	"os"
	"sync"

	"github.com/plcoach/plcoach/internal/api"
	"github.com/plcoach/plcoach/internal/units"
	"github.com/plcoach/plcoach/internal/workout"
)

// Controller drives a single workout's logging session. The server is the
// authority for all persisted state: the controller never patches its
// snapshot, it replaces it wholesale after every successful mutation,
// because the server recomputes derived fields (next index, lookback
// bests) the client cannot safely infer.
type Controller struct {
	client    *api.Client
	workoutID int

	mu       sync.Mutex
	unit     units.Unit
	snapshot *workout.Payload
	forms    map[int]*workout.SetInput
	inFlight map[int]bool

	// Timer is the rest countdown between sets. It is the only component
	// with an explicit cancel; in-flight mutations are never aborted.
	Timer *RestTimer
}

// NewController creates a controller for one workout.
func NewController(client *api.Client, workoutID int, unit units.Unit) *Controller {
	return &Controller{
		client:    client,
		workoutID: workoutID,
		unit:      unit,
		forms:     make(map[int]*workout.SetInput),
		inFlight:  make(map[int]bool),
		Timer:     NewRestTimer(),
	}
}

// WorkoutID returns the workout this controller is bound to.
func (c *Controller) WorkoutID() int {
	return c.workoutID
}

// Unit returns the active display unit.
func (c *Controller) Unit() units.Unit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unit
}

// SetUnit switches the display unit. Presentation only; nothing stored or
// transmitted changes.
func (c *Controller) SetUnit(u units.Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if u.Valid() {
		c.unit = u
	}
}

// Refresh fetches the workout aggregate and replaces the local snapshot.
func (c *Controller) Refresh() error {
	payload, err := c.client.Workout(c.workoutID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.snapshot = payload
	c.mu.Unlock()
	return nil
}

// Snapshot returns the current workout payload, nil before the first
// Refresh. Callers treat it as immutable.
func (c *Controller) Snapshot() *workout.Payload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Form returns the input form for an item, creating it on first use. Form
// state is an explicit per-item map owned here, not ambient globals.
func (c *Controller) Form(itemID int) *workout.SetInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.forms[itemID]
	if !ok {
		f = &workout.SetInput{}
		c.forms[itemID] = f
	}
	return f
}

// ClearForm discards an item's input after a successful submission.
func (c *Controller) ClearForm(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.forms, itemID)
}

// acquireItem marks an item as having a mutation in flight. While one is
// pending, a second mutation for the same item is refused; mutations for
// different items may proceed and may complete in any order.
func (c *Controller) acquireItem(itemID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight[itemID] {
		return fmt.Errorf("a save for this exercise is already in flight")
	}
	c.inFlight[itemID] = true
	return nil
}

func (c *Controller) releaseItem(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, itemID)
}

// locate finds an item in the current snapshot.
func (c *Controller) locate(itemID int) (*workout.Item, bool, error) {
	snap := c.Snapshot()
	if snap == nil {
		return nil, false, fmt.Errorf("no workout loaded")
	}
	it, accessory := workout.Locate(&snap.Workout, itemID)
	if it == nil {
		return nil, false, fmt.Errorf("no item %d in this workout", itemID)
	}
	return it, accessory, nil
}

// LogSet validates the item's form and submits the next set. The variant
// decides the endpoint: top sets and backdowns have their own mutations,
// accessories require reps, everything else logs as a straight set.
func (c *Controller) LogSet(itemID int) error {
	it, accessory, err := c.locate(itemID)
	if err != nil {
		return err
	}
	snap := c.Snapshot()
	if !workout.CanSubmit(*it, &snap.Workout, snap.Permissions) {
		return fmt.Errorf("logging is not available for this exercise right now")
	}

	in := *c.Form(itemID)

	// Validation happens before the in-flight guard: a rejected input
	// issues no HTTP call and leaves the form for correction.
	var submit func() error
	switch {
	case accessory:
		entry, err := workout.ParseAccessoryInput(in, c.Unit())
		if err != nil {
			return err
		}
		submit = func() error { return c.client.LogAccessory(c.workoutID, itemID, *entry) }
	case it.Variant == workout.VariantTop:
		entry, err := workout.ParseLiftInput(in, c.Unit(), true)
		if err != nil {
			return err
		}
		submit = func() error { return c.client.LogTop(c.workoutID, itemID, *entry) }
	case it.Variant == workout.VariantBackdown:
		entry, err := workout.ParseLiftInput(in, c.Unit(), false)
		if err != nil {
			return err
		}
		submit = func() error { return c.client.LogBackdown(c.workoutID, itemID, *entry) }
	default:
		entry, err := workout.ParseLiftInput(in, c.Unit(), false)
		if err != nil {
			return err
		}
		submit = func() error { return c.client.LogStraight(c.workoutID, itemID, *entry) }
	}

	if err := c.acquireItem(itemID); err != nil {
		return err
	}
	defer c.releaseItem(itemID)

	if err := submit(); err != nil {
		return err
	}

	c.ClearForm(itemID)
	return c.Refresh()
}

// UndoLast removes the highest-index set log for an item, then refetches.
func (c *Controller) UndoLast(itemID int) error {
	it, _, err := c.locate(itemID)
	if err != nil {
		return err
	}
	if !workout.CanUndo(*it) {
		return fmt.Errorf("nothing logged yet for this exercise")
	}

	if err := c.acquireItem(itemID); err != nil {
		return err
	}
	defer c.releaseItem(itemID)

	if err := c.client.DeleteLastSet(c.workoutID, itemID); err != nil {
		return err
	}
	return c.Refresh()
}

// ClearTop removes a TOP item's recorded top set, then refetches.
func (c *Controller) ClearTop(itemID int) error {
	it, _, err := c.locate(itemID)
	if err != nil {
		return err
	}
	if it.Variant != workout.VariantTop {
		return fmt.Errorf("only top sets can be cleared")
	}

	if err := c.acquireItem(itemID); err != nil {
		return err
	}
	defer c.releaseItem(itemID)

	if err := c.client.ClearTop(c.workoutID, itemID); err != nil {
		return err
	}
	return c.Refresh()
}

// SwapAccessory replaces an accessory item's movement, then refetches.
func (c *Controller) SwapAccessory(itemID int, movement string) error {
	_, accessory, err := c.locate(itemID)
	if err != nil {
		return err
	}
	if !accessory {
		return fmt.Errorf("only accessory exercises can be swapped")
	}

	if err := c.acquireItem(itemID); err != nil {
		return err
	}
	defer c.releaseItem(itemID)

	if err := c.client.SwapAccessory(c.workoutID, itemID, movement); err != nil {
		return err
	}
	return c.Refresh()
}

// Begin checks out the session lock and marks the workout in_progress.
// A checkout conflict is returned as-is so the caller can show it as an
// actionable message; the begin endpoint is never called in that case and
// there is no silent retry.
func (c *Controller) Begin() error {
	snap := c.Snapshot()
	if snap == nil {
		return fmt.Errorf("no workout loaded")
	}
	if snap.Permissions == nil || !snap.Permissions.CanLog {
		return fmt.Errorf("you do not have permission to log this workout")
	}
	// Completed workouts reopen through Resume, not through a fresh
	// checkout+begin.
	if snap.Workout.Status == workout.StatusCompleted {
		return fmt.Errorf("workout is completed — resume it with 'plcoach workout resume %d'", c.workoutID)
	}
	if !workout.CanTransition(snap.Workout.Status, workout.StatusInProgress) {
		return fmt.Errorf("workout cannot be started from status %q", snap.Workout.Status)
	}

	if err := c.client.Checkout(c.workoutID); err != nil {
		return err
	}
	if err := c.client.Begin(c.workoutID); err != nil {
		return err
	}
	return c.Refresh()
}

// Complete marks the workout completed, refetches, then releases the lock
// best-effort. A checkin failure never reverses the completed transition;
// it is logged and swallowed.
func (c *Controller) Complete() error {
	if err := c.transition(workout.StatusCompleted, c.client.Complete); err != nil {
		return err
	}
	c.checkinBestEffort("complete")
	return nil
}

// Cancel resets the workout, refetches, then releases the lock
// best-effort. Callers are expected to have confirmed with the user first.
func (c *Controller) Cancel() error {
	if err := c.transition(workout.StatusCancelled, c.client.Cancel); err != nil {
		return err
	}
	c.checkinBestEffort("cancel")
	return nil
}

// Resume reopens a completed workout. The server does not model lock
// re-acquisition for this transition, so none is attempted here.
func (c *Controller) Resume() error {
	snap := c.Snapshot()
	if snap != nil && snap.Workout.Status != workout.StatusCompleted {
		return fmt.Errorf("only completed workouts can be resumed")
	}
	return c.transition(workout.StatusInProgress, c.client.Resume)
}

func (c *Controller) transition(to workout.Status, call func(int) error) error {
	snap := c.Snapshot()
	if snap == nil {
		return fmt.Errorf("no workout loaded")
	}
	if snap.Permissions == nil || !snap.Permissions.CanLog {
		return fmt.Errorf("you do not have permission to log this workout")
	}
	if !workout.CanTransition(snap.Workout.Status, to) {
		return fmt.Errorf("workout cannot move from %q to %q", snap.Workout.Status, to)
	}

	if err := call(c.workoutID); err != nil {
		// No optimistic transition: local state is untouched on failure.
		return err
	}
	return c.Refresh()
}

func (c *Controller) checkinBestEffort(after string) {
	if err := c.client.Checkin(c.workoutID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: checkin after %s failed: %v\n", after, err)
	}
}
