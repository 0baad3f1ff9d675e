// Package workout holds the client-side view of a training session: the
// immutable snapshot fetched from the server, the set-logging reconciler
// that derives which set is next, and the lifecycle transition table.
//
// The server owns all persisted state. A snapshot is replaced wholesale on
// every refetch and never patched in place.
package workout

import (
	"strconv"
	"strings"
)

// Item variants. A TOP item is a heavy top set whose lighter backdown (BK)
// items point back at it via ParentItemID. VR is a freeform movement logged
// like straight sets. ACC marks accessory work.
const (
	VariantStraight  = "STRAIGHT"
	VariantTop       = "TOP"
	VariantBackdown  = "BK"
	VariantVariable  = "VR"
	VariantAccessory = "ACC"
)

// Intensity modes for an item's prescription.
const (
	ModeRPE = "RPE"
	ModePct = "PCT"
)

// SetLog is one completed set recorded under an item. SetIndex is 1-based
// and unique within the item; indices are assigned by the server.
type SetLog struct {
	ID             int      `json:"id"`
	SetIndex       int      `json:"set_index"`
	ActualWeightKg *float64 `json:"actual_weight_kg"`
	ActualReps     *int     `json:"actual_reps"`
	ActualRPE      *float64 `json:"actual_rpe"`
	ActualRIR      *float64 `json:"actual_rir"`
}

// LookbackBest is the server-computed best recent performance for an item's
// movement. Purely informational; the client never derives it.
type LookbackBest struct {
	WorkoutID      *int     `json:"workout_id"`
	Date           *string  `json:"date"`
	Label          *string  `json:"label"`
	ActualWeightKg *float64 `json:"actual_weight_kg"`
	ActualReps     *int     `json:"actual_reps"`
	ActualRPE      *float64 `json:"actual_rpe"`
	ActualRIR      *float64 `json:"actual_rir"`
}

// Item is one exercise prescription within a workout.
type Item struct {
	ID             int           `json:"id"`
	Lift           string        `json:"lift"`
	Variant        string        `json:"variant"`
	Movement       *string       `json:"movement"`
	Sets           *int          `json:"sets"`
	Reps           *int          `json:"reps"`
	RepsText       *string       `json:"reps_text"`
	Mode           *string       `json:"mode"`
	RPETarget      *float64      `json:"rpe_target"`
	Pct            *float64      `json:"pct"`
	RIRTarget      *float64      `json:"rir_target"`
	TargetLowKg    *float64      `json:"target_low_kg"`
	TargetHighKg   *float64      `json:"target_high_kg"`
	ActualWeightKg *float64      `json:"actual_weight_kg"`
	ActualRPE      *float64      `json:"actual_rpe"`
	Notes          *string       `json:"notes"`
	SupersetGroup  *string       `json:"superset_group"`
	SupersetPos    *int          `json:"superset_pos"`
	ParentItemID   *int          `json:"parent_item_id"`
	SetLogs        []SetLog      `json:"set_logs"`
	LookbackBest   *LookbackBest `json:"lookback_best"`
}

// PrescribedSets returns the item's set count, zero when unset.
func (it Item) PrescribedSets() int {
	if it.Sets == nil {
		return 0
	}
	return *it.Sets
}

// StraightLike reports whether the item logs like uniform working sets.
func (it Item) StraightLike() bool {
	return it.Variant == VariantStraight || it.Variant == VariantVariable || it.Lift == VariantVariable
}

// AccessoryGroup bundles accessory items; a non-nil Group name marks a
// superset performed back-to-back.
type AccessoryGroup struct {
	Group *string `json:"group"`
	Items []Item  `json:"items"`
}

// Workout is one training session for one athlete.
type Workout struct {
	ID              int              `json:"id"`
	AthleteID       int              `json:"athlete_id"`
	Date            *string          `json:"date"`
	Label           *string          `json:"label"`
	Status          Status           `json:"status"`
	TrainingBlockID *int             `json:"training_block_id"`
	CoreItems       []Item           `json:"core_items"`
	AccessoryGroups []AccessoryGroup `json:"accessory_groups"`
}

// Athlete identifies the workout's owner.
type Athlete struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Permissions is the server's verdict on what the current session may do.
// Re-read on every fetch; never cached across mutations.
type Permissions struct {
	CanLog        bool `json:"can_log"`
	CanCoach      bool `json:"can_coach"`
	IsSelfCoached bool `json:"is_self_coached"`
}

// Payload is the full workout aggregate as fetched from the server.
type Payload struct {
	Permissions *Permissions `json:"permissions"`
	Workout     Workout      `json:"workout"`
	Athlete     Athlete      `json:"athlete"`
}

// DisplayName returns the human name for an item's lift.
func DisplayName(it Item) string {
	if (it.Variant == VariantVariable || it.Lift == VariantVariable) && it.Movement != nil && *it.Movement != "" {
		return *it.Movement
	}
	switch it.Lift {
	case "SQ":
		return "Comp Squat"
	case "BN":
		return "Comp Bench"
	case "DL":
		return "Comp Deadlift"
	}
	if it.Movement != nil && *it.Movement != "" {
		return *it.Movement
	}
	return it.Lift
}

// RepsLabel returns the rep prescription as text ("5", "8-10", or "—").
func (it Item) RepsLabel() string {
	if it.Reps != nil && *it.Reps > 0 {
		return strconv.Itoa(*it.Reps)
	}
	if it.RepsText != nil && strings.TrimSpace(*it.RepsText) != "" {
		return *it.RepsText
	}
	return "—"
}
