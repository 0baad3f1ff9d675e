package workout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/plcoach/plcoach/internal/units"
)

// SetInput is the raw text a user typed for one set. One SetInput exists
// per item in the session's form-state map; it is cleared after a
// successful submission.
type SetInput struct {
	Weight string
	Reps   string
	RPE    string
	RIR    string
}

// ValidationError is a client-side input rejection. It is resolved entirely
// before the network layer: a set submission that fails validation issues
// no HTTP call and submits nothing partially.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// LiftEntry is a validated straight/top/backdown set ready for submission.
// Weight is canonical kilograms.
type LiftEntry struct {
	WeightKg float64
	RPE      *float64
}

// AccessoryEntry is a validated accessory set. Reps are mandatory for
// accessories; RIR may be omitted.
type AccessoryEntry struct {
	WeightKg float64
	Reps     int
	RIR      *float64
}

// ParseLiftInput validates and normalizes input for a straight, top, or
// backdown set. Top sets require an RPE; for the others it is optional.
func ParseLiftInput(in SetInput, unit units.Unit, requireRPE bool) (*LiftEntry, error) {
	kg, err := parseWeight(in.Weight, unit)
	if err != nil {
		return nil, err
	}

	rpe, err := parseOptionalNumber(in.RPE, "rpe", "enter a valid RPE")
	if err != nil {
		return nil, err
	}
	if requireRPE && rpe == nil {
		return nil, invalid("rpe", "top sets require weight and RPE")
	}

	return &LiftEntry{WeightKg: kg, RPE: rpe}, nil
}

// ParseAccessoryInput validates and normalizes input for an accessory set.
func ParseAccessoryInput(in SetInput, unit units.Unit) (*AccessoryEntry, error) {
	kg, err := parseWeight(in.Weight, unit)
	if err != nil {
		return nil, err
	}

	repsText := strings.TrimSpace(in.Reps)
	if repsText == "" {
		return nil, invalid("reps", "reps are required")
	}
	reps, err := strconv.Atoi(repsText)
	if err != nil || reps <= 0 {
		return nil, invalid("reps", "enter a valid rep count")
	}

	rir, err := parseOptionalNumber(in.RIR, "rir", "enter a valid RIR")
	if err != nil {
		return nil, err
	}

	return &AccessoryEntry{WeightKg: kg, Reps: reps, RIR: rir}, nil
}

// parseWeight turns the typed weight into canonical kilograms, applying the
// pound rounding rule before conversion.
func parseWeight(raw string, unit units.Unit) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, invalid("weight", "weight is required")
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalid("weight", "enter a valid weight (%s)", unit)
	}
	if value <= 0 {
		return 0, invalid("weight", "weight is required")
	}
	kg, err := units.ToKilograms(value, unit)
	if err != nil {
		return 0, invalid("weight", "weight is required")
	}
	return kg, nil
}

func parseOptionalNumber(raw, field, message string) (*float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, invalid(field, "%s", message)
	}
	return &value, nil
}
