// Package state answers "is filtering enabled" on the hot path with a single
// atomic load, kept eventually consistent with the durable filtering-state
// record by polling the durable sequence log.
package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/ppiankov/chatwarden/internal/store"
)

// Mode is the protection mode.
type Mode string

const (
	Active   Mode = "active"
	Paused   Mode = "paused"
	Disabled Mode = "disabled"
)

// ErrInvalidTransition is returned for transitions the state machine forbids.
var ErrInvalidTransition = errors.New("invalid state transition")

// Status is the durable protection status.
type Status struct {
	Mode  Mode       `json:"mode"`
	Until *time.Time `json:"until,omitempty"`
}

// Effective applies the paused auto-revert: a pause whose expiry has passed
// reads as Active.
func (s Status) Effective(now time.Time) Status {
	if s.Mode == Paused && s.Until != nil && now.After(*s.Until) {
		return Status{Mode: Active}
	}
	return s
}

// Enabled reports whether filtering is enforced in this status.
func (s Status) Enabled() bool {
	return s.Mode == Active
}

func (s Status) String() string {
	if s.Mode == Paused && s.Until != nil {
		return fmt.Sprintf("paused until %s", s.Until.Local().Format(time.Kitchen))
	}
	return string(s.Mode)
}

// ParseMode accepts the stored mode names. Unknown values read as Active
// so a damaged row fails toward filtering.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case Paused, Disabled:
		return Mode(s)
	default:
		return Active
	}
}

func fromRecord(rec store.StateRecord) Status {
	return Status{Mode: ParseMode(rec.Mode), Until: rec.Until}
}

func checkTransition(from, to Mode) error {
	switch {
	case from == to:
		return nil
	case to == Active:
		return nil
	case from == Active:
		return nil
	case from == Paused && to == Disabled:
		return nil
	}
	return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidTransition)
}
