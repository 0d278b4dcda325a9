package shipment

import (
	"fmt"
	"slices"
	"time"
)

// PickupMode is either a fixed appointment or an "available from" window.
type PickupMode string

const (
	Appointment PickupMode = "appointment"
	After       PickupMode = "after"
)

// DateLayout is the wire format of pickup dates.
const DateLayout = "2006-01-02"

// WindowDays is how many calendar days, today included, can be picked.
const WindowDays = 7

var (
	appointmentSlots = []string{
		"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00", "18:00",
	}
	afterSlots = []string{"08:00", "12:00", "14:00"}

	dayLabels   = [...]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"}
	monthLabels = [...]string{"Jan", "Fév", "Mar", "Avr", "Mai", "Juin", "Juil", "Août", "Sep", "Oct", "Nov", "Déc"}
)

// ParsePickupMode validates s.
func ParsePickupMode(s string) (PickupMode, error) {
	switch m := PickupMode(s); m {
	case Appointment, After:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPickupMode, s)
}

// Slots lists the time slots offered for the mode. Appointments use the
// eleven hourly slots, "after" the three coarse ones.
func (m PickupMode) Slots() []string {
	switch m {
	case Appointment:
		return slices.Clone(appointmentSlots)
	case After:
		return slices.Clone(afterSlots)
	}
	return nil
}

// PickupDate is one selectable day with its French labels.
type PickupDate struct {
	Date       string `json:"date"`
	Day        string `json:"day"`
	DayOfMonth int    `json:"day_of_month"`
	Month      string `json:"month"`
}

// DateWindow is the ordered list of offered days.
type DateWindow []PickupDate

// NewDateWindow enumerates WindowDays days starting with now's calendar day,
// in now's location.
func NewDateWindow(now time.Time) DateWindow {
	y, mo, d := now.Date()
	start := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())

	w := make(DateWindow, 0, WindowDays)
	for i := 0; i < WindowDays; i++ {
		day := start.AddDate(0, 0, i)
		w = append(w, PickupDate{
			Date:       day.Format(DateLayout),
			Day:        dayLabels[day.Weekday()],
			DayOfMonth: day.Day(),
			Month:      monthLabels[day.Month()-1],
		})
	}
	return w
}

// Contains reports whether date is one of the offered days.
func (w DateWindow) Contains(date string) bool {
	for _, d := range w {
		if d.Date == date {
			return true
		}
	}
	return false
}

// ScheduleState names where the schedule selector stands.
type ScheduleState string

const (
	StateNoMode       ScheduleState = "no_mode"
	StateNoDate       ScheduleState = "no_date"
	StateAwaitingTime ScheduleState = "awaiting_time"
	StateComplete     ScheduleState = "complete"
)

// Schedule is the schedule step. Mutate it through the Select methods only.
type Schedule struct {
	Mode PickupMode `json:"pickup_mode,omitempty" msgpack:"mode"`
	Date string     `json:"date,omitempty" msgpack:"date"`
	Time string     `json:"time,omitempty" msgpack:"time"`
}

// SelectMode sets the pickup mode and drops any chosen time slot.
func (s *Schedule) SelectMode(m PickupMode) error {
	if _, err := ParsePickupMode(string(m)); err != nil {
		return err
	}
	s.Mode = m
	s.Time = ""
	return nil
}

// SelectDate picks one of the offered days. Moving to a different day
// drops the chosen time slot.
func (s *Schedule) SelectDate(date string, window DateWindow) error {
	if s.Mode == "" {
		return ErrPickupModeRequired
	}
	if !window.Contains(date) {
		return fmt.Errorf("%w: %q", ErrDateOutOfRange, date)
	}
	if date != s.Date {
		s.Time = ""
	}
	s.Date = date
	return nil
}

// SelectTime picks a slot from the list offered for the current mode.
func (s *Schedule) SelectTime(slot string) error {
	if s.Mode == "" {
		return ErrPickupModeRequired
	}
	if s.Date == "" {
		return ErrDateRequired
	}
	if !slices.Contains(s.Mode.Slots(), slot) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, slot)
	}
	s.Time = slot
	return nil
}

// State derives the selector state from the current selections.
func (s Schedule) State() ScheduleState {
	switch {
	case s.Mode == "":
		return StateNoMode
	case s.Date == "":
		return StateNoDate
	case s.Mode == Appointment && s.Time == "":
		return StateAwaitingTime
	}
	return StateComplete
}

// CanContinue: mode and date set, and a time slot unless the mode is "after".
func (s Schedule) CanContinue() bool {
	return s.Mode != "" && s.Date != "" && (s.Mode == After || s.Time != "")
}
