package ctdf

import (
	"cmp"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var timeOfDayParseRegex = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})$`)

// TimeOfDay is a wall clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func NewTimeOfDay(hour int, minute int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	if !t.IsValid() {
		return TimeOfDay{}, fmt.Errorf("%w: invalid time of day %02d:%02d", ErrInvalidArgument, hour, minute)
	}

	return t, nil
}

// MustTimeOfDay is NewTimeOfDay for constant inputs.
func MustTimeOfDay(hour int, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}

	return t
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayParseRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid time of day %q", ErrInvalidArgument, s)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	return NewTimeOfDay(hour, minute)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) IsValid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// MinutesSinceMidnight is used for ordering.
func (t TimeOfDay) MinutesSinceMidnight() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Compare(o TimeOfDay) int {
	return cmp.Compare(t.MinutesSinceMidnight(), o.MinutesSinceMidnight())
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Compare(o) < 0
}

// On combines the time of day with the calendar date of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
