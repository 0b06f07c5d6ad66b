package ctdf

import (
	"fmt"
	"strings"
	"time"
)

// WeekdaySet is a set of time.Weekday values, one bit per day.
type WeekdaySet uint8

// Iteration order of a WeekdaySet. The week starts on Monday.
var weekOrder = [...]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

var (
	MondayToFriday = NewWeekdaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	Weekend        = NewWeekdaySet(time.Saturday, time.Sunday)
	EveryDay       = MondayToFriday | Weekend
)

func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, day := range days {
		s = s.With(day)
	}

	return s
}

func (s WeekdaySet) With(day time.Weekday) WeekdaySet {
	return s | 1<<uint(day)
}

func (s WeekdaySet) Without(day time.Weekday) WeekdaySet {
	return s &^ (1 << uint(day))
}

func (s WeekdaySet) Contains(day time.Weekday) bool {
	return s&(1<<uint(day)) != 0
}

func (s WeekdaySet) IsEmpty() bool {
	return s&EveryDay == 0
}

// Days lists the members from Monday to Sunday.
func (s WeekdaySet) Days() []time.Weekday {
	var days []time.Weekday
	for _, day := range weekOrder {
		if s.Contains(day) {
			days = append(days, day)
		}
	}

	return days
}

func (s WeekdaySet) Len() int {
	return len(s.Days())
}

func (s WeekdaySet) String() string {
	var names []string
	for _, day := range s.Days() {
		names = append(names, day.String()[:3])
	}

	return strings.Join(names, ",")
}

// ParseWeekday accepts full English day names and their three letter abbreviations in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for _, day := range weekOrder {
		full := strings.ToLower(day.String())
		if name == full || name == full[:3] {
			return day, nil
		}
	}

	return time.Sunday, fmt.Errorf("%w: unknown weekday %q", ErrInvalidArgument, s)
}

// ParseWeekdaySet parses a list of day names. The shorthands "weekdays", "weekend" and
// "daily" are expanded.
func ParseWeekdaySet(names []string) (WeekdaySet, error) {
	var s WeekdaySet

	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "weekdays":
			s |= MondayToFriday
		case "weekend":
			s |= Weekend
		case "daily":
			s |= EveryDay
		default:
			day, err := ParseWeekday(name)
			if err != nil {
				return 0, err
			}
			s = s.With(day)
		}
	}

	return s, nil
}

// NextOrSame returns the first date on or after from that falls on day, keeping from's clock
// time and location.
func NextOrSame(from time.Time, day time.Weekday) time.Time {
	delta := (int(day) - int(from.Weekday()) + 7) % 7

	return from.AddDate(0, 0, delta)
}
