package ctdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2024-05-15 is a Wednesday
func wednesdayAt(hour, minute, second int) time.Time {
	return time.Date(2024, time.May, 15, hour, minute, second, 0, time.UTC)
}

func fixedTime(t time.Time) CurrentTimeProvider {
	return CurrentTimeFunc(func() time.Time { return t })
}

func testDeparture(concreteTime time.Time, delay int, provider CurrentTimeProvider) *Departure {
	station := NewStation("University", false, true, false)
	vehicle := NewTransportationVehicle(TransportTypeBus)
	vehicle.SetDelay(delay)

	line := NewLine("42", EveryDay, vehicle)
	stop := line.CreateStop(TimeOfDayOf(concreteTime), station, "University West")
	line.CreateStop(MustTimeOfDay(23, 0), NewStation("Depot", false, false, false), "Depot")

	return NewDeparture(line, stop, concreteTime, provider)
}

func TestArrivalMessageWithoutTimeProvider(t *testing.T) {
	departure := testDeparture(wednesdayAt(8, 0, 0), 10, nil)

	assert.Equal(t, "08:00", departure.ArrivalMessage())
}

func TestArrivalMessage(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		concrete time.Time
		delay    int
		expected string
	}{
		{"countdown", wednesdayAt(7, 50, 0), wednesdayAt(8, 0, 0), 0, "10 min"},
		{"countdown with delay", wednesdayAt(7, 50, 0), wednesdayAt(8, 0, 0), 5, "10 + 5 min"},
		{"partial minutes are truncated", wednesdayAt(7, 0, 30), wednesdayAt(8, 0, 0), 0, "59 min"},
		{"due now", wednesdayAt(8, 0, 0), wednesdayAt(8, 0, 0), 0, "0 min"},
		{"overdue folds into delay", wednesdayAt(8, 5, 0), wednesdayAt(8, 0, 0), 15, "0 + 10 min"},
		{"overdue beyond delay", wednesdayAt(8, 5, 0), wednesdayAt(8, 0, 0), 3, "0 min"},
		{"exactly one hour shows clock", wednesdayAt(7, 0, 0), wednesdayAt(8, 0, 0), 0, "08:00"},
		{"later today", wednesdayAt(6, 0, 0), wednesdayAt(8, 30, 0), 0, "08:30"},
		{"later today with delay", wednesdayAt(6, 0, 0), wednesdayAt(8, 30, 0), 2, "08:30 + 2 min"},
		{"tomorrow", wednesdayAt(23, 0, 0), wednesdayAt(8, 5, 0).AddDate(0, 0, 1), 0, "+1 day(s) 08:05"},
		{"next week with delay", wednesdayAt(9, 0, 0), wednesdayAt(8, 0, 0).AddDate(0, 0, 6), 4, "+6 day(s) 08:00 + 4 min"},
		{"under an hour across midnight", wednesdayAt(23, 30, 0), wednesdayAt(0, 10, 0).AddDate(0, 0, 1), 0, "40 min"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			departure := testDeparture(test.concrete, test.delay, fixedTime(test.now))

			assert.Equal(t, test.expected, departure.ArrivalMessage())
		})
	}
}

func TestArrivalMessageReadsLiveDelay(t *testing.T) {
	departure := testDeparture(wednesdayAt(8, 0, 0), 0, fixedTime(wednesdayAt(7, 45, 0)))
	assert.Equal(t, "15 min", departure.ArrivalMessage())

	departure.Line.Vehicle.SetDelay(3)
	assert.Equal(t, "15 + 3 min", departure.ArrivalMessage())
}

func TestDepartureAccessors(t *testing.T) {
	departure := testDeparture(wednesdayAt(8, 0, 0), 2, nil)

	assert.Equal(t, "42", departure.LineName())
	assert.Equal(t, TransportTypeBus, departure.LineType())
	assert.Equal(t, "Depot", departure.Destination())
	assert.Equal(t, 2, departure.Delay())
	assert.Equal(t, "Wed 08:00 42 University West", departure.String())
}

func TestGenerateDepartureBoardFromDepartures(t *testing.T) {
	onTime := testDeparture(wednesdayAt(8, 0, 0), 0, fixedTime(wednesdayAt(7, 30, 0)))
	delayed := testDeparture(wednesdayAt(8, 10, 0), 5, fixedTime(wednesdayAt(7, 30, 0)))

	board := GenerateDepartureBoardFromDepartures([]*Departure{onTime, delayed})

	if assert.Len(t, board, 2) {
		assert.Equal(t, DepartureBoardRecordTypeScheduled, board[0].Type)
		assert.Equal(t, "30 min", board[0].ArrivalMessage)
		assert.Equal(t, "Depot", board[0].Destination)
		assert.Equal(t, "University West", board[0].StopName)

		assert.Equal(t, DepartureBoardRecordTypeDelayed, board[1].Type)
		assert.Equal(t, 5, board[1].Delay)
		assert.Equal(t, "40 + 5 min", board[1].ArrivalMessage)
		assert.Equal(t, wednesdayAt(8, 10, 0), board[1].Time)
	}
}
