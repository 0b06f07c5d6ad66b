package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stopTimes(stops []*Stop) []string {
	var times []string
	for _, stop := range stops {
		times = append(times, stop.Time.String())
	}
	return times
}

func TestLineStopsAreSortedByTime(t *testing.T) {
	station := NewStation("University", false, true, false)
	line := NewLine("S4", MondayToFriday, NewTransportationVehicle(TransportTypeLightRail))

	line.CreateStop(MustTimeOfDay(10, 0), station, "A")
	line.CreateStop(MustTimeOfDay(8, 0), station, "B")
	line.CreateStop(MustTimeOfDay(9, 0), station, "C")

	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, stopTimes(line.Stops()))
	assert.Equal(t, 3, line.StopCount())
}

func TestLineStopsDoesNotReorderStorage(t *testing.T) {
	station := NewStation("University", false, true, false)
	line := NewLine("S4", MondayToFriday, NewTransportationVehicle(TransportTypeLightRail))

	line.AddStops([]*Stop{
		NewStop(MustTimeOfDay(12, 0), station, "Noon"),
		NewStop(MustTimeOfDay(6, 0), station, "Early"),
	})

	held := line.Stops()
	line.CreateStop(MustTimeOfDay(5, 0), station, "Earlier")

	assert.Equal(t, []string{"06:00", "12:00"}, stopTimes(held))
	assert.Equal(t, []string{"05:00", "06:00", "12:00"}, stopTimes(line.Stops()))
}

func TestLineStopsEqualTimesKeepInsertionOrder(t *testing.T) {
	station := NewStation("Allee", false, true, true)
	line := NewLine("5", EveryDay, NewTransportationVehicle(TransportTypeBus))

	line.CreateStop(MustTimeOfDay(9, 0), station, "first")
	line.CreateStop(MustTimeOfDay(9, 0), station, "second")

	stops := line.Stops()
	assert.Equal(t, "first", stops[0].Name)
	assert.Equal(t, "second", stops[1].Name)
}

func TestLineStopLookupAndRemoval(t *testing.T) {
	university := NewStation("University", false, true, false)
	allee := NewStation("Allee", false, true, true)
	line := NewLine("S4", MondayToFriday, NewTransportationVehicle(TransportTypeLightRail))

	line.CreateStop(MustTimeOfDay(8, 0), university, "University West")
	line.CreateStop(MustTimeOfDay(8, 10), allee, "Allee")

	stop, err := line.Stop("University West")
	require.NoError(t, err)
	assert.Same(t, university, stop.Station)
	assert.Same(t, stop, line.StopAt(university))

	require.NoError(t, line.RemoveStop("University West"))
	assert.Nil(t, line.StopAt(university))

	assert.ErrorIs(t, line.RemoveStop("University West"), ErrStopNotFound)
	_, err = line.Stop("Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}
