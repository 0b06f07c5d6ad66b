package ctdf

// Stop is a visit of a line to a station at a fixed time of day. The name is the label shown
// for this visit and can differ from the station name.
type Stop struct {
	Time    TimeOfDay
	Station *Station
	Name    string
}

func NewStop(time TimeOfDay, station *Station, name string) *Stop {
	return &Stop{
		Time:    time,
		Station: station,
		Name:    name,
	}
}
