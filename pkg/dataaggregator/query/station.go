package query

type Station struct {
	ID int
}

// StationsByName matches stations whose name contains Name. Filter is an optional boolean
// expression over the station fields, e.g. `StepFreeAccess && Toilets`.
type StationsByName struct {
	Name   string
	Limit  int
	Filter string
}
