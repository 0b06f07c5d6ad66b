package ctdf

// Station is a physical place a line can stop at. Stations are not modified after creation.
type Station struct {
	ID int `groups:"basic,detailed"`

	Name string `groups:"basic,detailed"`

	TravelCenter   bool `groups:"detailed"`
	StepFreeAccess bool `groups:"detailed"`
	Toilets        bool `groups:"detailed"`
}

func NewStation(name string, travelCenter bool, stepFreeAccess bool, toilets bool) *Station {
	return &Station{
		Name:           name,
		TravelCenter:   travelCenter,
		StepFreeAccess: stepFreeAccess,
		Toilets:        toilets,
	}
}

func (s *Station) String() string {
	return s.Name
}
