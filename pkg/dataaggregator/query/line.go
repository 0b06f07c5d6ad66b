package query

type Line struct {
	ID int
}

type LinesByName struct {
	Name  string
	Limit int
}
