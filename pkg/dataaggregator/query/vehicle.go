package query

type Vehicle struct {
	ID int
}
