package model

// PlacementFilter narrows a placement listing. Zero values mean "no
// clause": an unset field never restricts the result set.
type PlacementFilter struct {
	Company    string
	Role       string
	Difficulty string
	Year       int
}

// HigherEducationFilter narrows a higher-education listing.
type HigherEducationFilter struct {
	Country    string
	University string
	Course     string
	Year       int
}
