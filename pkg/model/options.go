package model

import "sort"

// Filter options are the distinct values per filterable field, used to
// populate the UI dropdowns. Extraction scans a full collection snapshot:
// there is no precomputed index, which is fine at the data volumes this
// system sees. String fields sort ascending; year fields sort descending
// so the most recent year lists first. Documents lacking a field are
// skipped.

type PlacementOptions struct {
	Companies    []string `json:"companies"`
	Roles        []string `json:"roles"`
	Difficulties []string `json:"difficulties"`
	Years        []int    `json:"years"`
}

type HigherEducationOptions struct {
	Countries    []string `json:"countries"`
	Universities []string `json:"universities"`
	Courses      []string `json:"courses"`
	Years        []int    `json:"years"`
}

// ExtractPlacementOptions accumulates the distinct filter values across a
// placements snapshot.
func ExtractPlacementOptions(placements []Placement) PlacementOptions {
	companies := map[string]struct{}{}
	roles := map[string]struct{}{}
	difficulties := map[string]struct{}{}
	years := map[int]struct{}{}

	for _, p := range placements {
		addString(companies, p.CompanyName)
		addString(roles, p.Role)
		addString(difficulties, string(p.Difficulty))
		addYear(years, p.BatchYear)
	}

	return PlacementOptions{
		Companies:    sortedStrings(companies),
		Roles:        sortedStrings(roles),
		Difficulties: sortedStrings(difficulties),
		Years:        sortedYearsDesc(years),
	}
}

// ExtractHigherEducationOptions accumulates the distinct filter values
// across a higher-education snapshot.
func ExtractHigherEducationOptions(experiences []HigherEducation) HigherEducationOptions {
	countries := map[string]struct{}{}
	universities := map[string]struct{}{}
	courses := map[string]struct{}{}
	years := map[int]struct{}{}

	for _, e := range experiences {
		addString(countries, e.Country)
		addString(universities, e.UniversityName)
		addString(courses, e.Course)
		addYear(years, e.YearOfAdmission)
	}

	return HigherEducationOptions{
		Countries:    sortedStrings(countries),
		Universities: sortedStrings(universities),
		Courses:      sortedStrings(courses),
		Years:        sortedYearsDesc(years),
	}
}

func addString(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func addYear(set map[int]struct{}, v int) {
	if v != 0 {
		set[v] = struct{}{}
	}
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func sortedYearsDesc(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
