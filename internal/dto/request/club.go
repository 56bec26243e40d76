package request

// ClubFilter comes from the query string of GET /api/clubs.
type ClubFilter struct {
	Category string
	Location string
	Search   string
}

// IsEmpty reports whether no filter is set.
func (f ClubFilter) IsEmpty() bool {
	return f.Category == "" && f.Location == "" && f.Search == ""
}
