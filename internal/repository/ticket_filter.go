package repository

// FilterAll is the sentinel meaning "do not filter on this field".
const FilterAll = "all"

type TicketFilter struct {
	Q        string // case-insensitive substring on title or description
	Status   string // exact match or FilterAll
	Priority string // exact match or FilterAll
}

// Empty reports whether the filter selects the whole collection.
func (f TicketFilter) Empty() bool {
	return f.Q == "" &&
		(f.Status == "" || f.Status == FilterAll) &&
		(f.Priority == "" || f.Priority == FilterAll)
}
