// Package reports provides the filtered report query layer and Excel export.
package reports

// Type selects which report variant to build.
type Type string

const (
	// TypeInventory reconstructs stock over the filtered activity subset.
	TypeInventory Type = "inventory"
	// TypeMovement lists raw filtered movement rows.
	TypeMovement Type = "movement"
	// TypeUsers dumps all user accounts; filters are ignored.
	TypeUsers Type = "users"
)

// Valid reports whether the type is a known report variant.
func (t Type) Valid() bool {
	switch t {
	case TypeInventory, TypeMovement, TypeUsers:
		return true
	}
	return false
}

// Request filters a report. From/To accept "yyyy-mm-dd" or "dd/mm/yyyy".
// User filters by the recording user's display name; empty or "ALL" means
// no user filter.
type Request struct {
	Type Type
	From string
	To   string
	User string
}

// Report is the opaque tabular result handed to presentation and export
// collaborators. They render it as-is and never reinterpret status semantics.
type Report struct {
	Title          string     `json:"title"`
	DateRangeTitle string     `json:"dateRangeTitle,omitempty"`
	Headers        []string   `json:"headers"`
	Rows           [][]string `json:"rows"`
}
