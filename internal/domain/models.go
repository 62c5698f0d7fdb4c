package domain

// Munro is one mountain route as returned by the listing endpoint.
// Values are read-only once decoded; a new search replaces them wholesale.
// The measures are nil when the backend has no value for them.
type Munro struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Summary  string   `json:"summary"`
	Distance *float64 `json:"distance"` // kilometres
	Time     *float64 `json:"time"`     // hours
	Grade    *float64 `json:"grade"`
	Bog      *float64 `json:"bog"`
	Start    string   `json:"start"`
}

// Measure returns a pointer to v, for building munros with known measures
func Measure(v float64) *float64 {
	return &v
}

// Listing is the ordered result of a single search.
// Order is the display order.
type Listing struct {
	Search string
	Munros []Munro
}

// Len returns the number of munros in the listing
func (l Listing) Len() int {
	return len(l.Munros)
}
