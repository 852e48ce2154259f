package models

// Holiday is read-only reference data: a named date on which collection is
// suspended. Date uses the yyyy-MM-dd layout.
type Holiday struct {
	Name string `json:"name" firestore:"name"`
	Date string `json:"date" firestore:"date"`
}
