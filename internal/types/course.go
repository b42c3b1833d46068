package types

import "strings"

// Course represents a single catalog entry keyed by its course number.
// Number is always the normalized form (trimmed, uppercased) — never raw
// user input. Title is stored verbatim from the catalog file. Prerequisites
// holds normalized course numbers in file order; entries are not validated
// against the catalog at load time, so dangling references are possible and
// are resolved best-effort at display time.
type Course struct {
	Number        string   `json:"number"`
	Title         string   `json:"title"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// HasPrerequisites reports whether the course lists any prerequisites
func (c *Course) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}

// Label returns the one-line listing form: "CSCI101, Introduction to Programming"
func (c *Course) Label() string {
	return c.Number + ", " + c.Title
}

// IsValid checks if the course has the minimum fields a well-formed catalog
// entry carries. Degenerate records (empty number or title) still load and
// are queryable; IsValid only drives validation diagnostics.
func (c *Course) IsValid() bool {
	return strings.TrimSpace(c.Number) != "" && c.Title != ""
}
