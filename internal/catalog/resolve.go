package catalog

import "github.com/abcu/course-planner/internal/types"

// Prerequisite is the display-time resolution of a single prerequisite
// reference. Resolved is false when the referenced course number has no
// record in the store; an unresolved prerequisite is data, not an error.
type Prerequisite struct {
	Number   string `json:"number"`
	Title    string `json:"title,omitempty"`
	Resolved bool   `json:"resolved"`
}

// DanglingRef lists the prerequisite numbers of one course that do not
// resolve to any record in the store
type DanglingRef struct {
	Course  string   `json:"course"`
	Missing []string `json:"missing"`
}

// ResolvePrerequisites resolves each prerequisite number of c back into a
// title via a second lookup. The result preserves the order the catalog
// file listed the prerequisites in and has one entry per reference,
// resolved or not.
func (t *Tree) ResolvePrerequisites(c *types.Course) []Prerequisite {
	if len(c.Prerequisites) == 0 {
		return nil
	}

	resolved := make([]Prerequisite, 0, len(c.Prerequisites))
	for _, number := range c.Prerequisites {
		p := Prerequisite{Number: number}
		if prereq, ok := t.Lookup(number); ok {
			p.Title = prereq.Title
			p.Resolved = true
		}
		resolved = append(resolved, p)
	}
	return resolved
}

// DanglingPrerequisites scans the whole store and reports, in ascending
// course-number order, every course whose prerequisite list references a
// number with no record in the store
func (t *Tree) DanglingPrerequisites() []DanglingRef {
	var refs []DanglingRef
	t.Walk(func(c *types.Course) bool {
		var missing []string
		for _, number := range c.Prerequisites {
			if _, ok := t.Lookup(number); !ok {
				missing = append(missing, number)
			}
		}
		if len(missing) > 0 {
			refs = append(refs, DanglingRef{Course: c.Number, Missing: missing})
		}
		return true
	})
	return refs
}
