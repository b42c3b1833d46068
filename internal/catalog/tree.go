// Package catalog implements the in-memory course store: an ordered
// container mapping course number -> Course, keyed by lexicographic
// comparison of the normalized course number.
//
// The store is a plain binary search tree with exclusively-owned child
// nodes and no balancing. Insert and lookup are O(depth), which degrades
// to O(n) for sorted insertion order; that trade-off is acceptable for a
// course catalog of bounded size. Callers are responsible for normalizing
// keys (see utils.NormalizeCourseNumber) before inserting or querying —
// the store never normalizes.
//
// The store is not safe for concurrent use with a writer; concurrent
// lookups and walks without an in-flight insert are safe because reads
// never mutate structure.
package catalog

import "github.com/abcu/course-planner/internal/types"

type node struct {
	course *types.Course
	left   *node
	right  *node
}

// Tree is an ordered course store. The zero value is not usable; create
// one with NewTree.
type Tree struct {
	root *node
	size int
}

// NewTree creates an empty course store
func NewTree() *Tree {
	return &Tree{}
}

// Insert adds a course at the position dictated by its number. Inserting a
// number that is already present replaces the stored record in place (last
// insert wins), so the tree never holds two nodes with the same key.
func (t *Tree) Insert(c *types.Course) {
	link := &t.root
	for *link != nil {
		n := *link
		switch {
		case c.Number < n.course.Number:
			link = &n.left
		case c.Number > n.course.Number:
			link = &n.right
		default:
			n.course = c
			return
		}
	}
	*link = &node{course: c}
	t.size++
}

// Lookup returns the course stored under the given number, or false when no
// course with exactly that key exists. The key must already be normalized.
func (t *Tree) Lookup(number string) (*types.Course, bool) {
	n := t.root
	for n != nil {
		switch {
		case number < n.course.Number:
			n = n.left
		case number > n.course.Number:
			n = n.right
		default:
			return n.course, true
		}
	}
	return nil, false
}

// Walk visits every course in ascending course-number order (in-order
// traversal: left subtree, node, right subtree). Traversal stops early when
// visit returns false. Repeated walks with no intervening Insert yield the
// same sequence.
func (t *Tree) Walk(visit func(*types.Course) bool) {
	walk(t.root, visit)
}

func walk(n *node, visit func(*types.Course) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, visit) {
		return false
	}
	if !visit(n.course) {
		return false
	}
	return walk(n.right, visit)
}

// Courses returns every stored course in ascending course-number order
func (t *Tree) Courses() []*types.Course {
	courses := make([]*types.Course, 0, t.size)
	t.Walk(func(c *types.Course) bool {
		courses = append(courses, c)
		return true
	})
	return courses
}

// Len returns the number of stored courses
func (t *Tree) Len() int {
	return t.size
}
