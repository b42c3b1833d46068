// Package menu implements the interactive advising session: a stdin-driven
// loop for loading a catalog, printing the course list, and printing a
// single course with its prerequisites.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abcu/course-planner/internal/catalog"
	"github.com/abcu/course-planner/internal/loader"
	"github.com/abcu/course-planner/internal/logger"
	"github.com/abcu/course-planner/internal/types"
	"github.com/abcu/course-planner/internal/utils"
	"github.com/fatih/color"
)

// Session holds the state of one interactive advising session. The catalog
// is owned by the session and replaced wholesale on each load.
type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	log         *logger.Logger
	defaultPath string
	tree        *catalog.Tree
}

// NewSession creates an advising session reading menu choices from in and
// writing prompts and results to out. defaultPath, when non-empty, is
// offered as the catalog file when the user submits an empty file name.
func NewSession(in io.Reader, out io.Writer, log *logger.Logger, defaultPath string) *Session {
	return &Session{
		in:          bufio.NewScanner(in),
		out:         out,
		log:         log,
		defaultPath: defaultPath,
	}
}

// Loaded reports whether a catalog has been loaded this session
func (s *Session) Loaded() bool {
	return s.tree != nil
}

// Run drives the menu loop until the user exits or input ends
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Welcome to the course planner.")
	fmt.Fprintln(s.out)

	for {
		s.printMenu()

		line, ok := s.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			s.handleLoad()
		case "2":
			s.handleList()
		case "3":
			s.handleShow()
		case "9":
			fmt.Fprintln(s.out, "Thank you for using the course planner!")
			return nil
		default:
			fmt.Fprintf(s.out, "%s is not a valid option.\n\n", strings.TrimSpace(line))
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "  1. Load Data Structure.")
	fmt.Fprintln(s.out, "  2. Print Course List.")
	fmt.Fprintln(s.out, "  3. Print Course.")
	fmt.Fprintln(s.out, "  9. Exit")
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, "What would you like to do? ")
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// handleLoad prompts for a catalog file and replaces the session catalog
func (s *Session) handleLoad() {
	prompt := "Enter the catalog file name"
	if s.defaultPath != "" {
		prompt += fmt.Sprintf(" (ENTER for %s)", s.defaultPath)
	}
	fmt.Fprintf(s.out, "%s: ", prompt)

	input, ok := s.readLine()
	if !ok {
		return
	}
	input = strings.TrimSpace(input)
	if input == "" {
		input = s.defaultPath
	}

	path, err := loader.ResolveCatalogPath(input)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.out, "ERROR: %v\n", err)
		fmt.Fprintln(s.out, "Please re-check your spelling and try again.")
		fmt.Fprintln(s.out)
		return
	}
	if path != input {
		fmt.Fprintf(s.out, "Using file: %s\n", path)
	}

	result, err := loader.LoadFile(path, s.log)
	if err != nil {
		color.New(color.FgRed).Fprintf(s.out, "ERROR: %v\n", err)
		fmt.Fprintln(s.out)
		return
	}

	s.tree = result.Catalog
	color.New(color.FgGreen).Fprintf(s.out, "Loaded %d courses into the data structure.\n", result.Loaded)
	if len(result.Skipped) > 0 {
		color.New(color.FgYellow).Fprintf(s.out, "Skipped %d malformed line(s).\n", len(result.Skipped))
	}
	fmt.Fprintln(s.out)
}

// handleList prints every course ascending by number
func (s *Session) handleList() {
	if !s.Loaded() {
		fmt.Fprintln(s.out, "Please load courses before printing the list.")
		fmt.Fprintln(s.out)
		return
	}

	fmt.Fprintln(s.out, "Here is the course schedule:")
	fmt.Fprintln(s.out)
	s.tree.Walk(func(c *types.Course) bool {
		fmt.Fprintln(s.out, c.Label())
		return true
	})
	fmt.Fprintln(s.out)
}

// handleShow prompts for a course number and prints its details
func (s *Session) handleShow() {
	if !s.Loaded() {
		fmt.Fprintln(s.out, "Please load courses before searching for a course.")
		fmt.Fprintln(s.out)
		return
	}

	fmt.Fprint(s.out, "What course do you want to know about? ")
	input, ok := s.readLine()
	if !ok {
		return
	}

	key := utils.NormalizeCourseNumber(input)
	course, found := s.tree.Lookup(key)
	if !found {
		fmt.Fprintln(s.out, "Course not found.")
		fmt.Fprintln(s.out)
		return
	}

	PrintCourse(s.out, course, s.tree.ResolvePrerequisites(course))
	fmt.Fprintln(s.out)
}

// PrintCourse writes the detail view for one course: its label and, on the
// next line, each prerequisite with its resolved title or a "no matching
// record" marker for dangling references
func PrintCourse(w io.Writer, course *types.Course, prereqs []catalog.Prerequisite) {
	fmt.Fprintln(w, course.Label())

	if len(prereqs) == 0 {
		fmt.Fprintln(w, "Prerequisites: None")
		return
	}

	parts := make([]string, 0, len(prereqs))
	for _, p := range prereqs {
		if p.Resolved {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Number, p.Title))
		} else {
			parts = append(parts, fmt.Sprintf("%s: no matching record", p.Number))
		}
	}
	fmt.Fprintf(w, "Prerequisites: %s\n", strings.Join(parts, ", "))
}
