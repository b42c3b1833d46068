package menu

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abcu/course-planner/internal/catalog"
	"github.com/abcu/course-planner/internal/logger"
	"github.com/abcu/course-planner/internal/types"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// keep ANSI escapes out of asserted output
	color.NoColor = true
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courses.csv")
	content := strings.Join([]string{
		"CSCI201,Data Structures,CSCI101",
		"CSCI101,Introduction to Programming",
		"CSCI202,Algorithms,CSCI999",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runSession(t *testing.T, script string, defaultPath string) string {
	t.Helper()
	var out bytes.Buffer
	session := NewSession(strings.NewReader(script), &out, testLogger(), defaultPath)
	require.NoError(t, session.Run())
	return out.String()
}

func TestSessionExit(t *testing.T) {
	output := runSession(t, "9\n", "")

	assert.Contains(t, output, "Welcome to the course planner.")
	assert.Contains(t, output, "Thank you for using the course planner!")
}

func TestSessionEOFEndsCleanly(t *testing.T) {
	output := runSession(t, "", "")
	assert.Contains(t, output, "1. Load Data Structure.")
}

func TestSessionInvalidOption(t *testing.T) {
	output := runSession(t, "7\n9\n", "")
	assert.Contains(t, output, "7 is not a valid option.")
}

func TestSessionGuardsBeforeLoad(t *testing.T) {
	output := runSession(t, "2\n3\n9\n", "")

	assert.Contains(t, output, "Please load courses before printing the list.")
	assert.Contains(t, output, "Please load courses before searching for a course.")
}

func TestSessionLoadAndList(t *testing.T) {
	path := writeCatalog(t)
	script := "1\n" + path + "\n2\n9\n"

	output := runSession(t, script, "")

	assert.Contains(t, output, "Loaded 3 courses into the data structure.")
	assert.Contains(t, output, "Here is the course schedule:")

	// sorted ascending despite file order
	listStart := strings.Index(output, "CSCI101, Introduction to Programming")
	listMiddle := strings.Index(output, "CSCI201, Data Structures")
	listEnd := strings.Index(output, "CSCI202, Algorithms")
	require.NotEqual(t, -1, listStart)
	require.NotEqual(t, -1, listMiddle)
	require.NotEqual(t, -1, listEnd)
	assert.Less(t, listStart, listMiddle)
	assert.Less(t, listMiddle, listEnd)
}

func TestSessionShowCourse(t *testing.T) {
	path := writeCatalog(t)
	script := "1\n" + path + "\n3\n  csci201 \n9\n"

	output := runSession(t, script, "")

	assert.Contains(t, output, "CSCI201, Data Structures")
	assert.Contains(t, output, "Prerequisites: CSCI101: Introduction to Programming")
}

func TestSessionShowCourseUnresolvedPrerequisite(t *testing.T) {
	path := writeCatalog(t)
	script := "1\n" + path + "\n3\nCSCI202\n9\n"

	output := runSession(t, script, "")

	assert.Contains(t, output, "Prerequisites: CSCI999: no matching record")
}

func TestSessionShowCourseNotFound(t *testing.T) {
	path := writeCatalog(t)
	script := "1\n" + path + "\n3\nCSCI999\n9\n"

	output := runSession(t, script, "")

	assert.Contains(t, output, "Course not found.")
}

func TestSessionLoadBadFile(t *testing.T) {
	script := "1\n/nonexistent/path/courses.csv\n9\n"

	output := runSession(t, script, "")

	assert.Contains(t, output, "ERROR:")
	assert.Contains(t, output, "Please re-check your spelling and try again.")
}

func TestSessionLoadDefaultPath(t *testing.T) {
	path := writeCatalog(t)
	script := "1\n\n2\n9\n"

	output := runSession(t, script, path)

	assert.Contains(t, output, "(ENTER for "+path+")")
	assert.Contains(t, output, "Loaded 3 courses into the data structure.")
}

func TestPrintCourseNoPrerequisites(t *testing.T) {
	var out bytes.Buffer
	course := &types.Course{Number: "CSCI101", Title: "Intro"}

	PrintCourse(&out, course, nil)

	assert.Contains(t, out.String(), "CSCI101, Intro")
	assert.Contains(t, out.String(), "Prerequisites: None")
}

func TestPrintCourseMixedPrerequisites(t *testing.T) {
	var out bytes.Buffer
	course := &types.Course{Number: "CSCI400", Title: "Capstone", Prerequisites: []string{"CSCI201", "CSCI999"}}
	prereqs := []catalog.Prerequisite{
		{Number: "CSCI201", Title: "Data Structures", Resolved: true},
		{Number: "CSCI999"},
	}

	PrintCourse(&out, course, prereqs)

	assert.Contains(t, out.String(), "Prerequisites: CSCI201: Data Structures, CSCI999: no matching record")
}
