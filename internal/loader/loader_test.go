package loader

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abcu/course-planner/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard})
}

func TestLoadBasicCatalog(t *testing.T) {
	input := strings.Join([]string{
		"CSCI101,Introduction to Programming in C++",
		"CSCI201,Data Structures,CSCI101",
		"MATH201,Discrete Mathematics",
	}, "\n")

	result, err := Load(strings.NewReader(input), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Lines)
	assert.Equal(t, 3, result.Loaded)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 3, result.Catalog.Len())

	course, ok := result.Catalog.Lookup("CSCI201")
	require.True(t, ok)
	assert.Equal(t, "Data Structures", course.Title)
	assert.Equal(t, []string{"CSCI101"}, course.Prerequisites)
}

func TestLoadMalformedLineSkipped(t *testing.T) {
	// second line has no comma: skipped, but the third line still loads
	input := "CSCI101,Intro\nthis line is broken\nCSCI201,Data Structures,CSCI101\n"

	result, err := Load(strings.NewReader(input), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 2, result.Catalog.Len())
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Line)
	assert.Equal(t, "this line is broken", result.Skipped[0].Text)
	assert.NotEmpty(t, result.Skipped[0].Reason)

	_, ok := result.Catalog.Lookup("CSCI201")
	assert.True(t, ok)
}

func TestLoadBlankLinesSkippedSilently(t *testing.T) {
	input := "\nCSCI101,Intro\n\n   \nCSCI201,Data Structures\n\n"

	result, err := Load(strings.NewReader(input), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Lines)
	assert.Equal(t, 2, result.Loaded)
	assert.Empty(t, result.Skipped)
}

func TestLoadNormalizesNumbersNotTitles(t *testing.T) {
	input := "  csci101 , Intro to Programming , csci100 \n"

	result, err := Load(strings.NewReader(input), testLogger())
	require.NoError(t, err)

	course, ok := result.Catalog.Lookup("CSCI101")
	require.True(t, ok)

	// title is verbatim, including surrounding spaces
	assert.Equal(t, " Intro to Programming ", course.Title)
	assert.Equal(t, []string{"CSCI100"}, course.Prerequisites)
}

func TestLoadDropsEmptyPrerequisiteFields(t *testing.T) {
	input := "CSCI201,Data Structures,CSCI101,,  ,\n"

	result, err := Load(strings.NewReader(input), testLogger())
	require.NoError(t, err)

	course, ok := result.Catalog.Lookup("CSCI201")
	require.True(t, ok)
	assert.Equal(t, []string{"CSCI101"}, course.Prerequisites)
}

func TestLoadDuplicateNumberLastWins(t *testing.T) {
	input := "CSCI101,First Title\nCSCI101,Second Title\n"

	result, err := Load(strings.NewReader(input), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Loaded)
	assert.Equal(t, 1, result.Catalog.Len())

	course, ok := result.Catalog.Lookup("CSCI101")
	require.True(t, ok)
	assert.Equal(t, "Second Title", course.Title)
}

func TestLoadEmptyInput(t *testing.T) {
	result, err := Load(strings.NewReader(""), testLogger())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Lines)
	assert.Equal(t, 0, result.Catalog.Len())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.csv")
	content := "CSCI101,Intro\nCSCI201,Data Structures,CSCI101\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result, err := LoadFile(path, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open catalog file")
}
