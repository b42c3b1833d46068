// Package loader ingests course catalog files into the in-memory store.
//
// The catalog format is plain text, one course per line, fields separated
// by a single comma with no quoting: number, title, then zero or more
// prerequisite numbers. Course numbers and prerequisite references are
// normalized before storage; titles are stored verbatim.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abcu/course-planner/internal/catalog"
	"github.com/abcu/course-planner/internal/logger"
	"github.com/abcu/course-planner/internal/types"
	"github.com/abcu/course-planner/internal/utils"
)

// SkippedLine records one rejected input line. Skips are diagnostics, not
// failures: ingestion always continues with the next line.
type SkippedLine struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Result holds the outcome of one catalog ingestion pass
type Result struct {
	Catalog *catalog.Tree
	// Lines counts non-blank input lines
	Lines   int
	Loaded  int
	Skipped []SkippedLine
}

// Load reads catalog lines from r and inserts one course per well-formed
// line into a fresh store. Blank lines are skipped silently; lines with
// fewer than two comma-separated fields are skipped with a diagnostic. The
// returned error covers read failures only, never malformed content.
func Load(r io.Reader, log *logger.Logger) (*Result, error) {
	result := &Result{Catalog: catalog.NewTree()}

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.Lines++

		course, reason := parseLine(line)
		if course == nil {
			result.Skipped = append(result.Skipped, SkippedLine{
				Line:   lineNumber,
				Text:   line,
				Reason: reason,
			})
			log.Warn("Skipping malformed catalog line", "line", lineNumber, "reason", reason)
			continue
		}

		result.Catalog.Insert(course)
		result.Loaded++
		log.Debug("Inserted course", "number", course.Number)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return result, nil
}

// LoadFile opens path and ingests it with Load
func LoadFile(path string, log *logger.Logger) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	log.Info("Loading courses", "catalog", path)
	result, err := Load(file, log)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog loaded", "courses", result.Loaded, "skipped", len(result.Skipped))
	return result, nil
}

// parseLine converts one non-blank catalog line into a course. It returns
// a nil course and a human-readable reason when the line is malformed.
func parseLine(line string) (*types.Course, string) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return nil, "expected at least a course number and title"
	}

	course := &types.Course{
		Number: utils.NormalizeCourseNumber(fields[0]),
		Title:  fields[1],
	}

	for _, field := range fields[2:] {
		prereq := utils.NormalizeCourseNumber(field)
		if prereq == "" {
			// trailing-comma artifact, not a reference
			continue
		}
		course.Prerequisites = append(course.Prerequisites, prereq)
	}

	return course, ""
}
