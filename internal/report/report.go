// Package report produces the JSON load report written by the validate
// command for auditing catalog ingestion runs.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abcu/course-planner/internal/catalog"
	"github.com/abcu/course-planner/internal/loader"
	"github.com/abcu/course-planner/internal/version"
	"github.com/google/uuid"
)

// Report captures the outcome of one catalog ingestion run
type Report struct {
	RunID                 string                `json:"run_id"`
	GeneratedAt           time.Time             `json:"generated_at"`
	CLIVersion            string                `json:"cli_version"`
	CatalogPath           string                `json:"catalog_path"`
	Summary               Summary               `json:"summary"`
	SkippedLines          []loader.SkippedLine  `json:"skipped_lines,omitempty"`
	DanglingPrerequisites []catalog.DanglingRef `json:"dangling_prerequisites,omitempty"`
}

// Summary provides aggregate counts for the run
type Summary struct {
	LinesRead               int `json:"lines_read"`
	CoursesLoaded           int `json:"courses_loaded"`
	LinesSkipped            int `json:"lines_skipped"`
	UnresolvedPrerequisites int `json:"unresolved_prerequisites"`
}

// New builds a report from a load result
func New(catalogPath string, result *loader.Result) *Report {
	dangling := result.Catalog.DanglingPrerequisites()

	unresolved := 0
	for _, ref := range dangling {
		unresolved += len(ref.Missing)
	}

	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		CLIVersion:  version.String(),
		CatalogPath: catalogPath,
		Summary: Summary{
			LinesRead:               result.Lines,
			CoursesLoaded:           result.Loaded,
			LinesSkipped:            len(result.Skipped),
			UnresolvedPrerequisites: unresolved,
		},
		SkippedLines:          result.Skipped,
		DanglingPrerequisites: dangling,
	}
}

// Save writes the report to path as indented JSON
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	return nil
}
