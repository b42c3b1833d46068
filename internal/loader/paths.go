package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveCatalogPath resolves user input to an existing catalog file,
// tolerating the common typos around the canonical file name: the match is
// case-insensitive and the .csv extension may be omitted. The input is
// returned unchanged when it already names an existing file.
func ResolveCatalogPath(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("catalog path is empty")
	}

	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		return input, nil
	}

	dir := filepath.Dir(input)
	base := filepath.Base(input)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	want := strings.ToUpper(base)
	wantCSV := want
	if !strings.HasSuffix(want, ".CSV") {
		wantCSV = want + ".CSV"
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := strings.ToUpper(entry.Name())
		if name == want || name == wantCSV {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no catalog file matching %q in %s", base, dir)
}
