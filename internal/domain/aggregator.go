package domain

import (
	"sort"

	m "denolint.dev/pkg/denolint/internal/model"
)

// Aggregate folds per-file results into the run verdict. Files are ordered by
// path so parallel runs report deterministically.
func Aggregate(files []m.FileResult) m.RunResult {
	sorted := make([]m.FileResult, len(files))
	copy(sorted, files)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	result := m.RunResult{Files: sorted}

	for _, f := range sorted {
		result.HasError = result.HasError || f.Count > 0

		if f.Err != nil {
			result.Errors = append(result.Errors, f.Err)
		}
	}

	return result
}
