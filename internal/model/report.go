package model

import "time"

// LineChange records a single rewritten or rejected import line.
type LineChange struct {
	Line   int    `yaml:"line"`
	Before string `yaml:"before"`
	After  string `yaml:"after,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// FileReport summarizes what happened to one file during a run.
type FileReport struct {
	Path     Path         `yaml:"path"`
	Depth    int          `yaml:"depth"`
	Written  bool         `yaml:"written"`
	Rewrites []LineChange `yaml:"rewrites,omitempty"`
	Warnings []LineChange `yaml:"warnings,omitempty"`
}

// RunReport is the outcome of a whole rewrite pass.
type RunReport struct {
	Root             Path         `yaml:"root"`
	StartedAt        time.Time    `yaml:"started_at"`
	FinishedAt       time.Time    `yaml:"finished_at"`
	FilesScanned     int          `yaml:"files_scanned"`
	FilesChanged     int          `yaml:"files_changed"`
	ImportsRewritten int          `yaml:"imports_rewritten"`
	MalformedLines   int          `yaml:"malformed_lines"`
	Files            []FileReport `yaml:"files,omitempty"`
}

// Add folds a file result into the report. Files with neither rewrites nor
// warnings are only counted.
func (r *RunReport) Add(result FileResult) {
	r.FilesScanned++

	rewrites := result.Rewrites()
	malformed := result.Malformed()

	if result.Changed {
		r.FilesChanged++
	}

	r.ImportsRewritten += len(rewrites)
	r.MalformedLines += len(malformed)

	if len(rewrites) == 0 && len(malformed) == 0 {
		return
	}

	file := FileReport{
		Path:    result.Entry.Path,
		Depth:   result.Depth,
		Written: result.Changed,
	}

	for _, line := range rewrites {
		file.Rewrites = append(file.Rewrites, LineChange{Line: line.Number, Before: line.Original, After: line.Text})
	}

	for _, line := range malformed {
		change := LineChange{Line: line.Number, Before: line.Original}
		if line.Err != nil {
			change.Error = line.Err.Error()
		}

		file.Warnings = append(file.Warnings, change)
	}

	r.Files = append(r.Files, file)
}
