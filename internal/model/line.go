package model

import "strings"

// LineOutcome tags the result of evaluating a single source line.
type LineOutcome int

const (
	// LineUnchanged means the line was passed through as-is.
	LineUnchanged LineOutcome = iota
	// LineRewritten means the import specifier was converted to the alias form.
	LineRewritten
	// LineMalformed means the line passed the depth gate but its specifier
	// could not be extracted. The line is left unchanged.
	LineMalformed
)

func (o LineOutcome) String() string {
	switch o {
	case LineUnchanged:
		return "unchanged"
	case LineRewritten:
		return "rewritten"
	case LineMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// LineResult holds the evaluation of one line of a file.
type LineResult struct {
	Number   int // 1-based
	Original string
	Text     string
	Outcome  LineOutcome
	Err      error
}

// FileResult is the fold of every line of a single file.
type FileResult struct {
	Entry   FileEntry
	Depth   int
	Lines   []LineResult
	Changed bool
}

// Rewrites returns the lines that were rewritten.
func (r FileResult) Rewrites() []LineResult {
	return r.filter(LineRewritten)
}

// Malformed returns the lines that passed the gate but could not be rewritten.
func (r FileResult) Malformed() []LineResult {
	return r.filter(LineMalformed)
}

// Content joins the output lines with a single newline.
func (r FileResult) Content() string {
	texts := make([]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		texts = append(texts, line.Text)
	}

	return strings.Join(texts, "\n")
}

func (r FileResult) filter(outcome LineOutcome) []LineResult {
	var out []LineResult

	for _, line := range r.Lines {
		if line.Outcome == outcome {
			out = append(out, line)
		}
	}

	return out
}
