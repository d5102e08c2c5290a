package domain

import (
	"errors"
	"fmt"
	"strings"

	m "srcalias.dev/pkg/srcalias/internal/model"
)

const (
	// ImportKeyword marks the lines the rewriter looks at.
	ImportKeyword = "import"

	// DefaultAlias replaces the stripped ascent segments.
	DefaultAlias = "@/"

	specifierQuote = "'"
)

// ErrMalformedImport is returned for import lines whose specifier cannot be
// located between single quotes.
var ErrMalformedImport = errors.New("malformed import")

// Rewriter converts relative import specifiers to the alias form.
type Rewriter struct {
	alias string
}

// NewRewriter returns a Rewriter that prefixes rewritten specifiers with alias.
func NewRewriter(alias string) *Rewriter {
	return &Rewriter{alias: alias}
}

// RewriteLine evaluates one line of a file whose structural depth is
// fileDepth. The line is rewritten only when its ascent depth is non-zero and
// exactly equal to fileDepth.
func (r *Rewriter) RewriteLine(line string, number, fileDepth int) m.LineResult {
	result := m.LineResult{
		Number:   number,
		Original: line,
		Text:     line,
		Outcome:  m.LineUnchanged,
	}

	if !strings.HasPrefix(line, ImportKeyword) {
		return result
	}

	depth := ImportDepth(line)
	if depth == 0 || depth != fileDepth {
		return result
	}

	head, specifier, tail, err := splitSpecifier(line)
	if err != nil {
		result.Outcome = m.LineMalformed
		result.Err = err

		return result
	}

	cleaned := strings.ReplaceAll(specifier, AscentSegment, "")
	result.Text = head + specifierQuote + r.alias + cleaned + specifierQuote + tail
	result.Outcome = m.LineRewritten

	return result
}

// splitSpecifier cuts line around its first single-quoted segment. Everything
// after the closing quote is returned untouched as tail.
func splitSpecifier(line string) (head, specifier, tail string, err error) {
	parts := strings.Split(line, specifierQuote)
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("%w: expected a single-quoted module path, found %d quote(s)",
			ErrMalformedImport, len(parts)-1)
	}

	return parts[0], parts[1], strings.Join(parts[2:], specifierQuote), nil
}
